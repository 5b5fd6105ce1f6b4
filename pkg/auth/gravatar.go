package auth

import (
	"crypto/md5"
	"fmt"
	"strings"
)

// GravatarURL builds the avatar URL for an e-mail address:
// 200px, PG-rated, with the "mystery man" fallback image.
func GravatarURL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := md5.Sum([]byte(normalized))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=200&r=pg&d=mm", sum)
}
