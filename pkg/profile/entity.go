package profile

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the per-user document: optional scalar fields plus the ordered
// experience and education sub-records. Name and Avatar are joined from the
// owning user on reads; they are not stored on the profile itself.
type Profile struct {
	UserID     uuid.UUID    `json:"user"`
	Name       string       `json:"name,omitempty"`
	Avatar     string       `json:"avatar,omitempty"`
	University string       `json:"university,omitempty"`
	Location   string       `json:"location,omitempty"`
	Bio        string       `json:"bio,omitempty"`
	Experience []Experience `json:"experience"`
	Education  []Education  `json:"education"`
	UpdatedAt  time.Time    `json:"updatedAt"`
}

// Experience is an embedded sub-record. The University field holds the
// organization name; the field name is kept for client compatibility.
type Experience struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	University  string    `json:"university"`
	Location    string    `json:"location,omitempty"`
	From        string    `json:"from"`
	To          string    `json:"to,omitempty"`
	Current     bool      `json:"current"`
	Description string    `json:"description,omitempty"`
}

type Education struct {
	ID           uuid.UUID `json:"id"`
	School       string    `json:"school"`
	Degree       string    `json:"degree"`
	FieldOfStudy string    `json:"fieldofstudy"`
	From         string    `json:"from"`
	To           string    `json:"to,omitempty"`
	Current      bool      `json:"current"`
	Description  string    `json:"description,omitempty"`
}

// Fields is the partial scalar set accepted by CreateOrUpdate. Nil means
// "leave the stored value untouched" (merge semantics, not replace).
type Fields struct {
	University *string
	Location   *string
	Bio        *string
}

// ExperienceInput carries a new experience entry. Title, University and From
// are required.
type ExperienceInput struct {
	Title       string
	University  string
	Location    string
	From        string
	To          string
	Current     bool
	Description string
}

// EducationInput carries a new education entry. School, Degree, FieldOfStudy
// and From are required.
type EducationInput struct {
	School       string
	Degree       string
	FieldOfStudy string
	From         string
	To           string
	Current      bool
	Description  string
}
