package profile

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence port for profile documents.
//
// Implementations must enforce at-most-one profile per user with a
// storage-level unique constraint: Upsert is read-then-write-free from the
// caller's point of view and concurrent first upserts for the same user must
// not produce duplicates.
type Repository interface {
	// Upsert creates the profile if absent, otherwise merges only the
	// non-nil fields into the stored document, and returns the result.
	Upsert(ctx context.Context, userID uuid.UUID, f Fields) (Profile, error)
	// GetByUser returns the profile joined with the user's public fields.
	// Returns ErrNotFound when no profile exists for the user.
	GetByUser(ctx context.Context, userID uuid.UUID) (Profile, error)
	// ListAll returns every profile with the user join. Order is
	// unspecified.
	ListAll(ctx context.Context) ([]Profile, error)
	// UpdateExperience / UpdateEducation replace the whole sub-record
	// collection of an existing profile. ErrNotFound when absent.
	UpdateExperience(ctx context.Context, userID uuid.UUID, items []Experience) error
	UpdateEducation(ctx context.Context, userID uuid.UUID, items []Education) error
	// DeleteAccount removes the user's posts, profile and user record as
	// one unit, in that order. ErrNotFound when the user does not exist.
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}
