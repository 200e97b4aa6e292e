package store

import (
	"context"

	"github.com/acampos/giftwise/internal/plan"
	"github.com/acampos/giftwise/internal/quiz"
)

// ResultRepo provides access to the append-only results collection.
type ResultRepo interface {
	// Append writes a new immutable result record with a store-assigned
	// creation timestamp and returns the assigned id. Existing records
	// are never updated.
	Append(ctx context.Context, result *quiz.UserResult) (int, error)

	// MostRecentByEmail returns the newest result for the exact email,
	// or nil when none exists.
	MostRecentByEmail(ctx context.Context, email string) (*quiz.UserResult, error)
}

// PlanRepo provides access to the development-plan collection, keyed by
// sanitized email.
type PlanRepo interface {
	// LoadOrDefault reads the plan document by key. An absent document
	// yields the default shape with the primary-gifts field set to
	// fallbackPrimary; a present document is merged over the default
	// shape, falling back to fallbackPrimary only when its stored
	// primary-gifts value is empty.
	LoadOrDefault(ctx context.Context, key, fallbackPrimary string) (plan.Data, error)

	// Upsert merge-writes the plan document under key: fields in the
	// payload overwrite, stored fields absent from the payload are left
	// untouched. The store stamps the last-updated time.
	Upsert(ctx context.Context, key string, data plan.Data, ownerName, ownerEmail string) error
}
