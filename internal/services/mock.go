package services

import (
	"time"

	"github.com/PrVille/json-mock-data-api-sub000/internal/types"
	"github.com/google/uuid"
)

// Mock/live duality: mutations for the default (unauthenticated) tenant are
// answered with a record shaped exactly like a persisted one, but nothing is
// written. Validation runs before the branch, so both paths fail identically.
// Every mutating service compares the resolved caller against this predicate
// before touching the store.

// mocked reports whether the caller's mutations must be simulated.
func mocked(caller types.CallerContext) bool {
	return caller.IsDefaultTenant
}

// stampNew produces the id and timestamp a freshly persisted record would
// carry, for both the live and the simulated create path.
func stampNew() (string, time.Time) {
	return uuid.NewString(), time.Now().UTC()
}
