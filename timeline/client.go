// Package timeline fetches recent posts for an account from an external
// timeline provider.
package timeline

import (
	"context"

	"crypto-pulse/models"
)

// Provider returns the recent posts of one account, ordered as the
// upstream returns them. An unknown or inactive handle yields an empty
// slice and a nil error.
type Provider interface {
	FetchTimeline(ctx context.Context, handle string) ([]models.Post, error)
	Name() string
}
