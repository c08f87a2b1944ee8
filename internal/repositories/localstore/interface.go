package localstore

//go:generate mockgen -package=mocks -destination=mocks/mock_store.go github.com/thkos/tms/internal/repositories/localstore Store

import (
	"context"
)

// Store defines the interface for the device-local ephemeral key/value store.
// It remembers running-timer start times across application restarts, keyed
// by the stringified instance id, and is wiped in full on teardown.
type Store interface {
	// Get retrieves a value by key
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Set stores a value under a key
	Set(ctx context.Context, input *SetInput) error

	// Remove deletes a key
	Remove(ctx context.Context, input *RemoveInput) error

	// Clear deletes every key held by the store
	Clear(ctx context.Context, input *ClearInput) error
}
