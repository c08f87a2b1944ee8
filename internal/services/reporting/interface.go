package reporting

import "context"

// Service defines the interface for earnings and traffic reports over
// finished sessions
type Service interface {
	// Fetch retrieves the finished sessions for a period and aggregates
	// them into an earnings/traffic summary
	Fetch(ctx context.Context, input *FetchInput) (*FetchOutput, error)

	// DeleteRecord prunes a single billed session row by its id
	DeleteRecord(ctx context.Context, input *DeleteRecordInput) error
}
