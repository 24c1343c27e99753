package postings

import "context"

// Repo defines persistence operations for postings.
type Repo interface {
	Create(ctx context.Context, posting Posting) error
	GetByID(ctx context.Context, id string) (Posting, error)
	List(ctx context.Context, limit, offset int) ([]Posting, error)
	Delete(ctx context.Context, id string) error
}
