// Package comments fetches the comment record set that commentgrid pages
// through.
//
// A Source returns the full list in one call. HTTPSource talks to the remote
// endpoint through a rate-limited transport and a circuit breaker,
// CachedSource puts the file cache and request coalescing in front of any
// Source, and Load turns every failure into an empty record set.
package comments

import "context"

// Comment is one fetched record. ID is its stable identifier.
type Comment struct {
	PostID int    `json:"postId" yaml:"post_id"`
	ID     int    `json:"id"     yaml:"id"`
	Name   string `json:"name"   yaml:"name"`
	Email  string `json:"email"  yaml:"email"`
	Body   string `json:"body"   yaml:"body"`
}

// Source produces the full comment list.
type Source interface {
	Fetch(ctx context.Context) ([]Comment, error)
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func(ctx context.Context) ([]Comment, error)

// Fetch calls f.
func (f SourceFunc) Fetch(ctx context.Context) ([]Comment, error) {
	return f(ctx)
}

// Load fetches from src and degrades any failure to an empty, non-nil set.
// The error is logged on the context logger and never returned.
func Load(ctx context.Context, src Source) []Comment {
	log := loggerFrom(ctx)

	records, err := src.Fetch(ctx)
	if err != nil {
		log.Error().Ctx(ctx).Err(err).Msg("failed to fetch comments, showing empty set")
		return []Comment{}
	}
	if records == nil {
		records = []Comment{}
	}

	log.Debug().Ctx(ctx).Int("count", len(records)).Msg("comments loaded")
	return records
}
