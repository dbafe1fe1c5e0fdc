package leaderboard

import (
	"context"
	"log"

	"github.com/amonks/focusstation/session"
)

// Fetch reads every record from repo and aggregates them. A failed fetch is
// logged and yields an empty leaderboard.
func Fetch(ctx context.Context, repo session.Repository, logger *log.Logger) []Entry {
	if repo == nil {
		return []Entry{}
	}
	records, err := repo.FetchAll(ctx)
	if err != nil {
		if logger != nil {
			logger.Printf("fetch leaderboard: %v", err)
		}
		return []Entry{}
	}
	return Aggregate(records)
}
