// Package repos implements the storage layer over gorm. Every method takes
// an optional transaction handle; ingestion passes the run transaction,
// read paths pass nil and run against the pooled connection.
package repos

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// upsertClause builds the insert-or-update clause used by every ingestion
// write: conflict on the natural key, rewrite the payload columns, and bump
// updated_at server-side so the refresh timestamp is authoritative.
// dedupeByUID collapses repeated uids inside one batch: a multi-row
// ON CONFLICT insert cannot touch the same row twice, so only the last
// record per uid is kept, at its first-seen position.
func dedupeByUID[T any](items []T, uid func(T) string) []T {
	seen := make(map[string]int, len(items))
	deduped := items[:0:0]
	for _, item := range items {
		key := uid(item)
		if i, ok := seen[key]; ok {
			deduped[i] = item
			continue
		}
		seen[key] = len(deduped)
		deduped = append(deduped, item)
	}
	return deduped
}

func upsertClause(key string, columns []string) clause.OnConflict {
	assignments := clause.AssignmentColumns(columns)
	assignments = append(assignments, clause.Assignment{
		Column: clause.Column{Name: "updated_at"},
		Value:  gorm.Expr("now()"),
	})
	return clause.OnConflict{
		Columns:   []clause.Column{{Name: key}},
		DoUpdates: assignments,
	}
}
