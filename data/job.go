package data

import (
	"database/sql"
	"time"
)

// Jobs are the fire-and-forget boundary with the discovery pipeline.
// We enqueue them and report on them; nothing in the catalog depends
// on their outcome.
type Job struct {
	ID      string
	Name    string
	Payload string

	CreatedAt time.Time
	DoneAt    sql.NullTime
}
