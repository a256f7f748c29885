package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/linernotes/credits/data"
)

// EnqueueJob records a named job for the discovery pipeline to pick
// up, returning its id. The caller reports success or failure and
// moves on; no catalog state depends on the job.
func (db *DB) EnqueueJob(name, payload string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("no job name")
	}
	job := data.Job{
		ID:        uuid.NewString(),
		Name:      name,
		Payload:   payload,
		CreatedAt: time.Now(),
	}
	if err := db.
		Table("jobs").
		Create(&job).
		Error; err != nil {
		return "", fmt.Errorf("error enqueuing job '%s': %w", name, err)
	}
	return job.ID, nil
}

func (db *DB) CountPendingJobs() (int, error) {
	var count int64
	if err := db.
		Table("jobs").
		Where("done_at is null").
		Count(&count).
		Error; err != nil {
		return 0, fmt.Errorf("error counting pending jobs: %w", err)
	}
	return int(count), nil
}

func (db *DB) GetPendingJobs(limit int) ([]data.Job, error) {
	var jobs []data.Job
	if err := db.
		Table("jobs").
		Where("done_at is null").
		Order("created_at").
		Limit(limit).
		Find(&jobs).
		Error; err != nil {
		return nil, fmt.Errorf("error getting pending jobs: %w", err)
	}
	return jobs, nil
}

func (db *DB) MarkJobDone(id string) error {
	if err := db.
		Table("jobs").
		Where("id = ?", id).
		Update("done_at", sql.NullTime{Time: time.Now(), Valid: true}).
		Error; err != nil {
		return fmt.Errorf("error marking job '%s' done: %w", id, err)
	}
	return nil
}

// procedures are the named maintenance statements InvokeProcedure
// accepts. There is no dynamic statement path.
var procedures = map[string]string{
	"optimize": "pragma optimize",
	"analyze":  "analyze",
	"vacuum":   "vacuum",
}

// InvokeProcedure runs a named scheduling/maintenance procedure,
// fire and forget.
func (db *DB) InvokeProcedure(name string) error {
	stmt, ok := procedures[name]
	if !ok {
		return fmt.Errorf("unknown procedure '%s'", name)
	}
	if err := db.Exec(stmt).Error; err != nil {
		return fmt.Errorf("error invoking procedure '%s': %w", name, err)
	}
	return nil
}
