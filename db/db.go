package db

import (
	_ "embed"
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DB represents our sqlite3 database file.
type DB struct{ *gorm.DB }

//go:embed schema.sql
var schema string

// ErrNotFound wraps every zero-row point lookup, so callers can test
// with errors.Is without depending on gorm.
var ErrNotFound = errors.New("not found")

// Open returns a connection to a migrated sqlite3 database file on
// disk, creating the file and running migrations if necessary.
func Open(filename string) (*DB, error) {
	gdb, err := gorm.Open(sqlite.Open(filename), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("error opening db file at '%s': %w", filename, err)
	}

	db := &DB{gdb}

	if err := db.Exec(schema).Error; err != nil {
		return nil, fmt.Errorf("error migrating db at '%s': %w", filename, err)
	}

	return db, nil
}

func (db *DB) Close() error {
	pool, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("error getting connection pool: %w", err)
	}
	return pool.Close()
}

// DefaultPageSize applies when a caller asks for a page without
// saying how big pages are.
const DefaultPageSize = 25

// ListOptions control a paginated list read. Pages are 1-indexed;
// values below 1 read the first page.
type ListOptions struct {
	Page     int
	PageSize int

	// OrderBy names a column on the listed table; empty means the
	// store's own order.
	OrderBy   string
	Ascending bool
}

// window derives the row window for a page: rows [start, start+limit)
// where start = (page-1)*pageSize.
func (opts ListOptions) window() (offset, limit int) {
	page, size := opts.Page, opts.PageSize
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	return (page - 1) * size, size
}

func (opts ListOptions) order() string {
	if opts.OrderBy == "" {
		return ""
	}
	dir := "desc"
	if opts.Ascending {
		dir = "asc"
	}
	return opts.OrderBy + " " + dir
}
