// SPDX-License-Identifier: MIT

// Package storage persists SED run summaries for popsedctl.
package storage

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrVersionMismatch indicates a record written by another schema version.
	ErrVersionMismatch = errors.New("storage: record version mismatch")

	// ErrNotInitialized indicates a store used before Init.
	ErrNotInitialized = errors.New("storage: store is not initialized")

	// ErrUnknownBackend indicates an unsupported NewStore kind.
	ErrUnknownBackend = errors.New("storage: unsupported store backend")

	// ErrMissingID indicates a run without an identifier.
	ErrMissingID = errors.New("storage: run id is required")
)

// Run summarises one popsedctl evaluation.
type Run struct {
	SchemaVersion int         `json:"schema_version"`
	ID            string      `json:"id"`
	CreatedAt     time.Time   `json:"created_at"`
	Command       string      `json:"command"`
	Variant       string      `json:"variant"`
	Backend       string      `json:"backend"`
	Params        []string    `json:"params"`
	Samples       int         `json:"samples"`
	Filters       []string    `json:"filters,omitempty"`
	Maggies       [][]float64 `json:"maggies,omitempty"`
	Output        string      `json:"output,omitempty"`
}

// Store persists runs.
type Store interface {
	Init(ctx context.Context) error
	SaveRun(ctx context.Context, run Run) error
	GetRun(ctx context.Context, id string) (Run, bool, error)
	// ListRuns returns every run, oldest first.
	ListRuns(ctx context.Context) ([]Run, error)
}

// NewStore returns the backend named by kind ("", "memory" or "sqlite").
func NewStore(kind, sqlitePath string) (Store, error) {
	switch kind {
	case "", "memory":
		return NewMemoryStore(), nil
	case "sqlite":
		return newSQLiteStore(sqlitePath)
	default:
		return nil, fmt.Errorf("%q: %w", kind, ErrUnknownBackend)
	}
}

// CloseIfSupported closes stores that hold resources.
func CloseIfSupported(store Store) error {
	closer, ok := store.(interface{ Close() error })
	if !ok {
		return nil
	}

	return closer.Close()
}
