//go:build sqlite

// SPDX-License-Identifier: MIT

package storage_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/popsed/internal/storage"
)

func TestSQLiteStoreSuite(t *testing.T) {
	suite.Run(t, &StoreSuite{newStore: func(t *testing.T) storage.Store {
		return storage.NewSQLiteStore(filepath.Join(t.TempDir(), "popsed.db"))
	}})
}

func TestNewStore_SQLite(t *testing.T) {
	s, err := storage.NewStore("sqlite", filepath.Join(t.TempDir(), "x.db"))
	require.NoError(t, err)
	require.NoError(t, s.Init(context.Background()))
	assert.NoError(t, storage.CloseIfSupported(s))
}
