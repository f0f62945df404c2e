// SPDX-License-Identifier: MIT

package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/popsed/internal/storage"
)

func sampleRun(id string, at time.Time) storage.Run {
	return storage.Run{
		ID:        id,
		CreatedAt: at,
		Command:   "sed",
		Variant:   "nmf+burst",
		Backend:   "emulator",
		Params:    []string{"logmstar", "beta1_sfh"},
		Samples:   2,
		Filters:   []string{"g", "r"},
		Maggies:   [][]float64{{1, 2}, {3, 4}},
		Output:    "out.csv",
	}
}

// StoreSuite runs the Store contract against one backend.
type StoreSuite struct {
	suite.Suite
	ctx      context.Context
	newStore func(t *testing.T) storage.Store
	store    storage.Store
}

func (s *StoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = s.newStore(s.T())
}

func (s *StoreSuite) TearDownTest() {
	_ = storage.CloseIfSupported(s.store)
}

// TestNotInitialized: every call before Init fails.
func (s *StoreSuite) TestNotInitialized() {
	_, err := s.store.ListRuns(s.ctx)
	s.ErrorIs(err, storage.ErrNotInitialized)
	_, _, err = s.store.GetRun(s.ctx, "a")
	s.ErrorIs(err, storage.ErrNotInitialized)
}

// TestRoundTrip: a saved run comes back intact and detached from the store.
func (s *StoreSuite) TestRoundTrip() {
	require.NoError(s.T(), s.store.Init(s.ctx))
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 500, time.UTC)
	require.NoError(s.T(), s.store.SaveRun(s.ctx, sampleRun("a", t0)))
	s.ErrorIs(s.store.SaveRun(s.ctx, storage.Run{}), storage.ErrMissingID)

	run, ok, err := s.store.GetRun(s.ctx, "a")
	require.NoError(s.T(), err)
	require.True(s.T(), ok)
	s.Equal(storage.CurrentSchemaVersion, run.SchemaVersion)
	s.Equal([]string{"g", "r"}, run.Filters)
	s.True(t0.Equal(run.CreatedAt))
	run.Maggies[0][0] = -1

	again, _, err := s.store.GetRun(s.ctx, "a")
	require.NoError(s.T(), err)
	s.Equal(1.0, again.Maggies[0][0])

	_, ok, err = s.store.GetRun(s.ctx, "missing")
	require.NoError(s.T(), err)
	s.False(ok)
}

// TestListOrderAndUpsert: runs list oldest first; saving an id twice replaces it.
func (s *StoreSuite) TestListOrderAndUpsert() {
	require.NoError(s.T(), s.store.Init(s.ctx))
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(s.T(), s.store.SaveRun(s.ctx, sampleRun("late", t0.Add(time.Hour))))
	require.NoError(s.T(), s.store.SaveRun(s.ctx, sampleRun("early", t0)))

	updated := sampleRun("early", t0)
	updated.Samples = 7
	require.NoError(s.T(), s.store.SaveRun(s.ctx, updated))

	runs, err := s.store.ListRuns(s.ctx)
	require.NoError(s.T(), err)
	require.Len(s.T(), runs, 2)
	s.Equal("early", runs[0].ID)
	s.Equal(7, runs[0].Samples)
	s.Equal("late", runs[1].ID)
}

func TestMemoryStoreSuite(t *testing.T) {
	suite.Run(t, &StoreSuite{newStore: func(*testing.T) storage.Store { return storage.NewMemoryStore() }})
}

func TestCodec_Version(t *testing.T) {
	data, err := storage.EncodeRun(sampleRun("a", time.Unix(0, 0).UTC()))
	require.NoError(t, err)
	run, err := storage.DecodeRun(data)
	require.NoError(t, err)
	assert.Equal(t, storage.CurrentSchemaVersion, run.SchemaVersion)

	_, err = storage.DecodeRun([]byte(`{"schema_version": 99, "id": "x"}`))
	assert.ErrorIs(t, err, storage.ErrVersionMismatch)
	_, err = storage.DecodeRun([]byte(`{`))
	assert.Error(t, err)
}

func TestNewStore(t *testing.T) {
	s, err := storage.NewStore("", "")
	require.NoError(t, err)
	assert.IsType(t, &storage.MemoryStore{}, s)
	assert.NoError(t, storage.CloseIfSupported(s))

	_, err = storage.NewStore("postgres", "")
	assert.ErrorIs(t, err, storage.ErrUnknownBackend)
}
