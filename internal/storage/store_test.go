package storage_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tisaghu/Work-Billing-Tracker/internal/model"
	"github.com/Tisaghu/Work-Billing-Tracker/internal/storage"
)

func testStore(t *testing.T) *storage.Store {
	t.Helper()
	return storage.New(filepath.Join(t.TempDir(), "work_chunks.csv"))
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestLoadMissingFile(t *testing.T) {
	s := storage.New(filepath.Join(t.TempDir(), "does-not-exist.csv"))
	chunks, err := s.Load()
	require.NoError(t, err, "a missing file means no data yet, not an error")
	assert.Empty(t, chunks)
}

func TestAppendCreatesFileWithHeader(t *testing.T) {
	s := testStore(t)
	chunks := []*model.Chunk{
		{Date: date(2025, 9, 30), Minutes: 60, Description: "Test 1"},
		{Date: date(2025, 9, 30), Minutes: 30, Description: "Test 2"},
	}
	require.NoError(t, s.Append(chunks))

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 3, "header plus two data rows")
	assert.Equal(t, "ID,Date,Minutes,Description", lines[0])
	assert.Equal(t, "1,2025-09-30,60,Test 1", lines[1])
	assert.Equal(t, "2,2025-09-30,30,Test 2", lines[2])

	// Ids were assigned in place.
	assert.Equal(t, 1, chunks[0].ID)
	assert.Equal(t, 2, chunks[1].ID)
}

func TestAppendContinuesFromMaxID(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.Append([]*model.Chunk{
		{Date: date(2025, 9, 30), Minutes: 60},
		{Date: date(2025, 9, 30), Minutes: 30},
	}))

	more := []*model.Chunk{{Date: date(2025, 10, 1), Minutes: 45}}
	require.NoError(t, s.Append(more))
	assert.Equal(t, 3, more[0].ID)

	chunks, err := s.Load()
	require.NoError(t, err)
	require.Len(t, chunks, 3)
	for i, c := range chunks {
		assert.Equal(t, i+1, c.ID, "ids strictly increasing in file order")
	}
}

func TestOverwriteRenumbersDensely(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.Append([]*model.Chunk{
		{Date: date(2025, 9, 30), Minutes: 60},
		{Date: date(2025, 9, 30), Minutes: 30},
		{Date: date(2025, 10, 1), Minutes: 45},
	}))

	chunks, err := s.Load()
	require.NoError(t, err)

	// Drop the middle chunk and rewrite.
	kept := []*model.Chunk{chunks[0], chunks[2]}
	require.NoError(t, s.Overwrite(kept))
	assert.Equal(t, 1, kept[0].ID)
	assert.Equal(t, 2, kept[1].ID)

	reloaded, err := s.Load()
	require.NoError(t, err)
	require.Len(t, reloaded, 2)
	assert.Equal(t, 1, reloaded[0].ID)
	assert.Equal(t, 2, reloaded[1].ID)
	assert.Equal(t, 45, reloaded[1].Minutes)
}

func TestAppendAfterOverwriteUsesCompactedIDs(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.Append([]*model.Chunk{
		{Date: date(2025, 9, 30), Minutes: 60},
		{Date: date(2025, 9, 30), Minutes: 30},
	}))
	require.NoError(t, s.Overwrite([]*model.Chunk{{Date: date(2025, 9, 30), Minutes: 60}}))

	added := []*model.Chunk{{Date: date(2025, 10, 1), Minutes: 15}}
	require.NoError(t, s.Append(added))
	assert.Equal(t, 2, added[0].ID, "append continues from the compacted max id")
}

func TestLoadLegacyFileWithoutIDColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "work_chunks.csv")
	legacy := "Date,Minutes,Description\n2025-09-30,45,old entry\n2025-10-01,30,\n"
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o600))

	chunks, err := storage.New(path).Load()
	require.NoError(t, err)
	require.Len(t, chunks, 2)
	assert.Equal(t, 1, chunks[0].ID, "legacy rows get synthesized ids")
	assert.Equal(t, 2, chunks[1].ID)
	assert.Equal(t, "old entry", chunks[0].Description)
	assert.Equal(t, 30, chunks[1].Minutes)
}

func TestLoadSynthesizesIDsPastExplicitMax(t *testing.T) {
	path := filepath.Join(t.TempDir(), "work_chunks.csv")
	mixed := "ID,Date,Minutes,Description\n5,2025-09-30,60,modern\n2025-10-01,30,legacy\n"
	require.NoError(t, os.WriteFile(path, []byte(mixed), 0o600))

	chunks, err := storage.New(path).Load()
	require.NoError(t, err)
	require.Len(t, chunks, 2)
	assert.Equal(t, 5, chunks[0].ID, "explicit ids are kept")
	assert.Equal(t, 6, chunks[1].ID, "synthesized ids continue past the explicit max")
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "work_chunks.csv")
	require.NoError(t, os.WriteFile(path, []byte{}, 0o600))

	chunks, err := storage.New(path).Load()
	require.NoError(t, err)
	assert.Empty(t, chunks)
}

func TestLoadCorruptRowFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "work_chunks.csv")
	bad := "ID,Date,Minutes,Description\n1,2025-09-30,sixty,broken\n"
	require.NoError(t, os.WriteFile(path, []byte(bad), 0o600))

	_, err := storage.New(path).Load()
	require.Error(t, err, "corrupt rows must surface, not be dropped")
	var pe *model.ParseError
	assert.True(t, errors.As(err, &pe), "error chain should carry the parse error")
	assert.Contains(t, err.Error(), "row 2")
}

func TestAppendSurfacesWriteErrors(t *testing.T) {
	// The parent "directory" is a regular file, so the append cannot create
	// or open the data file and must report it.
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("not a directory"), 0o600))

	s := storage.New(filepath.Join(blocker, "work_chunks.csv"))
	err := s.Append([]*model.Chunk{{Date: date(2025, 9, 30), Minutes: 60}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storage error")
}

func TestAppendQuotesDelimiters(t *testing.T) {
	s := testStore(t)
	desc := "planning, review\nand \"notes\""
	require.NoError(t, s.Append([]*model.Chunk{{Date: date(2025, 9, 30), Minutes: 60, Description: desc}}))

	chunks, err := s.Load()
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Equal(t, desc, chunks[0].Description, "description survives verbatim through CSV quoting")
}
