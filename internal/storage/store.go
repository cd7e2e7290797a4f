package storage

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/Tisaghu/Work-Billing-Tracker/internal/model"
)

// Header is the first row of the data file. Legacy files written before ids
// existed carry a shorter header; the loader skips the header row without
// inspecting it, so both generations read fine.
var Header = []string{"ID", "Date", "Minutes", "Description"}

// Store reads and writes the full chunk collection in one CSV file. The
// store owns the on-disk representation exclusively: ids are assigned here
// as a side effect of saving and nowhere else.
type Store struct {
	path string
}

// New returns a Store backed by the given file path. The file need not
// exist yet.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Load reads every chunk in file order. A missing file is not an error; it
// means no data has been recorded yet and yields an empty collection. A data
// row that cannot be decoded fails the whole load — rows are never silently
// dropped.
func (s *Store) Load() ([]*model.Chunk, error) {
	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage error opening %s: %w", s.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // legacy rows carry fewer columns

	// Skip the header row. A file holding nothing else is an empty collection.
	if _, err := r.Read(); err == io.EOF {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("storage error reading header of %s: %w", s.path, err)
	}

	var chunks []*model.Chunk
	for row := 2; ; row++ {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("storage error reading %s: %w", s.path, err)
		}
		c, err := model.ChunkFromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", s.path, row, err)
		}
		chunks = append(chunks, &c)
	}

	// Legacy rows decode with the placeholder id 0. Synthesize distinct ids
	// past the highest explicit one so the collection never holds duplicate
	// ids; the synthesized values reach the disk with the next overwrite.
	maxID := 0
	for _, c := range chunks {
		if c.ID > maxID {
			maxID = c.ID
		}
	}
	for _, c := range chunks {
		if c.ID == 0 {
			maxID++
			c.ID = maxID
		}
	}

	log.Debug().Str("file", s.path).Int("chunks", len(chunks)).Msg("loaded data file")
	return chunks, nil
}

// Append writes the given chunks to the end of the file, assigning each an
// id one past the highest id currently on disk. Existing rows are left
// untouched; the passed chunks get their ID fields set in place, so callers
// must not hold on to ids taken before the call.
func (s *Store) Append(chunks []*model.Chunk) error {
	maxID, exists, err := s.scanMaxID()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if !exists {
		if err := w.Write(Header); err != nil {
			return fmt.Errorf("storage error writing header: %w", err)
		}
	}
	for _, c := range chunks {
		maxID++
		c.ID = maxID
		if err := w.Write(c.Record()); err != nil {
			return fmt.Errorf("storage error writing row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("storage error encoding rows: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("storage error creating directories: %w", err)
	}
	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("storage error opening %s for append: %w", s.path, err)
	}
	if _, err := f.Write(buf.Bytes()); err != nil {
		f.Close()
		return fmt.Errorf("storage error appending to %s: %w", s.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("storage error closing %s: %w", s.path, err)
	}

	log.Debug().Str("file", s.path).Int("appended", len(chunks)).Int("max_id", maxID).Msg("appended chunks")
	return nil
}

// Overwrite rewrites the whole file from scratch: header first, then every
// chunk in list order with ids reassigned densely from 1. This is the only
// way ids are compacted after a delete. The new content goes to a temp file
// which is renamed into place.
func (s *Store) Overwrite(chunks []*model.Chunk) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(Header); err != nil {
		return fmt.Errorf("storage error writing header: %w", err)
	}
	for i, c := range chunks {
		c.ID = i + 1
		if err := w.Write(c.Record()); err != nil {
			return fmt.Errorf("storage error writing row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("storage error encoding rows: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("storage error creating directories: %w", err)
	}

	// Atomic write: write to temp file then rename.
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("storage error writing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error renaming temp file: %w", err)
	}

	log.Debug().Str("file", s.path).Int("chunks", len(chunks)).Msg("rewrote data file")
	return nil
}

// scanMaxID parses the id column of every existing row and returns the
// highest value found, plus whether the file exists at all. Absent or empty
// files scan to 0. Legacy rows without an id column are skipped, matching
// how they decode on load. The scan is O(rows) per append, which is fine:
// the file only grows between scans and appends are not a hot path.
func (s *Store) scanMaxID() (maxID int, exists bool, err error) {
	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("storage error opening %s: %w", s.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	if _, err := r.Read(); err == io.EOF {
		return 0, true, nil
	} else if err != nil {
		return 0, true, fmt.Errorf("storage error reading header of %s: %w", s.path, err)
	}
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, true, fmt.Errorf("storage error scanning %s: %w", s.path, err)
		}
		if len(rec) < 4 {
			continue // legacy row, no id column
		}
		if id, convErr := strconv.Atoi(rec[0]); convErr == nil && id > maxID {
			maxID = id
		}
	}
	return maxID, true, nil
}
