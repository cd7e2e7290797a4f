package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateFormat is the ISO-8601 date layout used in the persisted file.
const DateFormat = "2006-01-02"

var errTooFewFields = errors.New("want at least date and minutes")

// Chunk represents one chunk of work (in minutes) billed to a specific date.
// The ID is assigned by the store when the chunk is saved; until then it
// holds the zero placeholder, and callers must never pick ids themselves.
type Chunk struct {
	ID          int
	Date        time.Time
	Minutes     int
	Description string
}

// Day groups the chunks recorded on one calendar date, in recorded order.
// It is derived from a loaded collection and never persisted.
type Day struct {
	Date   time.Time
	Chunks []*Chunk
}

// ParseError reports a persisted field that could not be decoded.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("bad %s field %q: %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Record converts the chunk to its persisted form: id, ISO date, minutes,
// description. The description is carried verbatim; quoting is the CSV
// layer's job.
func (c *Chunk) Record() []string {
	return []string{
		strconv.Itoa(c.ID),
		c.Date.Format(DateFormat),
		strconv.Itoa(c.Minutes),
		c.Description,
	}
}

// ChunkFromRecord decodes one persisted record. Current records carry four
// fields (id, date, minutes, description). Files written before ids existed
// have three-field records (date, minutes, description), and the oldest have
// only date and minutes; both decode with ID 0, the placeholder the store
// replaces with a synthesized id when it loads the collection.
func ChunkFromRecord(rec []string) (Chunk, error) {
	if len(rec) < 2 {
		return Chunk{}, &ParseError{Field: "record", Value: strings.Join(rec, ","), Err: errTooFewFields}
	}

	var c Chunk
	i := 0
	if len(rec) >= 4 {
		id, err := strconv.Atoi(rec[0])
		if err != nil {
			return Chunk{}, &ParseError{Field: "id", Value: rec[0], Err: err}
		}
		c.ID = id
		i = 1
	}

	date, err := time.Parse(DateFormat, rec[i])
	if err != nil {
		return Chunk{}, &ParseError{Field: "date", Value: rec[i], Err: err}
	}
	c.Date = date

	minutes, err := strconv.Atoi(rec[i+1])
	if err != nil {
		return Chunk{}, &ParseError{Field: "minutes", Value: rec[i+1], Err: err}
	}
	c.Minutes = minutes

	if len(rec) > i+2 {
		c.Description = rec[i+2]
	}
	return c, nil
}
