package repository

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Tisaghu/Work-Billing-Tracker/internal/calendar"
	"github.com/Tisaghu/Work-Billing-Tracker/internal/model"
	"github.com/Tisaghu/Work-Billing-Tracker/internal/stats"
	"github.com/Tisaghu/Work-Billing-Tracker/internal/storage"
)

// ErrInvalidMinutes rejects non-positive minute values. Validation happens
// before anything touches the file, so a rejected add never corrupts state.
var ErrInvalidMinutes = errors.New("minutes must be a positive integer")

// Progress reports billed minutes against the quota for a range. Remaining
// is Required minus Billed and may be negative when more was billed than
// required; clamping for display is the presentation layer's choice.
type Progress struct {
	Required  int
	Billed    int
	Remaining int
}

// Repository owns the in-memory chunk collection and its per-day index and
// funnels every mutation through the store. A mutation reloads from disk,
// applies the change, persists, then reloads again, so a save is never based
// on a stale snapshot and the index always ends up reflecting the
// authoritative file.
//
// The file is not locked: a second process writing between our reload and
// save can still lose its update. Accepted limitation for a single-user
// tool.
type Repository struct {
	store     *storage.Store
	dailyGoal int

	chunks []*model.Chunk
	days   map[time.Time]*model.Day
}

// New binds a repository to a store, loads the collection and builds the
// day index.
func New(store *storage.Store, dailyGoal int) (*Repository, error) {
	r := &Repository{store: store, dailyGoal: dailyGoal}
	if err := r.Reload(); err != nil {
		return nil, err
	}
	return r, nil
}

// Reload re-reads the collection from disk and rebuilds the day index
// wholesale.
func (r *Repository) Reload() error {
	chunks, err := r.store.Load()
	if err != nil {
		return err
	}
	r.chunks = chunks
	r.days = stats.BuildDayIndex(chunks)
	return nil
}

// DailyGoal returns the per-workday minute quota the repository reports
// against.
func (r *Repository) DailyGoal() int { return r.dailyGoal }

// LoadAll returns every chunk in file order, as of the last reload.
func (r *Repository) LoadAll() []*model.Chunk { return r.chunks }

// EntriesForDate returns the chunks billed to the given date in the order
// they were recorded, or nil when the date has none.
func (r *Repository) EntriesForDate(date time.Time) []*model.Chunk {
	if day, ok := r.days[calendar.DateOf(date)]; ok {
		return day.Chunks
	}
	return nil
}

// TotalForDay returns the minutes billed to one date.
func (r *Repository) TotalForDay(date time.Time) int {
	return stats.TotalForDay(r.chunks, date)
}

// TotalForRange returns the minutes billed in [start, end] inclusive.
func (r *Repository) TotalForRange(start, end time.Time) int {
	return stats.TotalForRange(r.chunks, start, end)
}

// AddEntry records a single chunk of work against a date.
func (r *Repository) AddEntry(date time.Time, minutes int, description string) error {
	return r.AddEntries(date, []int{minutes}, description)
}

// AddEntries records one chunk per minute value, all on the same date with a
// shared description, in a single append so the id scan runs once for the
// whole batch. The whole list is validated before anything is written.
func (r *Repository) AddEntries(date time.Time, minutes []int, description string) error {
	for _, m := range minutes {
		if m <= 0 {
			return fmt.Errorf("%w: got %d", ErrInvalidMinutes, m)
		}
	}
	if len(minutes) == 0 {
		return nil
	}

	if err := r.Reload(); err != nil {
		return err
	}

	day := calendar.DateOf(date)
	chunks := make([]*model.Chunk, 0, len(minutes))
	for _, m := range minutes {
		chunks = append(chunks, &model.Chunk{
			Date:        day,
			Minutes:     m,
			Description: strings.TrimSpace(description),
		})
	}
	if err := r.store.Append(chunks); err != nil {
		return err
	}
	log.Debug().Str("date", day.Format(model.DateFormat)).Int("count", len(chunks)).Msg("recorded chunks")
	return r.Reload()
}

// DeleteEntry removes the chunk with the given id and compacts the file,
// renumbering the remainder densely from 1. An id that does not exist is a
// no-op, not an error; front ends detect it by re-querying.
func (r *Repository) DeleteEntry(id int) error {
	if err := r.Reload(); err != nil {
		return err
	}

	kept := make([]*model.Chunk, 0, len(r.chunks))
	for _, c := range r.chunks {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(r.chunks) {
		log.Debug().Int("id", id).Msg("delete: id not present, nothing to do")
		return nil
	}

	if err := r.store.Overwrite(kept); err != nil {
		return err
	}
	log.Debug().Int("id", id).Int("remaining", len(kept)).Msg("deleted chunk")
	return r.Reload()
}

// MaxID reloads and returns the highest id in the collection, 0 when empty.
func (r *Repository) MaxID() (int, error) {
	if err := r.Reload(); err != nil {
		return 0, err
	}
	max := 0
	for _, c := range r.chunks {
		if c.ID > max {
			max = c.ID
		}
	}
	return max, nil
}

// WeekProgress reports required, billed and remaining minutes for the ISO
// week (Monday through Sunday) containing the date.
func (r *Repository) WeekProgress(date time.Time) Progress {
	start, end := calendar.WeekRange(date)
	return r.progress(start, end)
}

// MonthProgress reports required, billed and remaining minutes for the
// calendar month containing the date.
func (r *Repository) MonthProgress(date time.Time) Progress {
	start, end := calendar.MonthRange(date)
	return r.progress(start, end)
}

// DayProgress reports progress for a single date. The requirement is the
// daily goal on a workday and zero on a weekend.
func (r *Repository) DayProgress(date time.Time) Progress {
	d := calendar.DateOf(date)
	return r.progress(d, d)
}

func (r *Repository) progress(start, end time.Time) Progress {
	required := stats.RequiredMinutes(start, end, r.dailyGoal)
	billed := stats.TotalForRange(r.chunks, start, end)
	return Progress{Required: required, Billed: billed, Remaining: required - billed}
}
