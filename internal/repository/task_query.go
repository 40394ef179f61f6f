package repository

import (
	"strings"
	"time"
)

const (
	// DefaultPageSize is used when the requested page size is missing or non-positive.
	DefaultPageSize = 10
	// MaxPageSize caps the page size a client may request.
	MaxPageSize = 50
)

// TaskQuery carries the optional filter, sort, and paging parameters of a
// task listing. The zero value lists the newest DefaultPageSize tasks.
type TaskQuery struct {
	IsCompleted   *bool
	DueFrom       *time.Time
	DueTo         *time.Time
	CreatedBy     string
	AssignedTo    string
	Search        string
	SortBy        string
	SortDirection string
	Page          int
	PageSize      int
}

// limits returns the effective offset and limit. Pages are 1-based; a
// non-positive page means the first page, and the page size is clamped
// to [DefaultPageSize default, MaxPageSize].
func (q TaskQuery) limits() (offset, limit int) {
	page := q.Page
	if page <= 0 {
		page = 1
	}
	size := q.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return (page - 1) * size, size
}

// orderClause maps the requested sort key and direction onto a fixed set of
// ORDER BY clauses. Unrecognized values fall back to created_at descending.
func (q TaskQuery) orderClause() string {
	column := "created_at"
	switch strings.ToLower(q.SortBy) {
	case "title":
		column = "title"
	case "duedate":
		column = "due_date"
	}
	if strings.ToLower(q.SortDirection) == "asc" {
		return column + " ASC"
	}
	return column + " DESC"
}

// dueBounds floors DueFrom to the start of its calendar day and pushes DueTo
// past the end of its day, so a single-day range matches the whole day. The
// returned upper bound is exclusive.
func (q TaskQuery) dueBounds() (from, before *time.Time) {
	if q.DueFrom != nil {
		f := startOfDay(*q.DueFrom)
		from = &f
	}
	if q.DueTo != nil {
		b := startOfDay(*q.DueTo).AddDate(0, 0, 1)
		before = &b
	}
	return from, before
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
