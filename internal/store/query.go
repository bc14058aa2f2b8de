package store

import (
	"math"
	"strings"

	"github.com/PajaGos/To-Do-REST-API/internal/domain"
)

// Paging defaults and limits for task listings.
const (
	DefaultPageNumber = 1
	DefaultPageSize   = 10
	MaxPageSize       = 100
)

// TaskSortField names a column task listings can be ordered by.
type TaskSortField string

const (
	SortNone       TaskSortField = ""
	SortByTitle    TaskSortField = "title"
	SortByPriority TaskSortField = "priority"
	SortByDueDate  TaskSortField = "duedate"
)

// ParseTaskSortField matches s case-insensitively against the known sort
// fields. Unknown values yield SortNone so the default order applies.
func ParseTaskSortField(s string) TaskSortField {
	switch f := TaskSortField(strings.ToLower(strings.TrimSpace(s))); f {
	case SortByTitle, SortByPriority, SortByDueDate:
		return f
	default:
		return SortNone
	}
}

// TaskQuery filters, orders and pages a task listing.
// Filters combine with AND; zero values disable them.
type TaskQuery struct {
	UserID       *int64
	CategoryName string
	SortBy       TaskSortField
	Descending   bool
	PageNumber   int
	PageSize     int
}

// Normalized fills unset paging fields with defaults and clamps the page size.
func (q TaskQuery) Normalized() TaskQuery {
	if q.PageNumber < 1 {
		q.PageNumber = DefaultPageNumber
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}
	return q
}

// Offset is the number of matching rows skipped before the page starts.
// It saturates at math.MaxInt instead of overflowing, so a page far past
// the end stays past the end.
func (q TaskQuery) Offset() int {
	if q.PageNumber <= 1 || q.PageSize <= 0 {
		return 0
	}
	if q.PageNumber-1 > math.MaxInt/q.PageSize {
		return math.MaxInt
	}
	return (q.PageNumber - 1) * q.PageSize
}

// TaskPage is one page of a task listing.
type TaskPage struct {
	Items      []domain.Task
	TotalItems int64
}
