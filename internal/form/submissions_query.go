package form

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/jekabolt/waitlister/internal/entity"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// SubmissionsQuery is the parsed query string of the submissions listing.
// Out of range or malformed values fall back to defaults instead of failing.
type SubmissionsQuery struct {
	Page   int
	Limit  int
	Search string
}

func ParseSubmissionsQuery(q url.Values) *SubmissionsQuery {
	sq := &SubmissionsQuery{
		Page:   DefaultPage,
		Limit:  DefaultLimit,
		Search: strings.ToLower(strings.TrimSpace(q.Get("search"))),
	}
	if p, err := strconv.Atoi(q.Get("page")); err == nil && p >= 1 {
		sq.Page = p
	}
	if l, err := strconv.Atoi(q.Get("limit")); err == nil && l >= 1 {
		sq.Limit = min(l, MaxLimit)
	}
	return sq
}

func (sq *SubmissionsQuery) Offset() int {
	return (sq.Page - 1) * sq.Limit
}

// TotalPages is ceil(total/limit).
func (sq *SubmissionsQuery) TotalPages(total int) int {
	return (total + sq.Limit - 1) / sq.Limit
}

func (sq *SubmissionsQuery) Filter(waitlistId string) *entity.EntriesFilter {
	return &entity.EntriesFilter{
		WaitlistId: waitlistId,
		Search:     sq.Search,
		Limit:      sq.Limit,
		Offset:     sq.Offset(),
	}
}
