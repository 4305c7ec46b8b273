package waitlist

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jekabolt/waitlister/internal/apisrv/respond"
	"github.com/jekabolt/waitlister/internal/dto"
	"github.com/jekabolt/waitlister/internal/entity"
	gerr "github.com/jekabolt/waitlister/internal/errors"
	"github.com/jekabolt/waitlister/internal/form"
	"golang.org/x/sync/errgroup"
)

const (
	growthDays  = 30
	recentLimit = 10
)

// Analytics returns the total, the last 30 days of daily signups and the 10
// newest entries. Waitlists of other accounts are reported as not found.
func (s *Server) Analytics(w http.ResponseWriter, r *http.Request) {
	wl, err := s.ownedWaitlist(r, chi.URLParam(r, "id"), gerr.WaitlistNotFound)
	if err != nil {
		respond.Error(w, r, "Analytics:ownedWaitlist", err)
		return
	}

	var (
		a     entity.WaitlistAnalytics
		since = s.repo.Now().AddDate(0, 0, -growthDays)
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		a.Total, err = s.repo.Analytics().CountEntries(ctx, wl.Id)
		return err
	})
	g.Go(func() error {
		var err error
		a.Growth, err = s.repo.Analytics().DailyGrowth(ctx, wl.Id, since)
		return err
	})
	g.Go(func() error {
		var err error
		a.Recent, err = s.repo.Analytics().RecentEntries(ctx, wl.Id, recentLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		respond.Error(w, r, "Analytics:Wait", err)
		return
	}

	respond.JSON(w, r, http.StatusOK, dto.ConvertAnalytics(&a))
}

// Submissions returns one page of entries, optionally filtered by an email
// substring.
func (s *Server) Submissions(w http.ResponseWriter, r *http.Request) {
	wl, err := s.ownedWaitlist(r, chi.URLParam(r, "id"), gerr.WaitlistNotFound)
	if err != nil {
		respond.Error(w, r, "Submissions:ownedWaitlist", err)
		return
	}

	sq := form.ParseSubmissionsQuery(r.URL.Query())
	entries, total, err := s.repo.Entries().GetEntriesPaged(r.Context(), sq.Filter(wl.Id))
	if err != nil {
		respond.Error(w, r, "Submissions:GetEntriesPaged", err)
		return
	}

	respond.JSON(w, r, http.StatusOK, &dto.Submissions{
		Entries:    dto.ConvertEntries(entries),
		Total:      total,
		Page:       sq.Page,
		Limit:      sq.Limit,
		TotalPages: sq.TotalPages(total),
	})
}
