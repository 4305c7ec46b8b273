package waitlist

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/jekabolt/waitlister/internal/apisrv/respond"
	"github.com/jekabolt/waitlister/internal/dto"
	"github.com/jekabolt/waitlister/internal/entity"
	gerr "github.com/jekabolt/waitlister/internal/errors"
	"github.com/jekabolt/waitlister/internal/form"
	"github.com/jekabolt/waitlister/internal/metrics"
)

const (
	alreadyJoinedMessage = "You're already on the waitlist!"
	mailTimeout          = 10 * time.Second
)

// Join adds an email to a waitlist. It is public and idempotent: joining
// again with the same email reports alreadyExists instead of failing.
func (s *Server) Join(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	req := &form.JoinWaitlistRequest{}
	if err := render.DecodeJSON(r.Body, req); err != nil {
		respond.Error(w, r, "Join:DecodeJSON", gerr.Validation("Invalid JSON body."))
		return
	}
	if err := req.Validate(); err != nil {
		respond.Error(w, r, "Join:Validate", err)
		return
	}

	wl, err := s.repo.Waitlist().GetWaitlistById(ctx, id)
	if err != nil {
		respond.Error(w, r, "Join:GetWaitlistById", err)
		return
	}

	_, err = s.repo.Entries().GetEntryByEmail(ctx, wl.Id, req.Email)
	switch {
	case err == nil:
		s.alreadyJoined(w, r)
		return
	case !errors.Is(err, sql.ErrNoRows):
		respond.Error(w, r, "Join:GetEntryByEmail", err)
		return
	}

	entry, err := s.repo.Entries().AddEntry(ctx, req.EntryInsert(wl.Id))
	if err != nil {
		if errors.Is(err, gerr.ErrAlreadyJoined) {
			// lost a race with a concurrent join of the same email
			s.alreadyJoined(w, r)
			return
		}
		respond.Error(w, r, "Join:AddEntry", err)
		return
	}
	metrics.RecordJoin(metrics.JoinCreated)

	s.sendConfirmation(wl, entry)

	respond.JSON(w, r, http.StatusCreated, &dto.JoinResponse{
		Success: true,
		Entry:   dto.ConvertEntry(entry),
	})
}

func (s *Server) alreadyJoined(w http.ResponseWriter, r *http.Request) {
	metrics.RecordJoin(metrics.JoinDuplicate)
	respond.JSON(w, r, http.StatusOK, &dto.JoinResponse{
		Success:       true,
		AlreadyExists: true,
		Message:       alreadyJoinedMessage,
	})
}

// sendConfirmation mails the new entry in the background. The response
// never waits for it and a failure is only logged.
func (s *Server) sendConfirmation(wl *entity.Waitlist, e *entity.WaitlistEntry) {
	if s.mailer == nil || !s.mailer.Enabled() {
		return
	}
	if s.mailLimits != nil && !s.mailLimits.Allow(e.Email) {
		slog.Default().Info("confirmation mail rate limited",
			slog.String("waitlist_id", wl.Id),
		)
		return
	}

	jc := &entity.JoinConfirmation{
		WaitlistName: wl.Name,
		Name:         e.Name.String,
		Email:        e.Email,
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), mailTimeout)
		defer cancel()

		err := s.mailer.SendJoinConfirmation(ctx, e.Email, jc)
		metrics.RecordMail(err)
		if err != nil {
			slog.Default().ErrorContext(ctx, "can't send join confirmation",
				slog.String("waitlist_id", wl.Id),
				slog.String("err", err.Error()),
			)
		}
	}()
}
