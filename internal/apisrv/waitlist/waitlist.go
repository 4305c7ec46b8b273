package waitlist

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/jekabolt/waitlister/internal/apisrv/auth"
	"github.com/jekabolt/waitlister/internal/apisrv/respond"
	"github.com/jekabolt/waitlister/internal/dependency"
	"github.com/jekabolt/waitlister/internal/dto"
	"github.com/jekabolt/waitlister/internal/entity"
	gerr "github.com/jekabolt/waitlister/internal/errors"
	"github.com/jekabolt/waitlister/internal/form"
	"github.com/jekabolt/waitlister/internal/ratelimit"
)

// maxSettingsSize bounds a settings document.
const maxSettingsSize = 64 << 10

// Server implements the waitlist endpoints.
type Server struct {
	repo       dependency.Repository
	mailer     dependency.Mailer
	mailLimits *ratelimit.Limiter
}

// New creates a new waitlist server. mailer may be nil.
func New(repo dependency.Repository, mailer dependency.Mailer, mailLimits *ratelimit.Limiter) *Server {
	return &Server{
		repo:       repo,
		mailer:     mailer,
		mailLimits: mailLimits,
	}
}

// ListWaitlists returns the caller's waitlists, newest first.
func (s *Server) ListWaitlists(w http.ResponseWriter, r *http.Request) {
	acc, ok := auth.AccountFromContext(r.Context())
	if !ok {
		respond.Error(w, r, "ListWaitlists", gerr.ErrUnauthenticated)
		return
	}

	wls, err := s.repo.Waitlist().ListWaitlists(r.Context(), acc.Id)
	if err != nil {
		respond.Error(w, r, "ListWaitlists:ListWaitlists", err)
		return
	}

	respond.JSON(w, r, http.StatusOK, &dto.WaitlistsResponse{
		Waitlists: dto.ConvertWaitlists(wls),
	})
}

func (s *Server) CreateWaitlist(w http.ResponseWriter, r *http.Request) {
	acc, ok := auth.AccountFromContext(r.Context())
	if !ok {
		respond.Error(w, r, "CreateWaitlist", gerr.ErrUnauthenticated)
		return
	}

	req := &form.CreateWaitlistRequest{}
	if err := render.DecodeJSON(r.Body, req); err != nil {
		respond.Error(w, r, "CreateWaitlist:DecodeJSON", gerr.Validation("Invalid JSON body."))
		return
	}
	if err := req.Validate(); err != nil {
		respond.Error(w, r, "CreateWaitlist:Validate", err)
		return
	}

	wl, err := s.repo.Waitlist().AddWaitlist(r.Context(), req.WaitlistInsert(acc.Id))
	if err != nil {
		respond.Error(w, r, "CreateWaitlist:AddWaitlist", err)
		return
	}

	respond.JSON(w, r, http.StatusCreated, &dto.WaitlistResponse{
		Success:  true,
		Waitlist: dto.ConvertWaitlist(wl),
	})
}

// DeleteWaitlist deletes the waitlist given by the id query parameter.
// Entries go with it.
func (s *Server) DeleteWaitlist(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		respond.Error(w, r, "DeleteWaitlist", gerr.Validation("Waitlist id is required."))
		return
	}

	if _, err := s.ownedWaitlist(r, id, gerr.ErrForbidden); err != nil {
		respond.Error(w, r, "DeleteWaitlist:ownedWaitlist", err)
		return
	}

	if err := s.repo.Waitlist().DeleteWaitlistById(r.Context(), id); err != nil {
		respond.Error(w, r, "DeleteWaitlist:DeleteWaitlistById", err)
		return
	}

	respond.JSON(w, r, http.StatusOK, &dto.SuccessResponse{Success: true})
}

// GetWaitlist is public; the hosted page and the widget render from it.
func (s *Server) GetWaitlist(w http.ResponseWriter, r *http.Request) {
	wl, err := s.repo.Waitlist().GetWaitlistById(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, r, "GetWaitlist:GetWaitlistById", err)
		return
	}

	respond.JSON(w, r, http.StatusOK, &dto.WaitlistResponse{
		Success:  true,
		Waitlist: dto.ConvertWaitlist(wl),
	})
}

func (s *Server) GetSettings(w http.ResponseWriter, r *http.Request) {
	wl, err := s.ownedWaitlist(r, chi.URLParam(r, "id"), gerr.ErrForbidden)
	if err != nil {
		respond.Error(w, r, "GetSettings:ownedWaitlist", err)
		return
	}

	respond.RawJSON(w, http.StatusOK, dto.SettingsBody(wl))
}

// PutSettings replaces the whole settings document with the request body.
func (s *Server) PutSettings(w http.ResponseWriter, r *http.Request) {
	wl, err := s.ownedWaitlist(r, chi.URLParam(r, "id"), gerr.ErrForbidden)
	if err != nil {
		respond.Error(w, r, "PutSettings:ownedWaitlist", err)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxSettingsSize))
	if err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			respond.Error(w, r, "PutSettings:ReadAll", gerr.ErrTooLarge)
			return
		}
		respond.Error(w, r, "PutSettings:ReadAll", gerr.Validation("Invalid request body."))
		return
	}
	if err := form.ValidateSettings(body); err != nil {
		respond.Error(w, r, "PutSettings:ValidateSettings", err)
		return
	}

	doc := bytes.TrimSpace(body)
	var stored []byte
	if !form.IsNullSettings(doc) {
		stored = doc
	}
	if err := s.repo.Waitlist().UpdateSettings(r.Context(), wl.Id, stored); err != nil {
		respond.Error(w, r, "PutSettings:UpdateSettings", err)
		return
	}

	respond.RawJSON(w, http.StatusOK, dto.SettingsUpdatedBody(doc))
}

// ownedWaitlist loads the waitlist and checks the caller owns it. A waitlist
// owned by someone else yields notOwned.
func (s *Server) ownedWaitlist(r *http.Request, id string, notOwned error) (*entity.Waitlist, error) {
	acc, ok := auth.AccountFromContext(r.Context())
	if !ok {
		return nil, gerr.ErrUnauthenticated
	}

	wl, err := s.repo.Waitlist().GetWaitlistById(r.Context(), id)
	if err != nil {
		return nil, err
	}
	if !wl.IsOwnedBy(acc.Id) {
		slog.Default().InfoContext(r.Context(), "waitlist access denied",
			slog.String("waitlist_id", id),
			slog.String("account_id", acc.Id),
		)
		return nil, notOwned
	}
	return wl, nil
}
