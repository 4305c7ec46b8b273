package webhook

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/jekabolt/waitlister/internal/apisrv/respond"
	"github.com/jekabolt/waitlister/internal/dto"
	gerr "github.com/jekabolt/waitlister/internal/errors"
	"github.com/jekabolt/waitlister/internal/metrics"
	"github.com/jekabolt/waitlister/internal/payment/creem"
)

const maxBodySize = 1 << 20

type Server struct {
	creem *creem.Processor
}

func New(p *creem.Processor) *Server {
	return &Server{creem: p}
}

// Creem receives payment events. Only a missing secret, a bad signature,
// a malformed body or a store failure produce an error status.
func (s *Server) Creem(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		metrics.RecordWebhook(metrics.WebhookRejected)
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			respond.Error(w, r, "Creem:ReadAll", gerr.ErrTooLarge)
			return
		}
		respond.Error(w, r, "Creem:ReadAll", gerr.Validation("Invalid request body."))
		return
	}

	if err := s.creem.Verify(body, r.Header.Get(creem.SignatureHeader)); err != nil {
		metrics.RecordWebhook(metrics.WebhookRejected)
		switch {
		case errors.Is(err, creem.ErrSecretNotConfigured):
			slog.Default().ErrorContext(r.Context(), "creem webhook secret is not configured")
			render.Render(w, r, respond.ErrInternalServerError(err))
		case errors.Is(err, creem.ErrMissingSignature):
			render.Render(w, r, respond.ErrUnauthorized("Missing signature"))
		default:
			slog.Default().WarnContext(r.Context(), "creem webhook signature mismatch")
			render.Render(w, r, respond.ErrUnauthorized("Invalid signature"))
		}
		return
	}

	event, err := creem.ParseEvent(body)
	if err != nil {
		metrics.RecordWebhook(metrics.WebhookRejected)
		respond.Error(w, r, "Creem:ParseEvent", gerr.Validation("Invalid JSON payload."))
		return
	}

	res, err := s.creem.HandleEvent(r.Context(), event, body)
	if err != nil {
		respond.Error(w, r, "Creem:HandleEvent", err)
		return
	}

	switch {
	case res.Ignored:
		metrics.RecordWebhook(metrics.WebhookIgnored)
	case res.Pending:
		metrics.RecordWebhook(metrics.WebhookPending)
	default:
		metrics.RecordWebhook(metrics.WebhookApplied)
	}

	respond.JSON(w, r, http.StatusOK, &dto.WebhookResponse{
		Received: true,
		Ignored:  res.Ignored,
		Pending:  res.Pending,
		Reason:   res.Reason,
		UserId:   res.UserId,
	})
}
