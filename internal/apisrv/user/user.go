package user

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jekabolt/waitlister/internal/apisrv/auth"
	"github.com/jekabolt/waitlister/internal/apisrv/respond"
	"github.com/jekabolt/waitlister/internal/dependency"
	"github.com/jekabolt/waitlister/internal/dto"
	"github.com/jekabolt/waitlister/internal/entity"
	gerr "github.com/jekabolt/waitlister/internal/errors"
)

// Server implements the account endpoints.
type Server struct {
	repo dependency.Repository
}

func New(repo dependency.Repository) *Server {
	return &Server{repo: repo}
}

// PaymentStatus reports the caller's lifetime access flag. An unpaid account
// with a pending payment recorded for its email is settled first.
func (s *Server) PaymentStatus(w http.ResponseWriter, r *http.Request) {
	acc, ok := auth.AccountFromContext(r.Context())
	if !ok {
		respond.Error(w, r, "PaymentStatus", gerr.ErrUnauthenticated)
		return
	}

	paid := acc.Payment
	if !paid {
		var err error
		paid, err = s.ApplyPendingPayment(r.Context(), acc)
		if err != nil {
			respond.Error(w, r, "PaymentStatus:ApplyPendingPayment", err)
			return
		}
	}

	respond.JSON(w, r, http.StatusOK, &dto.PaymentStatusResponse{Payment: paid})
}

// ApplyPendingPayment marks the account paid and removes the pending row in
// one transaction. It reports whether a pending payment was found.
func (s *Server) ApplyPendingPayment(ctx context.Context, acc *entity.Account) (bool, error) {
	applied := false
	err := s.repo.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		pp, err := rep.Payments().GetPendingPaymentByEmail(ctx, acc.Email)
		if err != nil {
			if errors.Is(err, gerr.ErrNotFound) {
				return nil
			}
			return err
		}
		if err := rep.Accounts().SetPayment(ctx, acc.Id, true); err != nil {
			return err
		}
		if err := rep.Payments().DeletePendingPayment(ctx, pp.Id); err != nil {
			return err
		}
		applied = true
		return nil
	})
	if err != nil {
		return false, err
	}
	if applied {
		slog.Default().InfoContext(ctx, "pending payment applied",
			slog.String("account_id", acc.Id),
		)
	}
	return applied, nil
}
