package respond

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	gerr "github.com/jekabolt/waitlister/internal/errors"
)

// ErrResponse is the body of every failed request.
type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func newErr(err error, code int, msg string) *ErrResponse {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: code,
		Message:        msg,
	}
}

func ErrInvalidRequest(err error) render.Renderer {
	return newErr(err, http.StatusBadRequest, err.Error())
}

func ErrUnauthorized(msg string) render.Renderer {
	return newErr(gerr.ErrUnauthenticated, http.StatusUnauthorized, msg)
}

func ErrForbidden() render.Renderer {
	return newErr(gerr.ErrForbidden, http.StatusForbidden, "Forbidden")
}

func ErrNotFound(msg string) render.Renderer {
	return newErr(gerr.ErrNotFound, http.StatusNotFound, msg)
}

func ErrTooLarge(msg string) render.Renderer {
	return newErr(gerr.ErrTooLarge, http.StatusRequestEntityTooLarge, msg)
}

func ErrTooManyRequests() render.Renderer {
	return newErr(nil, http.StatusTooManyRequests, "Too many requests")
}

func ErrInternalServerError(err error) render.Renderer {
	return newErr(err, http.StatusInternalServerError, "Internal server error")
}

// Error maps err to a response and renders it. Infrastructure errors are
// logged with the operation name and answered with a generic message.
func Error(w http.ResponseWriter, r *http.Request, op string, err error) {
	var rr render.Renderer
	switch {
	case errors.Is(err, gerr.ErrValidation):
		rr = ErrInvalidRequest(err)
	case errors.Is(err, gerr.ErrUnauthenticated):
		rr = ErrUnauthorized("Unauthorized")
	case errors.Is(err, gerr.ErrForbidden):
		rr = ErrForbidden()
	case errors.Is(err, gerr.WaitlistNotFound):
		rr = ErrNotFound("Waitlist not found")
	case errors.Is(err, gerr.ErrNotFound):
		rr = ErrNotFound("Not found")
	case errors.Is(err, gerr.ErrTooLarge):
		rr = ErrTooLarge(err.Error())
	default:
		slog.Default().ErrorContext(r.Context(), op,
			slog.String("err", err.Error()),
		)
		rr = ErrInternalServerError(err)
	}
	render.Render(w, r, rr)
}

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	render.Status(r, status)
	render.JSON(w, r, v)
}

// RawJSON writes an already encoded JSON body untouched.
func RawJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}
