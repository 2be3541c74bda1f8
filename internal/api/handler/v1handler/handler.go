// Package v1handler implements the v1 HTTP API: asynchronous lookups backed
// by the job queue and a synchronous find endpoint.
package v1handler

import (
	"context"
	"errors"
	"net/http"

	"emailfinder/internal/finder"
	"emailfinder/internal/lookup"
	"emailfinder/pkg/logger"
	"emailfinder/pkg/serrors"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// Deps are the services used by the handlers.
type Deps struct {
	Lookups lookup.Service
	Finder  finder.Finder
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Routes registers the v1 endpoints on mux, relative to prefix. Every route is
// authenticated by sec.
func (h *Handler) Routes(mux *http.ServeMux, prefix string, sec *SecHandler) {
	handle := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, sec.Middleware(fn))
	}

	handle("POST "+prefix+"/lookups", h.CreateLookup)
	handle("GET "+prefix+"/lookups", h.ListLookups)
	handle("GET "+prefix+"/lookups/{id}", h.GetLookup)
	handle("DELETE "+prefix+"/lookups/{id}", h.DeleteLookup)
	handle("POST "+prefix+"/find", h.FindEmails)
}

// ErrorResponse is the body of every non 2xx response.
type ErrorResponse struct {
	Code    string
	Message string
}

// ErrorStatusCode pairs an ErrorResponse with its HTTP status.
type ErrorStatusCode struct {
	StatusCode int
	Response   ErrorResponse
}

var kindStatus = []struct {
	kind    serrors.Kind
	status  int
	message string
}{
	{serrors.ErrNotFound, http.StatusNotFound, "resource not found"},
	{serrors.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
	{serrors.ErrForbidden, http.StatusForbidden, "forbidden"},
	{serrors.ErrBadRequest, http.StatusBadRequest, "bad request"},
	{serrors.ErrConflict, http.StatusConflict, "conflict"},
	{serrors.ErrUnresolvable, http.StatusUnprocessableEntity, "no domain could be resolved"},
	{serrors.ErrRateLimited, http.StatusTooManyRequests, "too many requests"},
	{serrors.ErrTimeout, http.StatusGatewayTimeout, "request timed out"},
	{serrors.ErrUnavailable, http.StatusServiceUnavailable, "service unavailable"},
}

// NewError maps err to a status code and a response body. Only semantic
// errors expose their message; anything else becomes an internal error and is
// logged.
func (h *Handler) NewError(ctx context.Context, err error) *ErrorStatusCode {
	for _, ks := range kindStatus {
		if !errors.Is(err, ks.kind) {
			continue
		}

		msg := ks.message
		var sErr *serrors.Error
		if errors.As(err, &sErr) && sErr.Message() != "" {
			msg = sErr.Message()
		}

		return &ErrorStatusCode{
			StatusCode: ks.status,
			Response:   ErrorResponse{Code: ks.kind.Error(), Message: msg},
		}
	}

	logger.Error(ctx, "internal error", zap.Error(err))

	return &ErrorStatusCode{
		StatusCode: http.StatusInternalServerError,
		Response: ErrorResponse{
			Code:    serrors.ErrInternal.Error(),
			Message: "internal error",
		},
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)

	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("code", func(e *jx.Encoder) { e.Str(res.Response.Code) })
		e.Field("message", func(e *jx.Encoder) { e.Str(res.Response.Message) })
	})
	writeJSON(w, res.StatusCode, e.Bytes())
}

func writeJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
