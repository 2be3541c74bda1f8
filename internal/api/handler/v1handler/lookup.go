package v1handler

import (
	"net/http"
	"strconv"

	"emailfinder/pkg/domain"
	"emailfinder/pkg/serrors"

	"github.com/go-faster/jx"
	"github.com/google/uuid"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

func lookupIDParam(r *http.Request) (domain.LookupID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return domain.LookupID{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid lookup id")
	}

	return domain.LookupID(id), nil
}

// CreateLookup schedules a lookup and returns it with 202, or with 200 when
// a cached result completed it right away.
func (h *Handler) CreateLookup(w http.ResponseWriter, r *http.Request) {
	q, err := DecodePersonQuery(r.Body)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	l, err := h.deps.Lookups.Enqueue(r.Context(), GetUserIDFromContext(r.Context()), q)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	status := http.StatusAccepted
	if l.Status == domain.LookupStatusCompleted {
		status = http.StatusOK
	}

	var e jx.Encoder
	EncodeLookup(&e, *l)
	writeJSON(w, status, e.Bytes())
}

// GetLookup returns a lookup by ID.
func (h *Handler) GetLookup(w http.ResponseWriter, r *http.Request) {
	id, err := lookupIDParam(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	l, err := h.deps.Lookups.Result(r.Context(), GetUserIDFromContext(r.Context()), id)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	var e jx.Encoder
	EncodeLookup(&e, *l)
	writeJSON(w, http.StatusOK, e.Bytes())
}

// DeleteLookup deletes a lookup by ID.
func (h *Handler) DeleteLookup(w http.ResponseWriter, r *http.Request) {
	id, err := lookupIDParam(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	if err := h.deps.Lookups.Delete(r.Context(), GetUserIDFromContext(r.Context()), id); err != nil {
		h.writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListLookups returns a page of the caller's lookups. Supported query
// parameters are status, cursor and limit.
func (h *Handler) ListLookups(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	limit := DefaultLimit
	if raw := params.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > MaxLimit {
			h.writeError(w, r, serrors.With(serrors.ErrBadRequest, "limit must be between 1 and %d", MaxLimit))

			return
		}
		limit = n
	}

	status := domain.LookupStatus(params.Get("status"))
	switch status {
	case "", domain.LookupStatusPending, domain.LookupStatusCompleted, domain.LookupStatusFailed:
	default:
		h.writeError(w, r, serrors.With(serrors.ErrBadRequest, "unknown status %q", status))

		return
	}

	lookups, next, err := h.deps.Lookups.UserLookups(r.Context(),
		GetUserIDFromContext(r.Context()),
		status,
		params.Get("cursor"),
		uint(limit)) //nolint: gosec
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	var e jx.Encoder
	EncodeLookupList(&e, lookups, next)
	writeJSON(w, http.StatusOK, e.Bytes())
}
