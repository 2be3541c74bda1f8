package v1handler

import (
	"net/http"

	"github.com/go-faster/jx"
)

// FindEmails runs a lookup synchronously within the request.
func (h *Handler) FindEmails(w http.ResponseWriter, r *http.Request) {
	q, err := DecodePersonQuery(r.Body)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	res, err := h.deps.Finder.Find(r.Context(), q)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	var e jx.Encoder
	EncodeFindResult(&e, *res)
	writeJSON(w, http.StatusOK, e.Bytes())
}
