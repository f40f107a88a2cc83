package api

import (
	"fmt"
	"net/http"

	"concerts/pkg/otel"
	"concerts/pkg/parolee"
)

// createParolee creates a new parolee.
// @Summary Create parolee
// @Accept json,application/cbor
// @Produce json,application/cbor
// @Param parolee body parolee.Parolee true "Parolee"
// @Success 201 {object} parolee.Parolee
// @Failure 400
// @Router /parolees [post]
func (h *Handler) createParolee(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "createParolee")
	defer span.End()

	var p parolee.Parolee
	if !h.decode(w, r, &p) || !h.valid(w, p) {
		return
	}
	p, err := h.parolees.Create(ctx, p)
	if err != nil {
		h.fail(w, r, "create parolee", err)
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/parolees/%d", p.ID))
	h.respond(w, r, http.StatusCreated, p)
}

// listParolees lists parolees ordered by first name, optionally filtered.
// @Summary List parolees
// @Produce json,application/cbor
// @Param firstName query string false "Only parolees with this first name"
// @Success 200 {array} parolee.Parolee
// @Router /parolees [get]
func (h *Handler) listParolees(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "listParolees")
	defer span.End()

	var (
		parolees []parolee.Parolee
		err      error
	)
	if name := r.URL.Query().Get("firstName"); name != "" {
		parolees, err = h.parolees.FindByFirstName(ctx, name)
	} else {
		parolees, err = h.parolees.List(ctx)
	}
	if err != nil {
		h.fail(w, r, "list parolees", err)
		return
	}
	h.respond(w, r, http.StatusOK, parolees)
}

// getParolee retrieves a parolee by ID.
// @Summary Get parolee
// @Produce json,application/cbor
// @Param id path int true "Parolee ID"
// @Success 200 {object} parolee.Parolee
// @Failure 404
// @Router /parolees/{id} [get]
func (h *Handler) getParolee(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "getParolee")
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid parolee id", http.StatusBadRequest)
		return
	}
	p, err := h.parolees.Get(ctx, id)
	if err != nil {
		h.fail(w, r, "get parolee", err)
		return
	}
	h.respond(w, r, http.StatusOK, p)
}

// updateParolee updates an existing parolee.
// @Summary Update parolee
// @Accept json,application/cbor
// @Produce json,application/cbor
// @Param id path int true "Parolee ID"
// @Param parolee body parolee.Parolee true "Parolee"
// @Success 200 {object} parolee.Parolee
// @Failure 400
// @Failure 404
// @Router /parolees/{id} [put]
func (h *Handler) updateParolee(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "updateParolee")
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid parolee id", http.StatusBadRequest)
		return
	}
	var p parolee.Parolee
	if !h.decode(w, r, &p) || !h.valid(w, p) {
		return
	}
	p.ID = id
	if err := h.parolees.Update(ctx, p); err != nil {
		h.fail(w, r, "update parolee", err)
		return
	}
	h.respond(w, r, http.StatusOK, p)
}

// deleteParolee removes a parolee.
// @Summary Delete parolee
// @Param id path int true "Parolee ID"
// @Success 204
// @Failure 404
// @Router /parolees/{id} [delete]
func (h *Handler) deleteParolee(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "deleteParolee")
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid parolee id", http.StatusBadRequest)
		return
	}
	if err := h.parolees.Delete(ctx, id); err != nil {
		h.fail(w, r, "delete parolee", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
