package api

import (
	"fmt"
	"net/http"

	"concerts/pkg/otel"
	"concerts/pkg/performer"
)

// createPerformer creates a new performer.
// @Summary Create performer
// @Accept json,application/cbor
// @Produce json,application/cbor
// @Param performer body performer.Performer true "Performer"
// @Success 201 {object} performer.Performer
// @Failure 400
// @Router /performers [post]
func (h *Handler) createPerformer(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "createPerformer")
	defer span.End()

	var p performer.Performer
	if !h.decode(w, r, &p) || !h.valid(w, p) {
		return
	}
	p, err := h.performers.Create(ctx, p)
	if err != nil {
		h.fail(w, r, "create performer", err)
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/performers/%d", p.ID))
	h.respond(w, r, http.StatusCreated, p)
}

// listPerformers lists performers.
// @Summary List performers
// @Produce json,application/cbor
// @Success 200 {array} performer.Performer
// @Router /performers [get]
func (h *Handler) listPerformers(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "listPerformers")
	defer span.End()

	performers, err := h.performers.List(ctx)
	if err != nil {
		h.fail(w, r, "list performers", err)
		return
	}
	h.respond(w, r, http.StatusOK, performers)
}

// getPerformer retrieves a performer by ID.
// @Summary Get performer
// @Produce json,application/cbor
// @Param id path int true "Performer ID"
// @Success 200 {object} performer.Performer
// @Failure 404
// @Router /performers/{id} [get]
func (h *Handler) getPerformer(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "getPerformer")
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid performer id", http.StatusBadRequest)
		return
	}
	p, err := h.performers.Get(ctx, id)
	if err != nil {
		h.fail(w, r, "get performer", err)
		return
	}
	h.respond(w, r, http.StatusOK, p)
}

// updatePerformer updates an existing performer.
// @Summary Update performer
// @Accept json,application/cbor
// @Produce json,application/cbor
// @Param id path int true "Performer ID"
// @Param performer body performer.Performer true "Performer"
// @Success 200 {object} performer.Performer
// @Failure 400
// @Failure 404
// @Router /performers/{id} [put]
func (h *Handler) updatePerformer(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "updatePerformer")
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid performer id", http.StatusBadRequest)
		return
	}
	var p performer.Performer
	if !h.decode(w, r, &p) || !h.valid(w, p) {
		return
	}
	p.ID = id
	if err := h.performers.Update(ctx, p); err != nil {
		h.fail(w, r, "update performer", err)
		return
	}
	h.respond(w, r, http.StatusOK, p)
}

// deletePerformer removes a performer.
// @Summary Delete performer
// @Param id path int true "Performer ID"
// @Success 204
// @Failure 404
// @Router /performers/{id} [delete]
func (h *Handler) deletePerformer(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "deletePerformer")
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid performer id", http.StatusBadRequest)
		return
	}
	if err := h.performers.Delete(ctx, id); err != nil {
		h.fail(w, r, "delete performer", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
