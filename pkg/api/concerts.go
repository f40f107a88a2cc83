package api

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"go.opentelemetry.io/otel/attribute"

	"concerts/pkg/concert"
	"concerts/pkg/otel"
)

// getConcert retrieves a concert by ID.
// @Summary Get concert
// @Produce json,application/cbor
// @Param id path int true "Concert ID"
// @Success 200 {object} concert.Concert
// @Failure 400
// @Failure 404
// @Router /concerts/{id} [get]
func (h *Handler) getConcert(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "getConcert")
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid concert id", http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.Int64("concert.id", id))

	c, err := h.concerts.Get(ctx, id)
	if err != nil {
		h.fail(w, r, "get concert", err)
		return
	}
	h.respond(w, r, http.StatusOK, c)
}

// listConcerts returns the concerts with identifiers start..start+size-1.
// @Summary List concerts
// @Description Scans size successive identifiers beginning at start and returns the concerts that exist, in ascending id order.
// @Produce json,application/cbor
// @Param start query int false "First concert id" default(1)
// @Param size query int false "Number of ids to scan" default(10)
// @Success 200 {array} concert.Concert
// @Failure 400
// @Router /concerts [get]
func (h *Handler) listConcerts(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "listConcerts")
	defer span.End()

	win, err := h.window(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.Int64("window.start", win.Start), attribute.Int("window.size", win.Size))

	concerts, err := h.concerts.List(ctx, win)
	if err != nil {
		h.fail(w, r, "list concerts", err)
		return
	}
	h.respond(w, r, http.StatusOK, concerts)
}

// createConcert stores a new concert under the next identifier.
// @Summary Create concert
// @Accept json,application/cbor
// @Produce json,application/cbor
// @Param concert body concert.Concert true "Concert; id is ignored"
// @Success 201 {object} concert.Concert
// @Header 201 {string} Location "/concerts/{id}"
// @Failure 400
// @Failure 415
// @Router /concerts [post]
func (h *Handler) createConcert(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "createConcert")
	defer span.End()

	var c concert.Concert
	if !h.decode(w, r, &c) {
		return
	}
	c, err := h.concerts.Create(ctx, c)
	if err != nil {
		h.fail(w, r, "create concert", err)
		return
	}
	h.metrics.ConcertCreated()
	span.SetAttributes(attribute.Int64("concert.id", c.ID))

	w.Header().Set("Location", fmt.Sprintf("/concerts/%d", c.ID))
	h.respond(w, r, http.StatusCreated, c)
}

// deleteConcerts removes every concert and restarts identifiers at 1.
// @Summary Delete all concerts
// @Success 204
// @Router /concerts [delete]
func (h *Handler) deleteConcerts(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "deleteConcerts")
	defer span.End()

	if err := h.concerts.DeleteAll(ctx); err != nil {
		h.fail(w, r, "delete concerts", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// window parses start and size. start below 1 is raised to 1 and size is
// capped at the configured page limit.
func (h *Handler) window(r *http.Request) (concert.Window, error) {
	q := r.URL.Query()
	win := concert.Window{Start: DefaultStart, Size: min(DefaultSize, h.maxPageSize)}
	if v := q.Get("start"); v != "" {
		start, err := strconv.ParseInt(v, 10, 64)
		if err != nil || start < 0 || start > math.MaxInt64-int64(h.maxPageSize) {
			return concert.Window{}, fmt.Errorf("invalid start %q", v)
		}
		win.Start = max(start, 1)
	}
	if v := q.Get("size"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil || size < 0 {
			return concert.Window{}, fmt.Errorf("invalid size %q", v)
		}
		win.Size = min(size, h.maxPageSize)
	}
	return win, nil
}
