// Package api is the HTTP surface of the service: the router, its
// middleware and the resource handlers.
package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/felixge/httpsnoop"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
	gootel "go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"concerts/pkg/clientid"
	"concerts/pkg/codec"
	"concerts/pkg/concert"
	"concerts/pkg/logger"
	"concerts/pkg/metrics"
	"concerts/pkg/otel"
	"concerts/pkg/parolee"
	"concerts/pkg/performer"
)

// Defaults for the concert list window.
const (
	DefaultStart       = 1
	DefaultSize        = 10
	DefaultMaxPageSize = 100
)

// Deps are the collaborators a Handler is built from. Concerts, Log, Metrics
// and Cookies are required. Performers and Parolees are optional; their
// routes are only mounted when set.
type Deps struct {
	Concerts    concert.Repository
	Performers  performer.Repository
	Parolees    parolee.Repository
	Log         *logger.Logger
	Tracer      trace.Tracer
	Metrics     *metrics.Metrics
	Cookies     *clientid.Issuer
	MaxPageSize int
}

// Handler serves the HTTP API.
type Handler struct {
	concerts    concert.Repository
	performers  performer.Repository
	parolees    parolee.Repository
	log         *logger.Logger
	tracer      trace.Tracer
	metrics     *metrics.Metrics
	cookies     *clientid.Issuer
	validate    *validator.Validate
	maxPageSize int
}

// New creates a Handler.
func New(d Deps) *Handler {
	if d.Tracer == nil {
		d.Tracer = noop.NewTracerProvider().Tracer("concerts")
	}
	if d.MaxPageSize < 1 {
		d.MaxPageSize = DefaultMaxPageSize
	}
	return &Handler{
		concerts:    d.Concerts,
		performers:  d.Performers,
		parolees:    d.Parolees,
		log:         d.Log,
		tracer:      d.Tracer,
		metrics:     d.Metrics,
		cookies:     d.Cookies,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
		maxPageSize: d.MaxPageSize,
	}
}

// Router builds the route table.
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(h.traceMiddleware, h.metricsMiddleware)

	r.HandleFunc("/healthz", h.health).Methods(http.MethodGet)
	r.Handle("/metrics", h.metrics.Handler()).Methods(http.MethodGet)
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Every API request gets a client cookie, including ones no route serves.
	// The operational endpoints above are the only exception.
	cookies := h.cookies.Middleware(h.log, h.metrics.CookieIssued)
	r.NotFoundHandler = h.unrouted(cookies(http.NotFoundHandler()))
	r.MethodNotAllowedHandler = h.unrouted(cookies(http.HandlerFunc(methodNotAllowed)))

	api := r.PathPrefix("/").Subrouter()
	api.Use(cookies)

	api.HandleFunc("/concerts", h.createConcert).Methods(http.MethodPost)
	api.HandleFunc("/concerts", h.listConcerts).Methods(http.MethodGet)
	api.HandleFunc("/concerts", h.deleteConcerts).Methods(http.MethodDelete)
	api.HandleFunc("/concerts/{id}", h.getConcert).Methods(http.MethodGet)

	if h.performers != nil {
		api.HandleFunc("/performers", h.createPerformer).Methods(http.MethodPost)
		api.HandleFunc("/performers", h.listPerformers).Methods(http.MethodGet)
		api.HandleFunc("/performers/{id}", h.getPerformer).Methods(http.MethodGet)
		api.HandleFunc("/performers/{id}", h.updatePerformer).Methods(http.MethodPut)
		api.HandleFunc("/performers/{id}", h.deletePerformer).Methods(http.MethodDelete)
	}
	if h.parolees != nil {
		api.HandleFunc("/parolees", h.createParolee).Methods(http.MethodPost)
		api.HandleFunc("/parolees", h.listParolees).Methods(http.MethodGet)
		api.HandleFunc("/parolees/{id}", h.getParolee).Methods(http.MethodGet)
		api.HandleFunc("/parolees/{id}", h.updateParolee).Methods(http.MethodPut)
		api.HandleFunc("/parolees/{id}", h.deleteParolee).Methods(http.MethodDelete)
	}
	return r
}

// health reports liveness.
// @Summary Health check
// @Success 200
// @Router /healthz [get]
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}

// unrouted applies the router middleware, which mux skips for requests that
// match no route.
func (h *Handler) unrouted(next http.Handler) http.Handler {
	return h.traceMiddleware(h.metricsMiddleware(next))
}

func (h *Handler) traceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := gootel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
		ctx, span := h.tracer.Start(ctx, r.Method+" "+routeTemplate(r), trace.WithSpanKind(trace.SpanKindServer))
		defer span.End()
		ctx = otel.InjectTracing(ctx, h.tracer)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := httpsnoop.CaptureMetrics(next, w, r)
		route := routeTemplate(r)
		h.metrics.Observe(route, r.Method, m.Code, m.Duration)
		h.log.Debug(r.Context(), "request", "method", r.Method, "route", route, "status", m.Code, "duration", m.Duration)
	})
}

func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return "unmatched"
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

// decode reads the body into v and writes 400 or 415 on failure.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := codec.Decode(r, v); err != nil {
		if errors.Is(err, codec.ErrUnsupportedMediaType) {
			http.Error(w, err.Error(), http.StatusUnsupportedMediaType)
			return false
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

// valid runs struct validation and writes 400 on failure.
func (h *Handler) valid(w http.ResponseWriter, v any) bool {
	if err := h.validate.Struct(v); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, status int, v any) {
	if err := codec.Encode(w, r, status, v); err != nil {
		h.log.Error(r.Context(), "encode response", "error", err)
	}
}

// fail maps a repository error to a response.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, concert.ErrNotFound),
		errors.Is(err, performer.ErrNotFound),
		errors.Is(err, parolee.ErrNotFound):
		http.NotFound(w, r)
	default:
		h.log.Error(r.Context(), op, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
