// Package transport exposes the replayed trace over HTTP.
package transport

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/goodnatureofminers/simtrace-backend/internal/service"
	"github.com/goodnatureofminers/simtrace-backend/internal/trace/model"
	"github.com/goodnatureofminers/simtrace-backend/internal/trace/snapshot"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

var errBadTimestamp = errors.New("query parameter t must be an integer timestamp")

// TraceHandler serves read-only queries over the currently published trace.
type TraceHandler struct {
	source    TraceSource
	metrics   Metrics
	snapshots *snapshot.Builder
	logger    *zap.Logger
}

func NewTraceHandler(source TraceSource, metrics Metrics, snapshots *snapshot.Builder, logger *zap.Logger) (*TraceHandler, error) {
	if source == nil {
		return nil, errors.New("trace source is required")
	}
	if metrics == nil {
		return nil, errors.New("http metrics is required")
	}
	if snapshots == nil {
		snapshots = snapshot.NewBuilder(0)
	}
	return &TraceHandler{
		source:    source,
		metrics:   metrics,
		snapshots: snapshots,
		logger:    logger.Named("http"),
	}, nil
}

// Router registers every route on a new mux.Router.
func (h *TraceHandler) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(h.observe)
	r.NotFoundHandler = h.observe(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		h.writeError(w, http.StatusNotFound, errors.New("not found"))
	}))

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", h.health).Methods(http.MethodGet)
	api.HandleFunc("/timestamps", h.loaded(h.timestamps)).Methods(http.MethodGet)
	api.HandleFunc("/regions", h.loaded(h.regions)).Methods(http.MethodGet)
	api.HandleFunc("/nodes", h.loaded(h.nodes)).Methods(http.MethodGet)
	api.HandleFunc("/nodes/{id:-?[0-9]+}", h.loaded(h.node)).Methods(http.MethodGet)
	api.HandleFunc("/links", h.loaded(h.links)).Methods(http.MethodGet)
	api.HandleFunc("/blocks/{id:-?[0-9]+}", h.loaded(h.block)).Methods(http.MethodGet)
	api.HandleFunc("/snapshot", h.loaded(h.snapshot)).Methods(http.MethodGet)
	api.HandleFunc("/diagnostics", h.loaded(h.diagnostics)).Methods(http.MethodGet)
	return r
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (h *TraceHandler) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		var route string
		if cur := mux.CurrentRoute(r); cur != nil {
			route, _ = cur.GetPathTemplate()
		}
		h.metrics.ObserveRequest(route, r.Method, rec.status, started)
	})
}

type loadedHandler func(w http.ResponseWriter, r *http.Request, loaded *service.Loaded)

// loaded answers 503 until a trace has been published.
func (h *TraceHandler) loaded(next loadedHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cur := h.source.Current()
		if cur == nil || cur.Result == nil || cur.Result.Trace == nil {
			h.writeError(w, http.StatusServiceUnavailable, service.ErrNotLoaded)
			return
		}
		next(w, r, cur)
	}
}

// at resolves the t query parameter, defaulting to the last timestamp of the trace.
// With snap=true the value is moved onto the timestamp axis.
func at(r *http.Request, loaded *service.Loaded) (model.Timestamp, error) {
	axis := loaded.Result.Timestamps
	q := r.URL.Query()
	raw := q.Get("t")
	if raw == "" {
		if len(axis) == 0 {
			return 0, nil
		}
		return axis[len(axis)-1], nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errBadTimestamp
	}
	t := model.Timestamp(v)
	if snap, _ := strconv.ParseBool(q.Get("snap")); snap {
		if snapped, ok := snapshot.NewCursor(axis).Seek(t); ok {
			t = snapped
		}
	}
	return t, nil
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

func (h *TraceHandler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("encode response", zap.Error(err))
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *TraceHandler) writeError(w http.ResponseWriter, code int, err error) {
	if code >= http.StatusInternalServerError && code != http.StatusServiceUnavailable {
		h.logger.Error("request failed", zap.Error(err))
	}
	h.writeJSON(w, code, errorResponse{Error: err.Error()})
}
