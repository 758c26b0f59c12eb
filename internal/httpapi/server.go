package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"eventd/internal/config"
	"eventd/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
// *app.App satisfies it.
type Service interface {
	Dispatch(ctx context.Context, name string, data map[string]any) error
	Table() *config.Table
	Ready() bool
	Singletons() []string
}

var startTime = time.Now()

// @Summary      Dispatch an event
// @Description  Delivers the event to its configured observers synchronously. The JSON body becomes the event data.
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        name  path      string  true   "Event name"
// @Param        data  body      object  false  "Event data"
// @Success      200   {object}  types.DispatchResponse
// @Failure      400   {object}  types.ErrorResponse
// @Failure      415   {object}  types.ErrorResponse
// @Failure      500   {object}  types.ErrorResponse
// @Failure      501   {object}  types.ErrorResponse
// @Failure      503   {object}  types.ErrorResponse
// @Router       /events/{name} [post]
func dispatchHandler(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		if !svc.Ready() {
			writeJSONError(w, http.StatusServiceUnavailable, "event table not loaded")
			return
		}
		data, status, err := decodeData(w, r)
		if err != nil {
			writeJSONError(w, status, err.Error())
			return
		}

		lvl := requestLogLevel(r)
		rid := middleware.GetReqID(r.Context())
		start := time.Now()
		if lvl >= LevelDebug {
			zlog.Debug().Str("event", name).Str("request_id", rid).Int("fields", len(data)).Msg("dispatch request")
		}

		// count against the table the dispatch starts from; a reload may
		// publish another one meanwhile
		observers := 0
		if def, ok := svc.Table().Lookup(name); ok {
			observers = len(def.Observers)
		}

		// Join server base context with request context so shutdown reaches
		// observers too.
		ctx, cancel := joinContexts(serverBaseCtx, r.Context())
		defer cancel()
		if err := svc.Dispatch(ctx, name, data); err != nil {
			code := statusFor(err)
			if lvl >= LevelError {
				zlog.Error().Err(err).Str("event", name).Str("request_id", rid).Int("status", code).Dur("dur", time.Since(start)).Msg("dispatch failed")
			}
			writeJSONError(w, code, err.Error())
			return
		}

		if lvl >= LevelInfo {
			zlog.Info().Str("event", name).Str("request_id", rid).Int("observers", observers).Dur("dur", time.Since(start)).Msg("dispatch done")
		}
		writeJSON(w, types.DispatchResponse{Event: name, Observers: observers})
	}
}

// decodeData reads the optional JSON object body. An empty body is an empty
// data bag.
func decodeData(w http.ResponseWriter, r *http.Request) (map[string]any, int, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		// keep size details out of the response
		return nil, http.StatusBadRequest, errors.New("invalid JSON body")
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, 0, nil
	}
	ct := r.Header.Get("Content-Type")
	if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		return nil, http.StatusUnsupportedMediaType, errors.New("Content-Type must be application/json")
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var data map[string]any
	if err := dec.Decode(&data); err != nil {
		return nil, http.StatusBadRequest, errors.New("invalid JSON body: expected an object")
	}
	return data, 0, nil
}

// @Summary      List configured events
// @Tags         events
// @Produce      json
// @Success      200  {object}  types.EventsResponse
// @Router       /events [get]
func eventsHandler(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t := svc.Table()
		resp := types.EventsResponse{Events: []types.EventInfo{}}
		if t != nil {
			resp.DeveloperMode = t.DeveloperMode
			for _, name := range t.Names() {
				def := t.Events[name]
				info := types.EventInfo{Name: name, Observers: make([]types.BindingInfo, 0, len(def.Observers))}
				for _, b := range def.Observers {
					info.Observers = append(info.Observers, types.BindingInfo{
						Key:       b.Key,
						Class:     b.Class,
						Method:    b.Method,
						Singleton: b.Singleton,
					})
				}
				resp.Events = append(resp.Events, info)
			}
		}
		writeJSON(w, resp)
	}
}

// @Summary      Service status
// @Tags         status
// @Produce      json
// @Success      200  {object}  types.StatusResponse
// @Router       /status [get]
func statusHandler(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t := svc.Table()
		now := time.Now()
		resp := types.StatusResponse{
			Ready:          svc.Ready(),
			Singletons:     svc.Singletons(),
			UptimeSeconds:  int64(now.Sub(startTime).Seconds()),
			ServerTimeUnix: now.Unix(),
		}
		if resp.Singletons == nil {
			resp.Singletons = []string{}
		}
		if t != nil {
			resp.Source = t.Source
			resp.DeveloperMode = t.DeveloperMode
			resp.Events = len(t.Events)
			resp.Bindings = t.Bindings()
		}
		writeJSON(w, resp)
	}
}

// NewMux builds the HTTP API around svc.
func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(MetricsMiddleware)
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: corsAllowedMethods,
			AllowedHeaders: corsAllowedHeaders,
		}))
	}
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})

	r.Get("/events", eventsHandler(svc))
	r.Post("/events/{name}", dispatchHandler(svc))
	r.Get("/status", statusHandler(svc))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if svc.Ready() {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("loading"))
	})

	r.Get("/metrics", promhttp.Handler().ServeHTTP)
	MountSwagger(r)

	return r
}
