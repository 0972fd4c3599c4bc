// Package service exposes state evaluation over HTTP as a JSON API with
// Prometheus metrics and an optional response cache.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/alexiusacademia/gosteam/internal/iapws"
	"github.com/alexiusacademia/gosteam/internal/logging"
	"github.com/alexiusacademia/gosteam/internal/region"
	"github.com/alexiusacademia/gosteam/internal/region4"
	"github.com/alexiusacademia/gosteam/internal/saturation"
	"github.com/alexiusacademia/gosteam/internal/steam"
)

// Server serves the property API.
type Server struct {
	log     *slog.Logger
	cache   Cache
	metrics *Metrics
	router  chi.Router
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Server) {
		s.log = log
	}
}

// WithCache sets the response cache. Without one every request is
// evaluated.
func WithCache(c Cache) Option {
	return func(s *Server) {
		s.cache = c
	}
}

// New creates a server and its routes.
func New(opts ...Option) *Server {
	s := &Server{
		log:     logging.NewNop(),
		metrics: NewMetrics(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.instrument)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("ok\n"))
	})
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	r.Route("/v1", func(r chi.Router) {
		r.Get("/state", s.handleState)
		r.Get("/region", s.handleRegion)
		r.Get("/saturation", s.handleSaturation)
	})
	s.router = r
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		code := ww.Status()
		if code == 0 {
			code = http.StatusOK
		}
		s.metrics.latency.WithLabelValues(route, strconv.Itoa(code)).Observe(time.Since(start).Seconds())
		s.log.Debug("request", "method", r.Method, "route", route, "status", code, "elapsed", time.Since(start))
	})
}

// stateResponse is the body of /v1/state.
type stateResponse struct {
	Pair       steam.Pair     `json:"pair"`
	A          float64        `json:"a"`
	B          float64        `json:"b"`
	Region     region.Region  `json:"region"`
	Properties propertiesJSON `json:"properties"`
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	q, pair, err := parsePoint(r.URL.Query())
	if err != nil {
		s.badRequest(w, "state", err)
		return
	}

	key := cacheKey("state", pair, q.A, q.B)
	if s.serveCached(w, r, key) {
		return
	}

	st, err := steam.New(string(pair), q.A, q.B)
	if err != nil {
		s.badRequest(w, "state", err)
		return
	}
	s.metrics.evaluations.WithLabelValues("state", string(pair), st.Region().String()).Inc()
	if !st.Valid() {
		writeError(w, http.StatusUnprocessableEntity, steam.ErrOutOfRange.Error())
		return
	}

	s.respond(w, r, key, stateResponse{
		Pair:       pair,
		A:          q.A,
		B:          q.B,
		Region:     st.Region(),
		Properties: newPropertiesJSON(st.Properties()),
	})
}

// regionResponse is the body of /v1/region.
type regionResponse struct {
	Pair   steam.Pair    `json:"pair"`
	A      float64       `json:"a"`
	B      float64       `json:"b"`
	Region region.Region `json:"region"`
	Valid  bool          `json:"valid"`
}

// handleRegion runs the classifier only. An out-of-range point is a valid
// answer here, not an error.
func (s *Server) handleRegion(w http.ResponseWriter, r *http.Request) {
	q, pair, err := parsePoint(r.URL.Query())
	if err != nil {
		s.badRequest(w, "region", err)
		return
	}

	key := cacheKey("region", pair, q.A, q.B)
	if s.serveCached(w, r, key) {
		return
	}

	reg, err := steam.Classify(string(pair), q.A, q.B)
	if err != nil {
		s.badRequest(w, "region", err)
		return
	}
	s.metrics.evaluations.WithLabelValues("region", string(pair), reg.String()).Inc()
	s.respond(w, r, key, regionResponse{
		Pair:   pair,
		A:      q.A,
		B:      q.B,
		Region: reg,
		Valid:  reg.Valid(),
	})
}

// saturationResponse is the body of /v1/saturation.
type saturationResponse struct {
	T      float64        `json:"T"`
	P      float64        `json:"p"`
	Liquid propertiesJSON `json:"liquid"`
	Vapour propertiesJSON `json:"vapour"`
}

func (s *Server) handleSaturation(w http.ResponseWriter, r *http.Request) {
	q, err := parseSaturation(r.URL.Query())
	if err != nil {
		s.badRequest(w, "saturation", err)
		return
	}

	var T float64
	by := "T"
	switch {
	case q.T != nil:
		T = *q.T
		if T < iapws.TMin || T > iapws.Tc {
			writeError(w, http.StatusUnprocessableEntity, "temperature outside the saturation line")
			return
		}
	default:
		by = "p"
		p := *q.P
		if p < iapws.PSatMin || p > iapws.Pc {
			writeError(w, http.StatusUnprocessableEntity, "pressure outside the saturation line")
			return
		}
		T = saturation.T(p)
	}

	key := cacheKey("saturation", T)
	if s.serveCached(w, r, key) {
		return
	}

	liquid, vapour := region4.Saturated(T)
	s.metrics.evaluations.WithLabelValues("saturation", by, region.Region4.String()).Inc()
	s.respond(w, r, key, saturationResponse{
		T:      T,
		P:      liquid.P,
		Liquid: newPropertiesJSON(liquid),
		Vapour: newPropertiesJSON(vapour),
	})
}

func (s *Server) badRequest(w http.ResponseWriter, endpoint string, err error) {
	s.log.Debug("rejected request", "endpoint", endpoint, "error", err)
	writeError(w, http.StatusBadRequest, err.Error())
}

// serveCached writes a cached response for key if there is one. Cache
// failures are logged and treated as misses.
func (s *Server) serveCached(w http.ResponseWriter, r *http.Request, key string) bool {
	if s.cache == nil {
		return false
	}
	body, ok, err := s.cache.Get(r.Context(), key)
	if err != nil {
		s.log.Warn("cache read failed", "key", key, "error", err)
		s.metrics.cache.WithLabelValues("error").Inc()
		return false
	}
	if !ok {
		s.metrics.cache.WithLabelValues("miss").Inc()
		return false
	}
	s.metrics.cache.WithLabelValues("hit").Inc()
	w.Header().Set("X-Cache", "hit")
	writeBody(w, http.StatusOK, body)
	return true
}

// respond encodes v, stores it under key and writes it.
func (s *Server) respond(w http.ResponseWriter, r *http.Request, key string, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		s.log.Error("response encode failed", "key", key, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to encode response")
		return
	}
	if s.cache != nil {
		if err := s.cache.Set(r.Context(), key, body); err != nil {
			s.log.Warn("cache write failed", "key", key, "error", err)
		}
		w.Header().Set("X-Cache", "miss")
	}
	writeBody(w, http.StatusOK, body)
}

func writeBody(w http.ResponseWriter, code int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(body)
	w.Write([]byte("\n"))
}

func writeError(w http.ResponseWriter, code int, msg string) {
	body, _ := json.Marshal(map[string]string{"error": msg})
	writeBody(w, code, body)
}
