package httpapi

import (
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/denisok6893-rgb/fragrance-matching/internal/logging"
	"github.com/denisok6893-rgb/fragrance-matching/internal/recommend"
)

type Server struct {
	Engine      *recommend.Engine
	Perfumes    PerfumeRepository
	CORSOrigins []string

	validate *validator.Validate
}

func NewServer(engine *recommend.Engine, perfumes PerfumeRepository, corsOrigins []string) *Server {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report fields by their JSON names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &Server{
		Engine:      engine,
		Perfumes:    perfumes,
		CORSOrigins: corsOrigins,
		validate:    v,
	}
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	s.useMiddleware(r)

	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/perfumes", func(r chi.Router) {
		r.Get("/", s.handlePerfumesList)
		r.Post("/", s.handlePerfumesCreate)
		r.Get("/{id}", s.handlePerfumesGet)
		r.Put("/{id}", s.handlePerfumesUpdate)
		r.Delete("/{id}", s.handlePerfumesDelete)
	})

	r.Route("/recommendations", func(r chi.Router) {
		r.Get("/", s.handleRecommendations)
		r.Get("/layering", s.handleLayering)
		r.Get("/purchase", s.handlePurchase)
		r.Post("/preview", s.handlePreview)
	})

	r.Get("/profile", s.handleProfile)
	r.Get("/analysis", s.handleAnalysis)
	return r
}

func (s *Server) useMiddleware(r chi.Router) {
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	// requestLogger wraps Recoverer so panics are logged and counted as 500s.
	r.Use(requestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.corsOrigins(),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))
}

func (s *Server) corsOrigins() []string {
	if len(s.CORSOrigins) == 0 {
		return []string{"*"}
	}
	return s.CORSOrigins
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.Perfumes.Ping(r.Context()); err != nil {
		logging.Warn().Err(err).Msg("health check: store unavailable")
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func parseLimitOffset(r *http.Request, defLimit, defOffset int) (int, int) {
	q := r.URL.Query()

	limit := defLimit
	if v := q.Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit <= 0 {
		limit = defLimit
	}
	// safety cap
	if limit > 200 {
		limit = 200
	}

	offset := defOffset
	if v := q.Get("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = defOffset
	}

	return limit, offset
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}
