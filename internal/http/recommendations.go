package httpapi

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/denisok6893-rgb/fragrance-matching/internal/analysis"
	"github.com/denisok6893-rgb/fragrance-matching/internal/domain"
	"github.com/denisok6893-rgb/fragrance-matching/internal/logging"
	"github.com/denisok6893-rgb/fragrance-matching/internal/metrics"
)

// collection loads the current snapshot, writing a 500 when the store fails.
func (s *Server) collection(w http.ResponseWriter, r *http.Request) ([]domain.Perfume, bool) {
	perfumes, err := s.Perfumes.AllPerfumes(r.Context())
	if err != nil {
		logging.Error().Err(err).Msg("load collection")
		writeError(w, http.StatusInternalServerError, "storage_error")
		return nil, false
	}
	return perfumes, true
}

func (s *Server) recommend(source string, perfumes []domain.Perfume) domain.Recommendations {
	start := time.Now()
	res := s.Engine.Recommend(perfumes)
	elapsed := time.Since(start)

	metrics.RecordRecommendation(source, len(perfumes), len(res.Layering), len(res.Purchase), elapsed)
	logging.Debug().
		Str("source", source).
		Int("perfumes", len(perfumes)).
		Int("layering", len(res.Layering)).
		Int("purchase", len(res.Purchase)).
		Dur("elapsed", elapsed).
		Msg("recommendations computed")
	return res
}

func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	perfumes, ok := s.collection(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.recommend("collection", perfumes))
}

func (s *Server) handleLayering(w http.ResponseWriter, r *http.Request) {
	perfumes, ok := s.collection(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"layering": s.recommend("collection", perfumes).Layering})
}

func (s *Server) handlePurchase(w http.ResponseWriter, r *http.Request) {
	perfumes, ok := s.collection(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"purchase": s.recommend("collection", perfumes).Purchase})
}

type PreviewRequest struct {
	Perfumes []domain.Perfume `json:"perfumes"`
}

// handlePreview runs the engine over a snapshot supplied by the client
// instead of the stored collection. Values are scored as sent.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	var req PreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	writeJSON(w, http.StatusOK, s.recommend("preview", req.Perfumes))
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	perfumes, ok := s.collection(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.Engine.Profile(perfumes))
}

func (s *Server) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	perfumes, ok := s.collection(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, analysis.Summarize(perfumes))
}
