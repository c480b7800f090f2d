package httpapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"

	"github.com/denisok6893-rgb/fragrance-matching/internal/domain"
	"github.com/denisok6893-rgb/fragrance-matching/internal/logging"
	"github.com/denisok6893-rgb/fragrance-matching/internal/storage"
)

type PerfumesListResponse struct {
	Limit  int              `json:"limit"`
	Offset int              `json:"offset"`
	Total  int              `json:"total"`
	Items  []domain.Perfume `json:"items"`
}

func (s *Server) handlePerfumesList(w http.ResponseWriter, r *http.Request) {
	limit, offset := parseLimitOffset(r, 20, 0)
	q := r.URL.Query()

	items, total, err := s.Perfumes.ListPerfumes(r.Context(), storage.ListFilter{
		Family: q.Get("family"),
		Season: q.Get("season"),
		Query:  q.Get("q"),
		Sort:   q.Get("sort"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		logging.Error().Err(err).Msg("list perfumes")
		writeError(w, http.StatusInternalServerError, "storage_error")
		return
	}

	writeJSON(w, http.StatusOK, PerfumesListResponse{
		Limit:  limit,
		Offset: offset,
		Total:  total,
		Items:  items,
	})
}

func (s *Server) handlePerfumesGet(w http.ResponseWriter, r *http.Request) {
	p, ok, err := s.Perfumes.GetPerfume(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		logging.Error().Err(err).Msg("get perfume")
		writeError(w, http.StatusInternalServerError, "storage_error")
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// PerfumeRequest is the body of create and update calls.
type PerfumeRequest struct {
	Name            string   `json:"name" validate:"required,max=200"`
	Brand           string   `json:"brand" validate:"required,max=200"`
	Concentration   string   `json:"concentration" validate:"required,oneof=EDT EDP Parfum Cologne Oil"`
	TopNotes        []string `json:"top_notes" validate:"max=30,dive,required,max=80"`
	MiddleNotes     []string `json:"middle_notes" validate:"max=30,dive,required,max=80"`
	BaseNotes       []string `json:"base_notes" validate:"max=30,dive,required,max=80"`
	FragranceFamily string   `json:"fragrance_family" validate:"required,oneof=Fresh Floral Oriental Woody Gourmand Fougère Chypre Leather"`
	Season          []string `json:"season" validate:"max=4,unique,dive,oneof=Spring Summer Fall Winter"`
	Occasion        []string `json:"occasion" validate:"max=6,unique,dive,oneof=Casual Work Evening Special Date Sport"`
	Longevity       float64  `json:"longevity" validate:"min=1,max=10"`
	Sillage         float64  `json:"sillage" validate:"min=1,max=10"`
	PersonalRating  float64  `json:"personal_rating" validate:"min=1,max=5"`
	Price           *float64 `json:"price" validate:"omitempty,gte=0"`
	Description     string   `json:"description" validate:"max=2000"`
	PurchaseDate    string   `json:"purchase_date" validate:"omitempty,datetime=2006-01-02"`
	Image           string   `json:"image" validate:"omitempty,url"`
}

func (req PerfumeRequest) toPerfume(id string) domain.Perfume {
	p := domain.Perfume{
		ID:              id,
		Name:            strings.TrimSpace(req.Name),
		Brand:           strings.TrimSpace(req.Brand),
		Concentration:   domain.Concentration(req.Concentration),
		TopNotes:        trimNotes(req.TopNotes),
		MiddleNotes:     trimNotes(req.MiddleNotes),
		BaseNotes:       trimNotes(req.BaseNotes),
		FragranceFamily: domain.FragranceFamily(req.FragranceFamily),
		Longevity:       req.Longevity,
		Sillage:         req.Sillage,
		PersonalRating:  req.PersonalRating,
		Price:           req.Price,
		Description:     req.Description,
		Image:           req.Image,
	}
	for _, v := range req.Season {
		p.Season = append(p.Season, domain.Season(v))
	}
	for _, v := range req.Occasion {
		p.Occasion = append(p.Occasion, domain.Occasion(v))
	}
	if req.PurchaseDate != "" {
		if t, err := time.Parse("2006-01-02", req.PurchaseDate); err == nil {
			p.PurchaseDate = &t
		}
	}
	return p
}

func trimNotes(notes []string) []string {
	out := make([]string, 0, len(notes))
	for _, n := range notes {
		out = append(out, strings.TrimSpace(n))
	}
	return out
}

// decodePerfume reads and validates a PerfumeRequest, writing the error
// response itself when it fails.
func (s *Server) decodePerfume(w http.ResponseWriter, r *http.Request) (PerfumeRequest, bool) {
	var req PerfumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return req, false
	}
	if err := s.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			writeError(w, http.StatusBadRequest, "invalid_request")
			return req, false
		}
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":  "validation_failed",
			"fields": fields,
		})
		return req, false
	}
	return req, true
}

func (s *Server) handlePerfumesCreate(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodePerfume(w, r)
	if !ok {
		return
	}

	p, err := s.Perfumes.CreatePerfume(r.Context(), req.toPerfume(""))
	if err != nil {
		logging.Error().Err(err).Msg("create perfume")
		writeError(w, http.StatusInternalServerError, "storage_error")
		return
	}
	logging.Info().Str("perfume_id", p.ID).Str("name", p.Name).Msg("perfume added")
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) handlePerfumesUpdate(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodePerfume(w, r)
	if !ok {
		return
	}

	p := req.toPerfume(chi.URLParam(r, "id"))
	found, err := s.Perfumes.UpdatePerfume(r.Context(), p)
	if err != nil {
		logging.Error().Err(err).Str("perfume_id", p.ID).Msg("update perfume")
		writeError(w, http.StatusInternalServerError, "storage_error")
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handlePerfumesDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	found, err := s.Perfumes.DeletePerfume(r.Context(), id)
	if err != nil {
		logging.Error().Err(err).Str("perfume_id", id).Msg("delete perfume")
		writeError(w, http.StatusInternalServerError, "storage_error")
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
