package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/goerr/v2"

	"github.com/lifetrace-app/lifetrace/pkg/domain/model"
	"github.com/lifetrace-app/lifetrace/pkg/domain/types"
	"github.com/lifetrace-app/lifetrace/pkg/usecase"
	"github.com/lifetrace-app/lifetrace/pkg/utils/errutil"
)

// Server is the internal trigger surface for the extraction engine:
// schedulers and admin tooling call it, end users never do.
type Server struct {
	router *chi.Mux
	uc     *usecase.UseCases
}

func New(uc *usecase.UseCases) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)

	r.Route("/api/users/{userID}/keywords", func(r chi.Router) {
		r.Get("/", s.handleListKeywords)
		r.Post("/extract", s.handleExtract)
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleExtract runs one extraction invocation synchronously and reports
// what it did. A run that produced zero keywords still returns 200; only
// infrastructure failures map to 5xx.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := chi.URLParam(r, "userID")
	periodType := types.PeriodType(r.URL.Query().Get("period"))
	if err := periodType.Validate(); err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		return
	}

	ref := time.Now().UTC()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "invalid date", goerr.V("date", raw)), http.StatusBadRequest)
			return
		}
		ref = parsed
	}

	result, err := s.uc.Extract.Extract(ctx, userID, periodType, ref)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError)
		return
	}

	writeJSON(ctx, w, http.StatusOK, extractResponse{
		UserID:       result.UserID,
		PeriodType:   result.Window.Type.String(),
		PeriodLabel:  result.Window.Label,
		PeriodStart:  result.Window.Start,
		PeriodEnd:    result.Window.End,
		TotalVectors: result.TotalVectors,
		Clusters:     result.ClusterCount,
		Synthesized:  result.Synthesized,
		Skipped:      result.Skipped,
		GatedOut:     result.GatedOut,
		KeywordIDs:   toStringIDs(result),
	})
}

func (s *Server) handleListKeywords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := chi.URLParam(r, "userID")
	periodType := types.PeriodType(r.URL.Query().Get("period"))
	if err := periodType.Validate(); err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		return
	}

	keywords, err := s.uc.Keyword.ListByPeriod(ctx, userID, periodType)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError)
		return
	}

	resp := listResponse{Keywords: make([]keywordResponse, 0, len(keywords))}
	for _, kw := range keywords {
		resp.Keywords = append(resp.Keywords, toKeywordResponse(kw))
	}
	writeJSON(ctx, w, http.StatusOK, resp)
}

type extractResponse struct {
	UserID       string    `json:"user_id"`
	PeriodType   string    `json:"period_type"`
	PeriodLabel  string    `json:"period_label"`
	PeriodStart  time.Time `json:"period_start"`
	PeriodEnd    time.Time `json:"period_end"`
	TotalVectors int       `json:"total_vectors"`
	Clusters     int       `json:"clusters"`
	Synthesized  int       `json:"synthesized"`
	Skipped      int       `json:"skipped"`
	GatedOut     int       `json:"gated_out"`
	KeywordIDs   []string  `json:"keyword_ids"`
}

type listResponse struct {
	Keywords []keywordResponse `json:"keywords"`
}

type keywordResponse struct {
	ID               string    `json:"id"`
	Keyword          string    `json:"keyword"`
	Description      string    `json:"description"`
	Emoji            string    `json:"emoji"`
	Category         string    `json:"category"`
	PeriodType       string    `json:"period_type"`
	PeriodLabel      string    `json:"period_label"`
	PeriodStart      time.Time `json:"period_start"`
	PeriodEnd        time.Time `json:"period_end"`
	Confidence       float64   `json:"confidence"`
	DominanceScore   float64   `json:"dominance_score"`
	DataPointCount   int       `json:"data_point_count"`
	SampleDataPoints []string  `json:"sample_data_points,omitempty"`
	RelatedDataTypes []string  `json:"related_data_types,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

func toKeywordResponse(kw *model.LifeKeyword) keywordResponse {
	related := make([]string, 0, len(kw.RelatedDataTypes))
	for _, dt := range kw.RelatedDataTypes {
		related = append(related, dt.String())
	}

	return keywordResponse{
		ID:               string(kw.ID),
		Keyword:          kw.Keyword,
		Description:      kw.Description,
		Emoji:            kw.Emoji,
		Category:         kw.Category.String(),
		PeriodType:       kw.PeriodType.String(),
		PeriodLabel:      kw.PeriodLabel,
		PeriodStart:      kw.PeriodStart,
		PeriodEnd:        kw.PeriodEnd,
		Confidence:       kw.Confidence,
		DominanceScore:   kw.DominanceScore,
		DataPointCount:   kw.DataPointCount,
		SampleDataPoints: kw.SampleDataPoints,
		RelatedDataTypes: related,
		CreatedAt:        kw.CreatedAt,
	}
}

func toStringIDs(result *usecase.ExtractResult) []string {
	ids := make([]string, 0, len(result.KeywordIDs))
	for _, id := range result.KeywordIDs {
		ids = append(ids, string(id))
	}
	return ids
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		errutil.Handle(ctx, err, "failed to encode response")
	}
}
