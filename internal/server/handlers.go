package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/salt-nlp/workbank-cli/internal/analysis"
	"github.com/salt-nlp/workbank-cli/internal/export"
	"github.com/salt-nlp/workbank-cli/internal/loader"
	"github.com/salt-nlp/workbank-cli/internal/model"
)

// snapshotMeta is the provenance block attached to API responses.
type snapshotMeta struct {
	SnapshotID string        `json:"snapshot_id"`
	Source     loader.Source `json:"source"`
	Reason     string        `json:"reason,omitempty"`
	FetchedAt  time.Time     `json:"fetched_at"`
}

func metaOf(snap *loader.Snapshot) snapshotMeta {
	return snapshotMeta{
		SnapshotID: snap.ID,
		Source:     snap.Source,
		Reason:     snap.Reason,
		FetchedAt:  snap.FetchedAt,
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	rows, snap, err := s.combined(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Snapshot snapshotMeta `json:"snapshot"`
		Stats    model.Stats  `json:"stats"`
	}{metaOf(snap), analysis.Summarize(rows)})
}

func (s *Server) handleTasks(w http.ResponseWriter, r *http.Request) {
	rows, snap, err := s.combined(r)
	if err != nil {
		writeError(w, err)
		return
	}

	q := r.URL.Query()
	opts := analysis.FilterOptions{
		Domains:     q["domain"],
		Occupations: q["occupation"],
		MinDesire:   parseFloat(q.Get("min_desire")),
		MaxDesire:   parseFloat(q.Get("max_desire")),
		Search:      q.Get("q"),
	}
	rows = analysis.Filter(rows, opts)

	if sortParam := q.Get("sort"); sortParam != "" {
		key, err := analysis.ParseSortKey(sortParam)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown sort key"})
			return
		}
		rows = analysis.SortRows(rows, key, q.Get("order") != "asc")
	}

	if limit := parseInt(q.Get("limit")); limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}

	writeJSON(w, http.StatusOK, struct {
		Snapshot snapshotMeta        `json:"snapshot"`
		Count    int                 `json:"count"`
		Tasks    []model.CombinedRow `json:"tasks"`
	}{metaOf(snap), len(rows), rows})
}

func (s *Server) handleTask(w http.ResponseWriter, r *http.Request) {
	rows, _, err := s.combined(r)
	if err != nil {
		writeError(w, err)
		return
	}

	taskID := chi.URLParam(r, "taskID")
	for _, row := range rows {
		if row.TaskID == taskID {
			writeJSON(w, http.StatusOK, row)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "task not found"})
}

func (s *Server) handleQuadrants(w http.ResponseWriter, r *http.Request) {
	rows, snap, err := s.combined(r)
	if err != nil {
		writeError(w, err)
		return
	}
	threshold := parseFloat(r.URL.Query().Get("threshold"))
	writeJSON(w, http.StatusOK, struct {
		Snapshot  snapshotMeta             `json:"snapshot"`
		Quadrants analysis.QuadrantSummary `json:"quadrants"`
	}{metaOf(snap), analysis.Quadrants(rows, threshold)})
}

func (s *Server) handleHistogram(w http.ResponseWriter, r *http.Request) {
	rows, snap, err := s.combined(r)
	if err != nil {
		writeError(w, err)
		return
	}
	bins := parseInt(r.URL.Query().Get("bins"))
	writeJSON(w, http.StatusOK, struct {
		Snapshot snapshotMeta            `json:"snapshot"`
		Bins     []analysis.HistogramBin `json:"bins"`
	}{metaOf(snap), analysis.Histogram(rows, bins)})
}

func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	rows, _, err := s.combined(r)
	if err != nil {
		writeError(w, err)
		return
	}

	q := r.URL.Query()
	rows = analysis.Filter(rows, analysis.FilterOptions{
		Domains:     q["domain"],
		Occupations: q["occupation"],
	})

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="workbank_combined.csv"`)
	if err := export.WriteCSV(w, rows); err != nil {
		zap.L().Error("server: stream csv export", zap.Error(err))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("server: encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, err error) {
	zap.L().Error("server: request failed", zap.Error(err))
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
}

func parseFloat(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func parseInt(s string) int {
	if s == "" {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}
