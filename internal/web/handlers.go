package web

import (
	"net/http"
	"strconv"
	"time"

	"github.com/estatequery/estatequery/internal/dataset"
	"github.com/estatequery/estatequery/internal/logging"
)

// SearchResponse is the JSON structure for search results. Columns carries
// the display order; Count is the exact subset size before any client-side
// truncation (this service performs none).
type SearchResponse struct {
	Count   int           `json:"count"`
	Columns []string      `json:"columns"`
	Rows    []dataset.Row `json:"rows"`
}

// DatasetInfo is the JSON structure for the load status endpoint.
type DatasetInfo struct {
	Source   string    `json:"source"`
	LoadID   string    `json:"load_id"`
	LoadedAt time.Time `json:"loaded_at"`
	Rows     int       `json:"rows"`
	Columns  int       `json:"columns"`
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

// handleDatasetInfo reports the current dataset load.
func (s *Server) handleDatasetInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, DatasetInfo{
		Source:   s.ds.Source,
		LoadID:   s.ds.LoadID.String(),
		LoadedAt: s.ds.LoadedAt,
		Rows:     len(s.ds.Table.Rows),
		Columns:  len(s.ds.Table.Columns),
	})
}

// handleSearchName searches by exact person name.
func (s *Server) handleSearchName(w http.ResponseWriter, r *http.Request) {
	result, err := dataset.SearchByName(s.ds.Table, r.URL.Query().Get("name"))
	s.respondSearch(w, r, "name", result, err)
}

// handleSearchID searches by national or resident ID number.
func (s *Server) handleSearchID(w http.ResponseWriter, r *http.Request) {
	result, err := dataset.SearchByID(s.ds.Table, r.URL.Query().Get("id"))
	s.respondSearch(w, r, "id", result, err)
}

// handleSearchPhone searches by exact mobile number.
func (s *Server) handleSearchPhone(w http.ResponseWriter, r *http.Request) {
	result, err := dataset.SearchByPhone(s.ds.Table, r.URL.Query().Get("phone"))
	s.respondSearch(w, r, "phone", result, err)
}

// handleSearchProperty searches by property name with optional refinements.
//
// Query parameters: name (required), size_sqmt, size_sqft, date, unit.
// Absent refinement parameters leave that filter disabled.
func (s *Server) handleSearchProperty(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var filters dataset.PropertyFilters
	if v := q.Get("size_sqmt"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			s.respondError(w, r, &dataset.InvalidInputError{Field: "size_sqmt", Reason: "not a number"})
			return
		}
		filters.SizeSqmt = &f
	}
	if v := q.Get("size_sqft"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			s.respondError(w, r, &dataset.InvalidInputError{Field: "size_sqft", Reason: "not a number"})
			return
		}
		filters.SizeSqft = &f
	}
	filters.TransactionDate = q.Get("date")
	filters.UnitNumber = q.Get("unit")

	result, err := dataset.SearchByProperty(s.ds.Table, q.Get("name"), filters)
	s.respondSearch(w, r, "property", result, err)
}

// respondSearch renders a search outcome: the presented subset on success,
// the mapped error otherwise. An empty subset is a success.
func (s *Server) respondSearch(w http.ResponseWriter, r *http.Request, mode string, result *dataset.Table, err error) {
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	columns, rows, count := dataset.Present(result)

	logging.FromContext(r.Context()).Info("search completed",
		"mode", mode,
		"rows", count,
	)

	writeJSON(w, SearchResponse{
		Count:   count,
		Columns: columns,
		Rows:    rows,
	})
}
