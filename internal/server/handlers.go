package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/contactkeval/option-quote/internal/dataset"
	"github.com/contactkeval/option-quote/internal/logger"
	"github.com/contactkeval/option-quote/internal/pricing"
	"github.com/contactkeval/option-quote/internal/scenario"
	"github.com/contactkeval/option-quote/internal/settings"
)

// maxUploadBytes bounds multipart dataset uploads.
const maxUploadBytes = 32 << 20

// errBadRequest marks request decode and malformed-input failures so
// writeError can map them without a type per cause.
var errBadRequest = errors.New("bad request")

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps engine errors onto HTTP status codes. Validation and
// expression problems are the client's fault; store limits get their own
// codes; anything unrecognized is a 500. The error body always carries
// the engine's message verbatim.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	var invalid *pricing.InvalidParameterError
	switch {
	case errors.As(err, &invalid),
		errors.Is(err, errBadRequest),
		errors.Is(err, scenario.ErrUnknownAxis),
		errors.Is(err, scenario.ErrInvalidRange),
		errors.Is(err, dataset.ErrInvalidFilterExpression),
		errors.Is(err, dataset.ErrEmptyDataset),
		errors.Is(err, settings.ErrUnknownTheme),
		errors.Is(err, settings.ErrDecimalPlacesRange):
		status = http.StatusBadRequest
	case errors.Is(err, dataset.ErrDatasetNotFound):
		status = http.StatusNotFound
	case errors.Is(err, dataset.ErrTooManyRows):
		status = http.StatusRequestEntityTooLarge
	case errors.Is(err, dataset.ErrStoreFull):
		status = http.StatusConflict
	}
	if status == http.StatusInternalServerError {
		logger.Errorf("event=request_failed err=%q", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return nil
}

func infoFor(id string, ds *dataset.Dataset) dataset.Info {
	return dataset.Info{ID: id, Name: ds.Name, Rows: ds.NumRows(), Columns: ds.NumColumns()}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	var p pricing.Params
	if err := decodeJSON(r, &p); err != nil {
		writeError(w, err)
		return
	}
	res, err := pricing.Quote(p)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleSweep(w http.ResponseWriter, r *http.Request) {
	var req scenario.Request
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	res, err := scenario.Sweep(req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.settings.Get())
}

func (s *Server) handlePutSettings(w http.ResponseWriter, r *http.Request) {
	var in settings.Settings
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	if err := s.settings.Update(in); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.settings.Get())
}

func (s *Server) handleUploadDataset(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, fmt.Errorf("%w: missing file part", errBadRequest))
		return
	}
	defer file.Close()

	name := r.FormValue("name")
	if name == "" {
		name = header.Filename
	}

	id, ds, err := s.datasets.Put(name, file)
	if err != nil {
		switch {
		case errors.Is(err, dataset.ErrTooManyRows), errors.Is(err, dataset.ErrStoreFull):
			writeError(w, err)
		default:
			// anything else wrong with an upload is a malformed file
			writeError(w, fmt.Errorf("%w: %v", errBadRequest, err))
		}
		return
	}
	writeJSON(w, http.StatusCreated, infoFor(id, ds))
}

func (s *Server) handleListDatasets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.datasets.List())
}

func (s *Server) handleGetDataset(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	ds, err := s.datasets.Get(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, infoFor(id, ds))
}

func (s *Server) handleDeleteDataset(w http.ResponseWriter, r *http.Request) {
	if err := s.datasets.Delete(mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type previewResponse struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

func (s *Server) handlePreviewDataset(w http.ResponseWriter, r *http.Request) {
	ds, err := s.datasets.Get(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	rows := 10
	if v := r.URL.Query().Get("rows"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, fmt.Errorf("%w: rows must be a non-negative integer", errBadRequest))
			return
		}
		rows = n
	}
	writeJSON(w, http.StatusOK, previewResponse{Columns: ds.Columns, Rows: ds.Preview(rows)})
}

func (s *Server) handleSummarizeDataset(w http.ResponseWriter, r *http.Request) {
	ds, err := s.datasets.Get(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ds.Describe())
}

type filterRequest struct {
	Expr        string `json:"expr"`
	PreviewRows int    `json:"preview_rows"`
}

type filterResponse struct {
	Matched int        `json:"matched"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

func (s *Server) handleFilterDataset(w http.ResponseWriter, r *http.Request) {
	ds, err := s.datasets.Get(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	var req filterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	filtered, err := ds.Filter(req.Expr)
	if err != nil {
		writeError(w, err)
		return
	}
	n := req.PreviewRows
	if n <= 0 {
		n = 10
	}
	writeJSON(w, http.StatusOK, filterResponse{
		Matched: filtered.NumRows(),
		Columns: filtered.Columns,
		Rows:    filtered.Preview(n),
	})
}
