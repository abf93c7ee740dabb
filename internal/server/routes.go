package server

import "net/http"

type apiRoute struct {
	Version string
	Path    string
	Method  string
	Handler http.HandlerFunc
}

// routes is the full versioned API surface. /health lives at the root,
// outside any version prefix.
func (s *Server) routes() []apiRoute {
	return []apiRoute{

		// ---------- V1 ----------
		{
			Version: "v1",
			Path:    "/quote",
			Method:  "POST",
			Handler: s.handleQuote,
		},
		{
			Version: "v1",
			Path:    "/sweep",
			Method:  "POST",
			Handler: s.handleSweep,
		},
		{
			Version: "v1",
			Path:    "/settings",
			Method:  "GET",
			Handler: s.handleGetSettings,
		},
		{
			Version: "v1",
			Path:    "/settings",
			Method:  "PUT",
			Handler: s.handlePutSettings,
		},
		{
			Version: "v1",
			Path:    "/datasets",
			Method:  "POST",
			Handler: s.handleUploadDataset,
		},
		{
			Version: "v1",
			Path:    "/datasets",
			Method:  "GET",
			Handler: s.handleListDatasets,
		},
		{
			Version: "v1",
			Path:    "/datasets/{id}",
			Method:  "GET",
			Handler: s.handleGetDataset,
		},
		{
			Version: "v1",
			Path:    "/datasets/{id}",
			Method:  "DELETE",
			Handler: s.handleDeleteDataset,
		},
		{
			Version: "v1",
			Path:    "/datasets/{id}/preview",
			Method:  "GET",
			Handler: s.handlePreviewDataset,
		},
		{
			Version: "v1",
			Path:    "/datasets/{id}/summary",
			Method:  "GET",
			Handler: s.handleSummarizeDataset,
		},
		{
			Version: "v1",
			Path:    "/datasets/{id}/filter",
			Method:  "POST",
			Handler: s.handleFilterDataset,
		},
	}
}
