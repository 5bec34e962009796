package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/matzehuels/docgraph/pkg/buildinfo"
	docerrors "github.com/matzehuels/docgraph/pkg/errors"
	"github.com/matzehuels/docgraph/pkg/graph"
	"github.com/matzehuels/docgraph/pkg/pipeline"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

func (s *Server) handleSchema(w http.ResponseWriter, r *http.Request) {
	data, err := graph.MarshalRequestSchema()
	if err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/schema+json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	res, ok := s.execute(w, r)
	if !ok {
		return
	}
	if res.CacheHit {
		w.Header().Set("X-Cache", "hit")
	} else {
		w.Header().Set("X-Cache", "miss")
	}
	w.Header().Set("X-Layout-Algorithm", res.Graph.Metadata.LayoutAlgorithm)
	writeJSON(w, http.StatusOK, res.Graph)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	if err := pipeline.ValidateExportFormat(format); err != nil {
		s.fail(w, r, err)
		return
	}

	res, ok := s.execute(w, r)
	if !ok {
		return
	}
	opts := s.options(r)
	data, hit, err := s.runner.ExportWithCacheInfo(r.Context(), res.Graph, format, opts)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	if hit {
		w.Header().Set("X-Cache", "hit")
	} else {
		w.Header().Set("X-Cache", "miss")
	}
	switch format {
	case pipeline.FormatSVG:
		w.Header().Set("Content-Type", "image/svg+xml")
	default:
		w.Header().Set("Content-Type", "text/vnd.graphviz; charset=utf-8")
	}
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// execute decodes the request body and runs the pipeline. On failure it
// writes the error response and returns false.
func (s *Server) execute(w http.ResponseWriter, r *http.Request) (*pipeline.Result, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, r, http.StatusRequestEntityTooLarge, string(docerrors.ErrCodeInvalidInput),
				"request body exceeds "+strconv.FormatInt(tooLarge.Limit, 10)+" bytes")
			return nil, false
		}
		s.fail(w, r, docerrors.Wrap(docerrors.ErrCodeInvalidFormat, err, "read body"))
		return nil, false
	}

	req, err := pipeline.ParseRequest(body)
	if err != nil {
		s.fail(w, r, err)
		return nil, false
	}

	res, err := s.runner.Execute(r.Context(), req, s.options(r))
	if err != nil {
		s.fail(w, r, err)
		return nil, false
	}
	return res, true
}

func (s *Server) options(r *http.Request) pipeline.Options {
	q := r.URL.Query()
	refresh, _ := strconv.ParseBool(q.Get("refresh"))
	detailed, _ := strconv.ParseBool(q.Get("detailed"))
	return pipeline.Options{
		Options:  s.cfg.Layout,
		Refresh:  refresh,
		Detailed: detailed,
		Logger:   s.logger,
	}
}
