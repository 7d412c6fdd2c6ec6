package server

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/graphlift/graphlift/pkg/convert"
	"github.com/graphlift/graphlift/pkg/errors"
	"github.com/graphlift/graphlift/pkg/pipeline"
	"github.com/graphlift/graphlift/pkg/store"
)

// handleConvert converts a raw analysis document posted as the request
// body. Query parameters:
//
//	format  pin the analysis format instead of detecting ("auto" detects)
//	store   persist the result and respond with the stored graph
//	name    name for the stored graph (defaults to the project name)
//	pretty  indent the response JSON
//	refresh bypass the conversion cache
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	opts := pipeline.ConvertOptions{Refresh: boolParam(q, "refresh")}
	if v := q.Get("format"); v != "" && v != "auto" {
		f, err := convert.ParseFormat(v)
		if err != nil {
			s.respondError(w, err)
			return
		}
		opts.Format = f
	}

	name := q.Get("name")
	if name != "" {
		if err := errors.ValidateGraphName(name); err != nil {
			s.respondError(w, err)
			return
		}
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.respondError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "read request body"))
		return
	}

	res, err := s.runner.Convert(r.Context(), body, opts)
	if err != nil {
		s.respondError(w, err)
		return
	}

	if !boolParam(q, "store") {
		s.writeJSON(w, http.StatusOK, res.Graph, boolParam(q, "pretty"))
		return
	}

	sg := store.NewStoredGraph(name, res.Graph)
	if err := s.store.Save(r.Context(), sg); err != nil {
		s.respondError(w, err)
		return
	}
	s.publish(r.Context(), sg)
	s.logger.Info("stored graph",
		"id", sg.ID,
		"name", sg.Name,
		"nodes", sg.NodeCount,
		"edges", sg.EdgeCount)

	s.writeJSON(w, http.StatusCreated, sg, boolParam(q, "pretty"))
}

// formatsResponse lists the convertible analysis formats.
type formatsResponse struct {
	Formats []formatInfo `json:"formats"`
}

type formatInfo struct {
	Name      string `json:"name"`
	Ecosystem string `json:"ecosystem"`
}

func (s *Server) handleFormats(w http.ResponseWriter, _ *http.Request) {
	resp := formatsResponse{Formats: []formatInfo{}}
	for _, f := range convert.Formats() {
		resp.Formats = append(resp.Formats, formatInfo{
			Name:      string(f),
			Ecosystem: f.Ecosystem(),
		})
	}
	s.respondJSON(w, http.StatusOK, resp)
}

// graphListResponse wraps the stored-graph listing.
type graphListResponse struct {
	Graphs []store.StoredGraph `json:"graphs"`
}

func (s *Server) handleGraphList(w http.ResponseWriter, r *http.Request) {
	graphs, err := s.store.List(r.Context())
	if err != nil {
		s.respondError(w, err)
		return
	}
	if graphs == nil {
		graphs = []store.StoredGraph{}
	}
	s.respondJSON(w, http.StatusOK, graphListResponse{Graphs: graphs})
}

func (s *Server) handleGraphGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := errors.ValidateGraphID(id); err != nil {
		s.respondError(w, err)
		return
	}

	sg, err := s.store.Get(r.Context(), id)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, sg, boolParam(r.URL.Query(), "pretty"))
}

func (s *Server) handleGraphDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := errors.ValidateGraphID(id); err != nil {
		s.respondError(w, err)
		return
	}

	if err := s.store.Delete(r.Context(), id); err != nil {
		s.respondError(w, err)
		return
	}
	if s.publisher != nil {
		if err := s.publisher.Remove(r.Context(), id); err != nil {
			s.logger.Warn("neo4j remove failed", "id", id, "error", err)
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// publish mirrors a stored graph into Neo4j when a publisher is wired.
// Publish failures are logged, not surfaced: the mirror is a secondary
// sink and must not fail the request that stored the graph.
func (s *Server) publish(ctx context.Context, sg *store.StoredGraph) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, sg.ID, sg.Graph); err != nil {
		s.logger.Warn("neo4j publish failed", "id", sg.ID, "error", err)
	}
}

// boolParam interprets a query parameter as a boolean. Bare presence
// ("?store") counts as true, as does any strconv-true value.
func boolParam(q url.Values, name string) bool {
	if !q.Has(name) {
		return false
	}
	v := q.Get(name)
	if v == "" {
		return true
	}
	b, err := strconv.ParseBool(v)
	return err == nil && b
}
