// Package server exposes the digraph library over HTTP.
//
// Graphs live in an in-memory registry keyed by UUID; nothing is persisted.
// Each graph is guarded by a read-write mutex, since the underlying store
// is single-writer by design and the HTTP layer is the one introducing
// concurrency.
//
// # Endpoints
//
//	POST   /graphs                 create a graph (JSON body, ?acyclic=true for the guarded variant)
//	GET    /graphs/{id}            export the graph as JSON
//	POST   /graphs/{id}/nodes      add or overwrite a node
//	POST   /graphs/{id}/edges      add an edge (409 if it would close a cycle)
//	GET    /graphs/{id}/sort       topological order (409 if the graph is cyclic)
//	GET    /graphs/{id}/walk       traversal order; query: algo=dfs|bfs, start=ID
//	GET    /graphs/{id}/dot        Graphviz DOT text
package server

import (
	"encoding/json"
	"errors"
	"iter"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/depwalk/depwalk/pkg/digraph"
	gio "github.com/depwalk/depwalk/pkg/io"
	"github.com/depwalk/depwalk/pkg/observability"
	"github.com/depwalk/depwalk/pkg/render"
)

// mutable is the write surface shared by both graph variants. The acyclic
// variant's AddEdge can fail; the base variant's never does, so its adapter
// always returns nil.
type mutable interface {
	AddNode(id string, value int)
	AddEdge(e digraph.Edge) error
}

// baseGraph adapts *digraph.Graph to the mutable interface.
type baseGraph struct {
	*digraph.Graph
}

func (b baseGraph) AddEdge(e digraph.Edge) error {
	b.Graph.AddEdge(e)
	return nil
}

// entry is one registered graph plus its lock. The store itself is not safe
// for concurrent use, so every handler takes the lock in the appropriate
// mode.
type entry struct {
	mu    sync.RWMutex
	read  gio.Store
	write mutable
}

// Server is the HTTP API. It owns the graph registry and is safe for
// concurrent use.
type Server struct {
	mu     sync.RWMutex
	graphs map[string]*entry
	logger *log.Logger
}

// New creates a Server that logs requests through the given logger.
// A nil logger falls back to the package default.
func New(logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		graphs: make(map[string]*entry),
		logger: logger,
	}
}

// Handler returns the chi router with all routes and middleware attached.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.logRequests)

	r.Route("/graphs", func(r chi.Router) {
		r.Post("/", s.createGraph)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.exportGraph)
			r.Post("/nodes", s.addNode)
			r.Post("/edges", s.addEdge)
			r.Get("/sort", s.sortGraph)
			r.Get("/walk", s.walkGraph)
			r.Get("/dot", s.dotGraph)
		})
	})

	return r
}

// logRequests logs every request and emits server hooks with the response
// status and handling time.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		observability.Server().OnRequest(r.Context(), r.Method, r.URL.Path)

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)

		elapsed := time.Since(start)
		observability.Server().OnResponse(r.Context(), r.Method, r.URL.Path, sw.status, elapsed)
		s.logger.Debug("request", "method", r.Method, "path", r.URL.Path, "status", sw.status, "elapsed", elapsed.Round(time.Microsecond))
	})
}

// statusWriter captures the status code written by a handler.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (s *Server) lookup(id string) (*entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.graphs[id]
	return e, ok
}

type nodeRequest struct {
	ID    string `json:"id"`
	Value int    `json:"value"`
}

type edgeRequest struct {
	From      string  `json:"from"`
	To        string  `json:"to"`
	Name      string  `json:"name"`
	Weight    float64 `json:"weight"`
	FromValue int     `json:"from_value"`
	ToValue   int     `json:"to_value"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// createGraph registers a new graph. An optional JSON body seeds it using
// the pkg/io document format; ?acyclic=true selects the guarded variant
// (overriding the body's flag).
func (s *Server) createGraph(w http.ResponseWriter, r *http.Request) {
	acyclic := r.URL.Query().Get("acyclic") == "true"

	var (
		read  gio.Store
		write mutable
	)
	if r.ContentLength > 0 {
		st, err := gio.ReadJSON(r.Body)
		if err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, digraph.ErrEdgeCycle) {
				status = http.StatusConflict
			}
			writeError(w, status, err)
			return
		}
		read = st
	}

	switch g := read.(type) {
	case *digraph.Acyclic:
		write = g
	case *digraph.Graph:
		if acyclic {
			// Replay the seed through the guarded variant.
			a := digraph.NewAcyclic()
			for _, id := range g.Nodes() {
				v, _ := g.NodeValue(id)
				a.AddNode(id, v)
			}
			for _, e := range g.Edges() {
				if err := a.AddEdge(e); err != nil {
					writeError(w, http.StatusConflict, err)
					return
				}
			}
			read, write = a, a
		} else {
			write = baseGraph{g}
		}
	default: // no body
		if acyclic {
			a := digraph.NewAcyclic()
			read, write = a, a
		} else {
			g := digraph.New()
			read, write = g, baseGraph{g}
		}
	}

	id := uuid.NewString()
	s.mu.Lock()
	s.graphs[id] = &entry{read: read, write: write}
	s.mu.Unlock()

	s.logger.Info("graph created", "id", id, "acyclic", acyclic)
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (s *Server) exportGraph(w http.ResponseWriter, r *http.Request) {
	e, ok := s.lookup(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, errors.New("graph not found"))
		return
	}

	e.mu.RLock()
	defer e.mu.RUnlock()
	w.Header().Set("Content-Type", "application/json")
	if err := gio.WriteJSON(e.read, w); err != nil {
		s.logger.Error("export failed", "err", err)
	}
}

func (s *Server) addNode(w http.ResponseWriter, r *http.Request) {
	e, ok := s.lookup(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, errors.New("graph not found"))
		return
	}

	var req nodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.ID == "" {
		writeError(w, http.StatusBadRequest, errors.New("missing node id"))
		return
	}

	e.mu.Lock()
	e.write.AddNode(req.ID, req.Value)
	e.mu.Unlock()

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) addEdge(w http.ResponseWriter, r *http.Request) {
	e, ok := s.lookup(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, errors.New("graph not found"))
		return
	}

	var req edgeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.From == "" || req.To == "" {
		writeError(w, http.StatusBadRequest, errors.New("missing edge endpoint"))
		return
	}

	e.mu.Lock()
	err := e.write.AddEdge(digraph.Edge{
		From: req.From, To: req.To,
		Name: req.Name, Weight: req.Weight,
		FromValue: req.FromValue, ToValue: req.ToValue,
	})
	e.mu.Unlock()

	if err != nil {
		if errors.Is(err, digraph.ErrEdgeCycle) {
			writeError(w, http.StatusConflict, err)
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) sortGraph(w http.ResponseWriter, r *http.Request) {
	e, ok := s.lookup(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, errors.New("graph not found"))
		return
	}

	e.mu.RLock()
	start := time.Now()
	observability.Sort().OnSortStart(r.Context(), e.read.NodeCount())
	order, err := digraph.TopSort(e.read)
	observability.Sort().OnSortComplete(r.Context(), e.read.NodeCount(), time.Since(start), err)
	e.mu.RUnlock()

	if err != nil {
		writeError(w, http.StatusConflict, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"order": order})
}

func (s *Server) walkGraph(w http.ResponseWriter, r *http.Request) {
	e, ok := s.lookup(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, errors.New("graph not found"))
		return
	}

	algo := r.URL.Query().Get("algo")
	if algo == "" {
		algo = "bfs"
	}
	start := r.URL.Query().Get("start")
	if start == "" {
		writeError(w, http.StatusBadRequest, errors.New("missing start query parameter"))
		return
	}

	if algo != "dfs" && algo != "bfs" {
		writeError(w, http.StatusBadRequest, errors.New("algo must be dfs or bfs"))
		return
	}

	e.mu.RLock()
	var seq iter.Seq[string]
	if algo == "dfs" {
		seq = digraph.DFS(e.read, start)
	} else {
		seq = digraph.BFS(e.read, start)
	}

	began := time.Now()
	observability.Walk().OnWalkStart(r.Context(), algo, start)
	order := []string{}
	for id := range seq {
		order = append(order, id)
	}
	observability.Walk().OnWalkComplete(r.Context(), algo, start, len(order), time.Since(began))
	e.mu.RUnlock()

	writeJSON(w, http.StatusOK, map[string][]string{"order": order})
}

func (s *Server) dotGraph(w http.ResponseWriter, r *http.Request) {
	e, ok := s.lookup(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, errors.New("graph not found"))
		return
	}

	e.mu.RLock()
	dot := render.ToDOT(e.read, render.Options{ShowEdgeLabels: true})
	e.mu.RUnlock()

	w.Header().Set("Content-Type", "text/vnd.graphviz")
	_, _ = w.Write([]byte(dot))
}
