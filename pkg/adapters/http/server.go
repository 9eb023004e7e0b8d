// Package http exposes the editing operations over HTTP for authoring
// frontends.
package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/schema"
)

var (
	stateRenames = promauto.NewCounter(prometheus.CounterOpts{
		Name: "espalier_state_renames_total",
		Help: "Number of successful state renames.",
	})
	gadgetCommits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "espalier_gadget_commits_total",
		Help: "Number of gadgets committed into explorations.",
	})
)

// Editor defines the interface the handler drives. *espalier.Editor
// satisfies it.
type Editor interface {
	Exploration() *domain.Exploration
	RenameState(oldName, newName string) error
	CommitGadget(typeID, name, panel string, args map[string]any, visibleIn []string) (*domain.Gadget, error)
	DeleteGadget(name string) error
}

// Server routes editing requests onto an Editor.
type Server struct {
	editor Editor
}

// NewHandler creates the HTTP handler for the editing API.
func NewHandler(editor Editor) http.Handler {
	s := &Server{editor: editor}

	r := chi.NewRouter()
	r.Get("/exploration", s.getExploration)
	r.Get("/exploration/states", s.listStates)
	r.Post("/exploration/states/{name}/rename", s.renameState)
	r.Get("/exploration/gadgets", s.listGadgets)
	r.Post("/exploration/gadgets", s.addGadget)
	r.Delete("/exploration/gadgets/{name}", s.deleteGadget)
	r.Handle("/metrics", promhttp.Handler())
	return r
}

func (s *Server) getExploration(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.editor.Exploration())
}

func (s *Server) listStates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"init_state_name": s.editor.Exploration().InitStateName(),
		"state_names":     s.editor.Exploration().StateNames(),
	})
}

type renameRequest struct {
	NewName string `json:"new_name"`
}

func (s *Server) renameState(w http.ResponseWriter, r *http.Request) {
	var body renameRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	oldName := chi.URLParam(r, "name")
	if err := s.editor.RenameState(oldName, body.NewName); err != nil {
		writeError(w, err)
		return
	}

	stateRenames.Inc()
	writeJSON(w, http.StatusOK, map[string]any{
		"old_name": oldName,
		"new_name": body.NewName,
	})
}

func (s *Server) listGadgets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.editor.Exploration().Gadgets().ByPanel())
}

type addGadgetRequest struct {
	TypeID            string         `json:"type_id"`
	Name              string         `json:"name"`
	Panel             string         `json:"panel"`
	CustomizationArgs map[string]any `json:"customization_args"`
	VisibleInStates   []string       `json:"visible_in_states"`
}

func (s *Server) addGadget(w http.ResponseWriter, r *http.Request) {
	var body addGadgetRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	g, err := s.editor.CommitGadget(
		body.TypeID, body.Name, body.Panel, body.CustomizationArgs, body.VisibleInStates)
	if err != nil {
		writeError(w, err)
		return
	}

	gadgetCommits.Inc()
	writeJSON(w, http.StatusCreated, g)
}

func (s *Server) deleteGadget(w http.ResponseWriter, r *http.Request) {
	if err := s.editor.DeleteGadget(chi.URLParam(r, "name")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// writeError maps domain errors onto HTTP statuses: stale references are
// 404, name collisions 409, everything user-correctable 400.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, domain.ErrUnknownState),
		errors.Is(err, domain.ErrGadgetNotFound),
		errors.Is(err, domain.ErrUnknownGadgetType):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateGadgetName),
		errors.Is(err, domain.ErrDuplicateStateName):
		status = http.StatusConflict
	}

	var ve *schema.ValidationError
	if errors.As(err, &ve) {
		status = http.StatusBadRequest
	}

	writeJSON(w, status, map[string]string{"error": err.Error()})
}
