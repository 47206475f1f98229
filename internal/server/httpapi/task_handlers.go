package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/irlquest/server/internal/common"
	"github.com/irlquest/server/internal/server/tasks"
)

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {

	identity, ok := identityFrom(r.Context())
	if !ok {
		errorJSON(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	skip, limit := parsePagination(r)

	records, err := s.tasks.List(r.Context(), identity.ID, skip, limit)
	if err != nil {
		s.logger.Error(r.Context(), err.Error())
		errorJSON(w, http.StatusInternalServerError, "internal error")
		return
	}

	out := make([]taskOut, 0, len(records))
	for _, record := range records {
		out = append(out, toTaskOut(record))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {

	identity, ok := identityFrom(r.Context())
	if !ok {
		errorJSON(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var in taskCreateIn
	if err := decodeJSON(r, &in); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(in.Title) == "" {
		errorJSON(w, http.StatusBadRequest, "title required")
		return
	}

	record, err := s.tasks.Create(r.Context(), identity.ID, &tasks.Task{
		Title:       in.Title,
		Description: in.Description,
	})
	if err != nil {
		s.logger.Error(r.Context(), err.Error())
		errorJSON(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toTaskOut(record))
}

func (s *Server) handleGetTask(w http.ResponseWriter, r *http.Request) {

	identity, ok := identityFrom(r.Context())
	if !ok {
		errorJSON(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, ok := parseID(r)
	if !ok {
		errorJSON(w, http.StatusNotFound, "task not found")
		return
	}

	record, err := s.tasks.Get(r.Context(), identity.ID, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			errorJSON(w, http.StatusNotFound, "task not found")
			return
		}
		s.logger.Error(r.Context(), err.Error())
		errorJSON(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toTaskOut(record))
}

func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {

	identity, ok := identityFrom(r.Context())
	if !ok {
		errorJSON(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, ok := parseID(r)
	if !ok {
		errorJSON(w, http.StatusNotFound, "task not found")
		return
	}

	var in taskUpdateIn
	if err := decodeJSON(r, &in); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid json")
		return
	}

	record, err := s.tasks.Update(r.Context(), identity.ID, id, &tasks.Patch{
		Title:       in.Title,
		Description: in.Description,
		Completed:   in.Completed,
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			errorJSON(w, http.StatusNotFound, "task not found")
			return
		}
		s.logger.Error(r.Context(), err.Error())
		errorJSON(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toTaskOut(record))
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {

	identity, ok := identityFrom(r.Context())
	if !ok {
		errorJSON(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, ok := parseID(r)
	if !ok {
		errorJSON(w, http.StatusNotFound, "task not found")
		return
	}

	deleted, err := s.tasks.Delete(r.Context(), identity.ID, id)
	if err != nil {
		s.logger.Error(r.Context(), err.Error())
		errorJSON(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !deleted {
		errorJSON(w, http.StatusNotFound, "task not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
