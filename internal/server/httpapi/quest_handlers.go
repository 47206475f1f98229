package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/irlquest/server/internal/common"
	"github.com/irlquest/server/internal/server/quests"
)

func (s *Server) handleListQuests(w http.ResponseWriter, r *http.Request) {

	identity, ok := identityFrom(r.Context())
	if !ok {
		errorJSON(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	skip, limit := parsePagination(r)

	records, err := s.quests.List(r.Context(), identity.ID, skip, limit)
	if err != nil {
		s.logger.Error(r.Context(), err.Error())
		errorJSON(w, http.StatusInternalServerError, "internal error")
		return
	}

	out := make([]questOut, 0, len(records))
	for _, record := range records {
		out = append(out, toQuestOut(record))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateQuest(w http.ResponseWriter, r *http.Request) {

	identity, ok := identityFrom(r.Context())
	if !ok {
		errorJSON(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var in questCreateIn
	if err := decodeJSON(r, &in); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(in.Title) == "" {
		errorJSON(w, http.StatusBadRequest, "title required")
		return
	}

	difficulty := 1
	if in.Difficulty != nil {
		difficulty = *in.Difficulty
	}

	record, err := s.quests.Create(r.Context(), identity.ID, &quests.Quest{
		Title:       in.Title,
		Description: in.Description,
		Difficulty:  difficulty,
	})
	if err != nil {
		s.logger.Error(r.Context(), err.Error())
		errorJSON(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toQuestOut(record))
}

func (s *Server) handleGetQuest(w http.ResponseWriter, r *http.Request) {

	identity, ok := identityFrom(r.Context())
	if !ok {
		errorJSON(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, ok := parseID(r)
	if !ok {
		errorJSON(w, http.StatusNotFound, "quest not found")
		return
	}

	record, err := s.quests.Get(r.Context(), identity.ID, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			errorJSON(w, http.StatusNotFound, "quest not found")
			return
		}
		s.logger.Error(r.Context(), err.Error())
		errorJSON(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toQuestOut(record))
}

func (s *Server) handleUpdateQuest(w http.ResponseWriter, r *http.Request) {

	identity, ok := identityFrom(r.Context())
	if !ok {
		errorJSON(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, ok := parseID(r)
	if !ok {
		errorJSON(w, http.StatusNotFound, "quest not found")
		return
	}

	var in questUpdateIn
	if err := decodeJSON(r, &in); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid json")
		return
	}

	record, err := s.quests.Update(r.Context(), identity.ID, id, &quests.Patch{
		Title:       in.Title,
		Description: in.Description,
		Difficulty:  in.Difficulty,
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			errorJSON(w, http.StatusNotFound, "quest not found")
			return
		}
		s.logger.Error(r.Context(), err.Error())
		errorJSON(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toQuestOut(record))
}

func (s *Server) handleDeleteQuest(w http.ResponseWriter, r *http.Request) {

	identity, ok := identityFrom(r.Context())
	if !ok {
		errorJSON(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, ok := parseID(r)
	if !ok {
		errorJSON(w, http.StatusNotFound, "quest not found")
		return
	}

	deleted, err := s.quests.Delete(r.Context(), identity.ID, id)
	if err != nil {
		s.logger.Error(r.Context(), err.Error())
		errorJSON(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !deleted {
		errorJSON(w, http.StatusNotFound, "quest not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
