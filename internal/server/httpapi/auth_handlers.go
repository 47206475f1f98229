package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/irlquest/server/internal/common"
)

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {

	var in registerIn
	if err := decodeJSON(r, &in); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid json")
		return
	}

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	in.Username = strings.TrimSpace(in.Username)
	if in.Email == "" || !strings.Contains(in.Email, "@") || in.Username == "" || in.Password == "" {
		errorJSON(w, http.StatusBadRequest, "email, username and password required")
		return
	}

	identity, err := s.identities.Register(r.Context(), in.Email, in.Username, in.Password)
	if err != nil {
		if errors.Is(err, common.ErrEmailTaken) {
			errorJSON(w, http.StatusBadRequest, "email already registered")
			return
		}
		s.logger.Error(r.Context(), err.Error())
		errorJSON(w, http.StatusInternalServerError, "internal error")
		return
	}

	s.logger.Info(r.Context(), "Registered", "email", identity.Email)
	writeJSON(w, http.StatusCreated, toIdentityOut(identity))
}

// handleToken accepts the credentials either as a JSON body or as form
// fields (username, password); the username field may hold an email or a
// username.
func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {

	var in tokenIn
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		if err := decodeJSON(r, &in); err != nil {
			errorJSON(w, http.StatusBadRequest, "invalid json")
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			errorJSON(w, http.StatusBadRequest, "invalid form")
			return
		}
		in.Username = r.PostFormValue("username")
		in.Password = r.PostFormValue("password")
	}

	if in.Username == "" || in.Password == "" {
		errorJSON(w, http.StatusBadRequest, "username and password required")
		return
	}

	token, err := s.identities.Login(r.Context(), in.Username, in.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			errorJSON(w, http.StatusUnauthorized, "incorrect email or password")
			return
		}
		s.logger.Error(r.Context(), err.Error())
		errorJSON(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, tokenOut{AccessToken: token, TokenType: "bearer"})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {

	identity, ok := identityFrom(r.Context())
	if !ok {
		errorJSON(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	writeJSON(w, http.StatusOK, toIdentityOut(identity))
}

func (s *Server) handleUpdateMe(w http.ResponseWriter, r *http.Request) {

	identity, ok := identityFrom(r.Context())
	if !ok {
		errorJSON(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var in profileIn
	if err := decodeJSON(r, &in); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid json")
		return
	}

	updated, err := s.identities.UpdateProfile(r.Context(), identity.ID, in.Username, in.Password)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			errorJSON(w, http.StatusNotFound, "identity not found")
			return
		}
		s.logger.Error(r.Context(), err.Error())
		errorJSON(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toIdentityOut(updated))
}
