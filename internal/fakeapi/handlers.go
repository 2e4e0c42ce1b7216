package fakeapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Bharathisthe/Testing/internal/api/types"
	"github.com/Bharathisthe/Testing/internal/web"
)

const maxBodyBytes = 1 << 20

func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	web.JSON(w, 200, map[string]any{"status": "ok"})
}

func (s *Server) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var creds types.Credentials
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&creds); err != nil {
		s.metrics.login("bad_request")
		web.ErrorCode(w, 400, "bad_request", "invalid request body")
		return
	}
	if err := validateCredentials(creds); err != nil {
		s.metrics.login("bad_request")
		web.ErrorCode(w, 400, "bad_request", err.Error())
		return
	}
	if !s.users.authenticate(creds.Username, creds.Passcode) {
		s.metrics.login("unauthorized")
		web.ErrorCode(w, 401, "invalid_credentials", "invalid credentials")
		return
	}

	token, err := s.tokens.issue(creds.Username)
	if err != nil {
		s.log.Error("issue token", "err", err)
		web.Error(w, 500, errors.New("could not start session"))
		return
	}
	s.metrics.login("ok")
	w.Header().Set(types.TokenHeader, token)
	web.JSON(w, 200, types.LoginBody{Message: "login successful", Username: creds.Username})
}

func (s *Server) HandleLogout(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.authorize(w, r)
	if !ok {
		return
	}
	s.tokens.revoke(sess)
	s.log.Debug("session ended", "user", sess.Username, "session", sess.ID)
	web.JSON(w, 200, types.MessageBody{Message: "logout successful"})
}

func (s *Server) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.authorize(w, r)
	if !ok {
		return
	}
	web.JSON(w, 200, types.DashboardBody{
		Message:   "ok",
		Username:  sess.Username,
		IssuedAt:  sess.IssuedAt,
		ExpiresAt: sess.ExpiresAt,
	})
}

// authorize resolves the request's token or writes the 401 itself.
func (s *Server) authorize(w http.ResponseWriter, r *http.Request) (*Session, bool) {
	sess, err := s.tokens.validate(r.Header.Get(types.TokenHeader))
	if err == nil {
		return sess, true
	}
	code := "bad_token"
	switch {
	case errors.Is(err, ErrMissingToken):
		code = "missing_token"
	case errors.Is(err, ErrExpiredToken):
		code = "expired_token"
	}
	web.ErrorCode(w, 401, code, err.Error())
	return nil, false
}
