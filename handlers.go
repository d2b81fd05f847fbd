package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"artaura/internal/catalog"
	"artaura/internal/session"
)

const (
	clientCookie = "artaura_client"
	tokenCookie  = "artaura_token"

	maxBodyBytes = 1 << 20
)

type ctxKey int

const clientIDKey ctxKey = iota

// sessionHandler is a handler that needs the browser's session.
type sessionHandler func(w http.ResponseWriter, r *http.Request, sh *session.Shell)

func (s *Server) setupRoutes() {
	s.router.Use(s.metrics.instrument, s.withClient)

	s.router.HandleFunc("/", s.handleHome).Methods("GET")
	s.router.HandleFunc("/login", s.handleLoginPage).Methods("GET")
	for name, h := range s.pages() {
		s.router.HandleFunc("/"+name, s.page(h)).Methods("GET")
	}

	// API endpoints
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/login", s.handleLogin).Methods("POST")
	api.HandleFunc("/login/{provider}", s.handleSocialLogin).Methods("POST")
	api.HandleFunc("/logout", s.handleLogout).Methods("POST")
	api.HandleFunc("/providers", s.handleGetProviders).Methods("GET")
	api.HandleFunc("/auth/status", s.handleAuthStatus).Methods("GET")
	api.HandleFunc("/user", s.api(s.handleGetUser)).Methods("GET")
	api.HandleFunc("/activity", s.api(s.handleGetActivity)).Methods("GET")
	api.HandleFunc("/artworks/{id}/like", s.api(s.handleLikeArtwork)).Methods("POST")
	api.HandleFunc("/artists/{id}/follow", s.api(s.handleFollowArtist)).Methods("POST")
	api.HandleFunc("/artists/{id}/follow", s.api(s.handleUnfollowArtist)).Methods("DELETE")
	api.HandleFunc("/favorites/{id}", s.api(s.handleRemoveFavorite)).Methods("DELETE")
	api.HandleFunc("/notifications/{id}/read", s.api(s.handleMarkRead)).Methods("POST")
	api.HandleFunc("/drafts", s.api(s.handleGetDraft)).Methods("GET")
	api.HandleFunc("/drafts", s.api(s.handleSaveDraft)).Methods("PUT")
	api.HandleFunc("/ai/analyze", s.api(s.handleAnalyze)).Methods("POST")
	api.HandleFunc("/ai/match", s.api(s.handleMatch)).Methods("POST")

	s.router.Handle("/metrics", s.metrics.handler()).Methods("GET")

	// WebSocket endpoint
	s.router.HandleFunc("/ws", s.handleWebSocket)
}

// withClient makes sure every browser carries a client id. The id names the
// browser's storage namespace.
func (s *Server) withClient(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ""
		if c, err := r.Cookie(clientCookie); err == nil {
			if parsed, err := uuid.Parse(c.Value); err == nil {
				id = parsed.String()
			}
		}
		if id == "" {
			id = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     clientCookie,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
				MaxAge:   365 * 24 * 60 * 60,
			})
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), clientIDKey, id)))
	})
}

func clientID(r *http.Request) string {
	id, _ := r.Context().Value(clientIDKey).(string)
	return id
}

func (s *Server) sessionOptions() session.Options {
	return session.Options{
		LoginDelay:  s.cfg.Session.LoginDelay,
		SocialDelay: s.cfg.Session.SocialDelay,
		BcryptCost:  s.cfg.Session.BcryptCost,
		Logger:      s.log.With(zap.String("component", "session")),
	}
}

// loadSession restores the browser's session. It is authenticated only when
// the token cookie matches the stored digest; a match is cached per client.
func (s *Server) loadSession(r *http.Request) (*session.Shell, bool, error) {
	sh := session.New(s.db.Namespace(clientID(r)), s.sessionOptions())
	if err := sh.Restore(r.Context()); err != nil {
		return nil, false, err
	}
	if !sh.Authenticated() {
		return sh, false, nil
	}
	c, err := r.Cookie(tokenCookie)
	if err != nil {
		return sh, false, nil
	}
	id := clientID(r)
	if s.tokens.verified(id, c.Value) {
		return sh, true, nil
	}
	if !sh.Verify(r.Context(), c.Value) {
		return sh, false, nil
	}
	s.tokens.remember(id, c.Value)
	return sh, true, nil
}

// page wraps a view. Visitors without a session are sent to the login page.
func (s *Server) page(h sessionHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sh, ok, err := s.loadSession(r)
		if err != nil {
			http.Error(w, "Failed to load session", http.StatusInternalServerError)
			s.log.Error("failed to load session", zap.Error(err))
			return
		}
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		h(w, r, sh)
	}
}

// api wraps an API handler that needs a signed-in user.
func (s *Server) api(h sessionHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sh, ok, err := s.loadSession(r)
		if err != nil {
			http.Error(w, "Failed to load session", http.StatusInternalServerError)
			s.log.Error("failed to load session", zap.Error(err))
			return
		}
		if !ok {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		h(w, r, sh)
	}
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	_, ok, err := s.loadSession(r)
	if err != nil {
		http.Error(w, "Failed to load session", http.StatusInternalServerError)
		return
	}
	if ok {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (s *Server) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	_, ok, err := s.loadSession(r)
	if err != nil {
		http.Error(w, "Failed to load session", http.StatusInternalServerError)
		return
	}
	if ok {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	respondJSON(w, http.StatusOK, LoginPage{Providers: session.Providers()})
}

func (s *Server) handleGetProviders(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, session.Providers())
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var credentials session.Credentials
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&credentials); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	sh, _, err := s.loadSession(r)
	if err != nil {
		http.Error(w, "Failed to load session", http.StatusInternalServerError)
		return
	}
	user, token, err := sh.Login(r.Context(), credentials)
	s.finishLogin(w, r, "password", user, token, err)
}

func (s *Server) handleSocialLogin(w http.ResponseWriter, r *http.Request) {
	provider := mux.Vars(r)["provider"]

	sh, _, err := s.loadSession(r)
	if err != nil {
		http.Error(w, "Failed to load session", http.StatusInternalServerError)
		return
	}
	user, token, err := sh.SocialLogin(r.Context(), provider)
	s.finishLogin(w, r, provider, user, token, err)
}

func (s *Server) finishLogin(w http.ResponseWriter, r *http.Request, method string, user session.User, token string, err error) {
	var verr *session.ValidationError
	switch {
	case errors.As(err, &verr):
		s.metrics.logins.WithLabelValues(method, "invalid").Inc()
		respondJSON(w, http.StatusBadRequest, verr)
		return
	case errors.Is(err, session.ErrUnknownProvider):
		s.metrics.logins.WithLabelValues("unknown", "invalid").Inc()
		http.Error(w, "Unknown provider", http.StatusNotFound)
		return
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		s.metrics.logins.WithLabelValues(method, "cancelled").Inc()
		s.log.Debug("login abandoned", zap.String("method", method))
		return
	case err != nil:
		s.metrics.logins.WithLabelValues(method, "error").Inc()
		http.Error(w, "Failed to log in", http.StatusInternalServerError)
		s.log.Error("login failed", zap.String("method", method), zap.Error(err))
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   s.cfg.Server.CookieMaxAge,
	})
	s.tokens.remember(clientID(r), token)
	s.metrics.logins.WithLabelValues(method, "success").Inc()

	respondJSON(w, http.StatusOK, LoginResponse{
		Success: true,
		User:    user,
		Token:   token,
	})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	sh, _, err := s.loadSession(r)
	if err != nil {
		http.Error(w, "Failed to load session", http.StatusInternalServerError)
		return
	}
	s.tokens.forget(clientID(r))
	if err := sh.Logout(r.Context()); err != nil {
		http.Error(w, "Failed to log out", http.StatusInternalServerError)
		s.log.Error("logout failed", zap.Error(err))
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Logged out successfully",
	})
}

func (s *Server) handleAuthStatus(w http.ResponseWriter, r *http.Request) {
	sh, ok, err := s.loadSession(r)
	if err != nil {
		http.Error(w, "Failed to load session", http.StatusInternalServerError)
		return
	}

	status := AuthStatus{Authenticated: ok, State: session.LoggedOut.String()}
	if ok {
		u, _ := sh.User()
		status.User = &u
		status.State = sh.State().String()
	}
	respondJSON(w, http.StatusOK, status)
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request, sh *session.Shell) {
	u, _ := sh.User()
	respondJSON(w, http.StatusOK, u)
}

func (s *Server) handleGetActivity(w http.ResponseWriter, r *http.Request, sh *session.Shell) {
	respondJSON(w, http.StatusOK, s.recentActivity(r.Context(), clientID(r)))
}

func pathID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", mux.Vars(r)["id"])
	}
	return id, nil
}

// recordIntent logs, stores and broadcasts a reaction.
func (s *Server) recordIntent(r *http.Request, sh *session.Shell, action string, targetID int, target string) Intent {
	u, _ := sh.User()
	in := Intent{
		Action:   action,
		TargetID: targetID,
		Target:   target,
		Username: u.Username,
		At:       time.Now().UTC(),
	}

	s.log.Info("intent",
		zap.String("action", action),
		zap.Int("target_id", targetID),
		zap.String("username", u.Username),
	)
	s.metrics.intents.WithLabelValues(action).Inc()
	s.logActivity(r.Context(), clientID(r), in)
	s.broadcastUpdate("intent", in)
	return in
}

func (s *Server) handleLikeArtwork(w http.ResponseWriter, r *http.Request, sh *session.Shell) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid artwork ID", http.StatusBadRequest)
		return
	}
	artwork, ok := catalog.ArtworkByID(id)
	if !ok {
		http.Error(w, "Artwork not found", http.StatusNotFound)
		return
	}
	respondJSON(w, http.StatusOK, s.recordIntent(r, sh, ActionLike, id, artwork.Title))
}

func (s *Server) handleFollowArtist(w http.ResponseWriter, r *http.Request, sh *session.Shell) {
	s.artistIntent(w, r, sh, ActionFollow)
}

func (s *Server) handleUnfollowArtist(w http.ResponseWriter, r *http.Request, sh *session.Shell) {
	s.artistIntent(w, r, sh, ActionUnfollow)
}

func (s *Server) artistIntent(w http.ResponseWriter, r *http.Request, sh *session.Shell, action string) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid artist ID", http.StatusBadRequest)
		return
	}
	artist, ok := catalog.ArtistByID(id)
	if !ok {
		http.Error(w, "Artist not found", http.StatusNotFound)
		return
	}
	respondJSON(w, http.StatusOK, s.recordIntent(r, sh, action, id, artist.Name))
}

func (s *Server) handleRemoveFavorite(w http.ResponseWriter, r *http.Request, sh *session.Shell) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid favorite ID", http.StatusBadRequest)
		return
	}
	fav, ok := catalog.FavoriteByID(id)
	if !ok {
		http.Error(w, "Favorite not found", http.StatusNotFound)
		return
	}
	respondJSON(w, http.StatusOK, s.recordIntent(r, sh, ActionRemoveFavorite, id, fav.Title))
}

func (s *Server) handleMarkRead(w http.ResponseWriter, r *http.Request, sh *session.Shell) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid notification ID", http.StatusBadRequest)
		return
	}
	n, ok := catalog.NotificationByID(id)
	if !ok {
		http.Error(w, "Notification not found", http.StatusNotFound)
		return
	}
	respondJSON(w, http.StatusOK, s.recordIntent(r, sh, ActionMarkRead, id, n.Title))
}

func (s *Server) handleGetDraft(w http.ResponseWriter, r *http.Request, sh *session.Shell) {
	draft, saved, err := s.draftFor(r.Context(), sh)
	if err != nil {
		http.Error(w, "Failed to load draft", http.StatusInternalServerError)
		s.log.Error("failed to load draft", zap.Error(err))
		return
	}
	respondJSON(w, http.StatusOK, DraftResponse{Saved: saved, Draft: draft})
}

// draftFor returns the saved draft, or an empty one prefilled for the user.
func (s *Server) draftFor(ctx context.Context, sh *session.Shell) (session.Draft, bool, error) {
	draft, saved, err := sh.LoadDraft(ctx)
	if err != nil || saved {
		return draft, saved, err
	}
	u, _ := sh.User()
	return session.NewDraft(u), false, nil
}

func (s *Server) handleSaveDraft(w http.ResponseWriter, r *http.Request, sh *session.Shell) {
	var draft session.Draft
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&draft); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	saved, err := sh.SaveDraft(r.Context(), draft)
	if err != nil {
		http.Error(w, "Failed to save draft", http.StatusInternalServerError)
		s.log.Error("failed to save draft", zap.Error(err))
		return
	}
	respondJSON(w, http.StatusOK, DraftResponse{Saved: true, Draft: saved})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request, sh *session.Shell) {
	result, err := s.analyzer.Analyze(r.Context())
	if err != nil {
		s.log.Debug("analysis abandoned", zap.Error(err))
		return
	}
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request, sh *session.Shell) {
	var req MatchRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	matches, err := s.matcher.Match(r.Context(), req.Interests)
	if err != nil {
		s.log.Debug("match abandoned", zap.Error(err))
		return
	}
	if req.Interests == nil {
		req.Interests = []string{}
	}
	respondJSON(w, http.StatusOK, MatchResponse{Interests: req.Interests, Matches: matches})
}
