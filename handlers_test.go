package main

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"golang.org/x/crypto/bcrypt"

	"artaura/internal/assist"
	"artaura/internal/catalog"
	"artaura/internal/session"
	"artaura/internal/store"
)

type testEnv struct {
	server *Server
	ts     *httptest.Server
	client *http.Client
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := DefaultConfig()
	cfg.Database.Path = filepath.Join(t.TempDir(), "artaura.db")
	cfg.Session = SessionConfig{
		LoginDelay:  time.Millisecond,
		SocialDelay: time.Millisecond,
		BcryptCost:  bcrypt.MinCost,
	}
	cfg.Assist = AssistConfig{AnalyzeDelay: time.Millisecond, MatchDelay: time.Millisecond}
	require.NoError(t, cfg.Validate())

	s, err := NewServer(cfg, zaptest.NewLogger(t))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	hubDone := make(chan struct{})
	go func() {
		s.hub.run(ctx)
		close(hubDone)
	}()

	ts := httptest.NewServer(s.router)
	t.Cleanup(func() {
		ts.Close()
		cancel()
		<-hubDone
		s.Close()
	})

	return &testEnv{server: s, ts: ts, client: newBrowser(t, ts)}
}

// newBrowser returns a client with its own cookie jar that does not follow
// redirects.
func newBrowser(t *testing.T, ts *httptest.Server) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{
		Jar:       jar,
		Transport: ts.Client().Transport,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func (e *testEnv) do(t *testing.T, method, path, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, e.ts.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := e.client.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func (e *testEnv) login(t *testing.T) {
	t.Helper()
	resp := e.do(t, "POST", "/api/login", `{"username":"maria","password":"secret1"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestPagesRedirectWhenLoggedOut(t *testing.T) {
	env := newTestEnv(t)

	paths := []string{"/"}
	for name := range env.server.pages() {
		paths = append(paths, "/"+name)
	}
	require.Len(t, paths, 14)

	for _, path := range paths {
		resp := env.do(t, "GET", path, "")
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode, path)
		assert.Equal(t, "/login", resp.Header.Get("Location"), path)
	}

	resp := env.do(t, "GET", "/login", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	page := decode[LoginPage](t, resp)
	assert.Len(t, page.Providers, 3)
}

func TestLoginFlow(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, "POST", "/api/login", `{"username":"  ","password":"abc"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	verr := decode[session.ValidationError](t, resp)
	assert.Equal(t, map[string]string{
		"username": "Username is required",
		"password": "Password must be at least 6 characters",
	}, verr.Fields)

	resp = env.do(t, "POST", "/api/login", `{"username":"maria","password":"secret1"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	login := decode[LoginResponse](t, resp)
	assert.True(t, login.Success)
	assert.Equal(t, "maria@mailinator.com", login.User.Email)
	assert.True(t, strings.HasPrefix(login.Token, "mock-jwt-token-"))

	resp = env.do(t, "GET", "/", "")
	assert.Equal(t, "/dashboard", resp.Header.Get("Location"))
	resp = env.do(t, "GET", "/login", "")
	assert.Equal(t, "/dashboard", resp.Header.Get("Location"))

	resp = env.do(t, "GET", "/dashboard", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	dash := decode[DashboardPage](t, resp)
	assert.Equal(t, "maria", dash.User.Username)
	assert.Equal(t, 81, dash.Stats.YouthEngagementRate)
	assert.Equal(t, 2, dash.UnreadCount)

	status := decode[AuthStatus](t, env.do(t, "GET", "/api/auth/status", ""))
	assert.True(t, status.Authenticated)
	assert.Equal(t, "logged_in", status.State)

	resp = env.do(t, "POST", "/api/logout", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.do(t, "GET", "/dashboard", "")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	status = decode[AuthStatus](t, env.do(t, "GET", "/api/auth/status", ""))
	assert.False(t, status.Authenticated)
	assert.Nil(t, status.User)
}

func TestStoredSessionNeedsMatchingToken(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	var clientCookieValue string
	req, err := http.NewRequest("GET", env.ts.URL+"/dashboard", nil)
	require.NoError(t, err)
	for _, c := range env.client.Jar.Cookies(req.URL) {
		if c.Name == clientCookie {
			clientCookieValue = c.Value
		}
	}
	require.NotEmpty(t, clientCookieValue)

	req.AddCookie(&http.Cookie{Name: clientCookie, Value: clientCookieValue})
	req.AddCookie(&http.Cookie{Name: tokenCookie, Value: "mock-jwt-token-0"})
	resp, err := newBrowser(t, env.ts).Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
}

func (e *testEnv) clientID(t *testing.T) string {
	t.Helper()
	u, err := url.Parse(e.ts.URL)
	require.NoError(t, err)
	for _, c := range e.client.Jar.Cookies(u) {
		if c.Name == clientCookie {
			return c.Value
		}
	}
	t.Fatal("no client cookie")
	return ""
}

func TestVerifiedTokenIsCached(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)
	id := env.clientID(t)
	assert.Equal(t, 1, env.server.tokens.len())

	// A replaced digest is not consulted again while the token stays cached.
	other, err := bcrypt.GenerateFromPassword([]byte("other-token"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, env.server.db.Namespace(id).Set(context.Background(), session.TokenKey, string(other)))
	resp := env.do(t, "GET", "/dashboard", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.do(t, "POST", "/api/logout", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 0, env.server.tokens.len())
	resp = env.do(t, "GET", "/dashboard", "")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
}

func TestZeroAssistDelaysKeepDefaults(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Database.Path = filepath.Join(t.TempDir(), "artaura.db")
	cfg.Assist = AssistConfig{}
	require.NoError(t, cfg.Validate())

	s, err := NewServer(cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	defer s.Close()
	assert.Equal(t, assist.DefaultAnalyzeDelay, s.analyzer.Delay)
	assert.Equal(t, assist.DefaultMatchDelay, s.matcher.Delay)
}

func TestSocialLogin(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, "POST", "/api/login/myspace", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = env.do(t, "POST", "/api/login/microsoft", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	login := decode[LoginResponse](t, resp)
	assert.Equal(t, "Microsoft User", login.User.Name)
	assert.Equal(t, "Contributer", login.User.Role)
	assert.True(t, strings.HasPrefix(login.Token, "microsoft-token-"))

	user := decode[session.User](t, env.do(t, "GET", "/api/user", ""))
	assert.Equal(t, "microsoft_user", user.Username)

	assert.Equal(t, 1.0, testutil.ToFloat64(env.server.metrics.logins.WithLabelValues("microsoft", "success")))
}

func TestAPIRequiresLogin(t *testing.T) {
	env := newTestEnv(t)

	for _, tc := range []struct{ method, path string }{
		{"GET", "/api/user"},
		{"POST", "/api/artworks/1/like"},
		{"POST", "/api/artists/1/follow"},
		{"DELETE", "/api/favorites/1"},
		{"GET", "/api/drafts"},
		{"POST", "/api/ai/analyze"},
	} {
		resp := env.do(t, tc.method, tc.path, "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, tc.path)
	}
}

func TestBrowsePages(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	gallery := decode[GalleryPage](t, env.do(t, "GET", "/gallery?category=Kids+Friendly", ""))
	assert.Equal(t, 1, gallery.Count)
	require.Len(t, gallery.Items, 1)
	assert.Equal(t, 11, gallery.Items[0].ID)
	assert.Equal(t, "Kids Friendly", gallery.Criteria.Category)
	assert.Equal(t, "newest", gallery.Criteria.Sort)

	gallery = decode[GalleryPage](t, env.do(t, "GET", "/gallery?category=bogus&q=STATION", ""))
	assert.Equal(t, "all", gallery.Criteria.Category)
	assert.Equal(t, 7, gallery.Count)

	projects := decode[ProjectsPage](t, env.do(t, "GET", "/projects?category=active", ""))
	for _, p := range projects.Items {
		assert.Equal(t, catalog.ProjectActive, p.Status)
		assert.NotZero(t, p.Insights.YouthEngagement.EngagementRate)
	}

	network := decode[NetworkPage](t, env.do(t, "GET", "/artist-network?q=Sydney", ""))
	require.Equal(t, 1, network.Count)
	assert.Equal(t, "Sarah Chen", network.Items[0].Name)
	assert.Equal(t, 43, network.Summary.MutualConnections)

	resp := env.do(t, "GET", "/artist-network?tab=blocked", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	impact := decode[ImpactPage](t, env.do(t, "GET", "/my-impact", ""))
	assert.Equal(t, "all", impact.Timeframe)
	assert.Equal(t, "High Impact", impact.Level.Level)

	social := decode[SocialImpactPage](t, env.do(t, "GET", "/social-impact", ""))
	assert.Equal(t, "25-34", social.Profile.AgeGroup)
	assert.Equal(t, 62, social.Impact.PersonalImpactScore)
	assert.Equal(t, "81%", social.EngagementRate)

	settings := decode[SettingsPage](t, env.do(t, "GET", "/settings", ""))
	assert.Equal(t, "en-AU", settings.Display.Language)
	assert.False(t, settings.Privacy.ShowEmail)

	for name := range env.server.pages() {
		resp := env.do(t, "GET", "/"+name, "")
		assert.Equal(t, http.StatusOK, resp.StatusCode, name)
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"), name)
	}
}

func TestDrafts(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	got := decode[DraftResponse](t, env.do(t, "GET", "/api/drafts", ""))
	assert.False(t, got.Saved)
	assert.Equal(t, "maria", got.Draft.ArtistName)

	resp := env.do(t, "PUT", "/api/drafts", `{"title":"Harbour Lights","projectId":"1","ageGroup":"15-24","currentlyStudying":true}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	saved := decode[DraftResponse](t, resp)
	assert.False(t, saved.Draft.SavedAt.IsZero())

	got = decode[DraftResponse](t, env.do(t, "GET", "/api/drafts", ""))
	assert.True(t, got.Saved)
	assert.Equal(t, "Harbour Lights", got.Draft.Title)

	submit := decode[SubmitPage](t, env.do(t, "GET", "/submit-artwork", ""))
	assert.True(t, submit.HasDraft)
	assert.Len(t, submit.Workforce, len(catalog.Projects()))

	// The saved answers personalise the social impact view.
	social := decode[SocialImpactPage](t, env.do(t, "GET", "/social-impact", ""))
	assert.Equal(t, "15-24", social.Profile.AgeGroup)
	assert.True(t, social.Profile.CurrentlyStudying)

	resp = env.do(t, "PUT", "/api/drafts", `{"title":`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestIntentsAreBroadcastAndLogged(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(env.ts.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	defer conn.Close()
	require.Eventually(t, func() bool {
		return testutil.ToFloat64(env.server.metrics.clients) == 1
	}, time.Second, 5*time.Millisecond)

	resp := env.do(t, "POST", "/api/artworks/4/like", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	in := decode[Intent](t, resp)
	assert.Equal(t, ActionLike, in.Action)
	assert.Equal(t, "maria", in.Username)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg struct {
		Type string `json:"type"`
		Data Intent `json:"data"`
	}
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "intent", msg.Type)
	assert.Equal(t, 4, msg.Data.TargetID)

	artwork, _ := catalog.ArtworkByID(4)
	likes := artwork.Likes

	assert.Equal(t, http.StatusOK, env.do(t, "POST", "/api/artists/7/follow", "").StatusCode)
	assert.Equal(t, http.StatusOK, env.do(t, "DELETE", "/api/artists/7/follow", "").StatusCode)
	assert.Equal(t, http.StatusOK, env.do(t, "DELETE", "/api/favorites/1", "").StatusCode)
	assert.Equal(t, http.StatusOK, env.do(t, "POST", "/api/notifications/1/read", "").StatusCode)
	assert.Equal(t, http.StatusNotFound, env.do(t, "POST", "/api/artworks/999/like", "").StatusCode)
	assert.Equal(t, http.StatusBadRequest, env.do(t, "POST", "/api/artworks/abc/like", "").StatusCode)

	acts := decode[[]store.Activity](t, env.do(t, "GET", "/api/activity", ""))
	require.Len(t, acts, 5)
	assert.Equal(t, ActionMarkRead, acts[0].Action)
	assert.Equal(t, ActionLike, acts[4].Action)

	artwork, _ = catalog.ArtworkByID(4)
	assert.Equal(t, likes, artwork.Likes, "intents never change the catalog")
	assert.Equal(t, 1.0, testutil.ToFloat64(env.server.metrics.intents.WithLabelValues(ActionFollow)))
}

func TestAssistEndpoints(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	resp := env.do(t, "POST", "/api/ai/analyze", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	result := decode[catalog.AnalysisResult](t, resp)
	assert.NotEmpty(t, result.PrimaryStyle)

	match := decode[MatchResponse](t, env.do(t, "POST", "/api/ai/match", `{"interests":["youth"]}`))
	require.Len(t, match.Matches, 2)
	assert.Equal(t, 1, match.Matches[0].ID)

	match = decode[MatchResponse](t, env.do(t, "POST", "/api/ai/match", ""))
	assert.Len(t, match.Matches, 4)
	assert.Empty(t, match.Interests)
}

func TestMetricsEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	resp := env.do(t, "GET", "/metrics", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `artaura_logins_total{method="password",result="success"} 1`)
	assert.Contains(t, string(body), `route="/api/login"`)
}
