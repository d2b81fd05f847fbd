// Package session holds the signed-in identity for one browser.
//
// A Shell is either LoggedOut or LoggedIn. Logging in always succeeds once the
// credentials pass the form checks; the identity and token are written to the
// browser's key-value namespace and read back by Restore on the next visit.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"
	"unicode/utf16"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"artaura/internal/store"
)

// Storage keys.
const (
	TokenKey = "authToken"
	UserKey  = "userData"
	DraftKey = "artworkDraft"
)

const (
	DefaultLoginDelay  = 1500 * time.Millisecond
	DefaultSocialDelay = 2 * time.Second
	minPasswordLength  = 6
)

type State int

const (
	LoggedOut State = iota
	LoggedIn
)

func (s State) String() string {
	if s == LoggedIn {
		return "logged_in"
	}
	return "logged_out"
}

// User is the identity shown across the app.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Name     string `json:"name,omitempty"`
	Division string `json:"division"`
	Role     string `json:"role"`
	Provider string `json:"provider,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

// DisplayName prefers the full name over the username.
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Username
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ValidationError lists the offending form fields and their messages.
type ValidationError struct {
	Fields map[string]string `json:"errors"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range []string{"username", "password"} {
		if msg, ok := e.Fields[f]; ok {
			parts = append(parts, f+": "+msg)
		}
	}
	return "invalid credentials: " + strings.Join(parts, "; ")
}

// Validate applies the login form rules.
func (c Credentials) Validate() error {
	fields := make(map[string]string)
	if strings.TrimSpace(c.Username) == "" {
		fields["username"] = "Username is required"
	}
	switch {
	case c.Password == "":
		fields["password"] = "Password is required"
	case passwordLength(c.Password) < minPasswordLength:
		fields["password"] = fmt.Sprintf("Password must be at least %d characters", minPasswordLength)
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// passwordLength counts UTF-16 code units, the length browsers report for
// the password field.
func passwordLength(p string) int {
	return len(utf16.Encode([]rune(p)))
}

// Options tune a Shell. Zero values select the defaults.
type Options struct {
	LoginDelay  time.Duration
	SocialDelay time.Duration
	// BcryptCost is the work factor for the stored token digest.
	BcryptCost int
	Now        func() time.Time
	Intn       func(n int) int
	Logger     *zap.Logger
}

func (o Options) withDefaults() Options {
	if o.LoginDelay == 0 {
		o.LoginDelay = DefaultLoginDelay
	}
	if o.SocialDelay == 0 {
		o.SocialDelay = DefaultSocialDelay
	}
	if o.BcryptCost == 0 {
		o.BcryptCost = bcrypt.DefaultCost
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Intn == nil {
		o.Intn = rand.Intn
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

// Shell is the session of one browser.
type Shell struct {
	kv   store.KV
	opts Options
	log  *zap.Logger

	mu    sync.RWMutex
	state State
	user  User
}

// New returns a logged out shell over kv. Call Restore to pick up a
// previous login.
func New(kv store.KV, opts Options) *Shell {
	opts = opts.withDefaults()
	return &Shell{kv: kv, opts: opts, log: opts.Logger}
}

// Restore reads the persisted identity. The shell is LoggedIn only when both
// the token and a decodable user record are present.
func (s *Shell) Restore(ctx context.Context) error {
	if _, err := s.kv.Get(ctx, TokenKey); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.set(LoggedOut, User{})
			return nil
		}
		return fmt.Errorf("failed to read token: %w", err)
	}
	raw, err := s.kv.Get(ctx, UserKey)
	if errors.Is(err, store.ErrNotFound) {
		s.set(LoggedOut, User{})
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read user: %w", err)
	}

	var u User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		s.log.Warn("discarding unreadable user record", zap.Error(err))
		s.set(LoggedOut, User{})
		return nil
	}
	s.set(LoggedIn, u)
	return nil
}

// Login validates c, waits the login delay and signs in. Validation errors
// are returned before any waiting. If ctx ends during the wait nothing is
// stored and ctx.Err() is returned.
func (s *Shell) Login(ctx context.Context, c Credentials) (User, string, error) {
	if err := c.Validate(); err != nil {
		return User{}, "", err
	}
	if err := s.wait(ctx, s.opts.LoginDelay); err != nil {
		return User{}, "", err
	}

	u := User{
		ID:       1,
		Username: c.Username,
		Email:    c.Username + "@mailinator.com",
		Division: "Infrastructure Projects",
		Role:     "Project Coordinator",
	}
	token := fmt.Sprintf("mock-jwt-token-%d", s.opts.Now().UnixMilli())
	if err := s.persist(ctx, u, token); err != nil {
		return User{}, "", err
	}
	s.log.Info("user logged in", zap.String("username", u.Username))
	return u, token, nil
}

// SocialLogin signs in through one of the supported providers.
func (s *Shell) SocialLogin(ctx context.Context, providerID string) (User, string, error) {
	p, ok := ProviderByID(providerID)
	if !ok {
		return User{}, "", fmt.Errorf("%w: %q", ErrUnknownProvider, providerID)
	}
	if err := s.wait(ctx, s.opts.SocialDelay); err != nil {
		return User{}, "", err
	}

	lower := strings.ToLower(p.Name)
	u := User{
		ID:       s.opts.Intn(1000),
		Username: lower + "_user",
		Email:    "user@" + lower + ".com",
		Name:     p.Name + " User",
		Division: "Infrastructure Projects",
		Role:     "Contributer",
		Provider: p.ID,
		Avatar:   fmt.Sprintf("https://ui-avatars.com/api/?name=%s+User&background=667eea&color=fff", p.Name),
	}
	token := fmt.Sprintf("%s-token-%d", p.ID, s.opts.Now().UnixMilli())
	if err := s.persist(ctx, u, token); err != nil {
		return User{}, "", err
	}
	s.log.Info("user logged in", zap.String("username", u.Username), zap.String("provider", p.ID))
	return u, token, nil
}

// Logout clears the persisted identity.
func (s *Shell) Logout(ctx context.Context) error {
	if err := s.kv.Delete(ctx, TokenKey, UserKey); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	s.set(LoggedOut, User{})
	return nil
}

// User returns the signed-in identity.
func (s *Shell) User() (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user, s.state == LoggedIn
}

func (s *Shell) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Shell) Authenticated() bool {
	return s.State() == LoggedIn
}

// Verify reports whether token is the one issued at the last login.
func (s *Shell) Verify(ctx context.Context, token string) bool {
	if token == "" {
		return false
	}
	digest, err := s.kv.Get(ctx, TokenKey)
	if err != nil {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(token)) == nil
}

func (s *Shell) persist(ctx context.Context, u User, token string) error {
	digest, err := bcrypt.GenerateFromPassword([]byte(token), s.opts.BcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash token: %w", err)
	}
	data, err := json.Marshal(u)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, UserKey, string(data)); err != nil {
		return fmt.Errorf("failed to store user: %w", err)
	}
	if err := s.kv.Set(ctx, TokenKey, string(digest)); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}
	s.set(LoggedIn, u)
	return nil
}

func (s *Shell) set(state State, u User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	s.user = u
}

func (s *Shell) wait(ctx context.Context, d time.Duration) error {
	if d < 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return ctx.Err()
	}
}
