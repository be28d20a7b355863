package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/fithouse/console/pkg/config"
)

// ErrNoSession is returned when neither the structured session record nor the
// legacy token exists.
var ErrNoSession = errors.New("no stored session")

// Session is the record persisted after a successful login: the bearer token
// plus the raw user and company payloads the backend returned.
type Session struct {
	Token   string          `json:"token"`
	User    json.RawMessage `json:"user,omitempty"`
	Company json.RawMessage `json:"company,omitempty"`
}

// Store persists the session on disk. The structured file is authoritative;
// the legacy flat token file is read as a fallback so sessions issued before
// the structured record keep working.
type Store struct {
	userPath   string
	legacyPath string
}

func NewStore(cfg config.SessionConfig) (*Store, error) {
	dir := strings.TrimSpace(cfg.Dir)
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolving session directory: %w", err)
		}
		dir = filepath.Join(base, "fithouse")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("creating session directory: %w", err)
	}
	return &Store{
		userPath:   filepath.Join(dir, cfg.UserFile),
		legacyPath: filepath.Join(dir, cfg.LegacyTokFile),
	}, nil
}

// Save writes the structured session record. Called once per login response.
func (s *Store) Save(sess Session) error {
	if strings.TrimSpace(sess.Token) == "" {
		return fmt.Errorf("session token is required")
	}
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	if err := os.WriteFile(s.userPath, data, 0o600); err != nil {
		return fmt.Errorf("writing session: %w", err)
	}
	return nil
}

// Load returns the structured session record, or ErrNoSession.
func (s *Store) Load() (*Session, error) {
	data, err := os.ReadFile(s.userPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("reading session: %w", err)
	}
	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("decoding session: %w", err)
	}
	return &sess, nil
}

// Token resolves the bearer token: first the structured session record, then
// the legacy flat token file. Empty string when neither yields one.
func (s *Store) Token() string {
	if sess, err := s.Load(); err == nil {
		if tok := strings.TrimSpace(sess.Token); tok != "" {
			return tok
		}
	}
	data, err := os.ReadFile(s.legacyPath)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// Clear removes both session files. Called on logout.
func (s *Store) Clear() error {
	var errs []string
	for _, path := range []string{s.userPath, s.legacyPath} {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			errs = append(errs, err.Error())
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("clearing session: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Expired reports whether the stored token is a JWT whose exp claim has
// passed. Tokens that do not parse as JWTs are treated as non-expiring; the
// backend remains the source of truth either way.
func (s *Store) Expired(now time.Time) bool {
	tok := s.Token()
	if tok == "" {
		return false
	}
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(tok, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
