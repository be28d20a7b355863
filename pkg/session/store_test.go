package session

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fithouse/console/pkg/config"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(config.SessionConfig{
		Dir:           t.TempDir(),
		UserFile:      "fit-house-user.json",
		LegacyTokFile: "fit-house-token",
	})
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return store
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)

	sess := Session{
		Token:   "tok-abc",
		User:    json.RawMessage(`{"id":"u1","email":"admin@fithouse.co"}`),
		Company: json.RawMessage(`{"id":"c1"}`),
	}
	if err := store.Save(sess); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Token != "tok-abc" {
		t.Fatalf("unexpected token %q", loaded.Token)
	}
	var user map[string]string
	if err := json.Unmarshal(loaded.User, &user); err != nil {
		t.Fatalf("user payload corrupted: %v", err)
	}
	if user["email"] != "admin@fithouse.co" {
		t.Fatalf("unexpected user %v", user)
	}
}

func TestSaveRequiresToken(t *testing.T) {
	store := newTestStore(t)
	if err := store.Save(Session{}); err == nil {
		t.Fatal("expected error for empty token")
	}
}

func TestLoadMissingReturnsErrNoSession(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.Load(); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}

// The structured record wins over the legacy flat token, and the flat token is
// only consulted when the structured record is absent or empty.
func TestTokenTwoTierLookup(t *testing.T) {
	store := newTestStore(t)

	if got := store.Token(); got != "" {
		t.Fatalf("expected empty token, got %q", got)
	}

	if err := os.WriteFile(store.legacyPath, []byte("legacy-tok\n"), 0o600); err != nil {
		t.Fatalf("write legacy token: %v", err)
	}
	if got := store.Token(); got != "legacy-tok" {
		t.Fatalf("expected legacy token, got %q", got)
	}

	if err := store.Save(Session{Token: "structured-tok"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if got := store.Token(); got != "structured-tok" {
		t.Fatalf("structured token must take priority, got %q", got)
	}
}

func TestClearRemovesBothFiles(t *testing.T) {
	store := newTestStore(t)
	if err := store.Save(Session{Token: "tok"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := os.WriteFile(store.legacyPath, []byte("legacy"), 0o600); err != nil {
		t.Fatalf("write legacy: %v", err)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if got := store.Token(); got != "" {
		t.Fatalf("expected no token after clear, got %q", got)
	}
	if _, err := os.Stat(filepath.Dir(store.userPath)); err != nil {
		t.Fatalf("session dir should survive clear: %v", err)
	}
}

func TestExpired(t *testing.T) {
	now := time.Now()

	cases := []struct {
		name  string
		token string
		want  bool
	}{
		{name: "opaque token never expires locally", token: "opaque-token", want: false},
		{name: "jwt expired", token: unsignedJWT(t, now.Add(-time.Hour)), want: true},
		{name: "jwt still valid", token: unsignedJWT(t, now.Add(time.Hour)), want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := newTestStore(t)
			if err := store.Save(Session{Token: tc.token}); err != nil {
				t.Fatalf("save: %v", err)
			}
			if got := store.Expired(now); got != tc.want {
				t.Fatalf("Expired() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestExpiredWithoutToken(t *testing.T) {
	store := newTestStore(t)
	if store.Expired(time.Now()) {
		t.Fatal("no token should never report expired")
	}
}

func unsignedJWT(t *testing.T, exp time.Time) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"none","typ":"JWT"}`))
	payload := base64.RawURLEncoding.EncodeToString([]byte(fmt.Sprintf(`{"exp":%d}`, exp.Unix())))
	return header + "." + payload + "."
}
