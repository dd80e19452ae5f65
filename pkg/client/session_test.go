package client

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestSessionManager_Lifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	m := NewSessionManager(store)

	if s, err := m.Load(ctx); err != nil || s != nil {
		t.Fatalf("empty store: session=%v err=%v", s, err)
	}
	if m.IsAuthenticated() || !errors.Is(m.RequireAdmin(), ErrNotAuthenticated) {
		t.Fatal("expected signed-out state")
	}

	user := User{ID: "u1", Name: "Ama", Email: "ama@knust.edu.gh", Role: "standard"}
	if err := m.Set(ctx, user, "tok"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if !m.IsAuthenticated() || m.Token() != "tok" {
		t.Fatal("expected signed-in state")
	}
	if !errors.Is(m.RequireAdmin(), ErrAdminRequired) {
		t.Fatal("standard user must not pass the admin gate")
	}
	if v, _, _ := store.Get(ctx, KeyIsAdmin); v != "false" {
		t.Fatalf("is_admin = %q", v)
	}

	// A fresh manager over the same store restores the session.
	restored, err := NewSessionManager(store).Load(ctx)
	if err != nil || restored == nil || restored.User.Email != user.Email || restored.Token != "tok" {
		t.Fatalf("restore: session=%+v err=%v", restored, err)
	}

	if err := m.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if m.Current() != nil {
		t.Fatal("session survived Clear")
	}
	for _, key := range []string{KeyUser, KeyToken, KeyIsAdmin} {
		if _, ok, _ := store.Get(ctx, key); ok {
			t.Fatalf("%s left behind after Clear", key)
		}
	}
}

func TestSessionManager_AdminFlagFollowsUser(t *testing.T) {
	m := NewSessionManager(NewMemoryStore())
	if err := m.Set(context.Background(), User{ID: "a1", IsAdmin: true}, "tok"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := m.RequireAdmin(); err != nil {
		t.Fatalf("admin gate: %v", err)
	}
}

func TestSessionManager_LoadDropsPartialSession(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	_ = store.SetMany(ctx, map[string]string{KeyToken: "tok", KeyUser: "{not json"})

	s, err := NewSessionManager(store).Load(ctx)
	if err != nil || s != nil {
		t.Fatalf("expected signed out, got session=%v err=%v", s, err)
	}
	if _, ok, _ := store.Get(ctx, KeyToken); ok {
		t.Fatal("corrupt session should be removed")
	}
}

func TestSessionManager_CurrentIsACopy(t *testing.T) {
	m := NewSessionManager(NewMemoryStore())
	_ = m.Set(context.Background(), User{ID: "u1"}, "tok")

	s := m.Current()
	s.Token = "tampered"
	if m.Token() != "tok" {
		t.Fatal("Current must not expose internal state")
	}
}

func TestFileStore_PersistsWithOwnerOnlyPermissions(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "unilink", "session.json")

	m := NewSessionManager(NewFileStore(path))
	if err := m.Set(ctx, User{ID: "u1", Email: "ama@knust.edu.gh"}, "tok"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("permissions = %o, want 600", perm)
	}

	restored, err := NewSessionManager(NewFileStore(path)).Load(ctx)
	if err != nil || restored == nil || restored.User.ID != "u1" {
		t.Fatalf("restore: session=%+v err=%v", restored, err)
	}

	if err := m.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if s, _ := NewSessionManager(NewFileStore(path)).Load(ctx); s != nil {
		t.Fatalf("session survived Clear: %+v", s)
	}
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("garbage"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := NewFileStore(path).Get(context.Background(), KeyToken); err == nil {
		t.Fatal("expected a decode error")
	}
}
