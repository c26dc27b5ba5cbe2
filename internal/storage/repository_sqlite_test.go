package storage

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/ericogr/saber-duel/internal/game"
)

func newTestRepo(t *testing.T) Repository {
	t.Helper()
	db, err := OpenAndMigrate("file::memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return NewSQLiteRepository(db)
}

func TestSessionRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	s := game.NewSession("11111111-1111-4111-8111-111111111111", game.DefaultRoster())
	if err := repo.CreateSession(s); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.SelectPlayer("Yoda"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.SelectEnemy("Rey"); err != nil {
		t.Fatal(err)
	}
	s.Player.HealthPoints = 42
	s.Message = "hello"
	s.LastRound = &game.RoundResult{Round: 1, Outcome: game.OutcomeContinue, Log: []string{"a"}}
	if err := repo.UpdateSession(s); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := repo.GetSessionByID(s.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !reflect.DeepEqual(got.Templates, game.DefaultRoster()) {
		t.Fatalf("templates not persisted: %+v", got.Templates)
	}
	if got.Player == nil || got.Player.Name != "Yoda" || got.Player.HealthPoints != 42 || got.Player.Role != game.RolePlayer {
		t.Fatalf("player not persisted: %+v", got.Player)
	}
	if got.Enemy == nil || got.Enemy.Name != "Rey" || got.Enemy.Role != game.RoleEnemy {
		t.Fatalf("enemy not persisted: %+v", got.Enemy)
	}
	if !got.InCombat || got.Phase != game.PhaseInCombat || got.Message != "hello" {
		t.Fatalf("flags not persisted: %+v", got)
	}
	if got.LastRound == nil || got.LastRound.Log[0] != "a" {
		t.Fatalf("last round not persisted: %+v", got.LastRound)
	}
	if len(got.Enemies) != 4 {
		t.Fatalf("expected 4 enemies in pool, got %v", got.Enemies)
	}
}

func TestUpdateSession_PersistsReset(t *testing.T) {
	repo := newTestRepo(t)
	s := game.NewSession("22222222-2222-4222-8222-222222222222", game.DefaultRoster())
	_, _ = s.SelectPlayer("Yoda")
	_, _ = s.SelectEnemy("Rey")
	if err := repo.CreateSession(s); err != nil {
		t.Fatal(err)
	}
	s.Reset()
	if err := repo.UpdateSession(s); err != nil {
		t.Fatal(err)
	}
	got, err := repo.GetSessionByID(s.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Player != nil || got.Enemy != nil || got.InCombat || got.Phase != game.PhaseNoSelection {
		t.Fatalf("reset not persisted: %+v", got)
	}
}

func TestGetSessionByID_NotFound(t *testing.T) {
	repo := newTestRepo(t)
	if _, err := repo.GetSessionByID("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := repo.UpdateSession(&game.Session{ID: "missing"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on update, got %v", err)
	}
	if err := repo.DeleteSession("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on delete, got %v", err)
	}
}

func TestDeleteIdleSessions(t *testing.T) {
	repo := newTestRepo(t)
	old := game.NewSession("old", game.DefaultRoster())
	fresh := game.NewSession("fresh", game.DefaultRoster())
	if err := repo.CreateSession(old); err != nil {
		t.Fatal(err)
	}
	if err := repo.CreateSession(fresh); err != nil {
		t.Fatal(err)
	}
	n, err := repo.DeleteIdleSessions(time.Now().Add(time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Fatalf("expected both sessions swept, got %d", n)
	}
	n, err = repo.DeleteIdleSessions(time.Now().Add(-time.Hour))
	if err != nil || n != 0 {
		t.Fatalf("expected nothing to sweep, got n=%d err=%v", n, err)
	}
}
