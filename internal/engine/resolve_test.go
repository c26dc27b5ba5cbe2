package engine

import (
	"errors"
	"reflect"
	"testing"

	"github.com/ericogr/saber-duel/internal/game"
)

func duelSession(t *testing.T, roster []game.Character, player, enemy string) *game.Session {
	t.Helper()
	s := game.NewSession("test", roster)
	if _, err := s.SelectPlayer(player); err != nil {
		t.Fatalf("select player: %v", err)
	}
	if enemy != "" {
		if _, err := s.SelectEnemy(enemy); err != nil {
			t.Fatalf("select enemy: %v", err)
		}
	}
	return s
}

func TestResolveRound_BasicExchange(t *testing.T) {
	roster := []game.Character{
		game.NewCharacter("Hero", 200, 20, false, ""),
		game.NewCharacter("Brute", 120, 50, false, ""),
		game.NewCharacter("Other", 50, 5, false, ""),
	}
	s := duelSession(t, roster, "Hero", "Brute")

	res, err := ResolveRound(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Enemy.HealthPoints != 100 {
		t.Fatalf("expected enemy at 100 HP, got %d", s.Enemy.HealthPoints)
	}
	if s.Player.HealthPoints != 150 {
		t.Fatalf("expected player at 150 HP, got %d", s.Player.HealthPoints)
	}
	if s.Player.AttackPower != 40 {
		t.Fatalf("expected player attack power 40, got %d", s.Player.AttackPower)
	}
	if res.PlayerDamage != 20 || res.EnemyDamage != 50 || !res.Retaliated {
		t.Fatalf("unexpected result %+v", res)
	}
	if res.Outcome != game.OutcomeContinue || res.GameWon || res.GameLost {
		t.Fatalf("expected combat to continue, got %+v", res)
	}
	want := "You attack Brute for 20 damage. Brute attacks you back for 50 damage."
	if res.Message != want || s.Message != want {
		t.Fatalf("unexpected message %q", res.Message)
	}
	if !s.InCombat || s.Phase != game.PhaseInCombat || s.Round != 1 {
		t.Fatalf("expected to remain in combat after round 1, got %+v", s)
	}
}

func TestResolveRound_NoTarget(t *testing.T) {
	s := duelSession(t, game.DefaultRoster(), "Yoda", "")
	before := *s
	res, err := ResolveRound(s)
	if !errors.Is(err, game.ErrNoTarget) || res != nil {
		t.Fatalf("expected ErrNoTarget, got res=%v err=%v", res, err)
	}
	if !reflect.DeepEqual(before, *s) {
		t.Fatalf("session must not change without a target")
	}

	empty := game.NewSession("empty", game.DefaultRoster())
	if _, err := ResolveRound(empty); !errors.Is(err, game.ErrNoTarget) {
		t.Fatalf("expected ErrNoTarget without player, got %v", err)
	}
}

func TestResolveRound_NoRetaliationWhenEnemyFalls(t *testing.T) {
	roster := []game.Character{
		game.NewCharacter("Hero", 100, 20, false, ""),
		game.NewCharacter("Weakling", 15, 80, false, ""),
		game.NewCharacter("Other", 50, 5, false, ""),
	}
	s := duelSession(t, roster, "Hero", "Weakling")

	res, err := ResolveRound(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Retaliated || res.EnemyDamage != 0 {
		t.Fatalf("defeated enemy must not strike back: %+v", res)
	}
	if s.Player.HealthPoints != 100 {
		t.Fatalf("player must not take damage, got %d", s.Player.HealthPoints)
	}
	if res.Outcome != game.OutcomeEnemyDefeated {
		t.Fatalf("expected enemy_defeated, got %s", res.Outcome)
	}
	if res.Message != "You defeated Weakling! Select new opponent." {
		t.Fatalf("unexpected message %q", res.Message)
	}
	if s.Enemy != nil || s.InCombat || s.Phase != game.PhasePlayerSelected {
		t.Fatalf("expected return to opponent selection, got %+v", s)
	}
	if !reflect.DeepEqual(s.Defeated, []string{"Weakling"}) {
		t.Fatalf("expected Weakling recorded as defeated, got %v", s.Defeated)
	}
}

func TestResolveRound_PlayerActsFirst(t *testing.T) {
	// Both would die from one hit; the player strikes first and wins.
	roster := []game.Character{
		game.NewCharacter("Hero", 10, 10, false, ""),
		game.NewCharacter("Mirror", 10, 10, false, ""),
		game.NewCharacter("Other", 50, 5, false, ""),
	}
	s := duelSession(t, roster, "Hero", "Mirror")
	res, err := ResolveRound(s)
	if err != nil {
		t.Fatal(err)
	}
	if res.Outcome != game.OutcomeEnemyDefeated {
		t.Fatalf("expected player to win the race, got %s", res.Outcome)
	}
	if s.Player.HealthPoints != 10 {
		t.Fatalf("player must be untouched, got %d", s.Player.HealthPoints)
	}
	if len(res.Log) != 2 || res.Log[0] != "Hero attacks Mirror for 10 damage (Mirror: 0 HP left)" {
		t.Fatalf("unexpected log %v", res.Log)
	}
}

func TestResolveRound_EscalationPersistsAcrossEnemies(t *testing.T) {
	roster := []game.Character{
		game.NewCharacter("Hero", 1000, 10, false, ""),
		game.NewCharacter("A", 10, 1, false, ""),
		game.NewCharacter("B", 1000, 1, false, ""),
	}
	s := duelSession(t, roster, "Hero", "A")
	if _, err := ResolveRound(s); err != nil {
		t.Fatal(err)
	}
	if _, err := s.SelectEnemy("B"); err != nil {
		t.Fatal(err)
	}
	res, err := ResolveRound(s)
	if err != nil {
		t.Fatal(err)
	}
	if res.PlayerDamage != 20 {
		t.Fatalf("expected escalated 20 damage against the second enemy, got %d", res.PlayerDamage)
	}
	if s.Player.HealthPoints != 999 {
		t.Fatalf("player health should carry over between fights, got %d", s.Player.HealthPoints)
	}
}

func TestResolveRound_PlayerDefeatResets(t *testing.T) {
	s := duelSession(t, game.DefaultRoster(), "Luke Skywalker", "Darth Vader")
	var res *game.RoundResult
	var err error
	for i := 0; i < 10; i++ {
		res, err = ResolveRound(s)
		if err != nil {
			t.Fatal(err)
		}
		if res.Outcome != game.OutcomeContinue {
			break
		}
	}
	// Luke deals 15,30 (45 total) while Vader hits 50 twice: Luke falls in round 2.
	if res.Outcome != game.OutcomeGameLost || !res.GameLost || res.Round != 2 {
		t.Fatalf("expected defeat in round 2, got %+v", res)
	}
	if res.Message != game.MsgGameLost {
		t.Fatalf("unexpected message %q", res.Message)
	}
	if s.Player != nil || s.Enemy != nil || s.Phase != game.PhaseNoSelection {
		t.Fatalf("expected full reset after defeat, got %+v", s)
	}
	if !reflect.DeepEqual(s.Roster, game.DefaultRoster()) {
		t.Fatalf("roster not restored after defeat")
	}
}

func TestResolveRound_LastEnemyWinsAndResets(t *testing.T) {
	s := duelSession(t, game.DefaultRoster(), "Yoda", "")
	won := false
	for _, name := range []string{"Obi-Wan Kenobi", "Luke Skywalker", "Darth Vader", "Darth Maul", "Rey"} {
		if _, err := s.SelectEnemy(name); err != nil {
			t.Fatalf("select %s: %v", name, err)
		}
		for {
			res, err := ResolveRound(s)
			if err != nil {
				t.Fatal(err)
			}
			if res.Outcome == game.OutcomeContinue {
				continue
			}
			if res.Outcome == game.OutcomeGameLost {
				t.Fatalf("Yoda lost against %s", name)
			}
			if res.Outcome == game.OutcomeGameWon {
				won = true
				if res.Message != game.MsgGameWon || res.Defender != "Rey" {
					t.Fatalf("unexpected final result %+v", res)
				}
			}
			break
		}
	}
	if !won {
		t.Fatalf("expected total victory")
	}
	if !reflect.DeepEqual(s.Roster, game.DefaultRoster()) || len(s.Roster) != 6 {
		t.Fatalf("expected the original six-entry roster after victory, got %+v", s.Roster)
	}
	if s.Player != nil || s.Enemy != nil || s.InCombat || s.Phase != game.PhaseNoSelection {
		t.Fatalf("expected full reset after victory, got %+v", s)
	}
}
