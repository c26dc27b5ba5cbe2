package api

import (
	"github.com/ericogr/saber-duel/internal/constants"
	"github.com/ericogr/saber-duel/internal/game"
	"github.com/ericogr/saber-duel/internal/keys"
)

// CharacterView is a roster entry as the shell renders it.
type CharacterView struct {
	Key          string `json:"key"`
	Name         string `json:"name"`
	HealthPoints int    `json:"health_points"`
	AttackPower  int    `json:"attack_power"`
	PortraitURL  string `json:"portrait_url"`
}

// CombatantView carries the live stats of the player or the defender.
type CombatantView struct {
	CharacterView
	BaseAttack int       `json:"base_attack"`
	Role       game.Role `json:"role"`
}

// SessionView is everything the shell needs to draw a session.
type SessionView struct {
	ID         string            `json:"id"`
	Phase      game.Phase        `json:"phase"`
	InCombat   bool              `json:"in_combat"`
	Round      int               `json:"round"`
	Message    string            `json:"message"`
	Characters []CharacterView   `json:"characters"`
	Player     *CombatantView    `json:"player"`
	Defender   *CombatantView    `json:"defender"`
	Enemies    []CharacterView   `json:"enemies"`
	Defeated   []string          `json:"defeated"`
	LastRound  *game.RoundResult `json:"last_round"`
}

func portraitURL(name string) string {
	return constants.RouteAPIPrefix + constants.RouteAssetsPortraits + "/" + keys.CharacterKey(name) + ".png"
}

func newCharacterView(c game.Character) CharacterView {
	return CharacterView{
		Key:          keys.CharacterKey(c.Name),
		Name:         c.Name,
		HealthPoints: c.HealthPoints,
		AttackPower:  c.BaseAttack,
		PortraitURL:  portraitURL(c.Name),
	}
}

func newCharacterViews(in []game.Character) []CharacterView {
	out := make([]CharacterView, 0, len(in))
	for _, c := range in {
		out = append(out, newCharacterView(c))
	}
	return out
}

func newCombatantView(c *game.Combatant) *CombatantView {
	if c == nil {
		return nil
	}
	v := newCharacterView(c.Character)
	v.AttackPower = c.AttackPower
	return &CombatantView{CharacterView: v, BaseAttack: c.BaseAttack, Role: c.Role}
}

// NewSessionView builds the render model for s.
func NewSessionView(s *game.Session) SessionView {
	defeated := s.Defeated
	if defeated == nil {
		defeated = []string{}
	}
	return SessionView{
		ID:         s.ID,
		Phase:      s.Phase,
		InCombat:   s.InCombat,
		Round:      s.Round,
		Message:    s.Message,
		Characters: newCharacterViews(s.Selectable()),
		Player:     newCombatantView(s.Player),
		Defender:   newCombatantView(s.Enemy),
		Enemies:    newCharacterViews(s.AvailableEnemies()),
		Defeated:   defeated,
		LastRound:  s.LastRound,
	}
}
