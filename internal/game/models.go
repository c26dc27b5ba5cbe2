package game

import (
	"time"
)

// Character holds the identity and combat stats of any combatant. Roster
// entries are Characters too; combatants are cloned from them.
type Character struct {
	Name         string `json:"name"`
	HealthPoints int    `json:"health_points"`
	AttackPower  int    `json:"attack_power"`
	// BaseAttack is fixed at creation. Only AttackPower may grow.
	BaseAttack int    `json:"base_attack"`
	IsPlayer   bool   `json:"is_player"`
	Image      string `json:"image"`
}

// NewCharacter builds a Character whose BaseAttack equals the initial
// attack power.
func NewCharacter(name string, healthPoints, attackPower int, isPlayer bool, image string) Character {
	return Character{
		Name:         name,
		HealthPoints: healthPoints,
		AttackPower:  attackPower,
		BaseAttack:   attackPower,
		IsPlayer:     isPlayer,
		Image:        image,
	}
}

// Defeated reports whether the character has no health left.
func (c *Character) Defeated() bool {
	return c.HealthPoints <= 0
}

// ApplyDamage returns the health left after taking dmg, never below zero.
func ApplyDamage(health, dmg int) int {
	if dmg < 0 {
		dmg = 0
	}
	if health-dmg < 0 {
		return 0
	}
	return health - dmg
}

// Phase is the selection/combat state of a session.
type Phase string

const (
	PhaseNoSelection    Phase = "no_selection"
	PhasePlayerSelected Phase = "player_selected"
	PhaseInCombat       Phase = "in_combat"
)

// Outcome is the result of a resolved round.
type Outcome string

const (
	OutcomeContinue      Outcome = "continue"
	OutcomeEnemyDefeated Outcome = "enemy_defeated"
	OutcomeGameWon       Outcome = "game_won"
	OutcomeGameLost      Outcome = "game_lost"
)

// RoundResult describes one exchange of attacks for the shell to render.
type RoundResult struct {
	Round        int     `json:"round"`
	Attacker     string  `json:"attacker"`
	Defender     string  `json:"defender"`
	PlayerDamage int     `json:"player_damage"`
	EnemyDamage  int     `json:"enemy_damage"`
	Retaliated   bool    `json:"retaliated"`
	Outcome      Outcome `json:"outcome"`
	Message      string  `json:"message"`
	// Log holds one line per attack, in order.
	Log []string `json:"log"`
	// Terminal signals. The shell should show these as blocking
	// notifications; the session has already been reset when they are set.
	GameWon  bool `json:"game_won"`
	GameLost bool `json:"game_lost"`
}

// Session is the whole state of one game. It is persisted as a single row;
// nested values are stored as JSON columns.
type Session struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"index"`

	// Templates are the fixed roster definitions the session was created
	// with. They are never mutated; Reset clones them back into Roster.
	Templates []Character `json:"-" gorm:"serializer:json"`
	Roster    []Character `json:"roster" gorm:"serializer:json"`

	Player *Combatant `json:"player" gorm:"serializer:json"`
	Enemy  *Combatant `json:"enemy" gorm:"serializer:json"`
	// Enemies lists the names still available as opponents.
	Enemies  []string `json:"enemies" gorm:"serializer:json"`
	Defeated []string `json:"defeated" gorm:"serializer:json"`

	InCombat  bool         `json:"in_combat"`
	Phase     Phase        `json:"phase" gorm:"size:32"`
	Round     int          `json:"round"`
	Message   string       `json:"message"`
	LastRound *RoundResult `json:"last_round" gorm:"serializer:json"`
}

// Keep session rows in a table named after what they hold.
func (Session) TableName() string { return "duel_sessions" }
