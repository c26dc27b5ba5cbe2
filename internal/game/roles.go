package game

// Role selects how a combatant attacks. It is fixed when the combatant is
// created and stored alongside its stats.
type Role string

const (
	RolePlayer Role = "player"
	RoleEnemy  Role = "enemy"
)

// CombatRole is the attack capability of a combatant.
type CombatRole interface {
	// Attack damages target on behalf of self and returns the damage dealt.
	Attack(self, target *Character) int
}

// playerRole hits for the current attack power and then grows it by the
// base attack, so every landed hit is stronger than the last.
type playerRole struct{}

func (playerRole) Attack(self, target *Character) int {
	dmg := self.AttackPower
	target.HealthPoints = ApplyDamage(target.HealthPoints, dmg)
	self.AttackPower += self.BaseAttack
	return dmg
}

// enemyRole always hits for the base attack.
type enemyRole struct{}

func (enemyRole) Attack(self, target *Character) int {
	dmg := self.BaseAttack
	target.HealthPoints = ApplyDamage(target.HealthPoints, dmg)
	return dmg
}

// CombatRoleFor returns the capability for r. Unknown roles fall back to
// the enemy behaviour (constant damage).
func CombatRoleFor(r Role) CombatRole {
	if r == RolePlayer {
		return playerRole{}
	}
	return enemyRole{}
}

// Combatant is a Character in play together with its role.
type Combatant struct {
	Character
	Role Role `json:"role"`
}

// NewPlayer clones a roster entry into a fresh player combatant. Attack
// power restarts from the entry's base attack.
func NewPlayer(entry Character) *Combatant {
	c := NewCharacter(entry.Name, entry.HealthPoints, entry.BaseAttack, true, entry.Image)
	return &Combatant{Character: c, Role: RolePlayer}
}

// NewEnemy clones a roster entry into an enemy combatant.
func NewEnemy(entry Character) *Combatant {
	c := NewCharacter(entry.Name, entry.HealthPoints, entry.BaseAttack, false, entry.Image)
	return &Combatant{Character: c, Role: RoleEnemy}
}

// Attack strikes target using the combatant's role and returns the damage.
func (c *Combatant) Attack(target *Combatant) int {
	return CombatRoleFor(c.Role).Attack(&c.Character, &target.Character)
}
