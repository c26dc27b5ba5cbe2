package engine

import "github.com/ericogr/saber-duel/internal/game"

// exchange runs the attacks of one round. The player always strikes first;
// the enemy only strikes back if it survived.
func (rc *roundContext) exchange() {
	p := rc.s.Player
	e := rc.s.Enemy
	rc.s.Round++
	rc.result.Round = rc.s.Round
	rc.result.Attacker = p.Name
	rc.result.Defender = e.Name

	rc.result.PlayerDamage = p.Attack(e)
	rc.add("%s attacks %s for %d damage (%s: %d HP left)", p.Name, e.Name, rc.result.PlayerDamage, e.Name, e.HealthPoints)
	if e.Defeated() {
		rc.add("%s falls before striking back", e.Name)
		return
	}
	rc.result.EnemyDamage = e.Attack(p)
	rc.result.Retaliated = true
	rc.add("%s attacks %s for %d damage (%s: %d HP left)", e.Name, p.Name, rc.result.EnemyDamage, p.Name, p.HealthPoints)
}

// finalizeRound evaluates victory and defeat and moves the session to its
// next phase. Total victory and defeat reset the session.
func (rc *roundContext) finalizeRound() {
	res := rc.result
	switch {
	case rc.s.Enemy.Defeated():
		rc.s.ClearEnemy()
		if rc.s.RemainingEnemies() == 0 {
			res.Outcome = game.OutcomeGameWon
			res.GameWon = true
			res.Message = game.MsgGameWon
			rc.s.Reset()
			return
		}
		res.Outcome = game.OutcomeEnemyDefeated
		res.Message = game.EnemyDefeatedMessage(res.Defender)
	case rc.s.Player.Defeated():
		res.Outcome = game.OutcomeGameLost
		res.GameLost = true
		res.Message = game.MsgGameLost
		rc.s.Reset()
		return
	default:
		res.Outcome = game.OutcomeContinue
		res.Message = game.ExchangeMessage(res.Defender, res.PlayerDamage, res.EnemyDamage)
	}
	rc.s.Message = res.Message
	rc.s.LastRound = res
}

// ResolveRound executes one exchange of attacks between the session's
// player and enemy and applies the outcome. Without an enemy in combat it
// returns game.ErrNoTarget and leaves the session untouched.
func ResolveRound(s *game.Session) (*game.RoundResult, error) {
	if !inCombat(s) {
		return nil, game.ErrNoTarget
	}
	rc := newRoundContext(s)
	rc.exchange()
	rc.finalizeRound()
	return rc.result, nil
}
