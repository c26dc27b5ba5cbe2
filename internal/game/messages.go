package game

import "fmt"

// Messages shown to the player. Shells render them verbatim.
const (
	MsgSelectEnemy = "Select an enemy!"
	MsgGameWon     = "You defeated all the enemies. You win!"
	MsgGameLost    = "You have been defeated! Try again."
)

// EnemyDefeatedMessage is shown when an opponent falls and others remain.
func EnemyDefeatedMessage(enemy string) string {
	return fmt.Sprintf("You defeated %s! Select new opponent.", enemy)
}

// ExchangeMessage reports both sides of a round where nobody fell.
func ExchangeMessage(enemy string, playerDmg, enemyDmg int) string {
	return fmt.Sprintf("You attack %s for %d damage. %s attacks you back for %d damage.", enemy, playerDmg, enemy, enemyDmg)
}
