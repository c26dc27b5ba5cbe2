package game

import "github.com/ericogr/saber-duel/internal/keys"

// NewSession creates a session in the no-selection phase. templates are
// copied, so later changes by the caller do not leak into the session.
func NewSession(id string, templates []Character) *Session {
	s := &Session{ID: id, Templates: cloneRoster(templates)}
	s.Reset()
	return s
}

// Reset rebuilds the roster from the fixed definitions and clears every
// selection and combat field. Only the session identity survives.
func (s *Session) Reset() {
	s.Roster = cloneRoster(s.Templates)
	s.Player = nil
	s.Enemy = nil
	s.Enemies = nil
	s.Defeated = nil
	s.InCombat = false
	s.Phase = PhaseNoSelection
	s.Round = 0
	s.Message = ""
	s.LastRound = nil
}

// SelectPlayer makes the named roster entry the player character and moves
// every other entry into the enemy pool. It returns false without error if
// a player is already selected.
func (s *Session) SelectPlayer(name string) (bool, error) {
	if s.Player != nil {
		return false, nil
	}
	entry, ok := s.rosterEntry(name)
	if !ok {
		return false, ErrUnknownCharacter
	}
	s.Player = NewPlayer(entry)
	s.Enemies = make([]string, 0, len(s.Roster)-1)
	for _, c := range s.Roster {
		if c.Name != entry.Name {
			s.Enemies = append(s.Enemies, c.Name)
		}
	}
	s.Phase = PhasePlayerSelected
	s.Message = ""
	return true, nil
}

// SelectEnemy picks the named opponent from the enemy pool and starts
// combat. It returns false without error if an enemy is already active.
func (s *Session) SelectEnemy(name string) (bool, error) {
	if s.Enemy != nil {
		return false, nil
	}
	entry, ok := s.rosterEntry(name)
	if !ok {
		return false, ErrUnknownCharacter
	}
	idx := -1
	for i, n := range s.Enemies {
		if n == entry.Name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, ErrCharacterUnavailable
	}
	s.Enemies = append(s.Enemies[:idx:idx], s.Enemies[idx+1:]...)
	s.Enemy = NewEnemy(entry)
	s.InCombat = true
	s.Phase = PhaseInCombat
	s.Message = ""
	return true, nil
}

// ClearEnemy drops the current opponent after it was defeated and returns
// the session to opponent selection.
func (s *Session) ClearEnemy() {
	if s.Enemy != nil {
		s.Defeated = append(s.Defeated, s.Enemy.Name)
	}
	s.Enemy = nil
	s.InCombat = false
	s.Phase = PhasePlayerSelected
}

// RemainingEnemies is the number of opponents left to select.
func (s *Session) RemainingEnemies() int {
	return len(s.Enemies)
}

// Selectable lists roster entries that can be picked as the player
// character. It is empty once a player is chosen.
func (s *Session) Selectable() []Character {
	if s.Player != nil {
		return nil
	}
	return cloneRoster(s.Roster)
}

// AvailableEnemies lists the roster entries still in the enemy pool, in
// roster order.
func (s *Session) AvailableEnemies() []Character {
	out := make([]Character, 0, len(s.Enemies))
	for _, c := range s.Roster {
		for _, n := range s.Enemies {
			if c.Name == n {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

func (s *Session) rosterEntry(name string) (Character, bool) {
	for _, c := range s.Roster {
		if keys.SameName(c.Name, name) {
			return c, true
		}
	}
	return Character{}, false
}

func cloneRoster(in []Character) []Character {
	if in == nil {
		return nil
	}
	out := make([]Character, len(in))
	copy(out, in)
	return out
}
