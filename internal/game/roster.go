package game

// DefaultRoster returns the built-in character definitions used when no
// roster file is configured.
func DefaultRoster() []Character {
	return []Character{
		NewCharacter("Obi-Wan Kenobi", 120, 20, false, "obi-wan.png"),
		NewCharacter("Luke Skywalker", 100, 15, false, "luke.png"),
		NewCharacter("Yoda", 130, 55, false, "yoda.png"),
		NewCharacter("Darth Vader", 180, 50, false, "vader.png"),
		NewCharacter("Darth Maul", 150, 35, false, "maul.png"),
		NewCharacter("Rey", 110, 25, false, "rey.png"),
	}
}
