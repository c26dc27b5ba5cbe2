package game

import "errors"

var (
	// ErrNoTarget is returned when an attack is requested without both a
	// player and an enemy in combat. Nothing is mutated.
	ErrNoTarget = errors.New("select an enemy")
	// ErrUnknownCharacter is returned when a name is not in the roster.
	ErrUnknownCharacter = errors.New("unknown character")
	// ErrCharacterUnavailable is returned when a roster entry exists but
	// cannot be chosen as an opponent right now.
	ErrCharacterUnavailable = errors.New("character is not available as an opponent")
)
