package core

// GameState is the part of the loop state the platform cares about.
type GameState struct {
	Score  int  // Current score
	Locked bool // Board is full and no merge is possible
	Moves  int  // Moves that changed the board
}
