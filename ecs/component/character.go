package component

// Character is the per-step motion state of the player.
type Character struct {
	// Grounded is true while resting on a surface. A character is either
	// grounded or airborne, never both.
	Grounded   bool
	FacingLeft bool
	Underwater bool
	Anim       AnimState
}

var CharacterComponent = NewComponent[Character]()
