package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

// LevelTag marks the entity that owns the loaded Level.
type LevelTag struct{}

var LevelTagComponent = NewComponent[LevelTag]()
