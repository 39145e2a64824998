package component

type MoveDir int

const (
	MoveLeft  MoveDir = -1
	MoveStop  MoveDir = 0
	MoveRight MoveDir = 1
)

type SwimDir int

const (
	SwimDown SwimDir = -1
	SwimNone SwimDir = 0
	SwimUp   SwimDir = 1
)

// Intent is what the player wants to do this step. Input translation writes
// it; physics reads it. Jump and swim-up are one-shot requests consumed with
// the Take methods, so each press is acted on at most once.
type Intent struct {
	dir      MoveDir
	swimHold SwimDir

	jumpRequested   bool
	swimUpRequested bool
}

var IntentComponent = NewComponent[Intent]()

// SetDirection overwrites the horizontal intent; the last call in a step wins.
func (i *Intent) SetDirection(d MoveDir) {
	switch {
	case d < 0:
		i.dir = MoveLeft
	case d > 0:
		i.dir = MoveRight
	default:
		i.dir = MoveStop
	}
}

func (i *Intent) MoveLeft()  { i.dir = MoveLeft }
func (i *Intent) MoveRight() { i.dir = MoveRight }
func (i *Intent) Stop()      { i.dir = MoveStop }

// RequestJump is idempotent until the request is taken.
func (i *Intent) RequestJump() { i.jumpRequested = true }

// RequestSwimUp is idempotent until the request is taken.
func (i *Intent) RequestSwimUp() { i.swimUpRequested = true }

func (i *Intent) SetSwimHold(d SwimDir) {
	switch {
	case d < 0:
		i.swimHold = SwimDown
	case d > 0:
		i.swimHold = SwimUp
	default:
		i.swimHold = SwimNone
	}
}

func (i *Intent) Direction() MoveDir { return i.dir }
func (i *Intent) SwimHold() SwimDir  { return i.swimHold }

// TakeJump reports whether a jump was requested and clears the request.
func (i *Intent) TakeJump() bool {
	j := i.jumpRequested
	i.jumpRequested = false
	return j
}

// TakeSwimUp reports whether a swim-up was requested and clears the request.
func (i *Intent) TakeSwimUp() bool {
	s := i.swimUpRequested
	i.swimUpRequested = false
	return s
}
