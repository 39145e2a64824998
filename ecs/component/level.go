package component

import "github.com/jakecoffman/cp"

// PipeOrientation decides which vertical input activates a pipe.
type PipeOrientation int

const (
	// PipeEntersDownward pipes are taken by pressing up.
	PipeEntersDownward PipeOrientation = iota
	// PipeEntersUpward pipes are taken by pressing down.
	PipeEntersUpward
)

func (o PipeOrientation) String() string {
	if o == PipeEntersUpward {
		return "up"
	}
	return "down"
}

type Block struct {
	Bounds cp.BB
}

type Pipe struct {
	Bounds      cp.BB
	Orientation PipeOrientation
}

// Activated reports whether in carries the vertical signal this pipe needs.
func (p Pipe) Activated(in Input) bool {
	switch p.Orientation {
	case PipeEntersDownward:
		return in.Up
	case PipeEntersUpward:
		return in.Down
	default:
		return false
	}
}

type Flag struct {
	Bounds cp.BB
}

type Coin struct {
	Bounds cp.BB
	Value  int
}

// Level is one loaded level. It is built whole and replaced whole; systems
// never edit its slices. Blocks are processed in slice order.
type Level struct {
	Ordinal    int
	Underwater bool
	// TileSize is the edge length shared by every block of this level.
	TileSize float64
	Start    cp.Vector

	Blocks     []Block
	Pipes      []Pipe
	Flag       *Flag
	Coins      []Coin
	DeathZones []cp.BB

	// Fallback is set when the authored data for Ordinal was missing or
	// malformed and the fallback layout was used instead.
	Fallback bool
}

var LevelComponent = NewComponent[Level]()
