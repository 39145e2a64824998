// Package levels provides authored level geometry by ordinal.
package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

var (
	ErrUnknownLevel = errors.New("levels: unknown level")
	ErrEmptyLevel   = errors.New("levels: level has no ground")
	ErrBadLevel     = errors.New("levels: level geometry out of range")
)

// MaxCoord bounds every authored coordinate and extent. Tiling a rectangle
// past it would not terminate in float64 or would not fit in memory.
const MaxCoord = 1e6

// FallbackOrdinal is the level whose data stands in for any ordinal that
// has none.
const FallbackOrdinal = 1

type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type PipeDef struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Orientation string  `json:"orientation"`
}

// EntersUpward reports whether the pipe is authored as "up". Anything else
// is a downward pipe.
func (p PipeDef) EntersUpward() bool {
	return strings.EqualFold(p.Orientation, "up")
}

// Level is the on-disk level format. Ground rectangles are expanded into
// tile-sized blocks by the level builder.
type Level struct {
	Ground     []Rect    `json:"ground"`
	DeathZones []Rect    `json:"deathZones,omitempty"`
	Pipes      []PipeDef `json:"pipes,omitempty"`
	Flag       *Point    `json:"flag,omitempty"`
	Coins      []Point   `json:"coins,omitempty"`
	Start      *Point    `json:"start,omitempty"`
	Underwater bool      `json:"underwater"`
}

func FileName(ordinal int) string {
	return fmt.Sprintf("level%d.json", ordinal)
}

func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if len(lvl.Ground) == 0 {
		return nil, ErrEmptyLevel
	}
	for i, r := range lvl.Ground {
		if r.W <= 0 || r.H <= 0 {
			return nil, fmt.Errorf("ground %d has size %vx%v: %w", i, r.W, r.H, ErrEmptyLevel)
		}
		if !r.inRange() {
			return nil, fmt.Errorf("ground %d: %w", i, ErrBadLevel)
		}
	}
	for i, r := range lvl.DeathZones {
		if !r.inRange() {
			return nil, fmt.Errorf("death zone %d: %w", i, ErrBadLevel)
		}
	}
	return &lvl, nil
}

func (r Rect) inRange() bool {
	return inRange(r.X) && inRange(r.Y) && inRange(r.W) && inRange(r.H)
}

func inRange(v float64) bool {
	return !math.IsNaN(v) && math.Abs(v) <= MaxCoord
}

// Provider loads levels from an optional directory on disk first and the
// embedded set second.
type Provider struct {
	Dir string
	FS  fs.FS
}

// NewProvider reads overrides from dir, which may be empty.
func NewProvider(dir string) *Provider {
	return &Provider{Dir: dir, FS: LevelsFS}
}

func (p *Provider) read(name string) ([]byte, error) {
	if p.Dir != "" {
		data, err := os.ReadFile(filepath.Join(p.Dir, name))
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	if p.FS == nil {
		return nil, fs.ErrNotExist
	}
	return fs.ReadFile(p.FS, name)
}

func (p *Provider) Load(ordinal int) (*Level, error) {
	name := FileName(ordinal)
	data, err := p.read(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %d", ErrUnknownLevel, ordinal)
		}
		return nil, fmt.Errorf("read level %s: %w", name, err)
	}
	lvl, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", name, err)
	}
	return lvl, nil
}

// LoadOrFallback never fails. Missing or malformed data is logged and
// replaced by the fallback level's data, or by Builtin if that is broken too.
// The second result reports whether a substitute was used.
func (p *Provider) LoadOrFallback(ordinal int) (*Level, bool) {
	lvl, err := p.Load(ordinal)
	if err == nil {
		return lvl, false
	}
	if !errors.Is(err, ErrUnknownLevel) {
		log.Printf("levels: %v", err)
	}

	if ordinal != FallbackOrdinal {
		fb, ferr := p.Load(FallbackOrdinal)
		if ferr == nil {
			return fb, true
		}
		log.Printf("levels: fallback: %v", ferr)
	}
	return Builtin(), true
}

// Builtin is a flat strip with a flag at the far end. It needs no files.
func Builtin() *Level {
	return &Level{
		Ground: []Rect{{X: 0, Y: 0, W: 1600, H: 50}},
		Flag:   &Point{X: 1500, Y: 50},
		Start:  &Point{X: 128, Y: 256},
	}
}
