package toolpath

import (
	"errors"

	"github.com/itohio/EasyCNC/pkg/core/math/vec"
	"github.com/itohio/EasyCNC/pkg/motion"
)

var (
	// ErrInvalidMove indicates an empty path or a move with a negative speed
	// override.
	ErrInvalidMove = errors.New("toolpath: invalid move")
)

// Move is one commanded motion of the tool head. Cut moves run at the
// configured cutting speed, travel (repositioning) moves at the travel
// speed; Speed overrides either when positive.
type Move struct {
	X     float32 `yaml:"x"`
	Y     float32 `yaml:"y"`
	Cut   bool    `yaml:"cut,omitempty"`
	Speed float32 `yaml:"speed,omitempty"`
}

// Path is an ordered toolpath as stored in a job file.
type Path struct {
	Moves []Move `yaml:"moves"`
}

// Travel appends a repositioning move and returns the path for chaining.
func (p Path) Travel(x, y float32) Path {
	p.Moves = append(p.Moves, Move{X: x, Y: y})
	return p
}

// CutTo appends a cutting move and returns the path for chaining.
func (p Path) CutTo(x, y float32) Path {
	p.Moves = append(p.Moves, Move{X: x, Y: y, Cut: true})
	return p
}

func (p Path) validate() error {
	if len(p.Moves) == 0 {
		return ErrInvalidMove
	}
	for _, m := range p.Moves {
		if m.Speed < 0 {
			return ErrInvalidMove
		}
	}
	return nil
}

// Build lowers the path to planner waypoints, deriving each desired speed
// from the limits' cutting/travel defaults unless the move overrides it.
func (p Path) Build(l motion.Limits) ([]motion.Waypoint, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	waypoints := make([]motion.Waypoint, len(p.Moves))
	for i, m := range p.Moves {
		speed := m.Speed
		if speed == 0 {
			if m.Cut {
				speed = l.CuttingSpeed
			} else {
				speed = l.TravelSpeed
			}
		}
		waypoints[i] = motion.Waypoint{
			Position: vec.New(m.X, m.Y),
			Speed:    speed,
		}
	}
	return waypoints, nil
}
