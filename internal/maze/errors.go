package maze

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrMalformedMaze is matched by every MalformedMazeError.
var ErrMalformedMaze = errors.New("malformed maze")

// MalformedMazeError describes why a maze could not be built.
type MalformedMazeError struct {
	Reason string
	// At is the offending coordinate, if there is one.
	At *Coord
}

func (e *MalformedMazeError) Error() string {
	if e.At != nil {
		return fmt.Sprintf("malformed maze: %s at (%d,%d)", e.Reason, e.At.X, e.At.Y)
	}
	return "malformed maze: " + e.Reason
}

func (e *MalformedMazeError) Unwrap() error { return ErrMalformedMaze }

func malformed(reason string, at *Coord) error {
	return &MalformedMazeError{Reason: reason, At: at}
}
