// Package game provides the terminal room preview loop.
package game

// State represents what the preview is currently showing.
type State int

const (
	// StateViewing shows a successfully loaded room.
	StateViewing State = iota
	// StateLoadFailed shows the error from the last load attempt.
	StateLoadFailed
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateViewing:
		return "viewing"
	case StateLoadFailed:
		return "load_failed"
	default:
		return "unknown"
	}
}
