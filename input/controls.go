// Package input turns terminal key events into per-frame control state.
package input

// Controls is the per-frame control snapshot consumed by the game loop
type Controls struct {
	Left  bool
	Right bool
	// Quit carries the close signal
	Quit bool
}
