// Package terminal owns the tcell screen: initialization, colour mode,
// the input event pump and restoration on exit or crash.
package terminal
