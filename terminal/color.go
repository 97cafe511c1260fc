package terminal

import (
	"fmt"
	"os"
)

// ColorMode selects how many colours tcell may emit
type ColorMode uint8

const (
	// ColorAuto leaves detection to tcell's terminfo lookup
	ColorAuto ColorMode = iota
	ColorTrue
	Color256
	ColorMono
)

func (m ColorMode) String() string {
	switch m {
	case ColorTrue:
		return "truecolor"
	case Color256:
		return "256"
	case ColorMono:
		return "mono"
	default:
		return "auto"
	}
}

// ParseColorMode accepts auto, truecolor, 256 or mono; empty selects auto
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "", "auto":
		return ColorAuto, nil
	case "truecolor", "24bit":
		return ColorTrue, nil
	case "256":
		return Color256, nil
	case "mono", "none":
		return ColorMono, nil
	default:
		return ColorAuto, fmt.Errorf("unknown color mode %q", s)
	}
}

// Env returns the environment overrides tcell reads at screen init
func (m ColorMode) Env() map[string]string {
	switch m {
	case ColorTrue:
		return map[string]string{"COLORTERM": "truecolor"}
	case Color256:
		return map[string]string{"TCELL_TRUECOLOR": "disable"}
	case ColorMono:
		return map[string]string{"NO_COLOR": "1"}
	default:
		return nil
	}
}

// Apply exports the mode's overrides into the process environment
func (m ColorMode) Apply() error {
	for k, v := range m.Env() {
		if err := os.Setenv(k, v); err != nil {
			return fmt.Errorf("set %s: %w", k, err)
		}
	}
	return nil
}
