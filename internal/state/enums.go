package state

import (
	"fmt"

	"github.com/pkg/errors"
)

// Layer selects one of the two z-ordered stroke collections of a surface.
type Layer int

const (
	Foreground Layer = iota
	Background
)

func (l Layer) String() string {
	switch l {
	case Foreground:
		return "foreground"
	case Background:
		return "background"
	}
	return fmt.Sprintf("Layer(%d)", int(l))
}

func (l Layer) MarshalText() ([]byte, error) {
	if l != Foreground && l != Background {
		return nil, errors.Errorf("invalid layer %d", int(l))
	}
	return []byte(l.String()), nil
}

func (l *Layer) UnmarshalText(text []byte) error {
	switch string(text) {
	case "foreground", "":
		*l = Foreground
	case "background":
		*l = Background
	default:
		return errors.Errorf("unknown layer %q", text)
	}
	return nil
}

// Tool is the toolbar selection the engine reacts to.
type Tool int

const (
	ToolPen Tool = iota
	ToolSelection
	ToolEraser
)

// IsEdit reports whether strokes drawn with t are lasso queries.
func (t Tool) IsEdit() bool { return t == ToolSelection || t == ToolEraser }

func (t Tool) String() string {
	switch t {
	case ToolPen:
		return "pen"
	case ToolSelection:
		return "selection"
	case ToolEraser:
		return "eraser"
	}
	return fmt.Sprintf("Tool(%d)", int(t))
}

// ParseTool accepts the names produced by Tool.String.
func ParseTool(s string) (Tool, error) {
	switch s {
	case "pen":
		return ToolPen, nil
	case "selection":
		return ToolSelection, nil
	case "eraser":
		return ToolEraser, nil
	}
	return ToolPen, errors.Errorf("unknown tool %q", s)
}

// ColorScheme is supplied by the hosting view at render time.
type ColorScheme int

const (
	Light ColorScheme = iota
	Dark
)

func (c ColorScheme) String() string {
	if c == Dark {
		return "dark"
	}
	return "light"
}

// ParseColorScheme maps "dark" to Dark and anything else to Light.
func ParseColorScheme(s string) ColorScheme {
	if s == "dark" {
		return Dark
	}
	return Light
}
