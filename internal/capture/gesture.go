package capture

import "InkBoard/internal/state"

// Result describes what a finished gesture did.
type Result struct {
	Tool        state.Tool
	Committed   bool
	Highlighted int
	Erased      int
}

var lassoColor = state.Color{R: 0.5, G: 0.5, B: 0.5, A: 0.6}

// LassoStyle is the thin, even line drawn while an edit tool is active.
func LassoStyle() state.StrokeStyle {
	s := state.DefaultStyle()
	s.Size = 2
	s.Thinning = 0
	s.SimulatePressure = false
	s.Color = state.ColorPair{Light: lassoColor, Dark: lassoColor}
	return s
}

// HandleGestureEnd applies tool to the surface's active stroke. The pen
// commits it; the edit tools use its bounding box as a lasso and then
// discard it.
func HandleGestureEnd(tool state.Tool, s *state.Surface) Result {
	res := Result{Tool: tool}
	switch tool {
	case state.ToolPen:
		res.Committed = s.FinalizeActiveStroke()
	case state.ToolSelection:
		if box, ok := s.Active().BoundingBox(); ok {
			res.Highlighted = s.UpdateHighlights(box)
		}
		s.ClearActiveStroke()
	case state.ToolEraser:
		if box, ok := s.Active().BoundingBox(); ok {
			res.Highlighted = s.UpdateHighlights(box)
			res.Erased = s.EraseHighlighted()
		}
		s.ClearActiveStroke()
	default:
		s.ClearActiveStroke()
	}
	return res
}
