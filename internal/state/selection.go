package state

import "InkBoard/internal/geom"

// DragDamping divides the pointer-to-selection offset on every drag step so
// the selection creeps toward the pointer instead of jumping.
const DragDamping = 10.0

// UpdateHighlights replaces the highlight set with every finalized stroke
// that has at least one sample inside region. A stroke is selected whole.
func (s *Surface) UpdateHighlights(region geom.BoundingBox) int {
	clear(s.highlighted)
	for _, l := range []Layer{Background, Foreground} {
		for _, st := range *s.layer(l) {
			for _, sm := range st.Samples {
				if region.Contains(sm.Point) {
					s.highlighted[st.ID] = struct{}{}
					break
				}
			}
		}
	}
	s.Logger.Debug().Int("Highlighted", len(s.highlighted)).Msg("[SURFACE] highlights updated")
	s.changed(ChangeHighlights)
	return len(s.highlighted)
}

// ClearHighlights empties the highlight set.
func (s *Surface) ClearHighlights() {
	if len(s.highlighted) == 0 {
		return
	}
	clear(s.highlighted)
	s.changed(ChangeHighlights)
}

// EraseHighlighted removes every highlighted stroke from its layer and
// clears the set. It returns how many strokes were removed; an empty set
// is a no-op.
func (s *Surface) EraseHighlighted() int {
	if len(s.highlighted) == 0 {
		return 0
	}
	removed := 0
	for _, l := range []Layer{Background, Foreground} {
		dst := s.layer(l)
		kept := (*dst)[:0]
		for _, st := range *dst {
			if _, ok := s.highlighted[st.ID]; ok {
				removed++
				continue
			}
			kept = append(kept, st)
		}
		clear((*dst)[len(kept):])
		*dst = kept
	}
	clear(s.highlighted)
	s.Logger.Debug().Int("Removed", removed).Msg("[SURFACE] highlighted strokes erased")
	s.changed(ChangeStrokes)
	return removed
}

// DragTransform moves the highlighted strokes a tenth of the way from the
// center of their union box toward pointer. It is called once per pan
// event and is a no-op without highlights.
func (s *Surface) DragTransform(pointer geom.Point) bool {
	box, ok := s.HighlightBoundingBox()
	if !ok {
		return false
	}
	offset := pointer.Sub(box.Center()).Div(DragDamping)
	for _, l := range []Layer{Background, Foreground} {
		strokes := *s.layer(l)
		for i, st := range strokes {
			if _, hit := s.highlighted[st.ID]; hit {
				strokes[i] = st.Translate(offset)
			}
		}
	}
	s.changed(ChangeStrokes)
	return true
}

// HighlightBoundingBox is the union of the per-stroke boxes of the
// highlighted strokes.
func (s *Surface) HighlightBoundingBox() (geom.BoundingBox, bool) {
	if len(s.highlighted) == 0 {
		return geom.BoundingBox{}, false
	}
	return s.unionBox(func(st Stroke) bool { return s.IsHighlighted(st.ID) })
}

// BoundingBox returns the highlight box when forHighlights is set, or the
// union over every finalized stroke otherwise.
func (s *Surface) BoundingBox(forHighlights bool) (geom.BoundingBox, bool) {
	if forHighlights {
		return s.HighlightBoundingBox()
	}
	return s.unionBox(func(Stroke) bool { return true })
}

func (s *Surface) unionBox(include func(Stroke) bool) (geom.BoundingBox, bool) {
	var (
		box   geom.BoundingBox
		found bool
	)
	for _, l := range []Layer{Background, Foreground} {
		for _, st := range *s.layer(l) {
			if !include(st) {
				continue
			}
			b, ok := st.BoundingBox()
			if !ok {
				continue
			}
			if !found {
				box, found = b, true
				continue
			}
			box = box.Union(b)
		}
	}
	return box, found
}
