package state

import (
	"sort"

	"github.com/rs/zerolog"
)

const defaultPanelHeight = 200

// Surface is one drawing panel: two stroke layers, the in-progress stroke
// and the highlight set.
//
// A Surface is owned by the view that displays it and is not safe for
// concurrent use. Every mutation completes, including notifying
// subscribers, before the method returns.
type Surface struct {
	foreground  []Stroke
	background  []Stroke
	active      Stroke
	activeLayer Layer
	highlighted map[StrokeID]struct{}
	panelHeight float64
	visible     bool

	invertPenColors bool
	clock           changeClock

	Logger zerolog.Logger
}

// NewSurface returns an empty, visible surface drawing into the foreground.
func NewSurface() *Surface {
	return &Surface{
		active:      NewStroke(DefaultStyle()),
		activeLayer: Foreground,
		highlighted: make(map[StrokeID]struct{}),
		panelHeight: defaultPanelHeight,
		visible:     true,
		Logger:      zerolog.Nop(),
	}
}

// SurfaceData is the persisted form of a Surface.
type SurfaceData struct {
	Foreground  []Stroke   `json:"foreground"`
	Background  []Stroke   `json:"background"`
	Active      Stroke     `json:"active"`
	ActiveLayer Layer      `json:"activeLayer"`
	Highlighted []StrokeID `json:"highlighted"`
	PanelHeight float64    `json:"panelHeight"`
	Visible     bool       `json:"visible"`
}

// NewSurfaceFromData rebuilds a surface. Highlight entries that name no
// stroke are dropped.
func NewSurfaceFromData(d SurfaceData) *Surface {
	s := NewSurface()
	s.foreground = cloneStrokes(d.Foreground)
	s.background = cloneStrokes(d.Background)
	s.active = d.Active.Clone()
	s.activeLayer = d.ActiveLayer
	s.panelHeight = d.PanelHeight
	s.visible = d.Visible
	for _, id := range d.Highlighted {
		if _, _, ok := s.Stroke(id); ok {
			s.highlighted[id] = struct{}{}
		}
	}
	return s
}

// Data returns a deep copy of every field that is persisted.
func (s *Surface) Data() SurfaceData {
	return SurfaceData{
		Foreground:  cloneStrokes(s.foreground),
		Background:  cloneStrokes(s.background),
		Active:      s.active.Clone(),
		ActiveLayer: s.activeLayer,
		Highlighted: s.Highlighted(),
		PanelHeight: s.panelHeight,
		Visible:     s.visible,
	}
}

func cloneStrokes(in []Stroke) []Stroke {
	out := make([]Stroke, len(in))
	for i, st := range in {
		out[i] = st.Clone()
	}
	return out
}

// Version increases by one after every mutation.
func (s *Surface) Version() uint64 { return s.clock.version.Load() }

// Subscribe registers fn for change notifications and returns a function
// that removes it.
func (s *Surface) Subscribe(fn func(Change)) (cancel func()) {
	return s.clock.subscribe(fn)
}

func (s *Surface) changed(kind ChangeKind) {
	s.clock.tick(kind)
}

func (s *Surface) ActiveLayer() Layer { return s.activeLayer }

func (s *Surface) SetActiveLayer(l Layer) {
	if s.activeLayer == l {
		return
	}
	s.activeLayer = l
	s.changed(ChangeLayout)
}

func (s *Surface) InvertPenColors() bool { return s.invertPenColors }

// SetInvertPenColors controls whether finalized strokes get their light
// and dark colors swapped.
func (s *Surface) SetInvertPenColors(v bool) { s.invertPenColors = v }

func (s *Surface) PanelHeight() float64 { return s.panelHeight }

func (s *Surface) SetPanelHeight(h float64) {
	if h == s.panelHeight {
		return
	}
	s.panelHeight = h
	s.changed(ChangeLayout)
}

func (s *Surface) Visible() bool { return s.visible }

func (s *Surface) SetVisible(v bool) {
	if v == s.visible {
		return
	}
	s.visible = v
	s.changed(ChangeLayout)
}

// Active returns a copy of the in-progress stroke.
func (s *Surface) Active() Stroke { return s.active.Clone() }

// ActiveLen is the number of samples in the in-progress stroke.
func (s *Surface) ActiveLen() int { return len(s.active.Samples) }

// Strokes returns the finalized strokes of layer in render order.
func (s *Surface) Strokes(l Layer) []Stroke {
	return cloneStrokes(*s.layer(l))
}

// StrokeCount returns the number of finalized strokes in layer.
func (s *Surface) StrokeCount(l Layer) int { return len(*s.layer(l)) }

// Stroke looks a finalized stroke up by ID.
func (s *Surface) Stroke(id StrokeID) (Stroke, Layer, bool) {
	for _, l := range []Layer{Foreground, Background} {
		for _, st := range *s.layer(l) {
			if st.ID == id {
				return st.Clone(), l, true
			}
		}
	}
	return Stroke{}, Foreground, false
}

func (s *Surface) layer(l Layer) *[]Stroke {
	if l == Background {
		return &s.background
	}
	return &s.foreground
}

// AddStroke appends a finalized stroke directly to a layer. Strokes that
// cannot produce an outline are ignored.
func (s *Surface) AddStroke(l Layer, st Stroke) bool {
	if !st.Renderable() {
		return false
	}
	dst := s.layer(l)
	*dst = append(*dst, st.Clone())
	s.changed(ChangeStrokes)
	return true
}

// BeginStroke replaces the active stroke with an empty one using style
// and returns its ID.
func (s *Surface) BeginStroke(style StrokeStyle) StrokeID {
	s.active = NewStroke(style)
	s.changed(ChangeActive)
	return s.active.ID
}

// AppendSamples adds samples to the active stroke in arrival order.
func (s *Surface) AppendSamples(samples ...Sample) {
	if len(samples) == 0 {
		return
	}
	s.active.Samples = append(s.active.Samples, samples...)
	s.changed(ChangeActive)
}

// FinalizeActiveStroke commits the active stroke into the active layer and
// clears the buffer. Strokes with fewer than two samples are discarded.
// It reports whether a stroke was committed.
func (s *Surface) FinalizeActiveStroke() bool {
	committed := false
	if s.active.Renderable() {
		st := s.active.Finalized(s.invertPenColors)
		dst := s.layer(s.activeLayer)
		*dst = append(*dst, st)
		committed = true
		s.Logger.Debug().Str("Stroke", st.ID.String()).Stringer("Layer", s.activeLayer).
			Int("Samples", st.Len()).Msg("[SURFACE] stroke finalized")
	}
	s.resetActive()
	if committed {
		s.changed(ChangeStrokes)
	} else {
		s.changed(ChangeActive)
	}
	return committed
}

// ClearActiveStroke discards the in-progress buffer.
func (s *Surface) ClearActiveStroke() {
	s.resetActive()
	s.changed(ChangeActive)
}

func (s *Surface) resetActive() {
	s.active = NewStroke(s.active.Style)
}

// ClearLayer removes every stroke of a layer.
func (s *Surface) ClearLayer(l Layer) {
	dst := s.layer(l)
	if len(*dst) == 0 {
		return
	}
	for _, st := range *dst {
		delete(s.highlighted, st.ID)
	}
	*dst = nil
	s.changed(ChangeStrokes)
}

// Highlighted returns the highlighted IDs in a stable order.
func (s *Surface) Highlighted() []StrokeID {
	ids := make([]StrokeID, 0, len(s.highlighted))
	for id := range s.highlighted {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	return ids
}

func (s *Surface) IsHighlighted(id StrokeID) bool {
	_, ok := s.highlighted[id]
	return ok
}
