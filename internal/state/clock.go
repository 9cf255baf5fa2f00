package state

import "sync/atomic"

// ChangeKind says which part of a surface a mutation touched.
type ChangeKind int

const (
	ChangeActive ChangeKind = iota
	ChangeStrokes
	ChangeHighlights
	ChangeLayout
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeActive:
		return "active"
	case ChangeStrokes:
		return "strokes"
	case ChangeHighlights:
		return "highlights"
	case ChangeLayout:
		return "layout"
	}
	return "unknown"
}

// Change is delivered to subscribers after every mutation.
type Change struct {
	Version uint64
	Kind    ChangeKind
}

// changeClock is the render-invalidation signal of a surface: a version
// counter plus synchronous listeners. The counter may be polled from any
// goroutine; listeners run on the goroutine that mutated the surface.
type changeClock struct {
	version   atomic.Uint64
	nextID    int
	listeners map[int]func(Change)
	order     []int
}

func (c *changeClock) tick(kind ChangeKind) {
	ch := Change{Version: c.version.Add(1), Kind: kind}
	for _, id := range c.order {
		if fn, ok := c.listeners[id]; ok {
			fn(ch)
		}
	}
}

func (c *changeClock) subscribe(fn func(Change)) func() {
	if c.listeners == nil {
		c.listeners = make(map[int]func(Change))
	}
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	c.order = append(c.order, id)
	return func() {
		delete(c.listeners, id)
		for i, v := range c.order {
			if v == id {
				c.order = append(c.order[:i], c.order[i+1:]...)
				break
			}
		}
	}
}
