package net

import (
	"InkBoard/internal/state"
	"InkBoard/internal/store"
)

// Mirror publishes a snapshot of s to h after every change that viewers
// can see. In-progress samples are not mirrored; the stroke appears once
// it is finalized. The returned func stops mirroring.
func Mirror(s *state.Surface, h *Hub) (cancel func()) {
	publish := func() {
		data, err := store.Marshal(s)
		if err != nil {
			h.Logger.Error().Err(err).Msg("[NET] snapshot failed")
			return
		}
		h.Publish(data)
	}
	publish()
	return s.Subscribe(func(c state.Change) {
		if c.Kind == state.ChangeActive {
			return
		}
		publish()
	})
}
