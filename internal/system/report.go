package system

import (
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/types"
)

// RemovalReport lists what the caller must remove after a tick, plus the
// side-effect log for the presentation layer. The resolver never removes
// entities from the pools itself.
type RemovalReport struct {
	Units       []types.Handle
	Projectiles []types.Handle
	Defenders   []types.Handle
	Events      []event.Event
}

// Empty reports whether the tick produced nothing for the caller.
func (r *RemovalReport) Empty() bool {
	return len(r.Units) == 0 && len(r.Projectiles) == 0 && len(r.Defenders) == 0 && len(r.Events) == 0
}

// EventsOf returns the logged events of one type in emission order.
func (r *RemovalReport) EventsOf(t event.EventType) []event.Event {
	var out []event.Event
	for _, e := range r.Events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}
