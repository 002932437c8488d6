package world

// Overlaps returns the instances tagged tag whose boxes intersect the
// controller's capsule box, in spawn order.
func Overlaps(ctrl *CharacterController, scene *Scene, tag string) []*Instance {
	if ctrl == nil || scene == nil {
		return nil
	}

	box := ctrl.Bounds()
	var hits []*Instance
	for _, inst := range scene.Tagged(tag) {
		if box.Overlaps(inst.Bounds()) {
			hits = append(hits, inst)
		}
	}
	return hits
}

// TriggerTracker turns continuous overlaps into enter events.
type TriggerTracker struct {
	inside map[int]bool
}

// NewTriggerTracker creates a tracker with nothing inside.
func NewTriggerTracker() *TriggerTracker {
	return &TriggerTracker{inside: make(map[int]bool)}
}

// Update records the current overlaps and returns those that were not
// overlapping on the previous update.
func (t *TriggerTracker) Update(hits []*Instance) []*Instance {
	now := make(map[int]bool, len(hits))
	var entered []*Instance
	for _, inst := range hits {
		now[inst.ID] = true
		if !t.inside[inst.ID] {
			entered = append(entered, inst)
		}
	}
	t.inside = now
	return entered
}

// Inside reports how many instances currently overlap.
func (t *TriggerTracker) Inside() int {
	return len(t.inside)
}
