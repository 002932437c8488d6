package world

// AnimatorRecorder stores animation signals instead of playing them.
type AnimatorRecorder struct {
	triggers []string
	bools    map[string]bool
}

// NewAnimatorRecorder creates an empty recorder.
func NewAnimatorRecorder() *AnimatorRecorder {
	return &AnimatorRecorder{bools: make(map[string]bool)}
}

// SetTrigger records a fired trigger.
func (a *AnimatorRecorder) SetTrigger(name string) {
	a.triggers = append(a.triggers, name)
}

// SetBool records a named boolean state.
func (a *AnimatorRecorder) SetBool(name string, value bool) {
	a.bools[name] = value
}

// Bool returns the last value set for name.
func (a *AnimatorRecorder) Bool(name string) bool {
	return a.bools[name]
}

// Triggers returns every fired trigger in order.
func (a *AnimatorRecorder) Triggers() []string {
	return a.triggers
}

// Count returns how many times the trigger fired.
func (a *AnimatorRecorder) Count(name string) int {
	n := 0
	for _, t := range a.triggers {
		if t == name {
			n++
		}
	}
	return n
}

// Last returns the most recent trigger, or "" if none fired.
func (a *AnimatorRecorder) Last() string {
	if len(a.triggers) == 0 {
		return ""
	}
	return a.triggers[len(a.triggers)-1]
}
