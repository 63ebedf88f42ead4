package component

// Blink toggles an entity's visibility every Interval ticks, Toggles times,
// as damage feedback. Removing the component forces the entity visible.
type Blink struct {
	Toggles  int
	Interval int
	Timer    int
	Hidden   bool
}

var BlinkComponent = NewComponent[Blink]()
