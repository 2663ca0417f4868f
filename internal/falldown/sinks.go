package falldown

// Bounds are the dimensions a rendering surface offers to a session.
type Bounds struct {
	Width      float64
	Height     float64
	PlayerSize float64
}

// Bounds lets fixed dimensions act as a Surface.
func (b Bounds) Bounds() Bounds {
	return b
}

// Surface supplies board and player geometry. It is queried whenever a
// session starts, so a resized surface takes effect on the next restart.
type Surface interface {
	Bounds() Bounds
}

// VisualSink receives entity lifecycle and position updates. The sink owns
// whatever visual handles it needs; the session never sees them.
type VisualSink interface {
	Added(e Entity)
	Removed(id EntityID)
	Moved(e Entity)
}

// Presenter is told the final score when a session ends.
type Presenter interface {
	Report(score int)
}

// PresenterFunc adapts a function to the Presenter interface.
type PresenterFunc func(score int)

// Report calls f(score).
func (f PresenterFunc) Report(score int) {
	f(score)
}

// RandSource draws gap offsets. *rand.Rand satisfies it.
type RandSource interface {
	Float64() float64
}

type nopSink struct{}

func (nopSink) Added(Entity)     {}
func (nopSink) Removed(EntityID) {}
func (nopSink) Moved(Entity)     {}

type nopPresenter struct{}

func (nopPresenter) Report(int) {}
