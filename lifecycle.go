package multitag

// Lifecycle is called by the host when a tagged object becomes active or inactive.
type Lifecycle[O comparable] interface {
	OnActivate(obj O, tags []string)
	OnDeactivate(obj O, tags []string)
}

// SceneHooks is called by the host when the scene owning the tagged objects is unloaded.
type SceneHooks interface {
	OnSceneUnload()
}

// Adapter connects the host lifecycle to an index. It implements Lifecycle and SceneHooks.
type Adapter[O comparable] struct {
	index *Index[O]
}

// NewAdapter creates a lifecycle adapter registering into index.
func NewAdapter[O comparable](index *Index[O]) *Adapter[O] {
	return &Adapter[O]{index: index}
}

// Clean returns the authored tags of an object without empty and repeated entries. A properly authored
// object has none of these, so finding any is reported as a warning.
func Clean(log Logger, obj any, tags []string) []string {
	clean := make([]string, 0, len(tags))
	var dropped int
	for _, t := range tags {
		if t == "" || contains(clean, t) {
			dropped++
			continue
		}

		clean = append(clean, t)
	}

	if dropped > 0 && log != nil {
		log.Warn("authored tags contain empty or duplicate entries, cleaned", "object", obj, "dropped", dropped)
	}

	return clean
}

// OnActivate registers the authored tags of an object.
func (a *Adapter[O]) OnActivate(obj O, tags []string) {
	a.index.Register(obj, Clean(a.index.log, obj, tags)...)
}

// OnDeactivate removes the authored tags of an object.
func (a *Adapter[O]) OnDeactivate(obj O, tags []string) {
	a.index.Unregister(obj, tags...)
}

// OnSceneUnload clears the index.
func (a *Adapter[O]) OnSceneUnload() {
	a.index.Clear()
}
