package multitag

// ParentFunc returns the immediate parent of an object, or false for a root object. The parent chain must
// be acyclic.
type ParentFunc[O comparable] func(O) (O, bool)

// Hierarchy answers ancestor queries by walking the parent chain provided by the host and checking each
// ancestor in the index. It holds no state of its own.
type Hierarchy[O comparable] struct {
	index  *Index[O]
	parent ParentFunc[O]
}

// NewHierarchy creates a hierarchy query layer over an index. When parent is nil, every object is treated
// as a root.
func NewHierarchy[O comparable](index *Index[O], parent ParentFunc[O]) *Hierarchy[O] {
	if parent == nil {
		parent = func(O) (O, bool) {
			var zero O
			return zero, false
		}
	}

	return &Hierarchy[O]{index: index, parent: parent}
}

func (h *Hierarchy[O]) walk(obj O, p Predicate, found func(O) bool) {
	for a, ok := h.parent(obj); ok; a, ok = h.parent(a) {
		if h.index.Matches(a, p) && !found(a) {
			return
		}
	}
}

// FirstAncestor returns the closest ancestor that matches the predicate. The object itself is not
// considered.
func (h *Hierarchy[O]) FirstAncestor(obj O, p Predicate) (O, bool) {
	var (
		first O
		ok    bool
	)

	h.walk(obj, p, func(a O) bool {
		first, ok = a, true
		return false
	})

	return first, ok
}

// Ancestors returns every ancestor that matches the predicate, the closest first. The object itself is
// not included.
func (h *Hierarchy[O]) Ancestors(obj O, p Predicate) []O {
	var a []O
	h.walk(obj, p, func(ai O) bool {
		a = append(a, ai)
		return true
	})

	return a
}

// FirstAncestorWithTag returns the closest ancestor that has the tag.
func (h *Hierarchy[O]) FirstAncestorWithTag(obj O, tag string) (O, bool) {
	return h.FirstAncestor(obj, Tagged(tag))
}

// FirstAncestorWithAllTags returns the closest ancestor that has every tag in the arguments.
func (h *Hierarchy[O]) FirstAncestorWithAllTags(obj O, tags ...string) (O, bool) {
	return h.FirstAncestor(obj, TaggedAll(tags...))
}

// FirstAncestorWithAnyTag returns the closest ancestor that has at least one tag from the arguments.
func (h *Hierarchy[O]) FirstAncestorWithAnyTag(obj O, tags ...string) (O, bool) {
	return h.FirstAncestor(obj, TaggedAny(tags...))
}

// AncestorsWithTag returns the ancestors that have the tag, the closest first.
func (h *Hierarchy[O]) AncestorsWithTag(obj O, tag string) []O {
	return h.Ancestors(obj, Tagged(tag))
}

// AncestorsWithAllTags returns the ancestors that have every tag in the arguments, the closest first.
func (h *Hierarchy[O]) AncestorsWithAllTags(obj O, tags ...string) []O {
	return h.Ancestors(obj, TaggedAll(tags...))
}

// AncestorsWithAnyTag returns the ancestors that have at least one tag from the arguments, the closest
// first.
func (h *Hierarchy[O]) AncestorsWithAnyTag(obj O, tags ...string) []O {
	return h.Ancestors(obj, TaggedAny(tags...))
}
