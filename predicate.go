package multitag

type predicateKind int

const (
	matchAll predicateKind = iota
	matchAny
	matchOne
)

// Predicate selects objects by their tags. The zero Predicate matches every object.
type Predicate struct {
	kind predicateKind
	tags []string
}

// Tagged matches objects that have the tag.
func Tagged(tag string) Predicate {
	return Predicate{kind: matchOne, tags: []string{tag}}
}

// TaggedAll matches objects that have every tag in the arguments. Without arguments, it matches every
// object.
func TaggedAll(tags ...string) Predicate {
	return Predicate{kind: matchAll, tags: copyTags(tags)}
}

// TaggedAny matches objects that have at least one tag from the arguments. Without arguments, it matches
// nothing.
func TaggedAny(tags ...string) Predicate {
	return Predicate{kind: matchAny, tags: copyTags(tags)}
}

// Matches tells whether an object satisfies a predicate.
func (idx *Index[O]) Matches(obj O, p Predicate) bool {
	switch p.kind {
	case matchOne:
		return idx.HasTag(obj, p.tags[0])
	case matchAny:
		return idx.HasAnyTag(obj, p.tags...)
	default:
		return idx.HasAllTags(obj, p.tags...)
	}
}
