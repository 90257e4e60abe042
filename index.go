package multitag

import (
	"sort"

	"github.com/aryszka/multitag/internal/diag"
)

// Logger receives the diagnostics of the index. *slog.Logger implements it.
type Logger = diag.Logger

// Options are used to initialize an index.
type Options struct {

	// Logger receives warnings about likely misuse, e.g. removing tags from an object that has none, or
	// duplicate tags in a single registration. Defaults to a warn level logger writing to stderr.
	Logger Logger
}

// Index stores the tags associated with objects and the objects associated with tags. The two mappings
// are always kept in agreement: an object is listed under a tag if and only if the tag is listed under the
// object.
//
// Objects are used only as map keys, they are compared with ==. Pointer types give identity semantics.
//
// None of the operations fail. Misuse, like removing absent tags or querying unknown objects, results in
// empty results or no change, and, where it likely indicates a bug, a warning.
//
// Index is not safe for concurrent use. It is meant to be driven from the single thread that owns the
// scene. Hosts calling it from multiple goroutines must guard every call with the same mutex.
type Index[O comparable] struct {
	tags    map[O][]string
	objects map[string]map[O]struct{}
	log     Logger
}

// NewIndex creates an empty index.
func NewIndex[O comparable](o Options) *Index[O] {
	return &Index[O]{
		tags:    make(map[O][]string),
		objects: make(map[string]map[O]struct{}),
		log:     diag.OrDefault(o.Logger),
	}
}

func contains(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}

	return false
}

func copyTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}

	c := make([]string, len(tags))
	copy(c, tags)
	return c
}

// Register adds tags to an object. Tags that the object already has are skipped, so calling it again with
// the same tags doesn't change the index. Empty tags are ignored.
func (idx *Index[O]) Register(obj O, tags ...string) {
	if len(tags) == 0 {
		return
	}

	current := idx.tags[obj]
	next := copyTags(current)

	var (
		added      []string
		duplicates []string
	)

	given := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		if t == "" {
			idx.log.Warn("ignoring empty tag", "object", obj)
			continue
		}

		if _, ok := given[t]; ok {
			duplicates = append(duplicates, t)
			continue
		}

		given[t] = struct{}{}
		if contains(current, t) {
			continue
		}

		next = append(next, t)
		added = append(added, t)
	}

	if len(duplicates) > 0 {
		idx.log.Warn("duplicate tags in registration, cleaned", "object", obj, "duplicates", duplicates)
	}

	if len(added) == 0 {
		return
	}

	idx.tags[obj] = next
	for _, t := range added {
		set, ok := idx.objects[t]
		if !ok {
			set = make(map[O]struct{})
			idx.objects[t] = set
		}

		set[obj] = struct{}{}
	}
}

// Unregister removes tags from an object. Tags that the object doesn't have are skipped. When the object
// loses its last tag, it is dropped from the index.
func (idx *Index[O]) Unregister(obj O, tags ...string) {
	if len(tags) == 0 {
		return
	}

	current, ok := idx.tags[obj]
	if !ok {
		idx.log.Warn("removing tags from an object without tags", "object", obj, "tags", tags)
		return
	}

	next := make([]string, 0, len(current))
	for _, t := range current {
		if contains(tags, t) {
			delete(idx.objects[t], obj)
			continue
		}

		next = append(next, t)
	}

	if len(next) == 0 {
		delete(idx.tags, obj)
		return
	}

	idx.tags[obj] = next
}

// UnregisterAll removes every tag of an object. Unknown objects are ignored.
func (idx *Index[O]) UnregisterAll(obj O) {
	current, ok := idx.tags[obj]
	if !ok {
		return
	}

	for _, t := range current {
		delete(idx.objects[t], obj)
	}

	delete(idx.tags, obj)
}

// RenameTag replaces a tag of an object with another one, keeping its position. When the object already
// has the new tag, the old one is only removed. It returns false when the object doesn't have the old tag
// or the new tag is empty.
func (idx *Index[O]) RenameTag(obj O, from, to string) bool {
	if to == "" {
		idx.log.Warn("ignoring rename to empty tag", "object", obj, "tag", from)
		return false
	}

	current := idx.tags[obj]
	if !contains(current, from) {
		return false
	}

	if from == to {
		return true
	}

	if contains(current, to) {
		idx.Unregister(obj, from)
		return true
	}

	next := copyTags(current)
	for i, t := range next {
		if t == from {
			next[i] = to
		}
	}

	idx.tags[obj] = next
	delete(idx.objects[from], obj)
	set, ok := idx.objects[to]
	if !ok {
		set = make(map[O]struct{})
		idx.objects[to] = set
	}

	set[obj] = struct{}{}
	return true
}

// Tags returns the tags of an object in the order they were registered. The returned slice is a copy.
func (idx *Index[O]) Tags(obj O) []string {
	return copyTags(idx.tags[obj])
}

// Objects returns the objects that have a tag, in no particular order. The returned slice is a copy.
func (idx *Index[O]) Objects(tag string) []O {
	set := idx.objects[tag]
	if len(set) == 0 {
		return nil
	}

	o := make([]O, 0, len(set))
	for obj := range set {
		o = append(o, obj)
	}

	return o
}

// FirstWithTag returns one of the objects that have a tag.
func (idx *Index[O]) FirstWithTag(tag string) (O, bool) {
	for obj := range idx.objects[tag] {
		return obj, true
	}

	var zero O
	return zero, false
}

// ObjectsWithAllTags returns the objects that have every tag in the arguments. Without arguments, it
// returns every object in the index.
func (idx *Index[O]) ObjectsWithAllTags(tags ...string) []O {
	if len(tags) == 0 {
		return idx.Known()
	}

	smallest := idx.objects[tags[0]]
	for _, t := range tags[1:] {
		if len(idx.objects[t]) < len(smallest) {
			smallest = idx.objects[t]
		}
	}

	var o []O
	for obj := range smallest {
		if idx.HasAllTags(obj, tags...) {
			o = append(o, obj)
		}
	}

	return o
}

// ObjectsWithAnyTag returns the objects that have at least one of the tags in the arguments.
func (idx *Index[O]) ObjectsWithAnyTag(tags ...string) []O {
	var o []O
	seen := make(map[O]struct{})
	for _, t := range tags {
		for obj := range idx.objects[t] {
			if _, ok := seen[obj]; ok {
				continue
			}

			seen[obj] = struct{}{}
			o = append(o, obj)
		}
	}

	return o
}

// Known returns the objects that have at least one tag.
func (idx *Index[O]) Known() []O {
	if len(idx.tags) == 0 {
		return nil
	}

	o := make([]O, 0, len(idx.tags))
	for obj := range idx.tags {
		o = append(o, obj)
	}

	return o
}

// LiveTags returns, sorted, the tags that at least one object has.
func (idx *Index[O]) LiveTags() []string {
	var tags []string
	for t, set := range idx.objects {
		if len(set) > 0 {
			tags = append(tags, t)
		}
	}

	sort.Strings(tags)
	return tags
}

// HasTag tells whether an object has a tag.
func (idx *Index[O]) HasTag(obj O, tag string) bool {
	_, ok := idx.objects[tag][obj]
	return ok
}

// HasAnyTag tells whether an object has at least one of the tags in the arguments. It is false when
// called without tags.
func (idx *Index[O]) HasAnyTag(obj O, tags ...string) bool {
	for _, t := range tags {
		if idx.HasTag(obj, t) {
			return true
		}
	}

	return false
}

// HasAllTags tells whether an object has every tag in the arguments. When called without tags, it is true,
// even for objects unknown to the index.
func (idx *Index[O]) HasAllTags(obj O, tags ...string) bool {
	for _, t := range tags {
		if !idx.HasTag(obj, t) {
			return false
		}
	}

	return true
}

// Clear drops every association. Hosts call it when the scene is unloaded.
func (idx *Index[O]) Clear() {
	idx.tags = make(map[O][]string)
	idx.objects = make(map[string]map[O]struct{})
}
