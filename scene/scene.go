// Package scene is a minimal host for tagged objects: a tree of nodes that can be activated, deactivated
// and reparented. It reports activity changes through the multitag lifecycle interface, and provides the
// parent chain for the hierarchy queries.
package scene

import (
	"errors"

	"github.com/google/uuid"

	"github.com/aryszka/multitag"
)

// ErrCycle is returned when reparenting would make a node its own ancestor.
var ErrCycle = errors.New("node cannot be its own ancestor")

// ErrForeignNode is returned when a node of another scene is passed to a scene.
var ErrForeignNode = errors.New("node belongs to another scene")

// Node is an object in the scene.
type Node struct {
	ID   uuid.UUID
	Name string

	tags     []string
	active   bool
	parent   *Node
	children []*Node
	scene    *Scene
}

// Scene holds a forest of nodes.
type Scene struct {
	Name string

	lifecycle multitag.Lifecycle[*Node]
	hooks     multitag.SceneHooks
	nodes     map[uuid.UUID]*Node
}

// New creates an empty scene. Either argument can be nil.
func New(name string, lifecycle multitag.Lifecycle[*Node], hooks multitag.SceneHooks) *Scene {
	return &Scene{
		Name:      name,
		lifecycle: lifecycle,
		hooks:     hooks,
		nodes:     make(map[uuid.UUID]*Node),
	}
}

// Tags returns the authored tags of the node.
func (n *Node) Tags() []string {
	t := make([]string, len(n.tags))
	copy(t, n.tags)
	return t
}

// ActiveSelf tells whether the node itself is switched on.
func (n *Node) ActiveSelf() bool { return n.active }

// Active tells whether the node and all its ancestors are switched on.
func (n *Node) Active() bool {
	for ni := n; ni != nil; ni = ni.parent {
		if !ni.active {
			return false
		}
	}

	return true
}

// Children returns the direct children of the node.
func (n *Node) Children() []*Node {
	c := make([]*Node, len(n.children))
	copy(c, n.children)
	return c
}

// String returns the name of the node.
func (n *Node) String() string { return n.Name }

func (n *Node) walk(f func(*Node)) {
	f(n)
	for _, c := range n.children {
		c.walk(f)
	}
}

func (s *Scene) activity(n *Node) map[*Node]bool {
	m := make(map[*Node]bool)
	n.walk(func(ni *Node) { m[ni] = ni.Active() })
	return m
}

// notify calls the lifecycle for the nodes in the subtree of n whose activity differs from before.
func (s *Scene) notify(n *Node, before map[*Node]bool) {
	if s.lifecycle == nil {
		return
	}

	n.walk(func(ni *Node) {
		was, now := before[ni], ni.Active()
		switch {
		case now && !was:
			s.lifecycle.OnActivate(ni, ni.Tags())
		case was && !now:
			s.lifecycle.OnDeactivate(ni, ni.Tags())
		}
	})
}

func (s *Scene) owns(n *Node) bool {
	return n != nil && n.scene == s
}

// Add creates an active node under parent, or as a root when parent is nil.
func (s *Scene) Add(name string, parent *Node, tags ...string) (*Node, error) {
	if parent != nil && !s.owns(parent) {
		return nil, ErrForeignNode
	}

	n := &Node{
		ID:     uuid.New(),
		Name:   name,
		tags:   append([]string(nil), tags...),
		active: true,
		scene:  s,
	}

	before := map[*Node]bool{n: false}
	n.parent = parent
	if parent != nil {
		parent.children = append(parent.children, n)
	}

	s.nodes[n.ID] = n
	s.notify(n, before)
	return n, nil
}

// SetActive switches a node on or off. Its descendants follow.
func (s *Scene) SetActive(n *Node, active bool) error {
	if !s.owns(n) {
		return ErrForeignNode
	}

	before := s.activity(n)
	n.active = active
	s.notify(n, before)
	return nil
}

// SetTags replaces the authored tags of a node. When the node is active, its old tags are deactivated and
// the new ones activated.
func (s *Scene) SetTags(n *Node, tags ...string) error {
	if !s.owns(n) {
		return ErrForeignNode
	}

	active := n.Active()
	if active && s.lifecycle != nil {
		s.lifecycle.OnDeactivate(n, n.Tags())
	}

	n.tags = append([]string(nil), tags...)
	if active && s.lifecycle != nil {
		s.lifecycle.OnActivate(n, n.Tags())
	}

	return nil
}

func detach(n *Node) {
	if n.parent == nil {
		return
	}

	c := n.parent.children
	for i, ci := range c {
		if ci == n {
			n.parent.children = append(c[:i:i], c[i+1:]...)
			break
		}
	}

	n.parent = nil
}

// SetParent moves a node under a new parent, or to the root when parent is nil.
func (s *Scene) SetParent(n, parent *Node) error {
	if !s.owns(n) || parent != nil && !s.owns(parent) {
		return ErrForeignNode
	}

	for p := parent; p != nil; p = p.parent {
		if p == n {
			return ErrCycle
		}
	}

	before := s.activity(n)
	detach(n)
	n.parent = parent
	if parent != nil {
		parent.children = append(parent.children, n)
	}

	s.notify(n, before)
	return nil
}

// Remove deletes a node and its descendants from the scene.
func (s *Scene) Remove(n *Node) error {
	if !s.owns(n) {
		return ErrForeignNode
	}

	before := s.activity(n)
	n.walk(func(ni *Node) { ni.active = false })
	s.notify(n, before)

	detach(n)
	n.walk(func(ni *Node) {
		delete(s.nodes, ni.ID)
		ni.scene = nil
	})

	return nil
}

// Find returns the node with an ID.
func (s *Scene) Find(id uuid.UUID) (*Node, bool) {
	n, ok := s.nodes[id]
	return n, ok
}

// Len returns the number of nodes in the scene.
func (s *Scene) Len() int {
	return len(s.nodes)
}

// Parent returns the parent of a node. It can be used as a multitag.ParentFunc.
func (s *Scene) Parent(n *Node) (*Node, bool) {
	if n == nil || n.parent == nil {
		return nil, false
	}

	return n.parent, true
}

// Unload drops every node, and calls the scene hooks. Lifecycle callbacks are not called for the
// individual nodes, the hooks are expected to drop everything at once.
func (s *Scene) Unload() {
	for _, n := range s.nodes {
		n.scene = nil
	}

	s.nodes = make(map[uuid.UUID]*Node)
	if s.hooks != nil {
		s.hooks.OnSceneUnload()
	}
}
