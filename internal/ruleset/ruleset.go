// Package ruleset loads and saves organize-style rule documents.
//
// The document is kept as a yaml.Node tree so comments, key order and keys
// this tool does not understand survive a rewrite. The typed view (Rule,
// Location, Action, MoveTarget) points into that tree; mutating the view
// mutates the document.
package ruleset

import "gopkg.in/yaml.v3"

// Form distinguishes the two shapes a location or move target may take.
type Form int

const (
	// Bare is a plain string value.
	Bare Form = iota
	// Structured is a mapping carrying the value under a field
	// ("path" for locations, "dest" for move targets).
	Structured
)

func (f Form) String() string {
	if f == Structured {
		return "structured"
	}
	return "bare"
}

// Document is a parsed ruleset.
type Document struct {
	Rules []*Rule

	root *yaml.Node
}

// Rule pairs source locations with actions.
type Rule struct {
	Name      string
	Locations []*Location
	Actions   []*Action

	node *yaml.Node
	// locIndex is the index of the locations value within node.Content.
	locIndex int
}

// Location is a filesystem location a rule scans.
type Location struct {
	Form Form
	node *yaml.Node
}

// Path returns the location path.
func (l *Location) Path() string { return l.node.Value }

// SetPath replaces the location path.
func (l *Location) SetPath(p string) { setScalar(l.node, p) }

// Action is one entry of a rule's action list.
type Action struct {
	// Name is the action tag, e.g. "move", "copy", "echo".
	Name string
	// Move is set only for move actions with a usable destination.
	Move *MoveTarget
}

// MoveTarget is the destination of a move action.
type MoveTarget struct {
	Form Form
	node *yaml.Node
}

// Dest returns the destination path.
func (m *MoveTarget) Dest() string { return m.node.Value }

// SetDest replaces the destination path.
func (m *MoveTarget) SetDest(p string) { setScalar(m.node, p) }

// FlattenLocations turns a single-value `locations:` (a bare string or one
// structured location) into a one-element list.
func (r *Rule) FlattenLocations() bool {
	if r.node == nil || r.locIndex <= 0 {
		return false
	}
	value := r.node.Content[r.locIndex]
	if value.Kind == yaml.SequenceNode {
		return false
	}
	r.node.Content[r.locIndex] = &yaml.Node{
		Kind:    yaml.SequenceNode,
		Tag:     "!!seq",
		Content: []*yaml.Node{value},
	}
	return true
}

// MoveTargets returns every move destination in the document, in order.
func (d *Document) MoveTargets() []*MoveTarget {
	var out []*MoveTarget
	for _, rule := range d.Rules {
		for _, action := range rule.Actions {
			if action.Move != nil {
				out = append(out, action.Move)
			}
		}
	}
	return out
}

// Locations returns every source location in the document, in order.
func (d *Document) Locations() []*Location {
	var out []*Location
	for _, rule := range d.Rules {
		out = append(out, rule.Locations...)
	}
	return out
}

func setScalar(n *yaml.Node, value string) {
	n.Kind = yaml.ScalarNode
	n.Tag = "!!str"
	n.Value = value
}
