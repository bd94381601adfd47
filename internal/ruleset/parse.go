package ruleset

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultYAML is the minimal ruleset written when none exists yet.
const DefaultYAML = `rules:
  - locations:
      - ~/Downloads
    actions:
      - move: ~/Organized
`

// Parse builds a Document from YAML. Shapes the tool does not recognise
// (a rule that is not a mapping, a location without a path, a move without a
// dest) are skipped, not reported.
func Parse(data []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse ruleset: %w", err)
	}
	doc := &Document{root: &root}
	if len(root.Content) == 0 {
		return doc, nil
	}
	top := root.Content[0]
	if top.Kind != yaml.MappingNode {
		return doc, nil
	}
	rules := mappingValue(top, "rules")
	if rules == nil || rules.Kind != yaml.SequenceNode {
		return doc, nil
	}
	for _, item := range rules.Content {
		if rule := decodeRule(item); rule != nil {
			doc.Rules = append(doc.Rules, rule)
		}
	}
	return doc, nil
}

// Default returns a parsed copy of DefaultYAML.
func Default() *Document {
	doc, err := Parse([]byte(DefaultYAML))
	if err != nil {
		panic(err)
	}
	return doc
}

// Load reads and parses the ruleset at path. A missing file yields an error
// satisfying errors.Is(err, fs.ErrNotExist).
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read ruleset %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Encode serialises the document, preserving comments and key order.
func (d *Document) Encode() ([]byte, error) {
	if d.root == nil || len(d.root.Content) == 0 {
		return []byte{}, nil
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(d.root); err != nil {
		return nil, fmt.Errorf("encode ruleset: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode ruleset: %w", err)
	}
	return buf.Bytes(), nil
}

func decodeRule(node *yaml.Node) *Rule {
	if node.Kind != yaml.MappingNode {
		return nil
	}
	rule := &Rule{node: node}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := strings.TrimSpace(node.Content[i].Value)
		value := node.Content[i+1]
		switch key {
		case "name":
			if value.Kind == yaml.ScalarNode {
				rule.Name = value.Value
			}
		case "locations":
			rule.locIndex = i + 1
			rule.Locations = decodeLocations(value)
		case "actions":
			if value.Kind == yaml.SequenceNode {
				for _, item := range value.Content {
					if action := decodeAction(item); action != nil {
						rule.Actions = append(rule.Actions, action)
					}
				}
			}
		}
	}
	return rule
}

func decodeLocations(node *yaml.Node) []*Location {
	switch node.Kind {
	case yaml.ScalarNode, yaml.MappingNode:
		if loc := decodeLocation(node); loc != nil {
			return []*Location{loc}
		}
	case yaml.SequenceNode:
		var out []*Location
		for _, item := range node.Content {
			if loc := decodeLocation(item); loc != nil {
				out = append(out, loc)
			}
		}
		return out
	}
	return nil
}

func decodeLocation(node *yaml.Node) *Location {
	switch node.Kind {
	case yaml.ScalarNode:
		if isStringScalar(node) {
			return &Location{Form: Bare, node: node}
		}
	case yaml.MappingNode:
		if p := mappingValue(node, "path"); p != nil && isStringScalar(p) {
			return &Location{Form: Structured, node: p}
		}
	}
	return nil
}

// decodeAction reads one action list item. Organize writes actions either as
// a bare tag ("- trash") or as a single-key mapping ("- move: ~/x").
func decodeAction(node *yaml.Node) *Action {
	switch node.Kind {
	case yaml.ScalarNode:
		return &Action{Name: node.Value}
	case yaml.MappingNode:
		if len(node.Content) < 2 {
			return nil
		}
		action := &Action{Name: strings.TrimSpace(node.Content[0].Value)}
		if action.Name == "move" {
			action.Move = decodeMoveTarget(node.Content[1])
		}
		return action
	}
	return nil
}

func decodeMoveTarget(node *yaml.Node) *MoveTarget {
	switch node.Kind {
	case yaml.ScalarNode:
		if isStringScalar(node) {
			return &MoveTarget{Form: Bare, node: node}
		}
	case yaml.MappingNode:
		if dest := mappingValue(node, "dest"); dest != nil && isStringScalar(dest) {
			return &MoveTarget{Form: Structured, node: dest}
		}
	}
	return nil
}

func mappingValue(node *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

// isStringScalar rejects nulls and empty values; anything else is treated
// as a path, whatever its resolved YAML type.
func isStringScalar(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.Tag != "!!null" && node.Value != ""
}
