// Package rewrite repoints a ruleset at a new source directory and a new
// destination base.
package rewrite

import (
	"github.com/aidanlsb/orgmap/internal/classify"
	"github.com/aidanlsb/orgmap/internal/ruleset"
	"github.com/aidanlsb/orgmap/internal/taxonomy"
)

// Field names the part of a rule a change touched.
type Field string

const (
	FieldLocation    Field = "location"
	FieldDestination Field = "destination"
)

// Change records one value that was replaced.
type Change struct {
	Rule     int           `json:"rule"`
	RuleName string        `json:"rule_name,omitempty"`
	Field    Field         `json:"field"`
	Old      string        `json:"old"`
	New      string        `json:"new"`
	Tier     classify.Tier `json:"tier,omitempty"`
	Kind     taxonomy.Kind `json:"kind,omitempty"`
}

// Result summarises one rewrite pass.
type Result struct {
	// Count is the number of replacements the pass reports.
	Count int `json:"count"`
	// Changes lists the values whose text actually changed.
	Changes []Change `json:"changes"`
}

// Sources replaces every source location in doc with newSource. A rule
// whose locations is a single value is turned into a one-element list first.
// Every location counts as a replacement, changed or not.
func Sources(doc *ruleset.Document, newSource string) Result {
	res := Result{Changes: []Change{}}
	for i, rule := range doc.Rules {
		if len(rule.Locations) == 0 {
			continue
		}
		rule.FlattenLocations()
		for _, loc := range rule.Locations {
			old := loc.Path()
			loc.SetPath(newSource)
			res.Count++
			if old != newSource {
				res.Changes = append(res.Changes, Change{
					Rule:     i,
					RuleName: rule.Name,
					Field:    FieldLocation,
					Old:      old,
					New:      newSource,
				})
			}
		}
	}
	return res
}

// Destinations rewrites every move destination under newBase using the
// built-in taxonomy.
func Destinations(doc *ruleset.Document, newBase string) Result {
	return DestinationsWith(doc, taxonomy.ComposeDefault(newBase))
}

// DestinationsWith rewrites every move destination against an already
// composed taxonomy. A destination is only overwritten, and only counted,
// when its classified form differs from the current value.
func DestinationsWith(doc *ruleset.Document, t *taxonomy.Resolved) Result {
	res := Result{Changes: []Change{}}
	for i, rule := range doc.Rules {
		for _, action := range rule.Actions {
			if action.Move == nil {
				continue
			}
			old := action.Move.Dest()
			c := classify.Path(old, t.Base, t)
			if c.Path == old {
				continue
			}
			action.Move.SetDest(c.Path)
			res.Count++
			res.Changes = append(res.Changes, Change{
				Rule:     i,
				RuleName: rule.Name,
				Field:    FieldDestination,
				Old:      old,
				New:      c.Path,
				Tier:     c.Tier,
				Kind:     c.Kind,
			})
		}
	}
	return res
}
