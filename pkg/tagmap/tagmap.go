// Package tagmap resolves raw constituent tags to their canonical names.
// The mapping is loaded once per run and injected at construction; a
// missing or empty mapping means every tag resolves to itself, so a failed
// mapping source degrades the output instead of failing the pipeline.
package tagmap

import (
	"github.com/cuebox/stagehand/pkg/normalize"
)

// Mapping relates a raw tag name to its canonical replacement. Entries
// with an empty name or an empty mapped value are never stored; loaders
// enforce this before constructing a Resolver.
type Mapping map[string]string

// Resolver answers canonical-name lookups against an immutable mapping.
type Resolver struct {
	mapping Mapping
}

// NewResolver wraps a loaded mapping. A nil mapping is valid and resolves
// every tag unchanged.
func NewResolver(mapping Mapping) *Resolver {
	return &Resolver{mapping: mapping}
}

// Resolve returns the canonical name for a raw tag, or the tag unchanged
// when no mapping entry exists. It never fails.
func (r *Resolver) Resolve(raw string) string {
	if mapped, ok := r.mapping[raw]; ok {
		return mapped
	}
	return raw
}

// Canonical splits a raw comma-separated tag list and maps each tag to its
// canonical name. Tags whose mapped form is empty are dropped, and
// duplicates collapse to their first occurrence.
func (r *Resolver) Canonical(rawTags string) []string {
	var mapped []string
	for _, tag := range normalize.SplitTags(rawTags) {
		if m := r.Resolve(tag); m != "" {
			mapped = append(mapped, m)
		}
	}
	return normalize.DedupeKeepOrder(mapped)
}

// Len reports the number of entries in the underlying mapping.
func (r *Resolver) Len() int {
	return len(r.mapping)
}
