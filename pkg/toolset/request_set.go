package toolset

import (
	"github.com/forgeware/forge/pkg/forgeid"
)

// ToolRequestSet is what external loaders (.tool-versions parsers, CLI
// argument parsers) build: a per-forge list of requests plus the sources
// they were declared under, before being folded into a Toolset.
type ToolRequestSet struct {
	Tools   map[forgeid.ForgeId][]ToolRequest
	order   []forgeid.ForgeId
	Sources []ToolSource // insertion order; first is the "active" one on From
}

// ToolRequestSetBuilder accumulates requests before producing an immutable
// ToolRequestSet.
type ToolRequestSetBuilder struct {
	set ToolRequestSet
}

// NewToolRequestSetBuilder creates an empty builder.
func NewToolRequestSetBuilder() *ToolRequestSetBuilder {
	return &ToolRequestSetBuilder{set: ToolRequestSet{Tools: map[forgeid.ForgeId][]ToolRequest{}}}
}

// Add appends a request under the given forge, tracking insertion order.
func (b *ToolRequestSetBuilder) Add(fa forgeid.ForgeId, req ToolRequest) *ToolRequestSetBuilder {
	if _, ok := b.set.Tools[fa]; !ok {
		b.set.order = append(b.set.order, fa)
	}
	b.set.Tools[fa] = append(b.set.Tools[fa], req)
	return b
}

// WithSource records the ToolSource this batch of requests came from.
func (b *ToolRequestSetBuilder) WithSource(source ToolSource) *ToolRequestSetBuilder {
	b.set.Sources = append(b.set.Sources, source)
	return b
}

// Build finalizes the builder into a ToolRequestSet.
func (b *ToolRequestSetBuilder) Build() ToolRequestSet {
	return b.set
}

// OrderedForges returns the forges in insertion order.
func (s ToolRequestSet) OrderedForges() []forgeid.ForgeId {
	return s.order
}

// FromRequestSet builds a Toolset from a ToolRequestSet: the first
// recorded source becomes the active source, and every forge's requests
// become a fresh ToolVersionList, in the set's insertion order.
func FromRequestSet(trs ToolRequestSet, resolver BackendResolver) *Toolset {
	var source ToolSource
	if len(trs.Sources) > 0 {
		source = trs.Sources[0]
	} else {
		source = NewDefaultSource()
	}
	ts := New(source, resolver)
	for _, fa := range trs.order {
		tvl := NewToolVersionList(fa, source)
		tvl.Requests = append(tvl.Requests, trs.Tools[fa]...)
		ts.versions[fa] = tvl
		ts.order = append(ts.order, fa)
	}
	return ts
}
