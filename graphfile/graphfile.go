// SPDX-License-Identifier: MIT

// Package graphfile loads core.Graph values from YAML (or JSON) documents.
//
// Two shapes are accepted; they may not be mixed in one document:
//
//	# edge list; directed: false mirrors each edge
//	directed: false
//	nodes: [E]
//	edges:
//	  - {from: A, to: B, weight: 1}
//
//	# adjacency mapping; arcs are one-way, supply reciprocals yourself.
//	# "directed" is rejected here.
//	adjacency:
//	  A: [{to: B, weight: 1}]
//	  B: [{to: A, weight: 1}]
package graphfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/waypath/core"
)

// Sentinel errors for document loading.
var (
	// ErrEmptyDocument indicates a document with no nodes, edges or adjacency.
	ErrEmptyDocument = errors.New("graphfile: document defines no nodes")

	// ErrInvalidDocument wraps schema violations reported by the validator.
	ErrInvalidDocument = errors.New("graphfile: invalid document")
)

// Document is the on-disk graph description.
type Document struct {
	Directed  *bool                `yaml:"directed,omitempty" json:"directed,omitempty"`
	Nodes     []string             `yaml:"nodes,omitempty" json:"nodes,omitempty" validate:"dive,required"`
	Edges     []EdgeSpec           `yaml:"edges,omitempty" json:"edges,omitempty" validate:"dive"`
	Adjacency map[string][]ArcSpec `yaml:"adjacency,omitempty" json:"adjacency,omitempty" validate:"excluded_with=Edges,dive,keys,required,endkeys,dive"`
}

// EdgeSpec is one entry of the edge list.
type EdgeSpec struct {
	From   string  `yaml:"from" json:"from" validate:"required"`
	To     string  `yaml:"to" json:"to" validate:"required"`
	Weight float64 `yaml:"weight" json:"weight" validate:"gte=0"`
}

// ArcSpec is one (neighbor, weight) pair of an adjacency entry.
type ArcSpec struct {
	To     string  `yaml:"to" json:"to" validate:"required"`
	Weight float64 `yaml:"weight" json:"weight" validate:"gte=0"`
}

// docValidate is shared; validator caches struct metadata per instance.
var docValidate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the document schema.
func (d *Document) Validate() error {
	if err := docValidate.Struct(d); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if d.Directed != nil && len(d.Adjacency) > 0 {
		return fmt.Errorf("%w: directed applies to edge lists only; adjacency arcs are always one-way", ErrInvalidDocument)
	}
	if len(d.Nodes) == 0 && len(d.Edges) == 0 && len(d.Adjacency) == 0 {
		return ErrEmptyDocument
	}

	return nil
}

// Build validates d and constructs the graph it describes.
// Nodes are added first, so isolated nodes keep their listed order.
func (d *Document) Build() (*core.Graph, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	var g *core.Graph
	if len(d.Adjacency) > 0 {
		adj := make(map[string][]core.Arc, len(d.Adjacency))
		for k, arcs := range d.Adjacency {
			out := make([]core.Arc, 0, len(arcs))
			for _, a := range arcs {
				out = append(out, core.Arc{To: a.To, Weight: a.Weight})
			}
			adj[k] = out
		}
		var err error
		if g, err = core.FromAdjacency(adj); err != nil {
			return nil, err
		}
	} else {
		g = core.NewGraph(core.WithDirected(d.Directed != nil && *d.Directed))
	}

	for _, n := range d.Nodes {
		if err := g.AddVertex(n); err != nil {
			return nil, err
		}
	}
	for i, e := range d.Edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("graphfile: edge %d: %w", i, err)
		}
	}

	return g, nil
}

// Decode reads one document from data. Unknown fields are rejected.
func Decode(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, fmt.Errorf("graphfile: parse: %w", err)
	}

	return &doc, nil
}

// Parse decodes data and builds the graph.
func Parse(data []byte) (*core.Graph, error) {
	doc, err := Decode(data)
	if err != nil {
		return nil, err
	}

	return doc.Build()
}

// Load reads and builds the graph stored at path.
func Load(path string) (*core.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("graphfile: read %s: %w", path, err)
	}
	g, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Marshal encodes g as an adjacency document. Decoding the result yields a
// graph with the same arcs.
func Marshal(g *core.Graph) ([]byte, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	doc := Document{Adjacency: make(map[string][]ArcSpec)}
	for id, arcs := range g.Adjacency() {
		specs := make([]ArcSpec, 0, len(arcs))
		for _, a := range arcs {
			specs = append(specs, ArcSpec{To: a.To, Weight: a.Weight})
		}
		doc.Adjacency[id] = specs
	}

	return yaml.Marshal(&doc)
}
