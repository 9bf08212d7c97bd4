// SPDX-License-Identifier: MIT

package graphfile

import "github.com/katalvlaran/waypath/core"

// SampleYAML is the built-in demo graph: a four-node weighted diamond plus
// one isolated node.
//
//	    A ──1── B
//	    │     ╱ │
//	    4   2   6
//	    │ ╱     │
//	    C ──1── D        E
const SampleYAML = `directed: false
nodes: [A, B, C, D, E]
edges:
  - {from: A, to: B, weight: 1}
  - {from: A, to: C, weight: 4}
  - {from: B, to: C, weight: 2}
  - {from: B, to: D, weight: 6}
  - {from: C, to: D, weight: 1}
`

// Sample returns a fresh copy of the built-in demo graph.
func Sample() *core.Graph {
	g, err := Parse([]byte(SampleYAML))
	if err != nil {
		// SampleYAML is a compile-time constant; failure here is a bug.
		panic(err)
	}

	return g
}
