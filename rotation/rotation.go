// Copyright ©2024 The Cayley-Dickson Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rotation analyzes the signed permutation group generated by
// right-multiplication in a Cayley-Dickson algebra's basis, decomposing
// it into the loops a basis-rotation diagram renders. It is a
// collaborator of the core cd package: it consumes a Cayley index
// table through cd.CayleyIndexMatrix and exports a level-agnostic
// Result a front-end can lay out without knowing the algebra's
// concrete Go type.
package rotation

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cayleydickson/cd"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/spatial/r2"
)

// MaxLevel is the highest doubling level [Analyze] supports. Above it
// the signed group has more elements than a rotation diagram can
// usefully render, and the brute-force generator search below becomes
// expensive; levels 0 through 5 (real through pathion) cover the
// algebras the original tool's diagrams were drawn for.
const MaxLevel = 5

// Vertex is one node of a rotation diagram: a signed basis index (see
// [signedGroup]) and its canonical label and layout position.
type Vertex struct {
	Index int
	Label string
	Pos   r2.Vec
}

// Edge is one arrow of a rotation diagram: right-multiplication by a
// generator carries basis element From to basis element To.
type Edge struct {
	From, To  int
	Generator int
}

// Loop is one cycle of a single generator's action on the signed
// group, in visitation order starting at its smallest-index vertex.
type Loop struct {
	Generator int
	Vertices  []int
}

// Result is the full output of [Analyze]: the diagram's vertices,
// edges and loop decomposition, plus a generator-to-color assignment a
// renderer can use to keep each generator's edges visually distinct.
type Result struct {
	Level      int
	Vertices   []Vertex
	Edges      []Edge
	Loops      []Loop
	Colors     map[int]int
	Generators []int
}

// Options controls vertex labeling and generator selection.
type Options struct {
	cd.Options

	// Layers, when non-empty, names the generators to use explicitly
	// instead of searching for a minimal connected set: each entry is
	// a decimal index, a translated letter, or a symbolic "eK"/"e_K"
	// name (per cd.Options.Translate/Element), optionally prefixed
	// with "-" to select the generator's negation. Mirrors group.py's
	// layers argument.
	Layers []string
	// Positives restricts the automatic generator search (Layers
	// unset) to the positive half of the signed range, 1..d-1.
	Positives bool
	// Negatives restricts the automatic generator search (Layers
	// unset) to the negative half of the signed range, d+1..2d-1.
	Negatives bool
}

// DefaultOptions returns the conventional vertex-labeling options with
// automatic generator search (no explicit Layers).
func DefaultOptions() Options {
	return Options{Options: cd.DefaultOptions()}
}

// Analyze builds the rotation diagram for the basis of the algebra at
// the given doubling level: the signed permutation group generated by
// right-multiplication, either a caller-chosen generating set (opts.Layers)
// or the minimal connected generating set found by search, and its loop
// decomposition. With explicit layers every named generator is
// decomposed into loops; with the automatic search only the first
// (primary) generator is.
//
// Analyze returns cd.ErrNotSupported above [MaxLevel]. At level 0 both
// signed generators are degenerate, so Analyze returns an error there
// as well.
func Analyze(level int, opts Options) (*Result, error) {
	if level < 0 || level > MaxLevel {
		return nil, cd.ErrNotSupported
	}
	table, err := cd.CayleyIndexMatrix(level)
	if err != nil {
		return nil, err
	}
	d := len(table)
	g := newSignedGroup(table)

	explicit := len(opts.Layers) > 0
	var gens []int
	if explicit {
		gens, err = explicitGenerators(g, level, opts)
	} else {
		gens, err = autoGenerators(g, opts)
	}
	if err != nil {
		return nil, err
	}

	n := 2 * d
	vertices := make([]Vertex, n)
	for k := 0; k < n; k++ {
		vertices[k] = Vertex{
			Index: k,
			Label: signedLabel(level, k, d, opts),
			Pos:   circlePos(k, n),
		}
	}

	colors := make(map[int]int, len(gens))
	var edges []Edge
	var loops []Loop
	for c, m := range gens {
		colors[m] = c
		for k := 0; k < n; k++ {
			edges = append(edges, Edge{From: k, To: g.mul(k, m), Generator: m})
		}
		if !explicit && c > 0 {
			continue
		}
		ls, err := decompose(g, m, n)
		if err != nil {
			return nil, err
		}
		loops = append(loops, ls...)
	}

	return &Result{
		Level:      level,
		Vertices:   vertices,
		Edges:      edges,
		Loops:      loops,
		Colors:     colors,
		Generators: gens,
	}, nil
}

// signedGroup is the N = 2d signed permutation group over a d x d
// unsigned Cayley table: index k for k < d names +e_k, index k for
// d <= k < 2d names -e_(k-d). Its multiplication closes the unsigned
// table's ring structure over both signs.
type signedGroup struct {
	d     int
	table [][]int
}

func newSignedGroup(table [][]int) *signedGroup {
	return &signedGroup{d: len(table), table: table}
}

// decode splits a signed index into its basis position and sign.
func (g *signedGroup) decode(k int) (pos int, sign int) {
	if k < g.d {
		return k, 1
	}
	return k - g.d, -1
}

// encode rejoins a basis position and sign into a signed index.
func (g *signedGroup) encode(pos, sign int) int {
	if sign < 0 {
		return pos + g.d
	}
	return pos
}

// mul returns the signed index of e_x * e_y under the algebra's
// multiplication, x and y given as signed indices.
func (g *signedGroup) mul(x, y int) int {
	xi, xs := g.decode(x)
	yi, ys := g.decode(y)
	entry := g.table[xi][yi]
	pos := entry - 1
	sign := xs * ys
	if entry < 0 {
		pos = -entry - 1
		sign = -sign
	}
	return g.encode(pos, sign)
}

// autoGenerators picks the smallest set of signed indices, in
// increasing order starting from 1, whose right-multiplications
// connect the full signed group into one component. Index 0 (the real
// unit, a no-op generator) and index d (its negation, also a no-op on
// the unsigned diagram) are skipped as degenerate. opts.Positives and
// opts.Negatives, if set, restrict the search to one half of the
// signed range, matching group.py's positives/negatives arguments.
func autoGenerators(g *signedGroup, opts Options) ([]int, error) {
	n := 2 * g.d
	lo, hi := 1, n
	switch {
	case opts.Positives && !opts.Negatives:
		hi = g.d
	case opts.Negatives && !opts.Positives:
		lo = g.d + 1
	}

	var gens []int
	dg := simple.NewUndirectedGraph()
	for k := 0; k < n; k++ {
		dg.AddNode(simple.Node(k))
	}
	for m := lo; m < hi; m++ {
		if m == g.d {
			continue
		}
		gens = append(gens, m)
		for k := 0; k < n; k++ {
			to := g.mul(k, m)
			if k == to {
				continue
			}
			dg.SetEdge(simple.Edge{F: simple.Node(k), T: simple.Node(to)})
		}
		if len(topo.ConnectedComponents(dg)) == 1 {
			return gens, nil
		}
	}
	return nil, fmt.Errorf("rotation: no generating set connects dimension %d", g.d)
}

// explicitGenerators resolves opts.Layers, in order, to signed
// generator indices, the group.py layers argument's Go counterpart:
// the caller names exactly the generators to use and no connectivity
// search or early stop applies. Degenerate selections naming index 0
// or its negation are rejected, since neither moves any vertex.
func explicitGenerators(g *signedGroup, level int, opts Options) ([]int, error) {
	gens := make([]int, 0, len(opts.Layers))
	for _, tok := range opts.Layers {
		m, err := resolveGenerator(level, g.d, tok, opts.Options)
		if err != nil {
			return nil, err
		}
		if m == 0 || m == g.d {
			return nil, fmt.Errorf("rotation: layer %q names the degenerate identity generator", tok)
		}
		gens = append(gens, m)
	}
	return gens, nil
}

// resolveGenerator parses a single layers token into a signed
// generator index: a decimal signed index, a translated letter, or a
// symbolic "eK"/"e_K" name, each optionally prefixed with "-".
func resolveGenerator(level, d int, tok string, opts cd.Options) (int, error) {
	tok = strings.TrimSpace(tok)
	neg := false
	if rest, ok := strings.CutPrefix(tok, "-"); ok {
		neg, tok = true, rest
	}

	var pos int
	switch {
	case isDecimal(tok):
		n, err := strconv.Atoi(tok)
		if err != nil {
			return 0, fmt.Errorf("rotation: invalid layer %q: %w", tok, err)
		}
		if n < 0 {
			neg, n = !neg, -n
		}
		if n >= (1 << uint(level)) {
			return 0, fmt.Errorf("rotation: layer %q out of range for level %d", tok, level)
		}
		pos = n
	default:
		elem := opts.Element
		if elem == "" {
			elem = "e"
		}
		name := tok
		if rest, ok := strings.CutPrefix(tok, elem); ok && isDecimal(rest) {
			name = elem + "_" + rest
		}
		n, err := cd.ParseLabel(level, name, opts)
		if err != nil {
			return 0, fmt.Errorf("rotation: invalid layer %q: %w", tok, err)
		}
		pos = n
	}

	if neg {
		return pos + d, nil
	}
	return pos, nil
}

// isDecimal reports whether s is a (possibly signed) run of digits.
func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '+' || s[0] == '-' {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// decompose returns the cycle decomposition of generator m's action on
// the signed group, one [Loop] per connected component of its induced
// graph, each walked from its smallest-index vertex by repeated
// right-multiplication until it returns to its start.
func decompose(g *signedGroup, m, n int) ([]Loop, error) {
	dg := simple.NewUndirectedGraph()
	for k := 0; k < n; k++ {
		dg.AddNode(simple.Node(k))
	}
	for k := 0; k < n; k++ {
		to := g.mul(k, m)
		if k == to {
			continue
		}
		dg.SetEdge(simple.Edge{F: simple.Node(k), T: simple.Node(to)})
	}

	var loops []Loop
	for _, comp := range topo.ConnectedComponents(dg) {
		start := minNodeID(comp)
		loops = append(loops, Loop{Generator: m, Vertices: cycleFrom(g, start, m)})
	}
	return loops, nil
}

// cycleFrom walks the orbit of start under repeated right
// multiplication by m, returning the visitation order before it
// returns to start.
func cycleFrom(g *signedGroup, start, m int) []int {
	cycle := []int{start}
	cur := g.mul(start, m)
	for cur != start {
		cycle = append(cycle, cur)
		cur = g.mul(cur, m)
	}
	return cycle
}

func minNodeID(nodes []graph.Node) int {
	min := int(nodes[0].ID())
	for _, n := range nodes[1:] {
		if id := int(n.ID()); id < min {
			min = id
		}
	}
	return min
}

// circlePos returns the deterministic unit-circle layout position of
// vertex k of n, evenly spaced starting at angle zero. gonum's
// graph/layout force-directed optimizer is not used here: a rotation
// diagram's vertices are meant to sit on a fixed ring, not settle into
// a force equilibrium.
func circlePos(k, n int) r2.Vec {
	theta := 2 * math.Pi * float64(k) / float64(n)
	return r2.Vec{X: math.Cos(theta), Y: math.Sin(theta)}
}

// signedLabel formats signed index k (see [signedGroup]) using cd's
// basis labeling, prefixing a negative sign for the upper half of the
// signed range.
func signedLabel(level, k, d int, opts Options) string {
	if k < d {
		return cd.Label(level, k, opts.Options)
	}
	return "-" + cd.Label(level, k-d, opts.Options)
}
