package treegraph

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Direction is the axis generations advance along.
type Direction string

const (
	DirectionDown  Direction = "DOWN"
	DirectionRight Direction = "RIGHT"
)

// ErrInvalidDirection is returned for a direction other than DOWN or RIGHT.
var ErrInvalidDirection = errors.New("direction must be DOWN or RIGHT")

// ParseDirection accepts DOWN or RIGHT in any case; empty means DOWN.
func ParseDirection(s string) (Direction, error) {
	switch Direction(strings.ToUpper(strings.TrimSpace(s))) {
	case "", DirectionDown:
		return DirectionDown, nil
	case DirectionRight:
		return DirectionRight, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// Options controls node sizes and spacing. Zero sizes take the defaults.
type Options struct {
	Direction    Direction
	NodeWidth    float64
	NodeHeight   float64
	LayerSpacing float64 // gap between generations
	NodeSpacing  float64 // gap between nodes of one generation
}

// DefaultOptions returns a top-down layout with 150x50 nodes.
func DefaultOptions() Options {
	return Options{
		Direction:    DirectionDown,
		NodeWidth:    150,
		NodeHeight:   50,
		LayerSpacing: 100,
		NodeSpacing:  80,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Direction == "" {
		o.Direction = d.Direction
	}
	if o.NodeWidth <= 0 {
		o.NodeWidth = d.NodeWidth
	}
	if o.NodeHeight <= 0 {
		o.NodeHeight = d.NodeHeight
	}
	if o.LayerSpacing <= 0 {
		o.LayerSpacing = d.LayerSpacing
	}
	if o.NodeSpacing <= 0 {
		o.NodeSpacing = d.NodeSpacing
	}
	return o
}

// PositionedNode is a node with its top-left corner and generation.
type PositionedNode struct {
	Node
	X     float64
	Y     float64
	Layer int
}

// Layout is a graph with coordinates merged onto its nodes.
type Layout struct {
	Direction Direction
	Nodes     []PositionedNode
	Edges     []Edge
}

// Layouter assigns coordinates to a graph. Implementations must be pure:
// the same graph and options always produce the same layout.
type Layouter interface {
	Layout(g Graph, opts Options) (*Layout, error)
}

// Layered is the default Layouter. Spouses share a layer and sit side by
// side, children sit in a later layer than both parents, and each layer is
// ordered by the average position of the parents of its nodes. Cycles,
// which only inconsistent data can produce, are broken instead of failing.
type Layered struct{}

var _ Layouter = Layered{}

// unit is a run of nodes kept together in one layer: a couple or a single member.
type unit struct {
	nodes []int
	preds []int
	rank  int
	key   float64
}

// Layout implements Layouter.
func (Layered) Layout(g Graph, opts Options) (*Layout, error) {
	opts = opts.withDefaults()
	if _, err := ParseDirection(string(opts.Direction)); err != nil {
		return nil, err
	}

	index := make(map[string]int, len(g.Nodes))
	for i, n := range g.Nodes {
		if n.ID == "" {
			return nil, fmt.Errorf("node %d has an empty ID", i)
		}
		if _, dup := index[n.ID]; dup {
			return nil, fmt.Errorf("duplicate node ID %q", n.ID)
		}
		index[n.ID] = i
	}

	units, unitOf := groupUnits(g, index)
	linkUnits(g, index, units, unitOf)
	layers := rankUnits(units)

	cross := opts.NodeWidth + opts.NodeSpacing
	depth := opts.NodeHeight + opts.LayerSpacing
	if opts.Direction == DirectionRight {
		cross = opts.NodeHeight + opts.NodeSpacing
		depth = opts.NodeWidth + opts.LayerSpacing
	}

	widest := 0
	for _, layer := range layers {
		size := 0
		for _, u := range layer {
			size += len(units[u].nodes)
		}
		widest = max(widest, size)
	}

	slot := make([]float64, len(g.Nodes))
	for r, layer := range layers {
		if r > 0 {
			orderByParents(layer, units, unitOf, g, index, slot)
		}
		size := 0
		for _, u := range layer {
			size += len(units[u].nodes)
		}
		offset := float64(widest-size) / 2
		pos := 0
		for _, u := range layer {
			for _, n := range units[u].nodes {
				slot[n] = (offset + float64(pos)) * cross
				pos++
			}
		}
	}

	out := &Layout{
		Direction: opts.Direction,
		Nodes:     make([]PositionedNode, len(g.Nodes)),
		Edges:     append([]Edge(nil), g.Edges...),
	}
	for i, n := range g.Nodes {
		r := units[unitOf[i]].rank
		p := PositionedNode{Node: n, Layer: r, X: slot[i], Y: float64(r) * depth}
		if opts.Direction == DirectionRight {
			p.X, p.Y = p.Y, p.X
		}
		out.Nodes[i] = p
	}
	return out, nil
}

// groupUnits joins spouses into units. Unit and in-unit order follow the
// order of the spousal edges (husband first), then the node order.
func groupUnits(g Graph, index map[string]int) ([]*unit, []int) {
	parent := make([]int, len(g.Nodes))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		for parent[i] != i {
			parent[i] = parent[parent[i]]
			i = parent[i]
		}
		return i
	}

	var order []int
	for _, e := range g.Edges {
		if e.Kind != EdgeSpousal {
			continue
		}
		s, okS := index[e.Source]
		t, okT := index[e.Target]
		if !okS || !okT || s == t {
			continue
		}
		order = append(order, s, t)
		if rs, rt := find(s), find(t); rs != rt {
			parent[rt] = rs
		}
	}
	for i := range g.Nodes {
		order = append(order, i)
	}

	unitOf := make([]int, len(g.Nodes))
	for i := range unitOf {
		unitOf[i] = -1
	}
	rootUnit := make(map[int]int)
	var units []*unit
	for _, n := range order {
		if unitOf[n] >= 0 {
			continue
		}
		root := find(n)
		u, ok := rootUnit[root]
		if !ok {
			u = len(units)
			rootUnit[root] = u
			units = append(units, &unit{})
		}
		units[u].nodes = append(units[u].nodes, n)
		unitOf[n] = u
	}
	return units, unitOf
}

// linkUnits records, for each unit, the units holding its nodes' parents.
func linkUnits(g Graph, index map[string]int, units []*unit, unitOf []int) {
	seen := make(map[[2]int]bool)
	for _, e := range g.Edges {
		if e.Kind != EdgeParental {
			continue
		}
		s, okS := index[e.Source]
		t, okT := index[e.Target]
		if !okS || !okT {
			continue
		}
		from, to := unitOf[s], unitOf[t]
		if from == to || seen[[2]int{from, to}] {
			continue
		}
		seen[[2]int{from, to}] = true
		units[to].preds = append(units[to].preds, from)
	}
}

// rankUnits assigns each unit the longest parental path leading to it and
// groups units by rank. An edge back into a unit still being ranked closes a
// cycle and is ignored.
func rankUnits(units []*unit) [][]int {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make([]int, len(units))

	var visit func(u int) int
	visit = func(u int) int {
		switch state[u] {
		case done:
			return units[u].rank
		case visiting:
			return -1
		}
		state[u] = visiting
		rank := 0
		for _, p := range units[u].preds {
			if pr := visit(p); pr >= 0 && pr+1 > rank {
				rank = pr + 1
			}
		}
		state[u] = done
		units[u].rank = rank
		return rank
	}

	var layers [][]int
	for u := range units {
		r := visit(u)
		for len(layers) <= r {
			layers = append(layers, nil)
		}
	}
	for u := range units {
		r := units[u].rank
		layers[r] = append(layers[r], u)
	}
	return layers
}

// orderByParents sorts a layer by the mean slot of each unit's parents.
// Units without placed parents keep their relative place.
func orderByParents(layer []int, units []*unit, unitOf []int, g Graph, index map[string]int, slot []float64) {
	parentsOf := make(map[int][]int)
	for _, e := range g.Edges {
		if e.Kind != EdgeParental {
			continue
		}
		s, okS := index[e.Source]
		t, okT := index[e.Target]
		if !okS || !okT {
			continue
		}
		if units[unitOf[s]].rank < units[unitOf[t]].rank {
			parentsOf[unitOf[t]] = append(parentsOf[unitOf[t]], s)
		}
	}

	for i, u := range layer {
		ps := parentsOf[u]
		if len(ps) == 0 {
			units[u].key = -1
			if i > 0 {
				units[u].key = units[layer[i-1]].key
			}
			continue
		}
		sum := 0.0
		for _, p := range ps {
			sum += slot[p]
		}
		units[u].key = sum / float64(len(ps))
	}

	sort.SliceStable(layer, func(i, j int) bool {
		return units[layer[i]].key < units[layer[j]].key
	})
}
