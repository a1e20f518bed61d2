// Package treegraph turns a family's members, couples and parent-child links
// into a directed graph and lays that graph out in layers.
package treegraph

import "github.com/mmynk/kinship/internal/models"

// EdgeKind separates marriage edges from generation edges.
type EdgeKind string

const (
	// EdgeSpousal runs husband -> wife. It is not a hierarchy edge.
	EdgeSpousal EdgeKind = "spousal"
	// EdgeParental runs parent -> child.
	EdgeParental EdgeKind = "parental"
)

// Node is one member.
type Node struct {
	ID    string
	Label string
}

// Edge is a directed connection between two nodes.
type Edge struct {
	ID     string
	Source string
	Target string
	Kind   EdgeKind
}

// Graph is the unpositioned family graph.
type Graph struct {
	Nodes []Node
	Edges []Edge

	// Omitted counts edges dropped because their couple did not resolve or
	// an endpoint is not a node of the graph.
	Omitted int
}

// Build assembles the graph. It has no side effects and never fails: rows
// that cannot be resolved only drop the edges they would have produced.
func Build(members []models.Member, couples []models.Couple, links []models.ParentChild) Graph {
	g := Graph{Nodes: make([]Node, 0, len(members))}

	present := make(map[string]bool, len(members))
	for _, m := range members {
		if present[m.ID] {
			continue
		}
		present[m.ID] = true
		g.Nodes = append(g.Nodes, Node{ID: m.ID, Label: m.Name})
	}

	addEdge := func(e Edge) {
		if !present[e.Source] || !present[e.Target] {
			g.Omitted++
			return
		}
		g.Edges = append(g.Edges, e)
	}

	byID := make(map[string]models.Couple, len(couples))
	for _, c := range couples {
		byID[c.ID] = c
		addEdge(Edge{
			ID:     "couple-" + c.ID,
			Source: c.HusbandID,
			Target: c.WifeID,
			Kind:   EdgeSpousal,
		})
	}

	for _, l := range links {
		c, ok := byID[l.CoupleID]
		if !ok {
			g.Omitted += 2
			continue
		}
		addEdge(Edge{
			ID:     "parent-h-" + c.HusbandID + "-" + l.ChildID,
			Source: c.HusbandID,
			Target: l.ChildID,
			Kind:   EdgeParental,
		})
		addEdge(Edge{
			ID:     "parent-w-" + c.WifeID + "-" + l.ChildID,
			Source: c.WifeID,
			Target: l.ChildID,
			Kind:   EdgeParental,
		})
	}

	return g
}

// CountKind returns how many edges of the kind the graph holds.
func (g Graph) CountKind(kind EdgeKind) int {
	n := 0
	for _, e := range g.Edges {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
