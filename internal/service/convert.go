package service

import (
	"fmt"
	"time"

	"github.com/mmynk/kinship/internal/models"
	"github.com/mmynk/kinship/internal/relation"
	"github.com/mmynk/kinship/internal/treegraph"
	"github.com/mmynk/kinship/pkg/api"
)

const dateLayout = "2006-01-02"

func toAPIUser(u *models.User) *api.User {
	return &api.User{
		Id:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		CreatedAt:   u.CreatedAt,
	}
}

func toAPIMember(m *models.Member) *api.Member {
	return &api.Member{
		Id:          m.ID,
		Name:        m.Name,
		Gender:      m.Gender,
		Age:         m.Age,
		DateOfBirth: formatDate(m.DateOfBirth),
		DateOfDeath: formatDate(m.DateOfDeath),
		BloodGroup:  m.BloodGroup,
		CreatedAt:   m.CreatedAt,
	}
}

func toAPISummaries(members []models.MemberSummary) []*api.MemberSummary {
	out := make([]*api.MemberSummary, len(members))
	for i, m := range members {
		out[i] = &api.MemberSummary{Id: m.ID, Name: m.Name, Age: m.Age}
	}
	return out
}

func toAPICouple(c *models.Couple) *api.Couple {
	return &api.Couple{
		Id:        c.ID,
		HusbandId: c.HusbandID,
		WifeId:    c.WifeID,
		CreatedAt: c.CreatedAt,
	}
}

func toAPIFamily(f *models.Family) *api.Family {
	return &api.Family{
		Id:        f.ID,
		Name:      f.Name,
		CreatedAt: f.CreatedAt,
	}
}

func toAPISkipped(skipped []relation.Skipped) []*api.SkippedChild {
	out := make([]*api.SkippedChild, len(skipped))
	for i, s := range skipped {
		out[i] = &api.SkippedChild{ChildId: s.ChildID, Reason: string(s.Reason)}
	}
	return out
}

func toAPIGraph(layout *treegraph.Layout) ([]*api.GraphNode, []*api.GraphEdge) {
	nodes := make([]*api.GraphNode, len(layout.Nodes))
	for i, n := range layout.Nodes {
		nodes[i] = &api.GraphNode{Id: n.ID, Label: n.Label, X: n.X, Y: n.Y, Layer: n.Layer}
	}
	edges := make([]*api.GraphEdge, len(layout.Edges))
	for i, e := range layout.Edges {
		edges[i] = &api.GraphEdge{Id: e.ID, Source: e.Source, Target: e.Target, Kind: string(e.Kind)}
	}
	return nodes, edges
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

// parseDate reads an optional YYYY-MM-DD date; "" means unset.
func parseDate(field, s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("%s must be a date in YYYY-MM-DD format", field)
	}
	return &t, nil
}

// checkLifespan rejects a death date before the birth date.
func checkLifespan(birth, death *time.Time) error {
	if birth != nil && death != nil && death.Before(*birth) {
		return fmt.Errorf("dateOfDeath must not be before dateOfBirth")
	}
	return nil
}
