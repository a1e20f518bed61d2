// Package family resolves which members belong to a family, which do not
// yet, and which members are still free to enter a new relationship.
package family

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/mmynk/kinship/internal/models"
	"github.com/mmynk/kinship/internal/storage"
)

// Store is the slice of storage the aggregator reads from.
type Store interface {
	GetFamily(ctx context.Context, ownerID, familyID string) (*models.Family, error)
	ListMembers(ctx context.Context, ownerID string) ([]models.Member, error)
	ListFamilyMemberIDs(ctx context.Context, familyID string) ([]string, error)
	ListFamilyMembers(ctx context.Context, familyID string) ([]models.Member, error)
	ListCouplesByMembers(ctx context.Context, memberIDs []string) ([]models.Couple, error)
	ListParentChildByChildren(ctx context.Context, childIDs []string) ([]models.ParentChild, error)
}

var _ Store = (storage.Store)(nil)

// Aggregator answers membership and candidate-pool queries.
type Aggregator struct {
	store Store
}

// NewAggregator creates an Aggregator over the given store.
func NewAggregator(store Store) *Aggregator {
	return &Aggregator{store: store}
}

// Snapshot is everything the tree builder needs for one family.
type Snapshot struct {
	Family  models.Family
	Members []models.Member
	Couples []models.Couple
	Links   []models.ParentChild
}

// RecommendedMembers returns the owner's members that are not in the family,
// ordered by name.
func (a *Aggregator) RecommendedMembers(ctx context.Context, ownerID, familyID string) ([]models.MemberSummary, error) {
	if _, err := a.store.GetFamily(ctx, ownerID, familyID); err != nil {
		return nil, err
	}

	members, err := a.store.ListMembers(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	inFamily, err := a.store.ListFamilyMemberIDs(ctx, familyID)
	if err != nil {
		return nil, err
	}
	return Summaries(Exclude(members, inFamily)), nil
}

// FamilyMembers returns the family's members, ordered by name.
func (a *Aggregator) FamilyMembers(ctx context.Context, ownerID, familyID string) ([]models.MemberSummary, error) {
	if _, err := a.store.GetFamily(ctx, ownerID, familyID); err != nil {
		return nil, err
	}

	members, err := a.store.ListFamilyMembers(ctx, familyID)
	if err != nil {
		return nil, err
	}
	return Summaries(SortByName(members)), nil
}

// UnmarriedOfGender returns the owner's members of the given gender that do
// not hold the matching role (husband for true, wife for false) in any couple.
func (a *Aggregator) UnmarriedOfGender(ctx context.Context, ownerID string, gender bool) ([]models.MemberSummary, error) {
	members, err := a.store.ListMembers(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	couples, err := a.store.ListCouplesByMembers(ctx, IDs(members))
	if err != nil {
		return nil, err
	}
	return Summaries(Unmarried(members, couples, gender)), nil
}

// RemainingChildren returns the owner's members that are nobody's child yet.
func (a *Aggregator) RemainingChildren(ctx context.Context, ownerID string) ([]models.MemberSummary, error) {
	members, err := a.store.ListMembers(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	links, err := a.store.ListParentChildByChildren(ctx, IDs(members))
	if err != nil {
		return nil, err
	}
	return Summaries(Unparented(members, links)), nil
}

// Tree loads the members of a family together with the couples touching
// them and the parent-child rows of their children.
func (a *Aggregator) Tree(ctx context.Context, ownerID, familyID string) (*Snapshot, error) {
	family, err := a.store.GetFamily(ctx, ownerID, familyID)
	if err != nil {
		return nil, err
	}

	members, err := a.store.ListFamilyMembers(ctx, familyID)
	if err != nil {
		return nil, err
	}
	ids := IDs(members)

	snap := &Snapshot{Family: *family, Members: members}
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		couples, err := a.store.ListCouplesByMembers(gCtx, ids)
		snap.Couples = couples
		return err
	})
	g.Go(func() error {
		links, err := a.store.ListParentChildByChildren(gCtx, ids)
		snap.Links = links
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snap, nil
}

// Exclude returns the members whose ID is not listed, ordered by name.
func Exclude(members []models.Member, ids []string) []models.Member {
	skip := make(map[string]bool, len(ids))
	for _, id := range ids {
		skip[id] = true
	}
	var out []models.Member
	for _, m := range members {
		if !skip[m.ID] {
			out = append(out, m)
		}
	}
	return SortByName(out)
}

// Unmarried returns the members of the gender that hold no matching couple role.
func Unmarried(members []models.Member, couples []models.Couple, gender bool) []models.Member {
	taken := make(map[string]bool, len(couples))
	for _, c := range couples {
		if gender {
			taken[c.HusbandID] = true
		} else {
			taken[c.WifeID] = true
		}
	}
	var out []models.Member
	for _, m := range members {
		if m.Gender == gender && !taken[m.ID] {
			out = append(out, m)
		}
	}
	return SortByName(out)
}

// Unparented returns the members that are not the child in any link.
func Unparented(members []models.Member, links []models.ParentChild) []models.Member {
	parented := make(map[string]bool, len(links))
	for _, l := range links {
		parented[l.ChildID] = true
	}
	var out []models.Member
	for _, m := range members {
		if !parented[m.ID] {
			out = append(out, m)
		}
	}
	return SortByName(out)
}

// SortByName orders members by name, then ID, in place and returns them.
func SortByName(members []models.Member) []models.Member {
	sort.SliceStable(members, func(i, j int) bool {
		if members[i].Name != members[j].Name {
			return members[i].Name < members[j].Name
		}
		return members[i].ID < members[j].ID
	})
	return members
}

// IDs lists the member IDs in order.
func IDs(members []models.Member) []string {
	ids := make([]string, len(members))
	for i, m := range members {
		ids[i] = m.ID
	}
	return ids
}

// Summaries projects members to summaries.
func Summaries(members []models.Member) []models.MemberSummary {
	out := make([]models.MemberSummary, len(members))
	for i, m := range members {
		out[i] = m.Summary()
	}
	return out
}
