package relation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/mmynk/kinship/internal/metrics"
	"github.com/mmynk/kinship/internal/models"
	"github.com/mmynk/kinship/internal/storage"
)

// Store is the slice of storage the mutator needs.
type Store interface {
	storage.MemberReader
	storage.RelationStore
	WithTx(ctx context.Context, fn func(tx storage.Tx) error) error
}

// Mutator applies validated relationship changes. Each write runs its reads,
// validation and write inside one store transaction.
type Mutator struct {
	store Store
}

// NewMutator creates a Mutator over the given store.
func NewMutator(store Store) *Mutator {
	return &Mutator{store: store}
}

// LinkResult reports the outcome of a parent-child batch.
type LinkResult struct {
	CoupleID string
	Accepted []string
	Skipped  []Skipped
}

// AcceptedCount is the number of children linked.
func (r LinkResult) AcceptedCount() int {
	return len(r.Accepted)
}

// CreateCouple marries memberID and partnerID. Both must belong to ownerID.
func (m *Mutator) CreateCouple(ctx context.Context, ownerID, memberID, partnerID string) (*models.Couple, error) {
	var couple *models.Couple
	err := m.store.WithTx(ctx, func(tx storage.Tx) error {
		a, b, err := loadPair(ctx, tx, ownerID, memberID, partnerID)
		if err != nil {
			return err
		}

		couples, err := tx.ListCouplesByMembers(ctx, []string{a.ID, b.ID})
		if err != nil {
			return err
		}

		pair, err := ValidateCouple(*a, *b, couples)
		if err != nil {
			return err
		}

		c := &models.Couple{HusbandID: pair.HusbandID, WifeID: pair.WifeID}
		if err := tx.CreateCouple(ctx, c); err != nil {
			if errors.Is(err, storage.ErrConflict) {
				// Another writer married one of them; report which.
				return revalidateCouple(ctx, tx, *a, *b, err)
			}
			return err
		}
		couple = c
		return nil
	})
	observe("create_couple", err)
	if err != nil {
		return nil, err
	}

	slog.Debug("Couple created", "couple_id", couple.ID, "husband_id", couple.HusbandID, "wife_id", couple.WifeID)
	return couple, nil
}

// GetCouple returns the couple in which the member plays its gender role.
func (m *Mutator) GetCouple(ctx context.Context, ownerID, memberID string) (*models.Couple, error) {
	member, err := m.store.GetMember(ctx, ownerID, memberID)
	if err != nil {
		return nil, err
	}
	couples, err := m.store.ListCouplesByMembers(ctx, []string{member.ID})
	if err != nil {
		return nil, err
	}
	couple, err := ResolveCouple(*member, couples)
	if err != nil {
		return nil, err
	}
	return &couple, nil
}

// DeleteCouple removes the member's couple. Parent-child rows of the couple
// are deleted with it.
func (m *Mutator) DeleteCouple(ctx context.Context, ownerID, memberID string) error {
	err := m.store.WithTx(ctx, func(tx storage.Tx) error {
		couple, err := resolveInTx(ctx, tx, ownerID, memberID)
		if err != nil {
			return err
		}
		if err := tx.DeleteCouple(ctx, couple.ID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return reject(ReasonNotMarried)
			}
			return err
		}
		return nil
	})
	observe("delete_couple", err)
	return err
}

// CreateParentChildLinks links every acceptable child to the parent's couple.
// Children that are unknown, already parented or duplicated are skipped; the
// call only fails as a whole when the parent cannot be resolved to a couple
// or the store fails.
func (m *Mutator) CreateParentChildLinks(ctx context.Context, ownerID, parentID string, childIDs []string) (LinkResult, error) {
	var result LinkResult
	err := m.store.WithTx(ctx, func(tx storage.Tx) error {
		couple, err := resolveInTx(ctx, tx, ownerID, parentID)
		if err != nil {
			return err
		}

		known, err := tx.GetMembersByIDs(ctx, ownerID, childIDs)
		if err != nil {
			return err
		}

		var candidates []string
		var skipped []Skipped
		for _, id := range childIDs {
			if _, ok := known[id]; !ok {
				skipped = append(skipped, Skipped{ChildID: id, Reason: ReasonNotFound})
				continue
			}
			candidates = append(candidates, id)
		}

		// One snapshot for the whole batch.
		links, err := tx.ListParentChildByChildren(ctx, candidates)
		if err != nil {
			return err
		}
		sel := SelectChildren(couple.ID, candidates, links)
		skipped = append(skipped, sel.Skipped...)

		var accepted []string
		for _, childID := range sel.Accepted {
			err := tx.CreateParentChild(ctx, models.ParentChild{CoupleID: couple.ID, ChildID: childID})
			if errors.Is(err, storage.ErrConflict) {
				skipped = append(skipped, Skipped{ChildID: childID, Reason: ReasonChildAlreadyParented})
				continue
			}
			if err != nil {
				return err
			}
			accepted = append(accepted, childID)
		}

		result = LinkResult{CoupleID: couple.ID, Accepted: accepted, Skipped: skipped}
		return nil
	})
	observe("create_parent_child", err)
	if err != nil {
		return LinkResult{}, err
	}

	metrics.LinkedChildren.Observe(float64(result.AcceptedCount()))
	for _, s := range result.Skipped {
		slog.Debug("Child skipped", "parent_id", parentID, "child_id", s.ChildID, "reason", s.Reason)
	}
	return result, nil
}

// GetChildren returns the member's couple and its children ordered by name.
func (m *Mutator) GetChildren(ctx context.Context, ownerID, parentID string) (*models.Couple, []models.MemberSummary, error) {
	couple, err := m.GetCouple(ctx, ownerID, parentID)
	if err != nil {
		return nil, nil, err
	}

	links, err := m.store.ListParentChildByCouple(ctx, couple.ID)
	if err != nil {
		return nil, nil, err
	}
	ids := make([]string, len(links))
	for i, l := range links {
		ids[i] = l.ChildID
	}

	members, err := m.store.GetMembersByIDs(ctx, ownerID, ids)
	if err != nil {
		return nil, nil, err
	}

	children := make([]models.MemberSummary, 0, len(members))
	for _, id := range ids {
		if member, ok := members[id]; ok {
			children = append(children, member.Summary())
		}
	}
	sort.SliceStable(children, func(i, j int) bool {
		if children[i].Name != children[j].Name {
			return children[i].Name < children[j].Name
		}
		return children[i].ID < children[j].ID
	})
	return couple, children, nil
}

// DeleteParentChildLink removes the link between the parent's couple and the child.
func (m *Mutator) DeleteParentChildLink(ctx context.Context, ownerID, parentID, childID string) error {
	err := m.store.WithTx(ctx, func(tx storage.Tx) error {
		couple, err := resolveInTx(ctx, tx, ownerID, parentID)
		if err != nil {
			return err
		}

		links, err := tx.ListParentChildByChildren(ctx, []string{childID})
		if err != nil {
			return err
		}
		if !LinkExists(couple.ID, childID, links) {
			return reject(ReasonCombinationNotFound)
		}

		return tx.DeleteParentChild(ctx, models.ParentChild{CoupleID: couple.ID, ChildID: childID})
	})
	observe("delete_parent_child", err)
	return err
}

// UpdateMember applies a partial member update. A gender change is refused
// while the member is married.
func (m *Mutator) UpdateMember(ctx context.Context, update *models.MemberUpdate) (*models.Member, error) {
	var updated *models.Member
	err := m.store.WithTx(ctx, func(tx storage.Tx) error {
		member, err := tx.GetMember(ctx, update.OwnerID, update.ID)
		if err != nil {
			return err
		}

		if update.Gender != nil {
			couples, err := tx.ListCouplesByMembers(ctx, []string{member.ID})
			if err != nil {
				return err
			}
			if err := ValidateGenderChange(*member, *update.Gender, couples); err != nil {
				return err
			}
		}

		if err := tx.UpdateMember(ctx, update); err != nil {
			return err
		}
		updated, err = tx.GetMember(ctx, update.OwnerID, update.ID)
		return err
	})
	if update.Gender != nil {
		observe("update_gender", err)
	}
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// loadPair fetches both members of a proposed couple.
func loadPair(ctx context.Context, tx storage.Tx, ownerID, memberID, partnerID string) (*models.Member, *models.Member, error) {
	members, err := tx.GetMembersByIDs(ctx, ownerID, []string{memberID, partnerID})
	if err != nil {
		return nil, nil, err
	}
	a, ok := members[memberID]
	if !ok {
		return nil, nil, fmt.Errorf("member %s: %w", memberID, storage.ErrNotFound)
	}
	b, ok := members[partnerID]
	if !ok {
		return nil, nil, fmt.Errorf("member %s: %w", partnerID, storage.ErrNotFound)
	}
	return a, b, nil
}

// resolveInTx loads the member and its couple within the transaction.
func resolveInTx(ctx context.Context, tx storage.Tx, ownerID, memberID string) (models.Couple, error) {
	member, err := tx.GetMember(ctx, ownerID, memberID)
	if err != nil {
		return models.Couple{}, err
	}
	couples, err := tx.ListCouplesByMembers(ctx, []string{member.ID})
	if err != nil {
		return models.Couple{}, err
	}
	return ResolveCouple(*member, couples)
}

// revalidateCouple turns a unique-constraint failure into the validation
// error the fresh state implies, falling back to the store error.
func revalidateCouple(ctx context.Context, tx storage.Tx, a, b models.Member, storeErr error) error {
	couples, err := tx.ListCouplesByMembers(ctx, []string{a.ID, b.ID})
	if err != nil {
		return storeErr
	}
	if _, err := ValidateCouple(a, b, couples); err != nil {
		return err
	}
	return storeErr
}

// observe records the outcome of a mutation.
func observe(operation string, err error) {
	result := "accepted"
	if err != nil {
		result = "error"
		if reason, ok := ReasonOf(err); ok {
			result = string(reason)
		} else if errors.Is(err, storage.ErrNotFound) {
			result = "not_found"
		}
	}
	metrics.RelationOutcomes.WithLabelValues(operation, result).Inc()
}
