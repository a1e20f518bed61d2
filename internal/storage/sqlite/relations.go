package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/kinship/internal/models"
)

// CreateCouple persists a new couple.
func (s *queries) CreateCouple(ctx context.Context, couple *models.Couple) error {
	if couple.ID == "" {
		couple.ID = uuid.New().String()
	}
	if couple.CreatedAt == 0 {
		couple.CreatedAt = time.Now().Unix()
	}

	_, err := s.q.ExecContext(ctx,
		"INSERT INTO couples (id, husband_id, wife_id, created_at) VALUES (?, ?, ?, ?)",
		couple.ID, couple.HusbandID, couple.WifeID, couple.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert couple: %w", translateErr(err))
	}
	return nil
}

// ListCouplesByMembers returns the couples in which any member is a spouse.
func (s *queries) ListCouplesByMembers(ctx context.Context, memberIDs []string) ([]models.Couple, error) {
	if len(memberIDs) == 0 {
		return nil, nil
	}

	in := placeholders(len(memberIDs))
	args := append(stringArgs(memberIDs), stringArgs(memberIDs)...)
	rows, err := s.q.QueryContext(ctx,
		`SELECT id, husband_id, wife_id, created_at FROM couples
		 WHERE husband_id IN (`+in+`) OR wife_id IN (`+in+`)
		 ORDER BY created_at, id`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list couples: %w", err)
	}
	defer rows.Close()

	var couples []models.Couple
	for rows.Next() {
		var c models.Couple
		if err := rows.Scan(&c.ID, &c.HusbandID, &c.WifeID, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan couple: %w", err)
		}
		couples = append(couples, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate couples: %w", err)
	}
	return couples, nil
}

// DeleteCouple removes a couple by ID.
func (s *queries) DeleteCouple(ctx context.Context, coupleID string) error {
	res, err := s.q.ExecContext(ctx, "DELETE FROM couples WHERE id = ?", coupleID)
	if err != nil {
		return fmt.Errorf("failed to delete couple: %w", err)
	}
	return affectedOne(res, "couple "+coupleID)
}

// CreateParentChild persists a parent-child link.
func (s *queries) CreateParentChild(ctx context.Context, link models.ParentChild) error {
	_, err := s.q.ExecContext(ctx,
		"INSERT INTO parent_child (couple_id, child_id) VALUES (?, ?)",
		link.CoupleID, link.ChildID,
	)
	if err != nil {
		return fmt.Errorf("failed to insert parent-child link: %w", translateErr(err))
	}
	return nil
}

// ListParentChildByChildren returns the links of the given children.
func (s *queries) ListParentChildByChildren(ctx context.Context, childIDs []string) ([]models.ParentChild, error) {
	if len(childIDs) == 0 {
		return nil, nil
	}
	return s.listParentChild(ctx,
		`SELECT couple_id, child_id FROM parent_child WHERE child_id IN (`+placeholders(len(childIDs))+`) ORDER BY child_id`,
		stringArgs(childIDs)...,
	)
}

// ListParentChildByCouple returns the links of one couple.
func (s *queries) ListParentChildByCouple(ctx context.Context, coupleID string) ([]models.ParentChild, error) {
	return s.listParentChild(ctx,
		"SELECT couple_id, child_id FROM parent_child WHERE couple_id = ? ORDER BY child_id",
		coupleID,
	)
}

func (s *queries) listParentChild(ctx context.Context, query string, args ...any) ([]models.ParentChild, error) {
	rows, err := s.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list parent-child links: %w", err)
	}
	defer rows.Close()

	var links []models.ParentChild
	for rows.Next() {
		var l models.ParentChild
		if err := rows.Scan(&l.CoupleID, &l.ChildID); err != nil {
			return nil, fmt.Errorf("failed to scan parent-child link: %w", err)
		}
		links = append(links, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate parent-child links: %w", err)
	}
	return links, nil
}

// DeleteParentChild removes one (couple, child) link.
func (s *queries) DeleteParentChild(ctx context.Context, link models.ParentChild) error {
	res, err := s.q.ExecContext(ctx,
		"DELETE FROM parent_child WHERE couple_id = ? AND child_id = ?",
		link.CoupleID, link.ChildID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete parent-child link: %w", err)
	}
	return affectedOne(res, "parent-child link")
}
