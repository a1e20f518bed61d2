package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/kinship/internal/models"
	"github.com/mmynk/kinship/internal/storage"
)

// CreateFamily persists a new family.
func (s *queries) CreateFamily(ctx context.Context, family *models.Family) error {
	if family.ID == "" {
		family.ID = uuid.New().String()
	}
	if family.CreatedAt == 0 {
		family.CreatedAt = time.Now().Unix()
	}

	_, err := s.q.ExecContext(ctx,
		"INSERT INTO families (id, owner_id, name, created_at) VALUES (?, ?, ?, ?)",
		family.ID, family.OwnerID, family.Name, family.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert family: %w", translateErr(err))
	}
	return nil
}

// GetFamily retrieves a family by ID, scoped to its owner.
func (s *queries) GetFamily(ctx context.Context, ownerID, familyID string) (*models.Family, error) {
	family := &models.Family{}
	err := s.q.QueryRowContext(ctx,
		"SELECT id, owner_id, name, created_at FROM families WHERE id = ? AND owner_id = ?",
		familyID, ownerID,
	).Scan(&family.ID, &family.OwnerID, &family.Name, &family.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("family %s: %w", familyID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get family: %w", err)
	}
	return family, nil
}

// ListFamilies returns the owner's families ordered by name.
func (s *queries) ListFamilies(ctx context.Context, ownerID string) ([]models.Family, error) {
	rows, err := s.q.QueryContext(ctx,
		"SELECT id, owner_id, name, created_at FROM families WHERE owner_id = ? ORDER BY name",
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list families: %w", err)
	}
	defer rows.Close()

	var families []models.Family
	for rows.Next() {
		var f models.Family
		if err := rows.Scan(&f.ID, &f.OwnerID, &f.Name, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan family: %w", err)
		}
		families = append(families, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate families: %w", err)
	}
	return families, nil
}

// RenameFamily changes a family's name.
func (s *queries) RenameFamily(ctx context.Context, ownerID, familyID, name string) error {
	res, err := s.q.ExecContext(ctx,
		"UPDATE families SET name = ? WHERE id = ? AND owner_id = ?",
		name, familyID, ownerID,
	)
	if err != nil {
		return fmt.Errorf("failed to rename family: %w", translateErr(err))
	}
	return affectedOne(res, "family "+familyID)
}

// DeleteFamily removes a family; memberships cascade.
func (s *queries) DeleteFamily(ctx context.Context, ownerID, familyID string) error {
	res, err := s.q.ExecContext(ctx,
		"DELETE FROM families WHERE id = ? AND owner_id = ?",
		familyID, ownerID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete family: %w", err)
	}
	return affectedOne(res, "family "+familyID)
}

// AddFamilyMember inserts a membership row.
func (s *queries) AddFamilyMember(ctx context.Context, membership models.FamilyMembership) error {
	_, err := s.q.ExecContext(ctx,
		"INSERT INTO family_members (family_id, member_id) VALUES (?, ?)",
		membership.FamilyID, membership.MemberID,
	)
	if err != nil {
		return fmt.Errorf("failed to add family member: %w", translateErr(err))
	}
	return nil
}

// RemoveFamilyMember deletes a membership row.
func (s *queries) RemoveFamilyMember(ctx context.Context, membership models.FamilyMembership) error {
	res, err := s.q.ExecContext(ctx,
		"DELETE FROM family_members WHERE family_id = ? AND member_id = ?",
		membership.FamilyID, membership.MemberID,
	)
	if err != nil {
		return fmt.Errorf("failed to remove family member: %w", err)
	}
	return affectedOne(res, "family membership")
}

// ListFamilyMemberIDs returns the IDs of a family's members.
func (s *queries) ListFamilyMemberIDs(ctx context.Context, familyID string) ([]string, error) {
	rows, err := s.q.QueryContext(ctx,
		"SELECT member_id FROM family_members WHERE family_id = ? ORDER BY member_id",
		familyID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list family member IDs: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan family member ID: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate family member IDs: %w", err)
	}
	return ids, nil
}

// ListFamilyMembers returns the members joined through a family, ordered by name.
func (s *queries) ListFamilyMembers(ctx context.Context, familyID string) ([]models.Member, error) {
	return s.listMembers(ctx,
		`SELECT m.id, m.owner_id, m.name, m.gender, m.age, m.date_of_birth, m.date_of_death, m.blood_group, m.created_at
		 FROM members m
		 JOIN family_members fm ON m.id = fm.member_id
		 WHERE fm.family_id = ?
		 ORDER BY m.name, m.id`,
		familyID,
	)
}
