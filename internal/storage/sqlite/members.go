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

const memberColumns = "id, owner_id, name, gender, age, date_of_birth, date_of_death, blood_group, created_at"

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanMember(row rowScanner) (*models.Member, error) {
	m := &models.Member{}
	var dob, dod, blood sql.NullString
	if err := row.Scan(&m.ID, &m.OwnerID, &m.Name, &m.Gender, &m.Age, &dob, &dod, &blood, &m.CreatedAt); err != nil {
		return nil, err
	}

	var err error
	if m.DateOfBirth, err = parseDate(dob); err != nil {
		return nil, err
	}
	if m.DateOfDeath, err = parseDate(dod); err != nil {
		return nil, err
	}
	m.BloodGroup = blood.String
	return m, nil
}

// CreateMember inserts a new member.
func (s *queries) CreateMember(ctx context.Context, member *models.Member) error {
	if member.ID == "" {
		member.ID = uuid.New().String()
	}
	if member.CreatedAt == 0 {
		member.CreatedAt = time.Now().Unix()
	}

	_, err := s.q.ExecContext(ctx,
		`INSERT INTO members (`+memberColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		member.ID, member.OwnerID, member.Name, member.Gender, member.Age,
		dateValue(member.DateOfBirth), dateValue(member.DateOfDeath), nullString(member.BloodGroup),
		member.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert member: %w", translateErr(err))
	}
	return nil
}

// GetMember retrieves a member by ID, scoped to its owner.
func (s *queries) GetMember(ctx context.Context, ownerID, memberID string) (*models.Member, error) {
	row := s.q.QueryRowContext(ctx,
		`SELECT `+memberColumns+` FROM members WHERE id = ? AND owner_id = ?`,
		memberID, ownerID,
	)
	member, err := scanMember(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("member %s: %w", memberID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	return member, nil
}

// GetMembersByIDs retrieves multiple members owned by ownerID.
// Returns a map of member ID to Member; unknown IDs are omitted.
func (s *queries) GetMembersByIDs(ctx context.Context, ownerID string, ids []string) (map[string]*models.Member, error) {
	members := make(map[string]*models.Member, len(ids))
	if len(ids) == 0 {
		return members, nil
	}

	args := append([]any{ownerID}, stringArgs(ids)...)
	rows, err := s.q.QueryContext(ctx,
		`SELECT `+memberColumns+` FROM members WHERE owner_id = ? AND id IN (`+placeholders(len(ids))+`)`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get members by IDs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members[member.ID] = member
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating members: %w", err)
	}
	return members, nil
}

// ListMembers returns all members of an owner ordered by name.
func (s *queries) ListMembers(ctx context.Context, ownerID string) ([]models.Member, error) {
	return s.listMembers(ctx,
		`SELECT `+memberColumns+` FROM members WHERE owner_id = ? ORDER BY name, id`,
		ownerID,
	)
}

func (s *queries) listMembers(ctx context.Context, query string, args ...any) ([]models.Member, error) {
	rows, err := s.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []models.Member
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, *member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}
	return members, nil
}

// UpdateMember applies the non-nil fields of update.
func (s *queries) UpdateMember(ctx context.Context, update *models.MemberUpdate) error {
	var blood any
	if update.BloodGroup != nil {
		blood = *update.BloodGroup
	}

	res, err := s.q.ExecContext(ctx,
		`UPDATE members SET
			name = COALESCE(?, name),
			gender = COALESCE(?, gender),
			age = COALESCE(?, age),
			date_of_birth = COALESCE(?, date_of_birth),
			date_of_death = COALESCE(?, date_of_death),
			blood_group = COALESCE(?, blood_group)
		 WHERE id = ? AND owner_id = ?`,
		derefString(update.Name), derefBool(update.Gender), derefInt(update.Age),
		dateValue(update.DateOfBirth), dateValue(update.DateOfDeath), blood,
		update.ID, update.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("failed to update member: %w", translateErr(err))
	}
	return affectedOne(res, "member "+update.ID)
}

// DeleteMember removes a member; foreign keys cascade to its relationships.
func (s *queries) DeleteMember(ctx context.Context, ownerID, memberID string) error {
	res, err := s.q.ExecContext(ctx,
		"DELETE FROM members WHERE id = ? AND owner_id = ?",
		memberID, ownerID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}
	return affectedOne(res, "member "+memberID)
}

func derefString(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

func derefBool(p *bool) any {
	if p == nil {
		return nil
	}
	return *p
}

func derefInt(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}
