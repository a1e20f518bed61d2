// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/kinship/internal/models"
)

var (
	// ErrNotFound is returned when a referenced row does not exist or is not
	// visible to the caller.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when a write violates a uniqueness constraint.
	ErrConflict = errors.New("conflict")
)

// MemberReader provides owner-scoped member lookups.
type MemberReader interface {
	// GetMember retrieves a member owned by ownerID.
	// Returns ErrNotFound if it does not exist or belongs to someone else.
	GetMember(ctx context.Context, ownerID, memberID string) (*models.Member, error)

	// GetMembersByIDs retrieves the listed members owned by ownerID.
	// Missing or foreign IDs are omitted from the result.
	GetMembersByIDs(ctx context.Context, ownerID string, ids []string) (map[string]*models.Member, error)
}

// MemberStore defines member persistence operations.
type MemberStore interface {
	MemberReader

	// CreateMember persists a new member. The ID and CreatedAt fields are
	// populated by the store.
	CreateMember(ctx context.Context, member *models.Member) error

	// ListMembers returns all members owned by ownerID ordered by name.
	ListMembers(ctx context.Context, ownerID string) ([]models.Member, error)

	// UpdateMember applies a partial update. Returns ErrNotFound if the
	// member does not exist for the owner.
	UpdateMember(ctx context.Context, update *models.MemberUpdate) error

	// DeleteMember removes a member. Couples, parent-child rows and family
	// memberships referencing it are deleted with it.
	DeleteMember(ctx context.Context, ownerID, memberID string) error
}

// RelationStore defines couple and parent-child persistence operations.
// Rows are not owner-tagged; callers check ownership on the referenced members.
type RelationStore interface {
	// CreateCouple persists a couple. Returns ErrConflict if either spouse
	// already holds that role in another couple.
	CreateCouple(ctx context.Context, couple *models.Couple) error

	// ListCouplesByMembers returns every couple in which any of the members
	// is husband or wife.
	ListCouplesByMembers(ctx context.Context, memberIDs []string) ([]models.Couple, error)

	// DeleteCouple removes a couple and its parent-child rows.
	DeleteCouple(ctx context.Context, coupleID string) error

	// CreateParentChild persists a link. Returns ErrConflict if the child
	// already has parents.
	CreateParentChild(ctx context.Context, link models.ParentChild) error

	// ListParentChildByChildren returns the links whose child is any of the members.
	ListParentChildByChildren(ctx context.Context, childIDs []string) ([]models.ParentChild, error)

	// ListParentChildByCouple returns the links of one couple.
	ListParentChildByCouple(ctx context.Context, coupleID string) ([]models.ParentChild, error)

	// DeleteParentChild removes one link. Returns ErrNotFound if it does not exist.
	DeleteParentChild(ctx context.Context, link models.ParentChild) error
}

// FamilyStore defines family and membership persistence operations.
type FamilyStore interface {
	// CreateFamily persists a family. Returns ErrConflict if the owner
	// already has a family with that name.
	CreateFamily(ctx context.Context, family *models.Family) error

	// GetFamily retrieves a family owned by ownerID.
	GetFamily(ctx context.Context, ownerID, familyID string) (*models.Family, error)

	// ListFamilies returns the owner's families ordered by name.
	ListFamilies(ctx context.Context, ownerID string) ([]models.Family, error)

	// RenameFamily changes a family's name. Returns ErrConflict on a duplicate name.
	RenameFamily(ctx context.Context, ownerID, familyID, name string) error

	// DeleteFamily removes a family and its memberships.
	DeleteFamily(ctx context.Context, ownerID, familyID string) error

	// AddFamilyMember inserts a membership. Returns ErrConflict if the pair exists.
	AddFamilyMember(ctx context.Context, membership models.FamilyMembership) error

	// RemoveFamilyMember deletes a membership. Returns ErrNotFound if the pair does not exist.
	RemoveFamilyMember(ctx context.Context, membership models.FamilyMembership) error

	// ListFamilyMemberIDs returns the member IDs in a family.
	ListFamilyMemberIDs(ctx context.Context, familyID string) ([]string, error)

	// ListFamilyMembers returns the members of a family ordered by name.
	ListFamilyMembers(ctx context.Context, familyID string) ([]models.Member, error)
}

// UserStore defines user persistence operations.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail returns nil, nil when no user has the email.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID returns nil, nil when no user has the ID.
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// Tx is the unit of work relationship mutations run in. Reads made through
// a Tx observe the writes made through it, and the whole unit either commits
// or leaves no trace.
type Tx interface {
	MemberReader
	RelationStore

	// UpdateMember is available in a Tx so gender changes can be checked
	// against the couples in the same unit.
	UpdateMember(ctx context.Context, update *models.MemberUpdate) error
}

// Store defines the interface for all storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	MemberStore
	RelationStore
	FamilyStore
	UserStore

	// WithTx runs fn inside a transaction. The transaction commits if fn
	// returns nil and rolls back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any resources held by the store.
	Close() error
}
