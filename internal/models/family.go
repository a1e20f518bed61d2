package models

// Family is a named grouping of members.
// Names are unique per owner.
type Family struct {
	// ID is the unique identifier for the family (UUID format).
	ID string

	// Name is the display name (e.g. "Smiths").
	Name string

	// OwnerID is the user who created the family.
	OwnerID string

	// CreatedAt is the Unix timestamp when the family was created.
	CreatedAt int64
}

// FamilyMembership places a member in a family. A pair is never duplicated.
type FamilyMembership struct {
	FamilyID string
	MemberID string
}
