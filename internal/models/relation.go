package models

// Couple represents one marriage.
// A member appears as husband in at most one couple and as wife in at most one.
type Couple struct {
	// ID is the unique identifier for the couple (UUID format).
	ID string

	// HusbandID references a member whose Gender is true.
	HusbandID string

	// WifeID references a member whose Gender is false.
	WifeID string

	// CreatedAt is the Unix timestamp when the couple was recorded.
	CreatedAt int64
}

// Includes reports whether the member is either spouse.
func (c Couple) Includes(memberID string) bool {
	return c.HusbandID == memberID || c.WifeID == memberID
}

// Spouse returns the other member of the couple, or "" if memberID is not part of it.
func (c Couple) Spouse(memberID string) string {
	switch memberID {
	case c.HusbandID:
		return c.WifeID
	case c.WifeID:
		return c.HusbandID
	}
	return ""
}

// ParentChild links a child to the couple that parents it.
// A child appears in at most one ParentChild row.
type ParentChild struct {
	CoupleID string
	ChildID  string
}
