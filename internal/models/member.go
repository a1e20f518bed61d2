package models

import "time"

// Member represents a person recorded in a user's family data.
type Member struct {
	// ID is the unique identifier for the member (UUID format).
	ID string

	// Name is the display name. Never empty.
	Name string

	// Gender drives the husband/wife role in a couple: true is male, false is female.
	Gender bool

	// Age in years, never negative.
	Age int

	// DateOfBirth is optional.
	DateOfBirth *time.Time

	// DateOfDeath is optional.
	DateOfDeath *time.Time

	// BloodGroup is optional free text (e.g. "O+").
	BloodGroup string

	// OwnerID is the user who created the member.
	OwnerID string

	// CreatedAt is the Unix timestamp when the member was created.
	CreatedAt int64
}

// Summary projects the member to the fields list views need.
func (m Member) Summary() MemberSummary {
	return MemberSummary{ID: m.ID, Name: m.Name, Age: m.Age}
}

// MemberSummary is the minimal projection of a member used by list reads.
type MemberSummary struct {
	ID   string
	Name string
	Age  int
}

// MemberUpdate carries a partial update. Nil fields are left unchanged.
type MemberUpdate struct {
	ID          string
	OwnerID     string
	Name        *string
	Gender      *bool
	Age         *int
	DateOfBirth *time.Time
	DateOfDeath *time.Time
	BloodGroup  *string
}
