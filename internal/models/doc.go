// Package models defines the core domain models for Kinship.
//
// # Entities
//
//   - Member: a person recorded by a user (the owner)
//   - Couple: one marriage between a male and a female member
//   - ParentChild: a child attached to the couple that parents it
//   - Family: a named, owner-scoped grouping of members
//   - FamilyMembership: a member placed in a family
//   - User: the account that owns members and families
//
// # Design Principles
//
// 1. **Owner scoping**: members and families carry the owner's user ID; couples
// and parent-child rows inherit ownership from the members they reference
// 2. **Avoid circular references**: relationships use ID strings, never pointers
// 3. **Binary gender**: Gender is a bool (true = male) used only to assign the
// husband and wife roles of a couple
package models
