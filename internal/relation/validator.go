// Package relation decides which couple and parent-child assertions are legal
// and applies them to the store.
//
// The validation functions are pure: they look only at the snapshots they are
// given and never mutate anything, so a rejection needs no rollback.
package relation

import "github.com/mmynk/kinship/internal/models"

// Pair is the husband/wife assignment of an accepted couple.
type Pair struct {
	HusbandID string
	WifeID    string
}

// IsHusband reports whether the member is husband in any couple.
func IsHusband(memberID string, couples []models.Couple) bool {
	for _, c := range couples {
		if c.HusbandID == memberID {
			return true
		}
	}
	return false
}

// IsWife reports whether the member is wife in any couple.
func IsWife(memberID string, couples []models.Couple) bool {
	for _, c := range couples {
		if c.WifeID == memberID {
			return true
		}
	}
	return false
}

// HasParents reports whether the child already has a parent-child row.
func HasParents(childID string, links []models.ParentChild) bool {
	for _, l := range links {
		if l.ChildID == childID {
			return true
		}
	}
	return false
}

// LinkExists reports whether exactly this (couple, child) row exists.
func LinkExists(coupleID, childID string, links []models.ParentChild) bool {
	for _, l := range links {
		if l.CoupleID == coupleID && l.ChildID == childID {
			return true
		}
	}
	return false
}

// ValidateCouple checks whether a and b may marry given the current couples.
// The husband check runs before the wife check, so when both spouses are
// taken the husband's reason is reported.
func ValidateCouple(a, b models.Member, couples []models.Couple) (Pair, error) {
	if a.Gender == b.Gender {
		return Pair{}, reject(ReasonSameGender)
	}

	pair := Pair{HusbandID: a.ID, WifeID: b.ID}
	if !a.Gender {
		pair = Pair{HusbandID: b.ID, WifeID: a.ID}
	}

	if IsHusband(pair.HusbandID, couples) {
		return Pair{}, reject(ReasonHusbandAlreadyMarried)
	}
	if IsWife(pair.WifeID, couples) {
		return Pair{}, reject(ReasonWifeAlreadyMarried)
	}
	return pair, nil
}

// ResolveCouple finds the couple in which the member plays its gender role.
func ResolveCouple(member models.Member, couples []models.Couple) (models.Couple, error) {
	for _, c := range couples {
		if member.Gender && c.HusbandID == member.ID {
			return c, nil
		}
		if !member.Gender && c.WifeID == member.ID {
			return c, nil
		}
	}
	return models.Couple{}, reject(ReasonNotMarried)
}

// ValidateGenderChange rejects flipping the gender of a member that holds a
// couple role, since the couple would no longer pair a husband with a wife.
func ValidateGenderChange(member models.Member, gender bool, couples []models.Couple) error {
	if member.Gender == gender {
		return nil
	}
	for _, c := range couples {
		if c.Includes(member.ID) {
			return reject(ReasonGenderLocked)
		}
	}
	return nil
}

// ValidateParentChild checks whether childID may be linked to the parent's
// couple and returns that couple's ID.
func ValidateParentChild(parent models.Member, childID string, couples []models.Couple, links []models.ParentChild) (string, error) {
	couple, err := ResolveCouple(parent, couples)
	if err != nil {
		return "", err
	}
	if reason, ok := checkChild(couple.ID, childID, links); !ok {
		return "", reject(reason)
	}
	return couple.ID, nil
}

// checkChild applies the child checks for one candidate. A row for exactly
// this couple is a duplicate link; a row for any other couple means the child
// is already parented.
func checkChild(coupleID, childID string, links []models.ParentChild) (Reason, bool) {
	if LinkExists(coupleID, childID, links) {
		return ReasonDuplicateLink, false
	}
	if HasParents(childID, links) {
		return ReasonChildAlreadyParented, false
	}
	return "", true
}

// Skipped is a batch candidate that was not linked.
type Skipped struct {
	ChildID string
	Reason  Reason
}

// Selection is the outcome of evaluating a batch of children.
type Selection struct {
	Accepted []string
	Skipped  []Skipped
}

// SelectChildren evaluates every candidate against the same snapshot of
// links. Failing children are skipped, never fatal. A child listed twice is
// accepted once and skipped as a duplicate link afterwards.
func SelectChildren(coupleID string, childIDs []string, links []models.ParentChild) Selection {
	var sel Selection
	seen := make(map[string]bool, len(childIDs))
	for _, childID := range childIDs {
		if seen[childID] {
			sel.Skipped = append(sel.Skipped, Skipped{ChildID: childID, Reason: ReasonDuplicateLink})
			continue
		}
		seen[childID] = true

		if reason, ok := checkChild(coupleID, childID, links); !ok {
			sel.Skipped = append(sel.Skipped, Skipped{ChildID: childID, Reason: reason})
			continue
		}
		sel.Accepted = append(sel.Accepted, childID)
	}
	return sel
}
