package relation

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mmynk/kinship/internal/models"
)

var (
	bob   = models.Member{ID: "bob", Name: "Bob", Gender: true}
	alice = models.Member{ID: "alice", Name: "Alice", Gender: false}
	evan  = models.Member{ID: "evan", Name: "Evan", Gender: true}
	dana  = models.Member{ID: "dana", Name: "Dana", Gender: false}
)

func TestValidateCouple(t *testing.T) {
	married := []models.Couple{{ID: "c1", HusbandID: "bob", WifeID: "alice"}}
	bothTaken := []models.Couple{
		{ID: "c1", HusbandID: "bob", WifeID: "alice"},
		{ID: "c2", HusbandID: "evan", WifeID: "dana"},
	}

	tests := []struct {
		name    string
		a, b    models.Member
		couples []models.Couple
		want    Pair
		reason  Reason
	}{
		{
			name: "male first",
			a:    bob,
			b:    alice,
			want: Pair{HusbandID: "bob", WifeID: "alice"},
		},
		{
			name: "female first resolves roles by gender",
			a:    alice,
			b:    bob,
			want: Pair{HusbandID: "bob", WifeID: "alice"},
		},
		{
			name:   "same gender",
			a:      bob,
			b:      evan,
			reason: ReasonSameGender,
		},
		{
			name:    "same gender wins over married",
			a:       bob,
			b:       evan,
			couples: married,
			reason:  ReasonSameGender,
		},
		{
			name:    "husband already married",
			a:       bob,
			b:       dana,
			couples: married,
			reason:  ReasonHusbandAlreadyMarried,
		},
		{
			name:    "wife already married",
			a:       evan,
			b:       alice,
			couples: married,
			reason:  ReasonWifeAlreadyMarried,
		},
		{
			name:    "husband reason reported when both are taken",
			a:       bob,
			b:       dana,
			couples: bothTaken,
			reason:  ReasonHusbandAlreadyMarried,
		},
		{
			name:    "asserting an existing couple again",
			a:       bob,
			b:       alice,
			couples: married,
			reason:  ReasonHusbandAlreadyMarried,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateCouple(tt.a, tt.b, tt.couples)
			if tt.reason != "" {
				if !IsReason(err, tt.reason) {
					t.Fatalf("expected %s, got %v", tt.reason, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestResolveCouple(t *testing.T) {
	couples := []models.Couple{{ID: "c1", HusbandID: "bob", WifeID: "alice"}}

	for _, m := range []models.Member{bob, alice} {
		c, err := ResolveCouple(m, couples)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", m.Name, err)
		}
		if c.ID != "c1" {
			t.Errorf("%s: expected c1, got %s", m.Name, c.ID)
		}
	}

	if _, err := ResolveCouple(evan, couples); !IsReason(err, ReasonNotMarried) {
		t.Errorf("expected not_married, got %v", err)
	}

	// A member listed in the column that does not match its gender does not
	// count as married.
	odd := []models.Couple{{ID: "c9", HusbandID: "dana", WifeID: "x"}}
	if _, err := ResolveCouple(dana, odd); !IsReason(err, ReasonNotMarried) {
		t.Errorf("expected not_married for role mismatch, got %v", err)
	}
}

func TestValidateParentChild(t *testing.T) {
	couples := []models.Couple{
		{ID: "c1", HusbandID: "bob", WifeID: "alice"},
		{ID: "c2", HusbandID: "evan", WifeID: "dana"},
	}
	links := []models.ParentChild{{CoupleID: "c2", ChildID: "kid2"}, {CoupleID: "c1", ChildID: "kid1"}}

	tests := []struct {
		name    string
		parent  models.Member
		childID string
		couples []models.Couple
		want    string
		reason  Reason
	}{
		{name: "father", parent: bob, childID: "cara", couples: couples, want: "c1"},
		{name: "mother", parent: alice, childID: "cara", couples: couples, want: "c1"},
		{name: "not married", parent: bob, childID: "cara", reason: ReasonNotMarried},
		{name: "parented by another couple", parent: bob, childID: "kid2", couples: couples, reason: ReasonChildAlreadyParented},
		{name: "same link again", parent: alice, childID: "kid1", couples: couples, reason: ReasonDuplicateLink},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateParentChild(tt.parent, tt.childID, tt.couples, links)
			if tt.reason != "" {
				if !IsReason(err, tt.reason) {
					t.Fatalf("expected %s, got %v", tt.reason, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected couple %s, got %s", tt.want, got)
			}
		})
	}
}

func TestSelectChildren(t *testing.T) {
	links := []models.ParentChild{
		{CoupleID: "c1", ChildID: "old"},
		{CoupleID: "c2", ChildID: "taken"},
	}

	got := SelectChildren("c1", []string{"a", "old", "taken", "b", "a"}, links)
	want := Selection{
		Accepted: []string{"a", "b"},
		Skipped: []Skipped{
			{ChildID: "old", Reason: ReasonDuplicateLink},
			{ChildID: "taken", Reason: ReasonChildAlreadyParented},
			{ChildID: "a", Reason: ReasonDuplicateLink},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SelectChildren mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateGenderChange(t *testing.T) {
	couples := []models.Couple{{ID: "c1", HusbandID: "bob", WifeID: "alice"}}

	if err := ValidateGenderChange(bob, true, couples); err != nil {
		t.Errorf("unchanged gender: unexpected error %v", err)
	}
	if err := ValidateGenderChange(bob, false, couples); !IsReason(err, ReasonGenderLocked) {
		t.Errorf("married member: expected gender_locked, got %v", err)
	}
	if err := ValidateGenderChange(evan, false, couples); err != nil {
		t.Errorf("unmarried member: unexpected error %v", err)
	}
}

func TestPredicates(t *testing.T) {
	couples := []models.Couple{{ID: "c1", HusbandID: "bob", WifeID: "alice"}}
	links := []models.ParentChild{{CoupleID: "c1", ChildID: "cara"}}

	checks := []struct {
		name string
		got  bool
		want bool
	}{
		{"bob is husband", IsHusband("bob", couples), true},
		{"alice is not husband", IsHusband("alice", couples), false},
		{"alice is wife", IsWife("alice", couples), true},
		{"bob is not wife", IsWife("bob", couples), false},
		{"cara has parents", HasParents("cara", links), true},
		{"bob has no parents", HasParents("bob", links), false},
		{"link exists", LinkExists("c1", "cara", links), true},
		{"link on another couple", LinkExists("c2", "cara", links), false},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s: expected %v, got %v", c.name, c.want, c.got)
		}
	}
}

func TestReasonMessages(t *testing.T) {
	for _, r := range []Reason{
		ReasonSameGender, ReasonHusbandAlreadyMarried, ReasonWifeAlreadyMarried,
		ReasonNotMarried, ReasonChildAlreadyParented, ReasonDuplicateLink,
		ReasonCombinationNotFound, ReasonGenderLocked, ReasonNotFound,
	} {
		if r.Message() == string(r) {
			t.Errorf("%s has no message", r)
		}
	}
	err := reject(ReasonSameGender)
	if err.Error() != "both members have the same gender" {
		t.Errorf("unexpected message %q", err.Error())
	}
}
