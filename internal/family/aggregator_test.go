package family

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mmynk/kinship/internal/models"
	"github.com/mmynk/kinship/internal/storage"
	"github.com/mmynk/kinship/internal/storage/sqlite"
)

func TestExclude(t *testing.T) {
	members := []models.Member{
		{ID: "3", Name: "Cara"},
		{ID: "1", Name: "Alice"},
		{ID: "2", Name: "Bob"},
	}

	got := IDs(Exclude(members, []string{"2"}))
	if diff := cmp.Diff([]string{"1", "3"}, got); diff != "" {
		t.Errorf("Exclude mismatch (-want +got):\n%s", diff)
	}

	if got := Exclude(members, []string{"1", "2", "3"}); len(got) != 0 {
		t.Errorf("excluding everyone: expected empty, got %+v", got)
	}
}

func TestUnmarried(t *testing.T) {
	members := []models.Member{
		{ID: "bob", Name: "Bob", Gender: true},
		{ID: "alice", Name: "Alice", Gender: false},
		{ID: "evan", Name: "Evan", Gender: true},
		{ID: "dana", Name: "Dana", Gender: false},
	}
	couples := []models.Couple{{ID: "c1", HusbandID: "bob", WifeID: "alice"}}

	tests := []struct {
		name   string
		gender bool
		want   []string
	}{
		{name: "men", gender: true, want: []string{"evan"}},
		{name: "women", gender: false, want: []string{"dana"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IDs(Unmarried(members, couples, tt.gender))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Unmarried mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUnparented(t *testing.T) {
	members := []models.Member{
		{ID: "bob", Name: "Bob"},
		{ID: "cara", Name: "Cara"},
		{ID: "alice", Name: "Alice"},
	}
	links := []models.ParentChild{{CoupleID: "c1", ChildID: "cara"}}

	got := IDs(Unparented(members, links))
	if diff := cmp.Diff([]string{"alice", "bob"}, got); diff != "" {
		t.Errorf("Unparented mismatch (-want +got):\n%s", diff)
	}
}

func TestSortByNameBreaksTiesByID(t *testing.T) {
	members := []models.Member{
		{ID: "b", Name: "Sam"},
		{ID: "a", Name: "Sam"},
		{ID: "c", Name: "Ann"},
	}
	got := IDs(SortByName(members))
	if diff := cmp.Diff([]string{"c", "a", "b"}, got); diff != "" {
		t.Errorf("SortByName mismatch (-want +got):\n%s", diff)
	}
}

type fixture struct {
	store  *sqlite.SQLiteStore
	agg    *Aggregator
	family *models.Family
	ids    map[string]string
}

// newFixture builds Bob+Alice with child Cara, plus Dave. The family holds
// Bob, Alice and Cara.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	f := &fixture{store: store, agg: NewAggregator(store), ids: map[string]string{}}
	for _, p := range []struct {
		name   string
		gender bool
	}{{"Bob", true}, {"Alice", false}, {"Cara", false}, {"Dave", true}} {
		m := &models.Member{Name: p.name, Gender: p.gender, Age: 30, OwnerID: "o"}
		if err := store.CreateMember(ctx, m); err != nil {
			t.Fatalf("CreateMember failed: %v", err)
		}
		f.ids[p.name] = m.ID
	}

	couple := &models.Couple{HusbandID: f.ids["Bob"], WifeID: f.ids["Alice"]}
	if err := store.CreateCouple(ctx, couple); err != nil {
		t.Fatalf("CreateCouple failed: %v", err)
	}
	if err := store.CreateParentChild(ctx, models.ParentChild{CoupleID: couple.ID, ChildID: f.ids["Cara"]}); err != nil {
		t.Fatalf("CreateParentChild failed: %v", err)
	}

	f.family = &models.Family{Name: "Smiths", OwnerID: "o"}
	if err := store.CreateFamily(ctx, f.family); err != nil {
		t.Fatalf("CreateFamily failed: %v", err)
	}
	for _, name := range []string{"Bob", "Alice", "Cara"} {
		ms := models.FamilyMembership{FamilyID: f.family.ID, MemberID: f.ids[name]}
		if err := store.AddFamilyMember(ctx, ms); err != nil {
			t.Fatalf("AddFamilyMember failed: %v", err)
		}
	}
	return f
}

func names(members []models.MemberSummary) []string {
	out := make([]string, len(members))
	for i, m := range members {
		out[i] = m.Name
	}
	return out
}

func TestAggregator(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	t.Run("family members", func(t *testing.T) {
		got, err := f.agg.FamilyMembers(ctx, "o", f.family.ID)
		if err != nil {
			t.Fatalf("FamilyMembers failed: %v", err)
		}
		if diff := cmp.Diff([]string{"Alice", "Bob", "Cara"}, names(got)); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("recommended members", func(t *testing.T) {
		got, err := f.agg.RecommendedMembers(ctx, "o", f.family.ID)
		if err != nil {
			t.Fatalf("RecommendedMembers failed: %v", err)
		}
		if diff := cmp.Diff([]string{"Dave"}, names(got)); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unmarried of gender", func(t *testing.T) {
		men, err := f.agg.UnmarriedOfGender(ctx, "o", true)
		if err != nil {
			t.Fatalf("UnmarriedOfGender failed: %v", err)
		}
		if diff := cmp.Diff([]string{"Dave"}, names(men)); diff != "" {
			t.Errorf("men mismatch (-want +got):\n%s", diff)
		}

		women, err := f.agg.UnmarriedOfGender(ctx, "o", false)
		if err != nil {
			t.Fatalf("UnmarriedOfGender failed: %v", err)
		}
		if diff := cmp.Diff([]string{"Cara"}, names(women)); diff != "" {
			t.Errorf("women mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("remaining children", func(t *testing.T) {
		got, err := f.agg.RemainingChildren(ctx, "o")
		if err != nil {
			t.Fatalf("RemainingChildren failed: %v", err)
		}
		if diff := cmp.Diff([]string{"Alice", "Bob", "Dave"}, names(got)); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("tree snapshot", func(t *testing.T) {
		snap, err := f.agg.Tree(ctx, "o", f.family.ID)
		if err != nil {
			t.Fatalf("Tree failed: %v", err)
		}
		if len(snap.Members) != 3 || len(snap.Couples) != 1 || len(snap.Links) != 1 {
			t.Errorf("unexpected snapshot sizes: %d members, %d couples, %d links",
				len(snap.Members), len(snap.Couples), len(snap.Links))
		}
		if snap.Family.Name != "Smiths" {
			t.Errorf("family name: expected Smiths, got %s", snap.Family.Name)
		}
	})

	t.Run("other owners see nothing", func(t *testing.T) {
		if _, err := f.agg.FamilyMembers(ctx, "intruder", f.family.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("FamilyMembers: expected ErrNotFound, got %v", err)
		}
		if _, err := f.agg.Tree(ctx, "intruder", f.family.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Tree: expected ErrNotFound, got %v", err)
		}
		got, err := f.agg.RemainingChildren(ctx, "intruder")
		if err != nil {
			t.Fatalf("RemainingChildren failed: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("expected no members, got %+v", got)
		}
	})
}
