package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/kinship/internal/auth"
	"github.com/mmynk/kinship/internal/storage/sqlite"
	"github.com/mmynk/kinship/internal/treegraph"
	"github.com/mmynk/kinship/pkg/api"
	"github.com/mmynk/kinship/pkg/api/apiconnect"
)

type clients struct {
	auth     apiconnect.AuthServiceClient
	members  apiconnect.MemberServiceClient
	families apiconnect.FamilyServiceClient
	relation apiconnect.RelationServiceClient
}

// setupTestServer serves every service against a temp database.
func setupTestServer(t *testing.T) *clients {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	authenticator := auth.NewPasswordAuthenticator(store, bcrypt.MinCost)

	mux := http.NewServeMux()
	Mount(mux, store, authenticator, jwtManager, treegraph.Layered{})
	server := httptest.NewServer(mux)

	t.Cleanup(func() {
		server.Close()
		store.Close()
	})

	return &clients{
		auth:     apiconnect.NewAuthServiceClient(http.DefaultClient, server.URL),
		members:  apiconnect.NewMemberServiceClient(http.DefaultClient, server.URL),
		families: apiconnect.NewFamilyServiceClient(http.DefaultClient, server.URL),
		relation: apiconnect.NewRelationServiceClient(http.DefaultClient, server.URL),
	}
}

// authed builds a request carrying the bearer token.
func authed[T any](token string, msg *T) *connect.Request[T] {
	req := connect.NewRequest(msg)
	req.Header().Set("Authorization", "Bearer "+token)
	return req
}

func register(t *testing.T, c *clients, email string) string {
	t.Helper()

	resp, err := c.auth.Register(context.Background(), connect.NewRequest(&api.RegisterRequest{
		Email:       email,
		DisplayName: "Tester",
		Password:    "password123",
	}))
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	return resp.Msg.Token
}

func createMember(t *testing.T, c *clients, token, name string, male bool) string {
	t.Helper()

	age := 30
	resp, err := c.members.CreateMember(context.Background(), authed(token, &api.CreateMemberRequest{
		Name:   name,
		Gender: &male,
		Age:    &age,
	}))
	if err != nil {
		t.Fatalf("CreateMember(%s) failed: %v", name, err)
	}
	return resp.Msg.Member.Id
}

func expectCode(t *testing.T, err error, code connect.Code) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected %v, got success", code)
	}
	if got := connect.CodeOf(err); got != code {
		t.Fatalf("expected %v, got %v (%v)", code, got, err)
	}
}

func TestAuthFlow(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	regResp, err := c.auth.Register(ctx, connect.NewRequest(&api.RegisterRequest{
		Email:       "Ann@Example.com",
		DisplayName: "Ann",
		Password:    "password123",
	}))
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if regResp.Msg.Token == "" {
		t.Fatal("expected a token")
	}
	if regResp.Msg.User.Email != "ann@example.com" {
		t.Errorf("email should be normalized, got %s", regResp.Msg.User.Email)
	}
	if regResp.Header().Get("Set-Cookie") == "" {
		t.Error("expected a session cookie")
	}

	t.Run("duplicate email", func(t *testing.T) {
		_, err := c.auth.Register(ctx, connect.NewRequest(&api.RegisterRequest{
			Email: "ann@example.com", DisplayName: "Ann", Password: "password123",
		}))
		expectCode(t, err, connect.CodeAlreadyExists)
	})

	t.Run("weak password", func(t *testing.T) {
		_, err := c.auth.Register(ctx, connect.NewRequest(&api.RegisterRequest{
			Email: "weak@example.com", DisplayName: "Weak", Password: "123",
		}))
		expectCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("invalid email", func(t *testing.T) {
		_, err := c.auth.Register(ctx, connect.NewRequest(&api.RegisterRequest{
			Email: "not-an-email", DisplayName: "X", Password: "password123",
		}))
		expectCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("login", func(t *testing.T) {
		resp, err := c.auth.Login(ctx, connect.NewRequest(&api.LoginRequest{
			Email: "ann@example.com", Password: "password123",
		}))
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}

		me, err := c.auth.GetCurrentUser(ctx, authed(resp.Msg.Token, &api.GetCurrentUserRequest{}))
		if err != nil {
			t.Fatalf("GetCurrentUser failed: %v", err)
		}
		if me.Msg.User.DisplayName != "Ann" {
			t.Errorf("display name: expected Ann, got %s", me.Msg.User.DisplayName)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := c.auth.Login(ctx, connect.NewRequest(&api.LoginRequest{
			Email: "ann@example.com", Password: "wrong-password",
		}))
		expectCode(t, err, connect.CodeUnauthenticated)
	})

	t.Run("cookie instead of header", func(t *testing.T) {
		req := connect.NewRequest(&api.ListMembersRequest{})
		req.Header().Set("Cookie", "jwt="+regResp.Msg.Token)
		if _, err := c.members.ListMembers(ctx, req); err != nil {
			t.Errorf("ListMembers with cookie failed: %v", err)
		}
	})

	t.Run("anonymous calls are rejected", func(t *testing.T) {
		_, err := c.members.ListMembers(ctx, connect.NewRequest(&api.ListMembersRequest{}))
		expectCode(t, err, connect.CodeUnauthenticated)

		_, err = c.auth.GetCurrentUser(ctx, connect.NewRequest(&api.GetCurrentUserRequest{}))
		expectCode(t, err, connect.CodeUnauthenticated)

		_, err = c.members.ListMembers(ctx, authed("garbage", &api.ListMembersRequest{}))
		expectCode(t, err, connect.CodeUnauthenticated)
	})
}

func TestMemberCRUD(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	token := register(t, c, "owner@example.com")

	male := true
	age := 52
	created, err := c.members.CreateMember(ctx, authed(token, &api.CreateMemberRequest{
		Name:        "Bob",
		Gender:      &male,
		Age:         &age,
		DateOfBirth: "1973-05-01",
		BloodGroup:  "A+",
	}))
	if err != nil {
		t.Fatalf("CreateMember failed: %v", err)
	}
	id := created.Msg.Member.Id
	if id == "" || created.Msg.Member.DateOfBirth != "1973-05-01" {
		t.Errorf("unexpected member: %+v", created.Msg.Member)
	}

	t.Run("validation", func(t *testing.T) {
		neg := -1
		_, err := c.members.CreateMember(ctx, authed(token, &api.CreateMemberRequest{Name: "X", Gender: &male, Age: &neg}))
		expectCode(t, err, connect.CodeInvalidArgument)

		_, err = c.members.CreateMember(ctx, authed(token, &api.CreateMemberRequest{Name: "X", Age: &age}))
		expectCode(t, err, connect.CodeInvalidArgument)

		_, err = c.members.CreateMember(ctx, authed(token, &api.CreateMemberRequest{
			Name: "X", Gender: &male, Age: &age, DateOfBirth: "05/01/1973",
		}))
		expectCode(t, err, connect.CodeInvalidArgument)

		_, err = c.members.CreateMember(ctx, authed(token, &api.CreateMemberRequest{
			Name: "X", Gender: &male, Age: &age, DateOfBirth: "2000-01-01", DateOfDeath: "1999-01-01",
		}))
		expectCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("partial update", func(t *testing.T) {
		name := "Robert"
		resp, err := c.members.UpdateMember(ctx, authed(token, &api.UpdateMemberRequest{MemberId: id, Name: &name}))
		if err != nil {
			t.Fatalf("UpdateMember failed: %v", err)
		}
		m := resp.Msg.Member
		if m.Name != "Robert" || m.Age != 52 || m.BloodGroup != "A+" || !m.Gender {
			t.Errorf("unexpected member after update: %+v", m)
		}
	})

	t.Run("get and list", func(t *testing.T) {
		got, err := c.members.GetMember(ctx, authed(token, &api.GetMemberRequest{MemberId: id}))
		if err != nil {
			t.Fatalf("GetMember failed: %v", err)
		}
		if got.Msg.Member.Name != "Robert" {
			t.Errorf("name: expected Robert, got %s", got.Msg.Member.Name)
		}

		list, err := c.members.ListMembers(ctx, authed(token, &api.ListMembersRequest{}))
		if err != nil {
			t.Fatalf("ListMembers failed: %v", err)
		}
		if len(list.Msg.Members) != 1 {
			t.Errorf("expected 1 member, got %d", len(list.Msg.Members))
		}
	})

	t.Run("delete", func(t *testing.T) {
		if _, err := c.members.DeleteMember(ctx, authed(token, &api.DeleteMemberRequest{MemberId: id})); err != nil {
			t.Fatalf("DeleteMember failed: %v", err)
		}
		_, err := c.members.GetMember(ctx, authed(token, &api.GetMemberRequest{MemberId: id}))
		expectCode(t, err, connect.CodeNotFound)
	})
}

// TestFamilyTreeScenario walks the canonical flow: Alice and Bob marry, Cara
// becomes their child, and the family tree shows one spousal and two
// parental edges.
func TestFamilyTreeScenario(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	token := register(t, c, "owner@example.com")

	alice := createMember(t, c, token, "Alice", false)
	bob := createMember(t, c, token, "Bob", true)
	cara := createMember(t, c, token, "Cara", false)

	coupleResp, err := c.relation.CreateCouple(ctx, authed(token, &api.CreateCoupleRequest{MemberId: alice, PartnerId: bob}))
	if err != nil {
		t.Fatalf("CreateCouple failed: %v", err)
	}
	if coupleResp.Msg.Couple.HusbandId != bob || coupleResp.Msg.Couple.WifeId != alice {
		t.Errorf("roles should follow gender: %+v", coupleResp.Msg.Couple)
	}

	linkResp, err := c.relation.CreateParentChildLinks(ctx, authed(token, &api.CreateParentChildLinksRequest{
		ParentId: alice,
		ChildIds: []string{cara},
	}))
	if err != nil {
		t.Fatalf("CreateParentChildLinks failed: %v", err)
	}
	if linkResp.Msg.AcceptedCount != 1 || len(linkResp.Msg.Skipped) != 0 {
		t.Errorf("unexpected link result: %+v", linkResp.Msg)
	}

	famResp, err := c.families.CreateFamily(ctx, authed(token, &api.CreateFamilyRequest{Name: "Smiths"}))
	if err != nil {
		t.Fatalf("CreateFamily failed: %v", err)
	}
	familyID := famResp.Msg.Family.Id
	for _, id := range []string{alice, bob, cara} {
		if _, err := c.families.AddFamilyMember(ctx, authed(token, &api.AddFamilyMemberRequest{FamilyId: familyID, MemberId: id})); err != nil {
			t.Fatalf("AddFamilyMember failed: %v", err)
		}
	}

	tree, err := c.families.GetFamilyTree(ctx, authed(token, &api.GetFamilyTreeRequest{FamilyId: familyID}))
	if err != nil {
		t.Fatalf("GetFamilyTree failed: %v", err)
	}
	if len(tree.Msg.Nodes) != 3 {
		t.Errorf("nodes: expected 3, got %d", len(tree.Msg.Nodes))
	}
	kinds := map[string]int{}
	for _, e := range tree.Msg.Edges {
		kinds[e.Kind]++
	}
	if kinds["spousal"] != 1 || kinds["parental"] != 2 {
		t.Errorf("expected 1 spousal and 2 parental edges, got %v", kinds)
	}
	if tree.Msg.Direction != "DOWN" || tree.Msg.OmittedEdges != 0 {
		t.Errorf("unexpected tree metadata: direction %s, omitted %d", tree.Msg.Direction, tree.Msg.OmittedEdges)
	}

	t.Run("right direction", func(t *testing.T) {
		right, err := c.families.GetFamilyTree(ctx, authed(token, &api.GetFamilyTreeRequest{FamilyId: familyID, Direction: "right"}))
		if err != nil {
			t.Fatalf("GetFamilyTree failed: %v", err)
		}
		if right.Msg.Direction != "RIGHT" {
			t.Errorf("direction: expected RIGHT, got %s", right.Msg.Direction)
		}
	})

	t.Run("bad direction", func(t *testing.T) {
		_, err := c.families.GetFamilyTree(ctx, authed(token, &api.GetFamilyTreeRequest{FamilyId: familyID, Direction: "UP"}))
		expectCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("children and spouse", func(t *testing.T) {
		pc, err := c.relation.GetParentChild(ctx, authed(token, &api.GetParentChildRequest{ParentId: bob}))
		if err != nil {
			t.Fatalf("GetParentChild failed: %v", err)
		}
		if len(pc.Msg.Children) != 1 || pc.Msg.Children[0].Id != cara {
			t.Errorf("expected Cara as only child, got %+v", pc.Msg.Children)
		}

		couple, err := c.relation.GetCouple(ctx, authed(token, &api.GetCoupleRequest{MemberId: bob}))
		if err != nil {
			t.Fatalf("GetCouple failed: %v", err)
		}
		if couple.Msg.SpouseId != alice {
			t.Errorf("spouse: expected %s, got %s", alice, couple.Msg.SpouseId)
		}
	})

	t.Run("candidate pools", func(t *testing.T) {
		dave := createMember(t, c, token, "Dave", true)

		rec, err := c.families.ListRecommendedMembers(ctx, authed(token, &api.ListRecommendedMembersRequest{FamilyId: familyID}))
		if err != nil {
			t.Fatalf("ListRecommendedMembers failed: %v", err)
		}
		if len(rec.Msg.Members) != 1 || rec.Msg.Members[0].Id != dave {
			t.Errorf("expected only Dave recommended, got %+v", rec.Msg.Members)
		}

		female := false
		unmarried, err := c.members.ListUnmarriedMembers(ctx, authed(token, &api.ListUnmarriedMembersRequest{Gender: &female}))
		if err != nil {
			t.Fatalf("ListUnmarriedMembers failed: %v", err)
		}
		if len(unmarried.Msg.Members) != 1 || unmarried.Msg.Members[0].Id != cara {
			t.Errorf("expected only Cara unmarried, got %+v", unmarried.Msg.Members)
		}

		remaining, err := c.members.ListRemainingChildren(ctx, authed(token, &api.ListRemainingChildrenRequest{}))
		if err != nil {
			t.Fatalf("ListRemainingChildren failed: %v", err)
		}
		if len(remaining.Msg.Members) != 3 {
			t.Errorf("expected Alice, Bob and Dave, got %+v", remaining.Msg.Members)
		}
	})
}

func TestRelationErrors(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	token := register(t, c, "owner@example.com")

	bob := createMember(t, c, token, "Bob", true)
	alice := createMember(t, c, token, "Alice", false)
	dana := createMember(t, c, token, "Dana", false)
	evan := createMember(t, c, token, "Evan", true)
	cara := createMember(t, c, token, "Cara", false)

	if _, err := c.relation.CreateCouple(ctx, authed(token, &api.CreateCoupleRequest{MemberId: bob, PartnerId: alice})); err != nil {
		t.Fatalf("CreateCouple failed: %v", err)
	}

	t.Run("same gender is invalid", func(t *testing.T) {
		_, err := c.relation.CreateCouple(ctx, authed(token, &api.CreateCoupleRequest{MemberId: bob, PartnerId: evan}))
		expectCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("married husband is a failed precondition with a reason", func(t *testing.T) {
		_, err := c.relation.CreateCouple(ctx, authed(token, &api.CreateCoupleRequest{MemberId: bob, PartnerId: dana}))
		expectCode(t, err, connect.CodeFailedPrecondition)

		var connectErr *connect.Error
		if !errors.As(err, &connectErr) {
			t.Fatalf("expected *connect.Error, got %T", err)
		}
		if got := connectErr.Meta().Get("Kinship-Reason"); got != "husband_already_married" {
			t.Errorf("reason: expected husband_already_married, got %q", got)
		}
	})

	t.Run("unknown partner", func(t *testing.T) {
		_, err := c.relation.CreateCouple(ctx, authed(token, &api.CreateCoupleRequest{MemberId: evan, PartnerId: "missing"}))
		expectCode(t, err, connect.CodeNotFound)
	})

	t.Run("unmarried parent", func(t *testing.T) {
		_, err := c.relation.CreateParentChildLinks(ctx, authed(token, &api.CreateParentChildLinksRequest{ParentId: evan, ChildIds: []string{cara}}))
		expectCode(t, err, connect.CodeFailedPrecondition)
	})

	t.Run("empty batch", func(t *testing.T) {
		_, err := c.relation.CreateParentChildLinks(ctx, authed(token, &api.CreateParentChildLinksRequest{ParentId: bob}))
		expectCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("batch reports skipped children", func(t *testing.T) {
		resp, err := c.relation.CreateParentChildLinks(ctx, authed(token, &api.CreateParentChildLinksRequest{
			ParentId: bob,
			ChildIds: []string{cara, "ghost", cara},
		}))
		if err != nil {
			t.Fatalf("CreateParentChildLinks failed: %v", err)
		}
		if resp.Msg.AcceptedCount != 1 {
			t.Errorf("expected 1 accepted, got %d", resp.Msg.AcceptedCount)
		}
		reasons := map[string]string{}
		for _, s := range resp.Msg.Skipped {
			reasons[s.ChildId] = s.Reason
		}
		if reasons["ghost"] != "not_found" || reasons[cara] != "duplicate_link" {
			t.Errorf("unexpected skipped children: %+v", resp.Msg.Skipped)
		}
	})

	t.Run("delete unknown link", func(t *testing.T) {
		_, err := c.relation.DeleteParentChildLink(ctx, authed(token, &api.DeleteParentChildLinkRequest{ParentId: bob, ChildId: dana}))
		expectCode(t, err, connect.CodeFailedPrecondition)
	})

	t.Run("gender of a married member is locked", func(t *testing.T) {
		female := false
		_, err := c.members.UpdateMember(ctx, authed(token, &api.UpdateMemberRequest{MemberId: bob, Gender: &female}))
		expectCode(t, err, connect.CodeFailedPrecondition)
	})

	t.Run("divorce frees both spouses", func(t *testing.T) {
		if _, err := c.relation.DeleteCouple(ctx, authed(token, &api.DeleteCoupleRequest{MemberId: alice})); err != nil {
			t.Fatalf("DeleteCouple failed: %v", err)
		}
		if _, err := c.relation.CreateCouple(ctx, authed(token, &api.CreateCoupleRequest{MemberId: bob, PartnerId: dana})); err != nil {
			t.Errorf("remarriage failed: %v", err)
		}
		_, err := c.relation.GetCouple(ctx, authed(token, &api.GetCoupleRequest{MemberId: alice}))
		expectCode(t, err, connect.CodeFailedPrecondition)
	})
}

func TestFamilyManagement(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	token := register(t, c, "owner@example.com")

	resp, err := c.families.CreateFamily(ctx, authed(token, &api.CreateFamilyRequest{Name: "Smiths"}))
	if err != nil {
		t.Fatalf("CreateFamily failed: %v", err)
	}
	familyID := resp.Msg.Family.Id

	t.Run("duplicate name", func(t *testing.T) {
		_, err := c.families.CreateFamily(ctx, authed(token, &api.CreateFamilyRequest{Name: "Smiths"}))
		expectCode(t, err, connect.CodeAlreadyExists)
	})

	t.Run("blank name", func(t *testing.T) {
		_, err := c.families.CreateFamily(ctx, authed(token, &api.CreateFamilyRequest{Name: "   "}))
		expectCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("rename", func(t *testing.T) {
		_, err := c.families.RenameFamily(ctx, authed(token, &api.RenameFamilyRequest{FamilyId: familyID, Name: "Smiths"}))
		expectCode(t, err, connect.CodeInvalidArgument)

		renamed, err := c.families.RenameFamily(ctx, authed(token, &api.RenameFamilyRequest{FamilyId: familyID, Name: "Smythes"}))
		if err != nil {
			t.Fatalf("RenameFamily failed: %v", err)
		}
		if renamed.Msg.Family.Name != "Smythes" {
			t.Errorf("name: expected Smythes, got %s", renamed.Msg.Family.Name)
		}
	})

	t.Run("membership", func(t *testing.T) {
		bob := createMember(t, c, token, "Bob", true)
		add := &api.AddFamilyMemberRequest{FamilyId: familyID, MemberId: bob}
		if _, err := c.families.AddFamilyMember(ctx, authed(token, add)); err != nil {
			t.Fatalf("AddFamilyMember failed: %v", err)
		}
		_, err := c.families.AddFamilyMember(ctx, authed(token, add))
		expectCode(t, err, connect.CodeAlreadyExists)

		members, err := c.families.ListFamilyMembers(ctx, authed(token, &api.ListFamilyMembersRequest{FamilyId: familyID}))
		if err != nil {
			t.Fatalf("ListFamilyMembers failed: %v", err)
		}
		if len(members.Msg.Members) != 1 {
			t.Errorf("expected 1 member, got %d", len(members.Msg.Members))
		}

		remove := &api.RemoveFamilyMemberRequest{FamilyId: familyID, MemberId: bob}
		if _, err := c.families.RemoveFamilyMember(ctx, authed(token, remove)); err != nil {
			t.Fatalf("RemoveFamilyMember failed: %v", err)
		}
		_, err = c.families.RemoveFamilyMember(ctx, authed(token, remove))
		expectCode(t, err, connect.CodeNotFound)
	})

	t.Run("list and delete", func(t *testing.T) {
		list, err := c.families.ListFamilies(ctx, authed(token, &api.ListFamiliesRequest{}))
		if err != nil {
			t.Fatalf("ListFamilies failed: %v", err)
		}
		if len(list.Msg.Families) != 1 {
			t.Errorf("expected 1 family, got %d", len(list.Msg.Families))
		}

		if _, err := c.families.DeleteFamily(ctx, authed(token, &api.DeleteFamilyRequest{FamilyId: familyID})); err != nil {
			t.Fatalf("DeleteFamily failed: %v", err)
		}
		_, err = c.families.GetFamily(ctx, authed(token, &api.GetFamilyRequest{FamilyId: familyID}))
		expectCode(t, err, connect.CodeNotFound)
	})
}

func TestOwnershipIsolation(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	ann := register(t, c, "ann@example.com")
	ben := register(t, c, "ben@example.com")

	bob := createMember(t, c, ann, "Bob", true)
	alice := createMember(t, c, ann, "Alice", false)
	famResp, err := c.families.CreateFamily(ctx, authed(ann, &api.CreateFamilyRequest{Name: "Smiths"}))
	if err != nil {
		t.Fatalf("CreateFamily failed: %v", err)
	}
	familyID := famResp.Msg.Family.Id

	_, err = c.members.GetMember(ctx, authed(ben, &api.GetMemberRequest{MemberId: bob}))
	expectCode(t, err, connect.CodeNotFound)

	_, err = c.relation.CreateCouple(ctx, authed(ben, &api.CreateCoupleRequest{MemberId: bob, PartnerId: alice}))
	expectCode(t, err, connect.CodeNotFound)

	_, err = c.families.GetFamilyTree(ctx, authed(ben, &api.GetFamilyTreeRequest{FamilyId: familyID}))
	expectCode(t, err, connect.CodeNotFound)

	// Ben cannot smuggle his own member into Ann's family, nor Ann's into his.
	eve := createMember(t, c, ben, "Eve", false)
	_, err = c.families.AddFamilyMember(ctx, authed(ann, &api.AddFamilyMemberRequest{FamilyId: familyID, MemberId: eve}))
	expectCode(t, err, connect.CodeNotFound)

	// Family names are unique per owner only.
	if _, err := c.families.CreateFamily(ctx, authed(ben, &api.CreateFamilyRequest{Name: "Smiths"})); err != nil {
		t.Errorf("Ben should be able to reuse the name: %v", err)
	}

	list, err := c.members.ListMembers(ctx, authed(ben, &api.ListMembersRequest{}))
	if err != nil {
		t.Fatalf("ListMembers failed: %v", err)
	}
	if len(list.Msg.Members) != 1 || list.Msg.Members[0].Id != eve {
		t.Errorf("Ben should only see Eve, got %+v", list.Msg.Members)
	}
}
