package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/kinship/internal/family"
	"github.com/mmynk/kinship/internal/metrics"
	"github.com/mmynk/kinship/internal/models"
	"github.com/mmynk/kinship/internal/storage"
	"github.com/mmynk/kinship/internal/treegraph"
	"github.com/mmynk/kinship/pkg/api"
	"github.com/mmynk/kinship/pkg/api/apiconnect"
)

var _ apiconnect.FamilyServiceHandler = (*FamilyService)(nil)

var (
	errEmptyName     = errors.New("name must not be empty")
	errNameUnchanged = errors.New("name is unchanged")
)

// FamilyService implements the Connect FamilyService
type FamilyService struct {
	store      storage.Store
	aggregator *family.Aggregator
	layouter   treegraph.Layouter
}

// NewFamilyService creates a new FamilyService. A nil layouter uses the
// default layered layout.
func NewFamilyService(store storage.Store, layouter treegraph.Layouter) *FamilyService {
	if layouter == nil {
		layouter = treegraph.Layered{}
	}
	return &FamilyService{
		store:      store,
		aggregator: family.NewAggregator(store),
		layouter:   layouter,
	}
}

// CreateFamily creates a new family for the caller.
func (s *FamilyService) CreateFamily(ctx context.Context, req *connect.Request[api.CreateFamilyRequest]) (*connect.Response[api.CreateFamilyResponse], error) {
	owner, err := ownerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("CreateFamily request received", "owner_id", owner, "name", req.Msg.Name)

	name := strings.TrimSpace(req.Msg.Name)
	if name == "" {
		return nil, invalidArgument(errEmptyName)
	}

	f := &models.Family{Name: name, OwnerID: owner}
	if err := s.store.CreateFamily(ctx, f); err != nil {
		return nil, toConnectError("CreateFamily", err, "owner_id", owner, "name", name)
	}

	slog.Info("Family created", "family_id", f.ID)
	return connect.NewResponse(&api.CreateFamilyResponse{Family: toAPIFamily(f)}), nil
}

// GetFamily retrieves a family by ID.
func (s *FamilyService) GetFamily(ctx context.Context, req *connect.Request[api.GetFamilyRequest]) (*connect.Response[api.GetFamilyResponse], error) {
	owner, err := ownerID(ctx)
	if err != nil {
		return nil, err
	}

	f, err := s.store.GetFamily(ctx, owner, req.Msg.FamilyId)
	if err != nil {
		return nil, toConnectError("GetFamily", err, "owner_id", owner, "family_id", req.Msg.FamilyId)
	}
	return connect.NewResponse(&api.GetFamilyResponse{Family: toAPIFamily(f)}), nil
}

// ListFamilies retrieves the caller's families.
func (s *FamilyService) ListFamilies(ctx context.Context, req *connect.Request[api.ListFamiliesRequest]) (*connect.Response[api.ListFamiliesResponse], error) {
	owner, err := ownerID(ctx)
	if err != nil {
		return nil, err
	}

	families, err := s.store.ListFamilies(ctx, owner)
	if err != nil {
		return nil, toConnectError("ListFamilies", err, "owner_id", owner)
	}

	out := make([]*api.Family, len(families))
	for i := range families {
		out[i] = toAPIFamily(&families[i])
	}

	slog.Info("ListFamilies successful", "owner_id", owner, "count", len(families))
	return connect.NewResponse(&api.ListFamiliesResponse{Families: out}), nil
}

// RenameFamily changes a family's name. The new name must differ from the old one.
func (s *FamilyService) RenameFamily(ctx context.Context, req *connect.Request[api.RenameFamilyRequest]) (*connect.Response[api.RenameFamilyResponse], error) {
	owner, err := ownerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("RenameFamily request received", "owner_id", owner, "family_id", req.Msg.FamilyId, "name", req.Msg.Name)

	name := strings.TrimSpace(req.Msg.Name)
	if name == "" {
		return nil, invalidArgument(errEmptyName)
	}

	f, err := s.store.GetFamily(ctx, owner, req.Msg.FamilyId)
	if err != nil {
		return nil, toConnectError("RenameFamily", err, "owner_id", owner, "family_id", req.Msg.FamilyId)
	}
	if f.Name == name {
		return nil, invalidArgument(errNameUnchanged)
	}

	if err := s.store.RenameFamily(ctx, owner, f.ID, name); err != nil {
		return nil, toConnectError("RenameFamily", err, "owner_id", owner, "family_id", f.ID)
	}
	f.Name = name

	slog.Info("Family renamed", "family_id", f.ID)
	return connect.NewResponse(&api.RenameFamilyResponse{Family: toAPIFamily(f)}), nil
}

// DeleteFamily removes a family. Its members are kept.
func (s *FamilyService) DeleteFamily(ctx context.Context, req *connect.Request[api.DeleteFamilyRequest]) (*connect.Response[api.DeleteFamilyResponse], error) {
	owner, err := ownerID(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.store.DeleteFamily(ctx, owner, req.Msg.FamilyId); err != nil {
		return nil, toConnectError("DeleteFamily", err, "owner_id", owner, "family_id", req.Msg.FamilyId)
	}

	slog.Info("Family deleted", "family_id", req.Msg.FamilyId)
	return connect.NewResponse(&api.DeleteFamilyResponse{}), nil
}

// AddFamilyMember places one of the caller's members in one of the caller's families.
func (s *FamilyService) AddFamilyMember(ctx context.Context, req *connect.Request[api.AddFamilyMemberRequest]) (*connect.Response[api.AddFamilyMemberResponse], error) {
	owner, err := ownerID(ctx)
	if err != nil {
		return nil, err
	}
	attrs := []any{"owner_id", owner, "family_id", req.Msg.FamilyId, "member_id", req.Msg.MemberId}
	slog.Info("AddFamilyMember request received", attrs...)

	if err := s.checkOwned(ctx, owner, req.Msg.FamilyId, req.Msg.MemberId); err != nil {
		return nil, toConnectError("AddFamilyMember", err, attrs...)
	}

	membership := models.FamilyMembership{FamilyID: req.Msg.FamilyId, MemberID: req.Msg.MemberId}
	if err := s.store.AddFamilyMember(ctx, membership); err != nil {
		return nil, toConnectError("AddFamilyMember", err, attrs...)
	}
	return connect.NewResponse(&api.AddFamilyMemberResponse{}), nil
}

// RemoveFamilyMember takes a member out of a family.
func (s *FamilyService) RemoveFamilyMember(ctx context.Context, req *connect.Request[api.RemoveFamilyMemberRequest]) (*connect.Response[api.RemoveFamilyMemberResponse], error) {
	owner, err := ownerID(ctx)
	if err != nil {
		return nil, err
	}
	attrs := []any{"owner_id", owner, "family_id", req.Msg.FamilyId, "member_id", req.Msg.MemberId}

	if _, err := s.store.GetFamily(ctx, owner, req.Msg.FamilyId); err != nil {
		return nil, toConnectError("RemoveFamilyMember", err, attrs...)
	}

	membership := models.FamilyMembership{FamilyID: req.Msg.FamilyId, MemberID: req.Msg.MemberId}
	if err := s.store.RemoveFamilyMember(ctx, membership); err != nil {
		return nil, toConnectError("RemoveFamilyMember", err, attrs...)
	}
	return connect.NewResponse(&api.RemoveFamilyMemberResponse{}), nil
}

// ListFamilyMembers lists the members of a family.
func (s *FamilyService) ListFamilyMembers(ctx context.Context, req *connect.Request[api.ListFamilyMembersRequest]) (*connect.Response[api.ListFamilyMembersResponse], error) {
	owner, err := ownerID(ctx)
	if err != nil {
		return nil, err
	}

	members, err := s.aggregator.FamilyMembers(ctx, owner, req.Msg.FamilyId)
	if err != nil {
		return nil, toConnectError("ListFamilyMembers", err, "owner_id", owner, "family_id", req.Msg.FamilyId)
	}
	return connect.NewResponse(&api.ListFamilyMembersResponse{Members: toAPISummaries(members)}), nil
}

// ListRecommendedMembers lists the caller's members not yet in the family.
func (s *FamilyService) ListRecommendedMembers(ctx context.Context, req *connect.Request[api.ListRecommendedMembersRequest]) (*connect.Response[api.ListRecommendedMembersResponse], error) {
	owner, err := ownerID(ctx)
	if err != nil {
		return nil, err
	}

	members, err := s.aggregator.RecommendedMembers(ctx, owner, req.Msg.FamilyId)
	if err != nil {
		return nil, toConnectError("ListRecommendedMembers", err, "owner_id", owner, "family_id", req.Msg.FamilyId)
	}
	return connect.NewResponse(&api.ListRecommendedMembersResponse{Members: toAPISummaries(members)}), nil
}

// GetFamilyTree builds the family's graph and lays it out.
func (s *FamilyService) GetFamilyTree(ctx context.Context, req *connect.Request[api.GetFamilyTreeRequest]) (*connect.Response[api.GetFamilyTreeResponse], error) {
	owner, err := ownerID(ctx)
	if err != nil {
		return nil, err
	}
	attrs := []any{"owner_id", owner, "family_id", req.Msg.FamilyId}

	direction, err := treegraph.ParseDirection(req.Msg.Direction)
	if err != nil {
		return nil, invalidArgument(err)
	}

	snap, err := s.aggregator.Tree(ctx, owner, req.Msg.FamilyId)
	if err != nil {
		return nil, toConnectError("GetFamilyTree", err, attrs...)
	}

	graph := treegraph.Build(snap.Members, snap.Couples, snap.Links)
	if graph.Omitted > 0 {
		slog.Warn("Family tree has unresolved edges", append(attrs, "omitted", graph.Omitted)...)
	}

	opts := treegraph.DefaultOptions()
	opts.Direction = direction
	layout, err := s.layouter.Layout(graph, opts)
	if err != nil {
		return nil, toConnectError("GetFamilyTree", err, attrs...)
	}
	metrics.LayoutNodes.Observe(float64(len(layout.Nodes)))

	nodes, edges := toAPIGraph(layout)
	slog.Info("GetFamilyTree successful", append(attrs, "nodes", len(nodes), "edges", len(edges))...)
	return connect.NewResponse(&api.GetFamilyTreeResponse{
		Family:       toAPIFamily(&snap.Family),
		Direction:    string(layout.Direction),
		Nodes:        nodes,
		Edges:        edges,
		OmittedEdges: graph.Omitted,
	}), nil
}

// checkOwned confirms both the family and the member belong to the owner.
func (s *FamilyService) checkOwned(ctx context.Context, owner, familyID, memberID string) error {
	if _, err := s.store.GetFamily(ctx, owner, familyID); err != nil {
		return err
	}
	_, err := s.store.GetMember(ctx, owner, memberID)
	return err
}
