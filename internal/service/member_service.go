package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/kinship/internal/family"
	"github.com/mmynk/kinship/internal/models"
	"github.com/mmynk/kinship/internal/relation"
	"github.com/mmynk/kinship/internal/storage"
	"github.com/mmynk/kinship/pkg/api"
	"github.com/mmynk/kinship/pkg/api/apiconnect"
)

var _ apiconnect.MemberServiceHandler = (*MemberService)(nil)

// MemberService implements the Connect MemberService.
type MemberService struct {
	store      storage.Store
	mutator    *relation.Mutator
	aggregator *family.Aggregator
}

// NewMemberService creates a new MemberService with the given storage backend.
func NewMemberService(store storage.Store) *MemberService {
	return &MemberService{
		store:      store,
		mutator:    relation.NewMutator(store),
		aggregator: family.NewAggregator(store),
	}
}

// CreateMember records a new member for the caller.
func (s *MemberService) CreateMember(ctx context.Context, req *connect.Request[api.CreateMemberRequest]) (*connect.Response[api.CreateMemberResponse], error) {
	owner, err := ownerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("CreateMember request received", "owner_id", owner, "name", req.Msg.Name)

	birth, err := parseDate("dateOfBirth", req.Msg.DateOfBirth)
	if err != nil {
		return nil, invalidArgument(err)
	}
	death, err := parseDate("dateOfDeath", req.Msg.DateOfDeath)
	if err != nil {
		return nil, invalidArgument(err)
	}
	if err := checkLifespan(birth, death); err != nil {
		return nil, invalidArgument(err)
	}

	member := &models.Member{
		Name:        req.Msg.Name,
		Gender:      *req.Msg.Gender,
		Age:         *req.Msg.Age,
		DateOfBirth: birth,
		DateOfDeath: death,
		BloodGroup:  req.Msg.BloodGroup,
		OwnerID:     owner,
	}
	if err := s.store.CreateMember(ctx, member); err != nil {
		return nil, toConnectError("CreateMember", err, "owner_id", owner)
	}

	slog.Info("Member created", "member_id", member.ID)
	return connect.NewResponse(&api.CreateMemberResponse{Member: toAPIMember(member)}), nil
}

// GetMember retrieves one of the caller's members.
func (s *MemberService) GetMember(ctx context.Context, req *connect.Request[api.GetMemberRequest]) (*connect.Response[api.GetMemberResponse], error) {
	owner, err := ownerID(ctx)
	if err != nil {
		return nil, err
	}

	member, err := s.store.GetMember(ctx, owner, req.Msg.MemberId)
	if err != nil {
		return nil, toConnectError("GetMember", err, "owner_id", owner, "member_id", req.Msg.MemberId)
	}
	return connect.NewResponse(&api.GetMemberResponse{Member: toAPIMember(member)}), nil
}

// ListMembers lists the caller's members by name.
func (s *MemberService) ListMembers(ctx context.Context, req *connect.Request[api.ListMembersRequest]) (*connect.Response[api.ListMembersResponse], error) {
	owner, err := ownerID(ctx)
	if err != nil {
		return nil, err
	}

	members, err := s.store.ListMembers(ctx, owner)
	if err != nil {
		return nil, toConnectError("ListMembers", err, "owner_id", owner)
	}

	slog.Info("ListMembers successful", "owner_id", owner, "count", len(members))
	return connect.NewResponse(&api.ListMembersResponse{
		Members: toAPISummaries(family.Summaries(members)),
	}), nil
}

// UpdateMember changes the fields present in the request.
func (s *MemberService) UpdateMember(ctx context.Context, req *connect.Request[api.UpdateMemberRequest]) (*connect.Response[api.UpdateMemberResponse], error) {
	owner, err := ownerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("UpdateMember request received", "owner_id", owner, "member_id", req.Msg.MemberId)

	update := &models.MemberUpdate{
		ID:         req.Msg.MemberId,
		OwnerID:    owner,
		Name:       req.Msg.Name,
		Gender:     req.Msg.Gender,
		Age:        req.Msg.Age,
		BloodGroup: req.Msg.BloodGroup,
	}
	if req.Msg.DateOfBirth != nil {
		if update.DateOfBirth, err = parseDate("dateOfBirth", *req.Msg.DateOfBirth); err != nil {
			return nil, invalidArgument(err)
		}
	}
	if req.Msg.DateOfDeath != nil {
		if update.DateOfDeath, err = parseDate("dateOfDeath", *req.Msg.DateOfDeath); err != nil {
			return nil, invalidArgument(err)
		}
	}

	member, err := s.mutator.UpdateMember(ctx, update)
	if err != nil {
		return nil, toConnectError("UpdateMember", err, "owner_id", owner, "member_id", req.Msg.MemberId)
	}

	slog.Info("Member updated", "member_id", member.ID)
	return connect.NewResponse(&api.UpdateMemberResponse{Member: toAPIMember(member)}), nil
}

// DeleteMember removes a member together with its relationships and memberships.
func (s *MemberService) DeleteMember(ctx context.Context, req *connect.Request[api.DeleteMemberRequest]) (*connect.Response[api.DeleteMemberResponse], error) {
	owner, err := ownerID(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.store.DeleteMember(ctx, owner, req.Msg.MemberId); err != nil {
		return nil, toConnectError("DeleteMember", err, "owner_id", owner, "member_id", req.Msg.MemberId)
	}

	slog.Info("Member deleted", "member_id", req.Msg.MemberId)
	return connect.NewResponse(&api.DeleteMemberResponse{}), nil
}

// ListUnmarriedMembers lists members of a gender that are free to marry.
func (s *MemberService) ListUnmarriedMembers(ctx context.Context, req *connect.Request[api.ListUnmarriedMembersRequest]) (*connect.Response[api.ListUnmarriedMembersResponse], error) {
	owner, err := ownerID(ctx)
	if err != nil {
		return nil, err
	}

	members, err := s.aggregator.UnmarriedOfGender(ctx, owner, *req.Msg.Gender)
	if err != nil {
		return nil, toConnectError("ListUnmarriedMembers", err, "owner_id", owner)
	}
	return connect.NewResponse(&api.ListUnmarriedMembersResponse{Members: toAPISummaries(members)}), nil
}

// ListRemainingChildren lists members that have no parents yet.
func (s *MemberService) ListRemainingChildren(ctx context.Context, req *connect.Request[api.ListRemainingChildrenRequest]) (*connect.Response[api.ListRemainingChildrenResponse], error) {
	owner, err := ownerID(ctx)
	if err != nil {
		return nil, err
	}

	members, err := s.aggregator.RemainingChildren(ctx, owner)
	if err != nil {
		return nil, toConnectError("ListRemainingChildren", err, "owner_id", owner)
	}
	return connect.NewResponse(&api.ListRemainingChildrenResponse{Members: toAPISummaries(members)}), nil
}
