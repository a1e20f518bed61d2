package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/kinship/internal/relation"
	"github.com/mmynk/kinship/pkg/api"
	"github.com/mmynk/kinship/pkg/api/apiconnect"
)

var _ apiconnect.RelationServiceHandler = (*RelationService)(nil)

// RelationService implements the Connect RelationService on top of the
// relationship mutator.
type RelationService struct {
	mutator *relation.Mutator
}

// NewRelationService creates a new RelationService.
func NewRelationService(store relation.Store) *RelationService {
	return &RelationService{mutator: relation.NewMutator(store)}
}

// CreateCouple marries two of the caller's members.
func (s *RelationService) CreateCouple(ctx context.Context, req *connect.Request[api.CreateCoupleRequest]) (*connect.Response[api.CreateCoupleResponse], error) {
	owner, err := ownerID(ctx)
	if err != nil {
		return nil, err
	}
	attrs := []any{"owner_id", owner, "member_id", req.Msg.MemberId, "partner_id", req.Msg.PartnerId}
	slog.Info("CreateCouple request received", attrs...)

	couple, err := s.mutator.CreateCouple(ctx, owner, req.Msg.MemberId, req.Msg.PartnerId)
	if err != nil {
		return nil, toConnectError("CreateCouple", err, attrs...)
	}

	slog.Info("Couple created", "couple_id", couple.ID)
	return connect.NewResponse(&api.CreateCoupleResponse{Couple: toAPICouple(couple)}), nil
}

// GetCouple returns the member's couple and spouse.
func (s *RelationService) GetCouple(ctx context.Context, req *connect.Request[api.GetCoupleRequest]) (*connect.Response[api.GetCoupleResponse], error) {
	owner, err := ownerID(ctx)
	if err != nil {
		return nil, err
	}

	couple, err := s.mutator.GetCouple(ctx, owner, req.Msg.MemberId)
	if err != nil {
		return nil, toConnectError("GetCouple", err, "owner_id", owner, "member_id", req.Msg.MemberId)
	}
	return connect.NewResponse(&api.GetCoupleResponse{
		Couple:   toAPICouple(couple),
		SpouseId: couple.Spouse(req.Msg.MemberId),
	}), nil
}

// DeleteCouple dissolves the member's couple.
func (s *RelationService) DeleteCouple(ctx context.Context, req *connect.Request[api.DeleteCoupleRequest]) (*connect.Response[api.DeleteCoupleResponse], error) {
	owner, err := ownerID(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.mutator.DeleteCouple(ctx, owner, req.Msg.MemberId); err != nil {
		return nil, toConnectError("DeleteCouple", err, "owner_id", owner, "member_id", req.Msg.MemberId)
	}

	slog.Info("Couple deleted", "member_id", req.Msg.MemberId)
	return connect.NewResponse(&api.DeleteCoupleResponse{}), nil
}

// CreateParentChildLinks links children to the parent's couple. Children
// that cannot be linked are reported, not fatal.
func (s *RelationService) CreateParentChildLinks(ctx context.Context, req *connect.Request[api.CreateParentChildLinksRequest]) (*connect.Response[api.CreateParentChildLinksResponse], error) {
	owner, err := ownerID(ctx)
	if err != nil {
		return nil, err
	}
	attrs := []any{"owner_id", owner, "parent_id", req.Msg.ParentId}
	slog.Info("CreateParentChildLinks request received", append(attrs, "children_count", len(req.Msg.ChildIds))...)

	result, err := s.mutator.CreateParentChildLinks(ctx, owner, req.Msg.ParentId, req.Msg.ChildIds)
	if err != nil {
		return nil, toConnectError("CreateParentChildLinks", err, attrs...)
	}

	slog.Info("Parent-child links created",
		"couple_id", result.CoupleID,
		"accepted", result.AcceptedCount(),
		"skipped", len(result.Skipped),
	)
	accepted := result.Accepted
	if accepted == nil {
		accepted = []string{}
	}
	return connect.NewResponse(&api.CreateParentChildLinksResponse{
		CoupleId:      result.CoupleID,
		AcceptedCount: result.AcceptedCount(),
		Accepted:      accepted,
		Skipped:       toAPISkipped(result.Skipped),
	}), nil
}

// GetParentChild lists the children of the member's couple.
func (s *RelationService) GetParentChild(ctx context.Context, req *connect.Request[api.GetParentChildRequest]) (*connect.Response[api.GetParentChildResponse], error) {
	owner, err := ownerID(ctx)
	if err != nil {
		return nil, err
	}

	couple, children, err := s.mutator.GetChildren(ctx, owner, req.Msg.ParentId)
	if err != nil {
		return nil, toConnectError("GetParentChild", err, "owner_id", owner, "parent_id", req.Msg.ParentId)
	}
	return connect.NewResponse(&api.GetParentChildResponse{
		CoupleId: couple.ID,
		Children: toAPISummaries(children),
	}), nil
}

// DeleteParentChildLink removes one child from the parent's couple.
func (s *RelationService) DeleteParentChildLink(ctx context.Context, req *connect.Request[api.DeleteParentChildLinkRequest]) (*connect.Response[api.DeleteParentChildLinkResponse], error) {
	owner, err := ownerID(ctx)
	if err != nil {
		return nil, err
	}
	attrs := []any{"owner_id", owner, "parent_id", req.Msg.ParentId, "child_id", req.Msg.ChildId}

	if err := s.mutator.DeleteParentChildLink(ctx, owner, req.Msg.ParentId, req.Msg.ChildId); err != nil {
		return nil, toConnectError("DeleteParentChildLink", err, attrs...)
	}

	slog.Info("Parent-child link deleted", attrs...)
	return connect.NewResponse(&api.DeleteParentChildLinkResponse{}), nil
}
