// Package apiconnect wires the Kinship services to Connect handlers and
// clients. Every handler and client uses api.Codec, so payloads are JSON.
package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/kinship/pkg/api"
)

const (
	// AuthServiceName is the fully-qualified name of the AuthService service.
	AuthServiceName = "kinship.v1.AuthService"
	// MemberServiceName is the fully-qualified name of the MemberService service.
	MemberServiceName = "kinship.v1.MemberService"
	// FamilyServiceName is the fully-qualified name of the FamilyService service.
	FamilyServiceName = "kinship.v1.FamilyService"
	// RelationServiceName is the fully-qualified name of the RelationService service.
	RelationServiceName = "kinship.v1.RelationService"
)

// Procedure paths, in the form /<service>/<method>.
const (
	AuthServiceRegisterProcedure                   = "/kinship.v1.AuthService/Register"
	AuthServiceLoginProcedure                      = "/kinship.v1.AuthService/Login"
	AuthServiceGetCurrentUserProcedure             = "/kinship.v1.AuthService/GetCurrentUser"
	MemberServiceCreateMemberProcedure             = "/kinship.v1.MemberService/CreateMember"
	MemberServiceGetMemberProcedure                = "/kinship.v1.MemberService/GetMember"
	MemberServiceListMembersProcedure              = "/kinship.v1.MemberService/ListMembers"
	MemberServiceUpdateMemberProcedure             = "/kinship.v1.MemberService/UpdateMember"
	MemberServiceDeleteMemberProcedure             = "/kinship.v1.MemberService/DeleteMember"
	MemberServiceListUnmarriedMembersProcedure     = "/kinship.v1.MemberService/ListUnmarriedMembers"
	MemberServiceListRemainingChildrenProcedure    = "/kinship.v1.MemberService/ListRemainingChildren"
	FamilyServiceCreateFamilyProcedure             = "/kinship.v1.FamilyService/CreateFamily"
	FamilyServiceGetFamilyProcedure                = "/kinship.v1.FamilyService/GetFamily"
	FamilyServiceListFamiliesProcedure             = "/kinship.v1.FamilyService/ListFamilies"
	FamilyServiceRenameFamilyProcedure             = "/kinship.v1.FamilyService/RenameFamily"
	FamilyServiceDeleteFamilyProcedure             = "/kinship.v1.FamilyService/DeleteFamily"
	FamilyServiceAddFamilyMemberProcedure          = "/kinship.v1.FamilyService/AddFamilyMember"
	FamilyServiceRemoveFamilyMemberProcedure       = "/kinship.v1.FamilyService/RemoveFamilyMember"
	FamilyServiceListFamilyMembersProcedure        = "/kinship.v1.FamilyService/ListFamilyMembers"
	FamilyServiceListRecommendedMembersProcedure   = "/kinship.v1.FamilyService/ListRecommendedMembers"
	FamilyServiceGetFamilyTreeProcedure            = "/kinship.v1.FamilyService/GetFamilyTree"
	RelationServiceCreateCoupleProcedure           = "/kinship.v1.RelationService/CreateCouple"
	RelationServiceGetCoupleProcedure              = "/kinship.v1.RelationService/GetCouple"
	RelationServiceDeleteCoupleProcedure           = "/kinship.v1.RelationService/DeleteCouple"
	RelationServiceCreateParentChildLinksProcedure = "/kinship.v1.RelationService/CreateParentChildLinks"
	RelationServiceGetParentChildProcedure         = "/kinship.v1.RelationService/GetParentChild"
	RelationServiceDeleteParentChildLinkProcedure  = "/kinship.v1.RelationService/DeleteParentChildLink"
)

// handlerOptions puts the JSON codec ahead of caller options.
func handlerOptions(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{connect.WithCodec(api.Codec{})}, opts...)
}

// clientOptions puts the JSON codec ahead of caller options.
func clientOptions(opts []connect.ClientOption) []connect.ClientOption {
	return append([]connect.ClientOption{connect.WithCodec(api.Codec{})}, opts...)
}

func handle[Req, Res any](mux *http.ServeMux, procedure string, fn func(context.Context, *connect.Request[Req]) (*connect.Response[Res], error), opts []connect.HandlerOption) {
	mux.Handle(procedure, connect.NewUnaryHandler(procedure, fn, opts...))
}

// AuthServiceHandler is implemented by the server side of AuthService.
// AuthService registers accounts and issues tokens.
type AuthServiceHandler interface {
	Register(context.Context, *connect.Request[api.RegisterRequest]) (*connect.Response[api.RegisterResponse], error)
	Login(context.Context, *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error)
	GetCurrentUser(context.Context, *connect.Request[api.GetCurrentUserRequest]) (*connect.Response[api.GetCurrentUserResponse], error)
}

// NewAuthServiceHandler builds an HTTP handler for AuthService. It returns the path
// prefix to mount the handler on.
func NewAuthServiceHandler(svc AuthServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	handle(mux, AuthServiceRegisterProcedure, svc.Register, opts)
	handle(mux, AuthServiceLoginProcedure, svc.Login, opts)
	handle(mux, AuthServiceGetCurrentUserProcedure, svc.GetCurrentUser, opts)
	return "/" + AuthServiceName + "/", mux
}

// AuthServiceClient is a client for AuthService.
type AuthServiceClient interface {
	Register(context.Context, *connect.Request[api.RegisterRequest]) (*connect.Response[api.RegisterResponse], error)
	Login(context.Context, *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error)
	GetCurrentUser(context.Context, *connect.Request[api.GetCurrentUserRequest]) (*connect.Response[api.GetCurrentUserResponse], error)
}

type authServiceClient struct {
	register       *connect.Client[api.RegisterRequest, api.RegisterResponse]
	login          *connect.Client[api.LoginRequest, api.LoginResponse]
	getCurrentUser *connect.Client[api.GetCurrentUserRequest, api.GetCurrentUserResponse]
}

// NewAuthServiceClient creates a client for AuthService at baseURL (e.g. http://localhost:8080).
func NewAuthServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) AuthServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &authServiceClient{
		register:       connect.NewClient[api.RegisterRequest, api.RegisterResponse](httpClient, baseURL+AuthServiceRegisterProcedure, opts...),
		login:          connect.NewClient[api.LoginRequest, api.LoginResponse](httpClient, baseURL+AuthServiceLoginProcedure, opts...),
		getCurrentUser: connect.NewClient[api.GetCurrentUserRequest, api.GetCurrentUserResponse](httpClient, baseURL+AuthServiceGetCurrentUserProcedure, opts...),
	}
}

func (c *authServiceClient) Register(ctx context.Context, req *connect.Request[api.RegisterRequest]) (*connect.Response[api.RegisterResponse], error) {
	return c.register.CallUnary(ctx, req)
}

func (c *authServiceClient) Login(ctx context.Context, req *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error) {
	return c.login.CallUnary(ctx, req)
}

func (c *authServiceClient) GetCurrentUser(ctx context.Context, req *connect.Request[api.GetCurrentUserRequest]) (*connect.Response[api.GetCurrentUserResponse], error) {
	return c.getCurrentUser.CallUnary(ctx, req)
}

// MemberServiceHandler is implemented by the server side of MemberService.
// MemberService manages the caller's members and their candidate pools.
type MemberServiceHandler interface {
	CreateMember(context.Context, *connect.Request[api.CreateMemberRequest]) (*connect.Response[api.CreateMemberResponse], error)
	GetMember(context.Context, *connect.Request[api.GetMemberRequest]) (*connect.Response[api.GetMemberResponse], error)
	ListMembers(context.Context, *connect.Request[api.ListMembersRequest]) (*connect.Response[api.ListMembersResponse], error)
	UpdateMember(context.Context, *connect.Request[api.UpdateMemberRequest]) (*connect.Response[api.UpdateMemberResponse], error)
	DeleteMember(context.Context, *connect.Request[api.DeleteMemberRequest]) (*connect.Response[api.DeleteMemberResponse], error)
	ListUnmarriedMembers(context.Context, *connect.Request[api.ListUnmarriedMembersRequest]) (*connect.Response[api.ListUnmarriedMembersResponse], error)
	ListRemainingChildren(context.Context, *connect.Request[api.ListRemainingChildrenRequest]) (*connect.Response[api.ListRemainingChildrenResponse], error)
}

// NewMemberServiceHandler builds an HTTP handler for MemberService. It returns the path
// prefix to mount the handler on.
func NewMemberServiceHandler(svc MemberServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	handle(mux, MemberServiceCreateMemberProcedure, svc.CreateMember, opts)
	handle(mux, MemberServiceGetMemberProcedure, svc.GetMember, opts)
	handle(mux, MemberServiceListMembersProcedure, svc.ListMembers, opts)
	handle(mux, MemberServiceUpdateMemberProcedure, svc.UpdateMember, opts)
	handle(mux, MemberServiceDeleteMemberProcedure, svc.DeleteMember, opts)
	handle(mux, MemberServiceListUnmarriedMembersProcedure, svc.ListUnmarriedMembers, opts)
	handle(mux, MemberServiceListRemainingChildrenProcedure, svc.ListRemainingChildren, opts)
	return "/" + MemberServiceName + "/", mux
}

// MemberServiceClient is a client for MemberService.
type MemberServiceClient interface {
	CreateMember(context.Context, *connect.Request[api.CreateMemberRequest]) (*connect.Response[api.CreateMemberResponse], error)
	GetMember(context.Context, *connect.Request[api.GetMemberRequest]) (*connect.Response[api.GetMemberResponse], error)
	ListMembers(context.Context, *connect.Request[api.ListMembersRequest]) (*connect.Response[api.ListMembersResponse], error)
	UpdateMember(context.Context, *connect.Request[api.UpdateMemberRequest]) (*connect.Response[api.UpdateMemberResponse], error)
	DeleteMember(context.Context, *connect.Request[api.DeleteMemberRequest]) (*connect.Response[api.DeleteMemberResponse], error)
	ListUnmarriedMembers(context.Context, *connect.Request[api.ListUnmarriedMembersRequest]) (*connect.Response[api.ListUnmarriedMembersResponse], error)
	ListRemainingChildren(context.Context, *connect.Request[api.ListRemainingChildrenRequest]) (*connect.Response[api.ListRemainingChildrenResponse], error)
}

type memberServiceClient struct {
	createMember          *connect.Client[api.CreateMemberRequest, api.CreateMemberResponse]
	getMember             *connect.Client[api.GetMemberRequest, api.GetMemberResponse]
	listMembers           *connect.Client[api.ListMembersRequest, api.ListMembersResponse]
	updateMember          *connect.Client[api.UpdateMemberRequest, api.UpdateMemberResponse]
	deleteMember          *connect.Client[api.DeleteMemberRequest, api.DeleteMemberResponse]
	listUnmarriedMembers  *connect.Client[api.ListUnmarriedMembersRequest, api.ListUnmarriedMembersResponse]
	listRemainingChildren *connect.Client[api.ListRemainingChildrenRequest, api.ListRemainingChildrenResponse]
}

// NewMemberServiceClient creates a client for MemberService at baseURL (e.g. http://localhost:8080).
func NewMemberServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) MemberServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &memberServiceClient{
		createMember:          connect.NewClient[api.CreateMemberRequest, api.CreateMemberResponse](httpClient, baseURL+MemberServiceCreateMemberProcedure, opts...),
		getMember:             connect.NewClient[api.GetMemberRequest, api.GetMemberResponse](httpClient, baseURL+MemberServiceGetMemberProcedure, opts...),
		listMembers:           connect.NewClient[api.ListMembersRequest, api.ListMembersResponse](httpClient, baseURL+MemberServiceListMembersProcedure, opts...),
		updateMember:          connect.NewClient[api.UpdateMemberRequest, api.UpdateMemberResponse](httpClient, baseURL+MemberServiceUpdateMemberProcedure, opts...),
		deleteMember:          connect.NewClient[api.DeleteMemberRequest, api.DeleteMemberResponse](httpClient, baseURL+MemberServiceDeleteMemberProcedure, opts...),
		listUnmarriedMembers:  connect.NewClient[api.ListUnmarriedMembersRequest, api.ListUnmarriedMembersResponse](httpClient, baseURL+MemberServiceListUnmarriedMembersProcedure, opts...),
		listRemainingChildren: connect.NewClient[api.ListRemainingChildrenRequest, api.ListRemainingChildrenResponse](httpClient, baseURL+MemberServiceListRemainingChildrenProcedure, opts...),
	}
}

func (c *memberServiceClient) CreateMember(ctx context.Context, req *connect.Request[api.CreateMemberRequest]) (*connect.Response[api.CreateMemberResponse], error) {
	return c.createMember.CallUnary(ctx, req)
}

func (c *memberServiceClient) GetMember(ctx context.Context, req *connect.Request[api.GetMemberRequest]) (*connect.Response[api.GetMemberResponse], error) {
	return c.getMember.CallUnary(ctx, req)
}

func (c *memberServiceClient) ListMembers(ctx context.Context, req *connect.Request[api.ListMembersRequest]) (*connect.Response[api.ListMembersResponse], error) {
	return c.listMembers.CallUnary(ctx, req)
}

func (c *memberServiceClient) UpdateMember(ctx context.Context, req *connect.Request[api.UpdateMemberRequest]) (*connect.Response[api.UpdateMemberResponse], error) {
	return c.updateMember.CallUnary(ctx, req)
}

func (c *memberServiceClient) DeleteMember(ctx context.Context, req *connect.Request[api.DeleteMemberRequest]) (*connect.Response[api.DeleteMemberResponse], error) {
	return c.deleteMember.CallUnary(ctx, req)
}

func (c *memberServiceClient) ListUnmarriedMembers(ctx context.Context, req *connect.Request[api.ListUnmarriedMembersRequest]) (*connect.Response[api.ListUnmarriedMembersResponse], error) {
	return c.listUnmarriedMembers.CallUnary(ctx, req)
}

func (c *memberServiceClient) ListRemainingChildren(ctx context.Context, req *connect.Request[api.ListRemainingChildrenRequest]) (*connect.Response[api.ListRemainingChildrenResponse], error) {
	return c.listRemainingChildren.CallUnary(ctx, req)
}

// FamilyServiceHandler is implemented by the server side of FamilyService.
// FamilyService manages families, their memberships and the family tree.
type FamilyServiceHandler interface {
	CreateFamily(context.Context, *connect.Request[api.CreateFamilyRequest]) (*connect.Response[api.CreateFamilyResponse], error)
	GetFamily(context.Context, *connect.Request[api.GetFamilyRequest]) (*connect.Response[api.GetFamilyResponse], error)
	ListFamilies(context.Context, *connect.Request[api.ListFamiliesRequest]) (*connect.Response[api.ListFamiliesResponse], error)
	RenameFamily(context.Context, *connect.Request[api.RenameFamilyRequest]) (*connect.Response[api.RenameFamilyResponse], error)
	DeleteFamily(context.Context, *connect.Request[api.DeleteFamilyRequest]) (*connect.Response[api.DeleteFamilyResponse], error)
	AddFamilyMember(context.Context, *connect.Request[api.AddFamilyMemberRequest]) (*connect.Response[api.AddFamilyMemberResponse], error)
	RemoveFamilyMember(context.Context, *connect.Request[api.RemoveFamilyMemberRequest]) (*connect.Response[api.RemoveFamilyMemberResponse], error)
	ListFamilyMembers(context.Context, *connect.Request[api.ListFamilyMembersRequest]) (*connect.Response[api.ListFamilyMembersResponse], error)
	ListRecommendedMembers(context.Context, *connect.Request[api.ListRecommendedMembersRequest]) (*connect.Response[api.ListRecommendedMembersResponse], error)
	GetFamilyTree(context.Context, *connect.Request[api.GetFamilyTreeRequest]) (*connect.Response[api.GetFamilyTreeResponse], error)
}

// NewFamilyServiceHandler builds an HTTP handler for FamilyService. It returns the path
// prefix to mount the handler on.
func NewFamilyServiceHandler(svc FamilyServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	handle(mux, FamilyServiceCreateFamilyProcedure, svc.CreateFamily, opts)
	handle(mux, FamilyServiceGetFamilyProcedure, svc.GetFamily, opts)
	handle(mux, FamilyServiceListFamiliesProcedure, svc.ListFamilies, opts)
	handle(mux, FamilyServiceRenameFamilyProcedure, svc.RenameFamily, opts)
	handle(mux, FamilyServiceDeleteFamilyProcedure, svc.DeleteFamily, opts)
	handle(mux, FamilyServiceAddFamilyMemberProcedure, svc.AddFamilyMember, opts)
	handle(mux, FamilyServiceRemoveFamilyMemberProcedure, svc.RemoveFamilyMember, opts)
	handle(mux, FamilyServiceListFamilyMembersProcedure, svc.ListFamilyMembers, opts)
	handle(mux, FamilyServiceListRecommendedMembersProcedure, svc.ListRecommendedMembers, opts)
	handle(mux, FamilyServiceGetFamilyTreeProcedure, svc.GetFamilyTree, opts)
	return "/" + FamilyServiceName + "/", mux
}

// FamilyServiceClient is a client for FamilyService.
type FamilyServiceClient interface {
	CreateFamily(context.Context, *connect.Request[api.CreateFamilyRequest]) (*connect.Response[api.CreateFamilyResponse], error)
	GetFamily(context.Context, *connect.Request[api.GetFamilyRequest]) (*connect.Response[api.GetFamilyResponse], error)
	ListFamilies(context.Context, *connect.Request[api.ListFamiliesRequest]) (*connect.Response[api.ListFamiliesResponse], error)
	RenameFamily(context.Context, *connect.Request[api.RenameFamilyRequest]) (*connect.Response[api.RenameFamilyResponse], error)
	DeleteFamily(context.Context, *connect.Request[api.DeleteFamilyRequest]) (*connect.Response[api.DeleteFamilyResponse], error)
	AddFamilyMember(context.Context, *connect.Request[api.AddFamilyMemberRequest]) (*connect.Response[api.AddFamilyMemberResponse], error)
	RemoveFamilyMember(context.Context, *connect.Request[api.RemoveFamilyMemberRequest]) (*connect.Response[api.RemoveFamilyMemberResponse], error)
	ListFamilyMembers(context.Context, *connect.Request[api.ListFamilyMembersRequest]) (*connect.Response[api.ListFamilyMembersResponse], error)
	ListRecommendedMembers(context.Context, *connect.Request[api.ListRecommendedMembersRequest]) (*connect.Response[api.ListRecommendedMembersResponse], error)
	GetFamilyTree(context.Context, *connect.Request[api.GetFamilyTreeRequest]) (*connect.Response[api.GetFamilyTreeResponse], error)
}

type familyServiceClient struct {
	createFamily           *connect.Client[api.CreateFamilyRequest, api.CreateFamilyResponse]
	getFamily              *connect.Client[api.GetFamilyRequest, api.GetFamilyResponse]
	listFamilies           *connect.Client[api.ListFamiliesRequest, api.ListFamiliesResponse]
	renameFamily           *connect.Client[api.RenameFamilyRequest, api.RenameFamilyResponse]
	deleteFamily           *connect.Client[api.DeleteFamilyRequest, api.DeleteFamilyResponse]
	addFamilyMember        *connect.Client[api.AddFamilyMemberRequest, api.AddFamilyMemberResponse]
	removeFamilyMember     *connect.Client[api.RemoveFamilyMemberRequest, api.RemoveFamilyMemberResponse]
	listFamilyMembers      *connect.Client[api.ListFamilyMembersRequest, api.ListFamilyMembersResponse]
	listRecommendedMembers *connect.Client[api.ListRecommendedMembersRequest, api.ListRecommendedMembersResponse]
	getFamilyTree          *connect.Client[api.GetFamilyTreeRequest, api.GetFamilyTreeResponse]
}

// NewFamilyServiceClient creates a client for FamilyService at baseURL (e.g. http://localhost:8080).
func NewFamilyServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) FamilyServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &familyServiceClient{
		createFamily:           connect.NewClient[api.CreateFamilyRequest, api.CreateFamilyResponse](httpClient, baseURL+FamilyServiceCreateFamilyProcedure, opts...),
		getFamily:              connect.NewClient[api.GetFamilyRequest, api.GetFamilyResponse](httpClient, baseURL+FamilyServiceGetFamilyProcedure, opts...),
		listFamilies:           connect.NewClient[api.ListFamiliesRequest, api.ListFamiliesResponse](httpClient, baseURL+FamilyServiceListFamiliesProcedure, opts...),
		renameFamily:           connect.NewClient[api.RenameFamilyRequest, api.RenameFamilyResponse](httpClient, baseURL+FamilyServiceRenameFamilyProcedure, opts...),
		deleteFamily:           connect.NewClient[api.DeleteFamilyRequest, api.DeleteFamilyResponse](httpClient, baseURL+FamilyServiceDeleteFamilyProcedure, opts...),
		addFamilyMember:        connect.NewClient[api.AddFamilyMemberRequest, api.AddFamilyMemberResponse](httpClient, baseURL+FamilyServiceAddFamilyMemberProcedure, opts...),
		removeFamilyMember:     connect.NewClient[api.RemoveFamilyMemberRequest, api.RemoveFamilyMemberResponse](httpClient, baseURL+FamilyServiceRemoveFamilyMemberProcedure, opts...),
		listFamilyMembers:      connect.NewClient[api.ListFamilyMembersRequest, api.ListFamilyMembersResponse](httpClient, baseURL+FamilyServiceListFamilyMembersProcedure, opts...),
		listRecommendedMembers: connect.NewClient[api.ListRecommendedMembersRequest, api.ListRecommendedMembersResponse](httpClient, baseURL+FamilyServiceListRecommendedMembersProcedure, opts...),
		getFamilyTree:          connect.NewClient[api.GetFamilyTreeRequest, api.GetFamilyTreeResponse](httpClient, baseURL+FamilyServiceGetFamilyTreeProcedure, opts...),
	}
}

func (c *familyServiceClient) CreateFamily(ctx context.Context, req *connect.Request[api.CreateFamilyRequest]) (*connect.Response[api.CreateFamilyResponse], error) {
	return c.createFamily.CallUnary(ctx, req)
}

func (c *familyServiceClient) GetFamily(ctx context.Context, req *connect.Request[api.GetFamilyRequest]) (*connect.Response[api.GetFamilyResponse], error) {
	return c.getFamily.CallUnary(ctx, req)
}

func (c *familyServiceClient) ListFamilies(ctx context.Context, req *connect.Request[api.ListFamiliesRequest]) (*connect.Response[api.ListFamiliesResponse], error) {
	return c.listFamilies.CallUnary(ctx, req)
}

func (c *familyServiceClient) RenameFamily(ctx context.Context, req *connect.Request[api.RenameFamilyRequest]) (*connect.Response[api.RenameFamilyResponse], error) {
	return c.renameFamily.CallUnary(ctx, req)
}

func (c *familyServiceClient) DeleteFamily(ctx context.Context, req *connect.Request[api.DeleteFamilyRequest]) (*connect.Response[api.DeleteFamilyResponse], error) {
	return c.deleteFamily.CallUnary(ctx, req)
}

func (c *familyServiceClient) AddFamilyMember(ctx context.Context, req *connect.Request[api.AddFamilyMemberRequest]) (*connect.Response[api.AddFamilyMemberResponse], error) {
	return c.addFamilyMember.CallUnary(ctx, req)
}

func (c *familyServiceClient) RemoveFamilyMember(ctx context.Context, req *connect.Request[api.RemoveFamilyMemberRequest]) (*connect.Response[api.RemoveFamilyMemberResponse], error) {
	return c.removeFamilyMember.CallUnary(ctx, req)
}

func (c *familyServiceClient) ListFamilyMembers(ctx context.Context, req *connect.Request[api.ListFamilyMembersRequest]) (*connect.Response[api.ListFamilyMembersResponse], error) {
	return c.listFamilyMembers.CallUnary(ctx, req)
}

func (c *familyServiceClient) ListRecommendedMembers(ctx context.Context, req *connect.Request[api.ListRecommendedMembersRequest]) (*connect.Response[api.ListRecommendedMembersResponse], error) {
	return c.listRecommendedMembers.CallUnary(ctx, req)
}

func (c *familyServiceClient) GetFamilyTree(ctx context.Context, req *connect.Request[api.GetFamilyTreeRequest]) (*connect.Response[api.GetFamilyTreeResponse], error) {
	return c.getFamilyTree.CallUnary(ctx, req)
}

// RelationServiceHandler is implemented by the server side of RelationService.
// RelationService asserts and retracts couples and parent-child links.
type RelationServiceHandler interface {
	CreateCouple(context.Context, *connect.Request[api.CreateCoupleRequest]) (*connect.Response[api.CreateCoupleResponse], error)
	GetCouple(context.Context, *connect.Request[api.GetCoupleRequest]) (*connect.Response[api.GetCoupleResponse], error)
	DeleteCouple(context.Context, *connect.Request[api.DeleteCoupleRequest]) (*connect.Response[api.DeleteCoupleResponse], error)
	CreateParentChildLinks(context.Context, *connect.Request[api.CreateParentChildLinksRequest]) (*connect.Response[api.CreateParentChildLinksResponse], error)
	GetParentChild(context.Context, *connect.Request[api.GetParentChildRequest]) (*connect.Response[api.GetParentChildResponse], error)
	DeleteParentChildLink(context.Context, *connect.Request[api.DeleteParentChildLinkRequest]) (*connect.Response[api.DeleteParentChildLinkResponse], error)
}

// NewRelationServiceHandler builds an HTTP handler for RelationService. It returns the path
// prefix to mount the handler on.
func NewRelationServiceHandler(svc RelationServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	handle(mux, RelationServiceCreateCoupleProcedure, svc.CreateCouple, opts)
	handle(mux, RelationServiceGetCoupleProcedure, svc.GetCouple, opts)
	handle(mux, RelationServiceDeleteCoupleProcedure, svc.DeleteCouple, opts)
	handle(mux, RelationServiceCreateParentChildLinksProcedure, svc.CreateParentChildLinks, opts)
	handle(mux, RelationServiceGetParentChildProcedure, svc.GetParentChild, opts)
	handle(mux, RelationServiceDeleteParentChildLinkProcedure, svc.DeleteParentChildLink, opts)
	return "/" + RelationServiceName + "/", mux
}

// RelationServiceClient is a client for RelationService.
type RelationServiceClient interface {
	CreateCouple(context.Context, *connect.Request[api.CreateCoupleRequest]) (*connect.Response[api.CreateCoupleResponse], error)
	GetCouple(context.Context, *connect.Request[api.GetCoupleRequest]) (*connect.Response[api.GetCoupleResponse], error)
	DeleteCouple(context.Context, *connect.Request[api.DeleteCoupleRequest]) (*connect.Response[api.DeleteCoupleResponse], error)
	CreateParentChildLinks(context.Context, *connect.Request[api.CreateParentChildLinksRequest]) (*connect.Response[api.CreateParentChildLinksResponse], error)
	GetParentChild(context.Context, *connect.Request[api.GetParentChildRequest]) (*connect.Response[api.GetParentChildResponse], error)
	DeleteParentChildLink(context.Context, *connect.Request[api.DeleteParentChildLinkRequest]) (*connect.Response[api.DeleteParentChildLinkResponse], error)
}

type relationServiceClient struct {
	createCouple           *connect.Client[api.CreateCoupleRequest, api.CreateCoupleResponse]
	getCouple              *connect.Client[api.GetCoupleRequest, api.GetCoupleResponse]
	deleteCouple           *connect.Client[api.DeleteCoupleRequest, api.DeleteCoupleResponse]
	createParentChildLinks *connect.Client[api.CreateParentChildLinksRequest, api.CreateParentChildLinksResponse]
	getParentChild         *connect.Client[api.GetParentChildRequest, api.GetParentChildResponse]
	deleteParentChildLink  *connect.Client[api.DeleteParentChildLinkRequest, api.DeleteParentChildLinkResponse]
}

// NewRelationServiceClient creates a client for RelationService at baseURL (e.g. http://localhost:8080).
func NewRelationServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) RelationServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &relationServiceClient{
		createCouple:           connect.NewClient[api.CreateCoupleRequest, api.CreateCoupleResponse](httpClient, baseURL+RelationServiceCreateCoupleProcedure, opts...),
		getCouple:              connect.NewClient[api.GetCoupleRequest, api.GetCoupleResponse](httpClient, baseURL+RelationServiceGetCoupleProcedure, opts...),
		deleteCouple:           connect.NewClient[api.DeleteCoupleRequest, api.DeleteCoupleResponse](httpClient, baseURL+RelationServiceDeleteCoupleProcedure, opts...),
		createParentChildLinks: connect.NewClient[api.CreateParentChildLinksRequest, api.CreateParentChildLinksResponse](httpClient, baseURL+RelationServiceCreateParentChildLinksProcedure, opts...),
		getParentChild:         connect.NewClient[api.GetParentChildRequest, api.GetParentChildResponse](httpClient, baseURL+RelationServiceGetParentChildProcedure, opts...),
		deleteParentChildLink:  connect.NewClient[api.DeleteParentChildLinkRequest, api.DeleteParentChildLinkResponse](httpClient, baseURL+RelationServiceDeleteParentChildLinkProcedure, opts...),
	}
}

func (c *relationServiceClient) CreateCouple(ctx context.Context, req *connect.Request[api.CreateCoupleRequest]) (*connect.Response[api.CreateCoupleResponse], error) {
	return c.createCouple.CallUnary(ctx, req)
}

func (c *relationServiceClient) GetCouple(ctx context.Context, req *connect.Request[api.GetCoupleRequest]) (*connect.Response[api.GetCoupleResponse], error) {
	return c.getCouple.CallUnary(ctx, req)
}

func (c *relationServiceClient) DeleteCouple(ctx context.Context, req *connect.Request[api.DeleteCoupleRequest]) (*connect.Response[api.DeleteCoupleResponse], error) {
	return c.deleteCouple.CallUnary(ctx, req)
}

func (c *relationServiceClient) CreateParentChildLinks(ctx context.Context, req *connect.Request[api.CreateParentChildLinksRequest]) (*connect.Response[api.CreateParentChildLinksResponse], error) {
	return c.createParentChildLinks.CallUnary(ctx, req)
}

func (c *relationServiceClient) GetParentChild(ctx context.Context, req *connect.Request[api.GetParentChildRequest]) (*connect.Response[api.GetParentChildResponse], error) {
	return c.getParentChild.CallUnary(ctx, req)
}

func (c *relationServiceClient) DeleteParentChildLink(ctx context.Context, req *connect.Request[api.DeleteParentChildLinkRequest]) (*connect.Response[api.DeleteParentChildLinkResponse], error) {
	return c.deleteParentChildLink.CallUnary(ctx, req)
}
