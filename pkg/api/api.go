// Package api defines the request and response messages of the Kinship RPC
// services. Messages travel as JSON over Connect (see Codec).
package api

// User is the public view of an account.
type User struct {
	Id          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	CreatedAt   int64  `json:"createdAt"`
}

// Member is the full view of a member. Dates use YYYY-MM-DD.
type Member struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Gender      bool   `json:"gender"`
	Age         int    `json:"age"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	DateOfDeath string `json:"dateOfDeath,omitempty"`
	BloodGroup  string `json:"bloodGroup,omitempty"`
	CreatedAt   int64  `json:"createdAt"`
}

// MemberSummary is the list projection of a member.
type MemberSummary struct {
	Id   string `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`
}

type Couple struct {
	Id        string `json:"id"`
	HusbandId string `json:"husbandId"`
	WifeId    string `json:"wifeId"`
	CreatedAt int64  `json:"createdAt"`
}

type Family struct {
	Id        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"createdAt"`
}

// GraphNode is a member in a laid-out family tree.
type GraphNode struct {
	Id    string  `json:"id"`
	Label string  `json:"label"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Layer int     `json:"layer"`
}

// GraphEdge connects two nodes. Kind is "spousal" or "parental".
type GraphEdge struct {
	Id     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
	Kind   string `json:"kind"`
}

// SkippedChild is a batch candidate that was not linked, with the reason.
type SkippedChild struct {
	ChildId string `json:"childId"`
	Reason  string `json:"reason"`
}

// Auth

type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	DisplayName string `json:"displayName" validate:"required,max=100"`
	Password    string `json:"password" validate:"required"`
}

type RegisterResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

type GetCurrentUserRequest struct{}

type GetCurrentUserResponse struct {
	User *User `json:"user"`
}

// Members

type CreateMemberRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Gender      *bool  `json:"gender" validate:"required"`
	Age         *int   `json:"age" validate:"required,gte=0,lte=200"`
	DateOfBirth string `json:"dateOfBirth,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DateOfDeath string `json:"dateOfDeath,omitempty" validate:"omitempty,datetime=2006-01-02"`
	BloodGroup  string `json:"bloodGroup,omitempty" validate:"omitempty,max=8"`
}

type CreateMemberResponse struct {
	Member *Member `json:"member"`
}

type GetMemberRequest struct {
	MemberId string `json:"memberId" validate:"required"`
}

type GetMemberResponse struct {
	Member *Member `json:"member"`
}

type ListMembersRequest struct{}

type ListMembersResponse struct {
	Members []*MemberSummary `json:"members"`
}

// UpdateMemberRequest changes only the fields that are set.
type UpdateMemberRequest struct {
	MemberId    string  `json:"memberId" validate:"required"`
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Gender      *bool   `json:"gender,omitempty"`
	Age         *int    `json:"age,omitempty" validate:"omitempty,gte=0,lte=200"`
	DateOfBirth *string `json:"dateOfBirth,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DateOfDeath *string `json:"dateOfDeath,omitempty" validate:"omitempty,datetime=2006-01-02"`
	BloodGroup  *string `json:"bloodGroup,omitempty" validate:"omitempty,max=8"`
}

type UpdateMemberResponse struct {
	Member *Member `json:"member"`
}

type DeleteMemberRequest struct {
	MemberId string `json:"memberId" validate:"required"`
}

type DeleteMemberResponse struct{}

type ListUnmarriedMembersRequest struct {
	Gender *bool `json:"gender" validate:"required"`
}

type ListUnmarriedMembersResponse struct {
	Members []*MemberSummary `json:"members"`
}

type ListRemainingChildrenRequest struct{}

type ListRemainingChildrenResponse struct {
	Members []*MemberSummary `json:"members"`
}

// Families

type CreateFamilyRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

type CreateFamilyResponse struct {
	Family *Family `json:"family"`
}

type GetFamilyRequest struct {
	FamilyId string `json:"familyId" validate:"required"`
}

type GetFamilyResponse struct {
	Family *Family `json:"family"`
}

type ListFamiliesRequest struct{}

type ListFamiliesResponse struct {
	Families []*Family `json:"families"`
}

type RenameFamilyRequest struct {
	FamilyId string `json:"familyId" validate:"required"`
	Name     string `json:"name" validate:"required,max=200"`
}

type RenameFamilyResponse struct {
	Family *Family `json:"family"`
}

type DeleteFamilyRequest struct {
	FamilyId string `json:"familyId" validate:"required"`
}

type DeleteFamilyResponse struct{}

type AddFamilyMemberRequest struct {
	FamilyId string `json:"familyId" validate:"required"`
	MemberId string `json:"memberId" validate:"required"`
}

type AddFamilyMemberResponse struct{}

type RemoveFamilyMemberRequest struct {
	FamilyId string `json:"familyId" validate:"required"`
	MemberId string `json:"memberId" validate:"required"`
}

type RemoveFamilyMemberResponse struct{}

type ListFamilyMembersRequest struct {
	FamilyId string `json:"familyId" validate:"required"`
}

type ListFamilyMembersResponse struct {
	Members []*MemberSummary `json:"members"`
}

type ListRecommendedMembersRequest struct {
	FamilyId string `json:"familyId" validate:"required"`
}

type ListRecommendedMembersResponse struct {
	Members []*MemberSummary `json:"members"`
}

// GetFamilyTreeRequest asks for the laid-out tree. Direction is DOWN
// (default) or RIGHT.
type GetFamilyTreeRequest struct {
	FamilyId  string `json:"familyId" validate:"required"`
	Direction string `json:"direction,omitempty"`
}

type GetFamilyTreeResponse struct {
	Family       *Family      `json:"family"`
	Direction    string       `json:"direction"`
	Nodes        []*GraphNode `json:"nodes"`
	Edges        []*GraphEdge `json:"edges"`
	OmittedEdges int          `json:"omittedEdges"`
}

// Relations

type CreateCoupleRequest struct {
	MemberId  string `json:"memberId" validate:"required"`
	PartnerId string `json:"partnerId" validate:"required"`
}

type CreateCoupleResponse struct {
	Couple *Couple `json:"couple"`
}

type GetCoupleRequest struct {
	MemberId string `json:"memberId" validate:"required"`
}

type GetCoupleResponse struct {
	Couple   *Couple `json:"couple"`
	SpouseId string  `json:"spouseId"`
}

type DeleteCoupleRequest struct {
	MemberId string `json:"memberId" validate:"required"`
}

type DeleteCoupleResponse struct{}

type CreateParentChildLinksRequest struct {
	ParentId string   `json:"parentId" validate:"required"`
	ChildIds []string `json:"childIds" validate:"required,min=1,max=100,dive,required"`
}

type CreateParentChildLinksResponse struct {
	CoupleId      string          `json:"coupleId"`
	AcceptedCount int             `json:"acceptedCount"`
	Accepted      []string        `json:"accepted"`
	Skipped       []*SkippedChild `json:"skipped"`
}

type GetParentChildRequest struct {
	ParentId string `json:"parentId" validate:"required"`
}

type GetParentChildResponse struct {
	CoupleId string           `json:"coupleId"`
	Children []*MemberSummary `json:"children"`
}

type DeleteParentChildLinkRequest struct {
	ParentId string `json:"parentId" validate:"required"`
	ChildId  string `json:"childId" validate:"required"`
}

type DeleteParentChildLinkResponse struct{}
