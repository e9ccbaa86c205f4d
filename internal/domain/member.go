package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type MemberRank string

const (
	RankFP      MemberRank = "FP"
	RankManager MemberRank = "MANAGER"
	RankAdmin   MemberRank = "ADMIN"
)

func (r MemberRank) Valid() bool {
	switch r {
	case RankFP, RankManager, RankAdmin:
		return true
	}
	return false
}

// Notas de avaliação de desempenho. Vazio significa "ainda não avaliado".
const (
	ReviewA = "A"
	ReviewB = "B"
	ReviewC = "C"
	ReviewD = "D"
)

func ValidPerformanceReview(review string) bool {
	switch review {
	case ReviewA, ReviewB, ReviewC, ReviewD:
		return true
	}
	return false
}

type SalesMember struct {
	ID                int64      `json:"id"`
	SalesMemberCode   int64      `json:"salesMemberCode"`
	Name              string     `json:"name"`
	Email             string     `json:"email"`
	Phone             string     `json:"phone"`
	PasswordHash      string     `json:"-"`
	BirthDay          string     `json:"birthDay"`
	ZoneCode          string     `json:"zoneCode"`
	RoadAddress       string     `json:"roadAddress"`
	DetailAddress     string     `json:"detailAddress"`
	OfficeAddress     string     `json:"officeAddress"`
	ExtensionNumber   string     `json:"extensionNumber"`
	ProfileImage      *string    `json:"profileImage"`
	Rank              MemberRank `json:"rank"`
	PerformanceReview string     `json:"performanceReview"`
	TeamID            *int64     `json:"teamId"`
	TeamCode          *string    `json:"teamCode"`
	TeamName          *string    `json:"teamName"`
	Quit              bool       `json:"quit"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

type CreateMemberRequest struct {
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	Name          string     `json:"name"`
	Password      string     `json:"password"`
	BirthDay      string     `json:"birthDay"`
	ZoneCode      string     `json:"zoneCode"`
	RoadAddress   string     `json:"roadAddress"`
	DetailAddress string     `json:"detailAddress"`
	Rank          MemberRank `json:"rank"`
}

type UpdateMemberRequest struct {
	Name            *string     `json:"name"`
	Email           *string     `json:"email"`
	Phone           *string     `json:"phone"`
	BirthDay        *string     `json:"birthDay"`
	ZoneCode        *string     `json:"zoneCode"`
	RoadAddress     *string     `json:"roadAddress"`
	DetailAddress   *string     `json:"detailAddress"`
	OfficeAddress   *string     `json:"officeAddress"`
	ExtensionNumber *string     `json:"extensionNumber"`
	ProfileImage    *string     `json:"profileImage"`
	Rank            *MemberRank `json:"rank"`
}

type MemberFilter struct {
	TeamCode string
	Rank     MemberRank
}

type MemberResponse struct {
	Rank              MemberRank `json:"rank"`
	SalesMemberCode   int64      `json:"salesMemberCode"`
	BirthDay          string     `json:"birthDay"`
	PerformanceReview string     `json:"performanceReview"`
	TeamCode          *string    `json:"teamCode"`
	TeamName          *string    `json:"teamName"`
	ZoneCode          string     `json:"zoneCode"`
	RoadAddress       string     `json:"roadAddress"`
	DetailAddress     string     `json:"detailAddress"`
	OfficeAddress     string     `json:"officeAddress"`
	ExtensionNumber   string     `json:"extensionNumber"`
	Phone             string     `json:"phone"`
	Name              string     `json:"name"`
	Email             string     `json:"email"`
}

func NewMemberResponse(m *SalesMember) MemberResponse {
	return MemberResponse{
		Rank:              m.Rank,
		SalesMemberCode:   m.SalesMemberCode,
		BirthDay:          m.BirthDay,
		PerformanceReview: m.PerformanceReview,
		TeamCode:          m.TeamCode,
		TeamName:          m.TeamName,
		ZoneCode:          m.ZoneCode,
		RoadAddress:       m.RoadAddress,
		DetailAddress:     m.DetailAddress,
		OfficeAddress:     m.OfficeAddress,
		ExtensionNumber:   m.ExtensionNumber,
		Phone:             m.Phone,
		Name:              m.Name,
		Email:             m.Email,
	}
}

// TeamMemberItem é a visão resumida de um membro dentro da listagem do time
type TeamMemberItem struct {
	Rank            MemberRank `json:"rank"`
	Name            string     `json:"name"`
	ProfileImage    *string    `json:"profileImage"`
	SalesMemberCode int64      `json:"salesMemberCode"`
	Phone           string     `json:"phone"`
	Email           string     `json:"email"`
}

func NewTeamMemberItem(m *SalesMember) TeamMemberItem {
	return TeamMemberItem{
		Rank:            m.Rank,
		Name:            m.Name,
		ProfileImage:    m.ProfileImage,
		SalesMemberCode: m.SalesMemberCode,
		Phone:           m.Phone,
		Email:           m.Email,
	}
}

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

type Claims struct {
	MemberID   int64
	MemberCode int64
	MemberName string
	MemberRank MemberRank
	TeamCode   string
	TokenType  string
	jwt.RegisteredClaims
}

func (c *Claims) IsAdmin() bool {
	return c.MemberRank == RankAdmin
}

func (c *Claims) IsManagerOrAdmin() bool {
	return c.MemberRank == RankAdmin || c.MemberRank == RankManager
}

type LoginResult struct {
	MemberCode   int64  `json:"memberCode"`
	MemberRank   string `json:"memberRank"`
	MemberTeam   string `json:"memberTeam"`
	Name         string `json:"name"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
