package domain

import "time"

type Team struct {
	ID                int64     `json:"id"`
	TeamCode          string    `json:"teamCode"`
	TeamName          string    `json:"teamName"`
	TeamManagerCode   int64     `json:"teamManagerCode"`
	PerformanceReview string    `json:"performanceReview"`
	Deleted           bool      `json:"deleted"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type CreateTeamRequest struct {
	TeamName        string `json:"teamName"`
	TeamManagerCode int64  `json:"teamManagerCode"`
}

type UpdateTeamRequest struct {
	TeamName        *string `json:"teamName"`
	TeamManagerCode *int64  `json:"teamManagerCode"`
}

type TeamResponse struct {
	TeamCode          string           `json:"teamCode"`
	TeamName          string           `json:"teamName"`
	TeamManagerName   string           `json:"teamManagerName"`
	PerformanceReview string           `json:"performanceReview,omitempty"`
	TeamMemberList    []TeamMemberItem `json:"teamMemberList,omitempty"`
}
