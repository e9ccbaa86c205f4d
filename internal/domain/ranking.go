package domain

import "time"

type MemberRankingResponse struct {
	Ranking    []MemberRankingItem `json:"ranking"`
	LastUpdate time.Time           `json:"lastUpdate"`
}

type MemberRankingItem struct {
	ID               int64     `json:"id"`
	SalesMemberID    int64     `json:"salesMemberId"`
	Month            string    `json:"month"` // Formato mm-yyyy (ex: 01-2024)
	MemberName       string    `json:"memberName"`
	TeamName         string    `json:"teamName"`
	ContractPrice    int64     `json:"contractPrice,string"`
	ContractCount    int64     `json:"contractCount,string"`
	Position         int       `json:"position"`
	PositionChange   int       `json:"positionChange"` // Valor positivo = subiu, negativo = desceu, 0 = manteve
	PreviousPosition int       `json:"previousPosition"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
