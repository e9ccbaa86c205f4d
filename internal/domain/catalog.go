package domain

import "time"

type InsuranceProduct struct {
	ID                int64     `json:"id"`
	InsuranceName     string    `json:"insuranceName"`
	InsuranceCategory string    `json:"insuranceCategory"`
	CreatedAt         time.Time `json:"createdAt"`
}

type Customer struct {
	ID            int64     `json:"id"`
	CustomerName  string    `json:"customerName"`
	CustomerPhone string    `json:"customerPhone"`
	CustomerEmail string    `json:"customerEmail"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ContractMember é a pessoa segurada pelo contrato
type ContractMember struct {
	ID         int64     `json:"id"`
	CMName     string    `json:"cmName"`
	CMPhone    string    `json:"cmPhone"`
	CMBirthDay string    `json:"cmBirthDay"`
	CreatedAt  time.Time `json:"createdAt"`
}
