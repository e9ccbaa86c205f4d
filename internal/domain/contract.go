package domain

import "time"

type ContractStatus string

const (
	ContractStatusOngoing      ContractStatus = "Ongoing"
	ContractStatusCancellation ContractStatus = "Cancellation"
	ContractStatusMaturity     ContractStatus = "Maturity"
)

func (s ContractStatus) Valid() bool {
	switch s {
	case ContractStatusOngoing, ContractStatusCancellation, ContractStatusMaturity:
		return true
	}
	return false
}

type Contract struct {
	ID                                 int64          `json:"contractId"`
	ContractCode                       string         `json:"contractCode"`
	ContractDate                       time.Time      `json:"contractDate"`
	ContractExpireDate                 time.Time      `json:"contractExpireDate"`
	ContractPeriod                     int            `json:"contractPeriod"`
	ContractTotalPrice                 int64          `json:"contractTotalPrice"`
	ContractPaymentAmount              int64          `json:"contractPaymentAmount"`
	ContractPaymentFrequency           string         `json:"contractPaymentFrequency"`
	ContractPaymentMaturityInstallment int            `json:"contractPaymentMaturityInstallment"`
	ContractCount                      int64          `json:"contractCount"`
	ContractPaymentMethod              string         `json:"contractPaymentMethod"`
	ContractPayer                      string         `json:"contractPayer"`
	ContractConsultation               string         `json:"contractConsultation"`
	ContractStatus                     ContractStatus `json:"contractStatus"`
	ContractMemberID                   int64          `json:"contractMemberId"`
	CustomerID                         int64          `json:"customerId"`
	InsuranceProductID                 int64          `json:"insuranceProductId"`
	SalesMemberID                      int64          `json:"salesMemberId"`
	InsuranceProductName               string         `json:"insuranceProductName"`
	CustomerName                       string         `json:"customName"`
	ContractMemberName                 string         `json:"contractMemberName"`
	SalesMemberName                    string         `json:"salesMemberName"`
	SalesMemberCode                    int64          `json:"salesMemberCode"`
	CreatedAt                          time.Time      `json:"createdAt"`
	UpdatedAt                          time.Time      `json:"updatedAt"`
}

func (c *Contract) IsCancelled() bool {
	return c.ContractStatus == ContractStatusCancellation
}

type CreateContractRequest struct {
	ContractDate                       time.Time      `json:"contractDate"`
	ContractExpireDate                 time.Time      `json:"contractExpireDate"`
	ContractPeriod                     int            `json:"contractPeriod"`
	ContractTotalPrice                 int64          `json:"contractTotalPrice"`
	ContractPaymentAmount              int64          `json:"contractPaymentAmount"`
	ContractPaymentFrequency           string         `json:"contractPaymentFrequency"`
	ContractPaymentMaturityInstallment int            `json:"contractPaymentMaturityInstallment"`
	ContractCount                      int64          `json:"contractCount"`
	ContractPaymentMethod              string         `json:"contractPaymentMethod"`
	ContractPayer                      string         `json:"contractPayer"`
	ContractConsultation               string         `json:"contractConsultation"`
	ContractStatus                     ContractStatus `json:"contractStatus"`
	ContractMemberID                   int64          `json:"contractMemberId"`
	CustomerID                         int64          `json:"customId"`
	InsuranceProductID                 int64          `json:"insuranceProductId"`
	SalesMemberCode                    *int64         `json:"salesMemberCode"`
}

type UpdateContractRequest struct {
	ContractExpireDate                 *time.Time      `json:"contractExpireDate"`
	ContractPeriod                     *int            `json:"contractPeriod"`
	ContractTotalPrice                 *int64          `json:"contractTotalPrice"`
	ContractPaymentAmount              *int64          `json:"contractPaymentAmount"`
	ContractPaymentFrequency           *string         `json:"contractPaymentFrequency"`
	ContractPaymentMaturityInstallment *int            `json:"contractPaymentMaturityInstallment"`
	ContractCount                      *int64          `json:"contractCount"`
	ContractPaymentMethod              *string         `json:"contractPaymentMethod"`
	ContractPayer                      *string         `json:"contractPayer"`
	ContractConsultation               *string         `json:"contractConsultation"`
	ContractStatus                     *ContractStatus `json:"contractStatus"`
}

type ContractFilter struct {
	SalesMemberID *int64
	Status        ContractStatus
	StartDate     *time.Time
	EndDate       *time.Time
}

// SalesRecord é uma linha de contrato já unida ao vendedor e ao time,
// base de todas as agregações de estatística
type SalesRecord struct {
	ContractID              int64
	ContractTotalPrice      int64
	ContractCount           int64
	ContractStatus          ContractStatus
	CreatedAt               time.Time
	SalesMemberID           int64
	SalesMemberCode         int64
	SalesMemberName         string
	MemberPerformanceReview string
	TeamID                  *int64
	TeamCode                string
	TeamName                string
	TeamPerformanceReview   string
	InsuranceProductID      int64
	InsuranceProductName    string
}

func (r *SalesRecord) IsCancelled() bool {
	return r.ContractStatus == ContractStatusCancellation
}
