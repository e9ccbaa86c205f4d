package domain

// Valores monetários são expostos como string, como no contrato original da API.

type MemberSales struct {
	SalesMemberName string `json:"salesMemberName"`
	SalesMemberCode int64  `json:"salesMemberCode,string"`
	ContractPrice   int64  `json:"contractPrice,string"`
	ContractCount   int64  `json:"contractCount,string"`
	CancelPrice     int64  `json:"cancelPrice,string"`
	CancelCount     int64  `json:"cancelCount,string"`
}

type TeamSales struct {
	TeamName      string `json:"teamName"`
	TeamCode      string `json:"teamCode"`
	ContractPrice int64  `json:"contractPrice,string"`
	ContractCount int64  `json:"contractCount,string"`
	CancelPrice   int64  `json:"cancelPrice,string"`
	CancelCount   int64  `json:"cancelCount,string"`
}

type HQSales struct {
	ContractPrice int64 `json:"contractPrice,string"`
	ContractCount int64 `json:"contractCount,string"`
	CancelPrice   int64 `json:"cancelPrice,string"`
	CancelCount   int64 `json:"cancelCount,string"`
}

type ProductPriceRank struct {
	Rank                 int    `json:"rank"`
	InsuranceProductID   int64  `json:"insuranceProductId"`
	InsuranceProductName string `json:"insuranceName"`
	ContractPrice        int64  `json:"contractPrice,string"`
}

type ProductCountRank struct {
	Rank                 int    `json:"rank"`
	InsuranceProductID   int64  `json:"insuranceProductId"`
	InsuranceProductName string `json:"insuranceName"`
	ContractCount        int64  `json:"contractCount,string"`
}

type SalesGod struct {
	Name  string `json:"name"`
	Price int64  `json:"price,string"`
	Count int64  `json:"count,string"`
}

type BestTeam struct {
	TeamName string `json:"teamName"`
	Price    int64  `json:"price,string"`
	Count    int64  `json:"count,string"`
}
