package statistics

import (
	"sort"

	"github.com/alioth/insurance-sales-api/internal/domain"
)

// Contratos cancelados somam em cancel*, os demais em contract*

func aggregateByMember(records []*domain.SalesRecord) []domain.MemberSales {
	byMember := make(map[int64]*domain.MemberSales)
	for _, r := range records {
		sales, ok := byMember[r.SalesMemberID]
		if !ok {
			sales = &domain.MemberSales{
				SalesMemberName: r.SalesMemberName,
				SalesMemberCode: r.SalesMemberCode,
			}
			byMember[r.SalesMemberID] = sales
		}

		if r.IsCancelled() {
			sales.CancelPrice += r.ContractTotalPrice
			sales.CancelCount++
		} else {
			sales.ContractPrice += r.ContractTotalPrice
			sales.ContractCount++
		}
	}

	result := make([]domain.MemberSales, 0, len(byMember))
	for _, sales := range byMember {
		result = append(result, *sales)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].ContractPrice != result[j].ContractPrice {
			return result[i].ContractPrice > result[j].ContractPrice
		}
		return result[i].SalesMemberCode < result[j].SalesMemberCode
	})

	return result
}

// Membros sem time ficam de fora da agregação por time
func aggregateByTeam(records []*domain.SalesRecord) []domain.TeamSales {
	byTeam := make(map[int64]*domain.TeamSales)
	for _, r := range records {
		if r.TeamID == nil {
			continue
		}

		sales, ok := byTeam[*r.TeamID]
		if !ok {
			sales = &domain.TeamSales{
				TeamName: r.TeamName,
				TeamCode: r.TeamCode,
			}
			byTeam[*r.TeamID] = sales
		}

		if r.IsCancelled() {
			sales.CancelPrice += r.ContractTotalPrice
			sales.CancelCount++
		} else {
			sales.ContractPrice += r.ContractTotalPrice
			sales.ContractCount++
		}
	}

	result := make([]domain.TeamSales, 0, len(byTeam))
	for _, sales := range byTeam {
		result = append(result, *sales)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].ContractPrice != result[j].ContractPrice {
			return result[i].ContractPrice > result[j].ContractPrice
		}
		return result[i].TeamCode < result[j].TeamCode
	})

	return result
}

func aggregateHQ(records []*domain.SalesRecord) []domain.HQSales {
	var hq domain.HQSales
	for _, r := range records {
		if r.IsCancelled() {
			hq.CancelPrice += r.ContractTotalPrice
			hq.CancelCount++
		} else {
			hq.ContractPrice += r.ContractTotalPrice
			hq.ContractCount++
		}
	}
	return []domain.HQSales{hq}
}

type productTotals struct {
	id    int64
	name  string
	price int64
	count int64
}

func aggregateByProduct(records []*domain.SalesRecord) []productTotals {
	byProduct := make(map[int64]*productTotals)
	for _, r := range records {
		if r.IsCancelled() {
			continue
		}

		totals, ok := byProduct[r.InsuranceProductID]
		if !ok {
			totals = &productTotals{id: r.InsuranceProductID, name: r.InsuranceProductName}
			byProduct[r.InsuranceProductID] = totals
		}
		totals.price += r.ContractTotalPrice
		totals.count++
	}

	result := make([]productTotals, 0, len(byProduct))
	for _, totals := range byProduct {
		result = append(result, *totals)
	}
	return result
}

func rankProductsByPrice(records []*domain.SalesRecord) []domain.ProductPriceRank {
	products := aggregateByProduct(records)
	sort.Slice(products, func(i, j int) bool {
		if products[i].price != products[j].price {
			return products[i].price > products[j].price
		}
		return products[i].id < products[j].id
	})

	result := make([]domain.ProductPriceRank, 0, len(products))
	for i, p := range products {
		result = append(result, domain.ProductPriceRank{
			Rank:                 i + 1,
			InsuranceProductID:   p.id,
			InsuranceProductName: p.name,
			ContractPrice:        p.price,
		})
	}
	return result
}

func rankProductsByCount(records []*domain.SalesRecord) []domain.ProductCountRank {
	products := aggregateByProduct(records)
	sort.Slice(products, func(i, j int) bool {
		if products[i].count != products[j].count {
			return products[i].count > products[j].count
		}
		return products[i].id < products[j].id
	})

	result := make([]domain.ProductCountRank, 0, len(products))
	for i, p := range products {
		result = append(result, domain.ProductCountRank{
			Rank:                 i + 1,
			InsuranceProductID:   p.id,
			InsuranceProductName: p.name,
			ContractCount:        p.count,
		})
	}
	return result
}
