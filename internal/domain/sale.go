package domain

import "time"

// Sale é um registro de venda já normalizado, com a data da compra tipada.
type Sale struct {
	Product      string    `json:"produto"`
	Category     string    `json:"categoria"`
	Price        float64   `json:"preco"`
	Shipping     float64   `json:"frete"`
	PurchaseDate time.Time `json:"data_compra"`
	Seller       string    `json:"vendedor"`
	Location     string    `json:"local_compra"`
	Rating       *float64  `json:"avaliacao,omitempty"`
	PaymentType  string    `json:"tipo_pagamento"`
	Installments int       `json:"parcelas"`
	Latitude     float64   `json:"lat"`
	Longitude    float64   `json:"lon"`
}

// FilterSellers mantém apenas as vendas cujo vendedor passa pelo filtro.
func FilterSellers(sales []Sale, filters *DashboardFilters) []Sale {
	if filters == nil || len(filters.Sellers) == 0 {
		return sales
	}

	filtered := make([]Sale, 0, len(sales))
	for _, sale := range sales {
		if filters.MatchesSeller(sale.Seller) {
			filtered = append(filtered, sale)
		}
	}

	return filtered
}

// DistinctSellers retorna os vendedores na ordem em que aparecem.
func DistinctSellers(sales []Sale) []string {
	seen := make(map[string]struct{}, len(sales))
	sellers := make([]string, 0)

	for _, sale := range sales {
		if _, ok := seen[sale.Seller]; ok {
			continue
		}
		seen[sale.Seller] = struct{}{}
		sellers = append(sellers, sale.Seller)
	}

	return sellers
}
