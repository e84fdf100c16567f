// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

// LocationRevenue é a receita de um local da compra com uma coordenada representativa
type LocationRevenue struct {
	Location  string  `json:"local_compra"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
	Revenue   float64 `json:"receita"`
}

// MonthlyRevenue é a receita de um mês do calendário
type MonthlyRevenue struct {
	Month     time.Time `json:"mes_referencia"` // Primeiro dia do mês
	Year      int       `json:"ano"`
	MonthName string    `json:"mes"`
	Revenue   float64   `json:"receita"`
}

type CategoryRevenue struct {
	Category string  `json:"categoria"`
	Revenue  float64 `json:"receita"`
}

type CategorySales struct {
	Category string `json:"categoria"`
	Sales    int    `json:"quantidade_vendas"`
}

type ProductSales struct {
	Product string `json:"produto"`
	Sales   int    `json:"quantidade_vendas"`
}

type CategoryRating struct {
	Category      string  `json:"categoria"`
	AverageRating float64 `json:"avaliacao_media"`
}

type PaymentRegionSales struct {
	Location    string `json:"local_compra"`
	PaymentType string `json:"tipo_pagamento"`
	Sales       int    `json:"quantidade_vendas"`
}

// SellerSummary concentra soma e contagem de preço por vendedor
type SellerSummary struct {
	Seller  string  `json:"vendedor"`
	Revenue float64 `json:"sum"`
	Sales   int     `json:"count"`
}

type SummaryMetrics struct {
	Revenue          float64 `json:"receita"`
	SalesQuantity    int     `json:"quantidade_vendas"`
	UniqueCategories int     `json:"categorias_unicas"`
}

// DashboardSummary reúne todas as tabelas derivadas do conjunto filtrado
type DashboardSummary struct {
	Metrics             SummaryMetrics       `json:"metricas"`
	RevenueByLocation   []LocationRevenue    `json:"receita_estados"`
	MonthlyRevenue      []MonthlyRevenue     `json:"receita_mensal"`
	RevenueByCategory   []CategoryRevenue    `json:"receita_categoria"`
	SalesByCategory     []CategorySales      `json:"vendas_categoria"`
	SalesByProduct      []ProductSales       `json:"vendas_produto"`
	RatingByCategory    []CategoryRating     `json:"avaliacao_categoria"`
	PaymentByRegion     []PaymentRegionSales `json:"pagamento_regiao"`
	Sellers             []SellerSummary      `json:"vendedores"`
	TopSellersByRevenue []SellerSummary      `json:"top_vendedores_receita"`
	TopSellersBySales   []SellerSummary      `json:"top_vendedores_vendas"`
}

// Dashboard é o resultado de uma renderização: filtros resolvidos, opções e tabelas
type Dashboard struct {
	Filters       *DashboardFilters `json:"filtros"`
	SellerOptions []string          `json:"opcoes_vendedores"`
	Summary       *DashboardSummary `json:"resumo"`
	GeneratedAt   time.Time         `json:"gerado_em"`
}
