// Package aggregating deriva as tabelas de resumo do conjunto de vendas filtrado
package aggregating

import (
	"cmp"
	"maps"
	"slices"
	"sort"
	"time"

	"github.com/vfg2006/sales-dashboard/internal/domain"
	"github.com/vfg2006/sales-dashboard/pkg/utils"
)

// Quantidades fixas dos gráficos de ranking
const (
	TopLocations = 5
	TopProducts  = 10
)

// Aggregator calcula todas as tabelas de uma renderização
type Aggregator interface {
	Summarize(sales []domain.Sale, topSellers int) *domain.DashboardSummary
}

type Service struct{}

func NewService() Aggregator {
	return &Service{}
}

// Summarize executa o pipeline completo sobre o conjunto já filtrado por vendedor
func (s *Service) Summarize(sales []domain.Sale, topSellers int) *domain.DashboardSummary {
	sellers := SellerSummary(sales)

	return &domain.DashboardSummary{
		Metrics:             Metrics(sales),
		RevenueByLocation:   RevenueByLocation(sales),
		MonthlyRevenue:      MonthlyRevenue(sales),
		RevenueByCategory:   RevenueByCategory(sales),
		SalesByCategory:     SalesByCategory(sales),
		SalesByProduct:      SalesByProduct(sales),
		RatingByCategory:    RatingByCategory(sales),
		PaymentByRegion:     PaymentByRegion(sales),
		Sellers:             sellers,
		TopSellersByRevenue: TopSellersByRevenue(sellers, topSellers),
		TopSellersBySales:   TopSellersBySales(sellers, topSellers),
	}
}

func Metrics(sales []domain.Sale) domain.SummaryMetrics {
	categories := make(map[string]struct{})
	metrics := domain.SummaryMetrics{SalesQuantity: len(sales)}

	for _, sale := range sales {
		metrics.Revenue += sale.Price
		categories[sale.Category] = struct{}{}
	}
	metrics.UniqueCategories = len(categories)

	return metrics
}

// RevenueByLocation soma o preço por local da compra e junta a primeira coordenada vista
// de cada local. Ordenado pela receita, decrescente.
func RevenueByLocation(sales []domain.Sale) []domain.LocationRevenue {
	revenue := make(map[string]float64)
	coordinates := make(map[string]domain.Sale)

	for _, sale := range sales {
		revenue[sale.Location] += sale.Price
		if _, ok := coordinates[sale.Location]; !ok {
			coordinates[sale.Location] = sale
		}
	}

	rows := make([]domain.LocationRevenue, 0, len(revenue))
	for _, location := range sortedKeys(revenue) {
		first := coordinates[location]
		rows = append(rows, domain.LocationRevenue{
			Location:  location,
			Latitude:  first.Latitude,
			Longitude: first.Longitude,
			Revenue:   revenue[location],
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Revenue > rows[j].Revenue
	})

	return rows
}

// MonthlyRevenue soma o preço por mês do calendário. Os meses sem venda entre o primeiro
// e o último mês do conjunto aparecem com receita zero.
func MonthlyRevenue(sales []domain.Sale) []domain.MonthlyRevenue {
	if len(sales) == 0 {
		return []domain.MonthlyRevenue{}
	}

	buckets := make(map[time.Time]float64)
	first := utils.FirstDayOfMonth(sales[0].PurchaseDate)
	last := first

	for _, sale := range sales {
		month := utils.FirstDayOfMonth(sale.PurchaseDate)
		buckets[month] += sale.Price

		if month.Before(first) {
			first = month
		}
		if month.After(last) {
			last = month
		}
	}

	rows := make([]domain.MonthlyRevenue, 0)
	for month := first; !month.After(last); month = month.AddDate(0, 1, 0) {
		rows = append(rows, domain.MonthlyRevenue{
			Month:     month,
			Year:      month.Year(),
			MonthName: utils.MonthName(month.Month()),
			Revenue:   buckets[month],
		})
	}

	return rows
}

func RevenueByCategory(sales []domain.Sale) []domain.CategoryRevenue {
	revenue := make(map[string]float64)
	for _, sale := range sales {
		revenue[sale.Category] += sale.Price
	}

	rows := make([]domain.CategoryRevenue, 0, len(revenue))
	for _, category := range sortedKeys(revenue) {
		rows = append(rows, domain.CategoryRevenue{Category: category, Revenue: revenue[category]})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Revenue > rows[j].Revenue
	})

	return rows
}

func SalesByCategory(sales []domain.Sale) []domain.CategorySales {
	counts := make(map[string]int)
	for _, sale := range sales {
		counts[sale.Category]++
	}

	rows := make([]domain.CategorySales, 0, len(counts))
	for _, category := range sortedKeys(counts) {
		rows = append(rows, domain.CategorySales{Category: category, Sales: counts[category]})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Sales > rows[j].Sales
	})

	return rows
}

func SalesByProduct(sales []domain.Sale) []domain.ProductSales {
	counts := make(map[string]int)
	for _, sale := range sales {
		counts[sale.Product]++
	}

	rows := make([]domain.ProductSales, 0, len(counts))
	for _, product := range sortedKeys(counts) {
		rows = append(rows, domain.ProductSales{Product: product, Sales: counts[product]})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Sales > rows[j].Sales
	})

	return rows
}

// RatingByCategory calcula a avaliação média por categoria ignorando avaliações ausentes.
// Categorias sem nenhuma avaliação ficam de fora.
func RatingByCategory(sales []domain.Sale) []domain.CategoryRating {
	type accumulator struct {
		sum   float64
		count int
	}

	ratings := make(map[string]*accumulator)
	for _, sale := range sales {
		if sale.Rating == nil {
			continue
		}
		acc, ok := ratings[sale.Category]
		if !ok {
			acc = &accumulator{}
			ratings[sale.Category] = acc
		}
		acc.sum += *sale.Rating
		acc.count++
	}

	rows := make([]domain.CategoryRating, 0, len(ratings))
	for _, category := range sortedKeys(ratings) {
		acc := ratings[category]
		rows = append(rows, domain.CategoryRating{
			Category:      category,
			AverageRating: acc.sum / float64(acc.count),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].AverageRating > rows[j].AverageRating
	})

	return rows
}

// PaymentByRegion conta vendas por par (local da compra, tipo de pagamento)
func PaymentByRegion(sales []domain.Sale) []domain.PaymentRegionSales {
	type key struct {
		location    string
		paymentType string
	}

	counts := make(map[key]int)
	for _, sale := range sales {
		counts[key{sale.Location, sale.PaymentType}]++
	}

	keys := slices.SortedFunc(maps.Keys(counts), func(a, b key) int {
		if c := cmp.Compare(a.location, b.location); c != 0 {
			return c
		}
		return cmp.Compare(a.paymentType, b.paymentType)
	})

	rows := make([]domain.PaymentRegionSales, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, domain.PaymentRegionSales{
			Location:    k.location,
			PaymentType: k.paymentType,
			Sales:       counts[k],
		})
	}

	return rows
}

// SellerSummary agrega soma e contagem de preço por vendedor, em ordem alfabética
func SellerSummary(sales []domain.Sale) []domain.SellerSummary {
	summaries := make(map[string]*domain.SellerSummary)
	for _, sale := range sales {
		summary, ok := summaries[sale.Seller]
		if !ok {
			summary = &domain.SellerSummary{Seller: sale.Seller}
			summaries[sale.Seller] = summary
		}
		summary.Revenue += sale.Price
		summary.Sales++
	}

	rows := make([]domain.SellerSummary, 0, len(summaries))
	for _, seller := range sortedKeys(summaries) {
		rows = append(rows, *summaries[seller])
	}

	return rows
}

// TopSellersByRevenue devolve no máximo n vendedores, ordenados pela receita
func TopSellersByRevenue(sellers []domain.SellerSummary, n int) []domain.SellerSummary {
	return topSellers(sellers, n, func(a, b domain.SellerSummary) bool {
		return a.Revenue > b.Revenue
	})
}

// TopSellersBySales devolve no máximo n vendedores, ordenados pela quantidade de vendas
func TopSellersBySales(sellers []domain.SellerSummary, n int) []domain.SellerSummary {
	return topSellers(sellers, n, func(a, b domain.SellerSummary) bool {
		return a.Sales > b.Sales
	})
}

func topSellers(sellers []domain.SellerSummary, n int, greater func(a, b domain.SellerSummary) bool) []domain.SellerSummary {
	sorted := slices.Clone(sellers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return greater(sorted[i], sorted[j])
	})

	if n < 0 {
		n = 0
	}
	if len(sorted) > n {
		sorted = sorted[:n]
	}

	return sorted
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
