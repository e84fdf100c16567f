package presentation

import (
	"strconv"

	"github.com/vfg2006/sales-dashboard/internal/domain"
	"github.com/vfg2006/sales-dashboard/pkg/utils"
)

const (
	TabRevenue = "receita"
	TabSales   = "quantidade_vendas"
	TabSellers = "vendedores"
)

type Metric struct {
	Label string
	Value string
}

type Column struct {
	Metrics []Metric
	Charts  []Chart
}

type Tab struct {
	ID      string
	Title   string
	Columns []Column
	// Exibe o campo "Quantidade de vendedores" acima das colunas
	TopSellersInput bool
}

// Page contém tudo o que o template precisa para desenhar a página
type Page struct {
	Title         string
	Filters       *domain.DashboardFilters
	Regions       []domain.Region
	Years         []int
	SellerOptions []string
	TopSellersMin int
	TopSellersMax int
	Tabs          []Tab
	Error         string
}

// IsSelected informa se o vendedor está marcado no multiselect
func (p Page) IsSelected(seller string) bool {
	if p.Filters == nil {
		return false
	}
	for _, s := range p.Filters.Sellers {
		if s == seller {
			return true
		}
	}
	return false
}

// NewPage distribui métricas e gráficos em três abas de duas colunas
func NewPage(dashboard *domain.Dashboard, years domain.YearRange) (*Page, error) {
	summary := dashboard.Summary

	built, err := BuildCharts(summary, dashboard.Filters.TopSellers)
	if err != nil {
		return nil, err
	}

	revenue := Metric{Label: "Receita", Value: utils.FormatAmount(summary.Metrics.Revenue, "R$")}
	salesQuantity := Metric{Label: "Quantidade de vendas", Value: utils.FormatAmount(float64(summary.Metrics.SalesQuantity), "")}

	tabs := []Tab{
		{
			ID:    TabRevenue,
			Title: "Receita",
			Columns: []Column{
				{
					Metrics: []Metric{revenue},
					Charts:  []Chart{built["mapa_receita"], built["receita_estados"]},
				},
				{
					Metrics: []Metric{salesQuantity},
					Charts:  []Chart{built["receita_mensal"], built["receita_categoria"]},
				},
			},
		},
		{
			ID:    TabSales,
			Title: "Quantidade de vendas",
			Columns: []Column{
				{
					Metrics: []Metric{{Label: "Total de vendas", Value: salesQuantity.Value}},
					Charts:  []Chart{built["vendas_categoria"], built["avaliacao_categoria"]},
				},
				{
					Metrics: []Metric{{Label: "Categorias únicas", Value: strconv.Itoa(summary.Metrics.UniqueCategories)}},
					Charts:  []Chart{built["vendas_produto"], built["pagamento_regiao"]},
				},
			},
		},
		{
			ID:              TabSellers,
			Title:           "Vendedores",
			TopSellersInput: true,
			Columns: []Column{
				{
					Metrics: []Metric{revenue},
					Charts:  []Chart{built["receita_vendedores"]},
				},
				{
					Metrics: []Metric{salesQuantity},
					Charts:  []Chart{built["vendas_vendedores"]},
				},
			},
		},
	}

	return &Page{
		Title:         "DASHBOARD DE VENDAS 🛒",
		Filters:       dashboard.Filters,
		Regions:       domain.Regions,
		Years:         yearOptions(years),
		SellerOptions: dashboard.SellerOptions,
		TopSellersMin: domain.MinTopSellers,
		TopSellersMax: domain.MaxTopSellers,
		Tabs:          tabs,
	}, nil
}

// NewErrorPage monta a página apenas com a barra lateral e a mensagem de erro
func NewErrorPage(filters *domain.DashboardFilters, years domain.YearRange, message string) *Page {
	if filters == nil {
		filters = domain.NewDashboardFilters()
	}

	return &Page{
		Title:         "DASHBOARD DE VENDAS 🛒",
		Filters:       filters,
		Regions:       domain.Regions,
		Years:         yearOptions(years),
		TopSellersMin: domain.MinTopSellers,
		TopSellersMax: domain.MaxTopSellers,
		Error:         message,
	}
}

func yearOptions(years domain.YearRange) []int {
	options := make([]int, 0, years.Max-years.Min+1)
	for year := years.Min; year <= years.Max; year++ {
		options = append(options, year)
	}
	return options
}
