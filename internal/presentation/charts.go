// Package presentation monta os gráficos e o layout em abas da página do dashboard
package presentation

import (
	"fmt"
	"html/template"
	"slices"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-dashboard/internal/domain"
	"github.com/vfg2006/sales-dashboard/internal/usecases/aggregating"
	"github.com/vfg2006/sales-dashboard/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Paleta usada quando cada barra recebe uma cor
var defaultColors = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

var lineDashes = []string{"solid", "dashed", "dotted"}

var ratingScale = []string{"#deebf7", "#9ecae1", "#4292c6", "#08306b"}

// Chart é um gráfico pronto para o template: id do elemento e opção ECharts em JSON
type Chart struct {
	ID     string
	Name   string
	Title  string
	Option template.JS
}

type echartsChart interface {
	Validate()
	JSON() map[string]interface{}
}

// chartSpec guarda o gráfico go-echarts e chaves que substituem as da opção gerada
type chartSpec struct {
	name  string
	title string
	chart echartsChart
	extra map[string]interface{}
}

// BuildCharts mapeia cada tabela de resumo para o seu gráfico, indexado pelo nome
func BuildCharts(summary *domain.DashboardSummary, topSellers int) (map[string]Chart, error) {
	specs := []chartSpec{
		revenueMap(summary.RevenueByLocation),
		monthlyRevenueLine(summary.MonthlyRevenue),
		topLocationsBar(summary.RevenueByLocation),
		revenueByCategoryBar(summary.RevenueByCategory),
		salesByCategoryBar(summary.SalesByCategory),
		salesByProductBar(summary.SalesByProduct),
		ratingByCategoryBar(summary.RatingByCategory),
		paymentByRegionBar(summary.PaymentByRegion),
		topSellersRevenueBar(summary.TopSellersByRevenue, topSellers),
		topSellersSalesBar(summary.TopSellersBySales, topSellers),
	}

	built := make(map[string]Chart, len(specs))
	for _, spec := range specs {
		chart, err := render(spec)
		if err != nil {
			return nil, fmt.Errorf("presentation: erro ao montar gráfico %s: %w", spec.name, err)
		}
		built[spec.name] = chart
	}

	return built, nil
}

func render(spec chartSpec) (Chart, error) {
	id, err := utils.GenerateID(spec.name)
	if err != nil {
		return Chart{}, err
	}

	spec.chart.Validate()
	option := spec.chart.JSON()
	for key, value := range spec.extra {
		option[key] = value
	}

	raw, err := json.Marshal(option)
	if err != nil {
		return Chart{}, err
	}

	return Chart{
		ID:     id,
		Name:   spec.name,
		Title:  spec.title,
		Option: template.JS(raw),
	}, nil
}

func titleOpts(title string) charts.GlobalOpts {
	return charts.WithTitleOpts(opts.Title{Title: title})
}

func barLabel() charts.SeriesOpts {
	return charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"})
}

func horizontalBar(title, yName string) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		titleOpts(title),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Name: yName}),
	)
	return bar
}

func verticalBar(title, yName string) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		titleOpts(title),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: yName}),
	)
	return bar
}

// revenueMap posiciona uma bolha por local da compra, com tamanho proporcional à receita
func revenueMap(rows []domain.LocationRevenue) chartSpec {
	geo := charts.NewGeo()
	geo.SetGlobalOptions(
		titleOpts("Receita por estado"),
		charts.WithGeoComponentOpts(opts.GeoComponent{Map: "world"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	data := make([]opts.GeoData, 0, len(rows))
	maxRevenue := 0.0
	for _, row := range rows {
		revenue := utils.RoundWithTwoDecimalPlace(row.Revenue)
		data = append(data, opts.GeoData{
			Name:  row.Location,
			Value: []float64{row.Longitude, row.Latitude, revenue},
		})
		if revenue > maxRevenue {
			maxRevenue = revenue
		}
	}
	geo.AddSeries("Receita", types.ChartScatter, data)

	return chartSpec{
		name:  "mapa_receita",
		title: "Receita por estado",
		chart: geo,
		extra: map[string]interface{}{
			"geo": map[string]interface{}{
				"map":    "world",
				"roam":   true,
				"center": []float64{-55, -15},
				"zoom":   3.2,
			},
			"visualMap": []map[string]interface{}{{
				"type":       "continuous",
				"show":       false,
				"min":        0,
				"max":        maxRevenue,
				"dimension":  2,
				"inRange":    map[string]interface{}{"symbolSize": []int{6, 40}},
				"calculable": false,
			}},
		},
	}
}

// monthlyRevenueLine desenha uma linha por ano; o ano define a cor e o tracejado
func monthlyRevenueLine(rows []domain.MonthlyRevenue) chartSpec {
	line := charts.NewLine()
	line.SetGlobalOptions(
		titleOpts("Receita mensal"),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Right: "10"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Receita", Min: 0}),
	)

	months := utils.MonthNames()
	line.SetXAxis(months)

	years := make([]int, 0)
	byYear := make(map[int][]opts.LineData)
	for _, row := range rows {
		data, ok := byYear[row.Year]
		if !ok {
			years = append(years, row.Year)
			data = make([]opts.LineData, len(months))
			for i := range data {
				data[i] = opts.LineData{Value: "-"}
			}
		}
		data[row.Month.Month()-1] = opts.LineData{Value: utils.RoundWithTwoDecimalPlace(row.Revenue)}
		byYear[row.Year] = data
	}

	for i, year := range years {
		line.AddSeries(strconv.Itoa(year), byYear[year],
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(true)}),
			charts.WithLineStyleOpts(opts.LineStyle{Type: lineDashes[i%len(lineDashes)]}),
		)
	}

	return chartSpec{name: "receita_mensal", title: "Receita mensal", chart: line}
}

func topLocationsBar(rows []domain.LocationRevenue) chartSpec {
	if len(rows) > aggregating.TopLocations {
		rows = rows[:aggregating.TopLocations]
	}

	labels := make([]string, 0, len(rows))
	data := make([]opts.BarData, 0, len(rows))
	for _, row := range rows {
		labels = append(labels, row.Location)
		data = append(data, opts.BarData{Value: utils.RoundWithTwoDecimalPlace(row.Revenue)})
	}

	bar := verticalBar("Top Estados (receita)", "Receita")
	bar.SetXAxis(labels).AddSeries("Receita", data, barLabel())

	return chartSpec{name: "receita_estados", title: "Top Estados (receita)", chart: bar}
}

func revenueByCategoryBar(rows []domain.CategoryRevenue) chartSpec {
	labels := make([]string, 0, len(rows))
	data := make([]opts.BarData, 0, len(rows))
	for _, row := range rows {
		labels = append(labels, row.Category)
		data = append(data, opts.BarData{Value: utils.RoundWithTwoDecimalPlace(row.Revenue)})
	}

	bar := verticalBar("Receita por categoria", "Receita")
	bar.SetXAxis(labels).AddSeries("Receita", data, barLabel())

	return chartSpec{name: "receita_categoria", title: "Receita por categoria", chart: bar}
}

func salesByCategoryBar(rows []domain.CategorySales) chartSpec {
	labels := make([]string, 0, len(rows))
	data := make([]opts.BarData, 0, len(rows))
	for i, row := range rows {
		labels = append(labels, row.Category)
		data = append(data, opts.BarData{
			Value:     row.Sales,
			ItemStyle: &opts.ItemStyle{Color: defaultColors[i%len(defaultColors)]},
		})
	}

	bar := horizontalBar("Número de Vendas por Categoria", "Categoria")
	bar.SetXAxis(labels).AddSeries("Quantidade de Vendas", data, barLabel())
	bar.XYReversal()

	return chartSpec{name: "vendas_categoria", title: "Número de Vendas por Categoria", chart: bar}
}

func salesByProductBar(rows []domain.ProductSales) chartSpec {
	if len(rows) > aggregating.TopProducts {
		rows = rows[:aggregating.TopProducts]
	}

	labels := make([]string, 0, len(rows))
	data := make([]opts.BarData, 0, len(rows))
	for i, row := range rows {
		labels = append(labels, row.Product)
		data = append(data, opts.BarData{
			Value:     row.Sales,
			ItemStyle: &opts.ItemStyle{Color: defaultColors[i%len(defaultColors)]},
		})
	}

	bar := horizontalBar("Top 10 Produtos Mais Vendidos", "Produto")
	bar.SetXAxis(labels).AddSeries("Quantidade de Vendas", data, barLabel())
	bar.XYReversal()

	return chartSpec{name: "vendas_produto", title: "Top 10 Produtos Mais Vendidos", chart: bar}
}

func ratingByCategoryBar(rows []domain.CategoryRating) chartSpec {
	labels := make([]string, 0, len(rows))
	data := make([]opts.BarData, 0, len(rows))
	for _, row := range rows {
		labels = append(labels, row.Category)
		data = append(data, opts.BarData{Value: utils.RoundWithTwoDecimalPlace(row.AverageRating)})
	}

	bar := horizontalBar("Avaliação média por categoria", "Categoria")
	bar.SetXAxis(labels).AddSeries("Avaliação média", data, barLabel())
	bar.XYReversal()

	return chartSpec{
		name:  "avaliacao_categoria",
		title: "Avaliação média por categoria",
		chart: bar,
		extra: map[string]interface{}{
			"visualMap": []map[string]interface{}{{
				"type":       "continuous",
				"min":        0,
				"max":        5,
				"dimension":  0,
				"calculable": true,
				"orient":     "horizontal",
				"left":       "center",
				"bottom":     0,
				"inRange":    map[string]interface{}{"color": ratingScale},
			}},
		},
	}
}

// paymentByRegionBar agrupa as barras por local, com uma série por tipo de pagamento
func paymentByRegionBar(rows []domain.PaymentRegionSales) chartSpec {
	locations := make([]string, 0)
	paymentTypes := make([]string, 0)
	counts := make(map[string]map[string]int)

	for _, row := range rows {
		if _, ok := counts[row.Location]; !ok {
			locations = append(locations, row.Location)
			counts[row.Location] = make(map[string]int)
		}
		if !slices.Contains(paymentTypes, row.PaymentType) {
			paymentTypes = append(paymentTypes, row.PaymentType)
		}
		counts[row.Location][row.PaymentType] = row.Sales
	}

	bar := verticalBar("Métodos de pagamento por região", "Número de vendas")
	bar.SetGlobalOptions(charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Right: "10"}))
	bar.SetXAxis(locations)

	for _, paymentType := range paymentTypes {
		data := make([]opts.BarData, 0, len(locations))
		for _, location := range locations {
			data = append(data, opts.BarData{Value: counts[location][paymentType]})
		}
		bar.AddSeries(paymentType, data, barLabel())
	}

	return chartSpec{name: "pagamento_regiao", title: "Métodos de pagamento por região", chart: bar}
}

func topSellersRevenueBar(rows []domain.SellerSummary, topSellers int) chartSpec {
	title := fmt.Sprintf("Top %d vendedores (receita)", topSellers)

	labels := make([]string, 0, len(rows))
	data := make([]opts.BarData, 0, len(rows))
	for _, row := range rows {
		labels = append(labels, row.Seller)
		data = append(data, opts.BarData{Value: utils.RoundWithTwoDecimalPlace(row.Revenue)})
	}

	bar := horizontalBar(title, "Vendedor")
	bar.SetXAxis(labels).AddSeries("sum", data, barLabel())
	bar.XYReversal()

	return chartSpec{name: "receita_vendedores", title: title, chart: bar}
}

func topSellersSalesBar(rows []domain.SellerSummary, topSellers int) chartSpec {
	title := fmt.Sprintf("Top %d vendedores (quantidade de vendas)", topSellers)

	labels := make([]string, 0, len(rows))
	data := make([]opts.BarData, 0, len(rows))
	for _, row := range rows {
		labels = append(labels, row.Seller)
		data = append(data, opts.BarData{Value: row.Sales})
	}

	bar := horizontalBar(title, "Vendedor")
	bar.SetXAxis(labels).AddSeries("count", data, barLabel())
	bar.XYReversal()

	return chartSpec{name: "vendas_vendedores", title: title, chart: bar}
}
