package domain

import (
	"net/url"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Region agrupa estados para o filtro geográfico da API de vendas
type Region string

const (
	RegionBrasil      Region = "Brasil" // Sem filtro de região
	RegionCentroOeste Region = "Centro-Oeste"
	RegionNordeste    Region = "Nordeste"
	RegionNorte       Region = "Norte"
	RegionSudeste     Region = "Sudeste"
	RegionSul         Region = "Sul"
)

// Regions lista as opções do seletor, na ordem exibida
var Regions = []Region{
	RegionBrasil,
	RegionCentroOeste,
	RegionNordeste,
	RegionNorte,
	RegionSudeste,
	RegionSul,
}

const (
	DefaultMinYear    = 2020
	DefaultMaxYear    = 2023
	DefaultTopSellers = 5
	MinTopSellers     = 2
	MaxTopSellers     = 10
)

var lowerPT = cases.Lower(language.BrazilianPortuguese)

// DashboardFilters representa os controles da barra lateral
type DashboardFilters struct {
	Region     Region   `json:"regiao"`
	AllYears   bool     `json:"todos_anos"`
	Year       int      `json:"ano,omitempty"`
	Sellers    []string `json:"vendedores,omitempty"`
	TopSellers int      `json:"qtd_vendedores"`
}

// YearRange limita o valor aceito pelo controle de ano
type YearRange struct {
	Min int
	Max int
}

// SalesQueryParams são os parâmetros enviados para a API de vendas.
// Campos vazios significam "sem filtro".
type SalesQueryParams struct {
	Region string
	Year   string
}

// NewDashboardFilters retorna os filtros iniciais da página
func NewDashboardFilters() *DashboardFilters {
	return &DashboardFilters{
		Region:     RegionBrasil,
		AllYears:   true,
		TopSellers: DefaultTopSellers,
	}
}

// ParseDashboardFilters lê os filtros a partir da query string do formulário.
// Parâmetros ausentes assumem os valores padrão; o ano padrão é o início do intervalo.
func ParseDashboardFilters(values url.Values, years YearRange, defaultTopSellers int) (*DashboardFilters, error) {
	filters := NewDashboardFilters()
	if defaultTopSellers > 0 {
		filters.TopSellers = defaultTopSellers
	}

	if region := strings.TrimSpace(values.Get("regiao")); region != "" {
		filters.Region = Region(region)
	}

	// O formulário envia um campo oculto "false" antes do checkbox, vale o último valor
	if all := values["todos_anos"]; len(all) > 0 {
		allYears := all[len(all)-1]
		parsed, err := strconv.ParseBool(allYears)
		if err != nil {
			return nil, NewValidationError("todos_anos", "valor booleano inválido: "+allYears)
		}
		filters.AllYears = parsed
	}

	// Ao desmarcar "todo o período" o seletor de ano ainda não existe, vale o início do intervalo
	if !filters.AllYears && values.Get("ano") == "" {
		filters.Year = years.Min
		if filters.Year == 0 {
			filters.Year = DefaultMinYear
		}
	} else if !filters.AllYears {
		year, err := strconv.Atoi(values.Get("ano"))
		if err != nil {
			return nil, NewValidationError("ano", "ano inválido: "+values.Get("ano"))
		}
		filters.Year = year
	}

	for _, seller := range values["vendedores"] {
		seller = strings.TrimSpace(seller)
		if seller != "" && !slices.Contains(filters.Sellers, seller) {
			filters.Sellers = append(filters.Sellers, seller)
		}
	}

	if topSellers := values.Get("qtd_vendedores"); topSellers != "" {
		n, err := strconv.Atoi(topSellers)
		if err != nil {
			return nil, NewValidationError("qtd_vendedores", "quantidade inválida: "+topSellers)
		}
		filters.TopSellers = n
	}

	return filters, nil
}

// Validate aplica apenas as restrições de enumeração e de intervalo dos controles
func (f *DashboardFilters) Validate(years YearRange) error {
	if !slices.Contains(Regions, f.Region) {
		return NewValidationError("regiao", "região desconhecida: "+string(f.Region))
	}

	if !f.AllYears && (f.Year < years.Min || f.Year > years.Max) {
		return NewValidationError("ano", "ano fora do intervalo "+strconv.Itoa(years.Min)+"-"+strconv.Itoa(years.Max))
	}

	if f.TopSellers < MinTopSellers || f.TopSellers > MaxTopSellers {
		return NewValidationError("qtd_vendedores", "quantidade de vendedores deve estar entre 2 e 10")
	}

	return nil
}

// QueryParams resolve os parâmetros regiao/ano enviados para a API
func (f *DashboardFilters) QueryParams() SalesQueryParams {
	params := SalesQueryParams{}

	if f.Region != RegionBrasil {
		params.Region = lowerPT.String(string(f.Region))
	}

	if !f.AllYears {
		params.Year = strconv.Itoa(f.Year)
	}

	return params
}

// MatchesSeller informa se o vendedor passa pelo filtro de vendedores.
// Sem vendedores selecionados, todos passam.
func (f *DashboardFilters) MatchesSeller(seller string) bool {
	if len(f.Sellers) == 0 {
		return true
	}
	return slices.Contains(f.Sellers, seller)
}

// Values serializa os filtros de volta para a query string do formulário
func (f *DashboardFilters) Values() url.Values {
	values := url.Values{}
	values.Set("regiao", string(f.Region))
	values.Set("todos_anos", strconv.FormatBool(f.AllYears))
	if !f.AllYears {
		values.Set("ano", strconv.Itoa(f.Year))
	}
	for _, seller := range f.Sellers {
		values.Add("vendedores", seller)
	}
	values.Set("qtd_vendedores", strconv.Itoa(f.TopSellers))
	return values
}
