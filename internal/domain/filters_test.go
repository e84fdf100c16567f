package domain

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultYears = YearRange{Min: DefaultMinYear, Max: DefaultMaxYear}

func TestParseDashboardFilters_Defaults(t *testing.T) {
	filters, err := ParseDashboardFilters(url.Values{}, defaultYears, 0)
	require.NoError(t, err)

	assert.Equal(t, RegionBrasil, filters.Region)
	assert.True(t, filters.AllYears)
	assert.Empty(t, filters.Sellers)
	assert.Equal(t, DefaultTopSellers, filters.TopSellers)
	assert.NoError(t, filters.Validate(defaultYears))
	assert.Equal(t, SalesQueryParams{}, filters.QueryParams())
}

func TestParseDashboardFilters(t *testing.T) {
	values := url.Values{
		"regiao":         {"Centro-Oeste"},
		"todos_anos":     {"false"},
		"ano":            {"2021"},
		"vendedores":     {"Ana", " Bruno ", "Ana", ""},
		"qtd_vendedores": {"7"},
	}

	filters, err := ParseDashboardFilters(values, defaultYears, 5)
	require.NoError(t, err)

	assert.Equal(t, RegionCentroOeste, filters.Region)
	assert.False(t, filters.AllYears)
	assert.Equal(t, 2021, filters.Year)
	assert.Equal(t, []string{"Ana", "Bruno"}, filters.Sellers)
	assert.Equal(t, 7, filters.TopSellers)
	assert.Equal(t, SalesQueryParams{Region: "centro-oeste", Year: "2021"}, filters.QueryParams())
}

func TestParseDashboardFilters_CheckboxUsesLastValue(t *testing.T) {
	filters, err := ParseDashboardFilters(url.Values{"todos_anos": {"false", "true"}, "ano": {"2022"}}, defaultYears, 5)
	require.NoError(t, err)
	assert.True(t, filters.AllYears)
	assert.Equal(t, 0, filters.Year)

	filters, err = ParseDashboardFilters(url.Values{"todos_anos": {"false"}, "ano": {"2022"}}, defaultYears, 5)
	require.NoError(t, err)
	assert.False(t, filters.AllYears)
	assert.Equal(t, 2022, filters.Year)

	filters, err = ParseDashboardFilters(url.Values{"todos_anos": {"false"}}, defaultYears, 5)
	require.NoError(t, err)
	assert.False(t, filters.AllYears)
	assert.Equal(t, DefaultMinYear, filters.Year)
}

func TestParseDashboardFilters_MissingYearUsesRangeStart(t *testing.T) {
	tests := []struct {
		name  string
		years YearRange
		want  int
	}{
		{"intervalo padrão", defaultYears, 2020},
		{"intervalo configurado", YearRange{Min: 2021, Max: 2023}, 2021},
		{"intervalo vazio", YearRange{}, DefaultMinYear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filters, err := ParseDashboardFilters(url.Values{"todos_anos": {"false"}}, tt.years, 5)
			require.NoError(t, err)
			assert.Equal(t, tt.want, filters.Year)

			if tt.years.Min != 0 {
				assert.NoError(t, filters.Validate(tt.years))
			}
		})
	}
}

func TestParseDashboardFilters_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		values url.Values
		field  string
	}{
		{name: "booleano inválido", values: url.Values{"todos_anos": {"talvez"}}, field: "todos_anos"},
		{name: "ano não numérico", values: url.Values{"todos_anos": {"false"}, "ano": {"dois mil"}}, field: "ano"},
		{name: "quantidade não numérica", values: url.Values{"qtd_vendedores": {"cinco"}}, field: "qtd_vendedores"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDashboardFilters(tt.values, defaultYears, 5)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
			assert.ErrorIs(t, err, ErrInvalidFilter)
		})
	}
}

func TestDashboardFilters_Validate(t *testing.T) {
	tests := []struct {
		name    string
		filters DashboardFilters
		field   string
	}{
		{name: "válido", filters: DashboardFilters{Region: RegionSul, AllYears: false, Year: 2023, TopSellers: 10}},
		{name: "ano ignorado quando todos os anos", filters: DashboardFilters{Region: RegionNorte, AllYears: true, Year: 1999, TopSellers: 2}},
		{name: "região desconhecida", filters: DashboardFilters{Region: "Oeste", AllYears: true, TopSellers: 5}, field: "regiao"},
		{name: "ano abaixo do intervalo", filters: DashboardFilters{Region: RegionSul, Year: 2019, TopSellers: 5}, field: "ano"},
		{name: "ano acima do intervalo", filters: DashboardFilters{Region: RegionSul, Year: 2024, TopSellers: 5}, field: "ano"},
		{name: "poucos vendedores", filters: DashboardFilters{Region: RegionSul, AllYears: true, TopSellers: 1}, field: "qtd_vendedores"},
		{name: "muitos vendedores", filters: DashboardFilters{Region: RegionSul, AllYears: true, TopSellers: 11}, field: "qtd_vendedores"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.filters.Validate(defaultYears)
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestDashboardFilters_QueryParams(t *testing.T) {
	for _, region := range Regions {
		filters := &DashboardFilters{Region: region, AllYears: true}
		params := filters.QueryParams()

		if region == RegionBrasil {
			assert.Empty(t, params.Region)
			continue
		}
		assert.Equal(t, map[Region]string{
			RegionCentroOeste: "centro-oeste",
			RegionNordeste:    "nordeste",
			RegionNorte:       "norte",
			RegionSudeste:     "sudeste",
			RegionSul:         "sul",
		}[region], params.Region)
		assert.Empty(t, params.Year)
	}
}

func TestDashboardFilters_MatchesSeller(t *testing.T) {
	all := &DashboardFilters{}
	assert.True(t, all.MatchesSeller("Qualquer"))

	some := &DashboardFilters{Sellers: []string{"Ana", "Bruno"}}
	assert.True(t, some.MatchesSeller("Ana"))
	assert.False(t, some.MatchesSeller("Carla"))
}

func TestDashboardFilters_ValuesRoundTrip(t *testing.T) {
	filters := &DashboardFilters{Region: RegionNordeste, AllYears: false, Year: 2020, Sellers: []string{"Ana"}, TopSellers: 3}

	parsed, err := ParseDashboardFilters(filters.Values(), defaultYears, 5)
	require.NoError(t, err)
	assert.Equal(t, filters, parsed)
}

func TestFilterSellers(t *testing.T) {
	sales := []Sale{{Seller: "Ana"}, {Seller: "Bruno"}, {Seller: "Ana"}, {Seller: "Carla"}}

	assert.Len(t, FilterSellers(sales, nil), 4)
	assert.Len(t, FilterSellers(sales, &DashboardFilters{}), 4)

	filtered := FilterSellers(sales, &DashboardFilters{Sellers: []string{"Ana", "Carla"}})
	require.Len(t, filtered, 3)
	for _, sale := range filtered {
		assert.Contains(t, []string{"Ana", "Carla"}, sale.Seller)
	}
}

func TestDistinctSellers(t *testing.T) {
	sales := []Sale{{Seller: "Carla"}, {Seller: "Ana"}, {Seller: "Carla"}, {Seller: "Bruno"}}
	assert.Equal(t, []string{"Carla", "Ana", "Bruno"}, DistinctSellers(sales))
	assert.Empty(t, DistinctSellers(nil))
}
