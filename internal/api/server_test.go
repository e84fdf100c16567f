package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard/infrastructure/integrator/labdados"
	"github.com/vfg2006/sales-dashboard/infrastructure/integrator/labdados/labdadosclient"
	"github.com/vfg2006/sales-dashboard/internal/config"
	"github.com/vfg2006/sales-dashboard/internal/domain"
	"github.com/vfg2006/sales-dashboard/internal/presentation"
	"github.com/vfg2006/sales-dashboard/internal/scheduler"
	"github.com/vfg2006/sales-dashboard/internal/usecases/aggregating"
	"github.com/vfg2006/sales-dashboard/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var regionStates = map[string][]string{
	"sudeste": {"SP", "RJ"},
	"sul":     {"RS", "PR"},
}

type fixtureProduct struct {
	Product  string  `json:"Produto"`
	Category string  `json:"Categoria do Produto"`
	Price    float64 `json:"Preço"`
	Date     string  `json:"Data da Compra"`
	Seller   string  `json:"Vendedor"`
	Location string  `json:"Local da compra"`
	Payment  string  `json:"Tipo de pagamento"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
}

var fixtureProducts = []fixtureProduct{
	{"Cama box", "moveis", 100, "10/01/2021", "Ana", "SP", "boleto", -23.5, -46.6},
	{"Celular", "eletronicos", 200, "15/02/2021", "Bruno", "RJ", "cartao_credito", -22.9, -43.2},
	{"Cama box", "moveis", 300, "20/03/2022", "Ana", "SP", "boleto", -23.5, -46.6},
	{"Livro", "livros", 400, "05/04/2022", "Carla", "RJ", "cartao_credito", -22.9, -43.2},
	{"Mesa", "moveis", 500, "12/05/2021", "Diego", "RS", "boleto", -30.0, -51.2},
	{"Celular", "eletronicos", 600, "18/06/2021", "Ana", "PR", "cartao_debito", -25.4, -49.3},
	{"Livro", "livros", 700, "22/07/2022", "Diego", "RS", "boleto", -30.0, -51.2},
	{"Mesa", "moveis", 800, "30/08/2022", "Bruno", "PR", "cartao_credito", -25.4, -49.3},
	{"Livro", "livros", 900, "01/09/2021", "Carla", "SP", "boleto", -23.5, -46.6},
	{"Mesa", "moveis", 1000, "14/10/2021", "Bruno", "RS", "cartao_credito", -30.0, -51.2},
}

// newSalesAPI simula a API de produtos, filtrando por regiao e ano como a original
func newSalesAPI(t *testing.T) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		region := r.URL.Query().Get("regiao")
		year := r.URL.Query().Get("ano")

		result := make([]fixtureProduct, 0)
		for _, product := range fixtureProducts {
			if region != "" {
				states, ok := regionStates[region]
				if !ok || !contains(states, product.Location) {
					continue
				}
			}
			if year != "" && !strings.HasSuffix(product.Date, "/"+year) {
				continue
			}
			result = append(result, product)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}))
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

func newTestHandler(t *testing.T, salesAPIURL string, overrides ...func(cfg *config.Config)) http.Handler {
	t.Helper()

	cfg := &config.Config{
		SalesAPI:  config.SalesAPI{URL: salesAPIURL},
		Dashboard: config.Dashboard{MinYear: 2020, MaxYear: 2023, TopSellers: 5},
		Server:    config.Server{AllowedOrigins: []string{"http://localhost:3000"}},
	}
	for _, override := range overrides {
		override(cfg)
	}

	integrator := labdados.New(cfg, labdadosclient.NewClient(cfg))
	service := dashboarding.NewService(cfg, integrator, aggregating.NewService())

	renderer, err := presentation.NewRenderer()
	require.NoError(t, err)

	return NewHandler(cfg, service, renderer, scheduler.NewUpstreamCheckService(integrator, cfg))
}

func TestDashboardAPI_RegionAndYear(t *testing.T) {
	salesAPI := newSalesAPI(t)
	defer salesAPI.Close()

	handler := newTestHandler(t, salesAPI.URL)

	tests := []struct {
		name            string
		query           string
		wantRevenue     float64
		wantQuantity    int
		wantCategories  int
		wantSellers     []string
		wantTopByRevenu string
	}{
		{
			name:            "Sudeste em 2021",
			query:           "regiao=Sudeste&todos_anos=false&ano=2021",
			wantRevenue:     1200,
			wantQuantity:    3,
			wantCategories:  3,
			wantSellers:     []string{"Ana", "Bruno", "Carla"},
			wantTopByRevenu: "Carla",
		},
		{
			name:            "Sul em todo o período",
			query:           "regiao=Sul&todos_anos=true",
			wantRevenue:     3600,
			wantQuantity:    5,
			wantCategories:  3,
			wantSellers:     []string{"Diego", "Ana", "Bruno"},
			wantTopByRevenu: "Bruno",
		},
		{
			name:            "Brasil sem filtros",
			query:           "",
			wantRevenue:     5500,
			wantQuantity:    10,
			wantCategories:  3,
			wantSellers:     []string{"Ana", "Bruno", "Carla", "Diego"},
			wantTopByRevenu: "Bruno",
		},
		{
			name:            "filtro de vendedor mantém as opções",
			query:           "regiao=Brasil&vendedores=Ana",
			wantRevenue:     1000,
			wantQuantity:    3,
			wantCategories:  2,
			wantSellers:     []string{"Ana", "Bruno", "Carla", "Diego"},
			wantTopByRevenu: "Ana",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard?"+tt.query, nil))

			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			var dashboard domain.Dashboard
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dashboard))

			assert.InDelta(t, tt.wantRevenue, dashboard.Summary.Metrics.Revenue, 0.001)
			assert.Equal(t, tt.wantQuantity, dashboard.Summary.Metrics.SalesQuantity)
			assert.Equal(t, tt.wantCategories, dashboard.Summary.Metrics.UniqueCategories)
			assert.Equal(t, tt.wantSellers, dashboard.SellerOptions)
			require.NotEmpty(t, dashboard.Summary.TopSellersByRevenue)
			assert.Equal(t, tt.wantTopByRevenu, dashboard.Summary.TopSellersByRevenue[0].Seller)
		})
	}
}

func TestDashboardPage_RendersTabs(t *testing.T) {
	salesAPI := newSalesAPI(t)
	defer salesAPI.Close()

	handler := newTestHandler(t, salesAPI.URL)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?regiao=Sul&todos_anos=true", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, "R$ 3.60 mil")
	assert.Contains(t, body, "Quantidade de vendas")
	assert.Contains(t, body, "Categorias únicas")
	assert.Contains(t, body, "Vendedores")
	assert.Contains(t, body, "echarts.init")
	assert.Contains(t, body, `<option value="Diego"`)
}

func TestDashboard_SalesAPIFailure(t *testing.T) {
	salesAPI := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer salesAPI.Close()

	handler := newTestHandler(t, salesAPI.URL)

	t.Run("JSON responde 502 com código de serviço externo", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil))

		assert.Equal(t, http.StatusBadGateway, rec.Code)

		var apiErr apiErrors.APIError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
		assert.Equal(t, apiErrors.ErrExternalService, apiErr.Code)
	})

	t.Run("página mostra o erro sem gráficos", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Contains(t, rec.Body.String(), "Não foi possível carregar os dados de vendas")
		assert.NotContains(t, rec.Body.String(), "echarts.init")
	})
}

func TestDashboardAPI_UncheckedAllYearsStartsAtConfiguredMinYear(t *testing.T) {
	salesAPI := newSalesAPI(t)
	defer salesAPI.Close()

	handler := newTestHandler(t, salesAPI.URL, func(cfg *config.Config) {
		cfg.Dashboard.MinYear = 2021
	})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard?todos_anos=false", nil))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var dashboard domain.Dashboard
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dashboard))

	assert.Equal(t, 2021, dashboard.Filters.Year)
	assert.Equal(t, 6, dashboard.Summary.Metrics.SalesQuantity)
	assert.InDelta(t, 3300, dashboard.Summary.Metrics.Revenue, 0.001)
}

func TestDashboard_InvalidFilter(t *testing.T) {
	salesAPI := newSalesAPI(t)
	defer salesAPI.Close()

	handler := newTestHandler(t, salesAPI.URL)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard?qtd_vendedores=11", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthcheck(t *testing.T) {
	handler := newTestHandler(t, "http://127.0.0.1:0")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	assert.Contains(t, rec.Body.String(), `"upstream_healthy":true`)
}
