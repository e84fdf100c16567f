package labdados

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	labdadosdomain "github.com/vfg2006/sales-dashboard/infrastructure/integrator/labdados/domain"
	"github.com/vfg2006/sales-dashboard/infrastructure/integrator/labdados/labdadosclient"
	"github.com/vfg2006/sales-dashboard/infrastructure/integrator/labdados/labdadosclient/mocks"
	"github.com/vfg2006/sales-dashboard/internal/config"
	"github.com/vfg2006/sales-dashboard/internal/domain"
	"go.uber.org/mock/gomock"
)

func floatPtr(f float64) *float64 {
	return &f
}

func TestLabDadosService_GetSales(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(&config.Config{}, mockClient)

	filters := &domain.DashboardFilters{
		Region:     domain.RegionCentroOeste,
		AllYears:   false,
		Year:       2022,
		Sellers:    []string{"Ana"},
		TopSellers: 5,
	}

	mockClient.EXPECT().
		GetProducts(gomock.Any(), labdadosdomain.ProductsParams{Region: "centro-oeste", Year: "2022"}).
		Return(labdadosclient.ProductsResponse{
			{
				Product:      "Cadeira",
				Category:     "moveis",
				Price:        250.5,
				PurchaseDate: "15/03/2022",
				Seller:       "Bruno",
				Location:     "GO",
				Rating:       floatPtr(4),
				PaymentType:  "pix",
				Latitude:     -15.98,
				Longitude:    -49.86,
			},
		}, nil)

	sales, err := service.GetSales(context.Background(), filters)
	require.NoError(t, err)
	require.Len(t, sales, 1)

	// O filtro de vendedores é aplicado depois da busca
	assert.Equal(t, "Bruno", sales[0].Seller)
	assert.Equal(t, time.Date(2022, time.March, 15, 0, 0, 0, 0, time.UTC), sales[0].PurchaseDate)
	assert.Equal(t, 250.5, sales[0].Price)
	assert.Equal(t, 4.0, *sales[0].Rating)
	assert.Equal(t, -15.98, sales[0].Latitude)
}

func TestLabDadosService_GetSales_InvalidDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(&config.Config{SalesAPI: config.SalesAPI{URL: "http://api"}}, mockClient)

	mockClient.EXPECT().
		GetProducts(gomock.Any(), labdadosdomain.ProductsParams{}).
		Return(labdadosclient.ProductsResponse{{PurchaseDate: "2022-03-15"}}, nil)

	sales, err := service.GetSales(context.Background(), domain.NewDashboardFilters())
	assert.Nil(t, sales)

	var fetchErr *domain.DataFetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Error(), "2022-03-15")
}

func TestLabDadosService_GetSales_ClientError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(&config.Config{}, mockClient)

	clientErr := domain.NewDataFetchError("http://api", 500, nil, "requisição falhou")
	mockClient.EXPECT().GetProducts(gomock.Any(), gomock.Any()).Return(nil, clientErr)

	_, err := service.GetSales(context.Background(), domain.NewDashboardFilters())
	assert.ErrorIs(t, err, domain.ErrSalesAPIFailure)
}

func TestLabDadosService_CheckConnection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(&config.Config{}, mockClient)

	mockClient.EXPECT().Ping(gomock.Any()).Return(nil)
	assert.NoError(t, service.CheckConnection(context.Background()))

	mockClient.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))
	assert.Error(t, service.CheckConnection(context.Background()))
}

func TestLabDadosService_GetSales_DebugLogsFirstRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hook := logtest.NewGlobal()
	defer hook.Reset()

	previous := logrus.GetLevel()
	logrus.SetLevel(logrus.DebugLevel)
	defer logrus.SetLevel(previous)

	mockClient := mocks.NewMockClient(ctrl)
	service := New(&config.Config{}, mockClient)

	mockClient.EXPECT().
		GetProducts(gomock.Any(), labdadosdomain.ProductsParams{}).
		Return(labdadosclient.ProductsResponse{{Product: "Cadeira", PurchaseDate: "15/03/2022"}}, nil)

	_, err := service.GetSales(context.Background(), domain.NewDashboardFilters())
	require.NoError(t, err)

	var logged bool
	for _, entry := range hook.AllEntries() {
		if strings.Contains(entry.Message, `"Produto": "Cadeira"`) {
			logged = true
		}
	}
	assert.True(t, logged, "registro de exemplo não apareceu no log de debug")
}
