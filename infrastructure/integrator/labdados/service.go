package labdados

import (
	"context"

	"github.com/sirupsen/logrus"
	labdadosdomain "github.com/vfg2006/sales-dashboard/infrastructure/integrator/labdados/domain"
	"github.com/vfg2006/sales-dashboard/infrastructure/integrator/labdados/labdadosclient"
	"github.com/vfg2006/sales-dashboard/internal/config"
	"github.com/vfg2006/sales-dashboard/internal/domain"
	"github.com/vfg2006/sales-dashboard/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

type SalesIntegrator interface {
	GetSales(ctx context.Context, filters *domain.DashboardFilters) ([]domain.Sale, error)
	CheckConnection(ctx context.Context) error
}

type LabDadosService struct {
	cfg    *config.Config
	Client labdadosclient.Client
}

func New(cfg *config.Config, client labdadosclient.Client) SalesIntegrator {
	return &LabDadosService{
		cfg:    cfg,
		Client: client,
	}
}

// GetSales busca as vendas da região/ano dos filtros e normaliza a data da compra.
// O filtro de vendedores não é aplicado aqui.
func (s *LabDadosService) GetSales(ctx context.Context, filters *domain.DashboardFilters) ([]domain.Sale, error) {
	query := filters.QueryParams()

	resp, err := s.Client.GetProducts(ctx, labdadosdomain.ProductsParams{
		Region: query.Region,
		Year:   query.Year,
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"regiao":    query.Region,
		"ano":       query.Year,
		"registros": len(resp),
	}).Debug("labdados: vendas recebidas")

	if len(resp) > 0 && logrus.IsLevelEnabled(logrus.DebugLevel) {
		logrus.Debug("labdados: primeiro registro recebido\n", utils.PrettyJson(resp[0]))
	}

	return s.normalize(resp)
}

func (s *LabDadosService) CheckConnection(ctx context.Context) error {
	return s.Client.Ping(ctx)
}

func (s *LabDadosService) normalize(products []labdadosdomain.Product) ([]domain.Sale, error) {
	sales := make([]domain.Sale, 0, len(products))

	for _, product := range products {
		purchaseDate, err := utils.ParseSaleDate(product.PurchaseDate)
		if err != nil {
			return nil, domain.NewDataFetchError(s.cfg.SalesAPI.URL, 0, err, "data da compra inválida: "+product.PurchaseDate)
		}

		sales = append(sales, domain.Sale{
			Product:      product.Product,
			Category:     product.Category,
			Price:        product.Price,
			Shipping:     product.Shipping,
			PurchaseDate: purchaseDate,
			Seller:       product.Seller,
			Location:     product.Location,
			Rating:       product.Rating,
			PaymentType:  product.PaymentType,
			Installments: product.Installments,
			Latitude:     product.Latitude,
			Longitude:    product.Longitude,
		})
	}

	return sales, nil
}
