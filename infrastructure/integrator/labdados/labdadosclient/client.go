package labdadosclient

import (
	"context"
	"net/http"

	labdadosdomain "github.com/vfg2006/sales-dashboard/infrastructure/integrator/labdados/domain"
	"github.com/vfg2006/sales-dashboard/internal/config"
)

//go:generate mockgen -source=client.go -destination=mocks/mock_client.go -package=mocks

type Client interface {
	GetProducts(ctx context.Context, params labdadosdomain.ProductsParams) (ProductsResponse, error)
	Ping(ctx context.Context) error
}

type LabDadosClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient cria o cliente da API de produtos. Timeout zero não limita a requisição.
func NewClient(cfg *config.Config) Client {
	return &LabDadosClient{
		httpClient: &http.Client{
			Timeout: cfg.SalesAPI.Timeout,
		},
		baseURL: cfg.SalesAPI.URL,
	}
}
