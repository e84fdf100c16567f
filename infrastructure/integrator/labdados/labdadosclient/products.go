package labdadosclient

import (
	"context"
	"net/http"
	"net/url"

	jsoniter "github.com/json-iterator/go"
	labdadosdomain "github.com/vfg2006/sales-dashboard/infrastructure/integrator/labdados/domain"
	"github.com/vfg2006/sales-dashboard/internal/domain"
	"github.com/vfg2006/sales-dashboard/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type ProductsResponse []labdadosdomain.Product

// GetProducts faz um único GET na API de produtos. Não há nova tentativa em caso de falha.
func (c *LabDadosClient) GetProducts(ctx context.Context, params labdadosdomain.ProductsParams) (ProductsResponse, error) {
	var response ProductsResponse

	endpoint, err := c.productsURL(params)
	if err != nil {
		return response, domain.NewDataFetchError(c.baseURL, 0, err, "erro ao analisar a URL base")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return response, domain.NewDataFetchError(endpoint, 0, err, "erro ao criar a requisição")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return response, domain.NewDataFetchError(endpoint, 0, err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return response, domain.NewDataFetchError(endpoint, resp.StatusCode, nil, "requisição falhou com status: "+resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, domain.NewDataFetchError(endpoint, resp.StatusCode, err, "erro ao decodificar a resposta")
	}

	return response, nil
}

// Ping verifica se a API responde, sem filtros
func (c *LabDadosClient) Ping(ctx context.Context) error {
	endpoint, err := c.productsURL(labdadosdomain.ProductsParams{})
	if err != nil {
		return err
	}

	return utils.CheckStatus(ctx, c.httpClient, endpoint)
}

// productsURL monta a URL com regiao e ano, sempre presentes mesmo quando vazios
func (c *LabDadosClient) productsURL(params labdadosdomain.ProductsParams) (string, error) {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return "", err
	}

	query := endpoint.Query()
	query.Set("regiao", params.Region)
	query.Set("ano", params.Year)
	endpoint.RawQuery = query.Encode()

	return endpoint.String(), nil
}
