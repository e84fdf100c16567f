// Package dashboarding orquestra uma renderização: busca, filtro de vendedores e agregação
package dashboarding

import (
	"context"
	"time"

	"github.com/vfg2006/sales-dashboard/infrastructure/integrator/labdados"
	"github.com/vfg2006/sales-dashboard/internal/config"
	"github.com/vfg2006/sales-dashboard/internal/domain"
	"github.com/vfg2006/sales-dashboard/internal/usecases/aggregating"
	"github.com/vfg2006/sales-dashboard/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

type DashboardService interface {
	// Build executa o pipeline completo para os filtros informados
	Build(ctx context.Context, filters *domain.DashboardFilters) (*domain.Dashboard, error)

	// Sellers retorna os vendedores distintos para a região/ano dos filtros
	Sellers(ctx context.Context, filters *domain.DashboardFilters) ([]string, error)

	// Years retorna o intervalo aceito pelo controle de ano
	Years() domain.YearRange
}

type Service struct {
	integrator labdados.SalesIntegrator
	aggregator aggregating.Aggregator
	years      domain.YearRange
	now        func() time.Time
}

func NewService(cfg *config.Config, integrator labdados.SalesIntegrator, aggregator aggregating.Aggregator) DashboardService {
	years := domain.YearRange{Min: cfg.Dashboard.MinYear, Max: cfg.Dashboard.MaxYear}
	if years.Min == 0 || years.Max < years.Min {
		years = domain.YearRange{Min: domain.DefaultMinYear, Max: domain.DefaultMaxYear}
	}

	return &Service{
		integrator: integrator,
		aggregator: aggregator,
		years:      years,
		now:        time.Now,
	}
}

func (s *Service) Years() domain.YearRange {
	return s.years
}

func (s *Service) Build(ctx context.Context, filters *domain.DashboardFilters) (*domain.Dashboard, error) {
	if err := filters.Validate(s.years); err != nil {
		return nil, err
	}

	sales, err := s.integrator.GetSales(ctx, filters)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar vendas")
		return nil, err
	}

	// As opções do seletor vêm do conjunto antes do filtro de vendedores
	options := domain.DistinctSellers(sales)
	filtered := domain.FilterSellers(sales, filters)

	log.ForContext(ctx).WithFields(log.Fields{
		"regiao":     filters.Region,
		"todos_anos": filters.AllYears,
		"ano":        filters.Year,
		"vendas":     len(sales),
		"filtradas":  len(filtered),
		"vendedores": len(options),
	}).Debug("Dashboard montado")

	return &domain.Dashboard{
		Filters:       filters,
		SellerOptions: options,
		Summary:       s.aggregator.Summarize(filtered, filters.TopSellers),
		GeneratedAt:   s.now(),
	}, nil
}

func (s *Service) Sellers(ctx context.Context, filters *domain.DashboardFilters) ([]string, error) {
	if err := filters.Validate(s.years); err != nil {
		return nil, err
	}

	sales, err := s.integrator.GetSales(ctx, filters)
	if err != nil {
		return nil, err
	}

	return domain.DistinctSellers(sales), nil
}
