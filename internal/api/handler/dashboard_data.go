package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard/internal/domain"
	"github.com/vfg2006/sales-dashboard/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard/pkg/log"
)

// GetDashboard devolve métricas e tabelas do dashboard em JSON
func GetDashboard(service dashboarding.DashboardService, defaultTopSellers int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, err := domain.ParseDashboardFilters(r.URL.Query(), service.Years(), defaultTopSellers)
		if err != nil {
			apiErrors.WriteFromError(w, err)
			return
		}

		dashboard, err := service.Build(r.Context(), filters)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao montar o dashboard")
			apiErrors.WriteFromError(w, err)
			return
		}

		writeJSON(w, r, dashboard)
	}
}

// GetSellers devolve as opções do seletor de vendedores para a região/ano
func GetSellers(service dashboarding.DashboardService, defaultTopSellers int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, err := domain.ParseDashboardFilters(r.URL.Query(), service.Years(), defaultTopSellers)
		if err != nil {
			apiErrors.WriteFromError(w, err)
			return
		}

		sellers, err := service.Sellers(r.Context(), filters)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao buscar vendedores")
			apiErrors.WriteFromError(w, err)
			return
		}

		writeJSON(w, r, map[string][]string{"vendedores": sellers})
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
	}
}
