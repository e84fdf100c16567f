package handler

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/vfg2006/sales-dashboard/internal/domain"
	"github.com/vfg2006/sales-dashboard/internal/presentation"
	"github.com/vfg2006/sales-dashboard/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard/pkg/log"
)

const fetchErrorMessage = "Não foi possível carregar os dados de vendas. Tente novamente em instantes."

type PageRenderer interface {
	Render(w io.Writer, page *presentation.Page) error
}

// DashboardPage executa o pipeline completo e devolve a página HTML
func DashboardPage(service dashboarding.DashboardService, renderer PageRenderer, defaultTopSellers int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		years := service.Years()

		filters, err := domain.ParseDashboardFilters(r.URL.Query(), years, defaultTopSellers)
		if err != nil {
			writeErrorPage(w, r, renderer, nil, years, err)
			return
		}

		dashboard, err := service.Build(ctx, filters)
		if err != nil {
			writeErrorPage(w, r, renderer, filters, years, err)
			return
		}

		page, err := presentation.NewPage(dashboard, years)
		if err != nil {
			log.ForContext(ctx).WithError(err).Error("Erro ao montar os gráficos")
			http.Error(w, "Erro ao montar a página", http.StatusInternalServerError)
			return
		}

		writePage(w, r, renderer, http.StatusOK, page)
	}
}

func writeErrorPage(w http.ResponseWriter, r *http.Request, renderer PageRenderer, filters *domain.DashboardFilters, years domain.YearRange, err error) {
	apiErr := apiErrors.FromError(err)

	message := apiErr.Message
	if errors.Is(err, domain.ErrSalesAPIFailure) {
		message = fetchErrorMessage
	}

	log.ForContext(r.Context()).WithError(err).Warn("Dashboard não pôde ser montado")
	writePage(w, r, renderer, apiErrors.StatusFor(apiErr.Code), presentation.NewErrorPage(filters, years, message))
}

func writePage(w http.ResponseWriter, r *http.Request, renderer PageRenderer, status int, page *presentation.Page) {
	var buf bytes.Buffer
	if err := renderer.Render(&buf, page); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao renderizar o template")
		http.Error(w, "Erro ao renderizar a página", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}
