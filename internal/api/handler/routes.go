package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-dashboard/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard/internal/usecases/dashboarding"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck(checker UpstreamChecker) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(checker),
		},
	}
}

func Dashboard(service dashboarding.DashboardService, renderer PageRenderer, defaultTopSellers int) []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: DashboardPage(service, renderer, defaultTopSellers),
		},
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service, defaultTopSellers),
		},
		{
			Path:    "/v1/sellers",
			Method:  http.MethodGet,
			Handler: GetSellers(service, defaultTopSellers),
		},
	}
}

func CronJobs(checker UpstreamChecker) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(checker),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(checker),
		},
	}
}
