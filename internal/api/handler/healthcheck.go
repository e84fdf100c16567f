package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// UpstreamChecker expõe o último resultado da verificação da API de vendas
type UpstreamChecker interface {
	Healthy() bool
	GetStatus() map[string]any
	TriggerManualCheck(ctx context.Context)
}

type healthcheckResponse struct {
	Status          string         `json:"status"`
	Time            time.Time      `json:"time"`
	UpstreamHealthy bool           `json:"upstream_healthy"`
	Upstream        map[string]any `json:"upstream,omitempty"`
}

// HealthcheckHandler responde 200 enquanto o processo estiver vivo.
// A falha da API de vendas aparece no corpo, sem derrubar o liveness.
func HealthcheckHandler(checker UpstreamChecker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := healthcheckResponse{
			Status:          "ok",
			Time:            time.Now(),
			UpstreamHealthy: true,
		}

		if checker != nil {
			response.UpstreamHealthy = checker.Healthy()
			response.Upstream = checker.GetStatus()
		}

		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(response)
		if err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}
