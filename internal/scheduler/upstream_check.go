// Package scheduler contém os serviços agendados da aplicação
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard/infrastructure/integrator/labdados"
	"github.com/vfg2006/sales-dashboard/internal/config"
)

type UpstreamCheckConfig struct {
	CronSchedule string
	Enabled      bool
}

// UpstreamCheckService verifica periodicamente se a API de vendas responde.
// O resultado só alimenta o healthcheck, nenhum dado de venda é guardado.
type UpstreamCheckService struct {
	scheduler       *gocron.Scheduler
	integrator      labdados.SalesIntegrator
	config          UpstreamCheckConfig
	checkRunning    bool
	checkMutex      sync.Mutex
	lastCheckAt     time.Time
	lastSuccessAt   time.Time
	lastError       string
	checkTimeout    time.Duration
	consecutiveFail int
}

func NewUpstreamCheckService(integrator labdados.SalesIntegrator, cfg *config.Config) *UpstreamCheckService {
	checkConfig := UpstreamCheckConfig{
		CronSchedule: cfg.UpstreamCheck.CronSchedule, // Default: a cada 10 minutos
		Enabled:      cfg.UpstreamCheck.Enabled,      // Default: desabilitado
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": checkConfig.CronSchedule,
		"enabled":       checkConfig.Enabled,
	}).Info("Configuração da verificação da API de vendas carregada")

	return &UpstreamCheckService{
		scheduler:    gocron.NewScheduler(time.Local),
		integrator:   integrator,
		config:       checkConfig,
		checkTimeout: 30 * time.Second,
	}
}

func (s *UpstreamCheckService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Verificação da API de vendas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de verificação da API de vendas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.Check(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar verificação da API de vendas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de verificação da API de vendas")
		s.scheduler.Stop()
	}()

	return nil
}

// Check executa uma verificação. Retorna false se outra verificação já estiver em andamento.
func (s *UpstreamCheckService) Check(ctx context.Context) bool {
	s.checkMutex.Lock()
	if s.checkRunning {
		s.checkMutex.Unlock()
		logrus.Warn("Verificação da API de vendas já está em execução")
		return false
	}
	s.checkRunning = true
	s.checkMutex.Unlock()

	checkCtx, cancel := context.WithTimeout(ctx, s.checkTimeout)
	defer cancel()

	err := s.integrator.CheckConnection(checkCtx)

	s.checkMutex.Lock()
	defer s.checkMutex.Unlock()

	s.checkRunning = false
	s.lastCheckAt = time.Now()

	if err != nil {
		s.lastError = err.Error()
		s.consecutiveFail++
		logrus.WithError(err).WithField("upstream_failures", s.consecutiveFail).Warn("API de vendas indisponível")
		return true
	}

	s.lastError = ""
	s.lastSuccessAt = s.lastCheckAt
	s.consecutiveFail = 0
	logrus.Debug("API de vendas respondeu com sucesso")

	return true
}

// TriggerManualCheck dispara uma verificação em background
func (s *UpstreamCheckService) TriggerManualCheck(ctx context.Context) {
	logrus.Info("Iniciando verificação manual da API de vendas")
	go s.Check(context.WithoutCancel(ctx))
}

// Healthy indica se a última verificação terminou sem erro.
// Sem nenhuma verificação feita, considera a API saudável.
func (s *UpstreamCheckService) Healthy() bool {
	s.checkMutex.Lock()
	defer s.checkMutex.Unlock()

	return s.lastError == ""
}

// GetStatus retorna o status atual do agendador
func (s *UpstreamCheckService) GetStatus() map[string]any {
	s.checkMutex.Lock()
	defer s.checkMutex.Unlock()

	status := map[string]any{
		"check_enabled":        s.config.Enabled,
		"check_cron":           s.config.CronSchedule,
		"check_running":        s.checkRunning,
		"last_check_at":        s.lastCheckAt,
		"last_success_at":      s.lastSuccessAt,
		"consecutive_failures": s.consecutiveFail,
	}
	if s.lastError != "" {
		status["last_error"] = s.lastError
	}

	return status
}
