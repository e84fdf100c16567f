package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard/infrastructure/integrator/labdados"
	"github.com/vfg2006/sales-dashboard/infrastructure/integrator/labdados/labdadosclient"
	"github.com/vfg2006/sales-dashboard/internal/api"
	"github.com/vfg2006/sales-dashboard/internal/config"
	"github.com/vfg2006/sales-dashboard/internal/presentation"
	"github.com/vfg2006/sales-dashboard/internal/scheduler"
	"github.com/vfg2006/sales-dashboard/internal/usecases/aggregating"
	"github.com/vfg2006/sales-dashboard/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard/pkg/log"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)
	log.SetEnvironment(cfg.App.Env)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	labdadosClient := labdadosclient.NewClient(cfg)
	salesIntegrator := labdados.New(cfg, labdadosClient)

	dashboardService := dashboarding.NewService(cfg, salesIntegrator, aggregating.NewService())

	renderer, err := presentation.NewRenderer()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar os templates")
	}

	upstreamCheckService := scheduler.NewUpstreamCheckService(salesIntegrator, cfg)
	if err := upstreamCheckService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de verificação da API de vendas")
	} else {
		logrus.Info("Agendador de verificação da API de vendas iniciado com sucesso")
	}

	server, err := api.New(cfg, dashboardService, renderer, upstreamCheckService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
