package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-ledger-api/internal/api"
	"github.com/vfg2006/sales-ledger-api/internal/api/handler"
	"github.com/vfg2006/sales-ledger-api/internal/app"
	"github.com/vfg2006/sales-ledger-api/internal/config"
	"github.com/vfg2006/sales-ledger-api/internal/scheduler"
	"github.com/vfg2006/sales-ledger-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	if err := log.Setup(cfg.App.LogLevel, os.Stdout); err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
	}
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	application, err := app.New(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar a aplicação")
	}
	defer application.Close()

	weeklyReport := scheduler.NewWeeklyReportService(application.Reporter, cfg)
	if err := weeklyReport.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do relatório semanal")
	}

	server := api.New(cfg, api.Services{
		Recorder:      application.Recorder,
		Reporter:      application.Reporter,
		Authenticator: application.Authenticator,
		CronJobs:      handler.CronJobServices{WeeklyReport: weeklyReport},
	})

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
