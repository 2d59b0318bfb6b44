package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-ledger-api/internal/config"
	"github.com/vfg2006/sales-ledger-api/internal/domain"
	"github.com/vfg2006/sales-ledger-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-ledger-api/pkg/log"
)

// WeeklyReportConfig representa a configuração do agendador do relatório semanal
type WeeklyReportConfig struct {
	CronSchedule string
	Enabled      bool
}

// WeeklyReportService gera periodicamente a análise semanal da rede e guarda
// o último resultado para consulta
type WeeklyReportService struct {
	scheduler *gocron.Scheduler
	config    WeeklyReportConfig
	reporter  reporting.Reporter
	now       func() time.Time

	mu              sync.Mutex
	running         bool
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastReport      *domain.WeeklySalesReport
	lastErr         error
}

func NewWeeklyReportService(reporter reporting.Reporter, appConfig *config.Config) *WeeklyReportService {
	cfg := WeeklyReportConfig{
		CronSchedule: appConfig.WeeklyReport.CronSchedule,
		Enabled:      appConfig.WeeklyReport.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": cfg.CronSchedule,
		"enabled":       cfg.Enabled,
	}).Info("Configuração do agendador do relatório semanal carregada")

	return &WeeklyReportService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    cfg,
		reporter:  reporter,
		now:       time.Now,
	}
}

// Start inicia o agendador; o cancelamento do contexto o interrompe
func (s *WeeklyReportService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Relatório semanal desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do relatório semanal")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.Run(context.Background())
	})
	if err != nil {
		return fmt.Errorf("failed to schedule weekly report: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do relatório semanal")
		s.scheduler.Stop()
	}()

	return nil
}

// Run gera o relatório da semana corrente. Execuções concorrentes são ignoradas.
func (s *WeeklyReportService) Run(ctx context.Context) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		logrus.Info("Relatório semanal já em andamento, ignorando")
		return
	}
	s.running = true
	s.lastStartedAt = s.now()
	s.mu.Unlock()

	ctx, _ = log.WithCorrelationID(ctx)
	logger := log.ForContext(ctx).WithField("job", "weekly_report")
	logger.Info("Gerando relatório semanal")

	report, err := s.reporter.WeeklySales(ctx, s.now())

	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = false
	s.lastErr = err

	if err != nil {
		logger.WithError(err).Error("Erro ao gerar relatório semanal")
		return
	}

	s.lastReport = report
	s.lastCompletedAt = s.now()

	logger.WithFields(log.Fields{
		"report_week_start": report.Week.Start.Format(domain.SaleDateLayout),
		"report_week_end":   report.Week.End.Format(domain.SaleDateLayout),
		"report_total":      report.Total,
		"report_average":    report.Average.StringFixed(2),
		"report_sales":      len(report.Amounts),
	}).Info("Relatório semanal concluído")
}

// TriggerManualRun dispara uma geração fora do agendamento
func (s *WeeklyReportService) TriggerManualRun() bool {
	s.mu.Lock()
	running := s.running
	s.mu.Unlock()

	if running {
		logrus.Info("Relatório semanal já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando geração manual do relatório semanal")
	go s.Run(context.Background())
	return true
}

// LastReport retorna o último relatório gerado com sucesso, se houver
func (s *WeeklyReportService) LastReport() *domain.WeeklySalesReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastReport
}

// GetStatus retorna o status atual do agendador
func (s *WeeklyReportService) GetStatus() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := map[string]any{
		"enabled":           s.config.Enabled,
		"cron":              s.config.CronSchedule,
		"running":           s.running,
		"last_started_at":   s.lastStartedAt,
		"last_completed_at": s.lastCompletedAt,
	}
	if s.lastErr != nil {
		status["last_error"] = s.lastErr.Error()
	}
	return status
}
