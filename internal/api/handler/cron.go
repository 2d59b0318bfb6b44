package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-ledger-api/pkg/apiErrors"
)

const (
	CronJobTypeWeeklyReport = "weekly-report"
	CronJobTypeAll          = "all"
)

// CronJob é um job agendado que também pode ser disparado manualmente
type CronJob interface {
	TriggerManualRun() bool
	GetStatus() map[string]any
}

// CronJobServices contém os jobs disponíveis para execução manual
type CronJobServices struct {
	WeeklyReport CronJob
}

func (s CronJobServices) jobs() map[string]CronJob {
	jobs := map[string]CronJob{}
	if s.WeeklyReport != nil {
		jobs[CronJobTypeWeeklyReport] = s.WeeklyReport
	}
	return jobs
}

// RunCronJob executa manualmente um job específico ou todos
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Cron job type is required", nil)
			return
		}

		jobs := services.jobs()
		started := map[string]bool{}

		switch job, ok := jobs[cronType]; {
		case ok:
			started[cronType] = job.TriggerManualRun()
		case cronType == CronJobTypeAll:
			for name, job := range jobs {
				started[name] = job.TriggerManualRun()
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid cron job type. Accepted values: weekly-report, all", nil)
			return
		}

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job triggered",
			"type":    cronType,
			"started": started,
		})
	}
}

// GetCronStatus retorna o status dos jobs agendados
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		for name, job := range services.jobs() {
			status[name] = job.GetStatus()
		}
		writeJSON(w, r, http.StatusOK, status)
	}
}
