package handler

import (
	"net/http"

	"github.com/alioth/insurance-sales-api/pkg/apiErrors"
	"github.com/alioth/insurance-sales-api/pkg/log"
	"github.com/alioth/insurance-sales-api/pkg/response"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeSalesRanking = "sales-ranking"
	CronJobTypeAll          = "all"
)

// SyncJob é uma rotina agendada que também pode ser disparada manualmente
type SyncJob interface {
	TriggerManualSync() error
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	SalesRankingSyncService SyncJob
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := stringParam(r, "type")
		logger := log.ForContext(r.Context()).WithField("job", cronType)
		logger.Info("INIT - RunCronJob")

		switch cronType {
		case CronJobTypeSalesRanking, CronJobTypeAll:
			if services.SalesRankingSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização do ranking não disponível", nil)
				return
			}
			if err := services.SalesRankingSyncService.TriggerManualSync(); err != nil {
				logger.WithError(err).Warn("Cron job não iniciada")
				apiErrors.WriteFromError(w, err, "Erro ao iniciar cron job")
				return
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: sales-ranking, all", nil)
			return
		}

		response.OK(w, "Cron job iniciada com sucesso", map[string]any{
			"type": cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.SalesRankingSyncService != nil {
			status[CronJobTypeSalesRanking] = services.SalesRankingSyncService.GetStatus()
		}

		response.OK(w, "Status das cron jobs", status)
	}
}
