// Package scheduler contém os serviços de agendamento de rotinas em lote
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/alioth/insurance-sales-api/infrastructure/repository"
	"github.com/alioth/insurance-sales-api/internal/config"
	"github.com/alioth/insurance-sales-api/internal/domain"
	"github.com/alioth/insurance-sales-api/pkg/apiErrors"
	"github.com/alioth/insurance-sales-api/pkg/metrics"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

var ErrSyncRunning = errors.New("sincronização do ranking de vendas já está em execução")

// JobError expõe para a API o código de erro das rotinas agendadas
type JobError struct {
	Err  error
	Code string
}

func (e *JobError) Error() string {
	return e.Err.Error()
}

func (e *JobError) Unwrap() error {
	return e.Err
}

func (e *JobError) ErrorCode() string {
	return e.Code
}

type SalesRankingSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

type SalesRankingSyncService struct {
	scheduler           *gocron.Scheduler
	memberRepo          repository.SalesMemberRepository
	contractRepo        repository.ContractRepository
	rankingRepo         repository.SalesRankingRepository
	config              SalesRankingSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
	now                 func() time.Time
}

func NewSalesRankingSyncService(
	memberRepo repository.SalesMemberRepository,
	contractRepo repository.ContractRepository,
	rankingRepo repository.SalesRankingRepository,
	cfg *config.Config,
) *SalesRankingSyncService {
	syncConfig := SalesRankingSyncConfig{
		CronSchedule: cfg.SalesRankingSync.CronSchedule, // Padrão: 6h da manhã todos os dias
		SyncEnabled:  cfg.SalesRankingSync.SyncEnabled,  // Padrão: desabilitado
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
	}).Info("Configuração do agendador do ranking de vendas carregada")

	return &SalesRankingSyncService{
		scheduler:    gocron.NewScheduler(time.Local),
		memberRepo:   memberRepo,
		contractRepo: contractRepo,
		rankingRepo:  rankingRepo,
		config:       syncConfig,
		now:          time.Now,
	}
}

func (s *SalesRankingSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron do ranking de vendas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron do ranking de vendas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.UpdateSalesRanking(ctx); err != nil {
			logrus.WithError(err).Error("Erro na atualização do ranking de vendas")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização do ranking de vendas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do ranking de vendas")
		s.scheduler.Stop()
	}()

	return nil
}

// UpdateSalesRanking recalcula o ranking do mês até o dia anterior. Execuções
// sobrepostas são recusadas com ErrSyncRunning.
func (s *SalesRankingSyncService) UpdateSalesRanking(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Sincronização do ranking de vendas já está em execução")
		return ErrSyncRunning
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	var syncErr error
	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = s.now()
		s.lastSyncError = ""
		if syncErr != nil {
			s.lastSyncError = syncErr.Error()
		}
		metrics.RecordRankingSync(s.lastSyncCompletedAt.Sub(s.lastSyncStartedAt))
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando atualização do ranking de vendas")

	members, err := s.memberRepo.ListActive(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar membros ativos para o ranking de vendas")
		syncErr = err
		return err
	}

	if len(members) == 0 {
		logrus.Info("Nenhum membro ativo encontrado para o ranking de vendas")
		return nil
	}

	if _, err := s.processSalesRankingWithDate(ctx, members, s.now()); err != nil {
		syncErr = err
		return err
	}

	logrus.Info("Atualização do ranking de vendas concluída")

	return nil
}

// processSalesRankingWithDate soma as vendas de cada membro do primeiro dia
// do mês de ontem até o fim de ontem e compara com o ranking gravado
func (s *SalesRankingSyncService) processSalesRankingWithDate(
	ctx context.Context,
	members []*domain.SalesMember,
	processingDate time.Time,
) ([]*domain.MemberRankingItem, error) {
	wg := sync.WaitGroup{}

	today := time.Date(processingDate.Year(), processingDate.Month(), processingDate.Day(), 0, 0, 0, 0, processingDate.Location())
	yesterday := today.AddDate(0, 0, -1)
	firstDayOfMonth := domain.FirstDayOfMonth(yesterday)
	month := yesterday.Format(domain.MonthLayout)

	rankings := make(chan domain.MemberRankingItem, len(members))
	rankingBeforeUpdate := make(chan domain.MemberRankingItem, len(members))
	memberErrors := make(chan error, 2*len(members))
	for _, member := range members {
		wg.Add(2)

		go func(member domain.SalesMember) {
			defer wg.Done()

			previous, err := s.rankingRepo.GetByMemberID(ctx, member.ID, month)
			if err != nil {
				logrus.WithError(err).WithField("member_id", member.ID).Error("SalesRankingSyncService: Erro ao buscar ranking anterior")
				memberErrors <- fmt.Errorf("membro %d: %w", member.ID, err)
				return
			}

			if previous != nil {
				rankingBeforeUpdate <- *previous
			}
		}(*member)

		go func(member domain.SalesMember) {
			defer wg.Done()

			price, count, err := s.contractRepo.SumMemberSales(ctx, member.ID, firstDayOfMonth, today)
			if err != nil {
				logrus.WithError(err).WithField("member_id", member.ID).Error("SalesRankingSyncService: Erro ao somar vendas do membro")
				memberErrors <- fmt.Errorf("membro %d: %w", member.ID, err)
				return
			}

			item := domain.MemberRankingItem{
				SalesMemberID: member.ID,
				Month:         month,
				MemberName:    member.Name,
				ContractPrice: price,
				ContractCount: count,
			}
			if member.TeamName != nil {
				item.TeamName = *member.TeamName
			}

			rankings <- item
		}(*member)
	}

	wg.Wait()

	close(rankings)
	close(rankingBeforeUpdate)
	close(memberErrors)

	// Um ranking parcial deixaria posições repetidas no mês; nada é gravado
	var errs []error
	for err := range memberErrors {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		logrus.WithFields(logrus.Fields{
			"month":  month,
			"errors": len(errs),
		}).Error("Ranking de vendas não gravado por falhas em membros")
		return nil, fmt.Errorf("erro ao calcular ranking de vendas: %w", errors.Join(errs...))
	}

	rankingsBeforeUpdate := make(map[int64]*domain.MemberRankingItem, len(members))
	for ranking := range rankingBeforeUpdate {
		rankingsBeforeUpdate[ranking.SalesMemberID] = &ranking
	}

	updatedRankings := make([]*domain.MemberRankingItem, 0, len(members))
	for ranking := range rankings {
		updatedRankings = append(updatedRankings, &ranking)
	}

	s.updatePositions(updatedRankings, rankingsBeforeUpdate)

	if err := s.rankingRepo.SaveOrUpdate(ctx, updatedRankings); err != nil {
		logrus.WithError(err).Error("Erro ao salvar ranking de vendas atualizado")
		return updatedRankings, err
	}

	logrus.WithFields(logrus.Fields{
		"month":   month,
		"members": len(updatedRankings),
	}).Info("Ranking de vendas atualizado")

	return updatedRankings, nil
}

// updatePositions ordena por valor vendido; empates ficam com quem vendeu
// mais contratos e depois com o menor id
func (*SalesRankingSyncService) updatePositions(
	updatedRankings []*domain.MemberRankingItem,
	rankingsBeforeUpdate map[int64]*domain.MemberRankingItem,
) {
	sort.Slice(updatedRankings, func(i, j int) bool {
		a, b := updatedRankings[i], updatedRankings[j]
		if a.ContractPrice != b.ContractPrice {
			return a.ContractPrice > b.ContractPrice
		}
		if a.ContractCount != b.ContractCount {
			return a.ContractCount > b.ContractCount
		}
		return a.SalesMemberID < b.SalesMemberID
	})

	for i, ranking := range updatedRankings {
		ranking.Position = i + 1

		if rankingBefore, exists := rankingsBeforeUpdate[ranking.SalesMemberID]; exists && rankingBefore.Position > 0 {
			ranking.PositionChange = rankingBefore.Position - ranking.Position
			ranking.PreviousPosition = rankingBefore.Position
		}
	}
}

// TriggerManualSync inicia manualmente uma sincronização do ranking de vendas
func (s *SalesRankingSyncService) TriggerManualSync() error {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("Sincronização do ranking de vendas já em andamento, ignorando solicitação manual")
		return &JobError{Err: ErrSyncRunning, Code: apiErrors.ErrJobRunning}
	}

	logrus.Info("Iniciando sincronização manual do ranking de vendas")
	go func() {
		if err := s.UpdateSalesRanking(context.Background()); err != nil && !errors.Is(err, ErrSyncRunning) {
			logrus.WithError(err).Error("Erro na sincronização manual do ranking de vendas")
		}
	}()

	return nil
}

// GetStatus retorna o status atual do agendador
func (s *SalesRankingSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
	}
}
