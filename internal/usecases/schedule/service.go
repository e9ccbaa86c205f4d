package schedule

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alioth/insurance-sales-api/infrastructure/repository"
	"github.com/alioth/insurance-sales-api/internal/domain"
	"github.com/alioth/insurance-sales-api/pkg/apiErrors"
	pkgerrors "github.com/pkg/errors"
)

var (
	ErrScheduleNotFound      = errors.New("agenda não encontrada")
	ErrMissingRequiredData   = errors.New("dados obrigatórios ausentes")
	ErrInvalidInterval       = errors.New("início da agenda posterior ao fim")
	ErrInvalidType           = errors.New("tipo de agenda inválido")
	ErrInsufficientPrivilege = errors.New("apenas o dono da agenda pode alterá-la")
)

type ScheduleError struct {
	Err  error
	Code string
}

func (e *ScheduleError) Error() string {
	return e.Err.Error()
}

func (e *ScheduleError) Unwrap() error {
	return e.Err
}

func (e *ScheduleError) ErrorCode() string {
	return e.Code
}

func newError(err error, code string) *ScheduleError {
	return &ScheduleError{Err: err, Code: code}
}

type ScheduleService interface {
	Create(ctx context.Context, claims *domain.Claims, req *domain.ScheduleRequest) (*domain.Schedule, error)
	Get(ctx context.Context, claims *domain.Claims, id int64) (*domain.Schedule, error)
	List(ctx context.Context, claims *domain.Claims, start, end *time.Time) ([]*domain.Schedule, error)
	Update(ctx context.Context, claims *domain.Claims, id int64, req *domain.ScheduleRequest) (*domain.Schedule, error)
	Delete(ctx context.Context, claims *domain.Claims, id int64) error
}

type Service struct {
	scheduleRepo repository.ScheduleRepository
	memberRepo   repository.SalesMemberRepository
}

func NewService(scheduleRepo repository.ScheduleRepository, memberRepo repository.SalesMemberRepository) ScheduleService {
	return &Service{
		scheduleRepo: scheduleRepo,
		memberRepo:   memberRepo,
	}
}

func validate(req *domain.ScheduleRequest) error {
	req.ScheduleTitle = strings.TrimSpace(req.ScheduleTitle)
	if req.ScheduleTitle == "" || req.ScheduleStartTime.IsZero() || req.ScheduleEndTime.IsZero() {
		return newError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData)
	}

	if req.ScheduleStartTime.After(req.ScheduleEndTime) {
		return newError(ErrInvalidInterval, apiErrors.ErrInvalidRequest)
	}

	if req.ScheduleType == "" {
		req.ScheduleType = domain.ScheduleTypePersonal
	}
	if !req.ScheduleType.Valid() {
		return newError(fmt.Errorf("%w: %s", ErrInvalidType, req.ScheduleType), apiErrors.ErrInvalidFormat)
	}

	return nil
}

func (s *Service) Create(ctx context.Context, claims *domain.Claims, req *domain.ScheduleRequest) (*domain.Schedule, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	schedule, err := s.scheduleRepo.Create(ctx, &domain.Schedule{
		ScheduleTitle:     req.ScheduleTitle,
		ScheduleStartTime: req.ScheduleStartTime,
		ScheduleEndTime:   req.ScheduleEndTime,
		ScheduleNote:      req.ScheduleNote,
		ScheduleType:      req.ScheduleType,
		Share:             req.Share,
		Color:             req.Color,
		AllDay:            req.AllDay,
		SalesMemberID:     claims.MemberID,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao criar agenda")
	}

	schedule.SalesMemberCode = claims.MemberCode
	return schedule, nil
}

// Get permite ler agendas próprias ou compartilhadas pelo mesmo time
func (s *Service) Get(ctx context.Context, claims *domain.Claims, id int64) (*domain.Schedule, error) {
	schedule, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if schedule.SalesMemberID == claims.MemberID {
		return schedule, nil
	}

	if schedule.Share && claims.TeamCode != "" {
		owner, err := s.memberRepo.GetByID(ctx, schedule.SalesMemberID)
		if err != nil {
			return nil, pkgerrors.Wrap(err, "erro ao buscar dono da agenda")
		}
		if owner != nil && owner.TeamCode != nil && *owner.TeamCode == claims.TeamCode {
			return schedule, nil
		}
	}

	return nil, newError(ErrScheduleNotFound, apiErrors.ErrScheduleNotFound)
}

func (s *Service) List(ctx context.Context, claims *domain.Claims, start, end *time.Time) ([]*domain.Schedule, error) {
	if start != nil && end != nil && start.After(*end) {
		return nil, newError(ErrInvalidInterval, apiErrors.ErrInvalidRequest)
	}

	member, err := s.memberRepo.GetByID(ctx, claims.MemberID)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao buscar membro")
	}

	filter := domain.ScheduleFilter{
		SalesMemberID: claims.MemberID,
		StartTime:     start,
		EndTime:       end,
	}
	if member != nil {
		filter.TeamID = member.TeamID
	}

	schedules, err := s.scheduleRepo.List(ctx, filter)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao listar agendas")
	}

	return schedules, nil
}

func (s *Service) Update(ctx context.Context, claims *domain.Claims, id int64, req *domain.ScheduleRequest) (*domain.Schedule, error) {
	schedule, err := s.owned(ctx, claims, id)
	if err != nil {
		return nil, err
	}

	if err := validate(req); err != nil {
		return nil, err
	}

	schedule.ScheduleTitle = req.ScheduleTitle
	schedule.ScheduleStartTime = req.ScheduleStartTime
	schedule.ScheduleEndTime = req.ScheduleEndTime
	schedule.ScheduleNote = req.ScheduleNote
	schedule.ScheduleType = req.ScheduleType
	schedule.Share = req.Share
	schedule.Color = req.Color
	schedule.AllDay = req.AllDay

	if err := s.scheduleRepo.Update(ctx, schedule); err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao atualizar agenda")
	}

	return schedule, nil
}

func (s *Service) Delete(ctx context.Context, claims *domain.Claims, id int64) error {
	schedule, err := s.owned(ctx, claims, id)
	if err != nil {
		return err
	}

	if err := s.scheduleRepo.SoftDelete(ctx, schedule.ID); err != nil {
		return pkgerrors.Wrap(err, "erro ao remover agenda")
	}

	return nil
}

func (s *Service) find(ctx context.Context, id int64) (*domain.Schedule, error) {
	schedule, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao buscar agenda")
	}
	if schedule == nil {
		return nil, newError(ErrScheduleNotFound, apiErrors.ErrScheduleNotFound)
	}
	return schedule, nil
}

func (s *Service) owned(ctx context.Context, claims *domain.Claims, id int64) (*domain.Schedule, error) {
	schedule, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if schedule.SalesMemberID != claims.MemberID {
		return nil, newError(ErrInsufficientPrivilege, apiErrors.ErrInsufficientPrivilege)
	}
	return schedule, nil
}
