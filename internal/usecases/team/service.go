package team

import (
	"context"
	"strings"

	"github.com/alioth/insurance-sales-api/infrastructure/repository"
	"github.com/alioth/insurance-sales-api/internal/domain"
	"github.com/alioth/insurance-sales-api/pkg/apiErrors"
	"github.com/alioth/insurance-sales-api/pkg/log"
	"github.com/alioth/insurance-sales-api/pkg/utils"
	"github.com/pkg/errors"
)

type TeamService interface {
	Create(ctx context.Context, req *domain.CreateTeamRequest) (*domain.TeamResponse, error)
	Get(ctx context.Context, code string) (*domain.TeamResponse, error)
	List(ctx context.Context) ([]domain.TeamResponse, error)
	Update(ctx context.Context, code string, req *domain.UpdateTeamRequest) (*domain.TeamResponse, error)
	Delete(ctx context.Context, code string) error
	AddMember(ctx context.Context, code string, memberCode int64) error
	RemoveMember(ctx context.Context, code string, memberCode int64) error
	UpdatePerformanceReview(ctx context.Context, code string, review string) error
}

type Service struct {
	teamRepo     repository.TeamRepository
	memberRepo   repository.SalesMemberRepository
	generateCode func() (string, error)
}

func NewService(teamRepo repository.TeamRepository, memberRepo repository.SalesMemberRepository) TeamService {
	return &Service{
		teamRepo:     teamRepo,
		memberRepo:   memberRepo,
		generateCode: utils.GenerateTeamCode,
	}
}

// Create grava o time e move o gerente para ele na mesma transação
func (s *Service) Create(ctx context.Context, req *domain.CreateTeamRequest) (*domain.TeamResponse, error) {
	name := strings.TrimSpace(req.TeamName)
	if name == "" || req.TeamManagerCode == 0 {
		return nil, NewTeamError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "teamName e teamManagerCode são obrigatórios")
	}

	manager, err := s.getMember(ctx, req.TeamManagerCode, ErrManagerNotFound)
	if err != nil {
		return nil, err
	}

	code, err := s.generateCode()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar código do time")
	}

	team, err := s.teamRepo.CreateWithManager(ctx, &domain.Team{
		TeamCode:        code,
		TeamName:        name,
		TeamManagerCode: manager.SalesMemberCode,
	}, manager.ID)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, NewTeamError(err, apiErrors.ErrAlreadyExists, code)
		}
		return nil, errors.Wrap(err, "erro ao criar time")
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"team_code":   team.TeamCode,
		"member_code": manager.SalesMemberCode,
	}).Info("Time criado")

	return &domain.TeamResponse{
		TeamCode:        team.TeamCode,
		TeamName:        team.TeamName,
		TeamManagerName: manager.Name,
	}, nil
}

func (s *Service) Get(ctx context.Context, code string) (*domain.TeamResponse, error) {
	team, err := s.getTeam(ctx, code)
	if err != nil {
		return nil, err
	}

	members, err := s.memberRepo.ListByTeam(ctx, team.ID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar membros do time")
	}

	resp := &domain.TeamResponse{
		TeamCode:          team.TeamCode,
		TeamName:          team.TeamName,
		PerformanceReview: team.PerformanceReview,
		TeamMemberList:    make([]domain.TeamMemberItem, 0, len(members)),
	}

	for _, m := range members {
		if m.SalesMemberCode == team.TeamManagerCode {
			resp.TeamManagerName = m.Name
		}
		resp.TeamMemberList = append(resp.TeamMemberList, domain.NewTeamMemberItem(m))
	}

	if resp.TeamManagerName == "" {
		resp.TeamManagerName = s.managerName(ctx, team.TeamManagerCode)
	}

	return resp, nil
}

func (s *Service) List(ctx context.Context) ([]domain.TeamResponse, error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar times")
	}

	members, err := s.memberRepo.List(ctx, domain.MemberFilter{})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar membros")
	}

	names := make(map[int64]string, len(members))
	for _, m := range members {
		names[m.SalesMemberCode] = m.Name
	}

	result := make([]domain.TeamResponse, 0, len(teams))
	for _, t := range teams {
		result = append(result, domain.TeamResponse{
			TeamCode:          t.TeamCode,
			TeamName:          t.TeamName,
			TeamManagerName:   names[t.TeamManagerCode],
			PerformanceReview: t.PerformanceReview,
		})
	}

	return result, nil
}

// Update troca nome e/ou gerente. O novo gerente passa a fazer parte do time.
func (s *Service) Update(ctx context.Context, code string, req *domain.UpdateTeamRequest) (*domain.TeamResponse, error) {
	team, err := s.getTeam(ctx, code)
	if err != nil {
		return nil, err
	}

	if req.TeamName != nil {
		name := strings.TrimSpace(*req.TeamName)
		if name == "" {
			return nil, NewTeamError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "teamName")
		}
		team.TeamName = name
	}

	var manager *domain.SalesMember
	if req.TeamManagerCode != nil && *req.TeamManagerCode != team.TeamManagerCode {
		manager, err = s.getMember(ctx, *req.TeamManagerCode, ErrManagerNotFound)
		if err != nil {
			return nil, err
		}
		team.TeamManagerCode = manager.SalesMemberCode
	}

	if err := s.teamRepo.Update(ctx, team); err != nil {
		return nil, errors.Wrap(err, "erro ao atualizar time")
	}

	if manager != nil {
		if err := s.memberRepo.SetTeam(ctx, manager.ID, &team.ID); err != nil {
			return nil, errors.Wrap(err, "erro ao mover gerente para o time")
		}
	}

	resp := &domain.TeamResponse{
		TeamCode:          team.TeamCode,
		TeamName:          team.TeamName,
		PerformanceReview: team.PerformanceReview,
	}
	if manager != nil {
		resp.TeamManagerName = manager.Name
	} else {
		resp.TeamManagerName = s.managerName(ctx, team.TeamManagerCode)
	}

	return resp, nil
}

func (s *Service) Delete(ctx context.Context, code string) error {
	team, err := s.getTeam(ctx, code)
	if err != nil {
		return err
	}

	if err := s.teamRepo.SoftDelete(ctx, team.ID); err != nil {
		return errors.Wrap(err, "erro ao remover time")
	}

	log.ForContext(ctx).WithField("team_code", code).Info("Time removido")
	return nil
}

func (s *Service) AddMember(ctx context.Context, code string, memberCode int64) error {
	team, err := s.getTeam(ctx, code)
	if err != nil {
		return err
	}

	member, err := s.getMember(ctx, memberCode, ErrMemberNotFound)
	if err != nil {
		return err
	}

	if err := s.memberRepo.SetTeam(ctx, member.ID, &team.ID); err != nil {
		return errors.Wrap(err, "erro ao adicionar membro ao time")
	}

	return nil
}

func (s *Service) RemoveMember(ctx context.Context, code string, memberCode int64) error {
	team, err := s.getTeam(ctx, code)
	if err != nil {
		return err
	}

	member, err := s.getMember(ctx, memberCode, ErrMemberNotFound)
	if err != nil {
		return err
	}

	if member.TeamID == nil || *member.TeamID != team.ID {
		return NewTeamError(ErrMemberNotInTeam, apiErrors.ErrInvalidRequest, "")
	}

	if member.SalesMemberCode == team.TeamManagerCode {
		return NewTeamError(ErrCannotRemoveManager, apiErrors.ErrInvalidRequest, "")
	}

	if err := s.memberRepo.SetTeam(ctx, member.ID, nil); err != nil {
		return errors.Wrap(err, "erro ao remover membro do time")
	}

	return nil
}

func (s *Service) UpdatePerformanceReview(ctx context.Context, code string, review string) error {
	if !domain.ValidPerformanceReview(review) {
		return NewTeamError(ErrInvalidReview, apiErrors.ErrInvalidFormat, review)
	}

	team, err := s.getTeam(ctx, code)
	if err != nil {
		return err
	}

	if err := s.teamRepo.UpdatePerformanceReview(ctx, team.ID, review); err != nil {
		return errors.Wrap(err, "erro ao atualizar avaliação do time")
	}

	return nil
}

func (s *Service) getTeam(ctx context.Context, code string) (*domain.Team, error) {
	team, err := s.teamRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar time")
	}
	if team == nil {
		return nil, NewTeamError(ErrTeamNotFound, apiErrors.ErrTeamNotFound, code)
	}
	return team, nil
}

func (s *Service) getMember(ctx context.Context, code int64, notFound error) (*domain.SalesMember, error) {
	member, err := s.memberRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar membro")
	}
	if member == nil || member.Quit {
		return nil, NewTeamError(notFound, apiErrors.ErrMemberNotFound, "")
	}
	return member, nil
}

// managerName não falha a requisição quando o gerente foi desligado
func (s *Service) managerName(ctx context.Context, code int64) string {
	manager, err := s.memberRepo.GetByCode(ctx, code)
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("Erro ao buscar gerente do time")
		return ""
	}
	if manager == nil {
		return ""
	}
	return manager.Name
}
