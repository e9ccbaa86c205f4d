package member

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alioth/insurance-sales-api/infrastructure/repository"
	"github.com/alioth/insurance-sales-api/internal/domain"
	"github.com/alioth/insurance-sales-api/internal/usecases/authenticating"
	"github.com/alioth/insurance-sales-api/pkg/apiErrors"
	"github.com/alioth/insurance-sales-api/pkg/log"
	"github.com/pkg/errors"
)

type MemberService interface {
	Create(ctx context.Context, req *domain.CreateMemberRequest) (*domain.MemberResponse, error)
	Get(ctx context.Context, code int64) (*domain.MemberResponse, error)
	List(ctx context.Context, filter domain.MemberFilter) ([]domain.MemberResponse, error)
	Me(ctx context.Context, claims *domain.Claims) (*domain.MemberResponse, error)
	Update(ctx context.Context, claims *domain.Claims, code int64, req *domain.UpdateMemberRequest) (*domain.MemberResponse, error)
	UpdatePerformanceReview(ctx context.Context, code int64, review string) error
	ChangePassword(ctx context.Context, claims *domain.Claims, code int64, currentPassword, newPassword string) error
	Quit(ctx context.Context, code int64) error
}

type Service struct {
	memberRepo repository.SalesMemberRepository
	now        func() time.Time
}

func NewService(memberRepo repository.SalesMemberRepository) MemberService {
	return &Service{
		memberRepo: memberRepo,
		now:        time.Now,
	}
}

// maxMemberSequence é o maior sufixo que cabe nos quatro dígitos do código
const maxMemberSequence = 9999

// nextMemberCode gera o código no formato AAAA seguido do próximo id com
// quatro dígitos (ex: 20240001). Ids acima de 9999 invadiriam o ano seguinte
// e são recusados.
func (s *Service) nextMemberCode(ctx context.Context) (int64, error) {
	last, err := s.memberRepo.GetLast(ctx)
	if err != nil {
		return 0, err
	}

	var lastID int64
	if last != nil {
		lastID = last.ID
	}

	sequence := lastID + 1
	if sequence > maxMemberSequence {
		return 0, NewMemberError(ErrMemberCodeExhausted, apiErrors.ErrCodeExhausted, fmt.Sprintf("próximo id %d", sequence))
	}

	return int64(s.now().Year())*10000 + sequence, nil
}

func (s *Service) Create(ctx context.Context, req *domain.CreateMemberRequest) (*domain.MemberResponse, error) {
	if req.Email == "" || req.Name == "" || req.Password == "" {
		return nil, NewMemberError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "email, nome e senha são obrigatórios")
	}

	if req.Rank == "" {
		req.Rank = domain.RankFP
	}

	if !req.Rank.Valid() {
		return nil, NewMemberError(ErrInvalidRank, apiErrors.ErrInvalidFormat, string(req.Rank))
	}

	if err := authenticating.ValidatePasswordStrength(req.Password); err != nil {
		return nil, err
	}

	email := normalizeEmail(req.Email)

	existing, err := s.memberRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao verificar email")
	}
	if existing != nil {
		return nil, NewMemberError(ErrMemberAlreadyExists, apiErrors.ErrAlreadyExists, email)
	}

	code, err := s.nextMemberCode(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar código do membro")
	}

	hash, err := authenticating.HashPassword(req.Password)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar hash da senha")
	}

	member, err := s.memberRepo.Create(ctx, &domain.SalesMember{
		SalesMemberCode: code,
		Name:            req.Name,
		Email:           email,
		Phone:           req.Phone,
		PasswordHash:    hash,
		BirthDay:        req.BirthDay,
		ZoneCode:        req.ZoneCode,
		RoadAddress:     req.RoadAddress,
		DetailAddress:   req.DetailAddress,
		Rank:            req.Rank,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, NewMemberError(ErrMemberAlreadyExists, apiErrors.ErrAlreadyExists, email)
		}
		return nil, errors.Wrap(err, "erro ao criar membro")
	}

	log.ForContext(ctx).WithField("member_code", member.SalesMemberCode).Info("Membro criado")

	resp := domain.NewMemberResponse(member)
	return &resp, nil
}

func (s *Service) Get(ctx context.Context, code int64) (*domain.MemberResponse, error) {
	member, err := s.getActive(ctx, code)
	if err != nil {
		return nil, err
	}

	resp := domain.NewMemberResponse(member)
	return &resp, nil
}

func (s *Service) List(ctx context.Context, filter domain.MemberFilter) ([]domain.MemberResponse, error) {
	members, err := s.memberRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar membros")
	}

	result := make([]domain.MemberResponse, 0, len(members))
	for _, m := range members {
		result = append(result, domain.NewMemberResponse(m))
	}

	return result, nil
}

func (s *Service) Me(ctx context.Context, claims *domain.Claims) (*domain.MemberResponse, error) {
	return s.Get(ctx, claims.MemberCode)
}

// Update aplica os campos informados. O próprio membro ou um ADMIN podem
// editar; apenas ADMIN altera o cargo.
func (s *Service) Update(ctx context.Context, claims *domain.Claims, code int64, req *domain.UpdateMemberRequest) (*domain.MemberResponse, error) {
	if claims.MemberCode != code && !claims.IsAdmin() {
		return nil, NewMemberError(ErrInsufficientPrivilege, apiErrors.ErrInsufficientPrivilege, "apenas o próprio membro ou um administrador")
	}

	member, err := s.getActive(ctx, code)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.Email != nil {
		member.Email = normalizeEmail(*req.Email)
	}
	if req.Phone != nil {
		member.Phone = *req.Phone
	}
	if req.BirthDay != nil {
		member.BirthDay = *req.BirthDay
	}
	if req.ZoneCode != nil {
		member.ZoneCode = *req.ZoneCode
	}
	if req.RoadAddress != nil {
		member.RoadAddress = *req.RoadAddress
	}
	if req.DetailAddress != nil {
		member.DetailAddress = *req.DetailAddress
	}
	if req.OfficeAddress != nil {
		member.OfficeAddress = *req.OfficeAddress
	}
	if req.ExtensionNumber != nil {
		member.ExtensionNumber = *req.ExtensionNumber
	}
	if req.ProfileImage != nil {
		member.ProfileImage = req.ProfileImage
	}
	if req.Rank != nil {
		if !claims.IsAdmin() {
			return nil, NewMemberError(ErrInsufficientPrivilege, apiErrors.ErrInsufficientPrivilege, "apenas administradores alteram o cargo")
		}
		if !req.Rank.Valid() {
			return nil, NewMemberError(ErrInvalidRank, apiErrors.ErrInvalidFormat, string(*req.Rank))
		}
		member.Rank = *req.Rank
	}

	if err := s.memberRepo.Update(ctx, member); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, NewMemberError(ErrMemberAlreadyExists, apiErrors.ErrAlreadyExists, member.Email)
		}
		return nil, errors.Wrap(err, "erro ao atualizar membro")
	}

	resp := domain.NewMemberResponse(member)
	return &resp, nil
}

func (s *Service) UpdatePerformanceReview(ctx context.Context, code int64, review string) error {
	if !domain.ValidPerformanceReview(review) {
		return NewMemberError(ErrInvalidReview, apiErrors.ErrInvalidFormat, review)
	}

	member, err := s.getActive(ctx, code)
	if err != nil {
		return err
	}

	if err := s.memberRepo.UpdatePerformanceReview(ctx, member.ID, review); err != nil {
		return errors.Wrap(err, "erro ao atualizar avaliação")
	}

	return nil
}

// ChangePassword só pode ser feito pelo próprio membro
func (s *Service) ChangePassword(ctx context.Context, claims *domain.Claims, code int64, currentPassword, newPassword string) error {
	if claims.MemberCode != code {
		return NewMemberError(ErrInsufficientPrivilege, apiErrors.ErrInsufficientPrivilege, "apenas o próprio membro pode alterar a senha")
	}

	member, err := s.getActive(ctx, code)
	if err != nil {
		return err
	}

	if !authenticating.CheckPassword(member.PasswordHash, currentPassword) {
		return NewMemberError(ErrWrongPassword, apiErrors.ErrInvalidCredentials, "")
	}

	if currentPassword == newPassword {
		return NewMemberError(ErrSamePassword, apiErrors.ErrInvalidRequest, "")
	}

	if err := authenticating.ValidatePasswordStrength(newPassword); err != nil {
		return err
	}

	hash, err := authenticating.HashPassword(newPassword)
	if err != nil {
		return errors.Wrap(err, "erro ao gerar hash da senha")
	}

	if err := s.memberRepo.UpdatePassword(ctx, member.ID, hash); err != nil {
		return errors.Wrap(err, "erro ao atualizar senha")
	}

	return nil
}

func (s *Service) Quit(ctx context.Context, code int64) error {
	member, err := s.getActive(ctx, code)
	if err != nil {
		return err
	}

	if err := s.memberRepo.Quit(ctx, member.ID); err != nil {
		return errors.Wrap(err, "erro ao desligar membro")
	}

	log.ForContext(ctx).WithField("member_code", code).Info("Membro desligado")
	return nil
}

func (s *Service) getActive(ctx context.Context, code int64) (*domain.SalesMember, error) {
	member, err := s.memberRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar membro")
	}

	if member == nil || member.Quit {
		return nil, NewMemberError(ErrMemberNotFound, apiErrors.ErrMemberNotFound, "")
	}

	return member, nil
}

func normalizeEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	return strings.ReplaceAll(email, " ", "")
}
