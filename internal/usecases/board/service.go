package board

import (
	"context"
	"strings"

	"github.com/alioth/insurance-sales-api/infrastructure/repository"
	"github.com/alioth/insurance-sales-api/internal/domain"
	"github.com/alioth/insurance-sales-api/pkg/apiErrors"
	"github.com/pkg/errors"
)

type BoardService interface {
	Create(ctx context.Context, claims *domain.Claims, req *domain.BoardRequest) (*domain.Board, error)
	Get(ctx context.Context, id int64) (*domain.Board, error)
	List(ctx context.Context, boardType domain.BoardType) ([]*domain.Board, error)
	Update(ctx context.Context, claims *domain.Claims, id int64, req *domain.BoardRequest) (*domain.Board, error)
	Delete(ctx context.Context, claims *domain.Claims, id int64) error

	CreateAnswer(ctx context.Context, claims *domain.Claims, boardID int64, req *domain.AnswerRequest) (*domain.Answer, error)
	ListAnswers(ctx context.Context, boardID int64) ([]*domain.Answer, error)
	UpdateAnswer(ctx context.Context, claims *domain.Claims, id int64, req *domain.AnswerRequest) (*domain.Answer, error)
	DeleteAnswer(ctx context.Context, claims *domain.Claims, id int64) error
}

type Service struct {
	boardRepo  repository.BoardRepository
	answerRepo repository.AnswerRepository
}

func NewService(boardRepo repository.BoardRepository, answerRepo repository.AnswerRepository) BoardService {
	return &Service{
		boardRepo:  boardRepo,
		answerRepo: answerRepo,
	}
}

// Avisos (Notice) só podem ser publicados por gerentes e administradores
func (s *Service) checkBoardRequest(claims *domain.Claims, req *domain.BoardRequest) error {
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" || strings.TrimSpace(req.Content) == "" {
		return newError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData)
	}

	if req.BoardType == "" {
		req.BoardType = domain.BoardTypeQnA
	}
	if !req.BoardType.Valid() {
		return newError(ErrInvalidBoardType, apiErrors.ErrInvalidFormat)
	}

	if req.BoardType == domain.BoardTypeNotice && !claims.IsManagerOrAdmin() {
		return newError(ErrInsufficientPrivilege, apiErrors.ErrInsufficientPrivilege)
	}

	return nil
}

func (s *Service) Create(ctx context.Context, claims *domain.Claims, req *domain.BoardRequest) (*domain.Board, error) {
	if err := s.checkBoardRequest(claims, req); err != nil {
		return nil, err
	}

	board, err := s.boardRepo.Create(ctx, &domain.Board{
		Title:         req.Title,
		Content:       req.Content,
		BoardType:     req.BoardType,
		SalesMemberID: claims.MemberID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar publicação")
	}

	board.SalesMemberCode = claims.MemberCode
	return board, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Board, error) {
	board, err := s.findBoard(ctx, id)
	if err != nil {
		return nil, err
	}

	answers, err := s.answerRepo.ListByBoard(ctx, board.ID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar respostas")
	}
	board.Answers = answers

	return board, nil
}

func (s *Service) List(ctx context.Context, boardType domain.BoardType) ([]*domain.Board, error) {
	if boardType != "" && !boardType.Valid() {
		return nil, newError(ErrInvalidBoardType, apiErrors.ErrInvalidFormat)
	}

	boards, err := s.boardRepo.List(ctx, boardType)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar publicações")
	}

	return boards, nil
}

func (s *Service) Update(ctx context.Context, claims *domain.Claims, id int64, req *domain.BoardRequest) (*domain.Board, error) {
	board, err := s.findBoard(ctx, id)
	if err != nil {
		return nil, err
	}

	if board.SalesMemberID != claims.MemberID {
		return nil, newError(ErrInsufficientPrivilege, apiErrors.ErrInsufficientPrivilege)
	}

	if err := s.checkBoardRequest(claims, req); err != nil {
		return nil, err
	}

	board.Title = req.Title
	board.Content = req.Content
	board.BoardType = req.BoardType

	if err := s.boardRepo.Update(ctx, board); err != nil {
		return nil, errors.Wrap(err, "erro ao atualizar publicação")
	}

	return board, nil
}

func (s *Service) Delete(ctx context.Context, claims *domain.Claims, id int64) error {
	board, err := s.findBoard(ctx, id)
	if err != nil {
		return err
	}

	if board.SalesMemberID != claims.MemberID && !claims.IsAdmin() {
		return newError(ErrInsufficientPrivilege, apiErrors.ErrInsufficientPrivilege)
	}

	if err := s.boardRepo.SoftDelete(ctx, board.ID); err != nil {
		return errors.Wrap(err, "erro ao remover publicação")
	}

	return nil
}

func (s *Service) CreateAnswer(ctx context.Context, claims *domain.Claims, boardID int64, req *domain.AnswerRequest) (*domain.Answer, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, newError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData)
	}

	board, err := s.findBoard(ctx, boardID)
	if err != nil {
		return nil, err
	}

	answer, err := s.answerRepo.Create(ctx, &domain.Answer{
		Content:       req.Content,
		BoardID:       board.ID,
		SalesMemberID: claims.MemberID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar resposta")
	}

	answer.SalesMemberName = claims.MemberName
	return answer, nil
}

func (s *Service) ListAnswers(ctx context.Context, boardID int64) ([]*domain.Answer, error) {
	if _, err := s.findBoard(ctx, boardID); err != nil {
		return nil, err
	}

	answers, err := s.answerRepo.ListByBoard(ctx, boardID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar respostas")
	}

	return answers, nil
}

func (s *Service) UpdateAnswer(ctx context.Context, claims *domain.Claims, id int64, req *domain.AnswerRequest) (*domain.Answer, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, newError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData)
	}

	answer, err := s.findAnswer(ctx, id)
	if err != nil {
		return nil, err
	}

	if answer.SalesMemberID != claims.MemberID {
		return nil, newError(ErrInsufficientPrivilege, apiErrors.ErrInsufficientPrivilege)
	}

	answer.Content = req.Content
	if err := s.answerRepo.Update(ctx, answer); err != nil {
		return nil, errors.Wrap(err, "erro ao atualizar resposta")
	}

	return answer, nil
}

func (s *Service) DeleteAnswer(ctx context.Context, claims *domain.Claims, id int64) error {
	answer, err := s.findAnswer(ctx, id)
	if err != nil {
		return err
	}

	if answer.SalesMemberID != claims.MemberID && !claims.IsAdmin() {
		return newError(ErrInsufficientPrivilege, apiErrors.ErrInsufficientPrivilege)
	}

	if err := s.answerRepo.SoftDelete(ctx, answer.ID); err != nil {
		return errors.Wrap(err, "erro ao remover resposta")
	}

	return nil
}

func (s *Service) findBoard(ctx context.Context, id int64) (*domain.Board, error) {
	board, err := s.boardRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar publicação")
	}
	if board == nil {
		return nil, newError(ErrBoardNotFound, apiErrors.ErrBoardNotFound)
	}
	return board, nil
}

func (s *Service) findAnswer(ctx context.Context, id int64) (*domain.Answer, error) {
	answer, err := s.answerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar resposta")
	}
	if answer == nil {
		return nil, newError(ErrAnswerNotFound, apiErrors.ErrAnswerNotFound)
	}
	return answer, nil
}
