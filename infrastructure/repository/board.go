package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/alioth/insurance-sales-api/infrastructure/database/postgres"
	"github.com/alioth/insurance-sales-api/internal/domain"
)

const (
	boardsTable  = "boards"
	answersTable = "answers"
)

type BoardRepository interface {
	Create(ctx context.Context, board *domain.Board) (*domain.Board, error)
	GetByID(ctx context.Context, id int64) (*domain.Board, error)
	List(ctx context.Context, boardType domain.BoardType) ([]*domain.Board, error)
	Update(ctx context.Context, board *domain.Board) error
	SoftDelete(ctx context.Context, id int64) error
}

type AnswerRepository interface {
	Create(ctx context.Context, answer *domain.Answer) (*domain.Answer, error)
	GetByID(ctx context.Context, id int64) (*domain.Answer, error)
	ListByBoard(ctx context.Context, boardID int64) ([]*domain.Answer, error)
	Update(ctx context.Context, answer *domain.Answer) error
	SoftDelete(ctx context.Context, id int64) error
}

type boardRepository struct {
	conn *postgres.Connection
}

func NewBoardRepository(conn *postgres.Connection) BoardRepository {
	return &boardRepository{
		conn: conn,
	}
}

func (r *boardRepository) Create(ctx context.Context, board *domain.Board) (*domain.Board, error) {
	query, args, err := squirrel.
		Insert(boardsTable).
		Columns("title", "content", "board_type", "sales_member_id").
		Values(board.Title, board.Content, board.BoardType, board.SalesMemberID).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&board.ID, &board.CreatedAt, &board.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return board, nil
}

func (r *boardRepository) GetByID(ctx context.Context, id int64) (*domain.Board, error) {
	query, args, err := selectBoards().
		Where(squirrel.Eq{"b.id": id, "b.deleted": false}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	board, err := scanBoard(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear board: %w", err)
	}

	return board, nil
}

func (r *boardRepository) List(ctx context.Context, boardType domain.BoardType) ([]*domain.Board, error) {
	queryBuilder := selectBoards().
		Where(squirrel.Eq{"b.deleted": false}).
		OrderBy("b.created_at DESC", "b.id DESC")

	if boardType != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"b.board_type": boardType})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	boards := make([]*domain.Board, 0)
	for rows.Next() {
		board, err := scanBoard(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear board: %w", err)
		}
		boards = append(boards, board)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return boards, nil
}

func (r *boardRepository) Update(ctx context.Context, board *domain.Board) error {
	query, args, err := squirrel.
		Update(boardsTable).
		Set("title", board.Title).
		Set("content", board.Content).
		Set("board_type", board.BoardType).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": board.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	return err
}

func (r *boardRepository) SoftDelete(ctx context.Context, id int64) error {
	return softDelete(ctx, r.conn, boardsTable, id)
}

type answerRepository struct {
	conn *postgres.Connection
}

func NewAnswerRepository(conn *postgres.Connection) AnswerRepository {
	return &answerRepository{
		conn: conn,
	}
}

func (r *answerRepository) Create(ctx context.Context, answer *domain.Answer) (*domain.Answer, error) {
	query, args, err := squirrel.
		Insert(answersTable).
		Columns("content", "board_id", "sales_member_id").
		Values(answer.Content, answer.BoardID, answer.SalesMemberID).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&answer.ID, &answer.CreatedAt, &answer.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return answer, nil
}

func (r *answerRepository) GetByID(ctx context.Context, id int64) (*domain.Answer, error) {
	query, args, err := selectAnswers().
		Where(squirrel.Eq{"a.id": id, "a.deleted": false}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	answer, err := scanAnswer(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear resposta: %w", err)
	}

	return answer, nil
}

func (r *answerRepository) ListByBoard(ctx context.Context, boardID int64) ([]*domain.Answer, error) {
	query, args, err := selectAnswers().
		Where(squirrel.Eq{"a.board_id": boardID, "a.deleted": false}).
		OrderBy("a.created_at ASC", "a.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	answers := make([]*domain.Answer, 0)
	for rows.Next() {
		answer, err := scanAnswer(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear resposta: %w", err)
		}
		answers = append(answers, answer)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return answers, nil
}

func (r *answerRepository) Update(ctx context.Context, answer *domain.Answer) error {
	query, args, err := squirrel.
		Update(answersTable).
		Set("content", answer.Content).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": answer.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	return err
}

func (r *answerRepository) SoftDelete(ctx context.Context, id int64) error {
	return softDelete(ctx, r.conn, answersTable, id)
}

func softDelete(ctx context.Context, conn postgres.Queryer, table string, id int64) error {
	query, args, err := squirrel.
		Update(table).
		Set("deleted", true).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = conn.ExecContext(ctx, query, args...)
	return err
}

func selectBoards() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"b.id",
			"b.title",
			"b.content",
			"b.board_type",
			"b.sales_member_id",
			"sm.sales_member_code",
			"b.deleted",
			"b.created_at",
			"b.updated_at",
		).
		From(boardsTable + " b").
		Join("sales_members sm ON sm.id = b.sales_member_id").
		PlaceholderFormat(squirrel.Dollar)
}

func scanBoard(row rowScanner) (*domain.Board, error) {
	board := &domain.Board{}

	err := row.Scan(
		&board.ID,
		&board.Title,
		&board.Content,
		&board.BoardType,
		&board.SalesMemberID,
		&board.SalesMemberCode,
		&board.Deleted,
		&board.CreatedAt,
		&board.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return board, nil
}

func selectAnswers() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"a.id",
			"a.content",
			"a.board_id",
			"a.sales_member_id",
			"sm.name",
			"a.deleted",
			"a.created_at",
			"a.updated_at",
		).
		From(answersTable + " a").
		Join("sales_members sm ON sm.id = a.sales_member_id").
		PlaceholderFormat(squirrel.Dollar)
}

func scanAnswer(row rowScanner) (*domain.Answer, error) {
	answer := &domain.Answer{}

	err := row.Scan(
		&answer.ID,
		&answer.Content,
		&answer.BoardID,
		&answer.SalesMemberID,
		&answer.SalesMemberName,
		&answer.Deleted,
		&answer.CreatedAt,
		&answer.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return answer, nil
}
