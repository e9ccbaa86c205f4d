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
	teamsTable = "teams"
)

type TeamRepository interface {
	CreateWithManager(ctx context.Context, team *domain.Team, managerID int64) (*domain.Team, error)
	GetByCode(ctx context.Context, code string) (*domain.Team, error)
	GetByID(ctx context.Context, id int64) (*domain.Team, error)
	List(ctx context.Context) ([]*domain.Team, error)
	Update(ctx context.Context, team *domain.Team) error
	UpdatePerformanceReview(ctx context.Context, id int64, review string) error
	SoftDelete(ctx context.Context, id int64) error
}

type teamRepository struct {
	conn *postgres.Connection
}

func NewTeamRepository(conn *postgres.Connection) TeamRepository {
	return &teamRepository{
		conn: conn,
	}
}

// CreateWithManager insere o time e move o gerente para ele na mesma transação
func (r *teamRepository) CreateWithManager(ctx context.Context, team *domain.Team, managerID int64) (*domain.Team, error) {
	insertSQL, insertArgs, err := squirrel.
		Insert(teamsTable).
		Columns("team_code", "team_name", "team_manager_code").
		Values(team.TeamCode, team.TeamName, team.TeamManagerCode).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, insertSQL, insertArgs...).Scan(&team.ID, &team.CreatedAt, &team.UpdatedAt); err != nil {
			return translateError(err)
		}

		updateSQL, updateArgs, err := squirrel.
			Update(salesMembersTable).
			Set("team_id", team.ID).
			Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
			Where(squirrel.Eq{"id": managerID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		_, err = tx.ExecContext(ctx, updateSQL, updateArgs...)
		return err
	})
	if err != nil {
		return nil, err
	}

	return team, nil
}

func (r *teamRepository) GetByCode(ctx context.Context, code string) (*domain.Team, error) {
	return r.getOne(ctx, squirrel.Eq{"team_code": code, "deleted": false})
}

func (r *teamRepository) GetByID(ctx context.Context, id int64) (*domain.Team, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

func (r *teamRepository) getOne(ctx context.Context, where squirrel.Sqlizer) (*domain.Team, error) {
	query, args, err := selectTeams().Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	team, err := scanTeam(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear time: %w", err)
	}

	return team, nil
}

func (r *teamRepository) List(ctx context.Context) ([]*domain.Team, error) {
	query, args, err := selectTeams().
		Where(squirrel.Eq{"deleted": false}).
		OrderBy("team_name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	teams := make([]*domain.Team, 0)
	for rows.Next() {
		team, err := scanTeam(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear time: %w", err)
		}
		teams = append(teams, team)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return teams, nil
}

func (r *teamRepository) Update(ctx context.Context, team *domain.Team) error {
	query, args, err := squirrel.
		Update(teamsTable).
		Set("team_name", team.TeamName).
		Set("team_manager_code", team.TeamManagerCode).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": team.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	return err
}

func (r *teamRepository) UpdatePerformanceReview(ctx context.Context, id int64, review string) error {
	query, args, err := squirrel.
		Update(teamsTable).
		Set("performance_review", review).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	return err
}

// SoftDelete marca o time como removido e desvincula todos os seus membros
func (r *teamRepository) SoftDelete(ctx context.Context, id int64) error {
	detachSQL, detachArgs, err := squirrel.
		Update(salesMembersTable).
		Set("team_id", nil).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"team_id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	deleteSQL, deleteArgs, err := squirrel.
		Update(teamsTable).
		Set("deleted", true).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, detachSQL, detachArgs...); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, deleteSQL, deleteArgs...)
		return err
	})
}

func selectTeams() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"id",
			"team_code",
			"team_name",
			"team_manager_code",
			"performance_review",
			"deleted",
			"created_at",
			"updated_at",
		).
		From(teamsTable).
		PlaceholderFormat(squirrel.Dollar)
}

func scanTeam(row rowScanner) (*domain.Team, error) {
	team := &domain.Team{}

	err := row.Scan(
		&team.ID,
		&team.TeamCode,
		&team.TeamName,
		&team.TeamManagerCode,
		&team.PerformanceReview,
		&team.Deleted,
		&team.CreatedAt,
		&team.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return team, nil
}
