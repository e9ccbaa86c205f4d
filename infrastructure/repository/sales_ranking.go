package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/alioth/insurance-sales-api/infrastructure/database/postgres"
	"github.com/alioth/insurance-sales-api/internal/domain"
)

const (
	salesRankingTable = "sales_member_ranking smr"
)

type SalesRankingRepository interface {
	GetByMemberID(ctx context.Context, memberID int64, month string) (*domain.MemberRankingItem, error)
	GetByMonth(ctx context.Context, month string) (*domain.MemberRankingResponse, error)
	SaveOrUpdate(ctx context.Context, rankings []*domain.MemberRankingItem) error
}

type salesRankingRepository struct {
	conn *postgres.Connection
}

func NewSalesRankingRepository(conn *postgres.Connection) SalesRankingRepository {
	return &salesRankingRepository{
		conn: conn,
	}
}

func (r *salesRankingRepository) GetByMonth(ctx context.Context, month string) (*domain.MemberRankingResponse, error) {
	sqlQuery, args, err := selectSalesRanking().
		Where(squirrel.Eq{"smr.month": month}).
		OrderBy("smr.position ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	rankings := make([]domain.MemberRankingItem, 0)
	var lastUpdate time.Time

	for rows.Next() {
		item, err := scanRankingItem(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear item do ranking: %w", err)
		}

		rankings = append(rankings, *item)

		// Manter o último update mais recente
		if item.UpdatedAt.After(lastUpdate) {
			lastUpdate = item.UpdatedAt
		}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	// Se não há registros, usar tempo atual para lastUpdate
	if lastUpdate.IsZero() {
		lastUpdate = time.Now()
	}

	return &domain.MemberRankingResponse{
		Ranking:    rankings,
		LastUpdate: lastUpdate,
	}, nil
}

func (r *salesRankingRepository) GetByMemberID(ctx context.Context, memberID int64, month string) (*domain.MemberRankingItem, error) {
	query, args, err := selectSalesRanking().
		Where(squirrel.Eq{"smr.sales_member_id": memberID, "smr.month": month}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	ranking, err := scanRankingItem(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear ranking: %w", err)
	}
	return ranking, nil
}

func (r *salesRankingRepository) SaveOrUpdate(ctx context.Context, rankings []*domain.MemberRankingItem) error {
	if len(rankings) == 0 {
		return nil
	}

	// Construir query de inserção em lote
	query := squirrel.StatementBuilder.
		Insert("sales_member_ranking").
		Columns(
			"sales_member_id",
			"month",
			"member_name",
			"team_name",
			"contract_price",
			"contract_count",
			"position",
			"position_change",
			"previous_position",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, ranking := range rankings {
		query = query.Values(
			ranking.SalesMemberID,
			ranking.Month,
			ranking.MemberName,
			ranking.TeamName,
			ranking.ContractPrice,
			ranking.ContractCount,
			ranking.Position,
			ranking.PositionChange,
			ranking.PreviousPosition,
		)
	}

	query = query.Suffix(`
		ON CONFLICT (sales_member_id, month) DO UPDATE SET
			member_name = EXCLUDED.member_name,
			team_name = EXCLUDED.team_name,
			contract_price = EXCLUDED.contract_price,
			contract_count = EXCLUDED.contract_count,
			position = EXCLUDED.position,
			position_change = EXCLUDED.position_change,
			previous_position = EXCLUDED.previous_position,
			updated_at = CURRENT_TIMESTAMP
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}

func selectSalesRanking() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"smr.id",
			"smr.sales_member_id",
			"smr.month",
			"smr.member_name",
			"smr.team_name",
			"smr.contract_price",
			"smr.contract_count",
			"smr.position",
			"smr.position_change",
			"smr.previous_position",
			"smr.created_at",
			"smr.updated_at",
		).
		From(salesRankingTable).
		PlaceholderFormat(squirrel.Dollar)
}

func scanRankingItem(row rowScanner) (*domain.MemberRankingItem, error) {
	item := &domain.MemberRankingItem{}

	err := row.Scan(
		&item.ID,
		&item.SalesMemberID,
		&item.Month,
		&item.MemberName,
		&item.TeamName,
		&item.ContractPrice,
		&item.ContractCount,
		&item.Position,
		&item.PositionChange,
		&item.PreviousPosition,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return item, nil
}
