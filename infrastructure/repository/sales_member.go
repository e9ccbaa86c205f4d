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
	salesMembersTable = "sales_members"
)

var salesMemberColumns = []string{
	"sm.id",
	"sm.sales_member_code",
	"sm.name",
	"sm.email",
	"sm.phone",
	"sm.password_hash",
	"sm.birth_day",
	"sm.zone_code",
	"sm.road_address",
	"sm.detail_address",
	"sm.office_address",
	"sm.extension_number",
	"sm.profile_image",
	"sm.rank",
	"sm.performance_review",
	"sm.team_id",
	"t.team_code",
	"t.team_name",
	"sm.quit",
	"sm.created_at",
	"sm.updated_at",
}

type SalesMemberRepository interface {
	Create(ctx context.Context, member *domain.SalesMember) (*domain.SalesMember, error)
	GetByID(ctx context.Context, id int64) (*domain.SalesMember, error)
	GetByCode(ctx context.Context, code int64) (*domain.SalesMember, error)
	GetByEmail(ctx context.Context, email string) (*domain.SalesMember, error)
	GetLast(ctx context.Context) (*domain.SalesMember, error)
	List(ctx context.Context, filter domain.MemberFilter) ([]*domain.SalesMember, error)
	ListByTeam(ctx context.Context, teamID int64) ([]*domain.SalesMember, error)
	ListActive(ctx context.Context) ([]*domain.SalesMember, error)
	Update(ctx context.Context, member *domain.SalesMember) error
	UpdatePerformanceReview(ctx context.Context, id int64, review string) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	SetTeam(ctx context.Context, id int64, teamID *int64) error
	Quit(ctx context.Context, id int64) error
}

type salesMemberRepository struct {
	conn *postgres.Connection
}

func NewSalesMemberRepository(conn *postgres.Connection) SalesMemberRepository {
	return &salesMemberRepository{
		conn: conn,
	}
}

func selectSalesMembers() squirrel.SelectBuilder {
	return squirrel.
		Select(salesMemberColumns...).
		From(salesMembersTable + " sm").
		LeftJoin("teams t ON t.id = sm.team_id").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *salesMemberRepository) Create(ctx context.Context, member *domain.SalesMember) (*domain.SalesMember, error) {
	query, args, err := squirrel.
		Insert(salesMembersTable).
		Columns(
			"sales_member_code",
			"name",
			"email",
			"phone",
			"password_hash",
			"birth_day",
			"zone_code",
			"road_address",
			"detail_address",
			"rank",
		).
		Values(
			member.SalesMemberCode,
			member.Name,
			member.Email,
			member.Phone,
			member.PasswordHash,
			member.BirthDay,
			member.ZoneCode,
			member.RoadAddress,
			member.DetailAddress,
			member.Rank,
		).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&member.ID, &member.CreatedAt, &member.UpdatedAt)
	if err != nil {
		return nil, translateError(err)
	}

	return member, nil
}

func (r *salesMemberRepository) GetByID(ctx context.Context, id int64) (*domain.SalesMember, error) {
	return r.getOne(ctx, squirrel.Eq{"sm.id": id})
}

func (r *salesMemberRepository) GetByCode(ctx context.Context, code int64) (*domain.SalesMember, error) {
	return r.getOne(ctx, squirrel.Eq{"sm.sales_member_code": code})
}

func (r *salesMemberRepository) GetByEmail(ctx context.Context, email string) (*domain.SalesMember, error) {
	return r.getOne(ctx, squirrel.Eq{"sm.email": email})
}

// GetLast retorna o último membro cadastrado, base para o próximo código
func (r *salesMemberRepository) GetLast(ctx context.Context) (*domain.SalesMember, error) {
	query, args, err := selectSalesMembers().
		OrderBy("sm.id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	member, err := scanSalesMember(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear membro: %w", err)
	}

	return member, nil
}

func (r *salesMemberRepository) getOne(ctx context.Context, where squirrel.Sqlizer) (*domain.SalesMember, error) {
	query, args, err := selectSalesMembers().Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	member, err := scanSalesMember(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear membro: %w", err)
	}

	return member, nil
}

func (r *salesMemberRepository) List(ctx context.Context, filter domain.MemberFilter) ([]*domain.SalesMember, error) {
	queryBuilder := selectSalesMembers().
		Where(squirrel.Eq{"sm.quit": false}).
		OrderBy("sm.sales_member_code ASC")

	if filter.TeamCode != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"t.team_code": filter.TeamCode})
	}

	if filter.Rank != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"sm.rank": filter.Rank})
	}

	return r.list(ctx, queryBuilder)
}

func (r *salesMemberRepository) ListByTeam(ctx context.Context, teamID int64) ([]*domain.SalesMember, error) {
	return r.list(ctx, selectSalesMembers().
		Where(squirrel.Eq{"sm.team_id": teamID, "sm.quit": false}).
		OrderBy("sm.sales_member_code ASC"))
}

func (r *salesMemberRepository) ListActive(ctx context.Context) ([]*domain.SalesMember, error) {
	return r.list(ctx, selectSalesMembers().
		Where(squirrel.Eq{"sm.quit": false}).
		OrderBy("sm.id ASC"))
}

func (r *salesMemberRepository) list(ctx context.Context, queryBuilder squirrel.SelectBuilder) ([]*domain.SalesMember, error) {
	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	members := make([]*domain.SalesMember, 0)
	for rows.Next() {
		member, err := scanSalesMember(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear membro: %w", err)
		}
		members = append(members, member)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return members, nil
}

func (r *salesMemberRepository) Update(ctx context.Context, member *domain.SalesMember) error {
	query, args, err := squirrel.
		Update(salesMembersTable).
		Set("name", member.Name).
		Set("email", member.Email).
		Set("phone", member.Phone).
		Set("birth_day", member.BirthDay).
		Set("zone_code", member.ZoneCode).
		Set("road_address", member.RoadAddress).
		Set("detail_address", member.DetailAddress).
		Set("office_address", member.OfficeAddress).
		Set("extension_number", member.ExtensionNumber).
		Set("profile_image", member.ProfileImage).
		Set("rank", member.Rank).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": member.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	return translateError(err)
}

func (r *salesMemberRepository) UpdatePerformanceReview(ctx context.Context, id int64, review string) error {
	return r.updateColumn(ctx, id, "performance_review", review)
}

func (r *salesMemberRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	return r.updateColumn(ctx, id, "password_hash", passwordHash)
}

func (r *salesMemberRepository) SetTeam(ctx context.Context, id int64, teamID *int64) error {
	return r.updateColumn(ctx, id, "team_id", teamID)
}

// Quit desliga o membro e remove o vínculo com o time
func (r *salesMemberRepository) Quit(ctx context.Context, id int64) error {
	query, args, err := squirrel.
		Update(salesMembersTable).
		Set("quit", true).
		Set("team_id", nil).
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

func (r *salesMemberRepository) updateColumn(ctx context.Context, id int64, column string, value any) error {
	query, args, err := squirrel.
		Update(salesMembersTable).
		Set(column, value).
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

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSalesMember(row rowScanner) (*domain.SalesMember, error) {
	member := &domain.SalesMember{}
	var (
		teamCode sql.NullString
		teamName sql.NullString
	)

	err := row.Scan(
		&member.ID,
		&member.SalesMemberCode,
		&member.Name,
		&member.Email,
		&member.Phone,
		&member.PasswordHash,
		&member.BirthDay,
		&member.ZoneCode,
		&member.RoadAddress,
		&member.DetailAddress,
		&member.OfficeAddress,
		&member.ExtensionNumber,
		&member.ProfileImage,
		&member.Rank,
		&member.PerformanceReview,
		&member.TeamID,
		&teamCode,
		&teamName,
		&member.Quit,
		&member.CreatedAt,
		&member.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if teamCode.Valid {
		member.TeamCode = &teamCode.String
	}
	if teamName.Valid {
		member.TeamName = &teamName.String
	}

	return member, nil
}
