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
	schedulesTable = "schedules"
)

type ScheduleRepository interface {
	Create(ctx context.Context, schedule *domain.Schedule) (*domain.Schedule, error)
	GetByID(ctx context.Context, id int64) (*domain.Schedule, error)
	List(ctx context.Context, filter domain.ScheduleFilter) ([]*domain.Schedule, error)
	Update(ctx context.Context, schedule *domain.Schedule) error
	SoftDelete(ctx context.Context, id int64) error
}

type scheduleRepository struct {
	conn *postgres.Connection
}

func NewScheduleRepository(conn *postgres.Connection) ScheduleRepository {
	return &scheduleRepository{
		conn: conn,
	}
}

func (r *scheduleRepository) Create(ctx context.Context, schedule *domain.Schedule) (*domain.Schedule, error) {
	query, args, err := squirrel.
		Insert(schedulesTable).
		Columns(
			"schedule_title",
			"schedule_start_time",
			"schedule_end_time",
			"schedule_note",
			"schedule_type",
			"share",
			"color",
			"all_day",
			"sales_member_id",
		).
		Values(
			schedule.ScheduleTitle,
			schedule.ScheduleStartTime,
			schedule.ScheduleEndTime,
			schedule.ScheduleNote,
			schedule.ScheduleType,
			schedule.Share,
			schedule.Color,
			schedule.AllDay,
			schedule.SalesMemberID,
		).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&schedule.ID, &schedule.CreatedAt, &schedule.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return schedule, nil
}

func (r *scheduleRepository) GetByID(ctx context.Context, id int64) (*domain.Schedule, error) {
	query, args, err := selectSchedules().
		Where(squirrel.Eq{"s.id": id, "s.deleted": false}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	schedule, err := scanSchedule(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear agenda: %w", err)
	}

	return schedule, nil
}

// List retorna as agendas do membro e as agendas compartilhadas do seu time
func (r *scheduleRepository) List(ctx context.Context, filter domain.ScheduleFilter) ([]*domain.Schedule, error) {
	visibility := squirrel.Or{squirrel.Eq{"s.sales_member_id": filter.SalesMemberID}}
	if filter.TeamID != nil {
		visibility = append(visibility, squirrel.And{
			squirrel.Eq{"s.share": true},
			squirrel.Eq{"sm.team_id": *filter.TeamID},
		})
	}

	queryBuilder := selectSchedules().
		Where(squirrel.Eq{"s.deleted": false}).
		Where(visibility).
		OrderBy("s.schedule_start_time ASC", "s.id ASC")

	// intervalos que se sobrepõem à janela pedida
	if filter.StartTime != nil {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"s.schedule_end_time": *filter.StartTime})
	}
	if filter.EndTime != nil {
		queryBuilder = queryBuilder.Where(squirrel.LtOrEq{"s.schedule_start_time": *filter.EndTime})
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

	schedules := make([]*domain.Schedule, 0)
	for rows.Next() {
		schedule, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear agenda: %w", err)
		}
		schedules = append(schedules, schedule)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return schedules, nil
}

func (r *scheduleRepository) Update(ctx context.Context, schedule *domain.Schedule) error {
	query, args, err := squirrel.
		Update(schedulesTable).
		Set("schedule_title", schedule.ScheduleTitle).
		Set("schedule_start_time", schedule.ScheduleStartTime).
		Set("schedule_end_time", schedule.ScheduleEndTime).
		Set("schedule_note", schedule.ScheduleNote).
		Set("schedule_type", schedule.ScheduleType).
		Set("share", schedule.Share).
		Set("color", schedule.Color).
		Set("all_day", schedule.AllDay).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": schedule.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	return err
}

func (r *scheduleRepository) SoftDelete(ctx context.Context, id int64) error {
	query, args, err := squirrel.
		Update(schedulesTable).
		Set("deleted", true).
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

func selectSchedules() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"s.id",
			"s.schedule_title",
			"s.schedule_start_time",
			"s.schedule_end_time",
			"s.schedule_note",
			"s.schedule_type",
			"s.share",
			"s.color",
			"s.all_day",
			"s.deleted",
			"s.sales_member_id",
			"sm.sales_member_code",
			"s.created_at",
			"s.updated_at",
		).
		From(schedulesTable + " s").
		Join("sales_members sm ON sm.id = s.sales_member_id").
		PlaceholderFormat(squirrel.Dollar)
}

func scanSchedule(row rowScanner) (*domain.Schedule, error) {
	schedule := &domain.Schedule{}

	err := row.Scan(
		&schedule.ID,
		&schedule.ScheduleTitle,
		&schedule.ScheduleStartTime,
		&schedule.ScheduleEndTime,
		&schedule.ScheduleNote,
		&schedule.ScheduleType,
		&schedule.Share,
		&schedule.Color,
		&schedule.AllDay,
		&schedule.Deleted,
		&schedule.SalesMemberID,
		&schedule.SalesMemberCode,
		&schedule.CreatedAt,
		&schedule.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return schedule, nil
}
