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
	contractsTable = "contracts"
)

type ContractRepository interface {
	Create(ctx context.Context, contract *domain.Contract) (*domain.Contract, error)
	GetByID(ctx context.Context, id int64) (*domain.Contract, error)
	List(ctx context.Context, filter domain.ContractFilter) ([]*domain.Contract, error)
	Update(ctx context.Context, contract *domain.Contract) error
	UpdateStatus(ctx context.Context, id int64, status domain.ContractStatus) error
	ListSalesRecords(ctx context.Context, start, end time.Time) ([]*domain.SalesRecord, error)
	SumMemberSales(ctx context.Context, memberID int64, start, end time.Time) (price int64, count int64, err error)
}

type contractRepository struct {
	conn *postgres.Connection
}

func NewContractRepository(conn *postgres.Connection) ContractRepository {
	return &contractRepository{
		conn: conn,
	}
}

func (r *contractRepository) Create(ctx context.Context, contract *domain.Contract) (*domain.Contract, error) {
	query, args, err := squirrel.
		Insert(contractsTable).
		Columns(
			"contract_code",
			"contract_date",
			"contract_expire_date",
			"contract_period",
			"contract_total_price",
			"contract_payment_amount",
			"contract_payment_frequency",
			"contract_payment_maturity_installment",
			"contract_count",
			"contract_payment_method",
			"contract_payer",
			"contract_consultation",
			"contract_status",
			"contract_member_id",
			"customer_id",
			"insurance_product_id",
			"sales_member_id",
		).
		Values(
			contract.ContractCode,
			contract.ContractDate,
			contract.ContractExpireDate,
			contract.ContractPeriod,
			contract.ContractTotalPrice,
			contract.ContractPaymentAmount,
			contract.ContractPaymentFrequency,
			contract.ContractPaymentMaturityInstallment,
			contract.ContractCount,
			contract.ContractPaymentMethod,
			contract.ContractPayer,
			contract.ContractConsultation,
			contract.ContractStatus,
			contract.ContractMemberID,
			contract.CustomerID,
			contract.InsuranceProductID,
			contract.SalesMemberID,
		).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&contract.ID, &contract.CreatedAt, &contract.UpdatedAt)
	if err != nil {
		return nil, translateError(err)
	}

	return contract, nil
}

func (r *contractRepository) GetByID(ctx context.Context, id int64) (*domain.Contract, error) {
	query, args, err := selectContracts().Where(squirrel.Eq{"c.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	contract, err := scanContract(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear contrato: %w", err)
	}

	return contract, nil
}

func (r *contractRepository) List(ctx context.Context, filter domain.ContractFilter) ([]*domain.Contract, error) {
	queryBuilder := selectContracts().OrderBy("c.contract_date DESC", "c.id DESC")

	if filter.SalesMemberID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"c.sales_member_id": *filter.SalesMemberID})
	}

	if filter.Status != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"c.contract_status": filter.Status})
	}

	if filter.StartDate != nil {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"c.contract_date": *filter.StartDate})
	}

	if filter.EndDate != nil {
		queryBuilder = queryBuilder.Where(squirrel.Lt{"c.contract_date": *filter.EndDate})
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

	contracts := make([]*domain.Contract, 0)
	for rows.Next() {
		contract, err := scanContract(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear contrato: %w", err)
		}
		contracts = append(contracts, contract)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return contracts, nil
}

func (r *contractRepository) Update(ctx context.Context, contract *domain.Contract) error {
	query, args, err := squirrel.
		Update(contractsTable).
		Set("contract_expire_date", contract.ContractExpireDate).
		Set("contract_period", contract.ContractPeriod).
		Set("contract_total_price", contract.ContractTotalPrice).
		Set("contract_payment_amount", contract.ContractPaymentAmount).
		Set("contract_payment_frequency", contract.ContractPaymentFrequency).
		Set("contract_payment_maturity_installment", contract.ContractPaymentMaturityInstallment).
		Set("contract_count", contract.ContractCount).
		Set("contract_payment_method", contract.ContractPaymentMethod).
		Set("contract_payer", contract.ContractPayer).
		Set("contract_consultation", contract.ContractConsultation).
		Set("contract_status", contract.ContractStatus).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": contract.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	return err
}

func (r *contractRepository) UpdateStatus(ctx context.Context, id int64, status domain.ContractStatus) error {
	query, args, err := squirrel.
		Update(contractsTable).
		Set("contract_status", status).
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

// ListSalesRecords retorna os contratos criados em [start, end) já unidos ao
// vendedor, ao time e ao produto
func (r *contractRepository) ListSalesRecords(ctx context.Context, start, end time.Time) ([]*domain.SalesRecord, error) {
	query, args, err := squirrel.
		Select(
			"c.id",
			"c.contract_total_price",
			"c.contract_count",
			"c.contract_status",
			"c.created_at",
			"sm.id",
			"sm.sales_member_code",
			"sm.name",
			"sm.performance_review",
			"t.id",
			"COALESCE(t.team_code, '')",
			"COALESCE(t.team_name, '')",
			"COALESCE(t.performance_review, '')",
			"ip.id",
			"ip.insurance_name",
		).
		From(contractsTable + " c").
		Join("sales_members sm ON sm.id = c.sales_member_id").
		LeftJoin("teams t ON t.id = sm.team_id AND t.deleted = FALSE").
		Join("insurance_products ip ON ip.id = c.insurance_product_id").
		Where(squirrel.GtOrEq{"c.created_at": start}).
		Where(squirrel.Lt{"c.created_at": end}).
		OrderBy("c.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.SalesRecord, 0)
	for rows.Next() {
		record := &domain.SalesRecord{}
		err := rows.Scan(
			&record.ContractID,
			&record.ContractTotalPrice,
			&record.ContractCount,
			&record.ContractStatus,
			&record.CreatedAt,
			&record.SalesMemberID,
			&record.SalesMemberCode,
			&record.SalesMemberName,
			&record.MemberPerformanceReview,
			&record.TeamID,
			&record.TeamCode,
			&record.TeamName,
			&record.TeamPerformanceReview,
			&record.InsuranceProductID,
			&record.InsuranceProductName,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear venda: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

// SumMemberSales soma o valor e a quantidade de contratos não cancelados de
// um vendedor criados em [start, end)
func (r *contractRepository) SumMemberSales(ctx context.Context, memberID int64, start, end time.Time) (int64, int64, error) {
	query, args, err := squirrel.
		Select("COALESCE(SUM(contract_total_price), 0)", "COUNT(*)").
		From(contractsTable).
		Where(squirrel.Eq{"sales_member_id": memberID}).
		Where(squirrel.NotEq{"contract_status": domain.ContractStatusCancellation}).
		Where(squirrel.GtOrEq{"created_at": start}).
		Where(squirrel.Lt{"created_at": end}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var price, count int64
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&price, &count); err != nil {
		return 0, 0, fmt.Errorf("erro ao somar vendas do membro %d: %w", memberID, err)
	}

	return price, count, nil
}

func selectContracts() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"c.id",
			"c.contract_code",
			"c.contract_date",
			"c.contract_expire_date",
			"c.contract_period",
			"c.contract_total_price",
			"c.contract_payment_amount",
			"c.contract_payment_frequency",
			"c.contract_payment_maturity_installment",
			"c.contract_count",
			"c.contract_payment_method",
			"c.contract_payer",
			"c.contract_consultation",
			"c.contract_status",
			"c.contract_member_id",
			"c.customer_id",
			"c.insurance_product_id",
			"c.sales_member_id",
			"ip.insurance_name",
			"cu.customer_name",
			"cm.cm_name",
			"sm.name",
			"sm.sales_member_code",
			"c.created_at",
			"c.updated_at",
		).
		From(contractsTable + " c").
		Join("insurance_products ip ON ip.id = c.insurance_product_id").
		Join("customers cu ON cu.id = c.customer_id").
		Join("contract_members cm ON cm.id = c.contract_member_id").
		Join("sales_members sm ON sm.id = c.sales_member_id").
		PlaceholderFormat(squirrel.Dollar)
}

func scanContract(row rowScanner) (*domain.Contract, error) {
	contract := &domain.Contract{}

	err := row.Scan(
		&contract.ID,
		&contract.ContractCode,
		&contract.ContractDate,
		&contract.ContractExpireDate,
		&contract.ContractPeriod,
		&contract.ContractTotalPrice,
		&contract.ContractPaymentAmount,
		&contract.ContractPaymentFrequency,
		&contract.ContractPaymentMaturityInstallment,
		&contract.ContractCount,
		&contract.ContractPaymentMethod,
		&contract.ContractPayer,
		&contract.ContractConsultation,
		&contract.ContractStatus,
		&contract.ContractMemberID,
		&contract.CustomerID,
		&contract.InsuranceProductID,
		&contract.SalesMemberID,
		&contract.InsuranceProductName,
		&contract.CustomerName,
		&contract.ContractMemberName,
		&contract.SalesMemberName,
		&contract.SalesMemberCode,
		&contract.CreatedAt,
		&contract.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return contract, nil
}
