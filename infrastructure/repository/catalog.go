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
	insuranceProductsTable = "insurance_products"
	customersTable         = "customers"
	contractMembersTable   = "contract_members"
)

// CatalogRepository agrupa os dados de referência usados pelos contratos:
// produtos de seguro, clientes e segurados
type CatalogRepository interface {
	CreateProduct(ctx context.Context, product *domain.InsuranceProduct) (*domain.InsuranceProduct, error)
	GetProduct(ctx context.Context, id int64) (*domain.InsuranceProduct, error)
	ListProducts(ctx context.Context) ([]*domain.InsuranceProduct, error)

	CreateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	GetCustomer(ctx context.Context, id int64) (*domain.Customer, error)
	ListCustomers(ctx context.Context) ([]*domain.Customer, error)

	CreateContractMember(ctx context.Context, cm *domain.ContractMember) (*domain.ContractMember, error)
	GetContractMember(ctx context.Context, id int64) (*domain.ContractMember, error)
	ListContractMembers(ctx context.Context) ([]*domain.ContractMember, error)
}

type catalogRepository struct {
	conn *postgres.Connection
}

func NewCatalogRepository(conn *postgres.Connection) CatalogRepository {
	return &catalogRepository{
		conn: conn,
	}
}

func (r *catalogRepository) CreateProduct(ctx context.Context, product *domain.InsuranceProduct) (*domain.InsuranceProduct, error) {
	query, args, err := squirrel.
		Insert(insuranceProductsTable).
		Columns("insurance_name", "insurance_category").
		Values(product.InsuranceName, product.InsuranceCategory).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&product.ID, &product.CreatedAt); err != nil {
		return nil, translateError(err)
	}

	return product, nil
}

func (r *catalogRepository) GetProduct(ctx context.Context, id int64) (*domain.InsuranceProduct, error) {
	query, args, err := selectProducts().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	product := &domain.InsuranceProduct{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&product.ID,
		&product.InsuranceName,
		&product.InsuranceCategory,
		&product.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear produto: %w", err)
	}

	return product, nil
}

func (r *catalogRepository) ListProducts(ctx context.Context) ([]*domain.InsuranceProduct, error) {
	query, args, err := selectProducts().OrderBy("id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	products := make([]*domain.InsuranceProduct, 0)
	for rows.Next() {
		product := &domain.InsuranceProduct{}
		if err := rows.Scan(&product.ID, &product.InsuranceName, &product.InsuranceCategory, &product.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear produto: %w", err)
		}
		products = append(products, product)
	}

	return products, rows.Err()
}

func (r *catalogRepository) CreateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	query, args, err := squirrel.
		Insert(customersTable).
		Columns("customer_name", "customer_phone", "customer_email").
		Values(customer.CustomerName, customer.CustomerPhone, customer.CustomerEmail).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&customer.ID, &customer.CreatedAt); err != nil {
		return nil, translateError(err)
	}

	return customer, nil
}

func (r *catalogRepository) GetCustomer(ctx context.Context, id int64) (*domain.Customer, error) {
	query, args, err := selectCustomers().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	customer := &domain.Customer{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&customer.ID,
		&customer.CustomerName,
		&customer.CustomerPhone,
		&customer.CustomerEmail,
		&customer.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear cliente: %w", err)
	}

	return customer, nil
}

func (r *catalogRepository) ListCustomers(ctx context.Context) ([]*domain.Customer, error) {
	query, args, err := selectCustomers().OrderBy("id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	customers := make([]*domain.Customer, 0)
	for rows.Next() {
		customer := &domain.Customer{}
		if err := rows.Scan(&customer.ID, &customer.CustomerName, &customer.CustomerPhone, &customer.CustomerEmail, &customer.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear cliente: %w", err)
		}
		customers = append(customers, customer)
	}

	return customers, rows.Err()
}

func (r *catalogRepository) CreateContractMember(ctx context.Context, cm *domain.ContractMember) (*domain.ContractMember, error) {
	query, args, err := squirrel.
		Insert(contractMembersTable).
		Columns("cm_name", "cm_phone", "cm_birth_day").
		Values(cm.CMName, cm.CMPhone, cm.CMBirthDay).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&cm.ID, &cm.CreatedAt); err != nil {
		return nil, translateError(err)
	}

	return cm, nil
}

func (r *catalogRepository) GetContractMember(ctx context.Context, id int64) (*domain.ContractMember, error) {
	query, args, err := selectContractMembers().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	cm := &domain.ContractMember{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&cm.ID,
		&cm.CMName,
		&cm.CMPhone,
		&cm.CMBirthDay,
		&cm.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear segurado: %w", err)
	}

	return cm, nil
}

func (r *catalogRepository) ListContractMembers(ctx context.Context) ([]*domain.ContractMember, error) {
	query, args, err := selectContractMembers().OrderBy("id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	members := make([]*domain.ContractMember, 0)
	for rows.Next() {
		cm := &domain.ContractMember{}
		if err := rows.Scan(&cm.ID, &cm.CMName, &cm.CMPhone, &cm.CMBirthDay, &cm.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear segurado: %w", err)
		}
		members = append(members, cm)
	}

	return members, rows.Err()
}

func selectProducts() squirrel.SelectBuilder {
	return squirrel.
		Select("id", "insurance_name", "insurance_category", "created_at").
		From(insuranceProductsTable).
		PlaceholderFormat(squirrel.Dollar)
}

func selectCustomers() squirrel.SelectBuilder {
	return squirrel.
		Select("id", "customer_name", "customer_phone", "customer_email", "created_at").
		From(customersTable).
		PlaceholderFormat(squirrel.Dollar)
}

func selectContractMembers() squirrel.SelectBuilder {
	return squirrel.
		Select("id", "cm_name", "cm_phone", "cm_birth_day", "created_at").
		From(contractMembersTable).
		PlaceholderFormat(squirrel.Dollar)
}
