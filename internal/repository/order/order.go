package order

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"order-service/internal/entities"
	"order-service/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Columns - порядок колонок, который ожидает ScanOrder.
var Columns = []string{
	"id",
	"customer_id",
	"restaurant_id",
	"items",
	"total_amount",
	"status",
	"assigned_courier_id",
	"created_at",
	"updated_at",
}

func ScanOrder(row pgx.Row) (*OrderDB, error) {
	var orderDB OrderDB
	err := row.Scan(
		&orderDB.ID,
		&orderDB.CustomerID,
		&orderDB.RestaurantID,
		&orderDB.Items,
		&orderDB.TotalAmount,
		&orderDB.Status,
		&orderDB.AssignedCourierID,
		&orderDB.CreatedAt,
		&orderDB.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &orderDB, nil
}

// CollectOrders читает все строки и закрывает rows.
func CollectOrders(rows pgx.Rows) ([]entities.Order, error) {
	defer rows.Close()

	orders := make([]entities.Order, 0)
	for rows.Next() {
		orderDB, err := ScanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, *ToDomain(orderDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}
	return orders, nil
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderCreate entities.OrderCreate) (*entities.Order, error) {
	builder := qb.
		Insert("orders").
		Columns("customer_id", "restaurant_id", "items", "total_amount", "status", "created_at", "updated_at").
		Values(
			orderCreate.CustomerID,
			orderCreate.RestaurantID,
			FromDomainItems(orderCreate.Items),
			orderCreate.TotalAmount,
			entities.DefaultOrderStatus.String(),
			orderCreate.CreatedAt,
			orderCreate.CreatedAt,
		).
		Suffix("RETURNING " + ColumnList())

	orderDB, err := ScanOrder(r.querier.QueryRowSq(ctx, builder))
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(orderDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Order, error) {
	builder := qb.
		Select(Columns...).
		From("orders").
		Where(sq.Eq{"id": id})

	orderDB, err := ScanOrder(r.querier.QueryRowSq(ctx, builder))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get error: %w", err)
	}

	return ToDomain(orderDB), nil
}

func (r *Repository) GetByCustomerID(ctx context.Context, customerID string) ([]entities.Order, error) {
	builder := qb.
		Select(Columns...).
		From("orders").
		Where(sq.Eq{"customer_id": customerID}).
		OrderBy("created_at", "id")

	rows, err := r.querier.QuerySq(ctx, builder)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get by customer error: %w", err)
	}

	return CollectOrders(rows)
}

func (r *Repository) Update(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	orderModifyDB := FromDomainModify(&orderModify)
	if orderModifyDB.ID == nil {
		return nil, order.ErrInvalidOrderID
	}

	builder := qb.
		Update("orders")

	// опциональные поля
	if orderModifyDB.Status != nil {
		builder = builder.Set("status", orderModifyDB.Status)
	}
	if orderModifyDB.AssignedCourierID != nil {
		builder = builder.Set("assigned_courier_id", orderModifyDB.AssignedCourierID)
	}

	builder = builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": orderModifyDB.ID}).
		Suffix("RETURNING " + ColumnList())

	orderDB, err := ScanOrder(r.querier.QueryRowSq(ctx, builder))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	return ToDomain(orderDB), nil
}

// ColumnList - Columns через запятую, для RETURNING.
func ColumnList() string {
	return strings.Join(Columns, ", ")
}
