package delivery

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"order-service/internal/entities"
	"order-service/internal/repository"
	orderrepo "order-service/internal/repository/order"
	"order-service/internal/service/delivery"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const deliveryColumns = "id, order_id, courier_id, status, start_time, end_time"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func scanDelivery(row pgx.Row) (*DeliveryDB, error) {
	var deliveryDB DeliveryDB
	err := row.Scan(
		&deliveryDB.ID,
		&deliveryDB.OrderID,
		&deliveryDB.CourierID,
		&deliveryDB.Status,
		&deliveryDB.StartTime,
		&deliveryDB.EndTime,
	)
	if err != nil {
		return nil, err
	}
	return &deliveryDB, nil
}

func (r *Repository) Create(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error) {
	deliveryModifyDB := FromDomainModify(&deliveryModify)

	query := `
		INSERT INTO deliveries (order_id, courier_id, status, start_time)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + deliveryColumns

	deliveryDB, err := scanDelivery(r.querier.QueryRow(
		ctx,
		query,
		deliveryModifyDB.OrderID,
		deliveryModifyDB.CourierID,
		deliveryModifyDB.Status,
		deliveryModifyDB.StartTime,
	))
	if err != nil {
		switch {
		case repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation):
			return nil, delivery.ErrAlreadyClaimed
		case repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation):
			return nil, delivery.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository create error: %w", err)
	}

	return ToDomain(deliveryDB), nil
}

func (r *Repository) Update(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error) {
	deliveryModifyDB := FromDomainModify(&deliveryModify)
	if deliveryModifyDB.ID == nil {
		return nil, delivery.ErrInvalidDeliveryID
	}

	builder := qb.
		Update("deliveries")

	// опциональные поля
	if deliveryModifyDB.CourierID != nil {
		builder = builder.Set("courier_id", deliveryModifyDB.CourierID)
	}
	if deliveryModifyDB.Status != nil {
		builder = builder.Set("status", deliveryModifyDB.Status)
	}
	if deliveryModifyDB.EndTime != nil {
		builder = builder.Set("end_time", deliveryModifyDB.EndTime)
	}

	builder = builder.
		Where(sq.Eq{"id": deliveryModifyDB.ID}).
		Suffix("RETURNING " + deliveryColumns)

	deliveryDB, err := scanDelivery(r.querier.QueryRowSq(ctx, builder))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository update error: %w", err)
	}

	return ToDomain(deliveryDB), nil
}

func (r *Repository) GetClaimableOrders(ctx context.Context) ([]entities.Order, error) {
	builder := qb.
		Select(orderrepo.Columns...).
		From("orders").
		Where(sq.Eq{
			"status":              entities.OrderPending.String(),
			"assigned_courier_id": nil,
		}).
		OrderBy("created_at", "id")

	rows, err := r.querier.QuerySq(ctx, builder)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository get claimable orders error: %w", err)
	}

	return orderrepo.CollectOrders(rows)
}

// AssignOrder - условный UPDATE: строка меняется, только если заказ ещё
// pending и без курьера. Конкурирующий UPDATE ждёт блокировку строки и
// после коммита первого перепроверяет WHERE, поэтому выигрывает один.
func (r *Repository) AssignOrder(ctx context.Context, orderID, courierID string) (*entities.Order, error) {
	builder := qb.
		Update("orders").
		Set("assigned_courier_id", courierID).
		Set("status", entities.OrderAssigned.String()).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{
			"id":                  orderID,
			"status":              entities.OrderPending.String(),
			"assigned_courier_id": nil,
		}).
		Suffix("RETURNING " + orderrepo.ColumnList())

	orderDB, err := orderrepo.ScanOrder(r.querier.QueryRowSq(ctx, builder))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrOrderNotClaimable
		}
		return nil, fmt.Errorf("unexpected delivery repository assign order error: %w", err)
	}

	return orderrepo.ToDomain(orderDB), nil
}

func (r *Repository) GetOrder(ctx context.Context, orderID string) (*entities.Order, error) {
	builder := qb.
		Select(orderrepo.Columns...).
		From("orders").
		Where(sq.Eq{"id": orderID})

	orderDB, err := orderrepo.ScanOrder(r.querier.QueryRowSq(ctx, builder))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository get order error: %w", err)
	}

	return orderrepo.ToDomain(orderDB), nil
}
