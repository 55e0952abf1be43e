package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/Ritik6475/ecommerce-prashant-backend/internal/core/domain"
	"github.com/govalues/decimal"
	"github.com/jackc/pgx/v5"
)

var orderColumns = []string{
	"id", "user_id",
	"first_name", "last_name", "email", "phone",
	"street", "city", "state", "postal_code", "country",
	"total_amount", "payment_status", "order_status",
	"gateway_order_id", "gateway_payment_id", "gateway_signature",
	"created_at", "updated_at",
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	order := domain.Order{}
	err := row.Scan(
		&order.ID,
		&order.UserID,
		&order.Address.FirstName,
		&order.Address.LastName,
		&order.Address.Email,
		&order.Address.Phone,
		&order.Address.Street,
		&order.Address.City,
		&order.Address.State,
		&order.Address.PostalCode,
		&order.Address.Country,
		&order.TotalAmount,
		&order.PaymentStatus,
		&order.OrderStatus,
		&order.GatewayOrderID,
		&order.GatewayPaymentID,
		&order.GatewaySignature,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}
	return &order, nil
}

// CreateOrder writes the order row and its item snapshots in one transaction.
func (r *Repository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	statement := r.db.QueryBuilder.Insert("orders").
		Columns("id", "user_id",
			"first_name", "last_name", "email", "phone",
			"street", "city", "state", "postal_code", "country",
			"total_amount", "payment_status", "order_status").
		Values(order.ID, order.UserID,
			order.Address.FirstName, order.Address.LastName, order.Address.Email, order.Address.Phone,
			order.Address.Street, order.Address.City, order.Address.State, order.Address.PostalCode, order.Address.Country,
			order.TotalAmount, order.PaymentStatus, order.OrderStatus).
		Suffix("RETURNING created_at, updated_at")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = tx.QueryRow(ctx, sql, args...).Scan(&order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return nil, err
	}

	items := r.db.QueryBuilder.Insert("order_items").
		Columns("order_id", "product_id", "product_name", "size", "color", "quantity", "unit_price")
	for _, item := range order.Items {
		items = items.Values(order.ID, item.ProductID, item.ProductName,
			item.Size, item.Color, item.Quantity, item.UnitPrice)
	}

	sql, args, err = items.ToSql()
	if err != nil {
		return nil, err
	}

	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return order, nil
}

func (r *Repository) ReadOrder(ctx context.Context, id string) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": id})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order, err := scanOrder(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, err
	}

	order.Items, err = r.listOrderItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *Repository) listOrderItems(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	statement := r.db.QueryBuilder.
		Select("product_id", "product_name", "size", "color", "quantity", "unit_price").
		From("order_items").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.OrderItem, 0)
	for rows.Next() {
		item := domain.OrderItem{}
		err := rows.Scan(
			&item.ProductID,
			&item.ProductName,
			&item.Size,
			&item.Color,
			&item.Quantity,
			&item.UnitPrice,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *Repository) ListOrdersByUser(ctx context.Context, userID uint64) ([]*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.collectOrders(ctx, rows)
}

func (r *Repository) collectOrders(ctx context.Context, rows pgx.Rows) ([]*domain.Order, error) {
	list := make([]*domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	for _, order := range list {
		items, err := r.listOrderItems(ctx, order.ID)
		if err != nil {
			return nil, err
		}
		order.Items = items
	}
	return list, nil
}

func adminOrderWhere(statement sq.SelectBuilder, filter domain.AdminOrderFilter) sq.SelectBuilder {
	if filter.OrderStatus != "" {
		statement = statement.Where(sq.Eq{"order_status": filter.OrderStatus})
	}
	if filter.PaymentStatus != "" {
		statement = statement.Where(sq.Eq{"payment_status": filter.PaymentStatus})
	}
	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		statement = statement.Where(sq.Or{
			sq.Expr("id::text ILIKE ?", pattern),
			sq.Expr("first_name ILIKE ?", pattern),
			sq.Expr("last_name ILIKE ?", pattern),
			sq.Expr("email ILIKE ?", pattern),
			sq.Expr("phone ILIKE ?", pattern),
		})
	}
	return statement
}

func (r *Repository) ListOrders(ctx context.Context, filter domain.AdminOrderFilter) ([]*domain.Order, uint64, error) {
	statement := adminOrderWhere(
		r.db.QueryBuilder.Select(orderColumns...).From("orders"),
		filter,
	).
		OrderBy("created_at DESC").
		Limit(filter.Limit).
		Offset((filter.Page - 1) * filter.Limit)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	list, err := r.collectOrders(ctx, rows)
	if err != nil {
		return nil, 0, err
	}

	countStatement := adminOrderWhere(
		r.db.QueryBuilder.Select("count(1)").From("orders"),
		filter,
	)

	sql, args, err = countStatement.ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total uint64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *Repository) OrderStats(ctx context.Context) (*domain.OrderStats, error) {
	stats := domain.OrderStats{
		ByStatus: make(map[domain.OrderStatus]uint64),
		Revenue:  decimal.Zero,
	}

	rows, err := r.db.Query(ctx,
		"SELECT order_status, count(1) FROM orders GROUP BY order_status")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var status domain.OrderStatus
		var count uint64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		stats.ByStatus[status] = count
		stats.TotalOrders += count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx,
		"SELECT coalesce(sum(total_amount), 0) FROM orders WHERE payment_status = 'paid'").
		Scan(&stats.Revenue)
	if err != nil {
		return nil, err
	}

	return &stats, nil
}

// conditionalUpdate runs a guarded transition and flags a lost race.
func (r *Repository) conditionalUpdate(ctx context.Context, statement sq.UpdateBuilder) error {
	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNoUpdatedData
	}
	return nil
}

func (r *Repository) UpdateOrderStatus(ctx context.Context, id string, from, to domain.OrderStatus) error {
	return r.conditionalUpdate(ctx, r.db.QueryBuilder.Update("orders").
		Set("order_status", to).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "order_status": from}))
}

func (r *Repository) UpdatePaymentStatus(ctx context.Context, id string, from, to domain.PaymentStatus) error {
	return r.conditionalUpdate(ctx, r.db.QueryBuilder.Update("orders").
		Set("payment_status", to).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "payment_status": from}))
}

// SetGatewayOrder binds a gateway order reference exactly once.
func (r *Repository) SetGatewayOrder(ctx context.Context, id, gatewayOrderID string) error {
	return r.conditionalUpdate(ctx, r.db.QueryBuilder.Update("orders").
		Set("gateway_order_id", gatewayOrderID).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{
			"id":               id,
			"payment_status":   domain.PaymentStatusPending,
			"gateway_order_id": "",
		}))
}

// MarkOrderPaid settles the order. The pending guard makes the transition
// single-winner under concurrent verification.
func (r *Repository) MarkOrderPaid(ctx context.Context, id, gatewayPaymentID, gatewaySignature string) error {
	return r.conditionalUpdate(ctx, r.db.QueryBuilder.Update("orders").
		Set("payment_status", domain.PaymentStatusPaid).
		Set("gateway_payment_id", gatewayPaymentID).
		Set("gateway_signature", gatewaySignature).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{
			"id":             id,
			"payment_status": domain.PaymentStatusPending,
		}))
}
