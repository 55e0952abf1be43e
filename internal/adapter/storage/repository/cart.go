package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/Ritik6475/ecommerce-prashant-backend/internal/core/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func (r *Repository) ListCartItems(ctx context.Context, userID uint64) ([]*domain.CartItem, error) {
	statement := r.db.QueryBuilder.
		Select("c.id", "c.user_id", "c.product_id", "c.size", "c.color", "c.quantity",
			"p.name", "p.brand", "p.slug", "p.images", "p.price", "p.offerprice", "p.stock").
		From("cart_items c").
		Join("products p ON p.id = c.product_id").
		Where(sq.Eq{"c.user_id": userID}).
		OrderBy("c.id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.CartItem, 0)
	for rows.Next() {
		item := domain.CartItem{Product: &domain.Product{}}
		err := rows.Scan(
			&item.ID,
			&item.UserID,
			&item.ProductID,
			&item.Size,
			&item.Color,
			&item.Quantity,
			&item.Product.Name,
			&item.Product.Brand,
			&item.Product.Slug,
			&item.Product.Images,
			&item.Product.Price,
			&item.Product.OfferPrice,
			&item.Product.Stock,
		)
		if err != nil {
			return nil, err
		}
		item.Product.ID = item.ProductID
		list = append(list, &item)
	}

	return list, rows.Err()
}

// UpsertCartItem adds a line or bumps the quantity of the matching variant.
func (r *Repository) UpsertCartItem(ctx context.Context, item *domain.CartItem) error {
	statement := r.db.QueryBuilder.Insert("cart_items").
		Columns("user_id", "product_id", "size", "color", "quantity").
		Values(item.UserID, item.ProductID, item.Size, item.Color, item.Quantity).
		Suffix("ON CONFLICT (user_id, product_id, size, color) DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity")

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *Repository) UpdateCartItemQuantity(ctx context.Context, userID, itemID uint64, quantity uint32) error {
	statement := r.db.QueryBuilder.Update("cart_items").
		Set("quantity", quantity).
		Where(sq.Eq{"id": itemID, "user_id": userID})

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

func (r *Repository) DeleteCartItem(ctx context.Context, userID, itemID uint64) error {
	statement := r.db.QueryBuilder.Delete("cart_items").
		Where(sq.Eq{"id": itemID, "user_id": userID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *Repository) ClearCart(ctx context.Context, userID uint64) error {
	statement := r.db.QueryBuilder.Delete("cart_items").
		Where(sq.Eq{"user_id": userID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *Repository) ListWishlist(ctx context.Context, userID uint64) ([]*domain.Product, error) {
	statement := r.db.QueryBuilder.
		Select(productColumnsPrefixed("p")...).
		From("wishlist_items w").
		Join("products p ON p.id = w.product_id").
		Where(sq.Eq{"w.user_id": userID}).
		OrderBy("w.created_at DESC")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProducts(rows)
}

func (r *Repository) InWishlist(ctx context.Context, userID, productID uint64) (bool, error) {
	statement := r.db.QueryBuilder.
		Select("count(1)").
		From("wishlist_items").
		Where(sq.Eq{"user_id": userID, "product_id": productID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return false, err
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) AddWishlistItem(ctx context.Context, userID, productID uint64) error {
	statement := r.db.QueryBuilder.Insert("wishlist_items").
		Columns("user_id", "product_id").
		Values(userID, productID)

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrConflictingData
		}
		return err
	}
	return nil
}

func (r *Repository) RemoveWishlistItem(ctx context.Context, userID, productID uint64) error {
	statement := r.db.QueryBuilder.Delete("wishlist_items").
		Where(sq.Eq{"user_id": userID, "product_id": productID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
