package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/Ritik6475/ecommerce-prashant-backend/internal/core/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var productColumns = []string{
	"id", "name", "brand", "slug", "images", "sizes", "colors",
	"description", "gender", "category", "subcategory", "occasion",
	"price", "offerprice", "rating", "review_count", "stock",
	"created_at", "updated_at",
}

func productColumnsPrefixed(alias string) []string {
	cols := make([]string, len(productColumns))
	for i, c := range productColumns {
		cols[i] = alias + "." + c
	}
	return cols
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	product := domain.Product{}
	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Brand,
		&product.Slug,
		&product.Images,
		&product.Sizes,
		&product.Colors,
		&product.Description,
		&product.Gender,
		&product.Category,
		&product.Subcategory,
		&product.Occasion,
		&product.Price,
		&product.OfferPrice,
		&product.Rating,
		&product.ReviewCount,
		&product.Stock,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}
	return &product, nil
}

func scanProducts(rows pgx.Rows) ([]*domain.Product, error) {
	list := make([]*domain.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, product)
	}
	return list, rows.Err()
}

func (r *Repository) GetProductByID(ctx context.Context, id uint64) (*domain.Product, error) {
	return r.getProduct(ctx, sq.Eq{"id": id})
}

func (r *Repository) GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	return r.getProduct(ctx, sq.Eq{"slug": slug})
}

func (r *Repository) getProduct(ctx context.Context, where sq.Eq) (*domain.Product, error) {
	statement := r.db.QueryBuilder.
		Select(productColumns...).
		From("products").
		Where(where)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	return scanProduct(r.db.QueryRow(ctx, sql, args...))
}

// productWhere translates a catalog filter into squirrel predicates shared by
// the listing and the count query.
func productWhere(statement sq.SelectBuilder, filter domain.ProductFilter) sq.SelectBuilder {
	if filter.Gender != "" {
		statement = statement.Where(sq.Expr("gender ILIKE ?", filter.Gender))
	}
	if filter.Category != "" {
		statement = statement.Where(sq.Expr("category ILIKE ?", filter.Category))
	}
	if filter.Subcategory != "" {
		statement = statement.Where(sq.Expr("subcategory ILIKE ?", filter.Subcategory))
	}
	if filter.Occasion != "" {
		statement = statement.Where(sq.Expr("occasion ILIKE ?", filter.Occasion))
	}
	if filter.Brand != "" {
		statement = statement.Where(sq.Expr("brand ILIKE ?", filter.Brand))
	}
	if len(filter.Sizes) > 0 {
		statement = statement.Where(sq.Expr("sizes && ?", filter.Sizes))
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		statement = statement.Where(sq.Or{
			sq.Expr("name ILIKE ?", pattern),
			sq.Expr("brand ILIKE ?", pattern),
			sq.Expr("category ILIKE ?", pattern),
			sq.Expr("description ILIKE ?", pattern),
		})
	}
	// Range filters apply to the effective price, offer first.
	if filter.MinPrice != nil {
		statement = statement.Where(sq.Expr("coalesce(nullif(offerprice, 0), price) >= ?", *filter.MinPrice))
	}
	if filter.MaxPrice != nil {
		statement = statement.Where(sq.Expr("coalesce(nullif(offerprice, 0), price) <= ?", *filter.MaxPrice))
	}
	return statement
}

func productOrder(sort string) string {
	switch sort {
	case "price-low":
		return "coalesce(nullif(offerprice, 0), price) ASC"
	case "price-high":
		return "coalesce(nullif(offerprice, 0), price) DESC"
	case "rating":
		return "rating DESC"
	default:
		return "created_at DESC"
	}
}

func (r *Repository) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, uint64, error) {
	statement := productWhere(
		r.db.QueryBuilder.Select(productColumns...).From("products"),
		filter,
	).
		OrderBy(productOrder(filter.Sort)).
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

	list, err := scanProducts(rows)
	if err != nil {
		return nil, 0, err
	}

	countStatement := productWhere(
		r.db.QueryBuilder.Select("count(1)").From("products"),
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

func (r *Repository) ListFilterOptions(ctx context.Context) (*domain.FilterOptions, error) {
	options := domain.FilterOptions{}

	distinct := func(column string, dest *[]string) error {
		sql := fmt.Sprintf(
			"SELECT DISTINCT %s FROM products WHERE %s <> '' ORDER BY %s",
			column, column, column,
		)
		rows, err := r.db.Query(ctx, sql)
		if err != nil {
			return err
		}
		defer rows.Close()

		values := make([]string, 0)
		for rows.Next() {
			var v string
			if err := rows.Scan(&v); err != nil {
				return err
			}
			values = append(values, v)
		}
		*dest = values
		return rows.Err()
	}

	if err := distinct("category", &options.Categories); err != nil {
		return nil, err
	}
	if err := distinct("subcategory", &options.Subcategories); err != nil {
		return nil, err
	}
	if err := distinct("brand", &options.Brands); err != nil {
		return nil, err
	}
	if err := distinct("gender", &options.Genders); err != nil {
		return nil, err
	}
	if err := distinct("occasion", &options.Occasions); err != nil {
		return nil, err
	}

	// Sizes live in an array column and need unnesting.
	rows, err := r.db.Query(ctx, "SELECT DISTINCT unnest(sizes) AS size FROM products ORDER BY size")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sizes := make([]string, 0)
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		sizes = append(sizes, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	options.Sizes = sizes

	return &options, nil
}

// CreateReview inserts the review and refreshes the product's aggregate
// rating in the same transaction.
func (r *Repository) CreateReview(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	statement := r.db.QueryBuilder.Insert("reviews").
		Columns("user_id", "product_id", "rating", "comment").
		Values(review.UserID, review.ProductID, review.Rating, review.Comment).
		Suffix("RETURNING id, created_at")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = tx.QueryRow(ctx, sql, args...).Scan(&review.ID, &review.CreatedAt)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}

	_, err = tx.Exec(ctx, `
		UPDATE products p SET
			rating = agg.rating,
			review_count = agg.review_count,
			updated_at = now()
		FROM (
			SELECT avg(rating) AS rating, count(1) AS review_count
			FROM reviews WHERE product_id = $1
		) agg
		WHERE p.id = $1`, review.ProductID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return review, nil
}

func (r *Repository) ListReviewsByProduct(ctx context.Context, productID uint64) ([]*domain.Review, error) {
	statement := r.db.QueryBuilder.
		Select("r.id", "r.user_id", "r.product_id", "r.rating", "r.comment",
			"u.name", "coalesce(u.avatar, '')", "r.created_at").
		From("reviews r").
		Join("users u ON u.id = r.user_id").
		Where(sq.Eq{"r.product_id": productID}).
		OrderBy("r.created_at DESC")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Review, 0)
	for rows.Next() {
		review := domain.Review{}
		err := rows.Scan(
			&review.ID,
			&review.UserID,
			&review.ProductID,
			&review.Rating,
			&review.Comment,
			&review.UserName,
			&review.Avatar,
			&review.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &review)
	}

	return list, rows.Err()
}
