package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/shop-service/internal/domain"
)

// ProductRepository encapsulates product persistence.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	CountByCategory(ctx context.Context, category string) (int, error)
	DeleteAll(ctx context.Context) error
}

type productRepository struct {
	pool *pgxpool.Pool
}

// NewProductRepository instantiates repository.
func NewProductRepository(pool *pgxpool.Pool) ProductRepository {
	return &productRepository{pool: pool}
}

const productColumns = `id, name, description, price, original_price, discount_price, category, images, stock,
                    colors, sizes, brand, rating, num_reviews, is_featured, status, created_at`

func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	normalizeProduct(product)
	const query = `
        INSERT INTO products (id, name, description, price, original_price, discount_price, category, images, stock,
            colors, sizes, brand, rating, num_reviews, is_featured, status)
        VALUES (COALESCE(NULLIF($1, ''), gen_random_uuid()::text), $2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
        RETURNING id, created_at`
	err := r.pool.QueryRow(ctx, query,
		product.ID,
		product.Name,
		product.Description,
		product.Price,
		product.OriginalPrice,
		product.DiscountPrice,
		product.Category,
		product.Images,
		product.Stock,
		product.Colors,
		product.Sizes,
		product.Brand,
		product.Rating,
		product.NumReviews,
		product.IsFeatured,
		product.Status,
	).Scan(&product.ID, &product.CreatedAt)
	return translate(err)
}

func (r *productRepository) Update(ctx context.Context, product *domain.Product) error {
	normalizeProduct(product)
	const query = `
        UPDATE products SET name=$1, description=$2, price=$3, original_price=$4, discount_price=$5, category=$6,
            images=$7, stock=$8, colors=$9, sizes=$10, brand=$11, rating=$12, num_reviews=$13, is_featured=$14, status=$15
        WHERE id=$16`
	cmd, err := r.pool.Exec(ctx, query,
		product.Name,
		product.Description,
		product.Price,
		product.OriginalPrice,
		product.DiscountPrice,
		product.Category,
		product.Images,
		product.Stock,
		product.Colors,
		product.Sizes,
		product.Brand,
		product.Rating,
		product.NumReviews,
		product.IsFeatured,
		product.Status,
		product.ID,
	)
	if err != nil {
		return translate(err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id=$1`
	return scanProduct(r.pool.QueryRow(ctx, query, id))
}

func (r *productRepository) List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	clauses := []string{"1=1"}
	args := []any{}

	if filter.Category != "" {
		args = append(args, filter.Category)
		clauses = append(clauses, fmt.Sprintf("category=$%d", len(args)))
	}
	if filter.MinPrice != nil {
		args = append(args, *filter.MinPrice)
		clauses = append(clauses, fmt.Sprintf("price >= $%d", len(args)))
	}
	if filter.MaxPrice != nil {
		args = append(args, *filter.MaxPrice)
		clauses = append(clauses, fmt.Sprintf("price <= $%d", len(args)))
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		args = append(args, "%"+strings.ToLower(search)+"%")
		placeholder := fmt.Sprintf("$%d", len(args))
		clauses = append(clauses, fmt.Sprintf("(LOWER(name) LIKE %s OR LOWER(description) LIKE %s)", placeholder, placeholder))
	}

	orderBy := "created_at DESC"
	switch filter.Sort {
	case domain.SortPriceAsc:
		orderBy = "price ASC, created_at DESC"
	case domain.SortPriceDesc:
		orderBy = "price DESC, created_at DESC"
	}

	query := fmt.Sprintf(`SELECT %s FROM products WHERE %s ORDER BY %s`,
		productColumns, strings.Join(clauses, " AND "), orderBy)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *product)
	}
	return products, rows.Err()
}

func (r *productRepository) CountByCategory(ctx context.Context, category string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE LOWER(category)=LOWER($1)`, category).Scan(&count)
	return count, err
}

func (r *productRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM products`)
	return err
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.OriginalPrice,
		&p.DiscountPrice,
		&p.Category,
		&p.Images,
		&p.Stock,
		&p.Colors,
		&p.Sizes,
		&p.Brand,
		&p.Rating,
		&p.NumReviews,
		&p.IsFeatured,
		&p.Status,
		&p.CreatedAt,
	); err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func normalizeProduct(p *domain.Product) {
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Colors == nil {
		p.Colors = []string{}
	}
	if p.Sizes == nil {
		p.Sizes = []string{}
	}
	if p.Status == "" {
		p.Status = "active"
	}
}
