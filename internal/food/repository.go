package food

import (
	"context"
	"database/sql"
	"time"

	"feastly-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, params CreateFoodParams, image string) (*FoodItem, error)
	List(ctx context.Context) ([]FoodItem, error)
	GetByID(ctx context.Context, id string) (*FoodItem, error)
	Update(ctx context.Context, params UpdateFoodParams) (*FoodItem, error)
	Delete(ctx context.Context, id string) error
	ListByIDs(ctx context.Context, ids []string) ([]FoodItem, error)
	PricesByIDs(ctx context.Context, ids []string) (map[string]float64, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const foodColumns = `id, name, description, price, category, image, stock, created_at, updated_at`

func scanFood(row interface{ Scan(dest ...any) error }) (*FoodItem, error) {
	var f FoodItem
	err := row.Scan(
		&f.ID,
		&f.Name,
		&f.Description,
		&f.Price,
		&f.Category,
		&f.Image,
		&f.Stock,
		&f.CreatedAt,
		&f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *repository) Create(ctx context.Context, params CreateFoodParams, image string) (*FoodItem, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateFood"),
		zap.String("name", params.Name),
	)

	query := `
	INSERT INTO foods (name, description, price, category, image, stock)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING ` + foodColumns

	f, err := scanFood(r.db.QueryRowContext(
		ctx,
		query,
		params.Name,
		params.Description,
		params.Price,
		params.Category,
		image,
		params.Stock,
	))
	if err != nil {
		log.Error("failed to create food item", zap.Error(err))
		return nil, err
	}

	log.Info("success create food item", zap.String("food_id", f.ID))
	return f, nil
}

func (r *repository) List(ctx context.Context) ([]FoodItem, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListFoods"),
	)

	start := time.Now()

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+foodColumns+` FROM foods ORDER BY created_at DESC`)
	if err != nil {
		log.Error("query failed", zap.Error(err), zap.Duration("duration", time.Since(start)))
		return nil, err
	}
	defer rows.Close()

	items := make([]FoodItem, 0)
	for rows.Next() {
		f, err := scanFood(rows)
		if err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		items = append(items, *f)
	}
	if err := rows.Err(); err != nil {
		log.Error("rows iteration failed", zap.Error(err))
		return nil, err
	}

	log.Debug("query success",
		zap.Int("rows", len(items)),
		zap.Duration("duration", time.Since(start)),
	)

	return items, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*FoodItem, error) {
	f, err := scanFood(r.db.QueryRowContext(ctx,
		`SELECT `+foodColumns+` FROM foods WHERE id = $1`, id))

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return f, nil
}

func (r *repository) Update(ctx context.Context, params UpdateFoodParams) (*FoodItem, error) {
	query := `
	UPDATE foods
	SET name = COALESCE($1, name),
	    description = COALESCE($2, description),
	    price = COALESCE($3, price),
	    category = COALESCE($4, category),
	    image = COALESCE($5, image),
	    stock = COALESCE($6, stock),
	    updated_at = NOW()
	WHERE id = $7
	RETURNING ` + foodColumns

	f, err := scanFood(r.db.QueryRowContext(
		ctx,
		query,
		params.Name,
		params.Description,
		params.Price,
		params.Category,
		params.Image,
		params.Stock,
		params.ID,
	))

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return f, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM foods WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrFoodNotFound
	}

	return nil
}

// ListByIDs loads the catalog rows for the given ids. Ids no longer present
// in the catalog are silently skipped; callers treat them as gone.
func (r *repository) ListByIDs(ctx context.Context, ids []string) ([]FoodItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+foodColumns+` FROM foods WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]FoodItem, 0, len(ids))
	for rows.Next() {
		f, err := scanFood(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *f)
	}

	return items, rows.Err()
}

// PricesByIDs resolves current catalog prices for the given item ids. Ids
// missing from the catalog are simply absent from the result.
func (r *repository) PricesByIDs(ctx context.Context, ids []string) (map[string]float64, error) {
	prices := make(map[string]float64, len(ids))
	if len(ids) == 0 {
		return prices, nil
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, price FROM foods WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		var price float64
		if err := rows.Scan(&id, &price); err != nil {
			return nil, err
		}
		prices[id] = price
	}

	return prices, rows.Err()
}
