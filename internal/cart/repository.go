package cart

import (
	"context"
	"database/sql"

	"feastly-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	IncrementItem(ctx context.Context, userID uint, itemID string) error
	DecrementItem(ctx context.Context, userID uint, itemID string) error
	GetCart(ctx context.Context, userID uint) (CartData, error)
	ClearCart(ctx context.Context, userID uint) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// IncrementItem adds one unit of the item to the user's cart, creating the
// row at quantity 1 when absent. The upsert touches exactly one row, so
// concurrent adds from multiple devices settle on per-row atomicity.
func (r *repository) IncrementItem(ctx context.Context, userID uint, itemID string) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "IncrementItem"),
		zap.Uint("user_id", userID),
		zap.String("item_id", itemID),
	)

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO carts (user_id, item_id, quantity)
		VALUES ($1, $2, 1)
		ON CONFLICT (user_id, item_id)
		DO UPDATE SET quantity = carts.quantity + 1, updated_at = NOW()
	`, userID, itemID)
	if err != nil {
		log.Error("failed to increment cart item", zap.Error(err))
		return err
	}

	return nil
}

// DecrementItem lowers the quantity by one and deletes the row once it hits
// zero. A missing row is a no-op, matching the storefront's remove contract.
func (r *repository) DecrementItem(ctx context.Context, userID uint, itemID string) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "DecrementItem"),
		zap.Uint("user_id", userID),
		zap.String("item_id", itemID),
	)

	_, err := r.db.ExecContext(ctx, `
		UPDATE carts
		SET quantity = quantity - 1, updated_at = NOW()
		WHERE user_id = $1 AND item_id = $2
	`, userID, itemID)
	if err != nil {
		log.Error("failed to decrement cart item", zap.Error(err))
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		DELETE FROM carts
		WHERE user_id = $1 AND item_id = $2 AND quantity <= 0
	`, userID, itemID)
	if err != nil {
		log.Error("failed to clean up empty cart row", zap.Error(err))
		return err
	}

	return nil
}

func (r *repository) GetCart(ctx context.Context, userID uint) (CartData, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT item_id, quantity
		FROM carts
		WHERE user_id = $1 AND quantity > 0
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	data := make(CartData)
	for rows.Next() {
		var itemID string
		var qty int
		if err := rows.Scan(&itemID, &qty); err != nil {
			return nil, err
		}
		data[itemID] = qty
	}

	return data, rows.Err()
}

func (r *repository) ClearCart(ctx context.Context, userID uint) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM carts WHERE user_id = $1`, userID)
	return err
}
