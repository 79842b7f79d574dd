package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"

	"github.com/nikolayk812/cart-engine/internal/domain"
	"github.com/nikolayk812/cart-engine/internal/port"
)

// db is satisfied by both *pgxpool.Pool and pgx.Tx, so the repository can
// join a caller-managed transaction.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type snapshotRepository struct {
	db db
}

func NewSnapshot(pool *pgxpool.Pool) (port.SnapshotRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}

	return &snapshotRepository{db: pool}, nil
}

func NewSnapshotWithTx(tx pgx.Tx) port.SnapshotRepository {
	return &snapshotRepository{db: tx}
}

// snapshotItem is the stored JSON shape of one line item.
type snapshotItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Currency  string          `json:"currency"`
	Image     string          `json:"image"`
	Size      string          `json:"size"`
	Color     string          `json:"color,omitempty"`
	Quantity  int64           `json:"quantity"`
}

func (r *snapshotRepository) Load(ctx context.Context, ownerID string) ([]domain.LineItem, bool, error) {
	if ownerID == "" {
		return nil, false, fmt.Errorf("ownerID is empty")
	}

	var raw []byte
	err := r.db.QueryRow(ctx,
		`SELECT items FROM cart_snapshots WHERE owner_id = $1`,
		ownerID).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("db.QueryRow: %w", err)
	}

	items, err := mapSnapshotToDomain(raw)
	if err != nil {
		// Malformed content is "no cart", not an error to surface.
		return nil, false, nil
	}

	return items, true, nil
}

func (r *snapshotRepository) Save(ctx context.Context, ownerID string, items []domain.LineItem) error {
	if ownerID == "" {
		return fmt.Errorf("ownerID is empty")
	}

	raw, err := json.Marshal(mapDomainToSnapshot(items))
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO cart_snapshots (owner_id, items)
		 VALUES ($1, $2)
		 ON CONFLICT (owner_id) DO UPDATE
		 SET items = EXCLUDED.items, updated_at = now()`,
		ownerID, raw)
	if err != nil {
		return fmt.Errorf("db.Exec: %w", err)
	}

	return nil
}

func (r *snapshotRepository) Delete(ctx context.Context, ownerID string) (bool, error) {
	if ownerID == "" {
		return false, fmt.Errorf("ownerID is empty")
	}

	tag, err := r.db.Exec(ctx,
		`DELETE FROM cart_snapshots WHERE owner_id = $1`, ownerID)
	if err != nil {
		return false, fmt.Errorf("db.Exec: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func mapDomainToSnapshot(items []domain.LineItem) []snapshotItem {
	out := make([]snapshotItem, 0, len(items))
	for _, item := range items {
		out = append(out, snapshotItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice.Amount,
			Currency:  item.UnitPrice.Currency.String(),
			Image:     item.Image,
			Size:      item.Size,
			Color:     item.Color,
			Quantity:  item.Quantity,
		})
	}

	return out
}

func mapSnapshotToDomain(raw []byte) ([]domain.LineItem, error) {
	var rows []snapshotItem
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("json.Unmarshal: %w", err)
	}

	var items []domain.LineItem
	for _, row := range rows {
		parsedCurrency, err := currency.ParseISO(row.Currency)
		if err != nil {
			return nil, fmt.Errorf("currency[%s] is not valid: %w", row.Currency, err)
		}
		if row.ProductID == "" || row.Quantity < 1 {
			return nil, fmt.Errorf("snapshot item is malformed")
		}

		items = append(items, domain.LineItem{
			ProductID: row.ProductID,
			Name:      row.Name,
			UnitPrice: domain.Money{Amount: row.UnitPrice, Currency: parsedCurrency},
			Image:     row.Image,
			Size:      row.Size,
			Color:     row.Color,
			Quantity:  row.Quantity,
		})
	}

	return items, nil
}
