package repos

import (
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx"

	"souq/internal/cart"
	"souq/internal/domain"
)

// CartRepo persists the ordered cart line list per session. The merge logic
// works on full line lists, so writes replace the whole list in one
// transaction — a single writer per mutation, serialized by CartService.
type CartRepo struct{ db *sqlx.DB }

func NewCartRepo(db *sqlx.DB) *CartRepo { return &CartRepo{db: db} }

type cartLineRow struct {
	LineKey          string  `db:"line_key"`
	ProductID        string  `db:"product_id"`
	Title            string  `db:"title"`
	Qty              int     `db:"qty"`
	UnitPrice        float64 `db:"unit_price"`
	Currency         string  `db:"currency"`
	MaxStock         int64   `db:"max_stock"`
	VariantsJSON     string  `db:"variants_json"`
	WarehouseType    string  `db:"warehouse_type"`
	ETAMinDays       int     `db:"eta_min_days"`
	ETAMaxDays       int     `db:"eta_max_days"`
	WarehouseCountry string  `db:"warehouse_country"`
}

// Lines loads the cart in insertion order.
func (r *CartRepo) Lines(sessionID string) ([]cart.Line, error) {
	rows := []cartLineRow{}
	if err := r.db.Select(&rows, `
	  SELECT line_key, product_id, COALESCE(title,'') AS title, qty, unit_price,
	         currency, max_stock, COALESCE(variants_json,'') AS variants_json,
	         warehouse_type, eta_min_days, eta_max_days,
	         COALESCE(warehouse_country,'') AS warehouse_country
	  FROM cart_lines
	  WHERE session_id = ?
	  ORDER BY position
	`, sessionID); err != nil {
		return nil, err
	}

	lines := make([]cart.Line, 0, len(rows))
	for _, row := range rows {
		l := cart.Line{
			LineKey:          row.LineKey,
			ProductID:        row.ProductID,
			Title:            row.Title,
			Quantity:         row.Qty,
			UnitPrice:        row.UnitPrice,
			Currency:         row.Currency,
			MaxStock:         int(row.MaxStock),
			WarehouseType:    domain.FulfillmentType(row.WarehouseType),
			ETAMinDays:       row.ETAMinDays,
			ETAMaxDays:       row.ETAMaxDays,
			WarehouseCountry: row.WarehouseCountry,
		}
		if row.VariantsJSON != "" {
			_ = json.Unmarshal([]byte(row.VariantsJSON), &l.Variants)
		}
		lines = append(lines, l)
	}
	return lines, nil
}

// ReplaceLines writes the full line list, preserving list order as position.
func (r *CartRepo) ReplaceLines(sessionID string, lines []cart.Line) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM cart_lines WHERE session_id = ?`, sessionID); err != nil {
		return err
	}
	now := time.Now().Format(time.RFC3339)
	for i, l := range lines {
		variants := ""
		if len(l.Variants) > 0 {
			b, err := json.Marshal(l.Variants)
			if err != nil {
				return err
			}
			variants = string(b)
		}
		if _, err := tx.Exec(`
			INSERT INTO cart_lines(
			  session_id, line_key, product_id, title, qty, unit_price, currency,
			  max_stock, variants_json, warehouse_type, eta_min_days, eta_max_days,
			  warehouse_country, position, updated_at
			) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)
		`, sessionID, l.LineKey, l.ProductID, l.Title, l.Quantity, l.UnitPrice,
			l.Currency, int64(l.MaxStock), variants, string(l.WarehouseType),
			l.ETAMinDays, l.ETAMaxDays, l.WarehouseCountry, i, now); err != nil {
			return err
		}
	}
	return tx.Commit()
}
