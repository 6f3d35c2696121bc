package repos

import (
	"time"

	"github.com/jmoiron/sqlx"
)

type WishlistRepo struct{ db *sqlx.DB }

func NewWishlistRepo(db *sqlx.DB) *WishlistRepo { return &WishlistRepo{db: db} }

type WishlistRow struct {
	ProductID string `db:"product_id"`
	CreatedAt string `db:"created_at"`
}

func (r *WishlistRepo) Add(sessionID, productID string) error {
	_, err := r.db.Exec(`
		INSERT INTO wishlist_items(session_id, product_id, created_at)
		VALUES(?,?,?)
		ON CONFLICT(session_id, product_id) DO NOTHING
	`, sessionID, productID, time.Now().Format(time.RFC3339))
	return err
}

func (r *WishlistRepo) Remove(sessionID, productID string) error {
	_, err := r.db.Exec(`
		DELETE FROM wishlist_items WHERE session_id = ? AND product_id = ?
	`, sessionID, productID)
	return err
}

func (r *WishlistRepo) List(sessionID string) ([]WishlistRow, error) {
	rows := []WishlistRow{}
	err := r.db.Select(&rows, `
		SELECT product_id, COALESCE(created_at,'') AS created_at
		FROM wishlist_items
		WHERE session_id = ?
		ORDER BY created_at
	`, sessionID)
	return rows, err
}
