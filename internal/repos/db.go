package repos

import (
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// OpenDB opens the shopper-state database and bootstraps its schema. The
// catalog itself lives behind the remote listing API; only shopper state
// (cart lines, wishlist, country selection) is stored here.
func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Shopper sessions: one row per sid cookie, holds the country selection
CREATE TABLE IF NOT EXISTS sessions(
  id TEXT PRIMARY KEY,
  country TEXT NOT NULL DEFAULT 'SA',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);

-- Cart lines, ordered by insertion (position)
CREATE TABLE IF NOT EXISTS cart_lines(
  session_id TEXT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
  line_key TEXT NOT NULL,
  product_id TEXT NOT NULL,
  title TEXT,
  qty INTEGER NOT NULL CHECK (qty >= 1),
  unit_price NUMERIC NOT NULL,
  currency TEXT NOT NULL,
  max_stock INTEGER NOT NULL,
  variants_json TEXT,
  warehouse_type TEXT NOT NULL,
  eta_min_days INTEGER NOT NULL DEFAULT 0,
  eta_max_days INTEGER NOT NULL DEFAULT 0,
  warehouse_country TEXT,
  position INTEGER NOT NULL,
  updated_at TEXT,
  PRIMARY KEY(session_id, line_key)
);
CREATE INDEX IF NOT EXISTS idx_cart_lines_session ON cart_lines(session_id, position);

-- Wishlist
CREATE TABLE IF NOT EXISTS wishlist_items(
  session_id TEXT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
  product_id TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  PRIMARY KEY(session_id, product_id)
);
`
	_, err := db.Exec(schema)
	return err
}
