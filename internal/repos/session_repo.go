package repos

import (
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
)

type SessionRepo struct{ db *sqlx.DB }

func NewSessionRepo(db *sqlx.DB) *SessionRepo { return &SessionRepo{db: db} }

// Ensure creates the session row if it does not exist yet.
func (r *SessionRepo) Ensure(sessionID string) error {
	_, err := r.db.Exec(`
		INSERT INTO sessions(id, updated_at) VALUES(?, ?)
		ON CONFLICT(id) DO NOTHING
	`, sessionID, time.Now().Format(time.RFC3339))
	return err
}

// Country returns the shopper's selected country code, "SA" when the session
// has never picked one.
func (r *SessionRepo) Country(sessionID string) (string, error) {
	var country string
	err := r.db.Get(&country, `SELECT country FROM sessions WHERE id = ?`, sessionID)
	if err == sql.ErrNoRows {
		return "SA", nil
	}
	if err != nil {
		return "", err
	}
	return country, nil
}

func (r *SessionRepo) SetCountry(sessionID, country string) error {
	if err := r.Ensure(sessionID); err != nil {
		return err
	}
	_, err := r.db.Exec(`UPDATE sessions SET country = ?, updated_at = ? WHERE id = ?`,
		country, time.Now().Format(time.RFC3339), sessionID)
	return err
}
