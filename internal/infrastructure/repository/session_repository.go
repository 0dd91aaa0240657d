package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"locadora/internal/application/session"
	"locadora/internal/domain/identity"
	"locadora/internal/infrastructure/database"
)

// The two persisted keys mirror the browser client this replaces, which kept
// the same pair in localStorage.
const (
	keyToken       = "token"
	keyCurrentUser = "currentUser"
)

type sessionRepository struct {
	db *database.DB
}

// NewSessionRepository creates the sqlite-backed session persistence
func NewSessionRepository(db *database.DB) session.Repository {
	return &sessionRepository{db: db}
}

// Save writes the token and identity in one transaction so a crash cannot
// leave one without the other.
func (r *sessionRepository) Save(token string, id identity.Identity) error {
	data, err := json.Marshal(id)
	if err != nil {
		return fmt.Errorf("encode identity: %w", err)
	}

	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	upsert := `INSERT INTO session_state (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`

	if _, err := tx.Exec(upsert, keyToken, token); err != nil {
		return err
	}
	if _, err := tx.Exec(upsert, keyCurrentUser, string(data)); err != nil {
		return err
	}

	return tx.Commit()
}

// Load reads the persisted pair. A missing key or an undecodable identity is
// reported as session.ErrSessionNotFound so the caller treats it as absent
// state rather than failing startup.
func (r *sessionRepository) Load() (string, identity.Identity, error) {
	token, err := r.value(keyToken)
	if err != nil {
		return "", identity.Identity{}, err
	}

	raw, err := r.value(keyCurrentUser)
	if err != nil {
		return "", identity.Identity{}, err
	}

	var id identity.Identity
	if err := json.Unmarshal([]byte(raw), &id); err != nil {
		return "", identity.Identity{}, session.ErrSessionNotFound
	}

	return token, id, nil
}

// Clear removes both keys; clearing an empty store is not an error
func (r *sessionRepository) Clear() error {
	_, err := r.db.Exec(`DELETE FROM session_state WHERE key IN (?, ?)`, keyToken, keyCurrentUser)
	return err
}

func (r *sessionRepository) value(key string) (string, error) {
	var value string
	err := r.db.QueryRow(`SELECT value FROM session_state WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", session.ErrSessionNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}
