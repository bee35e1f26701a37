package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/Maximuscb/APOS-sub001/src/session/domain/entity"
	"github.com/Maximuscb/APOS-sub001/src/session/domain/port"
)

// SessionCacheSqliteRepository implementa SessionCache sobre el SQLite
// local del terminal. Una fila por usuario: re-cachear pisa la anterior.
type SessionCacheSqliteRepository struct {
	db *sql.DB
}

// NewSessionCacheSqliteRepository crea el repositorio y su tabla si no existe
func NewSessionCacheSqliteRepository(db *sql.DB) (port.SessionCache, error) {
	schema := `
		CREATE TABLE IF NOT EXISTS session_cache (
			user_id         TEXT PRIMARY KEY,
			session_id      TEXT NOT NULL,
			register_id     TEXT NOT NULL,
			register_number INTEGER NOT NULL,
			store_id        TEXT NOT NULL
		)
	`
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("error creating session_cache table: %w", err)
	}

	return &SessionCacheSqliteRepository{db: db}, nil
}

// Get retorna la sesión cacheada del usuario, o (nil, nil) si no hay
func (r *SessionCacheSqliteRepository) Get(ctx context.Context, userID uuid.UUID) (*entity.CachedSession, error) {
	query := `
		SELECT session_id, register_id, register_number, store_id
		FROM session_cache
		WHERE user_id = ?
	`

	var sessionID, registerID, storeID string
	var registerNumber int
	err := r.db.QueryRowContext(ctx, query, userID.String()).Scan(&sessionID, &registerID, &registerNumber, &storeID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading session cache: %w", err)
	}

	cached := &entity.CachedSession{RegisterNumber: registerNumber}
	if cached.SessionID, err = uuid.Parse(sessionID); err != nil {
		return nil, fmt.Errorf("corrupt session cache entry: %w", err)
	}
	if cached.RegisterID, err = uuid.Parse(registerID); err != nil {
		return nil, fmt.Errorf("corrupt session cache entry: %w", err)
	}
	if cached.StoreID, err = uuid.Parse(storeID); err != nil {
		return nil, fmt.Errorf("corrupt session cache entry: %w", err)
	}

	return cached, nil
}

// Put guarda (o pisa) la sesión cacheada del usuario
func (r *SessionCacheSqliteRepository) Put(ctx context.Context, userID uuid.UUID, session entity.CachedSession) error {
	query := `
		INSERT INTO session_cache (user_id, session_id, register_id, register_number, store_id)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			session_id = excluded.session_id,
			register_id = excluded.register_id,
			register_number = excluded.register_number,
			store_id = excluded.store_id
	`

	_, err := r.db.ExecContext(ctx, query,
		userID.String(),
		session.SessionID.String(),
		session.RegisterID.String(),
		session.RegisterNumber,
		session.StoreID.String(),
	)
	if err != nil {
		return fmt.Errorf("error writing session cache: %w", err)
	}

	return nil
}

// Delete invalida la entrada del usuario (no falla si no existe)
func (r *SessionCacheSqliteRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM session_cache WHERE user_id = ?`, userID.String())
	if err != nil {
		return fmt.Errorf("error deleting session cache: %w", err)
	}
	return nil
}
