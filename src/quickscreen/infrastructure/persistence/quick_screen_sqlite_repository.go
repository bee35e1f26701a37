package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/Maximuscb/APOS-sub001/src/quickscreen/domain/entity"
	"github.com/Maximuscb/APOS-sub001/src/quickscreen/domain/port"
)

// QuickScreenSqliteRepository guarda la lista de pantallas como un blob
// JSON por usuario en el SQLite local. Lectura y escritura son siempre de
// la lista entera; al ser un store single-user no hace falta locking
// parcial.
type QuickScreenSqliteRepository struct {
	db *sql.DB
}

// NewQuickScreenSqliteRepository crea el repositorio y su tabla si no existe
func NewQuickScreenSqliteRepository(db *sql.DB) (port.QuickScreenRepository, error) {
	schema := `
		CREATE TABLE IF NOT EXISTS quick_screens (
			user_id TEXT PRIMARY KEY,
			screens TEXT NOT NULL
		)
	`
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("error creating quick_screens table: %w", err)
	}

	return &QuickScreenSqliteRepository{db: db}, nil
}

// Load retorna la lista guardada, (nil, nil) si no hay, o
// entity.ErrCorruptScreens si el blob no deserializa
func (r *QuickScreenSqliteRepository) Load(ctx context.Context, userID uuid.UUID) ([]entity.QuickScreen, error) {
	var raw string
	err := r.db.QueryRowContext(ctx,
		`SELECT screens FROM quick_screens WHERE user_id = ?`, userID.String(),
	).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading quick screens: %w", err)
	}

	var screens []entity.QuickScreen
	if err := json.Unmarshal([]byte(raw), &screens); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrCorruptScreens, err)
	}
	return screens, nil
}

// Save serializa y pisa la lista entera del usuario
func (r *QuickScreenSqliteRepository) Save(ctx context.Context, userID uuid.UUID, screens []entity.QuickScreen) error {
	raw, err := json.Marshal(screens)
	if err != nil {
		return fmt.Errorf("error marshalling quick screens: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO quick_screens (user_id, screens)
		VALUES (?, ?)
		ON CONFLICT(user_id) DO UPDATE SET screens = excluded.screens
	`, userID.String(), string(raw))
	if err != nil {
		return fmt.Errorf("error writing quick screens: %w", err)
	}
	return nil
}
