package database

import (
	"database/sql"
	"fmt"

	"github.com/themonkeyd/devmeetingbot/internal/domain/contract"
	"github.com/themonkeyd/devmeetingbot/internal/domain/entity"
)

// stateRepository implements contract.StateStore over sqlite. The persisted
// shape mirrors the legacy JSON file: random_tours and history as key/value
// tables, cycle_count in a single-row meta table.
type stateRepository struct {
	db *DB
}

func NewStateRepo(db *DB) contract.StateStore {
	return &stateRepository{db: db}
}

func (r *stateRepository) Load() (*entity.State, error) {
	state := entity.NewState()

	if err := loadKeyValues(r.db.conn, "random_tours", "tour_key", "participant", state.RandomTours); err != nil {
		return nil, err
	}
	if err := loadKeyValues(r.db.conn, "history", "entry_key", "value", state.History); err != nil {
		return nil, err
	}

	err := r.db.conn.QueryRow(`SELECT cycle_count FROM rotation_meta WHERE id = 1`).Scan(&state.CycleCount)
	if err == sql.ErrNoRows {
		state.CycleCount = 0
		return state, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cycle count: %w", err)
	}

	return state, nil
}

// Save overwrites the full state in a single transaction, so a crash never
// leaves a partially-written state behind.
func (r *stateRepository) Save(state *entity.State) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := saveAll(tx, state); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}

func (r *stateRepository) Close() error {
	return r.db.Close()
}

func saveAll(tx dbConn, state *entity.State) error {
	if _, err := tx.Exec(`DELETE FROM random_tours`); err != nil {
		return fmt.Errorf("failed to clear random tours: %w", err)
	}
	for key, participant := range state.RandomTours {
		if _, err := tx.Exec(`INSERT INTO random_tours (tour_key, participant) VALUES (?, ?)`, key, participant); err != nil {
			return fmt.Errorf("failed to insert random tour %s: %w", key, err)
		}
	}

	if _, err := tx.Exec(`DELETE FROM history`); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	for key, value := range state.History {
		if _, err := tx.Exec(`INSERT INTO history (entry_key, value) VALUES (?, ?)`, key, value); err != nil {
			return fmt.Errorf("failed to insert history entry %s: %w", key, err)
		}
	}

	query := `
		INSERT INTO rotation_meta (id, cycle_count) VALUES (1, ?)
		ON CONFLICT (id) DO UPDATE SET cycle_count = excluded.cycle_count
	`
	if _, err := tx.Exec(query, state.CycleCount); err != nil {
		return fmt.Errorf("failed to save cycle count: %w", err)
	}

	return nil
}

func loadKeyValues(db dbConn, table, keyCol, valueCol string, out map[string]string) error {
	rows, err := db.Query(fmt.Sprintf(`SELECT %s, %s FROM %s`, keyCol, valueCol, table))
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return fmt.Errorf("failed to scan %s row: %w", table, err)
		}
		out[key] = value
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate %s rows: %w", table, err)
	}

	return nil
}
