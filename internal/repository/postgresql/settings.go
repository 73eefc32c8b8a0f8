package postgresql

import (
	"context"
	"fmt"

	"github.com/workstream-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/workstream-hr/payroll-backend-go/internal/pkg/database"
)

type settingsRepository struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) payroll.SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) ListSettings(ctx context.Context) ([]payroll.Setting, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT key, value, updated_at
		FROM payroll_settings
		ORDER BY key
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll settings: %w", err)
	}
	defer rows.Close()

	var settings []payroll.Setting
	for rows.Next() {
		var s payroll.Setting
		if err := rows.Scan(&s.Key, &s.Value, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan payroll setting: %w", err)
		}
		settings = append(settings, s)
	}

	return settings, rows.Err()
}

func (r *settingsRepository) UpsertSetting(ctx context.Context, key, value string) (payroll.Setting, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_settings (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = NOW()
		RETURNING key, value, updated_at
	`

	var s payroll.Setting
	err := q.QueryRow(ctx, query, key, value).Scan(&s.Key, &s.Value, &s.UpdatedAt)
	if err != nil {
		return payroll.Setting{}, fmt.Errorf("failed to upsert payroll setting: %w", err)
	}

	return s, nil
}
