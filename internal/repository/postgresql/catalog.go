package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/workstream-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/workstream-hr/payroll-backend-go/internal/pkg/database"
)

type catalogRepository struct {
	db *database.DB
}

func NewCatalogRepository(db *database.DB) payroll.CatalogRepository {
	return &catalogRepository{db: db}
}

// ========== DEDUCTION TYPES ==========

func (r *catalogRepository) CreateDeductionType(ctx context.Context, dt payroll.DeductionType) (payroll.DeductionType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO deduction_types (name, is_percentage, default_value, is_required, is_tax, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, is_percentage, default_value, is_required, is_tax, is_active, created_at, updated_at
	`

	var created payroll.DeductionType
	err := q.QueryRow(ctx, query,
		dt.Name, dt.IsPercentage, dt.DefaultValue, dt.IsRequired, dt.IsTax, true,
	).Scan(
		&created.ID, &created.Name, &created.IsPercentage, &created.DefaultValue,
		&created.IsRequired, &created.IsTax, &created.IsActive, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if database.IsUniqueViolation(err, "uk_deduction_types_name") {
			return payroll.DeductionType{}, payroll.ErrDeductionTypeNameExists
		}
		return payroll.DeductionType{}, fmt.Errorf("failed to create deduction type: %w", err)
	}

	return created, nil
}

func (r *catalogRepository) GetDeductionType(ctx context.Context, id string) (payroll.DeductionType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, is_percentage, default_value, is_required, is_tax, is_active, created_at, updated_at
		FROM deduction_types
		WHERE id = $1
	`

	var dt payroll.DeductionType
	err := q.QueryRow(ctx, query, id).Scan(
		&dt.ID, &dt.Name, &dt.IsPercentage, &dt.DefaultValue,
		&dt.IsRequired, &dt.IsTax, &dt.IsActive, &dt.CreatedAt, &dt.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.DeductionType{}, payroll.ErrDeductionTypeNotFound
		}
		return payroll.DeductionType{}, fmt.Errorf("failed to get deduction type: %w", err)
	}

	return dt, nil
}

func (r *catalogRepository) ListDeductionTypes(ctx context.Context, activeOnly bool) ([]payroll.DeductionType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, is_percentage, default_value, is_required, is_tax, is_active, created_at, updated_at
		FROM deduction_types
	`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list deduction types: %w", err)
	}
	defer rows.Close()

	var types []payroll.DeductionType
	for rows.Next() {
		var dt payroll.DeductionType
		if err := rows.Scan(
			&dt.ID, &dt.Name, &dt.IsPercentage, &dt.DefaultValue,
			&dt.IsRequired, &dt.IsTax, &dt.IsActive, &dt.CreatedAt, &dt.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan deduction type: %w", err)
		}
		types = append(types, dt)
	}

	return types, rows.Err()
}

func (r *catalogRepository) UpdateDeductionType(ctx context.Context, req payroll.UpdateDeductionTypeRequest) error {
	q := GetQuerier(ctx, r.db)

	setClauses := []string{}
	args := []interface{}{}
	argPos := 1

	addClause := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argPos))
		args = append(args, value)
		argPos++
	}

	if req.Name != nil {
		addClause("name", *req.Name)
	}
	if req.IsPercentage != nil {
		addClause("is_percentage", *req.IsPercentage)
	}
	if req.DefaultValue != nil {
		addClause("default_value", *req.DefaultValue)
	}
	if req.IsRequired != nil {
		addClause("is_required", *req.IsRequired)
	}
	if req.IsTax != nil {
		addClause("is_tax", *req.IsTax)
	}
	if req.IsActive != nil {
		addClause("is_active", *req.IsActive)
	}

	if len(setClauses) == 0 {
		return nil
	}
	setClauses = append(setClauses, "updated_at = NOW()")

	query := fmt.Sprintf("UPDATE deduction_types SET %s WHERE id = $%d",
		strings.Join(setClauses, ", "), argPos)
	args = append(args, req.ID)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		if database.IsUniqueViolation(err, "uk_deduction_types_name") {
			return payroll.ErrDeductionTypeNameExists
		}
		return fmt.Errorf("failed to update deduction type: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrDeductionTypeNotFound
	}

	return nil
}

// ========== ALLOWANCE TYPES ==========

func (r *catalogRepository) CreateAllowanceType(ctx context.Context, at payroll.AllowanceType) (payroll.AllowanceType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO allowance_types (name, is_percentage, default_value, is_required, is_taxable, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, is_percentage, default_value, is_required, is_taxable, is_active, created_at, updated_at
	`

	var created payroll.AllowanceType
	err := q.QueryRow(ctx, query,
		at.Name, at.IsPercentage, at.DefaultValue, at.IsRequired, at.IsTaxable, true,
	).Scan(
		&created.ID, &created.Name, &created.IsPercentage, &created.DefaultValue,
		&created.IsRequired, &created.IsTaxable, &created.IsActive, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if database.IsUniqueViolation(err, "uk_allowance_types_name") {
			return payroll.AllowanceType{}, payroll.ErrAllowanceTypeNameExists
		}
		return payroll.AllowanceType{}, fmt.Errorf("failed to create allowance type: %w", err)
	}

	return created, nil
}

func (r *catalogRepository) GetAllowanceType(ctx context.Context, id string) (payroll.AllowanceType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, is_percentage, default_value, is_required, is_taxable, is_active, created_at, updated_at
		FROM allowance_types
		WHERE id = $1
	`

	var at payroll.AllowanceType
	err := q.QueryRow(ctx, query, id).Scan(
		&at.ID, &at.Name, &at.IsPercentage, &at.DefaultValue,
		&at.IsRequired, &at.IsTaxable, &at.IsActive, &at.CreatedAt, &at.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.AllowanceType{}, payroll.ErrAllowanceTypeNotFound
		}
		return payroll.AllowanceType{}, fmt.Errorf("failed to get allowance type: %w", err)
	}

	return at, nil
}

func (r *catalogRepository) ListAllowanceTypes(ctx context.Context, activeOnly bool) ([]payroll.AllowanceType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, is_percentage, default_value, is_required, is_taxable, is_active, created_at, updated_at
		FROM allowance_types
	`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list allowance types: %w", err)
	}
	defer rows.Close()

	var types []payroll.AllowanceType
	for rows.Next() {
		var at payroll.AllowanceType
		if err := rows.Scan(
			&at.ID, &at.Name, &at.IsPercentage, &at.DefaultValue,
			&at.IsRequired, &at.IsTaxable, &at.IsActive, &at.CreatedAt, &at.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan allowance type: %w", err)
		}
		types = append(types, at)
	}

	return types, rows.Err()
}

func (r *catalogRepository) UpdateAllowanceType(ctx context.Context, req payroll.UpdateAllowanceTypeRequest) error {
	q := GetQuerier(ctx, r.db)

	setClauses := []string{}
	args := []interface{}{}
	argPos := 1

	addClause := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argPos))
		args = append(args, value)
		argPos++
	}

	if req.Name != nil {
		addClause("name", *req.Name)
	}
	if req.IsPercentage != nil {
		addClause("is_percentage", *req.IsPercentage)
	}
	if req.DefaultValue != nil {
		addClause("default_value", *req.DefaultValue)
	}
	if req.IsRequired != nil {
		addClause("is_required", *req.IsRequired)
	}
	if req.IsTaxable != nil {
		addClause("is_taxable", *req.IsTaxable)
	}
	if req.IsActive != nil {
		addClause("is_active", *req.IsActive)
	}

	if len(setClauses) == 0 {
		return nil
	}
	setClauses = append(setClauses, "updated_at = NOW()")

	query := fmt.Sprintf("UPDATE allowance_types SET %s WHERE id = $%d",
		strings.Join(setClauses, ", "), argPos)
	args = append(args, req.ID)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		if database.IsUniqueViolation(err, "uk_allowance_types_name") {
			return payroll.ErrAllowanceTypeNameExists
		}
		return fmt.Errorf("failed to update allowance type: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrAllowanceTypeNotFound
	}

	return nil
}
