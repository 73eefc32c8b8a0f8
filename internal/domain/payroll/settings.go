package payroll

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Setting keys recognized at resolution time.
const (
	SettingKeyTaxRate              = "tax_rate"
	SettingKeyOvertimeMultiplier   = "overtime_multiplier"
	SettingKeyStandardMonthlyHours = "standard_monthly_hours"
)

// ComputationSettings is the typed snapshot the engine computes against.
// It is resolved once at the start of a computation and never re-read
// mid-computation.
type ComputationSettings struct {
	TaxRate              decimal.Decimal
	OvertimeMultiplier   decimal.Decimal
	StandardMonthlyHours decimal.Decimal
}

func (s ComputationSettings) Validate() error {
	if s.TaxRate.IsNegative() || s.TaxRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: tax_rate %s outside [0, 1]", ErrInvalidSetting, s.TaxRate)
	}
	if s.OvertimeMultiplier.LessThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: overtime_multiplier %s below 1", ErrInvalidSetting, s.OvertimeMultiplier)
	}
	if !s.StandardMonthlyHours.IsPositive() {
		return fmt.Errorf("%w: standard_monthly_hours %s not positive", ErrInvalidSetting, s.StandardMonthlyHours)
	}
	return nil
}

// ResolveSettings overlays stored override rows onto the configured defaults
// and validates the result. Unknown keys are ignored; a malformed value fails
// the whole resolution rather than silently falling back.
func ResolveSettings(defaults ComputationSettings, rows []Setting) (ComputationSettings, error) {
	resolved := defaults

	for _, row := range rows {
		value, err := decimal.NewFromString(row.Value)
		if err != nil {
			return ComputationSettings{}, fmt.Errorf("%w: %s=%q", ErrInvalidSetting, row.Key, row.Value)
		}

		switch row.Key {
		case SettingKeyTaxRate:
			resolved.TaxRate = value
		case SettingKeyOvertimeMultiplier:
			resolved.OvertimeMultiplier = value
		case SettingKeyStandardMonthlyHours:
			resolved.StandardMonthlyHours = value
		}
	}

	if err := resolved.Validate(); err != nil {
		return ComputationSettings{}, err
	}

	return resolved, nil
}
