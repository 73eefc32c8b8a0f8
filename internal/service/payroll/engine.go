package payroll

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/workstream-hr/payroll-backend-go/internal/domain/employee"
	"github.com/workstream-hr/payroll-backend-go/internal/domain/payroll"
)

// EngineInput is a complete snapshot of everything a computation reads:
// the employee record, the derived or overridden hours, the catalogs, and
// the resolved settings. Building the snapshot first keeps the computation
// itself deterministic and free of I/O.
type EngineInput struct {
	Employee        employee.Employee
	HoursWorked     decimal.Decimal
	OvertimeHours   decimal.Decimal
	OtherDeductions decimal.Decimal
	AdHocAllowances []payroll.ManualAllowance
	DeductionTypes  []payroll.DeductionType
	AllowanceTypes  []payroll.AllowanceType
	Settings        payroll.ComputationSettings
}

// Draft is the computed result before persistence. Line items carry no IDs
// yet; the repository assigns them when the item is stored.
type Draft struct {
	BasicSalary     decimal.Decimal
	HoursWorked     decimal.Decimal
	OvertimeHours   decimal.Decimal
	OvertimeAmount  decimal.Decimal
	GrossPay        decimal.Decimal
	TaxAmount       decimal.Decimal
	OtherDeductions decimal.Decimal
	NetPay          decimal.Decimal
	Deductions      []payroll.Deduction
	Allowances      []payroll.Allowance
}

var oneHundred = decimal.NewFromInt(100)

// round applies the currency rounding rule: half-up at two decimal places.
// Every amount that leaves the engine goes through this.
func round(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// ComputeDraft runs the payroll computation for one employee. It is pure:
// identical inputs produce identical drafts, byte for byte.
func ComputeDraft(in EngineInput) (Draft, error) {
	if err := validateInput(in); err != nil {
		return Draft{}, err
	}

	basicSalary := decimal.Zero
	if in.Employee.BasicSalary != nil {
		basicSalary = *in.Employee.BasicSalary
	}

	// 1. Base earnings: hours-driven when an hourly rate is configured,
	// salary-driven otherwise.
	var basicComponent decimal.Decimal
	if in.Employee.IsHourly() {
		basicComponent = round(in.HoursWorked.Mul(*in.Employee.HourlyRate))
	} else {
		basicComponent = round(basicSalary)
	}

	// 2. Overtime. Salaried employees fall back to an hourly rate derived
	// from the standard monthly hours.
	var hourlyRate decimal.Decimal
	if in.Employee.IsHourly() {
		hourlyRate = *in.Employee.HourlyRate
	} else {
		hourlyRate = basicSalary.Div(in.Settings.StandardMonthlyHours)
	}
	overtimeRate := hourlyRate.Mul(in.Settings.OvertimeMultiplier)
	overtimeAmount := round(in.OvertimeHours.Mul(overtimeRate))

	// 3. Allowance lines. Percentage types resolve against the pre-allowance
	// base (earnings plus overtime); taxable lines enter gross pay.
	preAllowanceBase := basicComponent.Add(overtimeAmount)
	allowances := resolveAllowances(in, preAllowanceBase)

	taxableAllowances := decimal.Zero
	nonTaxableAllowances := decimal.Zero
	for _, line := range allowances {
		if line.IsTaxable {
			taxableAllowances = taxableAllowances.Add(line.Amount)
		} else {
			nonTaxableAllowances = nonTaxableAllowances.Add(line.Amount)
		}
	}

	// 4. Gross pay.
	grossPay := basicComponent.Add(overtimeAmount).Add(taxableAllowances)

	// 5. Deduction lines from the required catalog types. The type flagged
	// as income tax supplies the tax amount; without one, the default tax
	// rate applies and a synthetic tax line keeps the item reconcilable
	// against its lines.
	deductions, taxAmount := resolveDeductions(in.DeductionTypes, grossPay, in.Settings.TaxRate)

	totalDeductions := decimal.Zero
	for _, line := range deductions {
		totalDeductions = totalDeductions.Add(line.Amount)
	}

	// 6. Ad hoc deductions stay separate from the catalog-driven ones.
	otherDeductions := round(in.OtherDeductions)

	// 7. Net pay. Non-taxable allowances are paid out post-tax.
	netPay := grossPay.
		Add(nonTaxableAllowances).
		Sub(totalDeductions).
		Sub(otherDeductions)

	if netPay.IsNegative() {
		return Draft{}, fmt.Errorf("%w: gross %s cannot cover deductions %s plus other %s",
			payroll.ErrNegativeNetPay, grossPay, totalDeductions, otherDeductions)
	}

	return Draft{
		BasicSalary:     round(basicSalary),
		HoursWorked:     round(in.HoursWorked),
		OvertimeHours:   round(in.OvertimeHours),
		OvertimeAmount:  overtimeAmount,
		GrossPay:        round(grossPay),
		TaxAmount:       taxAmount,
		OtherDeductions: otherDeductions,
		NetPay:          round(netPay),
		Deductions:      deductions,
		Allowances:      allowances,
	}, nil
}

func validateInput(in EngineInput) error {
	// A zero-value or hand-built settings snapshot must surface as a typed
	// error, not a division-by-zero panic on the overtime rate fallback.
	if err := in.Settings.Validate(); err != nil {
		return err
	}
	if in.Employee.BasicSalary != nil && in.Employee.BasicSalary.IsNegative() {
		return fmt.Errorf("%w: negative basic salary %s", payroll.ErrInvalidInput, in.Employee.BasicSalary)
	}
	if in.Employee.HourlyRate != nil && in.Employee.HourlyRate.IsNegative() {
		return fmt.Errorf("%w: negative hourly rate %s", payroll.ErrInvalidInput, in.Employee.HourlyRate)
	}
	if in.HoursWorked.IsNegative() {
		return fmt.Errorf("%w: negative hours worked %s", payroll.ErrInvalidInput, in.HoursWorked)
	}
	if in.OvertimeHours.IsNegative() {
		return fmt.Errorf("%w: negative overtime hours %s", payroll.ErrInvalidInput, in.OvertimeHours)
	}
	if in.OtherDeductions.IsNegative() {
		return fmt.Errorf("%w: negative other deductions %s", payroll.ErrInvalidInput, in.OtherDeductions)
	}
	for _, a := range in.AdHocAllowances {
		if a.Amount.IsNegative() {
			return fmt.Errorf("%w: negative ad hoc allowance %q", payroll.ErrInvalidInput, a.Name)
		}
	}

	hasSalary := in.Employee.BasicSalary != nil && in.Employee.BasicSalary.IsPositive()
	if !hasSalary && !in.Employee.IsHourly() {
		return payroll.ErrMissingCompensationBasis
	}

	return nil
}

func resolveAllowances(in EngineInput, base decimal.Decimal) []payroll.Allowance {
	var lines []payroll.Allowance

	for _, at := range in.AllowanceTypes {
		if !at.IsRequired || !at.IsActive {
			continue
		}
		amount := at.DefaultValue
		if at.IsPercentage {
			amount = base.Mul(at.DefaultValue.Div(oneHundred))
		}
		typeID := at.ID
		lines = append(lines, payroll.Allowance{
			AllowanceTypeID: &typeID,
			Name:            at.Name,
			Amount:          round(amount),
			IsTaxable:       at.IsTaxable,
		})
	}

	for _, manual := range in.AdHocAllowances {
		lines = append(lines, payroll.Allowance{
			Name:      manual.Name,
			Amount:    round(manual.Amount),
			IsTaxable: manual.IsTaxable,
		})
	}

	return lines
}

func resolveDeductions(types []payroll.DeductionType, grossPay, defaultTaxRate decimal.Decimal) ([]payroll.Deduction, decimal.Decimal) {
	var lines []payroll.Deduction
	taxAmount := decimal.Zero
	taxResolved := false

	for _, dt := range types {
		if !dt.IsRequired || !dt.IsActive {
			continue
		}
		amount := dt.DefaultValue
		if dt.IsPercentage {
			amount = grossPay.Mul(dt.DefaultValue.Div(oneHundred))
		}
		amount = round(amount)

		typeID := dt.ID
		lines = append(lines, payroll.Deduction{
			DeductionTypeID: &typeID,
			Name:            dt.Name,
			Amount:          amount,
			IsTax:           dt.IsTax,
		})
		if dt.IsTax && !taxResolved {
			taxAmount = amount
			taxResolved = true
		}
	}

	if !taxResolved {
		taxAmount = round(grossPay.Mul(defaultTaxRate))
		lines = append(lines, payroll.Deduction{
			Name:   "Income Tax",
			Amount: taxAmount,
			IsTax:  true,
		})
	}

	return lines, taxAmount
}
