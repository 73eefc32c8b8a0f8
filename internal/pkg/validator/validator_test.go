package validator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "hours", Message: "must be non-negative"},
		{Field: "start_date", Message: "is required"},
	}

	assert.Equal(t, "hours: must be non-negative; start_date: is required", errs.Error())
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "amount", Message: "must be positive"},
	}

	m := errs.ToMap()
	assert.Equal(t, map[string]string{"amount": "must be positive"}, m)
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("jane.doe@example.com"))
	assert.True(t, IsValidEmail("payroll+test@workstream.co.id"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
}

func TestIsValidEmployeeCode(t *testing.T) {
	assert.True(t, IsValidEmployeeCode("EMP-0042"))
	assert.True(t, IsValidEmployeeCode("HR-1001"))
	assert.False(t, IsValidEmployeeCode("emp-0042"))
	assert.False(t, IsValidEmployeeCode("EMP0042"))
	assert.False(t, IsValidEmployeeCode("EMP-42"))
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2025-03-31")
	assert.True(t, ok)
	assert.Equal(t, 2025, date.Year())

	_, ok = IsValidDate("31-03-2025")
	assert.False(t, ok)

	_, ok = IsValidDate("2025-02-30")
	assert.False(t, ok)
}

func TestIsValidClockTime(t *testing.T) {
	_, ok := IsValidClockTime("2025-03-31T08:30:00Z")
	assert.True(t, ok)

	_, ok = IsValidClockTime("2025-03-31T08:30:00+07:00")
	assert.True(t, ok)

	_, ok = IsValidClockTime("2025-03-31 08:30")
	assert.False(t, ok)
}

func TestIsNonNegative(t *testing.T) {
	zero := decimal.Zero
	positive := decimal.NewFromInt(10)
	negative := decimal.NewFromInt(-1)

	assert.True(t, IsNonNegative(nil))
	assert.True(t, IsNonNegative(&zero))
	assert.True(t, IsNonNegative(&positive))
	assert.False(t, IsNonNegative(&negative))
}
