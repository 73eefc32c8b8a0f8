package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() ComputationSettings {
	return ComputationSettings{
		TaxRate:              decimal.RequireFromString("0.15"),
		OvertimeMultiplier:   decimal.RequireFromString("1.5"),
		StandardMonthlyHours: decimal.RequireFromString("160"),
	}
}

func TestResolveSettings_NoOverrides(t *testing.T) {
	resolved, err := ResolveSettings(defaults(), nil)
	require.NoError(t, err)
	assert.True(t, resolved.TaxRate.Equal(decimal.RequireFromString("0.15")))
	assert.True(t, resolved.OvertimeMultiplier.Equal(decimal.RequireFromString("1.5")))
	assert.True(t, resolved.StandardMonthlyHours.Equal(decimal.RequireFromString("160")))
}

func TestResolveSettings_Overrides(t *testing.T) {
	resolved, err := ResolveSettings(defaults(), []Setting{
		{Key: SettingKeyTaxRate, Value: "0.2"},
		{Key: SettingKeyStandardMonthlyHours, Value: "173"},
	})
	require.NoError(t, err)
	assert.True(t, resolved.TaxRate.Equal(decimal.RequireFromString("0.2")))
	assert.True(t, resolved.OvertimeMultiplier.Equal(decimal.RequireFromString("1.5")))
	assert.True(t, resolved.StandardMonthlyHours.Equal(decimal.RequireFromString("173")))
}

func TestResolveSettings_UnknownKeyIgnored(t *testing.T) {
	resolved, err := ResolveSettings(defaults(), []Setting{
		{Key: "retired_key", Value: "42"},
	})
	require.NoError(t, err)
	assert.True(t, resolved.TaxRate.Equal(decimal.RequireFromString("0.15")))
}

func TestResolveSettings_MalformedValueFails(t *testing.T) {
	_, err := ResolveSettings(defaults(), []Setting{
		{Key: SettingKeyTaxRate, Value: "fifteen percent"},
	})
	assert.ErrorIs(t, err, ErrInvalidSetting)
}

func TestResolveSettings_OutOfRangeFails(t *testing.T) {
	cases := []Setting{
		{Key: SettingKeyTaxRate, Value: "1.5"},
		{Key: SettingKeyTaxRate, Value: "-0.1"},
		{Key: SettingKeyOvertimeMultiplier, Value: "0.5"},
		{Key: SettingKeyStandardMonthlyHours, Value: "0"},
	}

	for _, override := range cases {
		t.Run(override.Key+"="+override.Value, func(t *testing.T) {
			_, err := ResolveSettings(defaults(), []Setting{override})
			assert.ErrorIs(t, err, ErrInvalidSetting)
		})
	}
}
