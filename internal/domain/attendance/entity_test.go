package attendance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkedHours_NilBeforeCheckOut(t *testing.T) {
	a := Attendance{TimeIn: time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)}
	assert.Nil(t, a.WorkedHours())
}

func TestWorkedHours_FullDay(t *testing.T) {
	out := time.Date(2025, 6, 10, 17, 30, 0, 0, time.UTC)
	a := Attendance{
		TimeIn:  time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC),
		TimeOut: &out,
	}

	worked := a.WorkedHours()
	require.NotNil(t, worked)
	assert.True(t, worked.Equal(decimal.RequireFromString("8.5")), "worked = %s", worked)
}

func TestWorkedHours_RoundsToTwoDecimals(t *testing.T) {
	out := time.Date(2025, 6, 10, 9, 50, 0, 0, time.UTC)
	a := Attendance{
		TimeIn:  time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC),
		TimeOut: &out,
	}

	worked := a.WorkedHours()
	require.NotNil(t, worked)
	// 50 minutes = 0.8333... hours
	assert.True(t, worked.Equal(decimal.RequireFromString("0.83")), "worked = %s", worked)
}

func TestWorkedHours_ClampedToZero(t *testing.T) {
	out := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
	a := Attendance{
		TimeIn:  time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC),
		TimeOut: &out,
	}

	worked := a.WorkedHours()
	require.NotNil(t, worked)
	assert.True(t, worked.IsZero())
}
