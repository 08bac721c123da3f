package helpers_test

import (
	"testing"
	"time"

	"callbooking-service/internal/pkg/helpers"

	"github.com/stretchr/testify/assert"
)

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "$100.00", helpers.FormatCents(10000))
	assert.Equal(t, "$0.05", helpers.FormatCents(5))
	assert.Equal(t, "$12.34", helpers.FormatCents(1234))
	assert.Equal(t, "$3000.00", helpers.FormatCents(300000))
}

func TestDurationCalculation(t *testing.T) {
	t.Run("future time yields a positive delay", func(t *testing.T) {
		d := helpers.DurationCalculation(time.Now().Add(time.Hour))
		assert.Greater(t, d, 59*time.Minute)
	})

	t.Run("past time is floored at zero", func(t *testing.T) {
		d := helpers.DurationCalculation(time.Now().Add(-time.Hour))
		assert.Equal(t, time.Duration(0), d)
	})
}
