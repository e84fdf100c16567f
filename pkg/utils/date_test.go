package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSaleDate(t *testing.T) {
	date, err := ParseSaleDate("16/01/2021")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2021, time.January, 16, 0, 0, 0, 0, time.UTC), date)

	_, err = ParseSaleDate("2021-01-16")
	assert.Error(t, err)

	_, err = ParseSaleDate("31/02/2021")
	assert.Error(t, err)
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "Janeiro", MonthName(time.January))
	assert.Equal(t, "Março", MonthName(time.March))
	assert.Equal(t, "Dezembro", MonthName(time.December))
	assert.Len(t, MonthNames(), 12)
}

func TestFirstDayOfMonth(t *testing.T) {
	date := time.Date(2022, time.July, 23, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, time.Date(2022, time.July, 1, 0, 0, 0, 0, time.UTC), FirstDayOfMonth(date))
}
