package db

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalText(t *testing.T) {
	assert.Nil(t, optionalText(nil))

	d := decimal.RequireFromString("0.75")
	got := optionalText(&d)
	require.NotNil(t, got)
	assert.Equal(t, "0.75", *got)
}
