package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/alset-systems/erp-api/pkg/money"
)

func TestFormat_AgrupaMilesConDosDecimales(t *testing.T) {
	got := money.Format(decimal.NewFromFloat(1234.5), "MXN")
	assert.Contains(t, got, "1,234.50")
}

func TestFormat_CodigoDesconocidoCaeAMXN(t *testing.T) {
	got := money.Format(decimal.NewFromInt(10), "???")
	assert.NotEmpty(t, got)
	assert.Contains(t, got, "10.00")
}
