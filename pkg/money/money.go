// Package money formatea importes monetarios para documentos impresos,
// con símbolo y separadores de miles según la localización es-MX.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.MustParse("es-MX"))

// Format devuelve el importe con símbolo de moneda y agrupación de miles,
// siempre con dos decimales. Un código ISO desconocido cae a MXN.
func Format(amount decimal.Decimal, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		unit = currency.MXN
	}
	f, _ := amount.Float64()
	return printer.Sprintf("%v%v",
		currency.Symbol(unit),
		number.Decimal(f, number.MinFractionDigits(2), number.MaxFractionDigits(2)),
	)
}
