package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

// pesos renders whole-unit prices the way the storefront shows them:
// "$ " prefix, "." as thousands separator, no decimals (12000 -> "$ 12.000").
var pesos = accounting.Accounting{Symbol: "$ ", Precision: 0, Thousand: ".", Decimal: ","}

func FormatPrecio(amount decimal.Decimal) string {
	return pesos.FormatMoneyDecimal(amount.Round(0))
}

// FormatDescuento renders a fractional discount as a percentage label,
// e.g. 0.10 -> "10%".
func FormatDescuento(descuento decimal.Decimal) string {
	if !descuento.IsPositive() {
		return ""
	}
	return descuento.Mul(decimal.NewFromInt(100)).Round(0).String() + "%"
}
