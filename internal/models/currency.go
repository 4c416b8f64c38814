package models

import "github.com/shopspring/decimal"

// Currency is a row of the currencies table.
type Currency struct {
	Seq          int64 // insertion order
	CurrencyCode string
	Name         string
	Symbol       string
	BuyRate      decimal.Decimal
	SellRate     decimal.Decimal
	AuditFields
}
