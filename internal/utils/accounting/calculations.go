package accounting

import (
	"github.com/SscSPs/bureau_de_change/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LocalAmount computes the local-currency value of a transaction.
// No rounding is applied; display formatting is the only place amounts are rounded.
func LocalAmount(foreignAmount, appliedRate decimal.Decimal) decimal.Decimal {
	return foreignAmount.Mul(appliedRate)
}

// SessionTotals sums LocalAmount over transactions partitioned by kind.
func SessionTotals(transactions []domain.Transaction) (purchases, sales decimal.Decimal) {
	purchases = decimal.Zero
	sales = decimal.Zero
	for _, txn := range transactions {
		if txn.Kind == domain.Purchase {
			purchases = purchases.Add(txn.LocalAmount)
		} else {
			sales = sales.Add(txn.LocalAmount)
		}
	}
	return purchases, sales
}

// ProjectedClosingBalance is the expected cash on hand: float + sales - purchases.
func ProjectedClosingBalance(openingFloat, sales, purchases decimal.Decimal) decimal.Decimal {
	return openingFloat.Add(sales).Sub(purchases)
}

// Aggregate summarizes a session and its transactions. It does not mutate the session.
// Currencies appear in the order they are first seen among the transactions.
func Aggregate(session domain.Session, transactions []domain.Transaction) domain.SessionReport {
	purchases, sales := SessionTotals(transactions)

	index := make(map[string]int)
	breakdown := make([]domain.CurrencyBreakdown, 0)
	for _, txn := range transactions {
		i, ok := index[txn.CurrencyCode]
		if !ok {
			i = len(breakdown)
			index[txn.CurrencyCode] = i
			breakdown = append(breakdown, domain.CurrencyBreakdown{
				CurrencyCode: txn.CurrencyCode,
				Purchases:    emptySide(),
				Sales:        emptySide(),
			})
		}

		side := &breakdown[i].Sales
		if txn.Kind == domain.Purchase {
			side = &breakdown[i].Purchases
		}
		side.Count++
		side.ForeignTotal = side.ForeignTotal.Add(txn.ForeignAmount)
		side.LocalTotal = side.LocalTotal.Add(txn.LocalAmount)
	}

	return domain.SessionReport{
		SessionID:               session.SessionID,
		CalendarDate:            session.CalendarDate,
		Status:                  session.Status,
		OpeningFloat:            session.OpeningFloat,
		TransactionCount:        len(transactions),
		TotalPurchasesLocal:     purchases,
		TotalSalesLocal:         sales,
		Balance:                 sales.Sub(purchases),
		ProjectedClosingBalance: ProjectedClosingBalance(session.OpeningFloat, sales, purchases),
		Currencies:              breakdown,
	}
}

// FilterTransactions returns the transactions matching query, keeping their order.
// The result is never nil, so "no match" is an empty list rather than an error.
func FilterTransactions(transactions []domain.Transaction, query string) []domain.Transaction {
	out := make([]domain.Transaction, 0, len(transactions))
	for _, txn := range transactions {
		if txn.MatchesQuery(query) {
			out = append(out, txn)
		}
	}
	return out
}

func emptySide() domain.SideTotals {
	return domain.SideTotals{ForeignTotal: decimal.Zero, LocalTotal: decimal.Zero}
}
