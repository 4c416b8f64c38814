package reports

import (
	"fmt"
	"strings"

	"github.com/SscSPs/bureau_de_change/internal/core/domain"
	portssvc "github.com/SscSPs/bureau_de_change/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	SheetSummary      = "Résumé"
	SheetCurrencies   = "Devises"
	SheetTransactions = "Opérations"

	// ContentType is the MIME type of rendered workbooks.
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var kindLabels = map[domain.TransactionKind]string{
	domain.Purchase: "Achat",
	domain.Sale:     "Vente",
}

// WorkbookRenderer renders closing reports as XLSX workbooks.
type WorkbookRenderer struct {
	localCurrency string
}

// NewWorkbookRenderer creates a renderer labelling local amounts with localCurrency.
func NewWorkbookRenderer(localCurrency string) *WorkbookRenderer {
	if localCurrency == "" {
		localCurrency = "FC"
	}
	return &WorkbookRenderer{localCurrency: localCurrency}
}

var _ portssvc.ReportRenderer = (*WorkbookRenderer)(nil)

// FileName is caisse-<date>-<first 8 chars of the session id>.xlsx.
func (r *WorkbookRenderer) FileName(report domain.ClosingReport) string {
	id := report.Session.SessionID
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("caisse-%s-%s.xlsx", report.Session.CalendarDate, strings.ToLower(id))
}

func (r *WorkbookRenderer) Render(report domain.ClosingReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return nil, fmt.Errorf("failed to name summary sheet: %w", err)
	}
	for _, name := range []string{SheetCurrencies, SheetTransactions} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
	}

	if err := r.writeSummary(f, report); err != nil {
		return nil, err
	}
	if err := r.writeCurrencies(f, report); err != nil {
		return nil, err
	}
	if err := r.writeTransactions(f, report); err != nil {
		return nil, err
	}

	f.SetActiveSheet(0)
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *WorkbookRenderer) writeSummary(f *excelize.File, report domain.ClosingReport) error {
	s := report.Session
	sum := report.Summary
	local := " (" + r.localCurrency + ")"

	closedAt := ""
	if s.ClosedAt != nil {
		closedAt = s.ClosedAt.Format("15:04:05")
	}

	rows := [][]any{
		{"RAPPORT DE CAISSE"},
		{"Date", s.CalendarDate},
		{"Session", s.SessionID},
		{"Ouverture", s.OpenedAt.Format("15:04:05")},
		{"Fermeture", closedAt},
		{"Fond initial" + local, money(sum.OpeningFloat)},
		{},
		{"Type", "Nombre", "Montant total" + local},
		{"Achats", purchaseCount(sum), money(sum.TotalPurchasesLocal)},
		{"Ventes", saleCount(sum), money(sum.TotalSalesLocal)},
		{},
		{"Nombre de transactions", sum.TransactionCount},
		{"Balance" + local, money(sum.Balance)},
		{"Solde théorique final" + local, money(sum.ProjectedClosingBalance)},
		{"Généré le", report.GeneratedAt.Format("02/01/2006 15:04")},
	}
	if err := writeRows(f, SheetSummary, rows); err != nil {
		return err
	}
	return f.SetColWidth(SheetSummary, "A", "A", 28)
}

func (r *WorkbookRenderer) writeCurrencies(f *excelize.File, report domain.ClosingReport) error {
	table, err := domain.NewRateTable(report.Rates)
	if err != nil {
		return err
	}

	rows := [][]any{{"Devise", "Symbole", "Type", "Nombre", "Montant devise", "Montant" + " (" + r.localCurrency + ")"}}
	for _, c := range report.Summary.Currencies {
		symbol := table.Symbol(c.CurrencyCode)
		rows = append(rows,
			[]any{c.CurrencyCode, symbol, "Achats", c.Purchases.Count, money(c.Purchases.ForeignTotal), money(c.Purchases.LocalTotal)},
			[]any{c.CurrencyCode, symbol, "Ventes", c.Sales.Count, money(c.Sales.ForeignTotal), money(c.Sales.LocalTotal)},
		)
	}

	rows = append(rows, []any{}, []any{"Taux", "", "Achat", "Vente"})
	for _, def := range report.Rates {
		rows = append(rows, []any{def.CurrencyCode, def.Symbol, money(def.BuyRate), money(def.SellRate)})
	}
	return writeRows(f, SheetCurrencies, rows)
}

func (r *WorkbookRenderer) writeTransactions(f *excelize.File, report domain.ClosingReport) error {
	rows := [][]any{{"Reçu", "Heure", "Type", "Devise", "Montant devise", "Taux", "Montant" + " (" + r.localCurrency + ")", "Client", "Téléphone"}}
	for _, txn := range report.Transactions {
		rows = append(rows, []any{
			txn.ReceiptNumber(),
			txn.CreatedAt.Format("15:04"),
			kindLabels[txn.Kind],
			txn.CurrencyCode,
			money(txn.ForeignAmount),
			money(txn.AppliedRate),
			money(txn.LocalAmount),
			txn.ClientName,
			txn.ClientPhone,
		})
	}
	if err := writeRows(f, SheetTransactions, rows); err != nil {
		return err
	}
	return f.SetColWidth(SheetTransactions, "H", "H", 24)
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

// money converts for display in a spreadsheet cell. Stored values stay exact.
func money(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

func purchaseCount(r domain.SessionReport) int {
	n := 0
	for _, c := range r.Currencies {
		n += c.Purchases.Count
	}
	return n
}

func saleCount(r domain.SessionReport) int {
	n := 0
	for _, c := range r.Currencies {
		n += c.Sales.Count
	}
	return n
}
