package domain

import (
	"fmt"

	"github.com/SscSPs/bureau_de_change/internal/apperrors"
)

// RateTable is the ordered set of currency definitions the till trades.
// Insertion order is kept so that listings stay stable for the operator.
type RateTable struct {
	definitions []CurrencyDefinition
}

// NewRateTable builds a rate table, rejecting duplicate codes.
func NewRateTable(definitions []CurrencyDefinition) (*RateTable, error) {
	t := &RateTable{definitions: make([]CurrencyDefinition, 0, len(definitions))}
	for _, d := range definitions {
		if err := t.Add(d); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (t *RateTable) indexOf(code string) int {
	code = NormalizeCurrencyCode(code)
	for i, d := range t.definitions {
		if d.CurrencyCode == code {
			return i
		}
	}
	return -1
}

// Lookup returns the definition for code.
func (t *RateTable) Lookup(code string) (CurrencyDefinition, bool) {
	i := t.indexOf(code)
	if i < 0 {
		return CurrencyDefinition{}, false
	}
	return t.definitions[i], true
}

// Symbol returns the display symbol for code, or the code itself when unknown.
func (t *RateTable) Symbol(code string) string {
	if d, ok := t.Lookup(code); ok && d.Symbol != "" {
		return d.Symbol
	}
	return code
}

// Add appends a definition. The code must not already be present.
func (t *RateTable) Add(def CurrencyDefinition) error {
	def.CurrencyCode = NormalizeCurrencyCode(def.CurrencyCode)
	if t.indexOf(def.CurrencyCode) >= 0 {
		return apperrors.NewConflictError(fmt.Sprintf("currency code '%s' already exists", def.CurrencyCode))
	}
	t.definitions = append(t.definitions, def)
	return nil
}

// Update replaces the definition with the same code.
func (t *RateTable) Update(def CurrencyDefinition) error {
	def.CurrencyCode = NormalizeCurrencyCode(def.CurrencyCode)
	i := t.indexOf(def.CurrencyCode)
	if i < 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("currency code '%s' not found", def.CurrencyCode))
	}
	t.definitions[i] = def
	return nil
}

// Remove deletes the definition for code and reports whether it existed.
// Past transactions keep their snapshotted rate, so removal is never blocked here.
func (t *RateTable) Remove(code string) bool {
	i := t.indexOf(code)
	if i < 0 {
		return false
	}
	t.definitions = append(t.definitions[:i], t.definitions[i+1:]...)
	return true
}

// Definitions returns a copy of the definitions in insertion order.
func (t *RateTable) Definitions() []CurrencyDefinition {
	out := make([]CurrencyDefinition, len(t.definitions))
	copy(out, t.definitions)
	return out
}
