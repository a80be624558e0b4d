package cmd

import (
	"fmt"
	"strings"

	"github.com/etnz/taxlot"
	"github.com/shopspring/decimal"
)

// parseSelections parses a manual lot designation of the form
// "lotid:amount,lotid:amount".
func parseSelections(s string) ([]taxlot.LotSelection, error) {
	if s == "" {
		return nil, nil
	}
	var selections []taxlot.LotSelection
	for _, part := range strings.Split(s, ",") {
		id, amount, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			return nil, fmt.Errorf("invalid lot selection %q, expected lotid:amount", part)
		}
		d, err := decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("invalid amount in lot selection %q: %w", part, err)
		}
		selections = append(selections, taxlot.LotSelection{LotID: id, Amount: taxlot.Q(d)})
	}
	return selections, nil
}
