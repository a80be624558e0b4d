package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/taxlot"
)

func usd(v float64) taxlot.Money { return taxlot.M(v, "USD") }

func sampleResult(t *testing.T) taxlot.CalculationResult {
	t.Helper()
	txs := []taxlot.Transaction{
		{ID: "b1", Date: taxlot.MustParse("2023-01-01"), Kind: taxlot.TxBuy,
			Amount: taxlot.Q(1), UnitPrice: usd(20000), TotalValue: usd(20000), Account: "main"},
		{ID: "b2", Date: taxlot.MustParse("2023-09-01"), Kind: taxlot.TxBuy,
			Amount: taxlot.Q(1), UnitPrice: usd(30000), TotalValue: usd(30000), Account: "main"},
		{ID: "s1", Date: taxlot.MustParse("2024-02-01"), Kind: taxlot.TxSell,
			Amount: taxlot.Q(1.5), UnitPrice: usd(50000), TotalValue: usd(75000), Account: "main"},
	}
	return taxlot.Calculate(txs, taxlot.FIFO, nil)
}

func TestGainsMarkdown(t *testing.T) {
	report := taxlot.NewGainsReport(sampleResult(t), taxlot.FIFO)
	got := GainsMarkdown(report)

	for _, want := range []string{
		"# Realized Gains Report",
		"Method: fifo",
		"| 2024 |",
		"$75,000.00",
		"+$30,000.00", // long-term bucket
		"+$10,000.00", // short-term bucket
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestDispositionsMarkdown(t *testing.T) {
	result := sampleResult(t)
	got := DispositionsMarkdown(result.Dispositions)

	for _, want := range []string{
		"| 2024-02-01 |",
		"| sell |",
		"| mixed |",
		"+$40,000.00",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestDispositionMarkdownDetail(t *testing.T) {
	result := sampleResult(t)
	got := DispositionMarkdown(result.Dispositions[0])

	if !strings.Contains(got, taxlot.LotID("b1")) || !strings.Contains(got, taxlot.LotID("b2")) {
		t.Errorf("lot detail missing in:\n%s", got)
	}
	if !strings.Contains(got, "| long |") || !strings.Contains(got, "| short |") {
		t.Errorf("per-lot term classification missing in:\n%s", got)
	}
}

func TestHoldingMarkdown(t *testing.T) {
	result := sampleResult(t)
	report := taxlot.NewHoldingReport(taxlot.MustParse("2024-12-31"), result.Lots)
	got := HoldingMarkdown(report)

	for _, want := range []string{
		"# Holdings on 2024-12-31",
		"## main",
		"| 0.5 |",
		"**Total holdings: 0.5**",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}
