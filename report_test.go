package taxlot

import "testing"

func TestGainsReportSplitsMixedTerm(t *testing.T) {
	txs := []Transaction{
		buyTx("b1", "2023-01-01", 1, 20000, "main"),
		buyTx("b2", "2023-09-01", 1, 30000, "main"),
		sellTx("s1", "2024-02-01", 1.5, 50000, "main"),
	}
	report := NewGainsReport(Calculate(txs, FIFO, nil), FIFO)

	if len(report.Years) != 1 {
		t.Fatalf("got %d years, want 1", len(report.Years))
	}
	y := report.Years[0]
	if y.Year != 2024 {
		t.Errorf("year = %d, want 2024", y.Year)
	}
	// The long-term unit carries 50,000 of the 75,000 proceeds against a
	// 20,000 basis; the short-term half unit carries 25,000 against 15,000.
	if !y.LongTerm.Equal(USD(30000)) {
		t.Errorf("long-term gain = %s, want $30,000.00", y.LongTerm)
	}
	if !y.ShortTerm.Equal(USD(10000)) {
		t.Errorf("short-term gain = %s, want $10,000.00", y.ShortTerm)
	}
	if !y.Proceeds.Equal(USD(75000)) {
		t.Errorf("proceeds = %s, want $75,000.00", y.Proceeds)
	}
	if !y.CostBasis.Equal(USD(35000)) {
		t.Errorf("cost basis = %s, want $35,000.00", y.CostBasis)
	}
}

func TestGainsReportGroupsByYear(t *testing.T) {
	report := NewGainsReport(Calculate(history(), FIFO, nil), FIFO)

	if len(report.Years) != 2 {
		t.Fatalf("got %d years, want 2", len(report.Years))
	}
	if report.Years[0].Year != 2023 || report.Years[1].Year != 2024 {
		t.Errorf("years must be sorted ascending, got %d then %d",
			report.Years[0].Year, report.Years[1].Year)
	}
	// 2023: sold 0.5 at 35,000 against a 20,000 unit cost, held 11 months.
	y23 := report.Years[0]
	if !y23.ShortTerm.Equal(USD(7500)) {
		t.Errorf("2023 short-term gain = %s, want $7,500.00", y23.ShortTerm)
	}
	if !y23.LongTerm.IsZero() {
		t.Errorf("2023 long-term gain = %s, want zero", y23.LongTerm)
	}
}

func TestGainsReportDonationBasis(t *testing.T) {
	report := NewGainsReport(Calculate(history(), FIFO, nil), FIFO)

	y24 := report.Years[1]
	// The donation consumed 0.25 of the kraken lot bought at 30,000/unit.
	if !y24.DonatedBasis.Equal(USD(7500)) {
		t.Errorf("donated basis = %s, want $7,500.00", y24.DonatedBasis)
	}
	// Donations never leak into taxable proceeds or gains.
	if !y24.Proceeds.Equal(USD(75000)) {
		t.Errorf("2024 proceeds = %s, want $75,000.00", y24.Proceeds)
	}
}

func TestHoldingReportGroupsAccounts(t *testing.T) {
	result := Calculate(history(), FIFO, nil)
	report := NewHoldingReport(MustParse("2024-12-31"), result.Lots)

	if len(report.Accounts) != 2 {
		t.Fatalf("got %d accounts, want 2", len(report.Accounts))
	}
	if report.Accounts[0].Account != "coinbase" || report.Accounts[1].Account != "kraken" {
		t.Errorf("accounts must be sorted by name, got %s then %s",
			report.Accounts[0].Account, report.Accounts[1].Account)
	}

	coinbase := report.Accounts[0]
	// coinbase: bought 2 + 1, sold 0.5 + 1.5, so 1 unit remains.
	if !coinbase.Amount.Equal(Q(1)) {
		t.Errorf("coinbase amount = %s, want 1", coinbase.Amount)
	}

	kraken := report.Accounts[1]
	if !kraken.Amount.Equal(Q(0.75)) {
		t.Errorf("kraken amount = %s, want 0.75", kraken.Amount)
	}
	// Remaining basis is prorated: 0.75 of a 30,000 lot.
	if !kraken.RemainingBasis.Equal(USD(22500)) {
		t.Errorf("kraken basis = %s, want $22,500.00", kraken.RemainingBasis)
	}

	if !report.Total.Equal(Q(1.75)) {
		t.Errorf("total = %s, want 1.75", report.Total)
	}
}

func TestHoldingReportSkipsDrainedLots(t *testing.T) {
	txs := []Transaction{
		buyTx("b1", "2023-01-01", 1, 20000, "main"),
		sellTx("s1", "2024-01-15", 1, 40000, "main"),
	}
	result := Calculate(txs, FIFO, nil)
	report := NewHoldingReport(MustParse("2024-12-31"), result.Lots)

	if len(report.Accounts) != 0 {
		t.Errorf("a fully drained lot must not appear in holdings")
	}
	if !report.Total.IsZero() {
		t.Errorf("total = %s, want zero", report.Total)
	}
}
