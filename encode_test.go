package taxlot

import (
	"bytes"
	"strings"
	"testing"
)

func TestTransactionsRoundTrip(t *testing.T) {
	txs := history()

	var buf bytes.Buffer
	if err := EncodeTransactions(&buf, txs); err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := DecodeTransactions(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded) != len(txs) {
		t.Fatalf("got %d transactions, want %d", len(decoded), len(txs))
	}
	for i, tx := range txs {
		got := decoded[i]
		if got.ID != tx.ID || got.Kind != tx.Kind || got.Date != tx.Date || got.Account != tx.Account {
			t.Errorf("transaction %d identity differs: %+v vs %+v", i, got, tx)
		}
		if !got.Amount.Equal(tx.Amount) || !got.TotalValue.Equal(tx.TotalValue) {
			t.Errorf("transaction %d values differ", i)
		}
	}
}

func TestDispositionsRoundTrip(t *testing.T) {
	result := Calculate(history(), FIFO, nil)

	var buf bytes.Buffer
	if err := EncodeDispositions(&buf, result.Dispositions); err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := DecodeDispositions(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded) != len(result.Dispositions) {
		t.Fatalf("got %d dispositions, want %d", len(decoded), len(result.Dispositions))
	}
	for i, d := range result.Dispositions {
		got := decoded[i]
		if !got.CostBasis.Equal(d.CostBasis) || !got.GainLoss.Equal(d.GainLoss) {
			t.Errorf("disposition %d money fields differ", i)
		}
		if got.Method != d.Method || got.Donation != d.Donation {
			t.Errorf("disposition %d flags differ", i)
		}
		if len(got.Consumptions) != len(d.Consumptions) {
			t.Errorf("disposition %d consumption count differs", i)
		}
	}
}

func TestDecodeSkipsEmptyLines(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeTransactions(&buf, []Transaction{buyTx("b1", "2023-01-01", 1, 20000, "main")}); err != nil {
		t.Fatalf("encode: %v", err)
	}
	in := "\n" + buf.String() + "\n\n"
	decoded, err := DecodeTransactions(strings.NewReader(in))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded) != 1 {
		t.Errorf("got %d transactions, want 1", len(decoded))
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := DecodeTransactions(strings.NewReader("{not json}\n")); err == nil {
		t.Errorf("expected an error on malformed input")
	}
	if _, err := DecodeDispositions(strings.NewReader("xyz\n")); err == nil {
		t.Errorf("expected an error on malformed input")
	}
}

func TestQuantitiesEncodeWithoutQuotes(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeTransactions(&buf, []Transaction{buyTx("b1", "2023-01-01", 1.5, 30000, "main")}); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !strings.Contains(buf.String(), `"amount":1.5`) {
		t.Errorf("amount must encode as a bare number, got %s", buf.String())
	}
}
