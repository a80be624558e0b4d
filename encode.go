package taxlot

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodeTransactions decodes transactions from a stream of JSONL data.
// Empty lines are skipped. The records are returned in file order; Calculate
// sorts them itself.
func DecodeTransactions(r io.Reader) ([]Transaction, error) {
	var txs []Transaction
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var tx Transaction
		if err := json.Unmarshal(line, &tx); err != nil {
			return nil, fmt.Errorf("could not decode transaction line %q: %w", string(line), err)
		}
		txs = append(txs, tx)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read transactions: %w", err)
	}
	return txs, nil
}

// EncodeTransactions encodes transactions as JSONL.
func EncodeTransactions(w io.Writer, txs []Transaction) error {
	for _, tx := range txs {
		if err := encodeLine(w, tx); err != nil {
			return err
		}
	}
	return nil
}

// DecodeDispositions decodes recorded dispositions (elections) from JSONL.
func DecodeDispositions(r io.Reader) ([]*Disposition, error) {
	var ds []*Disposition
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var d Disposition
		if err := json.Unmarshal(line, &d); err != nil {
			return nil, fmt.Errorf("could not decode disposition line %q: %w", string(line), err)
		}
		ds = append(ds, &d)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read dispositions: %w", err)
	}
	return ds, nil
}

// EncodeDispositions encodes dispositions as JSONL, one per line.
func EncodeDispositions(w io.Writer, ds []*Disposition) error {
	for _, d := range ds {
		if err := encodeLine(w, d); err != nil {
			return err
		}
	}
	return nil
}

// EncodeLots encodes lots as JSONL, one per line.
func EncodeLots(w io.Writer, lots []*Lot) error {
	for _, lot := range lots {
		if err := encodeLine(w, lot); err != nil {
			return err
		}
	}
	return nil
}

func encodeLine(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("could not encode %T: %w", v, err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("could not write %T: %w", v, err)
	}
	return nil
}
