// Package taxlot computes tax-lot accounting for a chronological history of
// asset acquisitions and disposals.
//
// The engine is a pure function over a transaction history: Calculate replays
// the full history, creating a lot per buy and consuming lots on each sale or
// donation under a selectable cost-basis method (FIFO, LIFO, HIFO or a
// manually elected set of lots). Repeated replays of the same inputs produce
// the same lot identities and the same disposition values, so callers can
// discard and recompute results at any time.
//
// The engine performs no I/O: ingestion, persistence and price retrieval
// belong to the caller. Non-fatal conditions (no lots to consume, an account
// with no matching lots, a lot election that no longer resolves) are reported
// as warnings on the CalculationResult, never as errors.
package taxlot
