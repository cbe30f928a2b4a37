package domain

import "time"

// HistoryEntry is one analyzed transaction in the session ledger. Entries
// are immutable once created and are never removed for the lifetime of the
// process.
type HistoryEntry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Amount    float64   `json:"amount"`
	Merchant  string    `json:"merchant"`
	RiskScore int       `json:"risk_score"`
	Decision  Decision  `json:"decision"`
}
