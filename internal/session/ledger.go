package session

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/securebank/frauddesk/internal/domain"
)

// HistoryLedger is the append-only, session-scoped record of analyzed
// transactions. Entries are kept most-recent-first and are never mutated
// or removed for the lifetime of the process.
type HistoryLedger struct {
	db *sql.DB
}

func NewHistoryLedger(db *sql.DB) *HistoryLedger {
	return &HistoryLedger{db: db}
}

// Append prepends an entry to the ledger.
func (l *HistoryLedger) Append(entry domain.HistoryEntry) error {
	_, err := l.db.Exec(
		`INSERT INTO history_entries
		(id, created_at, amount, merchant, risk_score, decision)
		VALUES (?,?,?,?,?,?)`,
		entry.ID, entry.Timestamp.Format(time.RFC3339), entry.Amount,
		entry.Merchant, entry.RiskScore, string(entry.Decision),
	)
	if err != nil {
		return fmt.Errorf("insert history entry: %w", err)
	}
	return nil
}

func (l *HistoryLedger) Count() (int, error) {
	var count int
	err := l.db.QueryRow("SELECT COUNT(*) FROM history_entries").Scan(&count)
	return count, err
}

// CountLabel renders the entry count with correct singular/plural wording.
func (l *HistoryLedger) CountLabel() (string, error) {
	count, err := l.Count()
	if err != nil {
		return "", err
	}
	if count == 1 {
		return "1 record", nil
	}
	return fmt.Sprintf("%d records", count), nil
}

// EntryView is a history entry prepared for display: the raw entry plus
// its status class and score color, encoded with the same thresholds the
// classifier uses.
type EntryView struct {
	domain.HistoryEntry
	TimeLabel   string `json:"time_label"`
	StatusClass string `json:"status_class"`
	ScoreColor  string `json:"score_color"`
}

// RenderAll returns every entry in reverse chronological order, newest
// first, ready for presentation.
func (l *HistoryLedger) RenderAll() ([]EntryView, error) {
	rows, err := l.db.Query(
		`SELECT id, created_at, amount, merchant, risk_score, decision
		FROM history_entries ORDER BY seq DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var views []EntryView
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		views = append(views, newEntryView(entry))
	}
	return views, rows.Err()
}

// --- helpers ---

func scanEntry(rows *sql.Rows) (domain.HistoryEntry, error) {
	var entry domain.HistoryEntry
	var createdAt, decision string

	err := rows.Scan(&entry.ID, &createdAt, &entry.Amount, &entry.Merchant,
		&entry.RiskScore, &decision)
	if err != nil {
		return entry, err
	}

	entry.Timestamp, _ = time.Parse(time.RFC3339, createdAt)
	entry.Decision = domain.Decision(decision)
	return entry, nil
}

func newEntryView(entry domain.HistoryEntry) EntryView {
	level, _ := domain.Classify(entry.RiskScore)
	return EntryView{
		HistoryEntry: entry,
		TimeLabel:    entry.Timestamp.Format("Jan 2, 2006 15:04:05"),
		StatusClass:  statusClass(entry.Decision),
		ScoreColor:   domain.LevelColor(level),
	}
}

func statusClass(d domain.Decision) string {
	switch d {
	case domain.DecisionBlock:
		return "blocked"
	case domain.DecisionRequireOTP:
		return "otp-required"
	default:
		return "approved"
	}
}
