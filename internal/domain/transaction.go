package domain

// TransactionInput is one card transaction submitted for analysis.
type TransactionInput struct {
	Amount   float64 `json:"amount"`
	Merchant string  `json:"merchant"`
	Category string  `json:"category"`
	City     string  `json:"city"`
}

// Complete reports whether every field is populated. Submissions with an
// incomplete input are silently ignored rather than rejected with an error.
func (t TransactionInput) Complete() bool {
	return t.Amount > 0 && t.Merchant != "" && t.Category != "" && t.City != ""
}
