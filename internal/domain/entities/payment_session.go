package entities

// PaymentSession is a read-only projection of the vendor's session record.
//
// Amount is expressed in minor units, Currency is the ISO 4217 code and Status
// is the vendor enum name (e.g. "Approved", "Captured", "PendingAction").
type PaymentSession struct {
	ID        string
	Amount    int64
	Currency  string
	Status    string
	ReturnURL string
}

// SessionProjection is the four-field view surfaced to the caller.
type SessionProjection struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
}

func (s PaymentSession) Projection() SessionProjection {
	return SessionProjection{ID: s.ID, Amount: s.Amount, Currency: s.Currency, Status: s.Status}
}

func (p SessionProjection) ToMap() map[string]any {
	return map[string]any{
		"id":       p.ID,
		"amount":   p.Amount,
		"currency": p.Currency,
		"status":   p.Status,
	}
}
