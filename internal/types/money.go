// README: Common money value object used across modules.
package types

import "fmt"

// Money is a decimal amount in a named currency. Model output reports
// costs as decimals ("estimated_cost": 45.50), so the amount stays a
// float rather than integer cents.
type Money struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

func (m Money) String() string {
	return fmt.Sprintf("%.2f %s", m.Amount, m.Currency)
}
