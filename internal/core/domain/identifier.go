package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Prefixed identifier tokens: a UUID with the dashes stripped, truncated to
// ten characters and uppercased, behind a short type prefix. The truncated
// space is large enough for a single branch's customer base; uniqueness is
// still enforced by the primary key constraints.
func newToken(prefix string) string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + strings.ToUpper(raw[:10])
}

// NewCustomerID generates a customer identifier, e.g. "CUST1A2B3C4D5E".
func NewCustomerID() string {
	return newToken("CUST")
}

// NewAccountID generates an account identifier, e.g. "ACC1A2B3C4D5E".
func NewAccountID() string {
	return newToken("ACC")
}

// NewTransactionID generates a transaction identifier, e.g. "TRN1A2B3C4D5E".
func NewTransactionID() string {
	return newToken("TRN")
}
