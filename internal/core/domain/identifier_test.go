package domain_test

import (
	"strings"
	"testing"

	"github.com/itrustbank/itrust_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestIdentifierPrefixes(t *testing.T) {
	tests := []struct {
		name   string
		gen    func() string
		prefix string
	}{
		{"customer ID", domain.NewCustomerID, "CUST"},
		{"account ID", domain.NewAccountID, "ACC"},
		{"transaction ID", domain.NewTransactionID, "TRN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := tt.gen()
			assert.True(t, strings.HasPrefix(id, tt.prefix))
			assert.Len(t, id, len(tt.prefix)+10)

			suffix := strings.TrimPrefix(id, tt.prefix)
			assert.Equal(t, strings.ToUpper(suffix), suffix)
			assert.NotContains(t, suffix, "-")
		})
	}
}

func TestIdentifierUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := domain.NewAccountID()
		assert.False(t, seen[id], "duplicate identifier %s", id)
		seen[id] = true
	}
}
