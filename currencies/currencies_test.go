package currencies_test

import (
	"math/big"
	"testing"

	"github.com/dinero-go/dinero"
	"github.com/dinero-go/dinero/calc/bigint"
	"github.com/dinero-go/dinero/calc/integer"
	"github.com/dinero-go/dinero/currencies"
)

func TestGet(t *testing.T) {
	tests := []struct {
		code     string
		exponent int64
		ok       bool
	}{
		{"USD", 2, true},
		{"JPY", 0, true},
		{"OMR", 3, true},
		{"KWD", 3, true},
		{"XXX", 0, false},
		{"usd", 0, false},
	}
	for _, tt := range tests {
		iso, ok := currencies.Get(tt.code)
		if ok != tt.ok {
			t.Errorf("Get(%q) ok = %v, want %v", tt.code, ok, tt.ok)
			continue
		}
		if ok && (iso.Code != tt.code || iso.Exponent != tt.exponent || iso.Base != 10) {
			t.Errorf("Get(%q) = %+v", tt.code, iso)
		}
	}
}

func TestCurrency(t *testing.T) {
	t.Run("integer", func(t *testing.T) {
		var c dinero.Calculator[int64] = integer.Calculator{}
		got := currencies.Currency(c, currencies.OMR)
		want := dinero.Currency[int64]{Code: "OMR", Base: 10, Exponent: 3}
		if got != want {
			t.Errorf("Currency(OMR) = %+v, want %+v", got, want)
		}
	})

	t.Run("bigint", func(t *testing.T) {
		var c dinero.Calculator[*big.Int] = bigint.Calculator{}
		got := currencies.Currency(c, currencies.USD)
		if got.Code != "USD" || got.Base.Cmp(big.NewInt(10)) != 0 || got.Exponent.Cmp(big.NewInt(2)) != 0 {
			t.Errorf("Currency(USD) = %+v", got)
		}
	})
}
