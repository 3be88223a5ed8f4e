package dinero

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/dinero-go/dinero/calc/integer"
)

var calc Calculator[int64] = integer.Calculator{}

var (
	usd = Currency[int64]{Code: "USD", Base: 10, Exponent: 2}
	eur = Currency[int64]{Code: "EUR", Base: 10, Exponent: 2}
	jpy = Currency[int64]{Code: "JPY", Base: 10, Exponent: 0}
	omr = Currency[int64]{Code: "OMR", Base: 10, Exponent: 3}
)

func TestDinero_Interfaces(t *testing.T) {
	var i any = Dinero[int64]{}
	if _, ok := i.(fmt.Stringer); !ok {
		t.Errorf("%T does not implement fmt.Stringer", i)
	}
	if _, ok := i.(json.Marshaler); !ok {
		t.Errorf("%T does not implement json.Marshaler", i)
	}
}

func TestNew(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			amount    int64
			curr      Currency[int64]
			wantScale int64
		}{
			{500, usd, 2},
			{0, usd, 2},
			{-1, usd, 2},
			{500, jpy, 0},
			{500, omr, 3},
		}
		for _, tt := range tests {
			got, err := New(calc, tt.amount, tt.curr)
			if err != nil {
				t.Errorf("New(%v, %q) failed: %v", tt.amount, tt.curr.Code, err)
				continue
			}
			s := got.ToSnapshot()
			if s.Amount != tt.amount || s.Scale != tt.wantScale || s.Currency.Code != tt.curr.Code {
				t.Errorf("New(%v, %q) = %+v", tt.amount, tt.curr.Code, s)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			calc  Calculator[int64]
			curr  Currency[int64]
			scale int64
		}{
			"nil calculator": {nil, usd, 2},
			"empty code":     {calc, Currency[int64]{Code: "", Base: 10, Exponent: 2}, 2},
			"base 0":         {calc, Currency[int64]{Code: "USD", Base: 0, Exponent: 2}, 2},
			"base 1":         {calc, Currency[int64]{Code: "USD", Base: 1, Exponent: 2}, 2},
			"negative exp":   {calc, Currency[int64]{Code: "USD", Base: 10, Exponent: -1}, 2},
			"negative scale": {calc, usd, -1},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := NewScaled(tt.calc, 500, tt.curr, tt.scale)
				if err == nil {
					t.Errorf("NewScaled(%q, %v) did not fail", tt.curr.Code, tt.scale)
				}
			})
		}
	})
}

func TestMustNew(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustNew(nil, 500, USD) did not panic")
			}
		}()
		MustNew[int64](nil, 500, usd)
	})
}

func TestDinero_ToSnapshot(t *testing.T) {
	d := MustNewScaled(calc, 5000, usd, 3)
	got := d.ToSnapshot()
	want := Snapshot[int64]{Amount: 5000, Currency: usd, Scale: 3}
	if got != want {
		t.Errorf("%q.ToSnapshot() = %+v, want %+v", d, got, want)
	}
}

func TestDinero_MarshalJSON(t *testing.T) {
	d := MustNew(calc, 500, usd)
	got, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("json.Marshal(%q) failed: %v", d, err)
	}
	want := `{"amount":500,"currency":{"code":"USD","base":10,"exponent":2},"scale":2}`
	if string(got) != want {
		t.Errorf("json.Marshal(%q) = %s, want %s", d, got, want)
	}
}

func TestValueOf(t *testing.T) {
	tests := []int64{0, 1, 2, 3, 9, 10, 63, 64, 100, 999, 1 << 40, -1, -10, -12345}
	for _, n := range tests {
		if got := ValueOf(calc, n); got != n {
			t.Errorf("ValueOf(%v) = %v", n, got)
		}
	}
}
