// Package currencies carries ISO 4217 currency descriptors and the
// bridge that pairs them with a calculator flavor.
//
// The descriptors store base and exponent as plain integers;
// [Currency] converts one into a dinero.Currency for any backend:
//
//	curr := currencies.Currency(calc, currencies.USD)
//	price := dinero.MustNew(calc, integer.Value(500), curr)
package currencies

import "github.com/dinero-go/dinero"

// ISO describes a currency as defined by the ISO 4217 standard:
// alphabetic code, subdivision radix, and the number of fractional
// digits of the minor unit.
type ISO struct {
	Code     string
	Base     int64
	Exponent int64
}

// Descriptors for commonly used currencies.
// Exponents follow ISO 4217: most currencies use 2, currencies without
// minor units such as the Japanese yen use 0, and a few such as the
// Omani rial use 3.
var (
	AUD = ISO{"AUD", 10, 2}
	BHD = ISO{"BHD", 10, 3}
	BRL = ISO{"BRL", 10, 2}
	CAD = ISO{"CAD", 10, 2}
	CHF = ISO{"CHF", 10, 2}
	CLP = ISO{"CLP", 10, 0}
	CNY = ISO{"CNY", 10, 2}
	CZK = ISO{"CZK", 10, 2}
	DKK = ISO{"DKK", 10, 2}
	EUR = ISO{"EUR", 10, 2}
	GBP = ISO{"GBP", 10, 2}
	HKD = ISO{"HKD", 10, 2}
	HUF = ISO{"HUF", 10, 2}
	IDR = ISO{"IDR", 10, 2}
	ILS = ISO{"ILS", 10, 2}
	INR = ISO{"INR", 10, 2}
	ISK = ISO{"ISK", 10, 0}
	JOD = ISO{"JOD", 10, 3}
	JPY = ISO{"JPY", 10, 0}
	KRW = ISO{"KRW", 10, 0}
	KWD = ISO{"KWD", 10, 3}
	MXN = ISO{"MXN", 10, 2}
	MYR = ISO{"MYR", 10, 2}
	NOK = ISO{"NOK", 10, 2}
	NZD = ISO{"NZD", 10, 2}
	OMR = ISO{"OMR", 10, 3}
	PHP = ISO{"PHP", 10, 2}
	PLN = ISO{"PLN", 10, 2}
	SEK = ISO{"SEK", 10, 2}
	SGD = ISO{"SGD", 10, 2}
	THB = ISO{"THB", 10, 2}
	TND = ISO{"TND", 10, 3}
	TRY = ISO{"TRY", 10, 2}
	TWD = ISO{"TWD", 10, 2}
	USD = ISO{"USD", 10, 2}
	VND = ISO{"VND", 10, 0}
	ZAR = ISO{"ZAR", 10, 2}
)

var byCode = map[string]ISO{}

func init() {
	for _, iso := range []ISO{
		AUD, BHD, BRL, CAD, CHF, CLP, CNY, CZK, DKK, EUR, GBP, HKD, HUF,
		IDR, ILS, INR, ISK, JOD, JPY, KRW, KWD, MXN, MYR, NOK, NZD, OMR,
		PHP, PLN, SEK, SGD, THB, TND, TRY, TWD, USD, VND, ZAR,
	} {
		byCode[iso.Code] = iso
	}
}

// Get returns the descriptor for the given 3-letter code.
func Get(code string) (ISO, bool) {
	iso, ok := byCode[code]
	return iso, ok
}

// Currency converts an ISO descriptor into a currency descriptor for
// the given calculator flavor.
// Base and exponent are derived through the calculator's own
// primitives, so the result is valid for any backend.
func Currency[T any](c dinero.Calculator[T], iso ISO) dinero.Currency[T] {
	return dinero.Currency[T]{
		Code:     iso.Code,
		Base:     dinero.ValueOf(c, iso.Base),
		Exponent: dinero.ValueOf(c, iso.Exponent),
	}
}
