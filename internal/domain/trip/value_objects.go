package trip

import (
	"errors"
	"math"
)

var ErrNegativeMoney = errors.New("money cannot be negative")

// Money keeps prices in cents; NUMERIC(10,2) columns round-trip exactly.
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeMoney
	}
	return Money{cents: cents}, nil
}

func MustMoney(cents int64) Money {
	m, err := NewMoney(cents)
	if err != nil {
		panic(err)
	}
	return m
}

func MoneyFromDollars(amount float64) (Money, error) {
	return NewMoney(int64(math.Round(amount * 100)))
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Dollars() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) Times(n int) Money {
	return Money{cents: m.cents * int64(n)}
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

type Location struct {
	name      string
	latitude  float64
	longitude float64
}

func NewLocation(name string, lat, lng float64) Location {
	return Location{name: name, latitude: lat, longitude: lng}
}

func (l Location) Name() string       { return l.name }
func (l Location) Latitude() float64  { return l.latitude }
func (l Location) Longitude() float64 { return l.longitude }
