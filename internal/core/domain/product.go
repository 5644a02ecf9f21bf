package domain

import "github.com/govalues/decimal"

type Product struct {
	ID    string
	Name  string
	Price decimal.Decimal
	Stock int
}
