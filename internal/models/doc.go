// Package models declares the shop's persisted entities and derived records.
//
// JSON field names and enum values keep the shop's established wire format
// (Portuguese names such as "nome", "placa", "valorTotal"), so stored
// documents stay readable by earlier tooling. Money is decimal.Decimal and is
// encoded as a bare JSON number.
//
// Entities implement Record: EntityID returns the opaque id and Clone returns
// a deep copy, which is what the store hands out on every read.
//
// Patch types carry pointer fields; a nil field leaves the value unchanged.
package models

import "github.com/shopspring/decimal"

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Record is implemented by every collection element.
type Record[T any] interface {
	EntityID() string
	Clone() T
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
