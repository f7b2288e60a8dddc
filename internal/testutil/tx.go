// Package testutil holds helpers shared by service and handler tests.
package testutil

import (
	"context"

	"github.com/taxdesk/tax-service/internal/db"
)

// PassthroughTx runs transactional code directly against Queries, so a mock
// querier sees every call made inside the transaction.
type PassthroughTx struct {
	Queries db.Querier
}

// InTx calls fn with the wrapped querier.
func (p PassthroughTx) InTx(_ context.Context, fn func(q db.Querier) error) error {
	return fn(p.Queries)
}

// RetriedTx runs fn Attempts times against Queries, as if every commit but
// the last hit a serialization failure. An error from fn ends the run.
type RetriedTx struct {
	Queries  db.Querier
	Attempts int
}

// InTx calls fn once per attempt.
func (r RetriedTx) InTx(_ context.Context, fn func(q db.Querier) error) error {
	for i := 1; i < r.Attempts; i++ {
		if err := fn(r.Queries); err != nil {
			return err
		}
	}
	return fn(r.Queries)
}
