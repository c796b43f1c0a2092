package mocks

import (
	"classbooking/infras/postgres"
	"context"

	"github.com/jmoiron/sqlx"
)

type txRunner struct {
}

// WithSerializableTx implements postgres.TxRunner. The callback runs with a nil
// transaction; repositories are expected to be mocked alongside this runner.
func (r *txRunner) WithSerializableTx(_ context.Context, fn func(tx *sqlx.Tx) error) error {
	return fn(nil)
}

func NewTxRunner() postgres.TxRunner {
	return &txRunner{}
}
