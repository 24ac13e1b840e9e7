package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerRepo_RecordSpend(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)

	mock.ExpectExec("INSERT INTO loyalty_ledger").
		WithArgs("0712345678", int64(400), int64(4)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.RecordSpend(context.Background(), "0712345678", 400, 4)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_RecordSpend_DBError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)

	mock.ExpectExec("INSERT INTO loyalty_ledger").
		WithArgs("0712345678", int64(20), int64(0)).
		WillReturnError(errors.New("connection refused"))

	err = repo.RecordSpend(context.Background(), "0712345678", 20, 0)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
