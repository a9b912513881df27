package redis

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sendasalud/senda/internal/infrastructure/monitoring/logging"
	"github.com/sendasalud/senda/pkg/errors"
)

func newMockStore(t *testing.T) (*AdministrationStore, redismock.ClientMock) {
	t.Helper()
	rdb, mock := redismock.NewClientMock()
	client := NewClientFromRDB(rdb, logging.NewNopLogger())
	store := NewAdministrationStore(client, "senda", 30*24*time.Hour, logging.NewNopLogger())
	return store, mock
}

func TestAdministrationStore_RecordAndRead(t *testing.T) {
	store, mock := newMockStore(t)
	ctx := context.Background()
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectSet("senda:scale_admin:user-1:phq9", at.Format(time.RFC3339), 30*24*time.Hour).
		SetVal("OK")
	require.NoError(t, store.RecordAdministration(ctx, "user-1", "phq9", at))

	mock.ExpectGet("senda:scale_admin:user-1:phq9").SetVal(at.Format(time.RFC3339))
	got, found, err := store.LastAdministered(ctx, "user-1", "phq9")
	require.NoError(t, err)
	assert.True(t, found)
	assert.True(t, got.Equal(at))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdministrationStore_MissingRecord(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectGet("senda:scale_admin:user-1:gad7").RedisNil()
	_, found, err := store.LastAdministered(context.Background(), "user-1", "gad7")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestAdministrationStore_CorruptRecordTreatedAsAbsent(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectGet("senda:scale_admin:user-1:phq9").SetVal("not-a-timestamp")
	_, found, err := store.LastAdministered(context.Background(), "user-1", "phq9")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestAdministrationStore_ReadErrorIsStoreError(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectGet("senda:scale_admin:user-1:phq9").SetErr(assert.AnError)
	_, _, err := store.LastAdministered(context.Background(), "user-1", "phq9")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeStoreError))
}

func TestClient_ClosedGuard(t *testing.T) {
	rdb, _ := redismock.NewClientMock()
	client := NewClientFromRDB(rdb, logging.NewNopLogger())

	require.NoError(t, client.Close())
	assert.ErrorIs(t, client.Get(context.Background(), "k").Err(), ErrClientClosed)
	assert.ErrorIs(t, client.Ping(context.Background()), ErrClientClosed)
	// Close is idempotent.
	assert.NoError(t, client.Close())
}
