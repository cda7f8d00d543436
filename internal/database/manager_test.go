package database

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openMemory(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open("file:"+t.Name()+"?mode=memory&cache=shared", Options{LogLevel: logger.Silent})
	require.NoError(t, err)
	return db
}

func TestOpen_EmptyDSN(t *testing.T) {
	_, err := Open("", Options{})
	assert.Error(t, err)
}

func TestManager_ConnectRunsHooksOncePerTransition(t *testing.T) {
	m := NewManager(openMemory(t), time.Second)
	t.Cleanup(func() { _ = m.Close() })

	var calls atomic.Int32
	m.OnReconnect(func(ctx context.Context, db *gorm.DB) error {
		calls.Add(1)
		return nil
	})

	assert.False(t, m.IsReady())
	assert.Equal(t, StateDisconnected, m.State())

	require.NoError(t, m.Connect(context.Background()))
	require.NoError(t, m.Connect(context.Background()))

	assert.True(t, m.IsReady())
	assert.Equal(t, StateConnected, m.State())
	assert.EqualValues(t, 1, calls.Load())
}

func TestManager_FailingHookKeepsNotReady(t *testing.T) {
	m := NewManager(openMemory(t), time.Second)
	t.Cleanup(func() { _ = m.Close() })

	fail := true
	m.OnReconnect(func(ctx context.Context, db *gorm.DB) error {
		if fail {
			return errors.New("migrate failed")
		}
		return nil
	})

	assert.Error(t, m.Connect(context.Background()))
	assert.False(t, m.IsReady())

	fail = false
	assert.NoError(t, m.Connect(context.Background()))
	assert.True(t, m.IsReady())
}

func TestManager_DetectsLostConnection(t *testing.T) {
	m := NewManager(openMemory(t), time.Second)

	var lost atomic.Bool
	m.OnDisconnect(func() { lost.Store(true) })

	require.NoError(t, m.Connect(context.Background()))
	require.NoError(t, m.Close())

	assert.Error(t, m.Connect(context.Background()))
	assert.False(t, m.IsReady())
	assert.True(t, lost.Load())
}

func TestManager_RunStopsOnCancel(t *testing.T) {
	m := NewManager(openMemory(t), 10*time.Millisecond)
	t.Cleanup(func() { _ = m.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		m.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, m.IsReady, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
