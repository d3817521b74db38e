package analytics

import (
	"context"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"employee-backend/cache"
	"employee-backend/domain"
)

func setupCounters(t *testing.T) (*miniredis.Miniredis, *Counters) {
	t.Helper()
	mr := miniredis.RunT(t)
	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)
	kv := cache.NewRedis(cache.RedisConfig{Addr: mr.Addr()}, log)
	t.Cleanup(func() { _ = kv.Close() })
	return mr, NewCounters(kv, log)
}

func TestCounters_ReadAllOnFreshStoreIsZeroFilled(t *testing.T) {
	_, c := setupCounters(t)

	got, err := c.ReadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, len(Actions))
	for _, action := range Actions {
		assert.Equal(t, int64(0), got[action], "counter %s must be present and zero", action)
	}
}

func TestCounters_RecordIncrementsExactly(t *testing.T) {
	_, c := setupCounters(t)
	ctx := context.Background()

	require.NoError(t, c.Record(ctx, ActionLogins))
	require.NoError(t, c.Record(ctx, ActionLogins))
	require.NoError(t, c.Record(ctx, ActionRegisters))

	got, err := c.ReadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got[ActionLogins])
	assert.Equal(t, int64(1), got[ActionRegisters])
	assert.Equal(t, int64(0), got[ActionGetEmployees])
}

func TestCounters_ConcurrentRecordsDoNotLoseUpdates(t *testing.T) {
	_, c := setupCounters(t)
	ctx := context.Background()

	const n = 20
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			assert.NoError(t, c.Record(ctx, ActionLogins))
		}()
	}
	wg.Wait()

	got, err := c.ReadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(n), got[ActionLogins])
}

func TestCounters_CountersHaveNoTTL(t *testing.T) {
	mr, c := setupCounters(t)
	ctx := context.Background()

	require.NoError(t, c.Record(ctx, ActionLogins))
	assert.Equal(t, int64(0), int64(mr.TTL(domain.AnalyticsKey(ActionLogins))))
}

func TestCounters_StoreDownSurfacesError(t *testing.T) {
	mr, c := setupCounters(t)
	mr.Close()

	err := c.Record(context.Background(), ActionLogins)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)

	_, err = c.ReadAll(context.Background())
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}
