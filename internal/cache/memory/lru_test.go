package memory

import (
	"strconv"
	"sync"
	"testing"

	"github.com/Gunvolt24/dance_center/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestPutGet_HitMiss(t *testing.T) {
	c := NewLRU[int64, string]("test_hit_miss", 2)

	// miss
	_, ok := c.Get(1)
	require.False(t, ok, "expected miss before Put")

	// hit после Put
	c.Put(1, "one")
	got, ok := c.Get(1)
	require.True(t, ok)
	require.Equal(t, "one", got)
}

func TestLRUEviction_ExactlyLeastRecent(t *testing.T) {
	const n = 3
	c := NewLRU[int64, int]("test_evict", n)

	for i := int64(1); i <= n+1; i++ {
		c.Put(i, int(i))
	}

	_, ok := c.Get(1)
	require.False(t, ok, "key 1 must be evicted")
	for i := int64(2); i <= n+1; i++ {
		_, ok := c.Get(i)
		require.True(t, ok, "key %d must stay", i)
	}
	require.Equal(t, n, c.Len())
}

func TestLRUEviction_GetProtects(t *testing.T) {
	c := NewLRU[string, int]("test_protect", 2)

	c.Put("A", 1)
	c.Put("B", 2)
	// A сделать «свежим»
	_, ok := c.Get("A")
	require.True(t, ok)
	// C вытеснит B (самый старый)
	c.Put("C", 3)

	_, ok = c.Get("B")
	require.False(t, ok, "expected B to be evicted")
	_, ok = c.Get("A")
	require.True(t, ok, "expected A to stay")
	require.Equal(t, 2, c.ll.Len())
}

func TestPut_ExistingKeyReplacesAndRefreshes(t *testing.T) {
	c := NewLRU[string, int]("test_replace", 2)

	c.Put("A", 1)
	c.Put("B", 2)
	c.Put("A", 10) // A становится самым свежим, размер не растёт
	c.Put("C", 3)

	v, ok := c.Get("A")
	require.True(t, ok)
	require.Equal(t, 10, v)
	_, ok = c.Get("B")
	require.False(t, ok)
}

func TestRemove(t *testing.T) {
	c := NewLRU[int64, string]("test_remove", 2)
	c.Put(1, "one")

	c.Remove(1)
	c.Remove(42) // отсутствующий ключ

	_, ok := c.Get(1)
	require.False(t, ok)
	require.Zero(t, c.Len())
}

func TestPutIfUnchanged_RejectsAfterRemove(t *testing.T) {
	c := NewLRU[int64, string]("test_stamp_remove", 4)
	c.Put(1, "one")

	st := c.Stamp()
	c.Remove(1) // удаление между чтением из хранилища и записью в кэш

	require.False(t, c.PutIfUnchanged(1, "one", st))
	_, ok := c.Get(1)
	require.False(t, ok, "removed key must not come back")
}

func TestPutIfUnchanged_RejectsAfterPut(t *testing.T) {
	c := NewLRU[int64, string]("test_stamp_put", 4)

	st := c.Stamp()
	c.Put(1, "new")

	require.False(t, c.PutIfUnchanged(1, "old", st))
	got, ok := c.Get(1)
	require.True(t, ok)
	require.Equal(t, "new", got)
}

func TestPutIfUnchanged_OtherKeysDoNotBlock(t *testing.T) {
	c := NewLRU[int64, string]("test_stamp_other", 4)

	st := c.Stamp()
	c.Put(2, "two")
	c.Remove(3)

	require.True(t, c.PutIfUnchanged(1, "one", st))
	got, ok := c.Get(1)
	require.True(t, ok)
	require.Equal(t, "one", got)
}

func TestPutIfUnchanged_FloorAfterReset(t *testing.T) {
	c := NewLRU[int64, int]("test_stamp_floor", 1)

	old := c.Stamp()
	// 4*capacity записей переполняют журнал, следующая его сбрасывает
	for i := int64(1); i <= 5; i++ {
		c.Put(i, int(i))
	}

	require.False(t, c.PutIfUnchanged(9, 9, old), "stamp before reset must be rejected")

	fresh := c.Stamp()
	require.True(t, c.PutIfUnchanged(9, 9, fresh))
}

func TestMetrics_Stale(t *testing.T) {
	metrics.MustRegister()
	const name = "test_metrics_stale"

	c := NewLRU[int, int](name, 2)
	st := c.Stamp()
	c.Remove(1)
	c.PutIfUnchanged(1, 1, st)

	require.Equal(t, 1.0, testutil.ToFloat64(metrics.CacheOps.WithLabelValues(name, "stale")))
}

func TestValues_MostRecentFirst(t *testing.T) {
	c := NewLRU[int64, string]("test_values", 3)
	c.Put(1, "a")
	c.Put(2, "b")
	c.Put(3, "c")
	_, _ = c.Get(1)

	require.Equal(t, []string{"a", "c", "b"}, c.Values())
}

func TestNonPositiveCapacity_UsesDefault(t *testing.T) {
	require.Equal(t, DefaultCapacity, NewLRU[int, int]("test_default", 0).Capacity())
	require.Equal(t, DefaultCapacity, NewLRU[int, int]("test_default", -1).Capacity())
}

func TestCloneImmutability(t *testing.T) {
	type box struct{ items []string }
	clone := func(b *box) *box {
		return &box{items: append([]string(nil), b.items...)}
	}
	c := NewLRU[int, *box]("test_clone", 1, WithClone[int, *box](clone))

	orig := &box{items: []string{"x"}}
	c.Put(1, orig)
	orig.items[0] = "changed-after-put"

	// меняем то, что вернул Get — не должно влиять на кэш
	b1, _ := c.Get(1)
	b1.items[0] = "changed"

	b2, _ := c.Get(1)
	require.Equal(t, "x", b2.items[0])
}

func TestMetrics_HitMissEvicted(t *testing.T) {
	metrics.MustRegister()
	const name = "test_metrics"

	c := NewLRU[int, int](name, 1)
	c.Put(1, 1)
	_, _ = c.Get(1)
	_, _ = c.Get(2)
	c.Put(2, 2)

	require.Equal(t, 1.0, testutil.ToFloat64(metrics.CacheOps.WithLabelValues(name, "hit")))
	require.Equal(t, 1.0, testutil.ToFloat64(metrics.CacheOps.WithLabelValues(name, "miss")))
	require.Equal(t, 1.0, testutil.ToFloat64(metrics.CacheOps.WithLabelValues(name, "evicted")))
	require.Equal(t, 1.0, testutil.ToFloat64(metrics.CacheSize.WithLabelValues(name)))
}

func TestConcurrentAccess_KeepsStructureConsistent(t *testing.T) {
	const capacity = 50
	c := NewLRU[string, int]("test_concurrent", capacity)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				key := strconv.Itoa((w*1000 + i) % 200)
				c.Put(key, i)
				_, _ = c.Get(key)
				if i%10 == 0 {
					c.Remove(key)
				}
			}
		}(w)
	}
	wg.Wait()

	require.LessOrEqual(t, c.Len(), capacity)
	require.Equal(t, c.ll.Len(), len(c.index))
	for e := c.ll.Front(); e != nil; e = e.Next() {
		ent := e.Value.(*entry[string, int])
		require.Same(t, e, c.index[ent.key])
	}
}
