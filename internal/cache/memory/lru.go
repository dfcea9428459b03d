package memory

import (
	"container/list"
	"sync"

	"github.com/Gunvolt24/dance_center/pkg/metrics"
)

// DefaultCapacity — ёмкость кэша одного типа сущностей по умолчанию.
const DefaultCapacity = 100

type entry[K comparable, V any] struct {
	key   K
	value V
}

// LRU — кэш фиксированной ёмкости с вытеснением давно не использованных ключей.
// Get (попадание) и Put делают ключ самым свежим. Времени жизни у записей нет.
// Безопасен для конкурентного использования: список и индекс защищены одним мьютексом.
type LRU[K comparable, V any] struct {
	name     string
	capacity int
	clone    func(V) V

	ll    *list.List
	index map[K]*list.Element

	// seq растёт на каждой записи и удалении; written — seq последней записи ключа.
	// floor — seq на момент очистки written: более старые отметки считаются устаревшими.
	seq     uint64
	written map[K]uint64
	floor   uint64

	mu sync.Mutex
}

// Option — настройка LRU.
type Option[K comparable, V any] func(*LRU[K, V])

// WithClone — копировать значения при записи и чтении, чтобы вызывающий
// не мог изменить содержимое кэша через возвращённый указатель.
func WithClone[K comparable, V any](clone func(V) V) Option[K, V] {
	return func(c *LRU[K, V]) { c.clone = clone }
}

// NewLRU — кэш с именем name (метка метрик) и ёмкостью capacity (<= 0 означает DefaultCapacity).
func NewLRU[K comparable, V any](name string, capacity int, opts ...Option[K, V]) *LRU[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	c := &LRU[K, V]{
		name:     name,
		capacity: capacity,
		ll:       list.New(),
		index:    make(map[K]*list.Element, capacity),
		written:  make(map[K]uint64),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get — значение по ключу; попадание делает ключ самым свежим.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.index[key]
	if !ok {
		metrics.CacheOps.WithLabelValues(c.name, "miss").Inc()
		var zero V
		return zero, false
	}
	c.ll.MoveToFront(elem)
	metrics.CacheOps.WithLabelValues(c.name, "hit").Inc()
	return c.copyOf(elem.Value.(*entry[K, V]).value), true
}

// Put — вставка или замена; при переполнении вытесняется самый давний ключ.
func (c *LRU[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	metrics.CacheOps.WithLabelValues(c.name, "put").Inc()
	c.put(key, value)
}

// Stamp — отметка перед чтением из хранилища для PutIfUnchanged.
func (c *LRU[K, V]) Stamp() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seq
}

// PutIfUnchanged — Put, только если ключ не записывался и не удалялся после stamp.
// Так значение, прочитанное из хранилища до Remove или Put, не возвращается в кэш.
func (c *LRU[K, V]) PutIfUnchanged(key K, value V, stamp uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if stamp < c.floor || c.written[key] > stamp {
		metrics.CacheOps.WithLabelValues(c.name, "stale").Inc()
		return false
	}
	metrics.CacheOps.WithLabelValues(c.name, "put").Inc()
	c.put(key, value)
	return true
}

// put — вызывается под c.mu.
func (c *LRU[K, V]) put(key K, value V) {
	c.markWritten(key)

	if elem, ok := c.index[key]; ok {
		elem.Value.(*entry[K, V]).value = c.copyOf(value)
		c.ll.MoveToFront(elem)
		return
	}

	c.index[key] = c.ll.PushFront(&entry[K, V]{key: key, value: c.copyOf(value)})
	if c.ll.Len() > c.capacity {
		c.evictLRU()
	}
	metrics.CacheSize.WithLabelValues(c.name).Set(float64(c.ll.Len()))
}

// Remove — удаление ключа; отсутствующий ключ игнорируется.
func (c *LRU[K, V]) Remove(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.markWritten(key)

	elem, ok := c.index[key]
	if !ok {
		return
	}
	c.removeElement(elem)
	metrics.CacheOps.WithLabelValues(c.name, "remove").Inc()
	metrics.CacheSize.WithLabelValues(c.name).Set(float64(c.ll.Len()))
}

// Values — снимок значений от самого свежего к самому давнему. Порядок вытеснения не меняется.
func (c *LRU[K, V]) Values() []V {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]V, 0, c.ll.Len())
	for elem := c.ll.Front(); elem != nil; elem = elem.Next() {
		out = append(out, c.copyOf(elem.Value.(*entry[K, V]).value))
	}
	return out
}

// Len — текущее число записей.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

// Capacity — ёмкость, заданная при создании.
func (c *LRU[K, V]) Capacity() int { return c.capacity }

// ------вспомогательные функции------

// markWritten — отметка записи ключа. Вызывается под c.mu.
// written ограничен: при переполнении очищается, а floor отсекает все отметки до очистки.
func (c *LRU[K, V]) markWritten(key K) {
	c.seq++
	if len(c.written) >= 4*c.capacity {
		clear(c.written)
		c.floor = c.seq
	}
	c.written[key] = c.seq
}

// evictLRU — удаляет наименее используемый элемент. Вызывается под c.mu.
func (c *LRU[K, V]) evictLRU() {
	if back := c.ll.Back(); back != nil {
		c.removeElement(back)
		metrics.CacheOps.WithLabelValues(c.name, "evicted").Inc()
	}
}

// removeElement — удаляет элемент из списка и индекса. Вызывается под c.mu.
func (c *LRU[K, V]) removeElement(elem *list.Element) {
	delete(c.index, elem.Value.(*entry[K, V]).key)
	c.ll.Remove(elem)
}

func (c *LRU[K, V]) copyOf(v V) V {
	if c.clone == nil {
		return v
	}
	return c.clone(v)
}
