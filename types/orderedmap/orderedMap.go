package orderedmap

import (
	wk8 "github.com/wk8/go-ordered-map/v2"
)

// OrderedMap stores key-value pairs in insertion order. It is a thin wrapper
// around github.com/wk8/go-ordered-map so callers don't depend on its API
// surface directly.
type OrderedMap[K comparable, V any] struct {
	store *wk8.OrderedMap[K, V]
}

// NewOrderedMap creates a new OrderedMap of type K, V
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		store: wk8.New[K, V](),
	}
}

// Set will store a key-value pair. If the key already exists,
// it will overwrite the existing key-value pair.
func (o *OrderedMap[K, V]) Set(key K, val V) {
	o.store.Set(key, val)
}

// Get will return the value associated with the key.
// If the key doesn't exist, the second return value will be false.
func (o *OrderedMap[K, V]) Get(key K) (V, bool) {
	return o.store.Get(key)
}

// Delete will remove the key and its associated value
func (o *OrderedMap[K, V]) Delete(key K) {
	o.store.Delete(key)
}

// Count returns the count of keys in OrderedMap
func (o *OrderedMap[K, V]) Count() int {
	return o.store.Len()
}

// Keys returns every key in insertion order
func (o *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, 0, o.store.Len())
	for pair := o.store.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}

	return keys
}

// ForEach iterates over the stored key-value pairs in insertion order.
// Returning false from the callback stops the iteration early.
func (o *OrderedMap[K, V]) ForEach(callback func(key K, val V) bool) {
	for pair := o.store.Oldest(); pair != nil; pair = pair.Next() {
		if !callback(pair.Key, pair.Value) {
			break
		}
	}
}
