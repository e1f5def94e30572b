package kv

import (
	"sync"

	"github.com/yumoapp/aula/core/streak"
)

type inMemStore struct {
	mutex sync.RWMutex
	table map[string]string
}

var _ streak.Store = (*inMemStore)(nil)

// NewInMemStore returns a streak.Store that lives and dies with the process;
// used by tests and local tooling.
func NewInMemStore() streak.Store {
	return &inMemStore{table: make(map[string]string)}
}

func (store *inMemStore) Get(key string) (string, error) {
	store.mutex.RLock()
	defer store.mutex.RUnlock()

	if value, ok := store.table[key]; ok {
		return value, nil
	}
	return "", streak.ErrKeyNotFound
}

func (store *inMemStore) Set(key, value string) error {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	store.table[key] = value
	return nil
}
