package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/avstrong/hotelsearch/internal/logger"
)

type Config struct {
	L *logger.Logger
}

// DB is a namespaced key-value store. Every namespace is the persisted
// storage of one client.
type DB struct {
	mu         sync.Mutex
	l          *logger.Logger
	namespaces map[string]map[string][]byte
}

func New(conf Config) *DB {
	l := conf.L
	if l == nil {
		l = logger.Discard()
	}

	//nolint:exhaustruct
	return &DB{
		l:          l,
		namespaces: make(map[string]map[string][]byte),
	}
}

func (db *DB) Get(_ context.Context, namespace, key string) ([]byte, bool, error) {
	if err := checkKey(namespace, key); err != nil {
		return nil, false, err
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	value, ok := db.namespaces[namespace][key]
	if !ok {
		return nil, false, nil
	}

	return slices.Clone(value), true, nil
}

func (db *DB) Set(_ context.Context, namespace, key string, value []byte) error {
	if err := checkKey(namespace, key); err != nil {
		return err
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	ns, ok := db.namespaces[namespace]
	if !ok {
		ns = make(map[string][]byte)
		db.namespaces[namespace] = ns
	}

	ns[key] = slices.Clone(value)

	db.l.LogDebugf("stored %d bytes under %s/%s", len(value), namespace, key)

	return nil
}

func (db *DB) Close() error {
	return nil
}

func checkKey(namespace, key string) error {
	if namespace == "" {
		return ErrEmptyNamespace
	}

	if key == "" {
		return ErrEmptyKey
	}

	return nil
}
