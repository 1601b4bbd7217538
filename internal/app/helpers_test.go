package app

import (
	"context"

	"github.com/flipword/api/internal/store"
)

type memStore struct {
	data map[string][]byte
}

func (s *memStore) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := s.data[key]
	if !ok {
		return nil, store.ErrNotFound
	}
	return v, nil
}

func (s *memStore) Set(_ context.Context, key string, value []byte) error {
	s.data[key] = value
	return nil
}

func (s *memStore) Close() error { return nil }

type provider struct{ s store.Store }

func (p provider) Store(context.Context) store.Store { return p.s }
