package service

import (
	"encoding/json"
	"errors"
)

// memoryPersistence stands in for the diskv store: documents live in a
// map as marshaled JSON so load/save exercise the same encode path.
type memoryPersistence struct {
	docs   map[string][]byte
	saves  []string
	failed bool
}

func newMemoryPersistence() *memoryPersistence {
	return &memoryPersistence{docs: make(map[string][]byte)}
}

func (m *memoryPersistence) Load(key string, out any) (bool, error) {
	data, ok := m.docs[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, err
	}
	return true, nil
}

func (m *memoryPersistence) Save(key string, v any) error {
	if m.failed {
		return errors.New("disk full")
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.docs[key] = data
	m.saves = append(m.saves, key)
	return nil
}
