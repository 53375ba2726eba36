package boltrepo

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/vmihailenco/msgpack/v5"
	bolt "go.etcd.io/bbolt"

	"ogvalley/internal/app/ports"
	"ogvalley/internal/domain/valley"
)

var savesBucket = []byte("saves")

// Store keeps saves in a bbolt file, msgpack-encoded with the JSON field
// names.
type Store struct {
	db *bolt.DB
}

func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(savesBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create saves bucket: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Load(ctx context.Context, key string) (valley.SaveData, error) {
	if err := ctx.Err(); err != nil {
		return valley.SaveData{}, err
	}
	var raw []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		// Get's slice is only valid inside the transaction.
		if v := tx.Bucket(savesBucket).Get([]byte(key)); v != nil {
			raw = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return valley.SaveData{}, err
	}
	if raw == nil {
		return valley.SaveData{}, ports.ErrNotFound
	}
	var data valley.SaveData
	if err := unpack(raw, &data); err != nil {
		return valley.SaveData{}, fmt.Errorf("%w: %v", valley.ErrMalformedSave, err)
	}
	return data, nil
}

func (s *Store) Save(ctx context.Context, key string, data valley.SaveData) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	raw, err := pack(data)
	if err != nil {
		return fmt.Errorf("encode save: %w", err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(savesBucket).Put([]byte(key), raw)
	})
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(savesBucket).Delete([]byte(key))
	})
}

func pack(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func unpack(raw []byte, out any) error {
	dec := msgpack.NewDecoder(bytes.NewReader(raw))
	dec.SetCustomStructTag("json")
	return dec.Decode(out)
}
