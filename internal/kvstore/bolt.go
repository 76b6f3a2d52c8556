package kvstore

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

var recordsBucket = []byte("records")

type boltStore struct {
	db *bolt.DB
}

// OpenBolt opens (or creates) the store file and ensures the records bucket
func OpenBolt(path string) (Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open store file: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(recordsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create records bucket: %w", err)
	}

	return &boltStore{db: db}, nil
}

func (s *boltStore) Get(key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(recordsBucket).Get([]byte(key))
		if raw != nil {
			// raw is only valid inside the transaction
			value = make([]byte, len(raw))
			copy(value, raw)
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return value, value != nil, nil
}

func (s *boltStore) Put(key string, value []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(recordsBucket).Put([]byte(key), value)
	})
}

func (s *boltStore) Close() error {
	return s.db.Close()
}
