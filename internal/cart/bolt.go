package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

var boltBucket = []byte("storefront")

// BoltSnapshot persists the cart in a local bbolt file.
type BoltSnapshot struct {
	db  *bolt.DB
	key []byte
}

// OpenBolt opens (creating if needed) the bbolt file at path. The caller
// must Close it.
func OpenBolt(path, key string) (*BoltSnapshot, error) {
	if key == "" {
		key = DefaultSnapshotKey
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(boltBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create bucket: %w", err)
	}
	return &BoltSnapshot{db: db, key: []byte(key)}, nil
}

func (b *BoltSnapshot) Load(context.Context) ([]byte, error) {
	var out []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(boltBucket)
		if bucket == nil {
			return errors.New("bucket missing")
		}
		if v := bucket.Get(b.key); v != nil {
			// v is only valid inside the transaction.
			out = append([]byte(nil), v...)
		}
		return nil
	})
	return out, err
}

func (b *BoltSnapshot) Save(_ context.Context, data []byte) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(boltBucket).Put(b.key, data)
	})
}

func (b *BoltSnapshot) Close() error {
	return b.db.Close()
}
