package names

import (
	"fmt"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"
)

const recordBucket = "multitag"

// DefaultBoltPath is used by the bolt sink when no path is specified.
const DefaultBoltPath = "tag-names.db"

// BoltOptions are used by the bolt sink.
type BoltOptions struct {

	// Path of the data base file. Defaults to DefaultBoltPath.
	Path string

	// Key of the record. Defaults to DefaultKey.
	Key string
}

// BoltSink stores the record in a BoltDB file.
type BoltSink struct {
	db  *bbolt.DB
	key []byte
}

// NewBoltSink opens, or creates, the data base file.
func NewBoltSink(o BoltOptions) (*BoltSink, error) {
	if o.Path == "" {
		o.Path = DefaultBoltPath
	}

	if o.Key == "" {
		o.Key = DefaultKey
	}

	db, err := bbolt.Open(filepath.Clean(o.Path), 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt db: %w", err)
	}

	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(recordBucket))
		return err
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create record bucket: %w", err)
	}

	return &BoltSink{db: db, key: []byte(o.Key)}, nil
}

// Read returns the record from the bucket, or ErrNotFound when it doesn't exist.
func (s *BoltSink) Read() ([]byte, error) {
	var b []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket([]byte(recordBucket)).Get(s.key)
		if v == nil {
			return ErrNotFound
		}

		b = make([]byte, len(v))
		copy(b, v)
		return nil
	})

	return b, err
}

// Write replaces the record in a single transaction.
func (s *BoltSink) Write(b []byte) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(recordBucket)).Put(s.key, b)
	})
}

// Close closes the data base file.
func (s *BoltSink) Close() {
	_ = s.db.Close()
}
