package names

import (
	"errors"
	"io"
	"sync"
	"time"

	"github.com/aryszka/forget"
)

const forEver = time.Duration((^uint64(0)) >> 1)

// ErrFailedToStoreRecord is returned when the memory sink cannot hold the record, e.g. due to oversize.
var ErrFailedToStoreRecord = errors.New("failed to store record")

// MemoryOptions are used by the memory sink.
type MemoryOptions struct {

	// Key of the record. Defaults to DefaultKey.
	Key string

	// CacheSize defines the maximum memory usage of the sink. Defaults to 1M.
	CacheSize int

	// ChunkSize is the allocation unit of the underlying cache. Values below 64 are raised to 64.
	ChunkSize int
}

// MemorySink keeps the record in memory. It is used when the names must not touch the disk, e.g. in
// tests, or in hosts that populate the names on every start.
type MemorySink struct {
	forget *forget.Cache
	key    string
	mx     *sync.Mutex
}

// NewMemorySink creates an empty memory sink.
func NewMemorySink(o MemoryOptions) *MemorySink {
	if o.Key == "" {
		o.Key = DefaultKey
	}

	if o.CacheSize <= 0 {
		o.CacheSize = 1 << 20
	}

	if o.ChunkSize < 64 {
		o.ChunkSize = 64
	}

	return &MemorySink{
		forget: forget.New(forget.Options{
			CacheSize: o.CacheSize,
			ChunkSize: o.ChunkSize,
		}),
		key: o.Key,
		mx:  &sync.Mutex{},
	}
}

// Read returns the record, or ErrNotFound when it doesn't exist.
func (s *MemorySink) Read() ([]byte, error) {
	s.mx.Lock()
	defer s.mx.Unlock()

	r, ok := s.forget.Get(s.key)
	if !ok {
		return nil, ErrNotFound
	}

	defer r.Close()
	return io.ReadAll(r)
}

// Write replaces the record. It fails with ErrFailedToStoreRecord when the record doesn't fit.
func (s *MemorySink) Write(b []byte) error {
	s.mx.Lock()
	defer s.mx.Unlock()

	w, ok := s.forget.Set(s.key, forEver)
	if !ok {
		return ErrFailedToStoreRecord
	}

	defer w.Close()
	if _, err := w.Write(b); err != nil {
		return err
	}

	return nil
}

// Close releases the memory of the sink.
func (s *MemorySink) Close() {
	s.forget.Close()
}
