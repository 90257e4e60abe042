/*
Package names keeps the list of known tag names that editing tools offer in their selection controls.

The list is independent of the tags assigned to live objects: a name can be listed without any object
having it, and objects can have tags that are not listed. It is kept sorted and free of duplicates, and is
stored as a single JSON record, e.g.:

	{
	  "tags": [
	    "enemy",
	    "boss"
	  ]
	}

The record is stored by a Sink. By default, it is a file, but it can be kept in memory, in a sql data base,
in BoltDB or in Redis, too. Hosts that don't need editing support don't need to import this package.

Storage failures are logged and returned, but they leave the cache usable with its in-memory list.
*/
package names

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/aryszka/multitag/internal/diag"
)

// Logger receives the diagnostics of the cache. *slog.Logger implements it.
type Logger = diag.Logger

// ErrDamagedRecord is returned when the stored record cannot be decoded.
var ErrDamagedRecord = errors.New("damaged record")

type record struct {
	Tags []string `json:"tags"`
}

// Options are used to initialize the name cache.
type Options struct {

	// Custom sink implementation. By default, a builtin sink is used, selected by SinkOptions.
	Sink Sink

	// SinkOptions define which builtin sink to use when not replaced by a custom sink.
	SinkOptions SinkOptions

	// Logger receives storage errors. Defaults to a warn level logger writing to stderr.
	Logger Logger
}

// Cache holds the sorted list of known tag names, and keeps it in sync with the stored record.
type Cache struct {
	sink  Sink
	names []string
	log   Logger
}

// New creates a name cache and loads the stored record. It only fails when the builtin sink cannot be
// opened. Failing to load the record is logged, and the cache starts empty.
func New(o Options) (*Cache, error) {
	if o.Sink == nil {
		s, err := OpenSink(o.SinkOptions)
		if err != nil {
			return nil, err
		}

		o.Sink = s
	}

	c := &Cache{
		sink: o.Sink,
		log:  diag.OrDefault(o.Logger),
	}

	c.Load()
	return c, nil
}

func normalize(names []string) []string {
	n := make([]string, 0, len(names))
	for _, ni := range names {
		if ni != "" {
			n = append(n, ni)
		}
	}

	slices.Sort(n)
	return slices.Compact(n)
}

func (c *Cache) read() ([]string, error) {
	b, err := c.sink.Read()
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	var r record
	if err := json.Unmarshal(b, &r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDamagedRecord, err)
	}

	return normalize(r.Tags), nil
}

func (c *Cache) write(names []string) error {
	b, err := json.MarshalIndent(record{Tags: names}, "", "  ")
	if err != nil {
		return err
	}

	return c.sink.Write(b)
}

// current returns the stored list, or, when it cannot be read, the in-memory one.
func (c *Cache) current() []string {
	n, err := c.read()
	if err != nil {
		c.log.Error("failed to read tag names, using the cached ones", "error", err)
		return slices.Clone(c.names)
	}

	return n
}

func (c *Cache) commit(names []string) error {
	err := c.write(names)
	c.names = names
	if err != nil {
		c.log.Error("failed to store tag names", "error", err)
		return err
	}

	return c.Load()
}

// Load reads the stored record into the cache. A missing record results in an empty list. When the record
// cannot be read, the cache keeps its previous list.
func (c *Cache) Load() error {
	n, err := c.read()
	if err != nil {
		c.log.Error("failed to load tag names", "error", err)
		return err
	}

	c.names = n
	return nil
}

// Add merges names into the stored list and reloads it. When storing fails, the merged list is still
// used in memory.
func (c *Cache) Add(names ...string) error {
	return c.commit(normalize(append(c.current(), names...)))
}

// Destroy removes a name from the stored list and reloads it. Names that are not listed are ignored.
func (c *Cache) Destroy(name string) error {
	n := c.current()
	return c.commit(slices.DeleteFunc(n, func(ni string) bool { return ni == name }))
}

// All returns the sorted list of names. The returned slice is a copy.
func (c *Cache) All() []string {
	return slices.Clone(c.names)
}

// Contains tells whether a name is listed.
func (c *Cache) Contains(name string) bool {
	_, ok := slices.BinarySearch(c.names, name)
	return ok
}

// Close releases the sink.
func (c *Cache) Close() {
	c.sink.Close()
}
