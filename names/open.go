package names

import "fmt"

// Sink driver names accepted by OpenSink.
const (
	DriverFile     = "file"
	DriverMemory   = "memory"
	DriverSQLite3  = sqlite3
	DriverSQLite   = sqlite
	DriverPostgres = postgres
	DriverBolt     = "bolt"
	DriverRedis    = "redis"
)

// SinkOptions select and configure one of the builtin sinks.
type SinkOptions struct {

	// Driver names the sink implementation: file, memory, sqlite3, sqlite, postgres, bolt or redis. The
	// default is file.
	Driver string

	// DataSource is the file path for the file, sqlite and bolt sinks, the connection string for postgres,
	// and the URL for redis. Each sink has its own default.
	DataSource string

	// Key of the record in the sinks that can hold more than one. Defaults to DefaultKey.
	Key string

	// MemoryOptions are used by the memory sink.
	MemoryOptions MemoryOptions
}

// OpenSink creates the sink selected by the options.
func OpenSink(o SinkOptions) (Sink, error) {
	switch o.Driver {
	case "", DriverFile:
		return NewFileSink(o.DataSource), nil
	case DriverMemory:
		mo := o.MemoryOptions
		if mo.Key == "" {
			mo.Key = o.Key
		}

		return NewMemorySink(mo), nil
	case DriverSQLite3, DriverSQLite, DriverPostgres:
		return NewSQLSink(SQLOptions{
			DriverName:     o.Driver,
			DataSourceName: o.DataSource,
			Key:            o.Key,
		})
	case DriverBolt:
		return NewBoltSink(BoltOptions{Path: o.DataSource, Key: o.Key})
	case DriverRedis:
		return NewRedisSink(RedisOptions{URL: o.DataSource, Key: o.Key})
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDriver, o.Driver)
	}
}
