package names

import (
	"database/sql"
	"errors"
	"fmt"

	// package registers itself
	_ "github.com/lib/pq"

	// package registers itself
	_ "github.com/mattn/go-sqlite3"

	// package registers itself
	_ "modernc.org/sqlite"
)

const (
	sqlite3  = "sqlite3"
	sqlite   = "sqlite"
	postgres = "postgres"

	// DefaultDriverName is used as the default sql driver (sqlite3).
	DefaultDriverName = sqlite3

	// DefaultDataSourceName is used as the default data source (tag-names.sqlite).
	DefaultDataSourceName = "tag-names.sqlite"
)

type commands struct {
	createTable string
	getRecord   string
	putRecord   string
}

// SQLOptions are used by the sql sink.
type SQLOptions struct {

	// DriverName specifies which data base driver to use. Currently supported: postgres, sqlite3 (cgo) and
	// sqlite (pure Go). The default value is sqlite3.
	DriverName string

	// DataSourceName specifies the data source for the sink. In case of postgresql, it is the postgresql
	// connection string, while in case of sqlite, it is a path to a new or existing file. When not
	// specified and the driver is sqlite3 or sqlite, ./tag-names.sqlite will be used.
	DataSourceName string

	// Key of the record. Defaults to DefaultKey.
	Key string
}

// SQLSink stores the record as a row in a sql data base.
type SQLSink struct {
	db       *sql.DB
	key      string
	commands commands
}

func getCommands(driverName string) commands {
	c := commands{
		createTable: `create table if not exists multitag_records (
			name text primary key,
			body text not null
		)`,
		getRecord: `select body from multitag_records where name = ?`,
		putRecord: `insert into multitag_records (name, body) values (?, ?)
			on conflict (name) do update set body = excluded.body`,
	}

	if driverName == postgres {
		c.getRecord = `select body from multitag_records where name = $1`
		c.putRecord = `insert into multitag_records (name, body) values ($1, $2)
			on conflict (name) do update set body = excluded.body`
	}

	return c
}

// NewSQLSink opens the data base and creates the record table when it doesn't exist.
func NewSQLSink(o SQLOptions) (*SQLSink, error) {
	if o.DriverName == "" {
		o.DriverName = DefaultDriverName
	}

	switch o.DriverName {
	case sqlite3, sqlite, postgres:
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDriver, o.DriverName)
	}

	if o.DataSourceName == "" {
		if o.DriverName == postgres {
			return nil, errors.New("postgres data source is required")
		}

		o.DataSourceName = DefaultDataSourceName
	}

	if o.Key == "" {
		o.Key = DefaultKey
	}

	db, err := sql.Open(o.DriverName, o.DataSourceName)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", o.DriverName, err)
	}

	c := getCommands(o.DriverName)
	if _, err := db.Exec(c.createTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("create record table: %w", err)
	}

	return &SQLSink{
		db:       db,
		key:      o.Key,
		commands: c,
	}, nil
}

// Read returns the record, or ErrNotFound when the row doesn't exist.
func (s *SQLSink) Read() ([]byte, error) {
	var body string
	err := s.db.QueryRow(s.commands.getRecord, s.key).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("read record: %w", err)
	}

	return []byte(body), nil
}

// Write inserts or replaces the row of the record.
func (s *SQLSink) Write(b []byte) error {
	if _, err := s.db.Exec(s.commands.putRecord, s.key, string(b)); err != nil {
		return fmt.Errorf("write record: %w", err)
	}

	return nil
}

// Close closes the data base.
func (s *SQLSink) Close() {
	s.db.Close()
}
