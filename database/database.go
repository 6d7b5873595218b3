package database

import (
	"database/sql/driver"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	sqliteDriver "modernc.org/sqlite"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	DefaultURL = "sqlite:///zencrow.db"
)

// FoldFunc is the SQLite function that lowercases every Unicode letter.
// The built-in LOWER only folds ASCII.
const FoldFunc = "unicode_lower"

func init() {
	sqliteDriver.MustRegisterDeterministicScalarFunction(FoldFunc, 1, foldValue)
}

func foldValue(_ *sqliteDriver.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case string:
		return strings.ToLower(v), nil
	case []byte:
		return strings.ToLower(string(v)), nil
	default:
		return v, nil
	}
}

type Config struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func LoadConfig() Config {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		url = DefaultURL
	}
	return Config{
		URL:             url,
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: 30 * time.Minute,
	}
}

// ParseURL maps a DATABASE_URL onto a database/sql driver name and DSN.
// sqlite URLs follow the sqlite:///relative.db and sqlite:////abs.db forms.
func ParseURL(url string) (driver string, dsn string, err error) {
	switch {
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return DriverPostgres, url, nil
	case strings.HasPrefix(url, "sqlite://"):
		path := strings.TrimPrefix(url, "sqlite://")
		path = strings.TrimPrefix(path, "/")
		if path == "" {
			return "", "", fmt.Errorf("sqlite url %q has no path", url)
		}
		return DriverSQLite, path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_time_format=sqlite", nil
	default:
		return "", "", fmt.Errorf("unsupported database url scheme: %q", url)
	}
}

func New(cfg Config) (*sqlx.DB, error) {
	driver, dsn, err := ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", driver, err)
	}

	if driver == DriverSQLite {
		// SQLite allows a single writer; :memory: databases also live per connection.
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	return db, nil
}
