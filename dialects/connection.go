package dialects

import (
	"fmt"
	"strings"

	"github.com/ghetzel/rollup/dal"
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// FromConnectionString resolves the dialect for a datasource connection URI,
// along with the database/sql driver name and DSN needed to open it.  The
// dialect is resolved exactly once per connection and should be passed
// explicitly to every compiler that targets it.
func FromConnectionString(conn dal.ConnectionString) (Dialect, string, string, error) {
	switch backend := conn.Backend(); backend {
	case `sqlite`, `sqlite3`:
		dialect, _ := Get(`sqlite`)
		driver, dsn := sqliteDSN(conn)
		return dialect, driver, dsn, nil

	case `mysql`:
		dialect, _ := Get(`mysql`)
		driver, dsn := mysqlDSN(conn)
		return dialect, driver, dsn, nil

	case `postgres`, `postgresql`, `pgsql`:
		dialect, _ := Get(`postgres`)
		driver, dsn := postgresDSN(conn)
		return dialect, driver, dsn, nil

	default:
		return nil, ``, ``, dal.ConfigurationError("no dialect for backend %q", backend)
	}
}

// ParseConnectionString already expanded "/." and "/~" prefixes, so the
// dataset arrives as the absolute file path, except for the special in-memory
// dataset.
func sqliteDSN(conn dal.ConnectionString) (string, string) {
	dataset := conn.Dataset()

	if dataset == `/memory` {
		return `sqlite3`, `:memory:`
	}

	return `sqlite3`, dataset
}

func mysqlDSN(conn dal.ConnectionString) (string, string) {
	var dsn, protocol, host string

	// set or autodetect protocol
	if v := conn.Protocol(); v != `` {
		protocol = v
	} else if strings.HasPrefix(conn.Host(), `/`) {
		protocol = `unix`
	} else {
		protocol = `tcp`
	}

	// append default port to host if not present
	if strings.Contains(conn.Host(), `:`) {
		host = conn.Host()
	} else {
		host = fmt.Sprintf("%s:3306", conn.Host())
	}

	if u, p, ok := conn.Credentials(); ok {
		dsn += fmt.Sprintf("%s:%s@", u, p)
	}

	dsn += fmt.Sprintf("%s(%s)%s", protocol, host, conn.Dataset())

	return `mysql`, dsn
}

func postgresDSN(conn dal.ConnectionString) (string, string) {
	var host string

	dsn := `postgres://`

	if strings.Contains(conn.Host(), `:`) {
		host = conn.Host()
	} else {
		host = fmt.Sprintf("%s:5432", conn.Host())
	}

	if u, p, ok := conn.Credentials(); ok {
		dsn += fmt.Sprintf("%s:%s@", u, p)
	}

	dsn += host
	dsn += conn.Dataset()
	dsn += `?sslmode=` + conn.OptString(`sslmode`, `disable`)

	return `postgres`, dsn
}
