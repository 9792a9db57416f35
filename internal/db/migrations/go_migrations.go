// Package migrations holds the schema as Go migrations, one statement list
// per dialect, because the id and timestamp column types differ between
// SQLite, PostgreSQL and MySQL.
package migrations

// dialect is set by the parent db package before migrations are applied.
var dialect string

// SetDialect configures the SQL dialect for the migrations in this package.
// Must be called before goose.Up. Valid values: "sqlite3", "postgres", "mysql".
func SetDialect(d string) {
	dialect = d
}

func execAll(stmts []string, exec func(string) error) error {
	for _, stmt := range stmts {
		if err := exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
