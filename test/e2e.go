// Package test holds end-to-end checks that need a running Postgres. They
// are skipped unless CALC_TEST_POSTGRES holds a DSN, for example
// "user=postgres password=password sslmode=disable".
package test

import "os"

func postgresDSN() string {
	return os.Getenv("CALC_TEST_POSTGRES")
}
