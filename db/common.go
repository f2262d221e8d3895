package db

import (
	"fmt"
)

// Build data source name
func BuildDSN(host string, port int, username, password, dbname, args string) string {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s", username, password, host, port, dbname)
	if args != "" {
		dsn += "?" + args
	}
	return dsn
}
