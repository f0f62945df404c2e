//go:build !sqlite

package storage

import "errors"

func newSQLiteStore(_ string) (Store, error) {
	return nil, errors.New("storage: sqlite backend unavailable in this build; rebuild with -tags sqlite")
}
