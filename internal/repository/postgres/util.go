package postgres

import (
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
)

type scanner interface {
	Scan(dest ...any) error
}

func itoa(i int) string { return strconv.Itoa(i) }

// page clamps list arguments the same way for every table.
func page(limit, offset int) (int, int) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func isNoRows(err error) bool { return errors.Is(err, pgx.ErrNoRows) }
