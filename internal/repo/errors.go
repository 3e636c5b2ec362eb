package repo

import (
	"errors"

	"github.com/jackc/pgx/v5"
)

// Общие ошибки репозитория.
var (
	// ErrNotFound — запись не найдена в БД.
	ErrNotFound = errors.New("not found")
)

// mapScanError переводит pgx.ErrNoRows в ErrNotFound.
// Остальные ошибки возвращаются как есть.
func mapScanError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
