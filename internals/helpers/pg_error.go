// file: internals/helpers/pg_error.go
package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// pgSQLErr matches pgconn.PgError without importing the driver here.
type pgSQLErr interface {
	SQLState() string
	Error() string
}

// MapPGError translates the Postgres SQLSTATEs we rely on for invariants:
// 23505 unique_violation, 23503 foreign_key_violation.
func MapPGError(err error) (int, string) {
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		switch pgErr.SQLState() {
		case "23505":
			return fiber.StatusConflict, "Duplicate entry (unique constraint violated)"
		case "23503":
			return fiber.StatusBadRequest, "Referenced record not found (FK violation)"
		}
	}
	return fiber.StatusInternalServerError, err.Error()
}

func WritePGError(c *fiber.Ctx, err error) error {
	code, msg := MapPGError(err)
	return JsonError(c, code, msg)
}
