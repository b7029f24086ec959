package postgres

import (
	"errors"
	"fmt"
	"math"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/everledger-liquor/internal/domain"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return false
}

// isCheckViolation verifica si un error es una violación de CHECK (23514)
// o un desborde numérico (22003).
func isCheckViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23514" || pgErr.Code == "22003"
	}
	return false
}

// toBigint convierte contadores sin signo al rango de BIGINT.
func toBigint(field string, v uint64) (int64, error) {
	if v > math.MaxInt64 {
		return 0, fmt.Errorf("%s %d excede BIGINT: %w", field, v, domain.ErrInvalidInput)
	}
	return int64(v), nil
}

// limitClause arma LIMIT/OFFSET; limit <= 0 significa sin límite.
func limitClause(limit, offset int, next int) (string, []any) {
	var (
		sql  string
		args []any
	)
	if limit > 0 {
		sql += fmt.Sprintf(" LIMIT $%d", next)
		args = append(args, limit)
		next++
	}
	if offset > 0 {
		sql += fmt.Sprintf(" OFFSET $%d", next)
		args = append(args, offset)
	}
	return sql, args
}
