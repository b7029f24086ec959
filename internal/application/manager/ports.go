package manager

import (
	"context"

	"github.com/jhoicas/everledger-liquor/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza que la operación y sus proyecciones se persisten juntas o no se persisten.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos repository.LedgerRepos) error) error
}
