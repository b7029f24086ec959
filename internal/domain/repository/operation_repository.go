package repository

import (
	"context"

	"github.com/jhoicas/everledger-liquor/internal/domain/entity"
)

// OperationRepository define el puerto de persistencia del log de operaciones (DIP).
// El log es la fuente de verdad: el estado en memoria se reconstruye a partir de él.
type OperationRepository interface {
	Append(ctx context.Context, op *entity.Operation) error
	// List devuelve operaciones con Seq > afterSeq en orden ascendente; limit <= 0 = sin límite.
	List(ctx context.Context, afterSeq uint64, limit int) ([]*entity.Operation, error)
	LastSeq(ctx context.Context) (uint64, error)
}
