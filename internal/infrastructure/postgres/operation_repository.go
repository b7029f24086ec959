package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/everledger-liquor/internal/domain"
	"github.com/jhoicas/everledger-liquor/internal/domain/entity"
	"github.com/jhoicas/everledger-liquor/internal/domain/repository"
)

var _ repository.OperationRepository = (*OperationRepo)(nil)

// OperationRepo persiste el log de operaciones aceptadas (fuente de verdad del replay).
type OperationRepo struct {
	db Querier
}

// NewOperationRepository construye el repositorio sobre un pool o una tx.
func NewOperationRepository(db Querier) *OperationRepo {
	return &OperationRepo{db: db}
}

// Append inserta la operación. La PK sobre seq rechaza huecos duplicados.
func (r *OperationRepo) Append(ctx context.Context, op *entity.Operation) error {
	seq, err := toBigint("seq", op.Seq)
	if err != nil {
		return err
	}
	cost, err := toBigint("cost", op.Cost)
	if err != nil {
		return err
	}
	var fill []byte
	if op.Fill != nil {
		if fill, err = json.Marshal(op.Fill); err != nil {
			return fmt.Errorf("serializar fill: %w", err)
		}
	}
	query := `
		INSERT INTO ledger_operations
			(seq, id, kind, caller, role, name, vendor_name, product_label, cost, fill, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = r.db.Exec(ctx, query,
		seq, op.ID, string(op.Kind), op.Caller, string(op.Role), op.Name,
		op.VendorName, op.ProductLabel, cost, fill, op.RecordedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("operación %d ya registrada: %w", op.Seq, domain.ErrInvalidInput)
		}
		return fmt.Errorf("insert operation: %w", err)
	}
	return nil
}

// List devuelve las operaciones con seq > afterSeq en orden. limit <= 0 devuelve todas.
func (r *OperationRepo) List(ctx context.Context, afterSeq uint64, limit int) ([]*entity.Operation, error) {
	after, err := toBigint("after_seq", afterSeq)
	if err != nil {
		return nil, err
	}
	page, pageArgs := limitClause(limit, 0, 2)
	query := `
		SELECT seq, id, kind, caller, role, name, vendor_name, product_label, cost, fill, recorded_at
		FROM ledger_operations WHERE seq > $1 ORDER BY seq` + page
	rows, err := r.db.Query(ctx, query, append([]any{after}, pageArgs...)...)
	if err != nil {
		return nil, fmt.Errorf("list operations: %w", err)
	}
	defer rows.Close()

	var list []*entity.Operation
	for rows.Next() {
		var (
			op         entity.Operation
			seq, cost  int64
			kind, role string
			fill       []byte
		)
		if err := rows.Scan(&seq, &op.ID, &kind, &op.Caller, &role, &op.Name,
			&op.VendorName, &op.ProductLabel, &cost, &fill, &op.RecordedAt); err != nil {
			return nil, fmt.Errorf("scan operation: %w", err)
		}
		op.Seq = uint64(seq)
		op.Cost = uint64(cost)
		op.Kind = entity.OperationKind(kind)
		op.Role = entity.VendorRole(role)
		if len(fill) > 0 {
			op.Fill = &entity.Fill{}
			if err := json.Unmarshal(fill, op.Fill); err != nil {
				return nil, fmt.Errorf("operación %d: fill corrupto: %w", op.Seq, err)
			}
		}
		list = append(list, &op)
	}
	return list, rows.Err()
}

// LastSeq devuelve la secuencia más alta persistida (0 si el log está vacío).
func (r *OperationRepo) LastSeq(ctx context.Context) (uint64, error) {
	var seq int64
	if err := r.db.QueryRow(ctx, `SELECT COALESCE(MAX(seq), 0) FROM ledger_operations`).Scan(&seq); err != nil {
		return 0, fmt.Errorf("last seq: %w", err)
	}
	return uint64(seq), nil
}
