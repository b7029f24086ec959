package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/everledger-liquor/internal/domain"
	"github.com/jhoicas/everledger-liquor/internal/domain/entity"
	"github.com/jhoicas/everledger-liquor/internal/domain/repository"
)

var _ repository.ProductRecordRepository = (*ProductRecordRepo)(nil)

// ProductRecordRepo persiste los registros de procedencia.
type ProductRecordRepo struct {
	db Querier
}

// NewProductRecordRepository construye el adaptador sobre un pool o una tx.
func NewProductRecordRepository(db Querier) *ProductRecordRepo {
	return &ProductRecordRepo{db: db}
}

// Create inserta el registro; un product_id repetido devuelve ErrDuplicateProductID.
func (r *ProductRecordRepo) Create(ctx context.Context, rec *entity.ProductRecord) error {
	seq, err := toBigint("seq", rec.Seq)
	if err != nil {
		return err
	}
	labelCost, err := toBigint("label_cost", rec.LabelCost)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO product_records
			(product_id, vendor_address, vendor_name, quantity, volume, batch, day, month, year,
			 label_vendor, product_label, label_cost, seq)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err = r.db.Exec(ctx, query,
		rec.ProductID, rec.VendorAddress, rec.VendorName, rec.Quantity, rec.Volume,
		rec.Batch, rec.Day, rec.Month, rec.Year,
		rec.LabelVendor, rec.ProductLabel, labelCost, seq,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("crear registro %q: %w", rec.ProductID, domain.ErrDuplicateProductID)
		}
		if isCheckViolation(err) {
			return fmt.Errorf("crear registro %q: %w", rec.ProductID, domain.ErrInvalidInput)
		}
		return fmt.Errorf("insert product record: %w", err)
	}
	return nil
}

// ListByVendor lista los registros de un fabricante en orden de secuencia.
func (r *ProductRecordRepo) ListByVendor(ctx context.Context, vendorAddress string, limit, offset int) ([]*entity.ProductRecord, error) {
	page, pageArgs := limitClause(limit, offset, 2)
	query := `
		SELECT product_id, vendor_address, vendor_name, quantity, volume, batch, day, month, year,
		       label_vendor, product_label, label_cost, seq
		FROM product_records WHERE vendor_address = $1 ORDER BY seq` + page
	rows, err := r.db.Query(ctx, query, append([]any{vendorAddress}, pageArgs...)...)
	if err != nil {
		return nil, fmt.Errorf("list product records: %w", err)
	}
	defer rows.Close()

	var list []*entity.ProductRecord
	for rows.Next() {
		var (
			rec            entity.ProductRecord
			labelCost, seq int64
		)
		if err := rows.Scan(
			&rec.ProductID, &rec.VendorAddress, &rec.VendorName, &rec.Quantity, &rec.Volume,
			&rec.Batch, &rec.Day, &rec.Month, &rec.Year,
			&rec.LabelVendor, &rec.ProductLabel, &labelCost, &seq,
		); err != nil {
			return nil, fmt.Errorf("scan product record: %w", err)
		}
		rec.LabelCost = uint64(labelCost)
		rec.Seq = uint64(seq)
		list = append(list, &rec)
	}
	return list, rows.Err()
}
