package divergence

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/wareflow/backoffice/model"
)

type DivergenceRepository interface {
	RecordTx(ctx context.Context, tx *sqlx.Tx, d *model.Divergence) error
	ClearTx(ctx context.Context, tx *sqlx.Tx, palletID, productID uint64) error
	ListByPallet(ctx context.Context, palletID uint64) ([]model.Divergence, error)
	SummarizeByReceipt(ctx context.Context, receiptID uint64) ([]model.DivergenceSummary, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewDivergenceRepository(conn *sqlx.DB) DivergenceRepository {
	return &SQL{conn: conn}
}

// RecordTx writes one divergence keyed by (pallet, product, type). Re-marking
// the same product replaces the previous quantity instead of stacking rows.
func (r *SQL) RecordTx(ctx context.Context, tx *sqlx.Tx, d *model.Divergence) error {
	q := `INSERT INTO divergence (pallet_id, product_id, type, quantity, notes)
		VALUES (?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE quantity = VALUES(quantity), notes = VALUES(notes)`
	_, err := tx.ExecContext(ctx, q, d.PalletID, d.ProductID, d.Type, d.Quantity, d.Notes)
	return err
}

// ClearTx removes every divergence for the product on the pallet, used when
// the product is re-marked as fully conferred.
func (r *SQL) ClearTx(ctx context.Context, tx *sqlx.Tx, palletID, productID uint64) error {
	_, err := tx.ExecContext(ctx, "DELETE FROM divergence WHERE pallet_id = ? AND product_id = ?", palletID, productID)
	return err
}

func (r *SQL) ListByPallet(ctx context.Context, palletID uint64) ([]model.Divergence, error) {
	divergences := make([]model.Divergence, 0)
	q := "SELECT id, pallet_id, product_id, type, quantity, notes FROM divergence WHERE pallet_id = ? ORDER BY id"
	if err := r.conn.SelectContext(ctx, &divergences, q, palletID); err != nil {
		return nil, err
	}
	return divergences, nil
}

func (r *SQL) SummarizeByReceipt(ctx context.Context, receiptID uint64) ([]model.DivergenceSummary, error) {
	items := make([]model.DivergenceSummary, 0)
	q := `SELECT d.product_id,
			MAX(pi.product_name) AS product_name,
			COALESCE(SUM(CASE WHEN d.type = 1 THEN d.quantity ELSE 0 END), 0) AS shortage_qty,
			COALESCE(SUM(CASE WHEN d.type = 2 THEN d.quantity ELSE 0 END), 0) AS damage_qty
		FROM divergence d
		JOIN pallet p ON p.id = d.pallet_id
		JOIN pallet_item pi ON pi.pallet_id = d.pallet_id AND pi.product_id = d.product_id
		WHERE p.receipt_id = ?
		GROUP BY d.product_id
		ORDER BY d.product_id`
	if err := r.conn.SelectContext(ctx, &items, q, receiptID); err != nil {
		return nil, err
	}
	return items, nil
}
