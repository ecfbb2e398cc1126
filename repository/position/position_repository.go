package position

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/wareflow/backoffice/model"
)

type PositionRepository interface {
	ListByWarehouse(ctx context.Context, warehouseID uint64, pageSize int) ([]model.StoragePosition, error)
	GetByIDTx(ctx context.Context, tx *sqlx.Tx, positionID uint64) (*model.StoragePosition, error)
	SetOccupiedTx(ctx context.Context, tx *sqlx.Tx, positionID uint64, occupied bool) error
	BindPalletTx(ctx context.Context, tx *sqlx.Tx, palletID, positionID uint64) error
	ReleasePalletTx(ctx context.Context, tx *sqlx.Tx, palletID uint64) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewPositionRepository(conn *sqlx.DB) PositionRepository {
	return &SQL{conn: conn}
}

const listPositionsQuery = `SELECT id, code, barcode, warehouse_id, occupied, active FROM storage_position WHERE warehouse_id = ? AND active = 1 ORDER BY id LIMIT ? OFFSET ?`

// ListByWarehouse pages through every position row for the warehouse. The
// loop runs until a short page is returned so the snapshot is never
// truncated; occupancy stats computed on a partial snapshot are wrong.
func (r *SQL) ListByWarehouse(ctx context.Context, warehouseID uint64, pageSize int) ([]model.StoragePosition, error) {
	if pageSize <= 0 {
		pageSize = 500
	}

	positions := make([]model.StoragePosition, 0, pageSize)
	offset := 0
	for {
		page := make([]model.StoragePosition, 0, pageSize)
		if err := r.conn.SelectContext(ctx, &page, listPositionsQuery, warehouseID, pageSize, offset); err != nil {
			return nil, err
		}
		positions = append(positions, page...)
		if len(page) < pageSize {
			return positions, nil
		}
		offset += pageSize
	}
}

// GetByIDTx locks the position row for the remainder of the transaction so
// the occupied check-and-set cannot race another allocation.
func (r *SQL) GetByIDTx(ctx context.Context, tx *sqlx.Tx, positionID uint64) (*model.StoragePosition, error) {
	var pos model.StoragePosition
	q := "SELECT id, code, barcode, warehouse_id, occupied, active FROM storage_position WHERE id = ? FOR UPDATE"
	if err := tx.GetContext(ctx, &pos, q, positionID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &pos, nil
}

func (r *SQL) SetOccupiedTx(ctx context.Context, tx *sqlx.Tx, positionID uint64, occupied bool) error {
	_, err := tx.ExecContext(ctx, "UPDATE storage_position SET occupied = ? WHERE id = ?", occupied, positionID)
	return err
}

func (r *SQL) BindPalletTx(ctx context.Context, tx *sqlx.Tx, palletID, positionID uint64) error {
	_, err := tx.ExecContext(ctx, "INSERT INTO pallet_position (pallet_id, position_id) VALUES (?, ?)", palletID, positionID)
	return err
}

// ReleasePalletTx removes the pallet/position binding and frees the position.
// Used when a pallet is fully drawn down.
func (r *SQL) ReleasePalletTx(ctx context.Context, tx *sqlx.Tx, palletID uint64) error {
	if _, err := tx.ExecContext(ctx, "UPDATE storage_position sp JOIN pallet_position pp ON pp.position_id = sp.id SET sp.occupied = 0 WHERE pp.pallet_id = ?", palletID); err != nil {
		return err
	}
	_, err := tx.ExecContext(ctx, "DELETE FROM pallet_position WHERE pallet_id = ?", palletID)
	return err
}
