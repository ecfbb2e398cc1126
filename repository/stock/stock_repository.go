package stock

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/wareflow/backoffice/model"
)

type StockRepository interface {
	FetchLotRows(ctx context.Context, productID, warehouseID uint64, pageSize int) ([]model.RawLotRow, error)
	FetchLotRowsForUpdateTx(ctx context.Context, tx *sqlx.Tx, productID, warehouseID uint64) ([]model.RawLotRow, error)
	UpsertStockRowTx(ctx context.Context, tx *sqlx.Tx, row *model.RawLotRow) error
	DecrementStockRowTx(ctx context.Context, tx *sqlx.Tx, rowID uint64, quantity int64) (int64, error)
	DecrementPalletTx(ctx context.Context, tx *sqlx.Tx, palletID uint64, quantity int64) error
	GetPalletRemainingTx(ctx context.Context, tx *sqlx.Tx, palletID uint64) (int64, error)
	GetSelectionStrategy(ctx context.Context, warehouseID uint64) (string, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewStockRepository(conn *sqlx.DB) StockRepository {
	return &SQL{conn: conn}
}

const lotRowColumns = "id, product_id, warehouse_id, pallet_id, receipt_id, position_code, lot_code, expiry_date, receipt_date, unit_cost, quantity"

// FetchLotRows pages through every stock row for the product. Default page
// sizes silently truncating this listing corrupts the selection ordering, so
// the loop always runs to the short page.
func (r *SQL) FetchLotRows(ctx context.Context, productID, warehouseID uint64, pageSize int) ([]model.RawLotRow, error) {
	if pageSize <= 0 {
		pageSize = 500
	}

	q := "SELECT " + lotRowColumns + " FROM stock WHERE product_id = ? AND warehouse_id = ? AND quantity > 0 ORDER BY id LIMIT ? OFFSET ?"
	rows := make([]model.RawLotRow, 0, pageSize)
	offset := 0
	for {
		page := make([]model.RawLotRow, 0, pageSize)
		if err := r.conn.SelectContext(ctx, &page, q, productID, warehouseID, pageSize, offset); err != nil {
			return nil, err
		}
		rows = append(rows, page...)
		if len(page) < pageSize {
			return rows, nil
		}
		offset += pageSize
	}
}

func (r *SQL) FetchLotRowsForUpdateTx(ctx context.Context, tx *sqlx.Tx, productID, warehouseID uint64) ([]model.RawLotRow, error) {
	rows := make([]model.RawLotRow, 0)
	q := "SELECT " + lotRowColumns + " FROM stock WHERE product_id = ? AND warehouse_id = ? AND quantity > 0 ORDER BY id FOR UPDATE"
	if err := tx.SelectContext(ctx, &rows, q, productID, warehouseID); err != nil {
		return nil, err
	}
	return rows, nil
}

// UpsertStockRowTx creates or increments the stock row for one (pallet,
// product, lot, position) during allocation.
func (r *SQL) UpsertStockRowTx(ctx context.Context, tx *sqlx.Tx, row *model.RawLotRow) error {
	q := `INSERT INTO stock (product_id, warehouse_id, pallet_id, receipt_id, position_code, lot_code, expiry_date, receipt_date, unit_cost, quantity)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE quantity = quantity + VALUES(quantity)`
	_, err := tx.ExecContext(ctx, q,
		row.ProductID, row.WarehouseID, row.PalletID, row.ReceiptID, row.PositionCode,
		row.LotCode, row.ExpiryDate, row.ReceiptDate, row.UnitCost, row.Quantity)
	return err
}

// DecrementStockRowTx subtracts quantity from a stock row and returns the
// remaining quantity. The guard in the WHERE clause refuses to draw below
// zero; callers must treat zero rows affected as a conflict.
func (r *SQL) DecrementStockRowTx(ctx context.Context, tx *sqlx.Tx, rowID uint64, quantity int64) (int64, error) {
	res, err := tx.ExecContext(ctx, "UPDATE stock SET quantity = quantity - ? WHERE id = ? AND quantity >= ?", quantity, rowID, quantity)
	if err != nil {
		return 0, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if affected == 0 {
		return 0, sql.ErrNoRows
	}
	var remaining int64
	if err := tx.GetContext(ctx, &remaining, "SELECT quantity FROM stock WHERE id = ?", rowID); err != nil {
		return 0, err
	}
	return remaining, nil
}

func (r *SQL) DecrementPalletTx(ctx context.Context, tx *sqlx.Tx, palletID uint64, quantity int64) error {
	_, err := tx.ExecContext(ctx, "UPDATE pallet SET current_quantity = current_quantity - ? WHERE id = ?", quantity, palletID)
	return err
}

func (r *SQL) GetPalletRemainingTx(ctx context.Context, tx *sqlx.Tx, palletID uint64) (int64, error) {
	var remaining int64
	if err := tx.GetContext(ctx, &remaining, "SELECT current_quantity FROM pallet WHERE id = ?", palletID); err != nil {
		return 0, err
	}
	return remaining, nil
}

// GetSelectionStrategy reads the warehouse's configured draw-down strategy.
// An empty string means no override is configured.
func (r *SQL) GetSelectionStrategy(ctx context.Context, warehouseID uint64) (string, error) {
	var strategy sql.NullString
	q := "SELECT selection_strategy FROM warehouse WHERE id = ?"
	if err := r.conn.GetContext(ctx, &strategy, q, warehouseID); err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", err
	}
	if !strategy.Valid {
		return "", nil
	}
	return strategy.String, nil
}
