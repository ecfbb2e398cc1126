package wave

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/wareflow/backoffice/constant"
	"github.com/wareflow/backoffice/model"
)

type WaveRepository interface {
	ListPendingWaves(ctx context.Context, warehouseID *uint64) ([]model.AllocationWave, error)
	GetWave(ctx context.Context, waveID uint64) (*model.AllocationWave, error)
	GetWaveDetail(ctx context.Context, waveID uint64) (*model.WaveDetail, error)
	StartWave(ctx context.Context, waveID uint64, workerID *uint64) (int64, error)
	GetWavePallet(ctx context.Context, wavePalletID uint64) (*model.WavePallet, error)
	GetWavePalletTx(ctx context.Context, tx *sqlx.Tx, wavePalletID uint64) (*model.WavePallet, error)
	GetPalletTx(ctx context.Context, tx *sqlx.Tx, palletID uint64) (*model.Pallet, error)
	GetPalletItemsTx(ctx context.Context, tx *sqlx.Tx, palletID uint64) ([]model.PalletItem, error)
	UpdateWavePalletStatusTx(ctx context.Context, tx *sqlx.Tx, wavePalletID uint64, status constant.WavePalletStatus) error
	CountPendingPalletsTx(ctx context.Context, tx *sqlx.Tx, waveID uint64) (int64, error)
	NextPendingWavePalletTx(ctx context.Context, tx *sqlx.Tx, waveID, afterID uint64) (*uint64, error)
	NextPendingWavePallet(ctx context.Context, waveID, afterID uint64) (*uint64, error)
	CompleteWaveTx(ctx context.Context, tx *sqlx.Tx, waveID uint64) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewWaveRepository(conn *sqlx.DB) WaveRepository {
	return &SQL{conn: conn}
}

const (
	waveColumns       = "id, wave_number, warehouse_id, status, assigned_worker_id, started_at"
	wavePalletColumns = "id, wave_id, pallet_id, target_position_id, status"
)

func (r *SQL) ListPendingWaves(ctx context.Context, warehouseID *uint64) ([]model.AllocationWave, error) {
	waves := make([]model.AllocationWave, 0)
	q := "SELECT " + waveColumns + " FROM allocation_wave WHERE status IN (?, ?)"
	args := []interface{}{constant.WaveStatusPending, constant.WaveStatusInProgress}
	if warehouseID != nil {
		q += " AND warehouse_id = ?"
		args = append(args, *warehouseID)
	}
	q += " ORDER BY id"
	if err := r.conn.SelectContext(ctx, &waves, q, args...); err != nil {
		return nil, err
	}
	return waves, nil
}

func (r *SQL) GetWave(ctx context.Context, waveID uint64) (*model.AllocationWave, error) {
	var wave model.AllocationWave
	q := "SELECT " + waveColumns + " FROM allocation_wave WHERE id = ?"
	if err := r.conn.GetContext(ctx, &wave, q, waveID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &wave, nil
}

func (r *SQL) GetWaveDetail(ctx context.Context, waveID uint64) (*model.WaveDetail, error) {
	wave, err := r.GetWave(ctx, waveID)
	if err != nil || wave == nil {
		return nil, err
	}

	var wavePallets []model.WavePallet
	q := "SELECT " + wavePalletColumns + " FROM wave_pallet WHERE wave_id = ? ORDER BY id"
	if err := r.conn.SelectContext(ctx, &wavePallets, q, waveID); err != nil {
		return nil, err
	}

	detail := &model.WaveDetail{AllocationWave: *wave, Pallets: make([]model.WavePalletDetail, 0, len(wavePallets))}
	for _, wp := range wavePallets {
		var pallet model.Pallet
		if err := r.conn.GetContext(ctx, &pallet, "SELECT id, receipt_id, sequence_number, barcode, current_quantity FROM pallet WHERE id = ?", wp.PalletID); err != nil {
			return nil, err
		}
		items := make([]model.PalletItem, 0)
		if err := r.conn.SelectContext(ctx, &items, "SELECT id, pallet_id, product_id, product_name, lot_code, expiry_date, unit_cost, quantity, is_damaged FROM pallet_item WHERE pallet_id = ? ORDER BY id", wp.PalletID); err != nil {
			return nil, err
		}
		detail.Pallets = append(detail.Pallets, model.WavePalletDetail{WavePallet: wp, Pallet: pallet, Items: items})
	}
	return detail, nil
}

// StartWave transitions pending -> in_progress guarded by the status in the
// WHERE clause. Zero rows affected means the wave was already started (or
// completed) by someone else.
func (r *SQL) StartWave(ctx context.Context, waveID uint64, workerID *uint64) (int64, error) {
	res, err := r.conn.ExecContext(ctx,
		"UPDATE allocation_wave SET status = ?, assigned_worker_id = ?, started_at = ? WHERE id = ? AND status = ?",
		constant.WaveStatusInProgress, workerID, time.Now(), waveID, constant.WaveStatusPending)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *SQL) GetWavePallet(ctx context.Context, wavePalletID uint64) (*model.WavePallet, error) {
	var wp model.WavePallet
	q := "SELECT " + wavePalletColumns + " FROM wave_pallet WHERE id = ?"
	if err := r.conn.GetContext(ctx, &wp, q, wavePalletID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &wp, nil
}

// GetWavePalletTx locks the wave pallet row so a concurrent allocation of the
// same pallet blocks until this transaction resolves.
func (r *SQL) GetWavePalletTx(ctx context.Context, tx *sqlx.Tx, wavePalletID uint64) (*model.WavePallet, error) {
	var wp model.WavePallet
	q := "SELECT " + wavePalletColumns + " FROM wave_pallet WHERE id = ? FOR UPDATE"
	if err := tx.GetContext(ctx, &wp, q, wavePalletID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &wp, nil
}

func (r *SQL) GetPalletTx(ctx context.Context, tx *sqlx.Tx, palletID uint64) (*model.Pallet, error) {
	var pallet model.Pallet
	q := "SELECT id, receipt_id, sequence_number, barcode, current_quantity FROM pallet WHERE id = ? FOR UPDATE"
	if err := tx.GetContext(ctx, &pallet, q, palletID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &pallet, nil
}

func (r *SQL) GetPalletItemsTx(ctx context.Context, tx *sqlx.Tx, palletID uint64) ([]model.PalletItem, error) {
	items := make([]model.PalletItem, 0)
	q := "SELECT id, pallet_id, product_id, product_name, lot_code, expiry_date, unit_cost, quantity, is_damaged FROM pallet_item WHERE pallet_id = ? ORDER BY id"
	if err := tx.SelectContext(ctx, &items, q, palletID); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *SQL) UpdateWavePalletStatusTx(ctx context.Context, tx *sqlx.Tx, wavePalletID uint64, status constant.WavePalletStatus) error {
	_, err := tx.ExecContext(ctx, "UPDATE wave_pallet SET status = ? WHERE id = ?", status, wavePalletID)
	return err
}

func (r *SQL) CountPendingPalletsTx(ctx context.Context, tx *sqlx.Tx, waveID uint64) (int64, error) {
	var count int64
	q := "SELECT COUNT(*) FROM wave_pallet WHERE wave_id = ? AND status = ?"
	if err := tx.GetContext(ctx, &count, q, waveID, constant.WavePalletStatusPending); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *SQL) NextPendingWavePalletTx(ctx context.Context, tx *sqlx.Tx, waveID, afterID uint64) (*uint64, error) {
	return nextPending(ctx, tx, waveID, afterID)
}

func (r *SQL) NextPendingWavePallet(ctx context.Context, waveID, afterID uint64) (*uint64, error) {
	return nextPending(ctx, r.conn, waveID, afterID)
}

type queryer interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// nextPending picks the next pending wave pallet after the given id,
// wrapping around to the head of the wave for a later pass.
func nextPending(ctx context.Context, q queryer, waveID, afterID uint64) (*uint64, error) {
	var next uint64
	query := "SELECT id FROM wave_pallet WHERE wave_id = ? AND status = ? AND id > ? ORDER BY id LIMIT 1"
	err := q.GetContext(ctx, &next, query, waveID, constant.WavePalletStatusPending, afterID)
	if err == sql.ErrNoRows {
		query = "SELECT id FROM wave_pallet WHERE wave_id = ? AND status = ? AND id <> ? ORDER BY id LIMIT 1"
		err = q.GetContext(ctx, &next, query, waveID, constant.WavePalletStatusPending, afterID)
	}
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &next, nil
}

func (r *SQL) CompleteWaveTx(ctx context.Context, tx *sqlx.Tx, waveID uint64) error {
	_, err := tx.ExecContext(ctx, "UPDATE allocation_wave SET status = ? WHERE id = ?", constant.WaveStatusCompleted, waveID)
	return err
}
