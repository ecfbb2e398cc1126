package model

import (
	"time"

	"github.com/wareflow/backoffice/constant"
)

type AllocationWave struct {
	ID               uint64              `db:"id" json:"id"`
	WaveNumber       string              `db:"wave_number" json:"wave_number"`
	WarehouseID      uint64              `db:"warehouse_id" json:"warehouse_id"`
	Status           constant.WaveStatus `db:"status" json:"status"`
	AssignedWorkerID *uint64             `db:"assigned_worker_id" json:"assigned_worker_id,omitempty"`
	StartedAt        *time.Time          `db:"started_at" json:"started_at,omitempty"`
}

type WavePallet struct {
	ID               uint64                    `db:"id" json:"id"`
	WaveID           uint64                    `db:"wave_id" json:"wave_id"`
	PalletID         uint64                    `db:"pallet_id" json:"pallet_id"`
	TargetPositionID *uint64                   `db:"target_position_id" json:"target_position_id,omitempty"`
	Status           constant.WavePalletStatus `db:"status" json:"status"`
}

// WavePalletDetail is a wave pallet joined with its pallet and the pallet's items.
type WavePalletDetail struct {
	WavePallet
	Pallet Pallet       `json:"pallet"`
	Items  []PalletItem `json:"items"`
}

type WaveDetail struct {
	AllocationWave
	Pallets []WavePalletDetail `json:"pallets"`
}

// PendingPallets returns the wave pallets still waiting for allocation,
// in enumeration order.
func (w *WaveDetail) PendingPallets() []WavePalletDetail {
	pending := make([]WavePalletDetail, 0, len(w.Pallets))
	for _, p := range w.Pallets {
		if p.Status == constant.WavePalletStatusPending {
			pending = append(pending, p)
		}
	}
	return pending
}

type StartWaveRequest struct {
	WorkerID *uint64 `json:"worker_id,omitempty"`
}
