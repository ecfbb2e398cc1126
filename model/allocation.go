package model

import "github.com/wareflow/backoffice/constant"

// ConferenceItemInput is one product's conference result as submitted by the
// operator: how much good stock was confirmed and in which sub-state the
// product ended.
type ConferenceItemInput struct {
	ProductID    uint64                    `json:"product_id" validate:"required"`
	Status       constant.ConferenceStatus `json:"status" validate:"required"`
	ConfirmedQty int64                     `json:"confirmed_qty" validate:"gte=0"`
}

type AllocateRequest struct {
	TargetPositionID *uint64               `json:"target_position_id"`
	PalletBarcode    string                `json:"pallet_barcode" validate:"required"`
	PositionBarcode  string                `json:"position_barcode" validate:"required"`
	Items            []ConferenceItemInput `json:"items" validate:"required,dive,required"`
}

type AllocateResponse struct {
	WavePalletID     uint64  `json:"wave_pallet_id"`
	PositionCode     string  `json:"position_code"`
	NextWavePalletID *uint64 `json:"next_wave_pallet_id,omitempty"`
	WaveCompleted    bool    `json:"wave_completed"`
	DivergenceCount  int     `json:"divergence_count"`
}

type SkipResponse struct {
	WavePalletID     uint64  `json:"wave_pallet_id"`
	NextWavePalletID *uint64 `json:"next_wave_pallet_id,omitempty"`
	WaveCompleted    bool    `json:"wave_completed"`
}
