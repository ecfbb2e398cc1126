package model

import (
	"time"

	"github.com/wareflow/backoffice/constant"
)

// RawLotRow is one stock row as stored: a quantity of one product on one
// pallet at one position. The selection engine groups these into lots.
type RawLotRow struct {
	ID           uint64     `db:"id"`
	ProductID    uint64     `db:"product_id"`
	WarehouseID  uint64     `db:"warehouse_id"`
	PalletID     uint64     `db:"pallet_id"`
	ReceiptID    uint64     `db:"receipt_id"`
	PositionCode string     `db:"position_code"`
	LotCode      *string    `db:"lot_code"`
	ExpiryDate   *time.Time `db:"expiry_date"`
	ReceiptDate  time.Time  `db:"receipt_date"`
	UnitCost     float64    `db:"unit_cost"`
	Quantity     int64      `db:"quantity"`
}

type LotPosition struct {
	PositionCode string `json:"position_code"`
	Quantity     int64  `json:"quantity"`
}

// StockLot is one logical lot of a product, possibly spanning several
// pallets/positions, ordered by removal priority.
type StockLot struct {
	ProductID    uint64             `json:"product_id"`
	WarehouseID  uint64             `json:"warehouse_id"`
	LotCode      *string            `json:"lot_code,omitempty"`
	ExpiryDate   *time.Time         `json:"expiry_date,omitempty"`
	ReceiptDate  time.Time          `json:"receipt_date"`
	UnitCost     float64            `json:"unit_cost"`
	Quantity     int64              `json:"quantity"`
	Positions    []LotPosition      `json:"positions"`
	DaysToExpire *int               `json:"days_to_expire,omitempty"`
	Status       constant.LotStatus `json:"status"`
}

type StockSuggestionResponse struct {
	ProductID   uint64                     `json:"product_id"`
	WarehouseID uint64                     `json:"warehouse_id"`
	Strategy    constant.SelectionStrategy `json:"strategy"`
	Lots        []StockLot                 `json:"lots"`
}

type SeparationRequest struct {
	ProductID   uint64 `json:"product_id" validate:"required"`
	WarehouseID uint64 `json:"warehouse_id" validate:"required"`
	Quantity    int64  `json:"quantity" validate:"required,gt=0"`
}

// SeparationDraw is one decrement applied to a stock row during separation.
type SeparationDraw struct {
	StockRowID   uint64 `json:"stock_row_id"`
	PalletID     uint64 `json:"pallet_id"`
	PositionCode string `json:"position_code"`
	Quantity     int64  `json:"quantity"`
}

type SeparationResponse struct {
	ProductID      uint64           `json:"product_id"`
	Quantity       int64            `json:"quantity"`
	Draws          []SeparationDraw `json:"draws"`
	RetiredPallets []uint64         `json:"retired_pallets,omitempty"`
}
