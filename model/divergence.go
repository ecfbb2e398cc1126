package model

import "github.com/wareflow/backoffice/constant"

type Divergence struct {
	ID        uint64                  `db:"id" json:"id"`
	PalletID  uint64                  `db:"pallet_id" json:"pallet_id"`
	ProductID uint64                  `db:"product_id" json:"product_id"`
	Type      constant.DivergenceType `db:"type" json:"type"`
	Quantity  int64                   `db:"quantity" json:"quantity"`
	Notes     *string                 `db:"notes" json:"notes,omitempty"`
}

// DivergenceSummary aggregates divergences per product for reporting screens.
type DivergenceSummary struct {
	ProductID   uint64 `db:"product_id" json:"product_id"`
	ProductName string `db:"product_name" json:"product_name"`
	ShortageQty int64  `db:"shortage_qty" json:"shortage_qty"`
	DamageQty   int64  `db:"damage_qty" json:"damage_qty"`
}

type DivergenceReportResponse struct {
	ReceiptID uint64              `json:"receipt_id"`
	Items     []DivergenceSummary `json:"items"`
}
