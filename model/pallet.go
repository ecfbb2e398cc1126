package model

import "time"

type Pallet struct {
	ID              uint64 `db:"id" json:"id"`
	ReceiptID       uint64 `db:"receipt_id" json:"receipt_id"`
	SequenceNumber  int    `db:"sequence_number" json:"sequence_number"`
	Barcode         string `db:"barcode" json:"barcode"`
	CurrentQuantity int64  `db:"current_quantity" json:"current_quantity"`
}

type PalletItem struct {
	ID          uint64     `db:"id" json:"id"`
	PalletID    uint64     `db:"pallet_id" json:"pallet_id"`
	ProductID   uint64     `db:"product_id" json:"product_id"`
	ProductName string     `db:"product_name" json:"product_name"`
	LotCode     *string    `db:"lot_code" json:"lot_code,omitempty"`
	ExpiryDate  *time.Time `db:"expiry_date" json:"expiry_date,omitempty"`
	UnitCost    float64    `db:"unit_cost" json:"unit_cost"`
	Quantity    int64      `db:"quantity" json:"quantity"`
	IsDamaged   bool       `db:"is_damaged" json:"is_damaged"`
}
