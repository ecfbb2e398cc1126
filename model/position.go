package model

type StoragePosition struct {
	ID          uint64 `db:"id" json:"id"`
	Code        string `db:"code" json:"code"`
	Barcode     string `db:"barcode" json:"barcode"`
	WarehouseID uint64 `db:"warehouse_id" json:"warehouse_id"`
	Occupied    bool   `db:"occupied" json:"occupied"`
	Active      bool   `db:"active" json:"active"`
}

// Coordinates is the 3D address parsed from a position code R{aisle}-M{module}-A{level}.
type Coordinates struct {
	Aisle  int `json:"aisle"`
	Module int `json:"module"`
	Level  int `json:"level"`
}

type GridStats struct {
	Total            int `json:"total"`
	Occupied         int `json:"occupied"`
	Free             int `json:"free"`
	OccupancyPercent int `json:"occupancy_percent"`
}

type GridBounds struct {
	MaxAisle  int `json:"max_aisle"`
	MaxModule int `json:"max_module"`
	MaxLevel  int `json:"max_level"`
}

// GridCell is one successfully parsed position placed on the grid.
type GridCell struct {
	Position    StoragePosition `json:"position"`
	Coordinates Coordinates     `json:"coordinates"`
}

type GridResponse struct {
	Stats       GridStats  `json:"stats"`
	Bounds      GridBounds `json:"bounds"`
	Cells       []GridCell `json:"cells"`
	ParseErrors []string   `json:"parse_errors,omitempty"`
}
