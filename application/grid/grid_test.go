package grid_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/mock"
	appgrid "github.com/wareflow/backoffice/application/grid"
	"github.com/wareflow/backoffice/cmd/config"
	"github.com/wareflow/backoffice/constant"
	positionmocks "github.com/wareflow/backoffice/mocks/repository/position"
	"github.com/wareflow/backoffice/model"
	cerr "github.com/wareflow/backoffice/utils/errors"
)

func TestParseCode(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		want    model.Coordinates
		wantErr bool
	}{
		{
			name: "success: plain code",
			code: "R1-M2-A3",
			want: model.Coordinates{Aisle: 1, Module: 2, Level: 3},
		},
		{
			name: "success: leading zeros",
			code: "R03-M12-A02",
			want: model.Coordinates{Aisle: 3, Module: 12, Level: 2},
		},
		{
			name:    "error: missing level segment",
			code:    "R1-M2",
			wantErr: true,
		},
		{
			name:    "error: wrong segment order",
			code:    "M1-R2-A3",
			wantErr: true,
		},
		{
			name:    "error: trailing garbage",
			code:    "R1-M2-A3-X4",
			wantErr: true,
		},
		{
			name:    "error: empty code",
			code:    "",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := appgrid.ParseCode(tt.code)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCode(%q) error = %v, wantErr %v", tt.code, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Fatalf("ParseCode(%q) = %+v, want %+v", tt.code, got, tt.want)
			}
		})
	}
}

func TestComputeStats(t *testing.T) {
	tests := []struct {
		name  string
		cells []model.GridCell
		want  model.GridStats
	}{
		{
			name:  "empty grid",
			cells: nil,
			want:  model.GridStats{},
		},
		{
			name: "one of three occupied rounds to 33",
			cells: []model.GridCell{
				{Position: model.StoragePosition{Occupied: true}},
				{Position: model.StoragePosition{}},
				{Position: model.StoragePosition{}},
			},
			want: model.GridStats{Total: 3, Occupied: 1, Free: 2, OccupancyPercent: 33},
		},
		{
			name: "two of three occupied rounds to 67",
			cells: []model.GridCell{
				{Position: model.StoragePosition{Occupied: true}},
				{Position: model.StoragePosition{Occupied: true}},
				{Position: model.StoragePosition{}},
			},
			want: model.GridStats{Total: 3, Occupied: 2, Free: 1, OccupancyPercent: 67},
		},
		{
			name: "fully occupied",
			cells: []model.GridCell{
				{Position: model.StoragePosition{Occupied: true}},
				{Position: model.StoragePosition{Occupied: true}},
			},
			want: model.GridStats{Total: 2, Occupied: 2, Free: 0, OccupancyPercent: 100},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := appgrid.ComputeStats(tt.cells); got != tt.want {
				t.Fatalf("ComputeStats() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBuildCells(t *testing.T) {
	positions := make([]model.StoragePosition, 0, 100)
	for i := 1; i <= 100; i++ {
		code := fmt.Sprintf("R%d-M%d-A%d", (i-1)/20+1, (i-1)%20+1, 1)
		if i == 50 {
			code = "BROKEN-CODE"
		}
		positions = append(positions, model.StoragePosition{ID: uint64(i), Code: code, Active: true})
	}

	cells, parseErrors := appgrid.BuildCells(positions)

	if len(cells) != 99 {
		t.Fatalf("BuildCells() cells = %d, want 99", len(cells))
	}
	if len(parseErrors) != 1 {
		t.Fatalf("BuildCells() parseErrors = %d, want 1", len(parseErrors))
	}

	stats := appgrid.ComputeStats(cells)
	if stats.Total != 99 {
		t.Fatalf("ComputeStats() Total = %d, want 99", stats.Total)
	}

	bounds := appgrid.ComputeBounds(cells)
	if bounds.MaxAisle != 5 || bounds.MaxModule != 20 || bounds.MaxLevel != 1 {
		t.Fatalf("ComputeBounds() = %+v, want MaxAisle 5, MaxModule 20, MaxLevel 1", bounds)
	}
}

func TestGridApp_GetGrid(t *testing.T) {
	type fields struct {
		config       *config.Config
		positionRepo *positionmocks.PositionRepository
	}
	type args struct {
		ctx         context.Context
		warehouseID uint64
	}
	tests := []struct {
		name      string
		fields    fields
		args      args
		mockCall  func(f fields)
		wantCells int
		wantErrs  int
		wantErr   bool
		errCode   constant.ErrorType
	}{
		{
			name: "success: malformed code excluded, not fatal",
			fields: fields{
				config:       &config.Config{Allocation: config.AllocationConfig{PageSize: 500}},
				positionRepo: positionmocks.NewPositionRepository(t),
			},
			args: args{ctx: context.Background(), warehouseID: 1},
			mockCall: func(f fields) {
				f.positionRepo.On("ListByWarehouse", mock.Anything, uint64(1), 500).Return([]model.StoragePosition{
					{ID: 1, Code: "R1-M1-A1", Occupied: true, Active: true},
					{ID: 2, Code: "garbage", Active: true},
					{ID: 3, Code: "R1-M2-A1", Active: true},
				}, nil).Once()
			},
			wantCells: 2,
			wantErrs:  1,
		},
		{
			name: "error: repository failure",
			fields: fields{
				config:       &config.Config{Allocation: config.AllocationConfig{PageSize: 500}},
				positionRepo: positionmocks.NewPositionRepository(t),
			},
			args: args{ctx: context.Background(), warehouseID: 1},
			mockCall: func(f fields) {
				f.positionRepo.On("ListByWarehouse", mock.Anything, uint64(1), 500).Return(nil, errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appgrid.NewGridApp(tt.fields.config, tt.fields.positionRepo)

			got, err := app.GetGrid(tt.args.ctx, tt.args.warehouseID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetGrid() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if len(got.Cells) != tt.wantCells {
				t.Fatalf("GetGrid() cells = %d, want %d", len(got.Cells), tt.wantCells)
			}
			if len(got.ParseErrors) != tt.wantErrs {
				t.Fatalf("GetGrid() parse errors = %d, want %d", len(got.ParseErrors), tt.wantErrs)
			}
			if got.Stats.Total != tt.wantCells {
				t.Fatalf("GetGrid() stats total = %d, want %d", got.Stats.Total, tt.wantCells)
			}
		})
	}
}
