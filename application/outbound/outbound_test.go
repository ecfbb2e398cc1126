package outbound_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"
	appoutbound "github.com/wareflow/backoffice/application/outbound"
	"github.com/wareflow/backoffice/cmd/config"
	"github.com/wareflow/backoffice/constant"
	selectionmocks "github.com/wareflow/backoffice/mocks/application/selection"
	positionmocks "github.com/wareflow/backoffice/mocks/repository/position"
	stockmocks "github.com/wareflow/backoffice/mocks/repository/stock"
	txmocks "github.com/wareflow/backoffice/mocks/repository/tx"
	"github.com/wareflow/backoffice/model"
	cerr "github.com/wareflow/backoffice/utils/errors"
)

func strPtr(s string) *string { return &s }

func TestOutboundApp_Separate(t *testing.T) {
	type fields struct {
		config       *config.Config
		txRepo       *txmocks.TxRepository
		stockRepo    *stockmocks.StockRepository
		positionRepo *positionmocks.PositionRepository
		selectionApp *selectionmocks.SelectionApp
	}
	type args struct {
		ctx context.Context
		req *model.SeparationRequest
	}

	receipt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	suggestion := &model.StockSuggestionResponse{
		ProductID:   7,
		WarehouseID: 1,
		Strategy:    constant.StrategyFEFO,
		Lots: []model.StockLot{
			{
				ProductID:   7,
				LotCode:     strPtr("L-A"),
				ReceiptDate: receipt,
				Quantity:    70,
				Positions: []model.LotPosition{
					{PositionCode: "R1-M1-A1", Quantity: 30},
					{PositionCode: "R2-M1-A1", Quantity: 40},
				},
			},
		},
	}
	rows := []model.RawLotRow{
		{ID: 1, ProductID: 7, WarehouseID: 1, PalletID: 10, PositionCode: "R1-M1-A1", LotCode: strPtr("L-A"), ReceiptDate: receipt, Quantity: 30},
		{ID: 2, ProductID: 7, WarehouseID: 1, PalletID: 11, PositionCode: "R2-M1-A1", LotCode: strPtr("L-A"), ReceiptDate: receipt, Quantity: 40},
	}

	tests := []struct {
		name        string
		fields      fields
		args        args
		mockCall    func(f fields)
		wantDraws   []model.SeparationDraw
		wantRetired []uint64
		wantErr     bool
		errCode     constant.ErrorType
	}{
		{
			name: "success: draws follow priority order, drained pallet retired",
			fields: fields{
				config:       &config.Config{},
				txRepo:       txmocks.NewTxRepository(t),
				stockRepo:    stockmocks.NewStockRepository(t),
				positionRepo: positionmocks.NewPositionRepository(t),
				selectionApp: selectionmocks.NewSelectionApp(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.SeparationRequest{ProductID: 7, WarehouseID: 1, Quantity: 50},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.selectionApp.On("SuggestLots", mock.Anything, uint64(7), uint64(1)).Return(suggestion, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.stockRepo.On("FetchLotRowsForUpdateTx", mock.Anything, tx, uint64(7), uint64(1)).Return(rows, nil).Once()

				f.stockRepo.On("DecrementStockRowTx", mock.Anything, tx, uint64(1), int64(30)).Return(int64(0), nil).Once()
				f.stockRepo.On("DecrementPalletTx", mock.Anything, tx, uint64(10), int64(30)).Return(nil).Once()
				f.stockRepo.On("DecrementStockRowTx", mock.Anything, tx, uint64(2), int64(20)).Return(int64(20), nil).Once()
				f.stockRepo.On("DecrementPalletTx", mock.Anything, tx, uint64(11), int64(20)).Return(nil).Once()

				f.stockRepo.On("GetPalletRemainingTx", mock.Anything, tx, uint64(10)).Return(int64(0), nil).Once()
				f.positionRepo.On("ReleasePalletTx", mock.Anything, tx, uint64(10)).Return(nil).Once()
				f.stockRepo.On("GetPalletRemainingTx", mock.Anything, tx, uint64(11)).Return(int64(20), nil).Once()
			},
			wantDraws: []model.SeparationDraw{
				{StockRowID: 1, PalletID: 10, PositionCode: "R1-M1-A1", Quantity: 30},
				{StockRowID: 2, PalletID: 11, PositionCode: "R2-M1-A1", Quantity: 20},
			},
			wantRetired: []uint64{10},
		},
		{
			name: "error: insufficient stock draws nothing",
			fields: fields{
				config:       &config.Config{},
				txRepo:       txmocks.NewTxRepository(t),
				stockRepo:    stockmocks.NewStockRepository(t),
				positionRepo: positionmocks.NewPositionRepository(t),
				selectionApp: selectionmocks.NewSelectionApp(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.SeparationRequest{ProductID: 7, WarehouseID: 1, Quantity: 500},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.selectionApp.On("SuggestLots", mock.Anything, uint64(7), uint64(1)).Return(suggestion, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.stockRepo.On("FetchLotRowsForUpdateTx", mock.Anything, tx, uint64(7), uint64(1)).Return(rows, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInsufficientStock,
		},
		{
			name: "error: non-positive quantity",
			fields: fields{
				config:       &config.Config{},
				txRepo:       txmocks.NewTxRepository(t),
				stockRepo:    stockmocks.NewStockRepository(t),
				positionRepo: positionmocks.NewPositionRepository(t),
				selectionApp: selectionmocks.NewSelectionApp(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.SeparationRequest{ProductID: 7, WarehouseID: 1, Quantity: 0},
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appoutbound.NewOutboundApp(tt.fields.config, tt.fields.txRepo, tt.fields.stockRepo, tt.fields.positionRepo, tt.fields.selectionApp)

			got, err := app.Separate(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Separate() error = %v, wantErr %v", err, tt.wantErr)
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

			if len(got.Draws) != len(tt.wantDraws) {
				t.Fatalf("Separate() draws = %d, want %d", len(got.Draws), len(tt.wantDraws))
			}
			for i, want := range tt.wantDraws {
				if got.Draws[i] != want {
					t.Fatalf("draw %d = %+v, want %+v", i, got.Draws[i], want)
				}
			}
			if len(got.RetiredPallets) != len(tt.wantRetired) {
				t.Fatalf("Separate() retired = %v, want %v", got.RetiredPallets, tt.wantRetired)
			}
			for i, want := range tt.wantRetired {
				if got.RetiredPallets[i] != want {
					t.Fatalf("retired %d = %d, want %d", i, got.RetiredPallets[i], want)
				}
			}
		})
	}
}
