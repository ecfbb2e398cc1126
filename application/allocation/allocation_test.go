package allocation_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"
	appallocation "github.com/wareflow/backoffice/application/allocation"
	"github.com/wareflow/backoffice/cmd/config"
	"github.com/wareflow/backoffice/constant"
	divergencemocks "github.com/wareflow/backoffice/mocks/repository/divergence"
	positionmocks "github.com/wareflow/backoffice/mocks/repository/position"
	redismocks "github.com/wareflow/backoffice/mocks/repository/redis"
	stockmocks "github.com/wareflow/backoffice/mocks/repository/stock"
	txmocks "github.com/wareflow/backoffice/mocks/repository/tx"
	wavemocks "github.com/wareflow/backoffice/mocks/repository/wave"
	"github.com/wareflow/backoffice/model"
	cerr "github.com/wareflow/backoffice/utils/errors"
)

func uint64Ptr(v uint64) *uint64 { return &v }

// Publisher is nil in every test; allocation.go checks before publishing.

func TestAllocationApp_Allocate(t *testing.T) {
	type fields struct {
		config         *config.Config
		txRepo         *txmocks.TxRepository
		waveRepo       *wavemocks.WaveRepository
		positionRepo   *positionmocks.PositionRepository
		stockRepo      *stockmocks.StockRepository
		divergenceRepo *divergencemocks.DivergenceRepository
		redisRepo      *redismocks.Repository
	}
	type args struct {
		ctx          context.Context
		wavePalletID uint64
		req          *model.AllocateRequest
	}

	cfg := &config.Config{
		Allocation: config.AllocationConfig{ClaimTTL: 30 * time.Minute},
	}
	newFields := func(t *testing.T) fields {
		return fields{
			config:         cfg,
			txRepo:         txmocks.NewTxRepository(t),
			waveRepo:       wavemocks.NewWaveRepository(t),
			positionRepo:   positionmocks.NewPositionRepository(t),
			stockRepo:      stockmocks.NewStockRepository(t),
			divergenceRepo: divergencemocks.NewDivergenceRepository(t),
			redisRepo:      redismocks.NewRepository(t),
		}
	}

	pendingPallet := func() *model.WavePallet {
		return &model.WavePallet{ID: 1, WaveID: 2, PalletID: 5, TargetPositionID: uint64Ptr(10), Status: constant.WavePalletStatusPending}
	}
	freePosition := func() *model.StoragePosition {
		return &model.StoragePosition{ID: 10, Code: "R1-M1-A1", Barcode: "POS-001", WarehouseID: 1, Occupied: false, Active: true}
	}

	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.AllocateResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:   "success: all conferred, wave continues",
			fields: newFields(t),
			args: args{
				ctx:          context.Background(),
				wavePalletID: 1,
				req: &model.AllocateRequest{
					PalletBarcode:   "PLT-001",
					PositionBarcode: "POS-001",
					Items: []model.ConferenceItemInput{
						{ProductID: 100, Status: constant.ConferenceStatusConferred},
					},
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.waveRepo.On("GetWavePallet", mock.Anything, uint64(1)).Return(pendingPallet(), nil).Once()
				f.redisRepo.On("ClaimWavePallet", mock.Anything, uint64(1), uint64(0), 30*time.Minute).Return(true, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.waveRepo.On("GetWavePalletTx", mock.Anything, tx, uint64(1)).Return(pendingPallet(), nil).Once()
				f.waveRepo.On("GetPalletTx", mock.Anything, tx, uint64(5)).Return(&model.Pallet{
					ID: 5, ReceiptID: 3, Barcode: "PLT-001", CurrentQuantity: 50,
				}, nil).Once()
				f.positionRepo.On("GetByIDTx", mock.Anything, tx, uint64(10)).Return(freePosition(), nil).Once()
				f.waveRepo.On("GetPalletItemsTx", mock.Anything, tx, uint64(5)).Return([]model.PalletItem{
					{ID: 1, PalletID: 5, ProductID: 100, Quantity: 50},
				}, nil).Once()

				f.stockRepo.On("UpsertStockRowTx", mock.Anything, tx, mock.MatchedBy(func(row *model.RawLotRow) bool {
					return row.ProductID == 100 && row.Quantity == 50 && row.PositionCode == "R1-M1-A1" && row.PalletID == 5
				})).Return(nil).Once()

				f.positionRepo.On("SetOccupiedTx", mock.Anything, tx, uint64(10), true).Return(nil).Once()
				f.positionRepo.On("BindPalletTx", mock.Anything, tx, uint64(5), uint64(10)).Return(nil).Once()
				f.waveRepo.On("UpdateWavePalletStatusTx", mock.Anything, tx, uint64(1), constant.WavePalletStatusAllocated).Return(nil).Once()
				f.divergenceRepo.On("ClearTx", mock.Anything, tx, uint64(5), uint64(100)).Return(nil).Once()

				f.waveRepo.On("CountPendingPalletsTx", mock.Anything, tx, uint64(2)).Return(int64(1), nil).Once()
				f.waveRepo.On("NextPendingWavePalletTx", mock.Anything, tx, uint64(2), uint64(1)).Return(uint64Ptr(9), nil).Once()

				f.redisRepo.On("ReleaseWavePallet", mock.Anything, uint64(1)).Return(nil).Once()
			},
			want: &model.AllocateResponse{
				WavePalletID:     1,
				PositionCode:     "R1-M1-A1",
				NextWavePalletID: uint64Ptr(9),
				WaveCompleted:    false,
				DivergenceCount:  0,
			},
		},
		{
			name:   "success: damage shrinks stock and completes the wave",
			fields: newFields(t),
			args: args{
				ctx:          context.Background(),
				wavePalletID: 1,
				req: &model.AllocateRequest{
					PalletBarcode:   "PLT-001",
					PositionBarcode: "POS-001",
					Items: []model.ConferenceItemInput{
						{ProductID: 100, Status: constant.ConferenceStatusDamaged, ConfirmedQty: 30},
					},
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.waveRepo.On("GetWavePallet", mock.Anything, uint64(1)).Return(pendingPallet(), nil).Once()
				f.redisRepo.On("ClaimWavePallet", mock.Anything, uint64(1), uint64(0), 30*time.Minute).Return(true, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.waveRepo.On("GetWavePalletTx", mock.Anything, tx, uint64(1)).Return(pendingPallet(), nil).Once()
				f.waveRepo.On("GetPalletTx", mock.Anything, tx, uint64(5)).Return(&model.Pallet{
					ID: 5, ReceiptID: 3, Barcode: "PLT-001", CurrentQuantity: 50,
				}, nil).Once()
				f.positionRepo.On("GetByIDTx", mock.Anything, tx, uint64(10)).Return(freePosition(), nil).Once()
				f.waveRepo.On("GetPalletItemsTx", mock.Anything, tx, uint64(5)).Return([]model.PalletItem{
					{ID: 1, PalletID: 5, ProductID: 100, Quantity: 50},
				}, nil).Once()

				// Only the confirmed-good 30 becomes stock; 20 is written off.
				f.stockRepo.On("UpsertStockRowTx", mock.Anything, tx, mock.MatchedBy(func(row *model.RawLotRow) bool {
					return row.ProductID == 100 && row.Quantity == 30
				})).Return(nil).Once()
				f.stockRepo.On("DecrementPalletTx", mock.Anything, tx, uint64(5), int64(20)).Return(nil).Once()

				f.positionRepo.On("SetOccupiedTx", mock.Anything, tx, uint64(10), true).Return(nil).Once()
				f.positionRepo.On("BindPalletTx", mock.Anything, tx, uint64(5), uint64(10)).Return(nil).Once()
				f.waveRepo.On("UpdateWavePalletStatusTx", mock.Anything, tx, uint64(1), constant.WavePalletStatusAllocated).Return(nil).Once()

				f.divergenceRepo.On("RecordTx", mock.Anything, tx, mock.MatchedBy(func(d *model.Divergence) bool {
					return d.PalletID == 5 && d.ProductID == 100 && d.Type == constant.DivergenceTypeDamage && d.Quantity == 20
				})).Return(nil).Once()

				f.waveRepo.On("CountPendingPalletsTx", mock.Anything, tx, uint64(2)).Return(int64(0), nil).Once()
				f.waveRepo.On("CompleteWaveTx", mock.Anything, tx, uint64(2)).Return(nil).Once()

				f.redisRepo.On("ReleaseWavePallet", mock.Anything, uint64(1)).Return(nil).Once()
			},
			want: &model.AllocateResponse{
				WavePalletID:    1,
				PositionCode:    "R1-M1-A1",
				WaveCompleted:   true,
				DivergenceCount: 1,
			},
		},
		{
			name:   "error: empty barcode",
			fields: newFields(t),
			args: args{
				ctx:          context.Background(),
				wavePalletID: 1,
				req:          &model.AllocateRequest{PalletBarcode: "", PositionBarcode: "POS-001"},
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name:   "error: wave pallet not found",
			fields: newFields(t),
			args: args{
				ctx:          context.Background(),
				wavePalletID: 99,
				req:          &model.AllocateRequest{PalletBarcode: "PLT-001", PositionBarcode: "POS-001"},
			},
			mockCall: func(f fields) {
				f.waveRepo.On("GetWavePallet", mock.Anything, uint64(99)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name:   "error: no target position defined",
			fields: newFields(t),
			args: args{
				ctx:          context.Background(),
				wavePalletID: 1,
				req:          &model.AllocateRequest{PalletBarcode: "PLT-001", PositionBarcode: "POS-001"},
			},
			mockCall: func(f fields) {
				f.waveRepo.On("GetWavePallet", mock.Anything, uint64(1)).Return(&model.WavePallet{
					ID: 1, WaveID: 2, PalletID: 5, Status: constant.WavePalletStatusPending,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrPositionNotDefined,
		},
		{
			name:   "error: pallet claimed by another worker",
			fields: newFields(t),
			args: args{
				ctx:          context.Background(),
				wavePalletID: 1,
				req:          &model.AllocateRequest{PalletBarcode: "PLT-001", PositionBarcode: "POS-001"},
			},
			mockCall: func(f fields) {
				f.waveRepo.On("GetWavePallet", mock.Anything, uint64(1)).Return(pendingPallet(), nil).Once()
				f.redisRepo.On("ClaimWavePallet", mock.Anything, uint64(1), uint64(0), 30*time.Minute).Return(false, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrPalletClaimed,
		},
		{
			name:   "error: double submission, pallet already allocated",
			fields: newFields(t),
			args: args{
				ctx:          context.Background(),
				wavePalletID: 1,
				req:          &model.AllocateRequest{PalletBarcode: "PLT-001", PositionBarcode: "POS-001"},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.waveRepo.On("GetWavePallet", mock.Anything, uint64(1)).Return(pendingPallet(), nil).Once()
				f.redisRepo.On("ClaimWavePallet", mock.Anything, uint64(1), uint64(0), 30*time.Minute).Return(true, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.waveRepo.On("GetWavePalletTx", mock.Anything, tx, uint64(1)).Return(&model.WavePallet{
					ID: 1, WaveID: 2, PalletID: 5, TargetPositionID: uint64Ptr(10), Status: constant.WavePalletStatusAllocated,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrPalletAlreadyAllocated,
		},
		{
			name:   "error: pallet barcode mismatch",
			fields: newFields(t),
			args: args{
				ctx:          context.Background(),
				wavePalletID: 1,
				req:          &model.AllocateRequest{PalletBarcode: "PLT-WRONG", PositionBarcode: "POS-001"},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.waveRepo.On("GetWavePallet", mock.Anything, uint64(1)).Return(pendingPallet(), nil).Once()
				f.redisRepo.On("ClaimWavePallet", mock.Anything, uint64(1), uint64(0), 30*time.Minute).Return(true, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.waveRepo.On("GetWavePalletTx", mock.Anything, tx, uint64(1)).Return(pendingPallet(), nil).Once()
				f.waveRepo.On("GetPalletTx", mock.Anything, tx, uint64(5)).Return(&model.Pallet{
					ID: 5, Barcode: "PLT-001", CurrentQuantity: 50,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrBarcodeMismatch,
		},
		{
			name:   "error: position occupied",
			fields: newFields(t),
			args: args{
				ctx:          context.Background(),
				wavePalletID: 1,
				req:          &model.AllocateRequest{PalletBarcode: "PLT-001", PositionBarcode: "POS-001"},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.waveRepo.On("GetWavePallet", mock.Anything, uint64(1)).Return(pendingPallet(), nil).Once()
				f.redisRepo.On("ClaimWavePallet", mock.Anything, uint64(1), uint64(0), 30*time.Minute).Return(true, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.waveRepo.On("GetWavePalletTx", mock.Anything, tx, uint64(1)).Return(pendingPallet(), nil).Once()
				f.waveRepo.On("GetPalletTx", mock.Anything, tx, uint64(5)).Return(&model.Pallet{
					ID: 5, Barcode: "PLT-001", CurrentQuantity: 50,
				}, nil).Once()
				f.positionRepo.On("GetByIDTx", mock.Anything, tx, uint64(10)).Return(&model.StoragePosition{
					ID: 10, Code: "R1-M1-A1", Barcode: "POS-001", Occupied: true, Active: true,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrPositionOccupied,
		},
		{
			name:   "error: conference incomplete",
			fields: newFields(t),
			args: args{
				ctx:          context.Background(),
				wavePalletID: 1,
				req: &model.AllocateRequest{
					PalletBarcode:   "PLT-001",
					PositionBarcode: "POS-001",
					Items: []model.ConferenceItemInput{
						{ProductID: 100, Status: constant.ConferenceStatusConferred},
					},
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.waveRepo.On("GetWavePallet", mock.Anything, uint64(1)).Return(pendingPallet(), nil).Once()
				f.redisRepo.On("ClaimWavePallet", mock.Anything, uint64(1), uint64(0), 30*time.Minute).Return(true, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.waveRepo.On("GetWavePalletTx", mock.Anything, tx, uint64(1)).Return(pendingPallet(), nil).Once()
				f.waveRepo.On("GetPalletTx", mock.Anything, tx, uint64(5)).Return(&model.Pallet{
					ID: 5, Barcode: "PLT-001", CurrentQuantity: 90,
				}, nil).Once()
				f.positionRepo.On("GetByIDTx", mock.Anything, tx, uint64(10)).Return(freePosition(), nil).Once()
				// Product 200 never conferred; the pallet cannot be stored.
				f.waveRepo.On("GetPalletItemsTx", mock.Anything, tx, uint64(5)).Return([]model.PalletItem{
					{ID: 1, PalletID: 5, ProductID: 100, Quantity: 50},
					{ID: 2, PalletID: 5, ProductID: 200, Quantity: 40},
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrConferenceIncomplete,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appallocation.NewAllocationApp(tt.fields.config, tt.fields.txRepo, tt.fields.waveRepo, tt.fields.positionRepo, tt.fields.stockRepo, tt.fields.divergenceRepo, tt.fields.redisRepo, nil)

			got, err := app.Allocate(tt.args.ctx, tt.args.wavePalletID, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Allocate() error = %v, wantErr %v", err, tt.wantErr)
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

			if got.WavePalletID != tt.want.WavePalletID {
				t.Fatalf("Allocate() wave pallet = %d, want %d", got.WavePalletID, tt.want.WavePalletID)
			}
			if got.PositionCode != tt.want.PositionCode {
				t.Fatalf("Allocate() position = %s, want %s", got.PositionCode, tt.want.PositionCode)
			}
			if got.WaveCompleted != tt.want.WaveCompleted {
				t.Fatalf("Allocate() wave completed = %v, want %v", got.WaveCompleted, tt.want.WaveCompleted)
			}
			if got.DivergenceCount != tt.want.DivergenceCount {
				t.Fatalf("Allocate() divergences = %d, want %d", got.DivergenceCount, tt.want.DivergenceCount)
			}
			if (got.NextWavePalletID == nil) != (tt.want.NextWavePalletID == nil) {
				t.Fatalf("Allocate() next = %v, want %v", got.NextWavePalletID, tt.want.NextWavePalletID)
			}
			if got.NextWavePalletID != nil && *got.NextWavePalletID != *tt.want.NextWavePalletID {
				t.Fatalf("Allocate() next = %d, want %d", *got.NextWavePalletID, *tt.want.NextWavePalletID)
			}
		})
	}
}

func TestAllocationApp_Skip(t *testing.T) {
	type fields struct {
		waveRepo  *wavemocks.WaveRepository
		redisRepo *redismocks.Repository
	}
	tests := []struct {
		name     string
		fields   fields
		id       uint64
		mockCall func(f fields)
		wantNext *uint64
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: skipped pallet stays pending, session advances",
			fields: fields{
				waveRepo:  wavemocks.NewWaveRepository(t),
				redisRepo: redismocks.NewRepository(t),
			},
			id: 1,
			mockCall: func(f fields) {
				f.waveRepo.On("GetWavePallet", mock.Anything, uint64(1)).Return(&model.WavePallet{
					ID: 1, WaveID: 2, PalletID: 5, Status: constant.WavePalletStatusPending,
				}, nil).Once()
				f.redisRepo.On("ReleaseWavePallet", mock.Anything, uint64(1)).Return(nil).Once()
				f.waveRepo.On("NextPendingWavePallet", mock.Anything, uint64(2), uint64(1)).Return(uint64Ptr(4), nil).Once()
			},
			wantNext: uint64Ptr(4),
		},
		{
			name: "error: wave pallet not found",
			fields: fields{
				waveRepo:  wavemocks.NewWaveRepository(t),
				redisRepo: redismocks.NewRepository(t),
			},
			id: 99,
			mockCall: func(f fields) {
				f.waveRepo.On("GetWavePallet", mock.Anything, uint64(99)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appallocation.NewAllocationApp(&config.Config{}, nil, tt.fields.waveRepo, nil, nil, nil, tt.fields.redisRepo, nil)

			got, err := app.Skip(context.Background(), tt.id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Skip() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				if !cerr.Is(err, tt.errCode) {
					t.Fatalf("Skip() error = %v, want code %v", err, tt.errCode)
				}
				return
			}

			if got.WaveCompleted {
				t.Fatal("Skip() must never complete a wave")
			}
			if got.NextWavePalletID == nil || *got.NextWavePalletID != *tt.wantNext {
				t.Fatalf("Skip() next = %v, want %d", got.NextWavePalletID, *tt.wantNext)
			}
		})
	}
}

func TestAllocationApp_ReleaseWaveClaims(t *testing.T) {
	waveRepo := wavemocks.NewWaveRepository(t)
	redisRepo := redismocks.NewRepository(t)

	detail := &model.WaveDetail{
		AllocationWave: model.AllocationWave{ID: 2, Status: constant.WaveStatusCompleted},
		Pallets: []model.WavePalletDetail{
			{WavePallet: model.WavePallet{ID: 1, WaveID: 2}},
			{WavePallet: model.WavePallet{ID: 3, WaveID: 2}},
		},
	}
	waveRepo.On("GetWaveDetail", mock.Anything, uint64(2)).Return(detail, nil).Once()
	redisRepo.On("ReleaseWavePallet", mock.Anything, uint64(1)).Return(nil).Once()
	redisRepo.On("ReleaseWavePallet", mock.Anything, uint64(3)).Return(nil).Once()

	app := appallocation.NewAllocationApp(&config.Config{}, nil, waveRepo, nil, nil, nil, redisRepo, nil)
	if err := app.ReleaseWaveClaims(context.Background(), 2); err != nil {
		t.Fatalf("ReleaseWaveClaims() error = %v", err)
	}
}
