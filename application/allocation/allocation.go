package allocation

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/wareflow/backoffice/cmd/config"
	"github.com/wareflow/backoffice/constant"
	"github.com/wareflow/backoffice/model"
	divergencerepo "github.com/wareflow/backoffice/repository/divergence"
	positionrepo "github.com/wareflow/backoffice/repository/position"
	redisrepo "github.com/wareflow/backoffice/repository/redis"
	stockrepo "github.com/wareflow/backoffice/repository/stock"
	txrepo "github.com/wareflow/backoffice/repository/tx"
	waverepo "github.com/wareflow/backoffice/repository/wave"
	"github.com/wareflow/backoffice/thirdparty/rabbitmq"
	utilsContext "github.com/wareflow/backoffice/utils/context"
	"github.com/wareflow/backoffice/utils/errors"
	"github.com/wareflow/backoffice/utils/logger"
	"go.uber.org/zap"
)

type AllocationApp interface {
	Allocate(ctx context.Context, wavePalletID uint64, req *model.AllocateRequest) (*model.AllocateResponse, error)
	Skip(ctx context.Context, wavePalletID uint64) (*model.SkipResponse, error)
	ReleaseWaveClaims(ctx context.Context, waveID uint64) error
}

type allocationAppImpl struct {
	config         *config.Config
	txRepo         txrepo.TxRepository
	waveRepo       waverepo.WaveRepository
	positionRepo   positionrepo.PositionRepository
	stockRepo      stockrepo.StockRepository
	divergenceRepo divergencerepo.DivergenceRepository
	redisRepo      redisrepo.Repository
	publisher      *rabbitmq.Publisher
}

func NewAllocationApp(config *config.Config, txRepo txrepo.TxRepository, waveRepo waverepo.WaveRepository, positionRepo positionrepo.PositionRepository, stockRepo stockrepo.StockRepository, divergenceRepo divergencerepo.DivergenceRepository, redisRepo redisrepo.Repository, publisher *rabbitmq.Publisher) AllocationApp {
	return &allocationAppImpl{
		config:         config,
		txRepo:         txRepo,
		waveRepo:       waveRepo,
		positionRepo:   positionRepo,
		stockRepo:      stockRepo,
		divergenceRepo: divergenceRepo,
		redisRepo:      redisRepo,
		publisher:      publisher,
	}
}

// Allocate runs the whole pallet allocation as one transaction: barcode
// verification, conference-complete check, stock materialization, position
// occupancy and wave pallet transition either all apply or none do.
func (s *allocationAppImpl) Allocate(ctx context.Context, wavePalletID uint64, req *model.AllocateRequest) (*model.AllocateResponse, error) {
	// Validation errors are local, no repository round-trip.
	if req.PalletBarcode == "" || req.PositionBarcode == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	wavePallet, err := s.waveRepo.GetWavePallet(ctx, wavePalletID)
	if err != nil {
		logger.Error("[Allocate] get wave pallet", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if wavePallet == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	targetPositionID := wavePallet.TargetPositionID
	if req.TargetPositionID != nil {
		targetPositionID = req.TargetPositionID
	}
	// A wave pallet can exist without a target; that is a planning gap the
	// operator must resolve, never a silent default.
	if targetPositionID == nil {
		return nil, errors.SetCustomError(constant.ErrPositionNotDefined)
	}

	workerID, _ := utilsContext.GetWorkerID(ctx)
	claimed, err := s.redisRepo.ClaimWavePallet(ctx, wavePalletID, workerID, s.config.Allocation.ClaimTTL)
	if err != nil {
		logger.Error("[Allocate] claim wave pallet", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !claimed {
		return nil, errors.SetCustomError(constant.ErrPalletClaimed)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Allocate] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	// Re-read under lock; the claim lease only steers operators apart.
	lockedPallet, err := s.waveRepo.GetWavePalletTx(ctx, tx, wavePalletID)
	if err != nil {
		logger.Error("[Allocate] lock wave pallet", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if lockedPallet == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if !lockedPallet.Status.CanAllocate() {
		return nil, errors.SetCustomError(constant.ErrPalletAlreadyAllocated)
	}

	pallet, err := s.waveRepo.GetPalletTx(ctx, tx, lockedPallet.PalletID)
	if err != nil {
		logger.Error("[Allocate] get pallet", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if pallet == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if pallet.Barcode != req.PalletBarcode {
		return nil, errors.SetCustomError(constant.ErrBarcodeMismatch)
	}

	position, err := s.positionRepo.GetByIDTx(ctx, tx, *targetPositionID)
	if err != nil {
		logger.Error("[Allocate] get position", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if position == nil || !position.Active {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if position.Barcode != req.PositionBarcode {
		return nil, errors.SetCustomError(constant.ErrBarcodeMismatch)
	}
	if position.Occupied {
		return nil, errors.SetCustomError(constant.ErrPositionOccupied)
	}

	items, err := s.waveRepo.GetPalletItemsTx(ctx, tx, pallet.ID)
	if err != nil {
		logger.Error("[Allocate] get pallet items", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	session := NewConferenceSession(wavePalletID, pallet.ID, items)
	if err := session.Apply(req.Items); err != nil {
		return nil, err
	}
	if !session.Complete() {
		return nil, errors.SetCustomError(constant.ErrConferenceIncomplete)
	}

	if err := s.materializeStock(ctx, tx, pallet, position, items, session); err != nil {
		logger.Error("[Allocate] materialize stock", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.positionRepo.SetOccupiedTx(ctx, tx, position.ID, true); err != nil {
		logger.Error("[Allocate] occupy position", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.positionRepo.BindPalletTx(ctx, tx, pallet.ID, position.ID); err != nil {
		logger.Error("[Allocate] bind pallet", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.waveRepo.UpdateWavePalletStatusTx(ctx, tx, wavePalletID, constant.WavePalletStatusAllocated); err != nil {
		logger.Error("[Allocate] update wave pallet", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	divergences := session.Divergences()
	if err := s.persistDivergences(ctx, tx, session, divergences); err != nil {
		logger.Error("[Allocate] persist divergences", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	pending, err := s.waveRepo.CountPendingPalletsTx(ctx, tx, lockedPallet.WaveID)
	if err != nil {
		logger.Error("[Allocate] count pending", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	var nextID *uint64
	waveCompleted := pending == 0
	if waveCompleted {
		// Completion is observed, never separately commanded.
		if err := s.waveRepo.CompleteWaveTx(ctx, tx, lockedPallet.WaveID); err != nil {
			logger.Error("[Allocate] complete wave", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	} else {
		nextID, err = s.waveRepo.NextPendingWavePalletTx(ctx, tx, lockedPallet.WaveID, wavePalletID)
		if err != nil {
			logger.Error("[Allocate] next pending", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Allocate] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	if err := s.redisRepo.ReleaseWavePallet(ctx, wavePalletID); err != nil {
		logger.Warn("[Allocate] release claim", zap.String("error", err.Error()))
	}

	if s.publisher != nil {
		msg := rabbitmq.PalletAllocatedMessage{
			WavePalletID:    wavePalletID,
			WaveID:          lockedPallet.WaveID,
			PalletID:        pallet.ID,
			PositionCode:    position.Code,
			DivergenceCount: len(divergences),
			AllocatedAt:     time.Now(),
		}
		if err := s.publisher.PublishPalletAllocated(msg); err != nil {
			logger.Error("[Allocate] publish pallet allocated", zap.String("error", err.Error()))
		}
		if waveCompleted {
			if err := s.publisher.PublishWaveCompleted(rabbitmq.WaveCompletedMessage{WaveID: lockedPallet.WaveID, CompletedAt: time.Now()}); err != nil {
				logger.Error("[Allocate] publish wave completed", zap.String("error", err.Error()))
			}
		}
	}

	logger.Info("[Allocate] pallet allocated",
		zap.Uint64("wave_pallet_id", wavePalletID),
		zap.String("position_code", position.Code),
		zap.Int("divergences", len(divergences)))

	return &model.AllocateResponse{
		WavePalletID:     wavePalletID,
		PositionCode:     position.Code,
		NextWavePalletID: nextID,
		WaveCompleted:    waveCompleted,
		DivergenceCount:  len(divergences),
	}, nil
}

// materializeStock creates/increments one stock row per pallet item with a
// confirmed-good quantity, drawing each product's conferred quantity across
// its items in enumeration order, and writes the pallet's physical count
// back when divergences reduced it.
func (s *allocationAppImpl) materializeStock(ctx context.Context, tx *sqlx.Tx, pallet *model.Pallet, position *model.StoragePosition, items []model.PalletItem, session *ConferenceSession) error {
	remaining := session.ConferredQuantities()
	receiptDate := time.Now()

	var materialized int64
	for _, item := range items {
		left := remaining[item.ProductID]
		if left <= 0 {
			continue
		}
		quantity := item.Quantity
		if quantity > left {
			quantity = left
		}
		remaining[item.ProductID] = left - quantity
		materialized += quantity

		row := &model.RawLotRow{
			ProductID:    item.ProductID,
			WarehouseID:  position.WarehouseID,
			PalletID:     pallet.ID,
			ReceiptID:    pallet.ReceiptID,
			PositionCode: position.Code,
			LotCode:      item.LotCode,
			ExpiryDate:   item.ExpiryDate,
			ReceiptDate:  receiptDate,
			UnitCost:     item.UnitCost,
			Quantity:     quantity,
		}
		if err := s.stockRepo.UpsertStockRowTx(ctx, tx, row); err != nil {
			return err
		}
	}

	shrinkage := pallet.CurrentQuantity - materialized
	if shrinkage > 0 {
		if err := s.stockRepo.DecrementPalletTx(ctx, tx, pallet.ID, shrinkage); err != nil {
			return err
		}
	}
	return nil
}

func (s *allocationAppImpl) persistDivergences(ctx context.Context, tx *sqlx.Tx, session *ConferenceSession, divergences []model.Divergence) error {
	for i := range divergences {
		if err := s.divergenceRepo.RecordTx(ctx, tx, &divergences[i]); err != nil {
			return err
		}
	}
	// Products re-marked as fully conferred lose any earlier entry.
	for i := range session.Items {
		if session.Items[i].Status == constant.ConferenceStatusConferred {
			if err := s.divergenceRepo.ClearTx(ctx, tx, session.PalletID, session.Items[i].ProductID); err != nil {
				return err
			}
		}
	}
	return nil
}

// Skip advances the session to the next pending pallet. The skipped pallet
// stays pending for a later pass; no stock, no divergences.
func (s *allocationAppImpl) Skip(ctx context.Context, wavePalletID uint64) (*model.SkipResponse, error) {
	wavePallet, err := s.waveRepo.GetWavePallet(ctx, wavePalletID)
	if err != nil {
		logger.Error("[Skip] get wave pallet", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if wavePallet == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.redisRepo.ReleaseWavePallet(ctx, wavePalletID); err != nil {
		logger.Warn("[Skip] release claim", zap.String("error", err.Error()))
	}

	nextID, err := s.waveRepo.NextPendingWavePallet(ctx, wavePallet.WaveID, wavePalletID)
	if err != nil {
		logger.Error("[Skip] next pending", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.SkipResponse{
		WavePalletID:     wavePalletID,
		NextWavePalletID: nextID,
		WaveCompleted:    false,
	}, nil
}

// ReleaseWaveClaims drops any leftover claim leases for a wave's pallets.
// Invoked through the internal API when a wave completes, so long-TTL leases
// do not linger past the wave.
func (s *allocationAppImpl) ReleaseWaveClaims(ctx context.Context, waveID uint64) error {
	detail, err := s.waveRepo.GetWaveDetail(ctx, waveID)
	if err != nil {
		logger.Error("[ReleaseWaveClaims] get wave detail", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if detail == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	for _, wp := range detail.Pallets {
		if err := s.redisRepo.ReleaseWavePallet(ctx, wp.ID); err != nil {
			logger.Warn("[ReleaseWaveClaims] release claim", zap.Uint64("wave_pallet_id", wp.ID), zap.String("error", err.Error()))
		}
	}
	return nil
}
