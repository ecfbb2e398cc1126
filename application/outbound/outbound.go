package outbound

import (
	"context"

	"github.com/wareflow/backoffice/application/selection"
	"github.com/wareflow/backoffice/cmd/config"
	"github.com/wareflow/backoffice/constant"
	"github.com/wareflow/backoffice/model"
	positionrepo "github.com/wareflow/backoffice/repository/position"
	stockrepo "github.com/wareflow/backoffice/repository/stock"
	txrepo "github.com/wareflow/backoffice/repository/tx"
	"github.com/wareflow/backoffice/utils/errors"
	"github.com/wareflow/backoffice/utils/logger"
	"go.uber.org/zap"
)

type OutboundApp interface {
	Separate(ctx context.Context, req *model.SeparationRequest) (*model.SeparationResponse, error)
}

type outboundAppImpl struct {
	config       *config.Config
	txRepo       txrepo.TxRepository
	stockRepo    stockrepo.StockRepository
	positionRepo positionrepo.PositionRepository
	selectionApp selection.SelectionApp
}

func NewOutboundApp(config *config.Config, txRepo txrepo.TxRepository, stockRepo stockrepo.StockRepository, positionRepo positionrepo.PositionRepository, selectionApp selection.SelectionApp) OutboundApp {
	return &outboundAppImpl{
		config:       config,
		txRepo:       txRepo,
		stockRepo:    stockRepo,
		positionRepo: positionRepo,
		selectionApp: selectionApp,
	}
}

// Separate draws stock down in the selection engine's priority order inside
// one transaction. Nothing is drawn when the total available falls short; a
// pallet reaching zero is retired and its position released.
func (s *outboundAppImpl) Separate(ctx context.Context, req *model.SeparationRequest) (*model.SeparationResponse, error) {
	if req.Quantity <= 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	suggestion, err := s.selectionApp.SuggestLots(ctx, req.ProductID, req.WarehouseID)
	if err != nil {
		return nil, err
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Separate] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	rows, err := s.stockRepo.FetchLotRowsForUpdateTx(ctx, tx, req.ProductID, req.WarehouseID)
	if err != nil {
		logger.Error("[Separate] lock stock rows", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	ordered := orderRowsBySuggestion(rows, suggestion.Lots)

	var available int64
	for _, row := range ordered {
		available += row.Quantity
	}
	if available < req.Quantity {
		return nil, errors.SetCustomError(constant.ErrInsufficientStock)
	}

	draws := make([]model.SeparationDraw, 0)
	retired := make([]uint64, 0)
	drained := make(map[uint64]int64)

	needed := req.Quantity
	for _, row := range ordered {
		if needed <= 0 {
			break
		}
		quantity := row.Quantity
		if quantity > needed {
			quantity = needed
		}
		if _, err := s.stockRepo.DecrementStockRowTx(ctx, tx, row.ID, quantity); err != nil {
			logger.Error("[Separate] decrement stock", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if err := s.stockRepo.DecrementPalletTx(ctx, tx, row.PalletID, quantity); err != nil {
			logger.Error("[Separate] decrement pallet", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		drained[row.PalletID] += quantity
		draws = append(draws, model.SeparationDraw{
			StockRowID:   row.ID,
			PalletID:     row.PalletID,
			PositionCode: row.PositionCode,
			Quantity:     quantity,
		})
		needed -= quantity
	}

	// Pallets consumed to zero are retired: binding deleted, position freed.
	for palletID := range drained {
		remaining, err := s.stockRepo.GetPalletRemainingTx(ctx, tx, palletID)
		if err != nil {
			logger.Error("[Separate] pallet remaining", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if remaining <= 0 {
			if err := s.positionRepo.ReleasePalletTx(ctx, tx, palletID); err != nil {
				logger.Error("[Separate] release pallet", zap.String("error", err.Error()))
				return nil, errors.SetCustomError(constant.ErrInternal)
			}
			retired = append(retired, palletID)
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Separate] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	logger.Info("[Separate] stock drawn",
		zap.Uint64("product_id", req.ProductID),
		zap.Int64("quantity", req.Quantity),
		zap.Int("draws", len(draws)),
		zap.Int("retired_pallets", len(retired)))

	return &model.SeparationResponse{
		ProductID:      req.ProductID,
		Quantity:       req.Quantity,
		Draws:          draws,
		RetiredPallets: retired,
	}, nil
}

// orderRowsBySuggestion sequences the locked rows to match the selection
// engine's lot order, position breakdown order within each lot.
func orderRowsBySuggestion(rows []model.RawLotRow, lots []model.StockLot) []model.RawLotRow {
	remaining := make(map[uint64]model.RawLotRow, len(rows))
	for _, row := range rows {
		remaining[row.ID] = row
	}

	ordered := make([]model.RawLotRow, 0, len(rows))
	for _, lot := range lots {
		for _, pos := range lot.Positions {
			for id, row := range remaining {
				if row.PositionCode == pos.PositionCode && sameLot(row.LotCode, lot.LotCode) {
					ordered = append(ordered, row)
					delete(remaining, id)
					break
				}
			}
		}
	}
	// Rows that appeared between the suggestion read and the lock go last.
	for _, row := range rows {
		if _, ok := remaining[row.ID]; ok {
			ordered = append(ordered, row)
			delete(remaining, row.ID)
		}
	}
	return ordered
}

func sameLot(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
