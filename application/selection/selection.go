package selection

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/wareflow/backoffice/cmd/config"
	"github.com/wareflow/backoffice/constant"
	"github.com/wareflow/backoffice/model"
	redisrepo "github.com/wareflow/backoffice/repository/redis"
	stockrepo "github.com/wareflow/backoffice/repository/stock"
	"github.com/wareflow/backoffice/utils/errors"
	"github.com/wareflow/backoffice/utils/logger"
	"go.uber.org/zap"
)

type SelectionApp interface {
	SuggestLots(ctx context.Context, productID, warehouseID uint64) (*model.StockSuggestionResponse, error)
}

type selectionAppImpl struct {
	config    *config.Config
	stockRepo stockrepo.StockRepository
	redisRepo redisrepo.Repository
}

func NewSelectionApp(config *config.Config, stockRepo stockrepo.StockRepository, redisRepo redisrepo.Repository) SelectionApp {
	return &selectionAppImpl{config: config, stockRepo: stockRepo, redisRepo: redisRepo}
}

// sentinelExpiry stands in for "no expiry" so such lots sort after every
// dated lot under FEFO.
var sentinelExpiry = time.Date(9999, 1, 1, 0, 0, 0, 0, time.UTC)

const (
	msPerDay = int64(24 * time.Hour / time.Millisecond)
	// maxTieBreakMillis caps the receipt-age adjustment strictly below one
	// day so the tie-break can never flip a one-day expiry delta.
	maxTieBreakMillis = msPerDay - 1000
)

// Score computes the single sortable removal priority of a lot. Lower means
// draw first. Under FEFO the receipt date only breaks expiry ties: the
// adjustment is one millisecond-scaled unit per day of age, capped below one
// day's worth of expiry milliseconds.
func Score(strategy constant.SelectionStrategy, expiry *time.Time, receipt time.Time, now time.Time) int64 {
	switch strategy {
	case constant.StrategyFIFO:
		return receipt.UnixMilli()
	case constant.StrategyLIFO:
		return -receipt.UnixMilli()
	default:
		exp := sentinelExpiry
		if expiry != nil {
			exp = *expiry
		}
		ageDays := int64(now.Sub(receipt) / (24 * time.Hour))
		if ageDays < 0 {
			ageDays = 0
		}
		adj := ageDays * 1000
		if adj > maxTieBreakMillis {
			adj = maxTieBreakMillis
		}
		return exp.UnixMilli() - adj
	}
}

// GroupRows folds raw stock rows into logical lots keyed by lot code, or by
// a synthetic pallet+receipt key when the product carries no lot code.
func GroupRows(rows []model.RawLotRow) []model.StockLot {
	order := make([]string, 0)
	byKey := make(map[string]*model.StockLot)

	for _, row := range rows {
		key := fmt.Sprintf("pallet:%d:receipt:%d", row.PalletID, row.ReceiptID)
		if row.LotCode != nil && *row.LotCode != "" {
			key = "lot:" + *row.LotCode
		}

		lot, ok := byKey[key]
		if !ok {
			lot = &model.StockLot{
				ProductID:   row.ProductID,
				WarehouseID: row.WarehouseID,
				LotCode:     row.LotCode,
				ExpiryDate:  row.ExpiryDate,
				ReceiptDate: row.ReceiptDate,
				UnitCost:    row.UnitCost,
			}
			byKey[key] = lot
			order = append(order, key)
		}

		lot.Quantity += row.Quantity
		lot.Positions = append(lot.Positions, model.LotPosition{PositionCode: row.PositionCode, Quantity: row.Quantity})
		if row.ReceiptDate.Before(lot.ReceiptDate) {
			lot.ReceiptDate = row.ReceiptDate
		}
		if row.ExpiryDate != nil && (lot.ExpiryDate == nil || row.ExpiryDate.Before(*lot.ExpiryDate)) {
			lot.ExpiryDate = row.ExpiryDate
		}
	}

	lots := make([]model.StockLot, 0, len(order))
	for _, key := range order {
		lots = append(lots, *byKey[key])
	}
	return lots
}

// OrderLots sorts lots by removal priority under the strategy and stamps the
// expiry classification on each.
func OrderLots(lots []model.StockLot, strategy constant.SelectionStrategy, now time.Time, criticalDays, attentionDays int) []model.StockLot {
	sort.SliceStable(lots, func(i, j int) bool {
		si := Score(strategy, lots[i].ExpiryDate, lots[i].ReceiptDate, now)
		sj := Score(strategy, lots[j].ExpiryDate, lots[j].ReceiptDate, now)
		return si < sj
	})

	for i := range lots {
		lots[i].DaysToExpire, lots[i].Status = classify(lots[i].ExpiryDate, now, criticalDays, attentionDays)
	}
	return lots
}

func classify(expiry *time.Time, now time.Time, criticalDays, attentionDays int) (*int, constant.LotStatus) {
	if expiry == nil {
		return nil, constant.LotStatusNormal
	}
	days := int(expiry.Sub(now) / (24 * time.Hour))
	switch {
	case days <= criticalDays:
		return &days, constant.LotStatusCritical
	case days <= attentionDays:
		return &days, constant.LotStatusAttention
	default:
		return &days, constant.LotStatusNormal
	}
}

func (s *selectionAppImpl) SuggestLots(ctx context.Context, productID, warehouseID uint64) (*model.StockSuggestionResponse, error) {
	strategy := s.resolveStrategy(ctx, warehouseID)

	rows, err := s.stockRepo.FetchLotRows(ctx, productID, warehouseID, s.config.Allocation.PageSize)
	if err != nil {
		logger.Error("[SuggestLots] fetch lot rows", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	logger.Debug("[SuggestLots] lot rows fetched", zap.Uint64("product_id", productID), zap.Int("rows", len(rows)))

	lots := OrderLots(GroupRows(rows), strategy, time.Now(), s.config.Allocation.CriticalDays, s.config.Allocation.AttentionDays)

	// Unknown product/warehouse yields an empty list, not an error.
	return &model.StockSuggestionResponse{
		ProductID:   productID,
		WarehouseID: warehouseID,
		Strategy:    strategy,
		Lots:        lots,
	}, nil
}

// resolveStrategy looks up the warehouse override, consulting a short-lived
// cache first and falling back to the configured default.
func (s *selectionAppImpl) resolveStrategy(ctx context.Context, warehouseID uint64) constant.SelectionStrategy {
	cacheKey := fmt.Sprintf("warehouse:strategy:%d", warehouseID)
	if cached, err := s.redisRepo.Get(ctx, cacheKey); err == nil && cached != "" {
		return constant.ParseStrategy(cached)
	}

	raw, err := s.stockRepo.GetSelectionStrategy(ctx, warehouseID)
	if err != nil {
		logger.Warn("[resolveStrategy] read strategy", zap.String("error", err.Error()))
		return s.config.Allocation.DefaultStrategy
	}
	if raw == "" {
		return s.config.Allocation.DefaultStrategy
	}

	strategy := constant.ParseStrategy(raw)
	if err := s.redisRepo.SetWithTTL(ctx, cacheKey, string(strategy), 5*time.Minute); err != nil {
		logger.Warn("[resolveStrategy] cache strategy", zap.String("error", err.Error()))
	}
	return strategy
}
