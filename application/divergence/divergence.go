package divergence

import (
	"context"

	"github.com/wareflow/backoffice/constant"
	"github.com/wareflow/backoffice/model"
	divergencerepo "github.com/wareflow/backoffice/repository/divergence"
	"github.com/wareflow/backoffice/utils/errors"
	"github.com/wareflow/backoffice/utils/logger"
	"go.uber.org/zap"
)

// DivergenceApp exposes the ledger for reporting screens. Entries themselves
// are only written/cleared as side effects of conference transitions.
type DivergenceApp interface {
	ReportByReceipt(ctx context.Context, receiptID uint64) (*model.DivergenceReportResponse, error)
	ListByPallet(ctx context.Context, palletID uint64) ([]model.Divergence, error)
}

type divergenceAppImpl struct {
	divergenceRepo divergencerepo.DivergenceRepository
}

func NewDivergenceApp(divergenceRepo divergencerepo.DivergenceRepository) DivergenceApp {
	return &divergenceAppImpl{divergenceRepo: divergenceRepo}
}

func (s *divergenceAppImpl) ReportByReceipt(ctx context.Context, receiptID uint64) (*model.DivergenceReportResponse, error) {
	items, err := s.divergenceRepo.SummarizeByReceipt(ctx, receiptID)
	if err != nil {
		logger.Error("[ReportByReceipt] summarize", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.DivergenceReportResponse{ReceiptID: receiptID, Items: items}, nil
}

func (s *divergenceAppImpl) ListByPallet(ctx context.Context, palletID uint64) ([]model.Divergence, error) {
	divergences, err := s.divergenceRepo.ListByPallet(ctx, palletID)
	if err != nil {
		logger.Error("[ListByPallet] list", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return divergences, nil
}
