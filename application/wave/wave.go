package wave

import (
	"context"

	"github.com/wareflow/backoffice/constant"
	"github.com/wareflow/backoffice/model"
	waverepo "github.com/wareflow/backoffice/repository/wave"
	"github.com/wareflow/backoffice/utils/errors"
	"github.com/wareflow/backoffice/utils/logger"
	"go.uber.org/zap"
)

type WaveApp interface {
	ListWaves(ctx context.Context, warehouseID *uint64) ([]model.AllocationWave, error)
	GetWave(ctx context.Context, waveID uint64) (*model.WaveDetail, error)
	StartWave(ctx context.Context, waveID uint64, workerID *uint64) (*model.AllocationWave, error)
}

type waveAppImpl struct {
	waveRepo waverepo.WaveRepository
}

func NewWaveApp(waveRepo waverepo.WaveRepository) WaveApp {
	return &waveAppImpl{waveRepo: waveRepo}
}

func (s *waveAppImpl) ListWaves(ctx context.Context, warehouseID *uint64) ([]model.AllocationWave, error) {
	waves, err := s.waveRepo.ListPendingWaves(ctx, warehouseID)
	if err != nil {
		logger.Error("[ListWaves] list waves", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return waves, nil
}

func (s *waveAppImpl) GetWave(ctx context.Context, waveID uint64) (*model.WaveDetail, error) {
	detail, err := s.waveRepo.GetWaveDetail(ctx, waveID)
	if err != nil {
		logger.Error("[GetWave] get wave detail", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if detail == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return detail, nil
}

func (s *waveAppImpl) StartWave(ctx context.Context, waveID uint64, workerID *uint64) (*model.AllocationWave, error) {
	wave, err := s.waveRepo.GetWave(ctx, waveID)
	if err != nil {
		logger.Error("[StartWave] get wave", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if wave == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if !wave.Status.CanStart() {
		return nil, errors.SetCustomError(constant.ErrWaveAlreadyStarted)
	}

	affected, err := s.waveRepo.StartWave(ctx, waveID, workerID)
	if err != nil {
		logger.Error("[StartWave] start wave", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	// The status guard lives in the UPDATE itself; losing the race to
	// another session surfaces here as zero rows affected.
	if affected == 0 {
		return nil, errors.SetCustomError(constant.ErrWaveAlreadyStarted)
	}

	started, err := s.waveRepo.GetWave(ctx, waveID)
	if err != nil || started == nil {
		logger.Error("[StartWave] reload wave", zap.Uint64("wave_id", waveID))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	logger.Info("[StartWave] wave started", zap.Uint64("wave_id", waveID))
	return started, nil
}
