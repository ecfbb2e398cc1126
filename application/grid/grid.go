package grid

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/wareflow/backoffice/cmd/config"
	"github.com/wareflow/backoffice/constant"
	"github.com/wareflow/backoffice/model"
	positionrepo "github.com/wareflow/backoffice/repository/position"
	"github.com/wareflow/backoffice/utils/errors"
	"github.com/wareflow/backoffice/utils/logger"
	"go.uber.org/zap"
)

type GridApp interface {
	GetGrid(ctx context.Context, warehouseID uint64) (*model.GridResponse, error)
}

type gridAppImpl struct {
	config       *config.Config
	positionRepo positionrepo.PositionRepository
}

func NewGridApp(config *config.Config, positionRepo positionrepo.PositionRepository) GridApp {
	return &gridAppImpl{config: config, positionRepo: positionRepo}
}

// codePattern matches position codes R{aisle}-M{module}-A{level}. Leading
// zeros are tolerated, e.g. R03-M12-A02.
var codePattern = regexp.MustCompile(`^R(\d+)-M(\d+)-A(\d+)$`)

// ParseCode decodes a position code into 3D coordinates.
func ParseCode(code string) (model.Coordinates, error) {
	m := codePattern.FindStringSubmatch(code)
	if m == nil {
		return model.Coordinates{}, fmt.Errorf("unparseable position code %q", code)
	}
	aisle, err := strconv.Atoi(m[1])
	if err != nil {
		return model.Coordinates{}, fmt.Errorf("unparseable position code %q", code)
	}
	module, err := strconv.Atoi(m[2])
	if err != nil {
		return model.Coordinates{}, fmt.Errorf("unparseable position code %q", code)
	}
	level, err := strconv.Atoi(m[3])
	if err != nil {
		return model.Coordinates{}, fmt.Errorf("unparseable position code %q", code)
	}
	return model.Coordinates{Aisle: aisle, Module: module, Level: level}, nil
}

// ComputeStats aggregates occupancy over the parseable positions of a
// snapshot. Positions with bad codes are excluded; they exist as records but
// have no place on the grid.
func ComputeStats(cells []model.GridCell) model.GridStats {
	stats := model.GridStats{Total: len(cells)}
	for _, c := range cells {
		if c.Position.Occupied {
			stats.Occupied++
		}
	}
	stats.Free = stats.Total - stats.Occupied
	if stats.Total > 0 {
		stats.OccupancyPercent = int(math.Round(float64(stats.Occupied) / float64(stats.Total) * 100))
	}
	return stats
}

// ComputeBounds finds the grid dimensions over the parseable positions.
func ComputeBounds(cells []model.GridCell) model.GridBounds {
	var bounds model.GridBounds
	for _, c := range cells {
		if c.Coordinates.Aisle > bounds.MaxAisle {
			bounds.MaxAisle = c.Coordinates.Aisle
		}
		if c.Coordinates.Module > bounds.MaxModule {
			bounds.MaxModule = c.Coordinates.Module
		}
		if c.Coordinates.Level > bounds.MaxLevel {
			bounds.MaxLevel = c.Coordinates.Level
		}
	}
	return bounds
}

// BuildCells parses every position in the snapshot. A malformed code is
// reported back, never allowed to abort the whole listing.
func BuildCells(positions []model.StoragePosition) ([]model.GridCell, []string) {
	cells := make([]model.GridCell, 0, len(positions))
	parseErrors := make([]string, 0)
	for _, p := range positions {
		coords, err := ParseCode(p.Code)
		if err != nil {
			parseErrors = append(parseErrors, err.Error())
			continue
		}
		cells = append(cells, model.GridCell{Position: p, Coordinates: coords})
	}
	return cells, parseErrors
}

func (s *gridAppImpl) GetGrid(ctx context.Context, warehouseID uint64) (*model.GridResponse, error) {
	positions, err := s.positionRepo.ListByWarehouse(ctx, warehouseID, s.config.Allocation.PageSize)
	if err != nil {
		logger.Error("[GetGrid] list positions", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	logger.Debug("[GetGrid] position snapshot fetched", zap.Uint64("warehouse_id", warehouseID), zap.Int("rows", len(positions)))

	cells, parseErrors := BuildCells(positions)
	for _, pe := range parseErrors {
		logger.Warn("[GetGrid] excluded position", zap.String("reason", pe))
	}

	return &model.GridResponse{
		Stats:       ComputeStats(cells),
		Bounds:      ComputeBounds(cells),
		Cells:       cells,
		ParseErrors: parseErrors,
	}, nil
}
