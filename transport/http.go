package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
	allocationapp "github.com/wareflow/backoffice/application/allocation"
	authapp "github.com/wareflow/backoffice/application/auth"
	divergenceapp "github.com/wareflow/backoffice/application/divergence"
	gridapp "github.com/wareflow/backoffice/application/grid"
	outboundapp "github.com/wareflow/backoffice/application/outbound"
	selectionapp "github.com/wareflow/backoffice/application/selection"
	waveapp "github.com/wareflow/backoffice/application/wave"
	"github.com/wareflow/backoffice/constant"
	"github.com/wareflow/backoffice/model"
	utilsContext "github.com/wareflow/backoffice/utils/context"
	"github.com/wareflow/backoffice/utils/errors"
	validatorx "github.com/wareflow/backoffice/utils/validator"
)

type RestHandler struct {
	WaveApp       waveapp.WaveApp
	AllocationApp allocationapp.AllocationApp
	GridApp       gridapp.GridApp
	SelectionApp  selectionapp.SelectionApp
	OutboundApp   outboundapp.OutboundApp
	DivergenceApp divergenceapp.DivergenceApp
}

func NewTransport(waveApp waveapp.WaveApp, allocationApp allocationapp.AllocationApp, gridApp gridapp.GridApp, selectionApp selectionapp.SelectionApp, outboundApp outboundapp.OutboundApp, divergenceApp divergenceapp.DivergenceApp, authApp authapp.AuthApp, internalKey string) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		WaveApp:       waveApp,
		AllocationApp: allocationApp,
		GridApp:       gridApp,
		SelectionApp:  selectionApp,
		OutboundApp:   outboundApp,
		DivergenceApp: divergenceApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Allocation workflow routes
	mux.HandleFunc("/waves", rh.ListWaves).Methods(http.MethodGet)
	mux.HandleFunc("/waves/{waveID}", rh.GetWave).Methods(http.MethodGet)
	mux.HandleFunc("/waves/{waveID}/start", rh.StartWave).Methods(http.MethodPost)
	mux.HandleFunc("/wave-pallets/{wavePalletID}/allocate", rh.Allocate).Methods(http.MethodPost)
	mux.HandleFunc("/wave-pallets/{wavePalletID}/skip", rh.Skip).Methods(http.MethodPost)

	// Stock routes
	mux.HandleFunc("/warehouses/{warehouseID}/grid", rh.GetGrid).Methods(http.MethodGet)
	mux.HandleFunc("/warehouses/{warehouseID}/products/{productID}/lots", rh.SuggestLots).Methods(http.MethodGet)
	mux.HandleFunc("/separations", rh.Separate).Methods(http.MethodPost)

	// Reporting routes
	mux.HandleFunc("/receipts/{receiptID}/divergences", rh.DivergenceReport).Methods(http.MethodGet)

	// Internal routes (service-to-service, static API key)
	mux.Handle("/internal/v1/waves/{waveID}/release-claims",
		InternalMiddleware(internalKey)(http.HandlerFunc(rh.ReleaseWaveClaims))).Methods(http.MethodPost)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(authApp))

	return mux
}

// ListWaves handler
// @Summary List allocation waves
// @Description List pending and in-progress allocation waves, optionally filtered by warehouse
// @Tags Waves
// @Produce json
// @Param warehouse_id query int false "Warehouse ID"
// @Success 200 {array} model.AllocationWave
// @Failure 400 {object} errors.CustomError
// @Router /waves [get]
func (s *RestHandler) ListWaves(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var warehouseID *uint64
	if raw := r.URL.Query().Get("warehouse_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
			return
		}
		warehouseID = &id
	}

	res, err := s.WaveApp.ListWaves(ctx, warehouseID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetWave handler
// @Summary Get wave detail
// @Description Get one wave with its nested wave pallets and pallet items
// @Tags Waves
// @Produce json
// @Param waveID path int true "Wave ID"
// @Success 200 {object} model.WaveDetail
// @Failure 400 {object} errors.CustomError
// @Router /waves/{waveID} [get]
func (s *RestHandler) GetWave(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	waveID, err := pathID(r, "waveID")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.WaveApp.GetWave(ctx, waveID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// StartWave handler
// @Summary Start a wave
// @Description Transition a pending wave to in_progress and assign the worker
// @Tags Waves
// @Accept json
// @Produce json
// @Param waveID path int true "Wave ID"
// @Success 200 {object} model.AllocationWave
// @Failure 409 {object} errors.CustomError
// @Router /waves/{waveID}/start [post]
func (s *RestHandler) StartWave(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	waveID, err := pathID(r, "waveID")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var workerID *uint64
	if id, ok := utilsContext.GetWorkerID(ctx); ok {
		workerID = &id
	}

	res, err := s.WaveApp.StartWave(ctx, waveID, workerID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Allocate handler
// @Summary Allocate a wave pallet
// @Description Verify barcodes and conference, create stock at the target position, occupy it and advance the wave
// @Tags Allocation
// @Accept json
// @Produce json
// @Param wavePalletID path int true "Wave Pallet ID"
// @Param request body model.AllocateRequest true "Allocate Request"
// @Success 200 {object} model.AllocateResponse
// @Failure 409 {object} errors.CustomError
// @Router /wave-pallets/{wavePalletID}/allocate [post]
func (s *RestHandler) Allocate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	wavePalletID, err := pathID(r, "wavePalletID")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.AllocateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AllocationApp.Allocate(ctx, wavePalletID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Skip handler
// @Summary Skip a wave pallet
// @Description Move the session to the next pending pallet without changing the skipped pallet's state
// @Tags Allocation
// @Produce json
// @Param wavePalletID path int true "Wave Pallet ID"
// @Success 200 {object} model.SkipResponse
// @Failure 400 {object} errors.CustomError
// @Router /wave-pallets/{wavePalletID}/skip [post]
func (s *RestHandler) Skip(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	wavePalletID, err := pathID(r, "wavePalletID")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AllocationApp.Skip(ctx, wavePalletID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetGrid handler
// @Summary Get position grid
// @Description Occupancy stats, grid bounds and parsed cells for a warehouse's storage positions
// @Tags Grid
// @Produce json
// @Param warehouseID path int true "Warehouse ID"
// @Success 200 {object} model.GridResponse
// @Failure 400 {object} errors.CustomError
// @Router /warehouses/{warehouseID}/grid [get]
func (s *RestHandler) GetGrid(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	warehouseID, err := pathID(r, "warehouseID")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.GridApp.GetGrid(ctx, warehouseID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// SuggestLots handler
// @Summary Suggest stock lots
// @Description Ordered lot candidates for a product under the warehouse's FEFO/FIFO/LIFO strategy
// @Tags Stock
// @Produce json
// @Param warehouseID path int true "Warehouse ID"
// @Param productID path int true "Product ID"
// @Success 200 {object} model.StockSuggestionResponse
// @Failure 400 {object} errors.CustomError
// @Router /warehouses/{warehouseID}/products/{productID}/lots [get]
func (s *RestHandler) SuggestLots(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	warehouseID, err := pathID(r, "warehouseID")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	productID, err := pathID(r, "productID")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.SelectionApp.SuggestLots(ctx, productID, warehouseID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Separate handler
// @Summary Separate stock for outbound
// @Description Draw stock down in selection priority order, retiring drained pallets
// @Tags Stock
// @Accept json
// @Produce json
// @Param request body model.SeparationRequest true "Separation Request"
// @Success 200 {object} model.SeparationResponse
// @Failure 400 {object} errors.CustomError
// @Router /separations [post]
func (s *RestHandler) Separate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.SeparationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.OutboundApp.Separate(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DivergenceReport handler
// @Summary Divergence report per receipt
// @Description Aggregated shortage/damage quantities per product for one receipt
// @Tags Reporting
// @Produce json
// @Param receiptID path int true "Receipt ID"
// @Success 200 {object} model.DivergenceReportResponse
// @Failure 400 {object} errors.CustomError
// @Router /receipts/{receiptID}/divergences [get]
func (s *RestHandler) DivergenceReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	receiptID, err := pathID(r, "receiptID")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.DivergenceApp.ReportByReceipt(ctx, receiptID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ReleaseWaveClaims internal handler, called by the wave completion consumer.
func (s *RestHandler) ReleaseWaveClaims(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	waveID, err := pathID(r, "waveID")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.AllocationApp.ReleaseWaveClaims(ctx, waveID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, struct{}{})
}

func pathID(r *http.Request, key string) (uint64, error) {
	return strconv.ParseUint(mux.Vars(r)[key], 10, 64)
}
