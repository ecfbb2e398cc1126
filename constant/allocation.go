package constant

type WaveStatus int

const (
	WaveStatusPending    WaveStatus = 1
	WaveStatusInProgress WaveStatus = 2
	WaveStatusCompleted  WaveStatus = 3
)

// CanStart reports whether a wave may transition to in_progress.
// Only pending waves can be started; re-starting is a conflict.
func (s WaveStatus) CanStart() bool {
	return s == WaveStatusPending
}

type WavePalletStatus int

const (
	WavePalletStatusPending   WavePalletStatus = 1
	WavePalletStatusAllocated WavePalletStatus = 2
	WavePalletStatusSkipped   WavePalletStatus = 3
)

// CanAllocate reports whether a wave pallet may transition to allocated.
func (s WavePalletStatus) CanAllocate() bool {
	return s == WavePalletStatusPending
}

type ConferenceStatus int

const (
	ConferenceStatusPending   ConferenceStatus = 1
	ConferenceStatusConferred ConferenceStatus = 2
	ConferenceStatusShortage  ConferenceStatus = 3
	ConferenceStatusDamaged   ConferenceStatus = 4
)

type DivergenceType int

const (
	DivergenceTypeShortage DivergenceType = 1
	DivergenceTypeDamage   DivergenceType = 2
)

type SelectionStrategy string

const (
	StrategyFEFO SelectionStrategy = "FEFO"
	StrategyFIFO SelectionStrategy = "FIFO"
	StrategyLIFO SelectionStrategy = "LIFO"
)

// ParseStrategy maps a stored strategy value to a known strategy,
// falling back to FEFO for anything unrecognized.
func ParseStrategy(s string) SelectionStrategy {
	switch SelectionStrategy(s) {
	case StrategyFIFO:
		return StrategyFIFO
	case StrategyLIFO:
		return StrategyLIFO
	default:
		return StrategyFEFO
	}
}

type LotStatus string

const (
	LotStatusCritical  LotStatus = "critical"
	LotStatusAttention LotStatus = "attention"
	LotStatusNormal    LotStatus = "normal"
)
