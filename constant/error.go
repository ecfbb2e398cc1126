package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrPositionNotDefined
	ErrConferenceIncomplete
	ErrBarcodeMismatch
	ErrPositionOccupied
	ErrPalletAlreadyAllocated
	ErrPalletClaimed
	ErrWaveAlreadyStarted
	ErrInsufficientStock
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:                "success",
	ErrInternal:               "error internal",
	ErrNotFound:               "data not found",
	ErrInvalidRequest:         "invalid request",
	ErrUnauthorize:            "unauthorize request",
	ErrPositionNotDefined:     "position not defined, return to wave planning",
	ErrConferenceIncomplete:   "conference incomplete, products still pending",
	ErrBarcodeMismatch:        "scanned barcode does not match registered code",
	ErrPositionOccupied:       "position already occupied",
	ErrPalletAlreadyAllocated: "wave pallet already allocated",
	ErrPalletClaimed:          "wave pallet claimed by another worker",
	ErrWaveAlreadyStarted:     "wave already started or completed",
	ErrInsufficientStock:      "insufficient stock",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:                http.StatusOK,
	ErrInternal:               http.StatusInternalServerError,
	ErrNotFound:               http.StatusBadRequest,
	ErrInvalidRequest:         http.StatusBadRequest,
	ErrUnauthorize:            http.StatusUnauthorized,
	ErrPositionNotDefined:     http.StatusBadRequest,
	ErrConferenceIncomplete:   http.StatusBadRequest,
	ErrBarcodeMismatch:        http.StatusConflict,
	ErrPositionOccupied:       http.StatusConflict,
	ErrPalletAlreadyAllocated: http.StatusConflict,
	ErrPalletClaimed:          http.StatusConflict,
	ErrWaveAlreadyStarted:     http.StatusConflict,
	ErrInsufficientStock:      http.StatusBadRequest,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:                "0000",
	ErrInternal:               "0001",
	ErrNotFound:               "0002",
	ErrInvalidRequest:         "0003",
	ErrUnauthorize:            "0004",
	ErrPositionNotDefined:     "0005",
	ErrConferenceIncomplete:   "0006",
	ErrBarcodeMismatch:        "0007",
	ErrPositionOccupied:       "0008",
	ErrPalletAlreadyAllocated: "0009",
	ErrPalletClaimed:          "0010",
	ErrWaveAlreadyStarted:     "0011",
	ErrInsufficientStock:      "0012",
}
