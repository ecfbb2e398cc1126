package allocation

import (
	"github.com/google/uuid"
	"github.com/wareflow/backoffice/constant"
	"github.com/wareflow/backoffice/model"
	"github.com/wareflow/backoffice/utils/errors"
)

// ConferenceItem is one product's conference sub-state within a session.
// Expected is the quantity receiving recorded for the product across every
// pallet item; ConfirmedQty only matters for the damaged state.
type ConferenceItem struct {
	ProductID    uint64                    `json:"product_id"`
	Expected     int64                     `json:"expected"`
	ConfirmedQty int64                     `json:"confirmed_qty"`
	Status       constant.ConferenceStatus `json:"status"`
}

// ConferenceSession is the serializable per-pallet conference buffer. It is
// plain data, detached from any UI state container, and is what the allocate
// call consumes to enforce the conference-complete invariant.
type ConferenceSession struct {
	ID           string           `json:"id"`
	WavePalletID uint64           `json:"wave_pallet_id"`
	PalletID     uint64           `json:"pallet_id"`
	Items        []ConferenceItem `json:"items"`
}

// NewConferenceSession opens a session over a pallet's items. Items of the
// same product (different lots) confer as one product with summed expected
// quantity; every product starts pending.
func NewConferenceSession(wavePalletID, palletID uint64, items []model.PalletItem) *ConferenceSession {
	session := &ConferenceSession{
		ID:           uuid.NewString(),
		WavePalletID: wavePalletID,
		PalletID:     palletID,
	}
	index := make(map[uint64]int)
	for _, item := range items {
		if i, ok := index[item.ProductID]; ok {
			session.Items[i].Expected += item.Quantity
			continue
		}
		index[item.ProductID] = len(session.Items)
		session.Items = append(session.Items, ConferenceItem{
			ProductID: item.ProductID,
			Expected:  item.Quantity,
			Status:    constant.ConferenceStatusPending,
		})
	}
	return session
}

func (s *ConferenceSession) find(productID uint64) *ConferenceItem {
	for i := range s.Items {
		if s.Items[i].ProductID == productID {
			return &s.Items[i]
		}
	}
	return nil
}

// MarkConferred confirms the full expected quantity. Re-marking from
// shortage or damaged clears the product's divergence.
func (s *ConferenceSession) MarkConferred(productID uint64) error {
	item := s.find(productID)
	if item == nil {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	item.Status = constant.ConferenceStatusConferred
	item.ConfirmedQty = item.Expected
	return nil
}

// MarkShortage records that none of the expected quantity arrived.
func (s *ConferenceSession) MarkShortage(productID uint64) error {
	item := s.find(productID)
	if item == nil {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	item.Status = constant.ConferenceStatusShortage
	item.ConfirmedQty = 0
	return nil
}

// MarkDamaged records a confirmed-good quantity strictly below expected.
// Confirming the full quantity is not a damage, it is a conference.
func (s *ConferenceSession) MarkDamaged(productID uint64, confirmedGood int64) error {
	item := s.find(productID)
	if item == nil {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if confirmedGood < 0 || confirmedGood >= item.Expected {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	item.Status = constant.ConferenceStatusDamaged
	item.ConfirmedQty = confirmedGood
	return nil
}

// Apply replays submitted conference results onto the session.
func (s *ConferenceSession) Apply(inputs []model.ConferenceItemInput) error {
	for _, in := range inputs {
		var err error
		switch in.Status {
		case constant.ConferenceStatusConferred:
			err = s.MarkConferred(in.ProductID)
		case constant.ConferenceStatusShortage:
			err = s.MarkShortage(in.ProductID)
		case constant.ConferenceStatusDamaged:
			err = s.MarkDamaged(in.ProductID, in.ConfirmedQty)
		default:
			err = errors.SetCustomError(constant.ErrInvalidRequest)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Complete reports whether every product has left the pending state. The
// pallet cannot be allocated before this holds.
func (s *ConferenceSession) Complete() bool {
	for i := range s.Items {
		if s.Items[i].Status == constant.ConferenceStatusPending {
			return false
		}
	}
	return true
}

// Divergences derives the ledger entries the session implies: shortage
// quantity equals expected, damage quantity equals expected minus confirmed
// good. Conferred and pending products produce no entry.
func (s *ConferenceSession) Divergences() []model.Divergence {
	divergences := make([]model.Divergence, 0)
	for i := range s.Items {
		item := &s.Items[i]
		switch item.Status {
		case constant.ConferenceStatusShortage:
			divergences = append(divergences, model.Divergence{
				PalletID:  s.PalletID,
				ProductID: item.ProductID,
				Type:      constant.DivergenceTypeShortage,
				Quantity:  item.Expected,
			})
		case constant.ConferenceStatusDamaged:
			divergences = append(divergences, model.Divergence{
				PalletID:  s.PalletID,
				ProductID: item.ProductID,
				Type:      constant.DivergenceTypeDamage,
				Quantity:  item.Expected - item.ConfirmedQty,
			})
		}
	}
	return divergences
}

// ConferredQuantities returns the good quantity to materialize as stock per
// product: expected for conferred, confirmed good for damaged, zero for
// shortage.
func (s *ConferenceSession) ConferredQuantities() map[uint64]int64 {
	quantities := make(map[uint64]int64, len(s.Items))
	for i := range s.Items {
		item := &s.Items[i]
		switch item.Status {
		case constant.ConferenceStatusConferred:
			quantities[item.ProductID] = item.Expected
		case constant.ConferenceStatusDamaged:
			quantities[item.ProductID] = item.ConfirmedQty
		case constant.ConferenceStatusShortage:
			quantities[item.ProductID] = 0
		}
	}
	return quantities
}
