package core

import (
	"encoding/json"
	"time"

	"tmht.org/checkin/infrastructure/storage"
	"tmht.org/checkin/model"
	"tmht.org/checkin/utils"
)

const (
	releasedKey = "released_children"

	// keep only the most recent releases to prevent storage bloat
	releasedCap = 50
)

// ReleasedLedger is a bounded, most-recent-first audit log of completed
// releases. It is purely observational: nothing consults it to decide
// whether a release is permitted, and it may diverge from the record store
// (a deleted record still shows as recently released).
type ReleasedLedger struct {
	kv storage.KV
}

func NewReleasedLedger(kv storage.KV) *ReleasedLedger {
	return &ReleasedLedger{kv: kv}
}

// Add snapshots the record at release time and prepends it to the ledger,
// evicting the oldest entries past the cap.
func (l *ReleasedLedger) Add(rec model.Record) error {
	entry := model.ReleasedChild{
		ID:         rec.ID,
		ChildName:  rec.ChildName,
		ParentName: rec.ParentName,
		Phone:      rec.Phone,
		Code:       rec.Code,
		Classroom:  rec.ServiceTime,
		CheckInAt:  rec.CheckInAt,
		ReleasedAt: time.Now().UTC(),
	}

	list := append([]model.ReleasedChild{entry}, l.List()...)
	if len(list) > releasedCap {
		list = list[:releasedCap]
	}

	data, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return l.kv.Set(releasedKey, data)
}

// List returns the ledger most-recent-first. Missing or corrupt storage
// yields an empty list, never an error.
func (l *ReleasedLedger) List() []model.ReleasedChild {
	data, ok := l.kv.Get(releasedKey)
	if !ok {
		return nil
	}
	var list []model.ReleasedChild
	if err := json.Unmarshal(data, &list); err != nil {
		return nil
	}
	return list
}

// RecentlyReleased filters the ledger to releases within the trailing
// window of the given number of hours.
func (l *ReleasedLedger) RecentlyReleased(hours int) []model.ReleasedChild {
	cutoff := time.Now().Add(-time.Duration(hours) * time.Hour)
	return utils.Filter(l.List(), func(c model.ReleasedChild) bool {
		return c.ReleasedAt.After(cutoff)
	})
}

func (l *ReleasedLedger) Clear() error {
	return l.kv.Delete(releasedKey)
}
