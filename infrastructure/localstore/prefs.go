package localstore

import (
	"encoding/json"

	"tmht.org/checkin/infrastructure/storage"
)

const prefsKey = "ui_prefs"

// Prefs is the small per-installation preference blob the UI reads on
// load. It lives beside the record store but has nothing to do with
// check-in data.
type Prefs struct {
	Theme string `json:"theme,omitempty"`
}

type PrefsStore struct {
	kv storage.KV
}

func NewPrefsStore(kv storage.KV) *PrefsStore {
	return &PrefsStore{kv: kv}
}

// Get returns the stored preferences, or defaults when absent or corrupt.
func (s *PrefsStore) Get() Prefs {
	data, ok := s.kv.Get(prefsKey)
	if !ok {
		return Prefs{}
	}
	var p Prefs
	if err := json.Unmarshal(data, &p); err != nil {
		return Prefs{}
	}
	return p
}

func (s *PrefsStore) Set(p Prefs) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return s.kv.Set(prefsKey, data)
}
