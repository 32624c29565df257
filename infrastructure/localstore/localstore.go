// Package localstore persists check-in records on the device running the
// service. It is the fallback store when no remote database is configured
// and the mirror/outage store when one is.
package localstore

import (
	"encoding/json"
	"time"

	"tmht.org/checkin/infrastructure/storage"
	"tmht.org/checkin/model"
)

const recordsKey = "checkins"

type Store struct {
	kv storage.KV
}

func New(kv storage.KV) *Store {
	return &Store{kv: kv}
}

// Records returns the stored list. Missing or corrupt content degrades to
// an empty list rather than an error.
func (s *Store) Records() []model.Record {
	data, ok := s.kv.Get(recordsKey)
	if !ok {
		return nil
	}
	var list []model.Record
	if err := json.Unmarshal(data, &list); err != nil {
		return nil
	}
	return list
}

func (s *Store) SetRecords(list []model.Record) error {
	data, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return s.kv.Set(recordsKey, data)
}

func (s *Store) Add(rec model.Record) error {
	return s.SetRecords(append(s.Records(), rec))
}

func (s *Store) FindByCode(code string) *model.Record {
	for _, r := range s.Records() {
		if r.Code == code {
			return &r
		}
	}
	return nil
}

// Release stamps pickUpAt on the record with the given id and returns the
// updated record, or nil when the id is unknown.
func (s *Store) Release(id string, at time.Time) (*model.Record, error) {
	list := s.Records()
	for i := range list {
		if list[i].ID == id {
			list[i].PickUpAt = &at
			if err := s.SetRecords(list); err != nil {
				return nil, err
			}
			return &list[i], nil
		}
	}
	return nil, nil
}

// UpdateServiceTime rewrites the classroom grouping of a record, the one
// correction allowed besides the release stamp. Returns nil when the id is
// unknown.
func (s *Store) UpdateServiceTime(id, serviceTime string) (*model.Record, error) {
	list := s.Records()
	for i := range list {
		if list[i].ID == id {
			list[i].ServiceTime = serviceTime
			if err := s.SetRecords(list); err != nil {
				return nil, err
			}
			return &list[i], nil
		}
	}
	return nil, nil
}

// Delete removes the record with the given id and reports whether it was
// present.
func (s *Store) Delete(id string) (bool, error) {
	list := s.Records()
	kept := list[:0]
	for _, r := range list {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(list) {
		return false, nil
	}
	if err := s.SetRecords(kept); err != nil {
		return false, err
	}
	return true, nil
}

// UsedCodes returns the codes of records sharing the given service time.
// Code uniqueness is scoped to the service, not global.
func (s *Store) UsedCodes(serviceTime string) map[string]struct{} {
	used := make(map[string]struct{})
	for _, r := range s.Records() {
		if r.ServiceTime == serviceTime {
			used[r.Code] = struct{}{}
		}
	}
	return used
}

func (s *Store) CountByService(serviceTime string) int {
	n := 0
	for _, r := range s.Records() {
		if r.ServiceTime == serviceTime {
			n++
		}
	}
	return n
}
