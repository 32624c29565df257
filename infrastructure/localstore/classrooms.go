package localstore

import (
	"encoding/json"
	"errors"
	"strings"

	"tmht.org/checkin/infrastructure/storage"
)

const classroomsKey = "classrooms"

// ErrDuplicateClassroom is returned when adding a classroom whose name is
// already registered (case-insensitive).
var ErrDuplicateClassroom = errors.New("classroom already exists")

// DefaultClassrooms seeds the selection the registration form offers.
var DefaultClassrooms = []string{"Nursery", "Toddlers", "K-2nd Grade"}

type ClassroomStore struct {
	kv storage.KV
}

func NewClassroomStore(kv storage.KV) *ClassroomStore {
	return &ClassroomStore{kv: kv}
}

// List returns the registered classrooms, falling back to the defaults
// when nothing has been stored yet.
func (s *ClassroomStore) List() []string {
	data, ok := s.kv.Get(classroomsKey)
	if !ok {
		return append([]string(nil), DefaultClassrooms...)
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return append([]string(nil), DefaultClassrooms...)
	}
	return list
}

// Add registers a new classroom name. Duplicate names are a validation
// error surfaced inline on the admin form.
func (s *ClassroomStore) Add(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("classroom name is required")
	}

	list := s.List()
	for _, existing := range list {
		if strings.EqualFold(existing, name) {
			return ErrDuplicateClassroom
		}
	}

	data, err := json.Marshal(append(list, name))
	if err != nil {
		return err
	}
	return s.kv.Set(classroomsKey, data)
}
