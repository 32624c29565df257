package localstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tmht.org/checkin/infrastructure/storage"
	"tmht.org/checkin/model"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	return New(storage.NewMemory())
}

func rec(id, code, service string) model.Record {
	return model.Record{
		ID:          id,
		ChildName:   "Child " + id,
		ParentName:  "Parent " + id,
		Phone:       "0400000000",
		ServiceTime: service,
		Code:        code,
		CheckInAt:   time.Now().UTC(),
	}
}

func TestAddAndFindByCode(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Add(rec("a", "1234", "Nursery")))
	require.NoError(t, s.Add(rec("b", "5678", "Nursery")))

	found := s.FindByCode("5678")
	require.NotNil(t, found)
	assert.Equal(t, "b", found.ID)

	assert.Nil(t, s.FindByCode("0000"))
}

func TestCorruptStorageDegradesToEmpty(t *testing.T) {
	kv := storage.NewMemory()
	require.NoError(t, kv.Set("checkins", []byte("{not json")))
	s := New(kv)
	assert.Empty(t, s.Records())
}

func TestRelease(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Add(rec("a", "1234", "")))

	at := time.Now().UTC()
	updated, err := s.Release("a", at)
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.NotNil(t, updated.PickUpAt)
	assert.Equal(t, at, *updated.PickUpAt)

	// persisted, not just returned
	stored := s.FindByCode("1234")
	require.NotNil(t, stored)
	assert.True(t, stored.Released())

	missing, err := s.Release("nope", at)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestDelete(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Add(rec("a", "1234", "")))

	ok, err := s.Delete("a")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Delete("a")
	require.NoError(t, err)
	assert.False(t, ok, "second delete of same id should report not found")
}

func TestUpdateServiceTime(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Add(rec("a", "1234", "Nursery")))

	updated, err := s.UpdateServiceTime("a", "Toddlers")
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Toddlers", updated.ServiceTime)
	assert.Equal(t, "Toddlers", s.FindByCode("1234").ServiceTime)

	missing, err := s.UpdateServiceTime("nope", "Toddlers")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestClassroomStore(t *testing.T) {
	kv := storage.NewMemory()
	s := NewClassroomStore(kv)

	assert.Equal(t, DefaultClassrooms, s.List(), "defaults before anything is stored")

	require.NoError(t, s.Add("Youth"))
	assert.Contains(t, s.List(), "Youth")
	assert.Contains(t, s.List(), "Nursery", "defaults survive the first add")

	assert.ErrorIs(t, s.Add("youth"), ErrDuplicateClassroom)
	assert.Error(t, s.Add("  "))
}

func TestPrefsStore(t *testing.T) {
	kv := storage.NewMemory()
	s := NewPrefsStore(kv)

	assert.Empty(t, s.Get().Theme)

	require.NoError(t, s.Set(Prefs{Theme: "dark"}))
	assert.Equal(t, "dark", s.Get().Theme)

	require.NoError(t, kv.Set("ui_prefs", []byte("}junk")))
	assert.Empty(t, s.Get().Theme, "corrupt prefs degrade to defaults")
}

func TestUsedCodesScopedByService(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Add(rec("a", "1234", "Nursery")))
	require.NoError(t, s.Add(rec("b", "1234", "Kinder")))
	require.NoError(t, s.Add(rec("c", "9999", "Nursery")))

	used := s.UsedCodes("Nursery")
	assert.Len(t, used, 2)
	_, ok := used["1234"]
	assert.True(t, ok)

	assert.Equal(t, 2, s.CountByService("Nursery"))
	assert.Equal(t, 1, s.CountByService("Kinder"))
	assert.Equal(t, 0, s.CountByService(""))
}
