package core

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"tmht.org/checkin/infrastructure/localstore"
	"tmht.org/checkin/model"
)

// RemoteStore is the hosted check-in table. Lookup methods return nil (not
// an error) on a miss; errors mean the request itself failed.
type RemoteStore interface {
	Insert(ctx context.Context, in model.RecordInput) (*model.Record, error)
	FindByCode(ctx context.Context, code string) (*model.Record, error)
	Release(ctx context.Context, id string, at time.Time) (*model.Record, error)
	UpdateServiceTime(ctx context.Context, id, serviceTime string) (*model.Record, error)
	Delete(ctx context.Context, id string) (bool, error)
	ListAll(ctx context.Context) ([]model.Record, error)
	Subscribe(onChange func()) (*Subscription, error)
}

// Repository is the single point of truth for record lifecycle. It decides
// per operation whether the remote table, the local store, or both are
// consulted, and reconciles the two views.
type Repository struct {
	local  *localstore.Store
	remote RemoteStore // nil when not configured
}

func NewRepository(local *localstore.Store, remote RemoteStore) *Repository {
	return &Repository{local: local, remote: remote}
}

func (r *Repository) remoteEnabled() bool {
	return r.remote != nil
}

// Create inserts the record remotely when a remote store is configured and
// mirrors it into the local store; otherwise it is created locally only.
// A remote insert failure is surfaced, never downgraded to local-only.
func (r *Repository) Create(ctx context.Context, in model.RecordInput) (*model.Record, error) {
	if !r.remoteEnabled() {
		rec := model.Record{
			ID:          uuid.NewString(),
			ChildName:   in.ChildName,
			ParentName:  in.ParentName,
			Phone:       in.Phone,
			ServiceTime: in.ServiceTime,
			Notes:       in.Notes,
			Code:        in.Code,
			QRUrl:       in.QRUrl,
			CheckInAt:   time.Now().UTC(),
		}
		if err := r.local.Add(rec); err != nil {
			return nil, err
		}
		return &rec, nil
	}

	rec, err := r.remote.Insert(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("%w: insert: %v", ErrPersistence, err)
	}
	if err := r.local.Add(*rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// FindByCode queries the remote table first, then falls back to the local
// store on a remote miss, so a record created during a remote outage stays
// discoverable.
func (r *Repository) FindByCode(ctx context.Context, code string) (*model.Record, error) {
	if !r.remoteEnabled() {
		return r.local.FindByCode(code), nil
	}
	rec, err := r.remote.FindByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: query: %v", ErrPersistence, err)
	}
	if rec != nil {
		return rec, nil
	}
	return r.local.FindByCode(code), nil
}

// ReleaseByID stamps pickUpAt with the current time. When the remote update
// matches no row the local copy is updated instead; that is the
// reconciliation rule for records that only ever existed locally, not an
// error path. Returns nil when neither store knows the id.
func (r *Repository) ReleaseByID(ctx context.Context, id string) (*model.Record, error) {
	now := time.Now().UTC()
	if !r.remoteEnabled() {
		return r.local.Release(id, now)
	}
	rec, err := r.remote.Release(ctx, id, now)
	if err != nil {
		return nil, fmt.Errorf("%w: update: %v", ErrPersistence, err)
	}
	if rec != nil {
		// keep the mirror in step when it holds the same record; the
		// remote release already succeeded, so a mirror failure is not
		// allowed to undo it
		_, _ = r.local.Release(id, *rec.PickUpAt)
		return rec, nil
	}
	return r.local.Release(id, now)
}

// CorrectClassroom rewrites a record's service grouping, the one field
// correction the lifecycle allows besides release. The remote-miss
// fallback mirrors ReleaseByID.
func (r *Repository) CorrectClassroom(ctx context.Context, id, classroom string) (*model.Record, error) {
	if !r.remoteEnabled() {
		return r.local.UpdateServiceTime(id, classroom)
	}
	rec, err := r.remote.UpdateServiceTime(ctx, id, classroom)
	if err != nil {
		return nil, fmt.Errorf("%w: update: %v", ErrPersistence, err)
	}
	if rec != nil {
		_, _ = r.local.UpdateServiceTime(id, classroom)
		return rec, nil
	}
	return r.local.UpdateServiceTime(id, classroom)
}

// ListAll merges the two stores when remote is configured: remote rows win
// by code, local-only codes are appended, and the result is ordered most
// recent check-in first. Without a remote the local list is returned as
// stored.
func (r *Repository) ListAll(ctx context.Context) ([]model.Record, error) {
	if !r.remoteEnabled() {
		return r.local.Records(), nil
	}
	remote, err := r.remote.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list: %v", ErrPersistence, err)
	}

	seen := make(map[string]struct{}, len(remote))
	for _, rec := range remote {
		seen[rec.Code] = struct{}{}
	}
	merged := remote
	for _, rec := range r.local.Records() {
		if _, ok := seen[rec.Code]; !ok {
			merged = append(merged, rec)
		}
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CheckInAt.After(merged[j].CheckInAt)
	})
	return merged, nil
}

// Delete removes the record from every store that holds it and reports
// whether any did. A failed remote delete request reports false.
func (r *Repository) Delete(ctx context.Context, id string) bool {
	removed := false
	if r.remoteEnabled() {
		ok, err := r.remote.Delete(ctx, id)
		if err != nil {
			return false
		}
		removed = ok
	}
	if ok, err := r.local.Delete(id); err == nil && ok {
		removed = true
	}
	return removed
}

// Subscribe opens the remote change feed and invokes onChange on every
// insert, update or delete of a check-in row. Consumers re-run ListAll on
// notification rather than inspecting a payload. Without a remote the
// returned subscription is a no-op.
func (r *Repository) Subscribe(onChange func()) (*Subscription, error) {
	if !r.remoteEnabled() {
		return NewSubscription(nil), nil
	}
	return r.remote.Subscribe(onChange)
}
