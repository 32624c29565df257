package model

import "time"

// Record is one child check-in event, from arrival until release.
// PickUpAt is the sole state indicator: nil means the child is still
// checked in, non-nil means released.
type Record struct {
	ID          string     `json:"id"`
	ChildName   string     `json:"childName"`
	ParentName  string     `json:"parentName"`
	Phone       string     `json:"phone"`
	ServiceTime string     `json:"serviceTime,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	Code        string     `json:"code"`
	QRUrl       string     `json:"qrUrl"`
	CheckInAt   time.Time  `json:"checkInAt"`
	PickUpAt    *time.Time `json:"pickUpAt,omitempty"`
}

// Released reports whether the record has been picked up.
func (r Record) Released() bool {
	return r.PickUpAt != nil
}

// RecordInput carries the fields supplied at registration plus the
// code and QR link the caller generated for the new record.
type RecordInput struct {
	ChildName   string
	ParentName  string
	Phone       string
	ServiceTime string
	Notes       string
	Code        string
	QRUrl       string
}

// ReleasedChild is a denormalized snapshot taken at release time for the
// released-children ledger. It has its own lifecycle: inserted at release,
// never updated, evicted oldest-first past the ledger cap.
type ReleasedChild struct {
	ID         string    `json:"id"`
	ChildName  string    `json:"childName"`
	ParentName string    `json:"parentName"`
	Phone      string    `json:"phone"`
	Code       string    `json:"code"`
	Classroom  string    `json:"classroom,omitempty"`
	CheckInAt  time.Time `json:"checkInAt"`
	ReleasedAt time.Time `json:"releasedAt"`
}
