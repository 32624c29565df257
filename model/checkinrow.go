package model

import (
	"strconv"
	"time"
)

// CheckInRow is the remote representation of a Record. The hosted table
// stores the pickup code as an integer and uses snake_case column names;
// the repository converts at the boundary in both directions.
type CheckInRow struct {
	ID          string     `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()"`
	ChildName   string     `gorm:"column:child_name;not null"`
	ParentName  string     `gorm:"column:parent_name;not null"`
	PhoneNumber string     `gorm:"column:phone_number;not null"`
	ServiceTime *string    `gorm:"column:service_time"`
	Notes       *string    `gorm:"column:notes"`
	PickupCode  int64      `gorm:"column:pickup_code;not null"`
	QRCodeURL   string     `gorm:"column:qr_code_url"`
	CheckInTime time.Time  `gorm:"column:check_in_time;not null;default:CURRENT_TIMESTAMP"`
	PickUpTime  *time.Time `gorm:"column:pick_up_time"`
}

func (CheckInRow) TableName() string {
	return "check_ins"
}

// ToRecord converts a remote row to the local representation. Codes are
// 4 digits so the int round-trip is always exact.
func (row CheckInRow) ToRecord() Record {
	rec := Record{
		ID:         row.ID,
		ChildName:  row.ChildName,
		ParentName: row.ParentName,
		Phone:      row.PhoneNumber,
		Code:       strconv.FormatInt(row.PickupCode, 10),
		QRUrl:      row.QRCodeURL,
		CheckInAt:  row.CheckInTime,
		PickUpAt:   row.PickUpTime,
	}
	if row.ServiceTime != nil {
		rec.ServiceTime = *row.ServiceTime
	}
	if row.Notes != nil {
		rec.Notes = *row.Notes
	}
	return rec
}

// RowFromInput builds the remote row for a new check-in. Empty optional
// fields map to NULL, matching what the hosted table expects.
func RowFromInput(in RecordInput) CheckInRow {
	code, _ := strconv.ParseInt(in.Code, 10, 64)
	return CheckInRow{
		ChildName:   in.ChildName,
		ParentName:  in.ParentName,
		PhoneNumber: in.Phone,
		ServiceTime: nullable(in.ServiceTime),
		Notes:       nullable(in.Notes),
		PickupCode:  code,
		QRCodeURL:   in.QRUrl,
	}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
