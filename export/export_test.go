package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"tmht.org/checkin/model"
	"tmht.org/checkin/utils"
)

func sampleRecords() []model.Record {
	checkIn := time.Date(2025, 3, 2, 9, 15, 0, 0, time.UTC)
	pickUp := checkIn.Add(2 * time.Hour)
	return []model.Record{
		{
			ID:          "a",
			ChildName:   `Ava "Avie" O'Brien`,
			ParentName:  "Grace, Liam",
			Phone:       "0412345678",
			ServiceTime: "Nursery",
			Notes:       "line one\nline two, with comma",
			Code:        "4071",
			QRUrl:       "data:image/png;base64,qr",
			CheckInAt:   checkIn,
			PickUpAt:    &pickUp,
		},
		{
			ID:         "b",
			ChildName:  "Noah",
			ParentName: "Sam",
			Phone:      "0498765432",
			Code:       "8055",
			CheckInAt:  checkIn,
		},
	}
}

func TestWriteCSVRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleRecords()))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, `"Child Name","Parent Name","Phone","Service Time","Code","QR URL","Check-In","Pick-Up","Notes"`))

	rows, err := utils.ParseCSV(strings.NewReader(out))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// quoted commas, quotes and newlines come back unchanged
	assert.Equal(t, `Ava "Avie" O'Brien`, rows[1][0])
	assert.Equal(t, "Grace, Liam", rows[1][1])
	assert.Equal(t, "line one\nline two, with comma", rows[1][8])
	assert.Equal(t, "4071", rows[1][4])
	assert.Equal(t, "2025-03-02T11:15:00Z", rows[1][7])

	assert.Equal(t, "", rows[2][7], "unreleased record has empty pick-up")
	assert.Equal(t, "", rows[2][3])
}

func TestEveryFieldQuoted(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleRecords()[1:]))

	for _, line := range strings.Split(buf.String(), "\n") {
		assert.True(t, strings.HasPrefix(line, `"`))
		assert.True(t, strings.HasSuffix(line, `"`))
	}
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, sampleRecords()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Check-Ins")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Child Name", rows[0][0])
	assert.Equal(t, `Ava "Avie" O'Brien`, rows[1][0])
	assert.Equal(t, "8055", rows[2][4])
}
