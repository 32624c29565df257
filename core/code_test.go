package core

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tmht.org/checkin/infrastructure/localstore"
	"tmht.org/checkin/infrastructure/storage"
	"tmht.org/checkin/model"
)

func TestGenerateShape(t *testing.T) {
	local := localstore.New(storage.NewMemory())
	gen := NewCodeGenerator(local)

	for i := 0; i < 100; i++ {
		code, err := gen.Generate("Nursery")
		require.NoError(t, err)
		assert.Len(t, code, 4)
		for _, c := range code {
			assert.True(t, c >= '0' && c <= '9', "code %q must be all digits", code)
		}
		assert.NotEqual(t, byte('0'), code[0], "no leading zero")
	}
}

func TestGenerateAvoidsUsedCodesInScope(t *testing.T) {
	local := localstore.New(storage.NewMemory())

	// occupy all but one code in the scope
	var list []model.Record
	for n := codeMin; n <= codeMax; n++ {
		if n == 4071 {
			continue
		}
		list = append(list, model.Record{
			ID:          fmt.Sprintf("id-%d", n),
			Code:        fmt.Sprintf("%d", n),
			ServiceTime: "Nursery",
			CheckInAt:   time.Now(),
		})
	}
	require.NoError(t, local.SetRecords(list))

	gen := NewCodeGenerator(local)
	code, err := gen.Generate("Nursery")
	require.NoError(t, err)
	assert.Equal(t, "4071", code)

	// other scopes are unaffected by Nursery's codes
	_, err = gen.Generate("Kinder")
	require.NoError(t, err)
}

func TestGenerateExhaustedScope(t *testing.T) {
	local := localstore.New(storage.NewMemory())

	var list []model.Record
	for n := codeMin; n <= codeMax; n++ {
		list = append(list, model.Record{
			ID:          fmt.Sprintf("id-%d", n),
			Code:        fmt.Sprintf("%d", n),
			ServiceTime: "Nursery",
			CheckInAt:   time.Now(),
		})
	}
	require.NoError(t, local.SetRecords(list))

	gen := NewCodeGenerator(local)
	_, err := gen.Generate("Nursery")
	assert.ErrorIs(t, err, ErrCodeSpaceExhausted)
}
