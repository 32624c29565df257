package core

import (
	"fmt"
	"math/rand"

	"tmht.org/checkin/infrastructure/localstore"
)

// Pickup codes are 4 digits with no leading zero, so 1000..9999.
const (
	codeMin   = 1000
	codeMax   = 9999
	codeSpace = codeMax - codeMin + 1
)

// CodeGenerator issues pickup codes unique among the currently known
// records of a service scope. The check reads the local store, so it is
// best effort: codes created on another device against the remote table
// are not consulted.
type CodeGenerator struct {
	local *localstore.Store
}

func NewCodeGenerator(local *localstore.Store) *CodeGenerator {
	return &CodeGenerator{local: local}
}

// Generate draws random codes until one is free within the scope. It does
// not persist the code; the caller does that by creating the record.
func (g *CodeGenerator) Generate(scope string) (string, error) {
	used := g.local.UsedCodes(scope)
	if len(used) >= codeSpace {
		return "", fmt.Errorf("%w: %q", ErrCodeSpaceExhausted, scope)
	}
	for {
		code := fmt.Sprintf("%d", codeMin+rand.Intn(codeSpace))
		if _, taken := used[code]; !taken {
			return code, nil
		}
	}
}
