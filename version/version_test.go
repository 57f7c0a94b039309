package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersion(t *testing.T) {
	// In a test binary there is no release version; the fallback applies.
	assert.NotEmpty(t, Version())
}

func TestModulePath(t *testing.T) {
	assert.Equal(t, "github.com/lex00/tagcell-go", ModulePath())
}
