package dbg

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
)

type thing struct{ n int }

func TestName(t *testing.T) {
	defer Forget()

	a, b := &thing{1}, &thing{1}
	nameA := Name(a)
	assert.NotEmpty(t, nameA)
	assert.True(t, unicode.IsUpper([]rune(nameA)[0]))
	assert.Equal(t, nameA, Name(a), "names are stable for the same pointer")
	assert.NotSame(t, a, b)
	// Equal values at different addresses are different keys
	_ = Name(b)
	assert.Len(t, memo, 2)
}

func TestName_Nil(t *testing.T) {
	assert.Equal(t, "Ø", Name(nil))
	var p *thing
	assert.Equal(t, "Ø", Name(p))
}

func TestForget(t *testing.T) {
	Name(&thing{})
	Forget()
	assert.Empty(t, memo)
}
