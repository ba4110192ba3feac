package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"golang.org/x/text/language"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	saved := Language()
	defer SetLanguage(saved)

	SetLanguage(language.AmericanEnglish)
	assert.Equal(language.AmericanEnglish, Language())

	assert.Equal("symbol unknown", From("symbol unknown"))
	assert.Equal("line 7 missing", From("line %d %v", 7, "missing"))
	assert.Equal("'R9' is not a register", From("'%v' is not a register", "R9"))
}
