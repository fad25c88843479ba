package champion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Wukong", DisplayName("MonkeyKing"))
	assert.Equal(t, "Kog'Maw", DisplayName("KogMaw"))
	assert.Equal(t, "Dr. Mundo", DisplayName("DrMundo"))

	// No override: the API identifier passes through untouched.
	assert.Equal(t, "Ahri", DisplayName("Ahri"))
	assert.Equal(t, "", DisplayName(""))
}
