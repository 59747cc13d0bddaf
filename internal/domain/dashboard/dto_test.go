package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentage(t *testing.T) {
	assert.Equal(t, 0.0, Percentage(0, 0))
	assert.Equal(t, 0.0, Percentage(5, 0))
	assert.Equal(t, 0.0, Percentage(0, 31))
	assert.Equal(t, 100.0, Percentage(30, 30))
	assert.Equal(t, 64.5, Percentage(20, 31))
	assert.Equal(t, 33.3, Percentage(1, 3))
	assert.Equal(t, 66.7, Percentage(2, 3))
}
