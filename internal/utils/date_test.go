package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "05.02.2024", FormatDate(time.Date(2024, 2, 5, 10, 0, 0, 0, time.UTC)))
}
