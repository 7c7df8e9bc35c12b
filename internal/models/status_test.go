package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusLabels(t *testing.T) {
	assert.Equal(t, "Pending", StatusPending.Label())
	assert.Equal(t, "In-progress", StatusInProgress.Label())
	assert.Equal(t, "Cancelled", StatusCancelled.Label())
	assert.Equal(t, "Done", StatusDone.Label())
	assert.Equal(t, "Delivered", StatusDelivered.Label())
	assert.Equal(t, "ZZ", Status("ZZ").Label())
}

func TestParseStatus(t *testing.T) {
	testCases := []struct {
		input    string
		expected Status
		ok       bool
	}{
		{"P", StatusPending, true},
		{"dl", StatusDelivered, true},
		{"Pending", StatusPending, true},
		{"delivered", StatusDelivered, true},
		{"In-progress", StatusInProgress, true},
		{"bogus", "", false},
		{"", "", false},
	}

	for _, tt := range testCases {
		status, ok := ParseStatus(tt.input)
		assert.Equal(t, tt.ok, ok, "input %q", tt.input)
		assert.Equal(t, tt.expected, status, "input %q", tt.input)
	}
}

func TestParseStatusList(t *testing.T) {
	assert.Nil(t, ParseStatusList(""))
	assert.Equal(t, []string{"I", "P"}, ParseStatusList("I,P"))
	assert.Equal(t, []string{"DL"}, ParseStatusList("dl"))
	// Unknown codes are kept, they just match nothing downstream
	assert.Equal(t, []string{"X", "P"}, ParseStatusList("X,P"))
	assert.Equal(t, []string{"P"}, ParseStatusList(" P , "))
}

func TestSizeValid(t *testing.T) {
	assert.True(t, SizeSmall.Valid())
	assert.True(t, SizeMedium.Valid())
	assert.True(t, SizeLarge.Valid())
	assert.False(t, Size("XL").Valid())
	assert.False(t, Size("").Valid())
}
