package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "ten bare digits get country code", raw: "3001112233", want: "+573001112233"},
		{name: "canonical form is identity", raw: "+573001112233", want: "+573001112233"},
		{name: "surrounding whitespace is trimmed", raw: "  3001112233 ", want: "+573001112233"},
		{name: "nine digits left unchanged", raw: "300111223", want: "300111223"},
		{name: "eleven digits left unchanged", raw: "30011122334", want: "30011122334"},
		{name: "letters left unchanged", raw: "30011122ab", want: "30011122ab"},
		{name: "other country code left unchanged", raw: "+13001112233", want: "+13001112233"},
		{name: "empty stays empty", raw: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.raw))
		})
	}
}

func TestValidPhone(t *testing.T) {
	assert.True(t, ValidPhone("+573001112233"))
	assert.False(t, ValidPhone("3001112233"))
	assert.False(t, ValidPhone("+57300111223"))
	assert.False(t, ValidPhone("+5730011122334"))
	assert.False(t, ValidPhone("+583001112233"))
	assert.False(t, ValidPhone(""))
}

func TestNormalizeThenValidate(t *testing.T) {
	// Every ten-digit local number becomes canonical and valid.
	for _, raw := range []string{"3001112233", "3109998877", "0000000000"} {
		norm := NormalizePhone(raw)
		assert.True(t, ValidPhone(norm), "normalized %q should be valid", raw)
	}
}
