package vsa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatValid(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		valid  bool
	}{
		{name: "standard", format: FormatStandard, valid: true},
		{name: "type4len0", format: FormatType4Len0, valid: true},
		{name: "zero value defaults to standard", format: Format(""), valid: true},
		{name: "unknown", format: Format("wimax"), valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.format.Valid())
		})
	}
}

func TestFormatOctets(t *testing.T) {
	tests := []struct {
		name         string
		format       Format
		typeOctets   int
		lengthOctets int
		headerOctets int
		maxTypeCode  uint32
		maxValueLen  int
	}{
		{
			name:         "standard",
			format:       FormatStandard,
			typeOctets:   1,
			lengthOctets: 1,
			headerOctets: 2,
			maxTypeCode:  0xFF,
			maxValueLen:  253,
		},
		{
			name:         "type4len0",
			format:       FormatType4Len0,
			typeOctets:   4,
			lengthOctets: 0,
			headerOctets: 4,
			maxTypeCode:  0xFFFFFFFF,
			maxValueLen:  -1,
		},
		{
			name:         "zero value",
			format:       Format(""),
			typeOctets:   1,
			lengthOctets: 1,
			headerOctets: 2,
			maxTypeCode:  0xFF,
			maxValueLen:  253,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.typeOctets, tt.format.TypeOctets())
			assert.Equal(t, tt.lengthOctets, tt.format.LengthOctets())
			assert.Equal(t, tt.headerOctets, tt.format.HeaderOctets())
			assert.Equal(t, tt.maxTypeCode, tt.format.MaxTypeCode())
			assert.Equal(t, tt.maxValueLen, tt.format.MaxValueLen())
		})
	}
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "standard", FormatStandard.String())
	assert.Equal(t, "type4len0", FormatType4Len0.String())
	assert.Equal(t, "standard", Format("").String())
}
