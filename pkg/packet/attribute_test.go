package packet

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalvas/govsa/pkg/vsa"
)

func TestNewAttribute(t *testing.T) {
	attr, err := NewAttribute(1, []byte("alice"))
	require.NoError(t, err)

	assert.Equal(t, uint8(1), attr.Type)
	assert.Equal(t, uint8(7), attr.Length)
	assert.Equal(t, []byte("alice"), attr.Value)
}

func TestNewAttributeEmptyValue(t *testing.T) {
	attr, err := NewAttribute(24, nil)
	require.NoError(t, err)

	assert.Equal(t, uint8(2), attr.Length)
	assert.Empty(t, attr.Value)
}

func TestNewAttributeCopiesValue(t *testing.T) {
	value := []byte{0x01, 0x02}

	attr, err := NewAttribute(25, value)
	require.NoError(t, err)

	value[0] = 0xFF
	assert.Equal(t, []byte{0x01, 0x02}, attr.Value)
}

func TestNewAttributeValueTooLarge(t *testing.T) {
	_, err := NewAttribute(1, make([]byte, 254))
	require.Error(t, err)

	var tooLarge *vsa.ValueTooLargeError
	require.ErrorAs(t, err, &tooLarge)
	assert.Equal(t, 254, tooLarge.Len)
	assert.Equal(t, MaxAttributeValueLength, tooLarge.Max)
}

func TestNewAttributeMaxValue(t *testing.T) {
	attr, err := NewAttribute(1, make([]byte, MaxAttributeValueLength))
	require.NoError(t, err)

	assert.Equal(t, uint8(255), attr.Length)
}

func TestTypedAttributeConstructors(t *testing.T) {
	t.Run("string", func(t *testing.T) {
		attr, err := NewStringAttribute(1, "bob")
		require.NoError(t, err)
		assert.Equal(t, []byte("bob"), attr.Value)
	})

	t.Run("integer", func(t *testing.T) {
		attr, err := NewIntegerAttribute(5, 1812)
		require.NoError(t, err)
		assert.Equal(t, []byte{0x00, 0x00, 0x07, 0x14}, attr.Value)
	})

	t.Run("address", func(t *testing.T) {
		attr, err := NewAddressAttribute(4, net.ParseIP("192.0.2.1"))
		require.NoError(t, err)
		assert.Equal(t, []byte{192, 0, 2, 1}, attr.Value)
	})

	t.Run("address rejects IPv6", func(t *testing.T) {
		_, err := NewAddressAttribute(4, net.ParseIP("2001:db8::1"))

		var familyErr *vsa.InvalidAddressFamilyError
		require.ErrorAs(t, err, &familyErr)
	})

	t.Run("address rejects nil", func(t *testing.T) {
		_, err := NewAddressAttribute(4, nil)

		var nullErr *vsa.NullValueError
		require.ErrorAs(t, err, &nullErr)
	})

	t.Run("date", func(t *testing.T) {
		attr, err := NewDateAttribute(55, time.Unix(0x5F000000, 0))
		require.NoError(t, err)
		assert.Equal(t, []byte{0x5F, 0x00, 0x00, 0x00}, attr.Value)
	})
}

func TestNewTaggedAttribute(t *testing.T) {
	// Tunnel-Type = L2TP in tag group 1
	attr, err := NewTaggedAttribute(64, 1, []byte{0x00, 0x00, 0x03})
	require.NoError(t, err)

	assert.Equal(t, uint8(64), attr.Type)
	assert.Equal(t, []byte{0x01, 0x00, 0x00, 0x03}, attr.Value)
	assert.Equal(t, uint8(6), attr.Length)
}

func TestNewTaggedAttributeZeroTag(t *testing.T) {
	// The tag octet of a tunnel attribute is always present; zero means
	// the attribute belongs to no group.
	attr, err := NewTaggedAttribute(81, 0, []byte("vlan10"))
	require.NoError(t, err)

	assert.Equal(t, byte(0x00), attr.Value[0])
	assert.Equal(t, []byte("vlan10"), attr.Value[1:])
}

func TestNewTaggedAttributeTagTooLarge(t *testing.T) {
	_, err := NewTaggedAttribute(64, 32, []byte{0x00, 0x00, 0x03})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestAttributeString(t *testing.T) {
	attr, err := NewAttribute(1, []byte{0xAB})
	require.NoError(t, err)

	assert.Equal(t, "Type=1, Length=3, Value=0xab", attr.String())
}
