package govsa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"layeh.com/radius"
	"layeh.com/radius/rfc2865"

	"github.com/vitalvas/govsa/pkg/packet"
	"github.com/vitalvas/govsa/pkg/vsa"
)

func TestNewDefault(t *testing.T) {
	b, err := NewDefault()
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.NotNil(t, b.Dictionary())
}

func TestBuilderAttributeVendorByName(t *testing.T) {
	b, err := NewDefault()
	require.NoError(t, err)

	attr, err := b.Attribute("MS-MPPE-Encryption-Policy", "Encryption-Required")
	require.NoError(t, err)

	assert.Equal(t, uint8(packet.TypeVendorSpecific), attr.Type)
	assert.Equal(t, uint8(12), attr.Length)
	assert.Equal(t, []byte{
		0x00, 0x00, 0x01, 0x37,
		0x07, 0x06, 0x00, 0x00, 0x00, 0x02,
	}, attr.Value)
}

func TestBuilderAttributeEnumEquivalence(t *testing.T) {
	b, err := NewDefault()
	require.NoError(t, err)

	byName, err := b.Attribute("MS-MPPE-Encryption-Policy", "Encryption-Required")
	require.NoError(t, err)

	byValue, err := b.Attribute("MS-MPPE-Encryption-Policy", uint32(2))
	require.NoError(t, err)

	assert.Equal(t, byName.Value, byValue.Value)
}

func TestBuilderAttributeType4Len0(t *testing.T) {
	b, err := NewDefault()
	require.NoError(t, err)

	attr, err := b.Attribute("USR-Syslog-Tap", "Raw")
	require.NoError(t, err)

	assert.Equal(t, uint8(packet.TypeVendorSpecific), attr.Type)
	assert.Equal(t, uint8(14), attr.Length)
	assert.Equal(t, []byte{
		0x00, 0x00, 0x01, 0xAD,
		0x00, 0x00, 0x90, 0x13,
		0x00, 0x00, 0x00, 0x01,
	}, attr.Value)
}

func TestBuilderAttributeStandard(t *testing.T) {
	b, err := NewDefault()
	require.NoError(t, err)

	tests := []struct {
		name     string
		attrName string
		value    any
		wantType uint8
		want     []byte
	}{
		{
			name:     "string",
			attrName: "User-Name",
			value:    "alice",
			wantType: 1,
			want:     []byte("alice"),
		},
		{
			name:     "integer",
			attrName: "NAS-Port",
			value:    uint32(2048),
			wantType: 5,
			want:     []byte{0x00, 0x00, 0x08, 0x00},
		},
		{
			name:     "enumerated",
			attrName: "Service-Type",
			value:    "Framed-User",
			wantType: 6,
			want:     []byte{0x00, 0x00, 0x00, 0x02},
		},
		{
			name:     "address",
			attrName: "Framed-IP-Address",
			value:    "192.0.2.7",
			wantType: 8,
			want:     []byte{0xC0, 0x00, 0x02, 0x07},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attr, err := b.Attribute(tt.attrName, tt.value)
			require.NoError(t, err)

			assert.Equal(t, tt.wantType, attr.Type)
			assert.Equal(t, tt.want, attr.Value)
			assert.Equal(t, uint8(len(tt.want)+2), attr.Length)
		})
	}
}

func TestBuilderTagSyntax(t *testing.T) {
	b, err := NewDefault()
	require.NoError(t, err)

	t.Run("tagged integer", func(t *testing.T) {
		attr, err := b.Attribute("Tunnel-Type:1", "L2TP")
		require.NoError(t, err)

		assert.Equal(t, uint8(64), attr.Type)
		assert.Equal(t, uint8(6), attr.Length)
		assert.Equal(t, []byte{0x01, 0x00, 0x00, 0x03}, attr.Value)
	})

	t.Run("tagged string", func(t *testing.T) {
		attr, err := b.Attribute("Tunnel-Private-Group-Id:5", "vlan42")
		require.NoError(t, err)

		assert.Equal(t, uint8(81), attr.Type)
		assert.Equal(t, uint8(9), attr.Length)
		assert.Equal(t, []byte{0x05, 'v', 'l', 'a', 'n', '4', '2'}, attr.Value)
	})
}

func TestBuilderTagErrors(t *testing.T) {
	b, err := NewDefault()
	require.NoError(t, err)

	tests := []struct {
		name     string
		attrName string
		wantErr  string
	}{
		{"tag too large", "Tunnel-Type:32", "invalid tag"},
		{"tag not a number", "Tunnel-Type:x", "invalid tag"},
		{"empty tag", "Tunnel-Type:", "invalid tag"},
		{"attribute without tag", "User-Name:1", "does not take a tag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := b.Attribute(tt.attrName, "x")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBuilderTaggedIntegerOverflow(t *testing.T) {
	b, err := NewDefault()
	require.NoError(t, err)

	_, err = b.Attribute("Tunnel-Type:1", uint32(0x01000000))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "3-octet tagged integer")
}

func TestBuilderRefusesEncrypted(t *testing.T) {
	b, err := NewDefault()
	require.NoError(t, err)

	_, err = b.Attribute("User-Password", "secret")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user-password encryption")

	_, err = b.Attribute("Tunnel-Password:1", "secret")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tunnel-password encryption")
}

func TestBuilderUnknownAttribute(t *testing.T) {
	b, err := NewDefault()
	require.NoError(t, err)

	_, err = b.Attribute("No-Such-Attribute", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown attribute")
}

func TestBuilderNilValue(t *testing.T) {
	b, err := NewDefault()
	require.NoError(t, err)

	_, err = b.Attribute("User-Name", nil)
	require.Error(t, err)

	var nullErr *vsa.NullValueError
	assert.ErrorAs(t, err, &nullErr)
}

func TestBuilderVendorSpecific(t *testing.T) {
	b, err := NewDefault()
	require.NoError(t, err)

	attr, err := b.VendorSpecific("Mikrotik-Rate-Limit", "10M/10M")
	require.NoError(t, err)

	assert.Equal(t, uint8(packet.TypeVendorSpecific), attr.Type)
	assert.Equal(t, []byte{0x00, 0x00, 0x3A, 0x8C}, attr.Value[:4])
	assert.Equal(t, []byte{0x08, 0x09}, attr.Value[4:6])
	assert.Equal(t, []byte("10M/10M"), attr.Value[6:])
}

func TestBuilderVendorSpecificRejectsStandard(t *testing.T) {
	b, err := NewDefault()
	require.NoError(t, err)

	_, err = b.VendorSpecific("User-Name", "alice")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not vendor specific")

	_, err = b.VendorAttribute("User-Name", "alice")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not vendor specific")
}

func TestBuilderVendorAttributeGrouping(t *testing.T) {
	b, err := NewDefault()
	require.NoError(t, err)

	rate, err := b.VendorAttribute("Mikrotik-Rate-Limit", "10M/10M")
	require.NoError(t, err)

	mark, err := b.VendorAttribute("Mikrotik-Mark-Id", "gold")
	require.NoError(t, err)

	attr, err := packet.NewVendorSpecific(14988, rate, mark)
	require.NoError(t, err)

	require.Equal(t, uint8(21), attr.Length)
	assert.Equal(t, []byte{0x00, 0x00, 0x3A, 0x8C}, attr.Value[:4])
	assert.Equal(t, []byte{0x08, 0x09}, attr.Value[4:6])
	assert.Equal(t, []byte("10M/10M"), attr.Value[6:13])
	assert.Equal(t, []byte{0x0B, 0x06}, attr.Value[13:15])
	assert.Equal(t, []byte("gold"), attr.Value[15:])
}

func TestBuilderLayehRoundTrip(t *testing.T) {
	b, err := NewDefault()
	require.NoError(t, err)

	policy, err := b.Attribute("MS-MPPE-Encryption-Policy", "Encryption-Required")
	require.NoError(t, err)

	rate, err := b.Attribute("Mikrotik-Rate-Limit", "10M/10M")
	require.NoError(t, err)

	req := radius.New(radius.CodeAccessRequest, []byte("testing123"))
	require.NoError(t, rfc2865.UserName_AddString(req, "alice@example.com"))
	req.Add(radius.Type(policy.Type), radius.Attribute(policy.Value))
	req.Add(radius.Type(rate.Type), radius.Attribute(rate.Value))

	wire, err := req.Encode()
	require.NoError(t, err)

	parsed, err := radius.Parse(wire, []byte("testing123"))
	require.NoError(t, err)

	assert.Equal(t, "alice@example.com", rfc2865.UserName_GetString(parsed))

	var payloads [][]byte
	for _, avp := range parsed.Attributes {
		if avp.Type == radius.Type(packet.TypeVendorSpecific) {
			payloads = append(payloads, []byte(avp.Attribute))
		}
	}

	require.Len(t, payloads, 2)
	assert.Equal(t, policy.Value, payloads[0])
	assert.Equal(t, rate.Value, payloads[1])
}

func BenchmarkBuilderAttribute(b *testing.B) {
	builder, err := NewDefault()
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := builder.Attribute("MS-MPPE-Encryption-Policy", "Encryption-Required"); err != nil {
			b.Fatal(err)
		}
	}
}
