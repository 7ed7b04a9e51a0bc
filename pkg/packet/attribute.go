package packet

import (
	"fmt"
	"net"
	"time"

	"github.com/vitalvas/govsa/pkg/vsa"
)

// Attribute represents a single attribute in the top-level attribute list
// of a RADIUS packet
type Attribute struct {
	Type   uint8
	Length uint8
	Value  []byte
}

// NewAttribute creates an attribute from raw value octets. The value is
// copied and must leave room for the two-octet header.
func NewAttribute(attrType uint8, value []byte) (*Attribute, error) {
	if len(value) > MaxAttributeValueLength {
		return nil, &vsa.ValueTooLargeError{Len: len(value), Max: MaxAttributeValueLength}
	}

	buf := make([]byte, len(value))
	copy(buf, value)

	return &Attribute{
		Type:   attrType,
		Length: uint8(len(buf) + AttributeHeaderLength),
		Value:  buf,
	}, nil
}

// NewStringAttribute creates a text attribute
func NewStringAttribute(attrType uint8, value string) (*Attribute, error) {
	return NewAttribute(attrType, vsa.EncodeString(value))
}

// NewIntegerAttribute creates a four-octet big-endian integer attribute
func NewIntegerAttribute(attrType uint8, value uint32) (*Attribute, error) {
	return NewAttribute(attrType, vsa.EncodeInteger(value))
}

// NewAddressAttribute creates a four-octet IPv4 address attribute
func NewAddressAttribute(attrType uint8, ip net.IP) (*Attribute, error) {
	value, err := vsa.EncodeIPAddr(ip)
	if err != nil {
		return nil, err
	}
	return NewAttribute(attrType, value)
}

// NewDateAttribute creates a Unix timestamp attribute
func NewDateAttribute(attrType uint8, t time.Time) (*Attribute, error) {
	return NewAttribute(attrType, vsa.EncodeDate(t))
}

// NewTaggedAttribute creates an attribute whose value is prefixed with a
// group tag as in RFC 2868. Unlike vendor sub-attributes, the tag octet of
// a tunnel attribute is always present, so tag zero is allowed here and
// means the attribute belongs to no group.
func NewTaggedAttribute(attrType uint8, tag uint8, value []byte) (*Attribute, error) {
	if tag > vsa.MaxTag {
		return nil, fmt.Errorf("tag %d out of range (0-%d)", tag, vsa.MaxTag)
	}

	tagged := make([]byte, len(value)+1)
	tagged[0] = tag
	copy(tagged[1:], value)

	return NewAttribute(attrType, tagged)
}

// String returns a string representation of the attribute
func (a *Attribute) String() string {
	return fmt.Sprintf("Type=%d, Length=%d, Value=0x%x", a.Type, a.Length, a.Value)
}
