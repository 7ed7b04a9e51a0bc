package vsa

import (
	"encoding/binary"
	"fmt"
	"net"
)

// VendorAttribute is a single vendor sub-attribute ready for wire encoding.
// Constructors validate the value and copy it, so mutating the source buffer
// after construction does not affect the encoded output.
type VendorAttribute struct {
	VendorID uint32
	Format   Format
	Type     uint32
	Value    []byte

	// Tag groups tunnel attributes (RFC 2868). Zero means untagged; a
	// non-zero tag is carried as the first value octet on the wire.
	Tag uint8
}

// New builds a vendor sub-attribute from raw value octets.
func New(vendorID uint32, format Format, typeCode uint32, value []byte) (*VendorAttribute, error) {
	buf, err := EncodeOctets(value)
	if err != nil {
		return nil, err
	}
	return build(vendorID, format, typeCode, 0, buf)
}

// NewString builds a sub-attribute carrying the raw bytes of s.
func NewString(vendorID uint32, format Format, typeCode uint32, s string) (*VendorAttribute, error) {
	return build(vendorID, format, typeCode, 0, EncodeString(s))
}

// NewInteger builds a sub-attribute carrying a 4-octet big-endian integer.
func NewInteger(vendorID uint32, format Format, typeCode uint32, v uint32) (*VendorAttribute, error) {
	return build(vendorID, format, typeCode, 0, EncodeInteger(v))
}

// NewSignedInteger builds a sub-attribute carrying a signed 32-bit integer
// in two's complement form.
func NewSignedInteger(vendorID uint32, format Format, typeCode uint32, v int32) (*VendorAttribute, error) {
	return build(vendorID, format, typeCode, 0, EncodeSignedInteger(v))
}

// NewIPAddr builds a sub-attribute carrying a 4-octet IPv4 address.
func NewIPAddr(vendorID uint32, format Format, typeCode uint32, ip net.IP) (*VendorAttribute, error) {
	buf, err := EncodeIPAddr(ip)
	if err != nil {
		return nil, err
	}
	return build(vendorID, format, typeCode, 0, buf)
}

// NewTagged builds a tagged sub-attribute. Tags run 1 through MaxTag.
func NewTagged(vendorID uint32, format Format, typeCode uint32, tag uint8, value []byte) (*VendorAttribute, error) {
	if tag == 0 || tag > MaxTag {
		return nil, fmt.Errorf("tag %d out of range (1-%d)", tag, MaxTag)
	}

	buf, err := EncodeOctets(value)
	if err != nil {
		return nil, err
	}
	return build(vendorID, format, typeCode, tag, buf)
}

// build assumes ownership of value; callers pass a fresh buffer.
func build(vendorID uint32, format Format, typeCode uint32, tag uint8, value []byte) (*VendorAttribute, error) {
	va := &VendorAttribute{
		VendorID: vendorID,
		Format:   format,
		Type:     typeCode,
		Value:    value,
		Tag:      tag,
	}

	if err := va.validate(); err != nil {
		return nil, err
	}
	return va, nil
}

// Encode serializes one sub-attribute from raw value octets in a single
// call. It is shorthand for New followed by VendorAttribute.Encode.
func Encode(vendorID uint32, format Format, typeCode uint32, value []byte) ([]byte, error) {
	va, err := New(vendorID, format, typeCode, value)
	if err != nil {
		return nil, err
	}
	return va.Encode()
}

func (va *VendorAttribute) validate() error {
	if !va.Format.Valid() {
		return fmt.Errorf("unknown vendor attribute format: %q", string(va.Format))
	}

	if max := va.Format.MaxTypeCode(); va.Type > max {
		return fmt.Errorf("vendor type %d does not fit a %d-octet type field", va.Type, va.Format.TypeOctets())
	}

	if va.Tag > MaxTag {
		return fmt.Errorf("tag %d out of range (1-%d)", va.Tag, MaxTag)
	}

	if max := va.Format.MaxValueLen(); max >= 0 {
		if n := va.wireValueLen(); n > max {
			return &ValueTooLargeError{Len: n, Max: max}
		}
	}

	return nil
}

// wireValueLen is the octet count of the value as it appears on the wire,
// including the tag octet when one is set.
func (va *VendorAttribute) wireValueLen() int {
	n := len(va.Value)
	if va.Tag != 0 {
		n++
	}
	return n
}

// WireLen returns the total encoded size of the sub-attribute in octets.
func (va *VendorAttribute) WireLen() int {
	return va.Format.HeaderOctets() + va.wireValueLen()
}

// Encode serializes the sub-attribute in its vendor format. Validation runs
// before any bytes are produced; on error the returned slice is nil. Equal
// inputs always produce equal output, and a VendorAttribute may be encoded
// concurrently from multiple goroutines.
func (va *VendorAttribute) Encode() ([]byte, error) {
	if err := va.validate(); err != nil {
		return nil, err
	}

	header := va.Format.HeaderOctets()
	total := header + va.wireValueLen()
	buf := make([]byte, total)

	switch va.Format.normalized() {
	case FormatStandard:
		buf[0] = uint8(va.Type)
		buf[1] = uint8(total)
	case FormatType4Len0:
		binary.BigEndian.PutUint32(buf[:4], va.Type)
	}

	off := header
	if va.Tag != 0 {
		buf[off] = va.Tag
		off++
	}
	copy(buf[off:], va.Value)

	return buf, nil
}

// String returns a debug form of the sub-attribute.
func (va *VendorAttribute) String() string {
	return fmt.Sprintf("Vendor-%d-Type-%d = 0x%x", va.VendorID, va.Type, va.Value)
}
