package packet

import (
	"encoding/binary"
	"fmt"

	"github.com/vitalvas/govsa/pkg/vsa"
)

// NewVendorSpecific packs encoded vendor sub-attributes into a single
// Vendor-Specific (26) attribute: the four-octet vendor ID first, the
// sub-attributes after it. All sub-attributes must belong to the named
// vendor. A sub-attribute without a length octet runs to the end of the
// enclosing attribute, so it cannot share one with other sub-attributes.
func NewVendorSpecific(vendorID uint32, subs ...*vsa.VendorAttribute) (*Attribute, error) {
	if vendorID == 0 {
		return nil, fmt.Errorf("vendor ID cannot be zero")
	}

	if len(subs) == 0 {
		return nil, fmt.Errorf("vendor-specific attribute needs at least one sub-attribute")
	}

	total := 0
	for i, sub := range subs {
		if sub == nil {
			return nil, fmt.Errorf("sub-attribute %d cannot be nil", i)
		}

		if sub.VendorID != vendorID {
			return nil, fmt.Errorf("sub-attribute %d belongs to vendor %d, not %d", i, sub.VendorID, vendorID)
		}

		if sub.Format.LengthOctets() == 0 && len(subs) > 1 {
			return nil, fmt.Errorf("sub-attribute %d carries no length octet and must occupy the attribute alone", i)
		}

		total += sub.WireLen()
	}

	if total > MaxVendorSpecificValueLength {
		return nil, &vsa.ValueTooLargeError{Len: total, Max: MaxVendorSpecificValueLength}
	}

	value := make([]byte, 4+total)
	binary.BigEndian.PutUint32(value[:4], vendorID)

	offset := 4
	for _, sub := range subs {
		encoded, err := sub.Encode()
		if err != nil {
			return nil, err
		}

		copy(value[offset:], encoded)
		offset += len(encoded)
	}

	return &Attribute{
		Type:   TypeVendorSpecific,
		Length: uint8(len(value) + AttributeHeaderLength),
		Value:  value,
	}, nil
}
