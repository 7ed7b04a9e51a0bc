package dictionary

import (
	"encoding/hex"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/vitalvas/govsa/pkg/vsa"
)

// EncodeValue encodes a Go value according to the attribute's data type.
// Integer attributes accept symbolic value names as strings; octet
// attributes accept 0x-prefixed hex strings.
func (a *AttributeDefinition) EncodeValue(value any) ([]byte, error) {
	if value == nil {
		return nil, &vsa.NullValueError{Attr: a.Name}
	}

	switch a.DataType {
	case DataTypeString:
		return a.encodeString(value)
	case DataTypeOctets:
		return a.encodeOctets(value)
	case DataTypeInteger:
		return a.encodeInteger(value)
	case DataTypeIPAddr:
		return a.encodeIPAddr(value)
	case DataTypeDate:
		return a.encodeDate(value)
	}

	return nil, fmt.Errorf("attribute %s: unknown data type %q", a.Name, string(a.DataType))
}

func (a *AttributeDefinition) encodeString(value any) ([]byte, error) {
	switch v := value.(type) {
	case string:
		return vsa.EncodeString(v), nil
	case []byte:
		return a.copyOctets(v)
	}

	return nil, a.typeError(value)
}

func (a *AttributeDefinition) encodeOctets(value any) ([]byte, error) {
	switch v := value.(type) {
	case []byte:
		return a.copyOctets(v)
	case string:
		if strings.HasPrefix(v, "0x") || strings.HasPrefix(v, "0X") {
			decoded, err := hex.DecodeString(v[2:])
			if err != nil {
				return nil, fmt.Errorf("attribute %s: invalid hex value %q: %w", a.Name, v, err)
			}
			return decoded, nil
		}
		return vsa.EncodeString(v), nil
	}

	return nil, a.typeError(value)
}

func (a *AttributeDefinition) encodeInteger(value any) ([]byte, error) {
	switch v := value.(type) {
	case uint32:
		return vsa.EncodeInteger(v), nil
	case uint:
		if v > 0xFFFFFFFF {
			return nil, a.rangeError(int64(v))
		}
		return vsa.EncodeInteger(uint32(v)), nil
	case uint64:
		if v > 0xFFFFFFFF {
			return nil, fmt.Errorf("attribute %s: value %d out of 32-bit range", a.Name, v)
		}
		return vsa.EncodeInteger(uint32(v)), nil
	case int32:
		return vsa.EncodeSignedInteger(v), nil
	case int:
		return a.encodeSigned(int64(v))
	case int64:
		return a.encodeSigned(v)
	case string:
		if named, ok := a.ValueByName(v); ok {
			return vsa.EncodeInteger(named), nil
		}
		parsed, err := strconv.ParseUint(v, 0, 32)
		if err != nil {
			return nil, fmt.Errorf("attribute %s: unknown value %q", a.Name, v)
		}
		return vsa.EncodeInteger(uint32(parsed)), nil
	}

	return nil, a.typeError(value)
}

// encodeSigned accepts the union of the int32 and uint32 ranges, so both
// signed wire values and large unsigned ones pass through int literals.
func (a *AttributeDefinition) encodeSigned(v int64) ([]byte, error) {
	if v < -2147483648 || v > 0xFFFFFFFF {
		return nil, a.rangeError(v)
	}

	if v < 0 {
		return vsa.EncodeSignedInteger(int32(v)), nil
	}
	return vsa.EncodeInteger(uint32(v)), nil
}

func (a *AttributeDefinition) encodeIPAddr(value any) ([]byte, error) {
	switch v := value.(type) {
	case net.IP:
		buf, err := vsa.EncodeIPAddr(v)
		if err != nil {
			return nil, fmt.Errorf("attribute %s: %w", a.Name, err)
		}
		return buf, nil
	case string:
		ip := net.ParseIP(v)
		if ip == nil {
			return nil, fmt.Errorf("attribute %s: invalid IP address %q", a.Name, v)
		}
		buf, err := vsa.EncodeIPAddr(ip)
		if err != nil {
			return nil, fmt.Errorf("attribute %s: %w", a.Name, err)
		}
		return buf, nil
	}

	return nil, a.typeError(value)
}

func (a *AttributeDefinition) encodeDate(value any) ([]byte, error) {
	switch v := value.(type) {
	case time.Time:
		return vsa.EncodeDate(v), nil
	case uint32:
		return vsa.EncodeInteger(v), nil
	case int:
		return a.encodeSigned(int64(v))
	case int64:
		return a.encodeSigned(v)
	}

	return nil, a.typeError(value)
}

func (a *AttributeDefinition) copyOctets(v []byte) ([]byte, error) {
	buf, err := vsa.EncodeOctets(v)
	if err != nil {
		return nil, &vsa.NullValueError{Attr: a.Name}
	}
	return buf, nil
}

func (a *AttributeDefinition) typeError(value any) error {
	return fmt.Errorf("attribute %s: cannot encode %T as %s", a.Name, value, string(a.DataType))
}

func (a *AttributeDefinition) rangeError(v int64) error {
	return fmt.Errorf("attribute %s: value %d out of 32-bit range", a.Name, v)
}
