package vsa

import (
	"encoding/binary"
	"net"
	"time"
)

// EncodeInteger returns the 4-octet big-endian encoding of v. Every 32-bit
// value is representable, so this cannot fail.
func EncodeInteger(v uint32) []byte {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, v)
	return buf
}

// EncodeSignedInteger encodes v in two's complement, so negative values
// round-trip through the unsigned wire form.
func EncodeSignedInteger(v int32) []byte {
	return EncodeInteger(uint32(v))
}

// EncodeString returns the raw bytes of s with no terminator and no
// re-encoding. An empty string encodes to zero octets.
func EncodeString(s string) []byte {
	return []byte(s)
}

// EncodeIPAddr returns the 4-octet form of ip. A nil ip is a null value;
// anything that is not an IPv4 address, including IPv6, is rejected.
// IPv4-in-IPv6 mapped addresses are narrowed to their 4-octet form.
func EncodeIPAddr(ip net.IP) ([]byte, error) {
	if ip == nil {
		return nil, &NullValueError{Attr: "ipaddr"}
	}

	ipv4 := ip.To4()
	if ipv4 == nil {
		return nil, &InvalidAddressFamilyError{Addr: ip}
	}

	buf := make([]byte, 4)
	copy(buf, ipv4)
	return buf, nil
}

// EncodeOctets returns a copy of b. A nil slice is a null value; an empty
// non-nil slice encodes to zero octets.
func EncodeOctets(b []byte) ([]byte, error) {
	if b == nil {
		return nil, &NullValueError{Attr: "octets"}
	}

	buf := make([]byte, len(b))
	copy(buf, b)
	return buf, nil
}

// EncodeDate returns the 4-octet big-endian seconds-since-epoch form of t.
func EncodeDate(t time.Time) []byte {
	return EncodeInteger(uint32(t.Unix()))
}
