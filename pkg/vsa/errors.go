package vsa

import (
	"fmt"
	"net"
)

// NullValueError reports a value that was required but never supplied, as
// distinct from a present-but-empty value.
type NullValueError struct {
	// Attr names the attribute or value kind being encoded.
	Attr string
}

func (e *NullValueError) Error() string {
	if e.Attr == "" {
		return "value is null"
	}
	return fmt.Sprintf("%s: value is null", e.Attr)
}

// InvalidAddressFamilyError reports an address value that is not IPv4.
type InvalidAddressFamilyError struct {
	Addr net.IP
}

func (e *InvalidAddressFamilyError) Error() string {
	return fmt.Sprintf("not an IPv4 address: %s", e.Addr)
}

// ValueTooLargeError reports a value that does not fit the wire format's
// length budget.
type ValueTooLargeError struct {
	Len int
	Max int
}

func (e *ValueTooLargeError) Error() string {
	return fmt.Sprintf("value length %d exceeds %d octets", e.Len, e.Max)
}
