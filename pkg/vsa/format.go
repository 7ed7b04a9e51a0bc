package vsa

const (
	// MaxStandardValueLen is the longest value a standard sub-attribute can
	// carry: the 1-octet length field covers itself, the type octet and the
	// value, so 255 minus the 2 header octets.
	MaxStandardValueLen = 253

	// MaxTag is the highest tag value RFC 2868 allows. Zero means untagged.
	MaxTag = 0x1F
)

// Format selects the wire layout of a vendor sub-attribute inside the
// payload of a Vendor-Specific (type 26) attribute.
type Format string

const (
	// FormatStandard is the RFC 2865 recommended layout: a 1-octet vendor
	// type followed by a 1-octet length covering the whole sub-attribute.
	FormatStandard Format = "standard"

	// FormatType4Len0 is the layout used by US Robotics and a few other
	// vendors: a 4-octet big-endian vendor type and no length field. The
	// value runs to the end of the enclosing attribute payload.
	FormatType4Len0 Format = "type4len0"
)

// normalized maps the zero value to FormatStandard so declarative tables
// that omit the format get the common layout.
func (f Format) normalized() Format {
	if f == "" {
		return FormatStandard
	}
	return f
}

// Valid reports whether the format is a known layout.
func (f Format) Valid() bool {
	switch f.normalized() {
	case FormatStandard, FormatType4Len0:
		return true
	}
	return false
}

func (f Format) String() string {
	return string(f.normalized())
}

// TypeOctets returns the width of the type field in octets.
func (f Format) TypeOctets() int {
	if f.normalized() == FormatType4Len0 {
		return 4
	}
	return 1
}

// LengthOctets returns the width of the length field in octets.
func (f Format) LengthOctets() int {
	if f.normalized() == FormatType4Len0 {
		return 0
	}
	return 1
}

// HeaderOctets returns the combined width of the type and length fields.
func (f Format) HeaderOctets() int {
	return f.TypeOctets() + f.LengthOctets()
}

// MaxTypeCode returns the largest vendor type the type field can carry.
func (f Format) MaxTypeCode() uint32 {
	if f.normalized() == FormatType4Len0 {
		return 0xFFFFFFFF
	}
	return 0xFF
}

// MaxValueLen returns the longest value the format's length field can
// describe, or -1 when the format has no length field and the enclosing
// attribute bounds the value instead.
func (f Format) MaxValueLen() int {
	if f.normalized() == FormatType4Len0 {
		return -1
	}
	return MaxStandardValueLen
}
