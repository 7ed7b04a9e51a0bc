package packet

const (
	// PacketHeaderLength is the length of the RADIUS packet header in bytes
	PacketHeaderLength = 20
	// MaxPacketLength is the maximum allowed RADIUS packet length
	MaxPacketLength = 4096
	// AuthenticatorLength is the length of the authenticator field
	AuthenticatorLength = 16
	// AttributeHeaderLength is the length of an attribute header (Type + Length)
	AttributeHeaderLength = 2
	// MaxAttributeValueLength is the largest value a top-level attribute can
	// carry: the length octet covers the whole attribute and caps at 255
	MaxAttributeValueLength = 255 - AttributeHeaderLength
	// VendorSpecificHeaderLength is the length of the Vendor-Specific lead-in
	// (Type + Length + Vendor-Id)
	VendorSpecificHeaderLength = 6
	// MaxVendorSpecificValueLength is the room left for vendor sub-attributes
	// after the Vendor-Id field
	MaxVendorSpecificValueLength = 255 - VendorSpecificHeaderLength
	// TypeVendorSpecific is the Vendor-Specific attribute type from RFC 2865
	TypeVendorSpecific = 26
)
