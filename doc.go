// Package govsa encodes RADIUS Vendor-Specific Attributes (RFC 2865
// attribute 26) and the packets that carry them.
//
// Two sub-attribute layouts are supported:
//   - standard: 1-octet vendor type, 1-octet length, value (most vendors)
//   - type4len0: 4-octet vendor type, no length octet, value (US Robotics)
//
// Encoding is dictionary driven. A Builder resolves attribute names against
// the vendor tables and encodes Go values into wire form:
//
//	b, err := govsa.NewDefault()
//	if err != nil {
//		return err
//	}
//
//	attr, err := b.Attribute("MS-MPPE-Encryption-Policy", "Encryption-Required")
//	if err != nil {
//		return err
//	}
//
// The result carries the complete attribute 26 octets: type, length, the
// 4-octet vendor ID and the encoded sub-attribute. Tagged tunnel attributes
// take the tag after a colon, as in "Tunnel-Type:1". Decoding received
// packets is out of scope: this module only writes.
package govsa
