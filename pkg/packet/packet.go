package packet

import (
	"fmt"

	"github.com/vitalvas/govsa/pkg/vsa"
)

// Packet represents an outgoing RADIUS packet as defined in RFC 2865.
// The authenticator field is carried verbatim: computing request or
// response authenticators is the transport's concern.
type Packet struct {
	Code          Code
	Identifier    uint8
	Authenticator [AuthenticatorLength]byte
	Attributes    []*Attribute
}

// New creates an empty RADIUS packet with the specified code and identifier
func New(code Code, identifier uint8) *Packet {
	return &Packet{
		Code:       code,
		Identifier: identifier,
		Attributes: make([]*Attribute, 0),
	}
}

// Add appends an attribute to the packet
func (p *Packet) Add(attr *Attribute) {
	p.Attributes = append(p.Attributes, attr)
}

// AddVendorSpecific packs vendor sub-attributes into a Vendor-Specific
// attribute and appends it
func (p *Packet) AddVendorSpecific(vendorID uint32, subs ...*vsa.VendorAttribute) error {
	attr, err := NewVendorSpecific(vendorID, subs...)
	if err != nil {
		return err
	}

	p.Add(attr)
	return nil
}

// SetAuthenticator sets the packet authenticator
func (p *Packet) SetAuthenticator(auth [AuthenticatorLength]byte) {
	p.Authenticator = auth
}

// Length returns the encoded size of the packet in octets
func (p *Packet) Length() int {
	length := PacketHeaderLength
	for _, attr := range p.Attributes {
		length += int(attr.Length)
	}
	return length
}

// Encode converts the packet into its binary representation per RFC 2865
// Section 3
func (p *Packet) Encode() ([]byte, error) {
	if !p.Code.IsValid() {
		return nil, fmt.Errorf("invalid packet code: %d", uint8(p.Code))
	}

	length := p.Length()
	if length > MaxPacketLength {
		return nil, fmt.Errorf("packet too long: %d bytes", length)
	}

	data := make([]byte, length)

	// Header
	data[0] = byte(p.Code)
	data[1] = p.Identifier
	data[2] = byte(length >> 8)
	data[3] = byte(length)
	copy(data[4:20], p.Authenticator[:])

	// Attributes
	offset := PacketHeaderLength
	for _, attr := range p.Attributes {
		data[offset] = attr.Type
		data[offset+1] = attr.Length
		copy(data[offset+2:offset+int(attr.Length)], attr.Value)
		offset += int(attr.Length)
	}

	return data, nil
}

// String returns a string representation of the packet
func (p *Packet) String() string {
	return fmt.Sprintf("Code=%s(%d), ID=%d, Length=%d, Attributes=%d",
		p.Code.String(), uint8(p.Code), p.Identifier, p.Length(), len(p.Attributes))
}
