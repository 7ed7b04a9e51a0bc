package dictionary

import "github.com/vitalvas/govsa/pkg/vsa"

// DataType represents the wire encoding of an attribute value
type DataType string

const (
	DataTypeString  DataType = "string"
	DataTypeOctets  DataType = "octets"
	DataTypeInteger DataType = "integer"
	DataTypeIPAddr  DataType = "ipaddr"
	DataTypeDate    DataType = "date"
)

// Valid reports whether the data type is one of the known encodings.
func (dt DataType) Valid() bool {
	switch dt {
	case DataTypeString, DataTypeOctets, DataTypeInteger, DataTypeIPAddr, DataTypeDate:
		return true
	}
	return false
}

// EncryptionType marks attributes whose values are scrambled with the
// shared secret before transmission. Encryption itself happens in the
// transport layer; the dictionary only records which scheme applies.
type EncryptionType string

const (
	EncryptionNone           EncryptionType = ""
	EncryptionUserPassword   EncryptionType = "user-password"
	EncryptionTunnelPassword EncryptionType = "tunnel-password"
	EncryptionAscendSecret   EncryptionType = "ascend-secret"
)

// Valid reports whether the encryption type is a known scheme.
func (et EncryptionType) Valid() bool {
	switch et {
	case EncryptionNone, EncryptionUserPassword, EncryptionTunnelPassword, EncryptionAscendSecret:
		return true
	}
	return false
}

// AttributeDefinition defines a RADIUS attribute
type AttributeDefinition struct {
	ID          uint32            `yaml:"id" json:"id"`
	Name        string            `yaml:"name" json:"name"`
	DataType    DataType          `yaml:"data_type" json:"data_type"`
	Encryption  EncryptionType    `yaml:"encryption,omitempty" json:"encryption,omitempty"`
	HasTag      bool              `yaml:"has_tag,omitempty" json:"has_tag,omitempty"`
	Values      map[string]uint32 `yaml:"values,omitempty" json:"values,omitempty"`
	Description string            `yaml:"description,omitempty" json:"description,omitempty"`
}

// ValueByName resolves a symbolic name for an integer attribute value.
func (a *AttributeDefinition) ValueByName(name string) (uint32, bool) {
	v, ok := a.Values[name]
	return v, ok
}

// VendorDefinition defines a vendor and its attributes
type VendorDefinition struct {
	ID          uint32 `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Format selects the sub-attribute wire layout for the whole vendor
	// space. The zero value is the standard 1-octet type, 1-octet length
	// layout.
	Format vsa.Format `yaml:"format,omitempty" json:"format,omitempty"`

	Attributes []*AttributeDefinition `yaml:"attributes" json:"attributes"`
}

// AttributeByID finds a vendor attribute by its type code.
func (v *VendorDefinition) AttributeByID(id uint32) (*AttributeDefinition, bool) {
	for _, attr := range v.Attributes {
		if attr.ID == id {
			return attr, true
		}
	}
	return nil, false
}

// AttributeByName finds a vendor attribute by name.
func (v *VendorDefinition) AttributeByName(name string) (*AttributeDefinition, bool) {
	for _, attr := range v.Attributes {
		if attr.Name == name {
			return attr, true
		}
	}
	return nil, false
}
