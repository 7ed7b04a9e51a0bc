package govsa

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vitalvas/govsa/pkg/dictionaries"
	"github.com/vitalvas/govsa/pkg/dictionary"
	"github.com/vitalvas/govsa/pkg/packet"
	"github.com/vitalvas/govsa/pkg/vsa"
)

// Builder resolves attribute names against a dictionary and produces
// wire-ready attributes. The attribute row selects the value encoding and
// the owning vendor selects the sub-attribute layout, so one Builder covers
// every vendor without per-vendor constructors.
type Builder struct {
	dict *dictionary.Dictionary
}

// NewBuilder creates a Builder over the given dictionary.
func NewBuilder(dict *dictionary.Dictionary) *Builder {
	return &Builder{dict: dict}
}

// NewDefault creates a Builder over the compiled-in dictionary tables.
func NewDefault() (*Builder, error) {
	dict, err := dictionaries.NewDefault()
	if err != nil {
		return nil, err
	}

	return NewBuilder(dict), nil
}

// Dictionary returns the dictionary backing the builder.
func (b *Builder) Dictionary() *dictionary.Dictionary {
	return b.dict
}

// Attribute encodes a named attribute. Standard names produce a plain
// attribute; vendor names produce a complete Vendor-Specific attribute
// wrapping a single sub-attribute.
func (b *Builder) Attribute(name string, value any) (*packet.Attribute, error) {
	r, err := b.resolve(name)
	if err != nil {
		return nil, err
	}

	if r.vendor != nil {
		sub, err := b.sub(r, value)
		if err != nil {
			return nil, err
		}
		return packet.NewVendorSpecific(r.vendor.ID, sub)
	}

	data, err := b.encode(r, value)
	if err != nil {
		return nil, err
	}

	if r.tagged {
		return packet.NewTaggedAttribute(uint8(r.attr.ID), r.tag, data)
	}
	return packet.NewAttribute(uint8(r.attr.ID), data)
}

// VendorSpecific encodes a named vendor attribute into a complete
// Vendor-Specific attribute. Standard attribute names are rejected.
func (b *Builder) VendorSpecific(name string, value any) (*packet.Attribute, error) {
	r, err := b.resolve(name)
	if err != nil {
		return nil, err
	}

	if r.vendor == nil {
		return nil, fmt.Errorf("attribute %s is a standard attribute, not vendor specific", r.attr.Name)
	}

	sub, err := b.sub(r, value)
	if err != nil {
		return nil, err
	}

	return packet.NewVendorSpecific(r.vendor.ID, sub)
}

// VendorAttribute encodes a named vendor attribute as a bare sub-attribute,
// so several of them can share one Vendor-Specific attribute through
// packet.NewVendorSpecific or Packet.AddVendorSpecific.
func (b *Builder) VendorAttribute(name string, value any) (*vsa.VendorAttribute, error) {
	r, err := b.resolve(name)
	if err != nil {
		return nil, err
	}

	if r.vendor == nil {
		return nil, fmt.Errorf("attribute %s is a standard attribute, not vendor specific", r.attr.Name)
	}

	return b.sub(r, value)
}

type resolved struct {
	attr   *dictionary.AttributeDefinition
	vendor *dictionary.VendorDefinition
	tag    uint8
	tagged bool
}

func (b *Builder) resolve(name string) (*resolved, error) {
	base, tag, tagged, err := splitTag(name)
	if err != nil {
		return nil, err
	}

	attr, vendor, ok := b.dict.LookupAttributeByName(base)
	if !ok {
		return nil, fmt.Errorf("unknown attribute %q", base)
	}

	if attr.Encryption != dictionary.EncryptionNone {
		return nil, fmt.Errorf("attribute %s uses %s encryption, which needs the transport's shared secret",
			attr.Name, string(attr.Encryption))
	}

	if tagged && !attr.HasTag {
		return nil, fmt.Errorf("attribute %s does not take a tag", attr.Name)
	}

	return &resolved{attr: attr, vendor: vendor, tag: tag, tagged: tagged}, nil
}

// encode produces the value octets, shortening tagged integers to the
// three-octet form of RFC 2868 (the tag octet takes the fourth).
func (b *Builder) encode(r *resolved, value any) ([]byte, error) {
	data, err := r.attr.EncodeValue(value)
	if err != nil {
		return nil, err
	}

	if r.tagged && r.attr.DataType == dictionary.DataTypeInteger {
		if data[0] != 0 {
			return nil, fmt.Errorf("attribute %s: value does not fit the 3-octet tagged integer form", r.attr.Name)
		}
		data = data[1:]
	}

	return data, nil
}

func (b *Builder) sub(r *resolved, value any) (*vsa.VendorAttribute, error) {
	data, err := b.encode(r, value)
	if err != nil {
		return nil, err
	}

	if r.tagged {
		return vsa.NewTagged(r.vendor.ID, r.vendor.Format, r.attr.ID, r.tag, data)
	}
	return vsa.New(r.vendor.ID, r.vendor.Format, r.attr.ID, data)
}

// splitTag splits the "Name:tag" form used for tagged tunnel attributes.
// Names without a colon pass through untagged.
func splitTag(name string) (string, uint8, bool, error) {
	idx := strings.LastIndex(name, ":")
	if idx < 0 {
		return name, 0, false, nil
	}

	tagStr := name[idx+1:]
	tag, err := strconv.ParseUint(tagStr, 10, 8)
	if err != nil || tag > vsa.MaxTag {
		return "", 0, false, fmt.Errorf("invalid tag %q in %q (0-%d)", tagStr, name, vsa.MaxTag)
	}

	return name[:idx], uint8(tag), true, nil
}
