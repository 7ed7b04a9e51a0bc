package dictionary

import (
	"fmt"
	"sort"
	"sync"
)

// Dictionary provides fast lookup for RADIUS attribute definitions.
// Attribute names are unique across the whole dictionary, standard and
// vendor space together, so a bare name resolves to exactly one definition.
// All methods are safe for concurrent use.
type Dictionary struct {
	mu sync.RWMutex

	standardByID   map[uint32]*AttributeDefinition
	standardByName map[string]*AttributeDefinition

	vendorByID   map[uint32]*VendorDefinition
	vendorByName map[string]*VendorDefinition

	// vendorAttrByID maps vendor ID, then attribute type code, to the
	// attribute definition.
	vendorAttrByID map[uint32]map[uint32]*AttributeDefinition

	// attrByName and attrOwner map a vendor attribute name to its
	// definition and owning vendor.
	attrByName map[string]*AttributeDefinition
	attrOwner  map[string]*VendorDefinition
}

// New creates an empty dictionary.
func New() *Dictionary {
	return &Dictionary{
		standardByID:   make(map[uint32]*AttributeDefinition),
		standardByName: make(map[string]*AttributeDefinition),
		vendorByID:     make(map[uint32]*VendorDefinition),
		vendorByName:   make(map[string]*VendorDefinition),
		vendorAttrByID: make(map[uint32]map[uint32]*AttributeDefinition),
		attrByName:     make(map[string]*AttributeDefinition),
		attrOwner:      make(map[string]*VendorDefinition),
	}
}

// AddStandardAttributes adds standard RFC attributes to the dictionary.
// Standard type codes occupy one octet, so IDs must be 1 through 255.
func (d *Dictionary) AddStandardAttributes(attrs []*AttributeDefinition) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, attr := range attrs {
		if err := ValidateAttribute(attr); err != nil {
			return err
		}

		if attr.ID > 255 {
			return fmt.Errorf("standard attribute %s: type %d does not fit one octet", attr.Name, attr.ID)
		}

		if err := d.checkNameFree(attr.Name); err != nil {
			return err
		}
	}

	for _, attr := range attrs {
		d.standardByID[attr.ID] = attr
		d.standardByName[attr.Name] = attr
	}

	return nil
}

// AddVendor adds a vendor and its attributes to the dictionary. The vendor
// definition is validated first, including that every attribute type code
// fits the vendor's wire format.
func (d *Dictionary) AddVendor(vendor *VendorDefinition) error {
	if err := ValidateVendor(vendor); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if existing, exists := d.vendorByID[vendor.ID]; exists {
		return fmt.Errorf("vendor ID %d already defined as %q", vendor.ID, existing.Name)
	}

	if _, exists := d.vendorByName[vendor.Name]; exists {
		return fmt.Errorf("vendor %q already defined", vendor.Name)
	}

	for _, attr := range vendor.Attributes {
		if err := d.checkNameFree(attr.Name); err != nil {
			return err
		}
	}

	d.vendorByID[vendor.ID] = vendor
	d.vendorByName[vendor.Name] = vendor

	byID := make(map[uint32]*AttributeDefinition, len(vendor.Attributes))
	for _, attr := range vendor.Attributes {
		byID[attr.ID] = attr
		d.attrByName[attr.Name] = attr
		d.attrOwner[attr.Name] = vendor
	}
	d.vendorAttrByID[vendor.ID] = byID

	return nil
}

// checkNameFree expects d.mu to be held.
func (d *Dictionary) checkNameFree(name string) error {
	if _, exists := d.standardByName[name]; exists {
		return fmt.Errorf("duplicate attribute name %q: already defined as standard attribute", name)
	}

	if owner, exists := d.attrOwner[name]; exists {
		return fmt.Errorf("duplicate attribute name %q: already defined for vendor %s", name, owner.Name)
	}

	return nil
}

// LookupStandardByID finds a standard attribute by type code.
func (d *Dictionary) LookupStandardByID(id uint32) (*AttributeDefinition, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	attr, exists := d.standardByID[id]
	return attr, exists
}

// LookupStandardByName finds a standard attribute by name.
func (d *Dictionary) LookupStandardByName(name string) (*AttributeDefinition, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	attr, exists := d.standardByName[name]
	return attr, exists
}

// LookupVendorByID finds a vendor by its IANA enterprise number.
func (d *Dictionary) LookupVendorByID(vendorID uint32) (*VendorDefinition, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	vendor, exists := d.vendorByID[vendorID]
	return vendor, exists
}

// LookupVendorByName finds a vendor by name.
func (d *Dictionary) LookupVendorByName(name string) (*VendorDefinition, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	vendor, exists := d.vendorByName[name]
	return vendor, exists
}

// LookupVendorAttributeByID finds a vendor attribute by vendor ID and type
// code.
func (d *Dictionary) LookupVendorAttributeByID(vendorID, attrID uint32) (*AttributeDefinition, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	attrs, exists := d.vendorAttrByID[vendorID]
	if !exists {
		return nil, false
	}

	attr, exists := attrs[attrID]
	return attr, exists
}

// LookupAttributeByName resolves an attribute name to its definition. The
// returned vendor is nil for standard attributes.
func (d *Dictionary) LookupAttributeByName(name string) (*AttributeDefinition, *VendorDefinition, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if attr, exists := d.standardByName[name]; exists {
		return attr, nil, true
	}

	if attr, exists := d.attrByName[name]; exists {
		return attr, d.attrOwner[name], true
	}

	return nil, nil, false
}

// Vendors returns all vendors ordered by ID.
func (d *Dictionary) Vendors() []*VendorDefinition {
	d.mu.RLock()
	defer d.mu.RUnlock()

	vendors := make([]*VendorDefinition, 0, len(d.vendorByID))
	for _, vendor := range d.vendorByID {
		vendors = append(vendors, vendor)
	}

	sort.Slice(vendors, func(i, j int) bool {
		return vendors[i].ID < vendors[j].ID
	})
	return vendors
}

// StandardAttributes returns all standard attributes ordered by type code.
func (d *Dictionary) StandardAttributes() []*AttributeDefinition {
	d.mu.RLock()
	defer d.mu.RUnlock()

	attrs := make([]*AttributeDefinition, 0, len(d.standardByID))
	for _, attr := range d.standardByID {
		attrs = append(attrs, attr)
	}

	sort.Slice(attrs, func(i, j int) bool {
		return attrs[i].ID < attrs[j].ID
	})
	return attrs
}

// Merge adds the vendors and standard attributes of other into d. A vendor
// or attribute that is already present with the same name is skipped;
// definitions that collide on ID or name with different content are
// reported as conflicts.
func (d *Dictionary) Merge(other *Dictionary) error {
	for _, attr := range other.StandardAttributes() {
		existing, exists := d.LookupStandardByID(attr.ID)
		if exists {
			if existing.Name != attr.Name || existing.DataType != attr.DataType {
				return fmt.Errorf("attribute conflict: standard attribute %d defined as both %q and %q", attr.ID, existing.Name, attr.Name)
			}
			continue
		}

		if err := d.AddStandardAttributes([]*AttributeDefinition{attr}); err != nil {
			return err
		}
	}

	for _, vendor := range other.Vendors() {
		existing, exists := d.LookupVendorByID(vendor.ID)
		if exists {
			if existing.Name != vendor.Name {
				return fmt.Errorf("vendor conflict: vendor ID %d defined as both %q and %q", vendor.ID, existing.Name, vendor.Name)
			}
			continue
		}

		if err := d.AddVendor(vendor); err != nil {
			return err
		}
	}

	return nil
}
