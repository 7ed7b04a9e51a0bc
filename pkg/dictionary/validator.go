package dictionary

import (
	"fmt"
	"unicode"
)

// ValidateAttribute checks a single attribute definition: a non-zero type
// code, a well-formed name, a known data type and named values only where
// the data type supports them.
func ValidateAttribute(attr *AttributeDefinition) error {
	if attr == nil {
		return fmt.Errorf("attribute definition cannot be nil")
	}

	if attr.ID == 0 {
		return fmt.Errorf("attribute %q: type code cannot be zero", attr.Name)
	}

	if !isValidAttributeName(attr.Name) {
		return fmt.Errorf("invalid attribute name %q", attr.Name)
	}

	if !attr.DataType.Valid() {
		return fmt.Errorf("attribute %s: unknown data type %q", attr.Name, string(attr.DataType))
	}

	if !attr.Encryption.Valid() {
		return fmt.Errorf("attribute %s: unknown encryption type %q", attr.Name, string(attr.Encryption))
	}

	if len(attr.Values) > 0 && attr.DataType != DataTypeInteger {
		return fmt.Errorf("attribute %s: named values require the integer data type", attr.Name)
	}

	for name := range attr.Values {
		if !isValidAttributeName(name) {
			return fmt.Errorf("attribute %s: invalid value name %q", attr.Name, name)
		}
	}

	return nil
}

// ValidateVendor checks a vendor definition and all of its attributes,
// including that every type code fits the vendor's wire format and that IDs
// and names are unique within the vendor.
func ValidateVendor(vendor *VendorDefinition) error {
	if vendor == nil {
		return fmt.Errorf("vendor definition cannot be nil")
	}

	if vendor.ID == 0 {
		return fmt.Errorf("vendor %q: vendor ID cannot be zero", vendor.Name)
	}

	if !isValidVendorName(vendor.Name) {
		return fmt.Errorf("invalid vendor name %q", vendor.Name)
	}

	if !vendor.Format.Valid() {
		return fmt.Errorf("vendor %s: unknown format %q", vendor.Name, string(vendor.Format))
	}

	maxType := vendor.Format.MaxTypeCode()
	seenIDs := make(map[uint32]string, len(vendor.Attributes))
	seenNames := make(map[string]struct{}, len(vendor.Attributes))

	for _, attr := range vendor.Attributes {
		if err := ValidateAttribute(attr); err != nil {
			return fmt.Errorf("vendor %s: %w", vendor.Name, err)
		}

		if attr.ID > maxType {
			return fmt.Errorf("vendor %s: attribute %s type %d does not fit format %s", vendor.Name, attr.Name, attr.ID, vendor.Format)
		}

		if prev, dup := seenIDs[attr.ID]; dup {
			return fmt.Errorf("vendor %s: duplicate type code %d (%s, %s)", vendor.Name, attr.ID, prev, attr.Name)
		}
		seenIDs[attr.ID] = attr.Name

		if _, dup := seenNames[attr.Name]; dup {
			return fmt.Errorf("vendor %s: duplicate attribute name %q", vendor.Name, attr.Name)
		}
		seenNames[attr.Name] = struct{}{}
	}

	return nil
}

// ValidateDictionary re-checks every definition held by a dictionary.
func ValidateDictionary(d *Dictionary) error {
	if d == nil {
		return fmt.Errorf("dictionary cannot be nil")
	}

	for _, attr := range d.StandardAttributes() {
		if err := ValidateAttribute(attr); err != nil {
			return err
		}

		if attr.ID > 255 {
			return fmt.Errorf("standard attribute %s: type %d does not fit one octet", attr.Name, attr.ID)
		}
	}

	for _, vendor := range d.Vendors() {
		if err := ValidateVendor(vendor); err != nil {
			return err
		}
	}

	return nil
}

func isValidAttributeName(name string) bool {
	if name == "" {
		return false
	}

	for i, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			continue
		}
		if (r == '-' || r == '_' || r == '.') && i > 0 {
			continue
		}
		return false
	}

	return true
}

func isValidVendorName(name string) bool {
	if name == "" {
		return false
	}

	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != ' ' && r != '-' {
			return false
		}
	}

	return true
}
