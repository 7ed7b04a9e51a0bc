package dictionaries

import "github.com/vitalvas/govsa/pkg/dictionary"

// NewDefault creates a dictionary pre-loaded with the standard RFC
// attributes and the compiled-in vendor tables. This is a convenience
// function for users who want common RADIUS coverage without loading
// external dictionary files.
// Currently includes:
//   - RFC 2865/2866/2867/2868/2869 standard attributes
//   - Microsoft vendor attributes (RFC 2548)
//   - Cisco vendor attributes
//   - US Robotics vendor attributes (four-octet type codes)
//   - WISPr vendor attributes
//   - Mikrotik vendor attributes
//
// Returns an error if there are duplicate attribute names, which would
// indicate a programming error in the dictionary definitions.
//
// Example usage:
//
//	dict, err := dictionaries.NewDefault()
//	if err != nil {
//		return err
//	}
//	attr, _, ok := dict.LookupAttributeByName("Mikrotik-Rate-Limit")
func NewDefault() (*dictionary.Dictionary, error) {
	dict := dictionary.New()

	if err := dict.AddStandardAttributes(StandardRFCAttributes); err != nil {
		return nil, err
	}

	vendors := []*dictionary.VendorDefinition{
		MicrosoftVendorDefinition,
		CiscoVendorDefinition,
		USRoboticsVendorDefinition,
		WISPrVendorDefinition,
		MikrotikVendorDefinition,
	}

	for _, vendor := range vendors {
		if err := dict.AddVendor(vendor); err != nil {
			return nil, err
		}
	}

	return dict, nil
}
