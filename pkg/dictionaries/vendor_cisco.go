package dictionaries

import "github.com/vitalvas/govsa/pkg/dictionary"

// CiscoVendorDefinition defines common Cisco IOS attributes, including
// the free-form AVPair and the h323 voice accounting set. The lowercase
// h323 names follow Cisco's own dictionary spelling.
var CiscoVendorDefinition = &dictionary.VendorDefinition{
	ID:          9,
	Name:        "Cisco",
	Description: "Cisco IOS and voice gateway attributes",
	Attributes: []*dictionary.AttributeDefinition{
		{ID: 1, Name: "Cisco-AVPair", DataType: dictionary.DataTypeString},
		{ID: 2, Name: "Cisco-NAS-Port", DataType: dictionary.DataTypeString},
		{ID: 23, Name: "h323-remote-address", DataType: dictionary.DataTypeString},
		{ID: 24, Name: "h323-conf-id", DataType: dictionary.DataTypeString},
		{ID: 25, Name: "h323-setup-time", DataType: dictionary.DataTypeString},
		{ID: 26, Name: "h323-call-origin", DataType: dictionary.DataTypeString},
		{ID: 27, Name: "h323-call-type", DataType: dictionary.DataTypeString},
		{ID: 28, Name: "h323-connect-time", DataType: dictionary.DataTypeString},
		{ID: 29, Name: "h323-disconnect-time", DataType: dictionary.DataTypeString},
		{ID: 30, Name: "h323-disconnect-cause", DataType: dictionary.DataTypeString},
		{ID: 31, Name: "h323-voice-quality", DataType: dictionary.DataTypeString},
		{ID: 33, Name: "h323-gw-id", DataType: dictionary.DataTypeString},
		{ID: 250, Name: "Cisco-Account-Info", DataType: dictionary.DataTypeString},
		{ID: 251, Name: "Cisco-Service-Info", DataType: dictionary.DataTypeString},
	},
}
