package dictionaries

import (
	"github.com/vitalvas/govsa/pkg/dictionary"
	"github.com/vitalvas/govsa/pkg/vsa"
)

// USRoboticsVendorDefinition defines a common subset of the US Robotics
// vendor attributes. USR equipment uses a non-standard sub-attribute
// layout with a four-octet type code and no length octet, so most type
// codes do not fit a single octet.
var USRoboticsVendorDefinition = &dictionary.VendorDefinition{
	ID:          429,
	Name:        "USRobotics",
	Description: "US Robotics and 3Com Total Control attributes",
	Format:      vsa.FormatType4Len0,
	Attributes: []*dictionary.AttributeDefinition{
		{ID: 0x0066, Name: "USR-Last-Number-Dialed-Out", DataType: dictionary.DataTypeString},
		{ID: 0x00E8, Name: "USR-Last-Number-Dialed-In-DNIS", DataType: dictionary.DataTypeString},
		{ID: 0x00E9, Name: "USR-Last-Callers-Number-ANI", DataType: dictionary.DataTypeString},
		{ID: 0x900F, Name: "USR-Primary-DNS-Server", DataType: dictionary.DataTypeIPAddr},
		{ID: 0x9010, Name: "USR-Secondary-DNS-Server", DataType: dictionary.DataTypeIPAddr},
		{ID: 0x9011, Name: "USR-Primary-NBNS-Server", DataType: dictionary.DataTypeIPAddr},
		{ID: 0x9012, Name: "USR-Secondary-NBNS-Server", DataType: dictionary.DataTypeIPAddr},
		{
			ID:       0x9013,
			Name:     "USR-Syslog-Tap",
			DataType: dictionary.DataTypeInteger,
			Values: map[string]uint32{
				"Off": 0,
				"Raw": 1,
			},
		},
		{ID: 0xBF38, Name: "USR-Channel", DataType: dictionary.DataTypeInteger},
		{ID: 0xBFBE, Name: "USR-Event-Id", DataType: dictionary.DataTypeInteger},
	},
}
