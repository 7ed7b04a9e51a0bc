package dictionaries

import "github.com/vitalvas/govsa/pkg/dictionary"

// MicrosoftVendorDefinition defines the Microsoft vendor attributes from
// RFC 2548. The MPPE key attributes are scrambled with the shared secret
// on the wire, which the encryption marks record.
var MicrosoftVendorDefinition = &dictionary.VendorDefinition{
	ID:          311,
	Name:        "Microsoft",
	Description: "Microsoft PPP and MPPE attributes (RFC 2548)",
	Attributes: []*dictionary.AttributeDefinition{
		{ID: 1, Name: "MS-CHAP-Response", DataType: dictionary.DataTypeOctets},
		{ID: 2, Name: "MS-CHAP-Error", DataType: dictionary.DataTypeString},
		{ID: 3, Name: "MS-CHAP-CPW-1", DataType: dictionary.DataTypeOctets},
		{ID: 4, Name: "MS-CHAP-CPW-2", DataType: dictionary.DataTypeOctets},
		{ID: 5, Name: "MS-CHAP-LM-Enc-PW", DataType: dictionary.DataTypeOctets},
		{ID: 6, Name: "MS-CHAP-NT-Enc-PW", DataType: dictionary.DataTypeOctets},
		{
			ID:       7,
			Name:     "MS-MPPE-Encryption-Policy",
			DataType: dictionary.DataTypeInteger,
			Values: map[string]uint32{
				"Encryption-Allowed":  1,
				"Encryption-Required": 2,
			},
		},
		{
			ID:       8,
			Name:     "MS-MPPE-Encryption-Types",
			DataType: dictionary.DataTypeInteger,
			Values: map[string]uint32{
				"RC4-40bit-Allowed":       1,
				"RC4-128bit-Allowed":      2,
				"RC4-40or128-bit-Allowed": 6,
			},
		},
		{ID: 9, Name: "MS-RAS-Vendor", DataType: dictionary.DataTypeInteger},
		{ID: 10, Name: "MS-CHAP-Domain", DataType: dictionary.DataTypeString},
		{ID: 11, Name: "MS-CHAP-Challenge", DataType: dictionary.DataTypeOctets},
		{ID: 12, Name: "MS-CHAP-MPPE-Keys", DataType: dictionary.DataTypeOctets, Encryption: dictionary.EncryptionUserPassword},
		{
			ID:       13,
			Name:     "MS-BAP-Usage",
			DataType: dictionary.DataTypeInteger,
			Values: map[string]uint32{
				"Not-Allowed": 0,
				"Allowed":     1,
				"Required":    2,
			},
		},
		{ID: 14, Name: "MS-Link-Utilization-Threshold", DataType: dictionary.DataTypeInteger},
		{ID: 15, Name: "MS-Link-Drop-Time-Limit", DataType: dictionary.DataTypeInteger},
		{ID: 16, Name: "MS-MPPE-Send-Key", DataType: dictionary.DataTypeOctets, Encryption: dictionary.EncryptionTunnelPassword},
		{ID: 17, Name: "MS-MPPE-Recv-Key", DataType: dictionary.DataTypeOctets, Encryption: dictionary.EncryptionTunnelPassword},
		{ID: 18, Name: "MS-RAS-Version", DataType: dictionary.DataTypeString},
		{ID: 19, Name: "MS-Old-ARAP-Password", DataType: dictionary.DataTypeOctets},
		{ID: 20, Name: "MS-New-ARAP-Password", DataType: dictionary.DataTypeOctets},
		{
			ID:       21,
			Name:     "MS-ARAP-PW-Change-Reason",
			DataType: dictionary.DataTypeInteger,
			Values: map[string]uint32{
				"Just-Changed-Password":          1,
				"Expired-Password":               2,
				"Admin-Requires-Password-Change": 3,
				"Password-Too-Short":             4,
			},
		},
		{ID: 22, Name: "MS-Filter", DataType: dictionary.DataTypeOctets},
		{
			ID:       23,
			Name:     "MS-Acct-Auth-Type",
			DataType: dictionary.DataTypeInteger,
			Values: map[string]uint32{
				"PAP":       1,
				"CHAP":      2,
				"MS-CHAP-1": 3,
				"MS-CHAP-2": 4,
				"EAP":       5,
			},
		},
		{
			ID:       24,
			Name:     "MS-Acct-EAP-Type",
			DataType: dictionary.DataTypeInteger,
			Values: map[string]uint32{
				"MD5":                4,
				"OTP":                5,
				"Generic-Token-Card": 6,
				"TLS":                13,
			},
		},
		{ID: 25, Name: "MS-CHAP2-Response", DataType: dictionary.DataTypeOctets},
		{ID: 26, Name: "MS-CHAP2-Success", DataType: dictionary.DataTypeOctets},
		{ID: 27, Name: "MS-CHAP2-CPW", DataType: dictionary.DataTypeOctets},
		{ID: 28, Name: "MS-Primary-DNS-Server", DataType: dictionary.DataTypeIPAddr},
		{ID: 29, Name: "MS-Secondary-DNS-Server", DataType: dictionary.DataTypeIPAddr},
		{ID: 30, Name: "MS-Primary-NBNS-Server", DataType: dictionary.DataTypeIPAddr},
		{ID: 31, Name: "MS-Secondary-NBNS-Server", DataType: dictionary.DataTypeIPAddr},
		{ID: 32, Name: "MS-ARAP-Challenge", DataType: dictionary.DataTypeOctets},
	},
}
