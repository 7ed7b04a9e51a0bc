package dictionaries

import "github.com/vitalvas/govsa/pkg/dictionary"

// StandardRFCAttributes contains the standard attributes from RFC 2865,
// 2866, 2867, 2868 and 2869, plus the RFC 4675 VLAN set and RFC 4372.
// Vendor-Specific (26) is deliberately absent: it is assembled by the
// packet layer from vendor sub-attributes, never encoded by name.
var StandardRFCAttributes = []*dictionary.AttributeDefinition{
	// RFC 2865
	{ID: 1, Name: "User-Name", DataType: dictionary.DataTypeString},
	{ID: 2, Name: "User-Password", DataType: dictionary.DataTypeString, Encryption: dictionary.EncryptionUserPassword},
	{ID: 3, Name: "CHAP-Password", DataType: dictionary.DataTypeOctets},
	{ID: 4, Name: "NAS-IP-Address", DataType: dictionary.DataTypeIPAddr},
	{ID: 5, Name: "NAS-Port", DataType: dictionary.DataTypeInteger},
	{
		ID:       6,
		Name:     "Service-Type",
		DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{
			"Login-User":              1,
			"Framed-User":             2,
			"Callback-Login-User":     3,
			"Callback-Framed-User":    4,
			"Outbound-User":           5,
			"Administrative-User":     6,
			"NAS-Prompt-User":         7,
			"Authenticate-Only":       8,
			"Callback-NAS-Prompt":     9,
			"Call-Check":              10,
			"Callback-Administrative": 11,
			"Authorize-Only":          17,
			"Framed-Management":       18,
		},
	},
	{
		ID:       7,
		Name:     "Framed-Protocol",
		DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{
			"PPP":               1,
			"SLIP":              2,
			"ARAP":              3,
			"Gandalf-SLML":      4,
			"Xylogics-IPX-SLIP": 5,
			"X.75-Synchronous":  6,
		},
	},
	{ID: 8, Name: "Framed-IP-Address", DataType: dictionary.DataTypeIPAddr},
	{ID: 9, Name: "Framed-IP-Netmask", DataType: dictionary.DataTypeIPAddr},
	{
		ID:       10,
		Name:     "Framed-Routing",
		DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{
			"None":             0,
			"Broadcast":        1,
			"Listen":           2,
			"Broadcast-Listen": 3,
		},
	},
	{ID: 11, Name: "Filter-Id", DataType: dictionary.DataTypeString},
	{ID: 12, Name: "Framed-MTU", DataType: dictionary.DataTypeInteger},
	{
		ID:       13,
		Name:     "Framed-Compression",
		DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{
			"None":                   0,
			"Van-Jacobson-TCP-IP":    1,
			"IPX-Header-Compression": 2,
			"Stac-LZS":               3,
		},
	},
	{ID: 14, Name: "Login-IP-Host", DataType: dictionary.DataTypeIPAddr},
	{
		ID:       15,
		Name:     "Login-Service",
		DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{
			"Telnet":          0,
			"Rlogin":          1,
			"TCP-Clear":       2,
			"PortMaster":      3,
			"LAT":             4,
			"X25-PAD":         5,
			"X25-T3POS":       6,
			"TCP-Clear-Quiet": 8,
		},
	},
	{
		ID:       16,
		Name:     "Login-TCP-Port",
		DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{
			"Telnet": 23,
			"Rlogin": 513,
			"Rsh":    514,
		},
	},
	{ID: 18, Name: "Reply-Message", DataType: dictionary.DataTypeString},
	{ID: 19, Name: "Callback-Number", DataType: dictionary.DataTypeString},
	{ID: 20, Name: "Callback-Id", DataType: dictionary.DataTypeString},
	{ID: 22, Name: "Framed-Route", DataType: dictionary.DataTypeString},
	{ID: 23, Name: "Framed-IPX-Network", DataType: dictionary.DataTypeIPAddr},
	{ID: 24, Name: "State", DataType: dictionary.DataTypeOctets},
	{ID: 25, Name: "Class", DataType: dictionary.DataTypeOctets},
	{ID: 27, Name: "Session-Timeout", DataType: dictionary.DataTypeInteger},
	{ID: 28, Name: "Idle-Timeout", DataType: dictionary.DataTypeInteger},
	{
		ID:       29,
		Name:     "Termination-Action",
		DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{
			"Default":        0,
			"RADIUS-Request": 1,
		},
	},
	{ID: 30, Name: "Called-Station-Id", DataType: dictionary.DataTypeString},
	{ID: 31, Name: "Calling-Station-Id", DataType: dictionary.DataTypeString},
	{ID: 32, Name: "NAS-Identifier", DataType: dictionary.DataTypeString},
	{ID: 33, Name: "Proxy-State", DataType: dictionary.DataTypeOctets},
	{ID: 34, Name: "Login-LAT-Service", DataType: dictionary.DataTypeString},
	{ID: 35, Name: "Login-LAT-Node", DataType: dictionary.DataTypeString},
	{ID: 36, Name: "Login-LAT-Group", DataType: dictionary.DataTypeOctets},
	{ID: 37, Name: "Framed-AppleTalk-Link", DataType: dictionary.DataTypeInteger},
	{ID: 38, Name: "Framed-AppleTalk-Network", DataType: dictionary.DataTypeInteger},
	{ID: 39, Name: "Framed-AppleTalk-Zone", DataType: dictionary.DataTypeString},

	// RFC 2866
	{
		ID:       40,
		Name:     "Acct-Status-Type",
		DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{
			"Start":              1,
			"Stop":               2,
			"Alive":              3,
			"Interim-Update":     3,
			"Accounting-On":      7,
			"Accounting-Off":     8,
			"Tunnel-Start":       9,
			"Tunnel-Stop":        10,
			"Tunnel-Reject":      11,
			"Tunnel-Link-Start":  12,
			"Tunnel-Link-Stop":   13,
			"Tunnel-Link-Reject": 14,
			"Failed":             15,
		},
	},
	{ID: 41, Name: "Acct-Delay-Time", DataType: dictionary.DataTypeInteger},
	{ID: 42, Name: "Acct-Input-Octets", DataType: dictionary.DataTypeInteger},
	{ID: 43, Name: "Acct-Output-Octets", DataType: dictionary.DataTypeInteger},
	{ID: 44, Name: "Acct-Session-Id", DataType: dictionary.DataTypeString},
	{
		ID:       45,
		Name:     "Acct-Authentic",
		DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{
			"RADIUS":   1,
			"Local":    2,
			"Remote":   3,
			"Diameter": 4,
		},
	},
	{ID: 46, Name: "Acct-Session-Time", DataType: dictionary.DataTypeInteger},
	{ID: 47, Name: "Acct-Input-Packets", DataType: dictionary.DataTypeInteger},
	{ID: 48, Name: "Acct-Output-Packets", DataType: dictionary.DataTypeInteger},
	{
		ID:       49,
		Name:     "Acct-Terminate-Cause",
		DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{
			"User-Request":             1,
			"Lost-Carrier":             2,
			"Lost-Service":             3,
			"Idle-Timeout":             4,
			"Session-Timeout":          5,
			"Admin-Reset":              6,
			"Admin-Reboot":             7,
			"Port-Error":               8,
			"NAS-Error":                9,
			"NAS-Request":              10,
			"NAS-Reboot":               11,
			"Port-Unneeded":            12,
			"Port-Preempted":           13,
			"Port-Suspended":           14,
			"Service-Unavailable":      15,
			"Callback":                 16,
			"User-Error":               17,
			"Host-Request":             18,
			"Supplicant-Restart":       19,
			"Reauthentication-Failure": 20,
			"Port-Reinit":              21,
			"Port-Disabled":            22,
		},
	},
	{ID: 50, Name: "Acct-Multi-Session-Id", DataType: dictionary.DataTypeString},
	{ID: 51, Name: "Acct-Link-Count", DataType: dictionary.DataTypeInteger},
	{ID: 52, Name: "Acct-Input-Gigawords", DataType: dictionary.DataTypeInteger},  // RFC 2869
	{ID: 53, Name: "Acct-Output-Gigawords", DataType: dictionary.DataTypeInteger}, // RFC 2869
	{ID: 55, Name: "Event-Timestamp", DataType: dictionary.DataTypeDate},          // RFC 2869

	// RFC 4675
	{ID: 56, Name: "Egress-VLANID", DataType: dictionary.DataTypeInteger},
	{
		ID:       57,
		Name:     "Ingress-Filters",
		DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{
			"Enabled":  1,
			"Disabled": 2,
		},
	},
	{ID: 58, Name: "Egress-VLAN-Name", DataType: dictionary.DataTypeString},
	{ID: 59, Name: "User-Priority-Table", DataType: dictionary.DataTypeOctets},

	// RFC 2865
	{ID: 60, Name: "CHAP-Challenge", DataType: dictionary.DataTypeOctets},
	{
		ID:       61,
		Name:     "NAS-Port-Type",
		DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{
			"Async":              0,
			"Sync":               1,
			"ISDN":               2,
			"ISDN-V120":          3,
			"ISDN-V110":          4,
			"Virtual":            5,
			"PIAFS":              6,
			"HDLC-Clear-Channel": 7,
			"X.25":               8,
			"X.75":               9,
			"G.3-Fax":            10,
			"SDSL":               11,
			"ADSL-CAP":           12,
			"ADSL-DMT":           13,
			"IDSL":               14,
			"Ethernet":           15,
			"xDSL":               16,
			"Cable":              17,
			"Wireless-Other":     18,
			"Wireless-802.11":    19,
			"Token-Ring":         20,
			"FDDI":               21,
			"PPPoA":              30,
			"PPPoEoA":            31,
			"PPPoEoE":            32,
			"PPPoEoVLAN":         33,
			"PPPoEoQinQ":         34,
		},
	},
	{ID: 62, Name: "Port-Limit", DataType: dictionary.DataTypeInteger},
	{ID: 63, Name: "Login-LAT-Port", DataType: dictionary.DataTypeString},

	// RFC 2868
	{
		ID:       64,
		Name:     "Tunnel-Type",
		DataType: dictionary.DataTypeInteger,
		HasTag:   true,
		Values: map[string]uint32{
			"PPTP":     1,
			"L2F":      2,
			"L2TP":     3,
			"ATMP":     4,
			"VTP":      5,
			"AH":       6,
			"IP":       7,
			"MIN-IP":   8,
			"ESP":      9,
			"GRE":      10,
			"DVS":      11,
			"IP-in-IP": 12,
			"VLAN":     13,
		},
	},
	{
		ID:       65,
		Name:     "Tunnel-Medium-Type",
		DataType: dictionary.DataTypeInteger,
		HasTag:   true,
		Values: map[string]uint32{
			"IP":           1,
			"IPv4":         1,
			"IPv6":         2,
			"NSAP":         3,
			"HDLC":         4,
			"BBN-1822":     5,
			"IEEE-802":     6,
			"E.163":        7,
			"E.164":        8,
			"F.69":         9,
			"X.121":        10,
			"IPX":          11,
			"Appletalk":    12,
			"DecNet-IV":    13,
			"Banyan-Vines": 14,
			"E.164-NSAP":   15,
		},
	},
	{ID: 66, Name: "Tunnel-Client-Endpoint", DataType: dictionary.DataTypeString, HasTag: true},
	{ID: 67, Name: "Tunnel-Server-Endpoint", DataType: dictionary.DataTypeString, HasTag: true},
	{ID: 68, Name: "Acct-Tunnel-Connection", DataType: dictionary.DataTypeString}, // RFC 2867
	{ID: 69, Name: "Tunnel-Password", DataType: dictionary.DataTypeString, HasTag: true, Encryption: dictionary.EncryptionTunnelPassword},

	// RFC 2869
	{ID: 70, Name: "ARAP-Password", DataType: dictionary.DataTypeOctets},
	{ID: 71, Name: "ARAP-Features", DataType: dictionary.DataTypeOctets},
	{
		ID:       72,
		Name:     "ARAP-Zone-Access",
		DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{
			"Default-Zone":          1,
			"Zone-Filter-Inclusive": 2,
			"Zone-Filter-Exclusive": 4,
		},
	},
	{ID: 73, Name: "ARAP-Security", DataType: dictionary.DataTypeInteger},
	{ID: 74, Name: "ARAP-Security-Data", DataType: dictionary.DataTypeString},
	{ID: 75, Name: "Password-Retry", DataType: dictionary.DataTypeInteger},
	{
		ID:       76,
		Name:     "Prompt",
		DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{
			"No-Echo": 0,
			"Echo":    1,
		},
	},
	{ID: 77, Name: "Connect-Info", DataType: dictionary.DataTypeString},
	{ID: 78, Name: "Configuration-Token", DataType: dictionary.DataTypeString},
	{ID: 79, Name: "EAP-Message", DataType: dictionary.DataTypeOctets},
	{ID: 80, Name: "Message-Authenticator", DataType: dictionary.DataTypeOctets},

	// RFC 2868
	{ID: 81, Name: "Tunnel-Private-Group-Id", DataType: dictionary.DataTypeString, HasTag: true},
	{ID: 82, Name: "Tunnel-Assignment-Id", DataType: dictionary.DataTypeString, HasTag: true},
	{ID: 83, Name: "Tunnel-Preference", DataType: dictionary.DataTypeInteger, HasTag: true},

	// RFC 2869
	{ID: 84, Name: "ARAP-Challenge-Response", DataType: dictionary.DataTypeOctets},
	{ID: 85, Name: "Acct-Interim-Interval", DataType: dictionary.DataTypeInteger},
	{ID: 86, Name: "Acct-Tunnel-Packets-Lost", DataType: dictionary.DataTypeInteger}, // RFC 2867
	{ID: 87, Name: "NAS-Port-Id", DataType: dictionary.DataTypeString},
	{ID: 88, Name: "Framed-Pool", DataType: dictionary.DataTypeString},
	{ID: 89, Name: "Chargeable-User-Identity", DataType: dictionary.DataTypeOctets}, // RFC 4372

	// RFC 2868
	{ID: 90, Name: "Tunnel-Client-Auth-Id", DataType: dictionary.DataTypeString, HasTag: true},
	{ID: 91, Name: "Tunnel-Server-Auth-Id", DataType: dictionary.DataTypeString, HasTag: true},
}
