package dictionary

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalvas/govsa/pkg/vsa"
)

func testVendor() *VendorDefinition {
	return &VendorDefinition{
		ID:   14988,
		Name: "Mikrotik",
		Attributes: []*AttributeDefinition{
			{ID: 1, Name: "Mikrotik-Recv-Limit", DataType: DataTypeInteger},
			{ID: 8, Name: "Mikrotik-Rate-Limit", DataType: DataTypeString},
		},
	}
}

func TestAddVendorAndLookup(t *testing.T) {
	dict := New()
	require.NoError(t, dict.AddVendor(testVendor()))

	vendor, exists := dict.LookupVendorByID(14988)
	require.True(t, exists)
	assert.Equal(t, "Mikrotik", vendor.Name)

	vendor, exists = dict.LookupVendorByName("Mikrotik")
	require.True(t, exists)
	assert.Equal(t, uint32(14988), vendor.ID)

	attr, exists := dict.LookupVendorAttributeByID(14988, 8)
	require.True(t, exists)
	assert.Equal(t, "Mikrotik-Rate-Limit", attr.Name)

	_, exists = dict.LookupVendorAttributeByID(14988, 99)
	assert.False(t, exists)

	_, exists = dict.LookupVendorAttributeByID(311, 1)
	assert.False(t, exists)
}

func TestAddVendorDuplicateID(t *testing.T) {
	dict := New()
	require.NoError(t, dict.AddVendor(testVendor()))

	err := dict.AddVendor(&VendorDefinition{
		ID:   14988,
		Name: "Somebody Else",
		Attributes: []*AttributeDefinition{
			{ID: 1, Name: "Other-Attr", DataType: DataTypeString},
		},
	})
	assert.ErrorContains(t, err, "vendor ID 14988 already defined")
}

func TestAddVendorDuplicateAttributeName(t *testing.T) {
	dict := New()
	require.NoError(t, dict.AddVendor(testVendor()))

	err := dict.AddVendor(&VendorDefinition{
		ID:   9,
		Name: "Cisco",
		Attributes: []*AttributeDefinition{
			{ID: 1, Name: "Mikrotik-Rate-Limit", DataType: DataTypeString},
		},
	})
	assert.ErrorContains(t, err, `duplicate attribute name "Mikrotik-Rate-Limit"`)
}

func TestAddStandardAttributes(t *testing.T) {
	dict := New()
	err := dict.AddStandardAttributes([]*AttributeDefinition{
		{ID: 1, Name: "User-Name", DataType: DataTypeString},
		{ID: 6, Name: "Service-Type", DataType: DataTypeInteger, Values: map[string]uint32{"Login": 1}},
	})
	require.NoError(t, err)

	attr, exists := dict.LookupStandardByID(6)
	require.True(t, exists)
	assert.Equal(t, "Service-Type", attr.Name)

	attr, exists = dict.LookupStandardByName("User-Name")
	require.True(t, exists)
	assert.Equal(t, uint32(1), attr.ID)
}

func TestAddStandardAttributesRejectsWideID(t *testing.T) {
	dict := New()
	err := dict.AddStandardAttributes([]*AttributeDefinition{
		{ID: 300, Name: "Too-Wide", DataType: DataTypeString},
	})
	assert.ErrorContains(t, err, "does not fit one octet")
}

func TestLookupAttributeByName(t *testing.T) {
	dict := New()
	require.NoError(t, dict.AddStandardAttributes([]*AttributeDefinition{
		{ID: 1, Name: "User-Name", DataType: DataTypeString},
	}))
	require.NoError(t, dict.AddVendor(testVendor()))

	attr, vendor, exists := dict.LookupAttributeByName("User-Name")
	require.True(t, exists)
	assert.Nil(t, vendor)
	assert.Equal(t, uint32(1), attr.ID)

	attr, vendor, exists = dict.LookupAttributeByName("Mikrotik-Recv-Limit")
	require.True(t, exists)
	require.NotNil(t, vendor)
	assert.Equal(t, uint32(14988), vendor.ID)
	assert.Equal(t, uint32(1), attr.ID)

	_, _, exists = dict.LookupAttributeByName("No-Such-Attr")
	assert.False(t, exists)
}

func TestVendorsOrdered(t *testing.T) {
	dict := New()
	require.NoError(t, dict.AddVendor(testVendor()))
	require.NoError(t, dict.AddVendor(&VendorDefinition{
		ID:   9,
		Name: "Cisco",
		Attributes: []*AttributeDefinition{
			{ID: 1, Name: "Cisco-AVPair", DataType: DataTypeString},
		},
	}))

	vendors := dict.Vendors()
	require.Len(t, vendors, 2)
	assert.Equal(t, uint32(9), vendors[0].ID)
	assert.Equal(t, uint32(14988), vendors[1].ID)
}

func TestMerge(t *testing.T) {
	dict := New()
	require.NoError(t, dict.AddVendor(testVendor()))

	other := New()
	require.NoError(t, other.AddVendor(&VendorDefinition{
		ID:     429,
		Name:   "USRobotics",
		Format: vsa.FormatType4Len0,
		Attributes: []*AttributeDefinition{
			{ID: 0x9013, Name: "USR-Syslog-Tap", DataType: DataTypeInteger},
		},
	}))
	require.NoError(t, other.AddStandardAttributes([]*AttributeDefinition{
		{ID: 1, Name: "User-Name", DataType: DataTypeString},
	}))

	require.NoError(t, dict.Merge(other))

	_, exists := dict.LookupVendorByID(429)
	assert.True(t, exists)
	_, exists = dict.LookupStandardByID(1)
	assert.True(t, exists)

	// Merging the same content again is a no-op.
	require.NoError(t, dict.Merge(other))
	assert.Len(t, dict.Vendors(), 2)
}

func TestMergeVendorConflict(t *testing.T) {
	dict := New()
	require.NoError(t, dict.AddVendor(testVendor()))

	other := New()
	require.NoError(t, other.AddVendor(&VendorDefinition{
		ID:   14988,
		Name: "NotMikrotik",
		Attributes: []*AttributeDefinition{
			{ID: 1, Name: "Other-Attr", DataType: DataTypeString},
		},
	}))

	err := dict.Merge(other)
	assert.ErrorContains(t, err, "vendor conflict")
}

func TestMergeStandardAttributeConflict(t *testing.T) {
	dict := New()
	require.NoError(t, dict.AddStandardAttributes([]*AttributeDefinition{
		{ID: 1, Name: "User-Name", DataType: DataTypeString},
	}))

	other := New()
	require.NoError(t, other.AddStandardAttributes([]*AttributeDefinition{
		{ID: 1, Name: "Not-User-Name", DataType: DataTypeString},
	}))

	err := dict.Merge(other)
	assert.ErrorContains(t, err, "attribute conflict")
}

func TestConcurrentLookups(t *testing.T) {
	dict := New()
	require.NoError(t, dict.AddVendor(testVendor()))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_, exists := dict.LookupVendorAttributeByID(14988, 8)
				assert.True(t, exists)
			}
		}()
	}
	wg.Wait()
}
