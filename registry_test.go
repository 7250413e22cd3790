package rct

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEntries() []*ObjectInfo {
	return []*ObjectInfo{
		{
			ObjectID: 0x959930BF, Name: "battery.soc", Group: GroupBattery,
			RequestDataType: DataTypeFloat, ResponseDataType: DataTypeFloat,
		},
		{
			ObjectID: 0xA7FA5C5D, Name: "battery.voltage", Group: GroupBattery,
			RequestDataType: DataTypeFloat, ResponseDataType: DataTypeFloat,
		},
	}
}

func TestRegistryLookup(t *testing.T) {
	r, err := NewRegistry(testEntries()...)
	require.NoError(t, err)
	require.Equal(t, 2, r.Len())

	byID, err := r.ByID(0x959930BF)
	require.NoError(t, err)
	assert.Equal(t, "battery.soc", byID.Name)

	byName, err := r.ByName("battery.voltage")
	require.NoError(t, err)
	assert.Equal(t, uint32(0xA7FA5C5D), byName.ObjectID)
}

func TestRegistryMiss(t *testing.T) {
	r, err := NewRegistry(testEntries()...)
	require.NoError(t, err)

	_, err = r.ByID(0xDEADBEEF)
	assert.True(t, IsErrLookup(err), "got %v", err)
	assert.Contains(t, err.Error(), "0xDEADBEEF")

	_, err = r.ByName("battery.bogus")
	assert.True(t, IsErrLookup(err), "got %v", err)
}

func TestRegistryDuplicateID(t *testing.T) {
	entries := testEntries()
	entries[1].ObjectID = entries[0].ObjectID
	_, err := NewRegistry(entries...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate object id")
}

func TestRegistryDuplicateName(t *testing.T) {
	entries := testEntries()
	entries[1].Name = entries[0].Name
	_, err := NewRegistry(entries...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate object name")
}

// Every catalog entry must be reachable through both indexes.
func TestDefaultRegistryConsistency(t *testing.T) {
	r := DefaultRegistry()
	require.Equal(t, len(builtinObjects), r.Len())

	for _, entry := range r.All() {
		byID, err := r.ByID(entry.ObjectID)
		require.NoError(t, err)
		assert.Same(t, entry, byID)

		byName, err := r.ByName(entry.Name)
		require.NoError(t, err)
		assert.Same(t, entry, byName)
	}
}

// Simulation values must encode as the entry's response type, otherwise the
// simulator would serve garbage.
func TestDefaultRegistrySimData(t *testing.T) {
	for _, entry := range DefaultRegistry().All() {
		if entry.SimData == nil {
			continue
		}
		_, err := EncodeValue(entry.ResponseDataType, entry.SimData)
		assert.NoError(t, err, "%s", entry.Name)
	}
}

func TestEnumLabel(t *testing.T) {
	entry, err := DefaultRegistry().ByName("power_mng.soc_strategy")
	require.NoError(t, err)
	assert.Equal(t, "SOC_TARGET", entry.EnumLabel(0))
	assert.Equal(t, "42", entry.EnumLabel(42))
}
