package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsedPartListUnmarshalVariants(t *testing.T) {
	var parts UsedPartList
	err := json.Unmarshal([]byte(`[5, {"part_id": 3, "quantity": 2}, {"partId": 7}]`), &parts)
	require.NoError(t, err)

	require.Len(t, parts, 3)
	assert.Equal(t, UsedPart{PartID: 5, Quantity: 1}, parts[0])
	assert.Equal(t, UsedPart{PartID: 3, Quantity: 2}, parts[1])
	assert.Equal(t, UsedPart{PartID: 7, Quantity: 1}, parts[2])
}

func TestUsedPartListRoundTrip(t *testing.T) {
	parts := UsedPartList{{PartID: 3, Quantity: 2}}

	raw, err := parts.Value()
	require.NoError(t, err)

	var scanned UsedPartList
	require.NoError(t, scanned.Scan(raw))
	assert.Equal(t, parts, scanned)
}

func TestScanJSONHandlesEmptyColumn(t *testing.T) {
	var services Int64List
	require.NoError(t, services.Scan(nil))
	assert.Nil(t, services)

	require.NoError(t, services.Scan(""))
	assert.Nil(t, services)

	require.NoError(t, services.Scan(`[1, 2]`))
	assert.Equal(t, Int64List{1, 2}, services)
}

func TestNilListsStoreAsEmptyArrays(t *testing.T) {
	var names StringList
	raw, err := names.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(raw.([]byte)))
}
