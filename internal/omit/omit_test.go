package omit

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOmitUnmarshal(t *testing.T) {
	var payload struct {
		Attended Omit[bool] `json:"attended"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"attended":true}`), &payload))
	assert.True(t, payload.Attended.OK)
	assert.True(t, payload.Attended.Value)

	payload.Attended = Omit[bool]{}
	require.NoError(t, json.Unmarshal([]byte(`{"attended":false}`), &payload))
	assert.True(t, payload.Attended.OK)
	assert.False(t, payload.Attended.Value)

	payload.Attended = Omit[bool]{}
	require.NoError(t, json.Unmarshal([]byte(`{"attended":null}`), &payload))
	assert.False(t, payload.Attended.OK)

	payload.Attended = Omit[bool]{}
	require.NoError(t, json.Unmarshal([]byte(`{}`), &payload))
	assert.False(t, payload.Attended.OK)
}

func TestOmitMarshal(t *testing.T) {
	data, err := json.Marshal(New(true))
	require.NoError(t, err)
	assert.Equal(t, "true", string(data))

	data, err = json.Marshal(NewZero[bool]())
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}
