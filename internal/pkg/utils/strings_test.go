package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringList_UnmarshalAcceptsStringOrList(t *testing.T) {
	var body struct {
		JobTitle StringList `json:"job_title"`
		Cities   StringList `json:"cities"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"job_title":"Go Developer","cities":["Pune"," Mumbai ",""]}`), &body))
	assert.Equal(t, StringList{"Go Developer"}, body.JobTitle)
	assert.Equal(t, StringList{"Pune", "Mumbai"}, body.Cities)

	assert.Error(t, json.Unmarshal([]byte(`{"job_title":42}`), &body))
}

func TestStringList_ScanValue(t *testing.T) {
	v, err := StringList{"a", "b"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["a","b"]`, v)

	var l StringList
	require.NoError(t, l.Scan([]byte(`["x"]`)))
	assert.Equal(t, StringList{"x"}, l)

	require.NoError(t, l.Scan("legacy, csv"))
	assert.Equal(t, StringList{"legacy", "csv"}, l)

	require.NoError(t, l.Scan(nil))
	assert.Empty(t, l)
}

func TestStringList_MarshalNil(t *testing.T) {
	data, err := json.Marshal(struct {
		Media StringList `json:"media"`
	}{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"media":[]}`, string(data))
}

func TestAbsoluteURL(t *testing.T) {
	assert.Equal(t, "http://api.test/uploads/a.png", AbsoluteURL("http://api.test/", "/uploads/a.png"))
	assert.Equal(t, "https://cdn.test/x.png", AbsoluteURL("http://api.test", "https://cdn.test/x.png"))
	assert.Empty(t, AbsoluteURL("http://api.test", ""))
}
