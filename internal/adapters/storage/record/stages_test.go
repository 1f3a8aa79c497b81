package record_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen11/gantt-dashboard/internal/adapters/storage/record"
)

func TestStageMap_JSONKeepsOrder(t *testing.T) {
	t.Parallel()

	in := []byte(`{"Zeta":"#000001","Alpha":"#000002","Mid":"#000003"}`)

	var m record.StageMap
	require.NoError(t, json.Unmarshal(in, &m))
	assert.Equal(t, record.StageMap{
		{Name: "Zeta", Color: "#000001"},
		{Name: "Alpha", Color: "#000002"},
		{Name: "Mid", Color: "#000003"},
	}, m)

	out, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, string(in), string(out))
	assert.Equal(t, string(in), string(out))
}

func TestStageMap_JSONDuplicateKeyOverwritesInPlace(t *testing.T) {
	t.Parallel()

	var m record.StageMap
	require.NoError(t, json.Unmarshal([]byte(`{"A":"#111111","B":"#222222","A":"#333333"}`), &m))
	assert.Equal(t, record.StageMap{
		{Name: "A", Color: "#333333"},
		{Name: "B", Color: "#222222"},
	}, m)
}

func TestStageMap_JSONRejectsNonObject(t *testing.T) {
	t.Parallel()

	for _, in := range []string{`[]`, `"x"`, `{"A":1}`} {
		var m record.StageMap
		assert.Error(t, json.Unmarshal([]byte(in), &m), "input %s", in)
	}
}

func TestStageMap_YAMLKeepsOrder(t *testing.T) {
	t.Parallel()

	type doc struct {
		Stages record.StageMap `yaml:"stages"`
	}

	in := doc{Stages: record.StageMap{
		{Name: "Zeta", Color: "#000001"},
		{Name: "Alpha", Color: "#000002"},
	}}

	out, err := yaml.Marshal(in)
	require.NoError(t, err)
	assert.Less(t, indexOf(string(out), "Zeta"), indexOf(string(out), "Alpha"))

	var back doc
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, in, back)
}

func TestStageMap_YAMLRejectsSequence(t *testing.T) {
	t.Parallel()

	var out struct {
		Stages record.StageMap `yaml:"stages"`
	}
	assert.Error(t, yaml.Unmarshal([]byte("stages:\n  - a\n  - b\n"), &out))
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}
