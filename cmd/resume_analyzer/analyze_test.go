package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func TestMarshalResults_SingleObject(t *testing.T) {
	results := []*types.AnalysisResult{{Name: "Jane Doe", NoOfPages: 1}}

	out, err := marshalResults(results)
	require.NoError(t, err)

	var obj map[string]any
	require.NoError(t, json.Unmarshal(out, &obj))
	assert.Equal(t, "Jane Doe", obj["name"])
}

func TestMarshalResults_BatchArray(t *testing.T) {
	results := []*types.AnalysisResult{
		{Name: "Jane Doe", NoOfPages: 1},
		{Name: "John Smith", NoOfPages: 2},
	}

	out, err := marshalResults(results)
	require.NoError(t, err)

	var arr []map[string]any
	require.NoError(t, json.Unmarshal(out, &arr))
	require.Len(t, arr, 2)
	assert.Equal(t, "John Smith", arr[1]["name"])
}

func TestLoadAnalyzeConfig_Defaults(t *testing.T) {
	analyzeConfigFile = ""

	cfg, err := loadAnalyzeConfig()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 4, cfg.Concurrency)
}

func TestLoadAnalyzeConfig_FileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"concurrency": 8}`), 0644))

	analyzeConfigFile = path
	t.Cleanup(func() { analyzeConfigFile = "" })

	cfg, err := loadAnalyzeConfig()
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Concurrency)
	assert.Equal(t, 8080, cfg.Port)
}

func TestLoadAnalyzeConfig_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"port": -1}`), 0644))

	analyzeConfigFile = path
	t.Cleanup(func() { analyzeConfigFile = "" })

	_, err := loadAnalyzeConfig()
	assert.Error(t, err)
}
