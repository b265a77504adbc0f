package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_AllFields(t *testing.T) {
	path := filepathWithContent(t, `{
		"signals": {
			"page_url": "https://communitynew.morphic.dev",
			"env": "local",
			"api_url": "http://localhost:5002",
			"disable_trial": true
		},
		"adapter": {
			"token": "json-token",
			"request_timeout": "1m"
		}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "https://communitynew.morphic.dev", cfg.Signals.PageURL)
	assert.Equal(t, "local", cfg.Signals.Env)
	assert.Equal(t, "http://localhost:5002", cfg.Signals.APIURL)
	assert.True(t, cfg.Signals.DisableTrial)
	assert.Equal(t, "json-token", cfg.Adapter.Token)
	assert.Equal(t, time.Minute, cfg.Adapter.RequestTimeout)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	path := filepathWithContent(t, `{"adapter": {"request_timeout": 2000000000}}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.Adapter.RequestTimeout)
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	path := filepathWithContent(t, `{"adapter": {"request_timeout": "later"}}`)

	_, err := parseJSON(path)
	assert.Error(t, err)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON("/nonexistent/config.json")
	assert.Error(t, err)
}

func TestDuration_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(data))
}

func filepathWithContent(t *testing.T, content string) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}
