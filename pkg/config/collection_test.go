package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getimpose/impose/pkg/imposter"
)

func TestLoadCollectionYAML(t *testing.T) {
	path := writeTempFile(t, "imposters.yaml", `
name: smoke
imposters:
  - port: 4545
    name: greeter
    recordRequests: true
    stubs:
      - predicates:
          - kind: equals
            fields:
              method: GET
              path: /greet
        responses:
          - statusCode: 200
            body: "Hello, Bob!"
          - statusCode: 200
            body: "Greetings, Bob!"
`)

	c, err := LoadCollection(path)
	require.NoError(t, err)
	assert.Equal(t, "smoke", c.Name)
	require.Len(t, c.Imposters, 1)

	cfg := c.Imposters[0]
	assert.Equal(t, 4545, cfg.Port)
	assert.True(t, cfg.RecordRequests)
	require.Len(t, cfg.Stubs, 1)
	assert.Equal(t, imposter.KindEquals, cfg.Stubs[0].Predicates[0].Kind)
	require.Len(t, cfg.Stubs[0].Responses, 2)
	assert.Equal(t, "Hello, Bob!", cfg.Stubs[0].Responses[0].Body)

	// The loaded configuration must build a valid imposter.
	_, err = imposter.New(cfg)
	assert.NoError(t, err)
}

func TestLoadCollectionJSON(t *testing.T) {
	path := writeTempFile(t, "imposters.json", `{
		"imposters": [{
			"port": 4546,
			"stubs": [{
				"responses": [{"statusCode": 503, "jsonBody": {"error": "down"}}]
			}]
		}]
	}`)

	c, err := LoadCollection(path)
	require.NoError(t, err)
	require.Len(t, c.Imposters, 1)
	assert.Equal(t, 4546, c.Imposters[0].Port)
}

func TestLoadCollectionErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadCollection(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, ErrFileNotFound)
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeTempFile(t, "empty.yaml", "")
		_, err := LoadCollection(path)
		assert.ErrorIs(t, err, ErrEmptyFile)
	})

	t.Run("bad JSON", func(t *testing.T) {
		path := writeTempFile(t, "bad.json", "{")
		_, err := LoadCollection(path)
		assert.ErrorIs(t, err, ErrInvalidJSON)
	})

	t.Run("bad YAML", func(t *testing.T) {
		path := writeTempFile(t, "bad.yaml", "imposters: [\n  - :")
		_, err := LoadCollection(path)
		assert.ErrorIs(t, err, ErrInvalidYAML)
	})

	t.Run("directory", func(t *testing.T) {
		_, err := LoadCollection(t.TempDir())
		assert.Error(t, err)
	})
}
