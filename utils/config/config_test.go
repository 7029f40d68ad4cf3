package config_test

import (
	"testing"

	"github.com/OpenHUTB/carla-0.9.14/utils/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
input:
  uri: mongodb://localhost:27017
  metadata:
    file: data/town.rrdata.xml
  opendrive:
    db: roadrunner
    col: opendrive
    name: town
control:
  step:
    start: 0
    total: 100
    interval: 0.1
  import_mode: blueprint
  metrics: true
`

func TestLoad(t *testing.T) {
	c, err := config.Load([]byte(sample))
	require.NoError(t, err)
	assert.Equal(t, "data/town.rrdata.xml", c.Input.Metadata.File)
	assert.False(t, c.Input.Metadata.FromMongo())
	require.NotNil(t, c.Input.OpenDrive)
	assert.True(t, c.Input.OpenDrive.FromMongo())
	assert.Equal(t, "roadrunner.opendrive.town.pb", c.Input.OpenDrive.GetCachePath())
	assert.Equal(t, int32(100), c.Control.Step.Total)
	assert.Equal(t, "blueprint", c.Control.ImportMode)
	assert.True(t, c.Control.Metrics)

	rc := config.NewRuntimeConfig(c)
	assert.Equal(t, "blueprint", rc.C.ImportMode)
}

func TestLoadRejects(t *testing.T) {
	for name, data := range map[string]string{
		"unknown field": sample + "unknown: 1\n",
		"no metadata":   "control:\n  step:\n    interval: 0.1\n",
		"bad interval":  "input:\n  metadata:\n    file: a.xml\ncontrol:\n  step:\n    interval: 0\n",
		"bad mode":      "input:\n  metadata:\n    file: a.xml\ncontrol:\n  step:\n    interval: 1\n  import_mode: fbx\n",
		"bad opendrive": "input:\n  metadata:\n    file: a.xml\n  opendrive:\n    name: town\ncontrol:\n  step:\n    interval: 1\n",
	} {
		_, err := config.Load([]byte(data))
		assert.ErrorIs(t, err, config.ErrInvalidConfig, name)
	}
}

func TestRuntimeConfigDefaults(t *testing.T) {
	rc := config.NewRuntimeConfig(config.Config{})
	assert.Equal(t, "level", rc.C.ImportMode)
	assert.Equal(t, "town.pb", config.InputPath{Cache: "town.pb"}.GetCachePath())
	assert.Equal(t, "rr.md.first.pb", config.InputPath{DB: "rr", Col: "md"}.GetCachePath())

	p := config.InputPath{DB: "rr", Col: "md", OnlyCache: true}
	assert.True(t, p.FromMongo())
	assert.False(t, p.NeedConnection())
}
