package metadata_test

import (
	"fmt"
	"testing"

	"github.com/OpenHUTB/carla-0.9.14/metadata"
	"github.com/OpenHUTB/carla-0.9.14/utils/randengine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// generate 生成一个资产有k个配置、一个路口按顺序引用全部配置的元数据
func generate(k int) *metadata.Metadata {
	asset := metadata.SignalAsset{ID: "asset", SignalConfigurations: make([]metadata.SignalConfiguration, 0)}
	intervals := make([]metadata.LightInterval, 0)
	for i := 0; i < k; i++ {
		asset.SignalConfigurations = append(asset.SignalConfigurations, metadata.SignalConfiguration{
			Name: fmt.Sprintf("cfg%d", i),
			LightBulbStates: []metadata.LightBulbState{
				{Name: fmt.Sprintf("Bulb%d", i), State: true},
				{Name: "Other", State: i%2 == 0},
			},
		})
		intervals = append(intervals, metadata.LightInterval{
			Time: 0.5 + float64(i),
			SignalStates: []metadata.SignalState{
				{ID: "signal", SignalAssetID: "asset", Configuration: i},
			},
		})
	}
	return &metadata.Metadata{
		Version:      metadata.PluginVersion,
		SignalAssets: map[string]metadata.SignalAsset{"asset": asset},
		Junctions: []metadata.Junction{
			{ID: "junction", SignalPhases: []metadata.SignalPhase{{Intervals: intervals}}},
		},
	}
}

func TestWriteRoundTripConfigurationIndices(t *testing.T) {
	r := randengine.New(7)
	for round := 0; round < 20; round++ {
		k := 1 + r.Intn(12)
		src := generate(k)
		for _, version := range []int{2, metadata.PluginVersion} {
			data, err := metadata.Write(src, version)
			require.NoError(t, err)
			m, err := metadata.Parse(data)
			require.NoError(t, err)
			assert.Equal(t, version, m.Version)
			assert.Equal(t, src.SignalAssets, m.SignalAssets)

			intervals := m.Junctions[0].SignalPhases[0].Intervals
			require.Len(t, intervals, k)
			for i, in := range intervals {
				assert.Equal(t, i, in.SignalStates[0].Configuration)
				assert.InDelta(t, 0.5+float64(i), in.Time, 1e-9)
			}
		}
	}
}

func TestWriteLayoutsParseIdentically(t *testing.T) {
	src, err := metadata.Parse(readTestdata(t, "signals_v4.rrdata.xml"))
	require.NoError(t, err)

	legacy, err := metadata.Write(src, 2)
	require.NoError(t, err)
	assert.Contains(t, string(legacy), "<SignalData>")
	assert.Contains(t, string(legacy), "<SignalAssets>")
	split, err := metadata.Write(src, 4)
	require.NoError(t, err)
	assert.Contains(t, string(split), "<SignalConfigurations>")
	assert.Contains(t, string(split), "<Signalization>")

	a, err := metadata.Parse(legacy)
	require.NoError(t, err)
	b, err := metadata.Parse(split)
	require.NoError(t, err)
	assert.Equal(t, a.SignalAssets, b.SignalAssets)
	assert.Equal(t, a.Junctions, b.Junctions)
	assert.Equal(t, src.Junctions, b.Junctions)
}

func TestWriteFragments(t *testing.T) {
	src := generate(3)
	data, err := metadata.WriteSignalAssets(src.SignalAssets)
	require.NoError(t, err)
	assets, err := metadata.ParseSignalAssets(data)
	require.NoError(t, err)
	assert.Equal(t, src.SignalAssets, assets)

	data, err = metadata.WriteSignalization(src.Junctions)
	require.NoError(t, err)
	junctions, err := metadata.ParseSignalization(data)
	require.NoError(t, err)
	assert.Equal(t, src.Junctions, junctions)
}

func TestOpenDrive(t *testing.T) {
	mapping, err := metadata.ParseOpenDrive(readTestdata(t, "signals.xodr"))
	require.NoError(t, err)
	assert.Equal(t, map[int]string{10: signal1, 20: signal2}, mapping)

	data, err := metadata.WriteOpenDrive(map[string]map[int]string{
		"7": {3: "a", 1: "b"},
	})
	require.NoError(t, err)
	mapping, err = metadata.ParseOpenDrive(data)
	require.NoError(t, err)
	assert.Equal(t, map[int]string{3: "a", 1: "b"}, mapping)

	_, err = metadata.ParseOpenDrive([]byte("<OpenDRIVE>"))
	assert.Error(t, err)
}
