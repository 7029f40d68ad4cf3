package metadata_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/OpenHUTB/carla-0.9.14/metadata"
	"github.com/OpenHUTB/carla-0.9.14/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	assetID   = "{aaaaaaaa-0000-0000-0000-000000000001}"
	junction1 = "{bbbbbbbb-0000-0000-0000-000000000001}"
	junction2 = "{bbbbbbbb-0000-0000-0000-000000000002}"
	signal1   = "{11111111-1111-1111-1111-111111111111}"
	signal2   = "{22222222-2222-2222-2222-222222222222}"
)

func readTestdata(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return data
}

func TestParseSplitLayout(t *testing.T) {
	m, err := metadata.Parse(readTestdata(t, "signals_v4.rrdata.xml"))
	require.NoError(t, err)
	assert.Equal(t, 4, m.Version)
	assert.False(t, m.OutOfDate())

	require.Contains(t, m.SignalAssets, assetID)
	asset := m.SignalAssets[assetID]
	require.Len(t, asset.SignalConfigurations, 3)
	assert.Equal(t, []string{"Red", "Yellow", "Green"}, []string{
		asset.SignalConfigurations[0].Name,
		asset.SignalConfigurations[1].Name,
		asset.SignalConfigurations[2].Name,
	})
	assert.Equal(t, metadata.LightBulbState{Name: "Red", State: true}, asset.SignalConfigurations[0].LightBulbStates[0])
	// 只有字面量"true"为真
	assert.Equal(t, metadata.LightBulbState{Name: "Green", State: false}, asset.SignalConfigurations[2].LightBulbStates[2])

	require.Len(t, m.Junctions, 2)
	j := m.Junctions[0]
	assert.Equal(t, junction1, j.ID)
	require.Len(t, j.SignalPhases, 2)
	assert.InDelta(t, 5.0, j.SignalPhases[0].Intervals[0].Time, 1e-9)
	assert.InDelta(t, 3.0, j.SignalPhases[1].Intervals[0].Time, 1e-9)
	assert.InDelta(t, 8.0, j.CycleTime(), 1e-9)
	assert.True(t, j.HasPhases())
	assert.Equal(t, []string{signal1, signal2}, j.SignalIDs())

	first := j.SignalPhases[0].Intervals[0].SignalStates[0]
	assert.Equal(t, signal1, first.ID)
	assert.Equal(t, assetID, first.SignalAssetID)
	assert.Equal(t, 2, first.Configuration)
	assert.Empty(t, first.LightInstanceStates)

	assert.Equal(t, junction2, m.Junctions[1].ID)
	assert.False(t, m.Junctions[1].HasPhases())
	assert.Empty(t, m.Junctions[1].SignalIDs())

	assert.Equal(t, map[string]string{signal1: assetID, signal2: assetID}, m.SignalToAsset())
}

func TestParseLegacyLayoutEquivalent(t *testing.T) {
	v2, err := metadata.Parse(readTestdata(t, "signals_v2.rrdata.xml"))
	require.NoError(t, err)
	v4, err := metadata.Parse(readTestdata(t, "signals_v4.rrdata.xml"))
	require.NoError(t, err)
	assert.Equal(t, 2, v2.Version)
	assert.Equal(t, v4.SignalAssets, v2.SignalAssets)
	assert.Equal(t, v4.Junctions, v2.Junctions)
}

func TestParseMalformed(t *testing.T) {
	cases := map[string]string{
		"invalid xml":          `<RoadRunnerMetadata Version="4"><SignalConfigurations>`,
		"empty":                ``,
		"missing assets v4":    `<RoadRunnerMetadata Version="4"><Signalization/></RoadRunnerMetadata>`,
		"missing junctions v4": `<RoadRunnerMetadata Version="4"><SignalConfigurations/></RoadRunnerMetadata>`,
		"missing data v2":      `<RoadRunnerMetadata Version="2"><SignalConfigurations/><Signalization/></RoadRunnerMetadata>`,
		"missing assets v2":    `<RoadRunnerMetadata Version="2"><SignalData><Junction/></SignalData></RoadRunnerMetadata>`,
		"no version is legacy": `<RoadRunnerMetadata><SignalConfigurations/><Signalization/></RoadRunnerMetadata>`,
	}
	for name, doc := range cases {
		_, err := metadata.Parse([]byte(doc))
		assert.ErrorIs(t, err, metadata.ErrMalformedMetadata, name)
	}
}

func TestParseIgnoresUnknownTags(t *testing.T) {
	doc := `<RoadRunnerMetadata Version="5">
  <SignalConfigurations>
    <Signal>
      <ID>A</ID>
      <Description>new field</Description>
      <Configuration><Name>Only</Name><Color>red</Color></Configuration>
    </Signal>
    <Sign><ID>ignored</ID></Sign>
  </SignalConfigurations>
  <Signalization>
    <Junction><ID>J</ID><Controller>x</Controller>
      <SignalPhase><Name>ns</Name><Interval><Time>bad</Time><Signal><ID>S</ID><SignalAsset>A</SignalAsset><ConfigurationIndex>oops</ConfigurationIndex></Signal></Interval></SignalPhase>
    </Junction>
    <junction><ID>lowercase is not a junction</ID></junction>
  </Signalization>
</RoadRunnerMetadata>`
	m, err := metadata.Parse([]byte(doc))
	require.NoError(t, err)
	assert.True(t, m.OutOfDate())
	assert.Len(t, m.SignalAssets, 1)
	assert.Len(t, m.SignalAssets["A"].SignalConfigurations, 1)
	require.Len(t, m.Junctions, 1)
	in := m.Junctions[0].SignalPhases[0].Intervals[0]
	assert.Equal(t, 0.0, in.Time)
	assert.Equal(t, 0, in.SignalStates[0].Configuration)
}

func signalNode() *scene.Node {
	root := scene.NewNode("SignalRoot")
	root.AddChild(scene.NodeInfo{Name: "Red_1LampNode_0"})
	housing := root.AddChild(scene.NodeInfo{Name: "Housing"})
	housing.AddChild(scene.NodeInfo{Name: "YellowNode"})
	root.AddChild(scene.NodeInfo{Name: "Green_2Node_0"})
	return root
}

func TestParseWithComponentIndex(t *testing.T) {
	index := map[string]*scene.Node{signal1: signalNode()}
	m, err := metadata.Parse(readTestdata(t, "signals_v4.rrdata.xml"), metadata.WithComponentIndex(index))
	require.NoError(t, err)

	states := m.Junctions[0].SignalPhases[0].Intervals[0].SignalStates
	// signal1处于配置2（Green）
	require.Len(t, states[0].LightInstanceStates, 3)
	assert.Equal(t, "Red_1LampNode_0", states[0].LightInstanceStates[0].ComponentName)
	assert.Equal(t, "YellowNode", states[0].LightInstanceStates[1].ComponentName)
	assert.Equal(t, "Green_2Node_0", states[0].LightInstanceStates[2].ComponentName)
	assert.Equal(t, "Green_2Node_0", states[0].LightInstanceStates[2].Ref.Component)
	// signal2不在索引中：保留简略信号状态
	assert.Equal(t, signal2, states[1].ID)
	assert.Empty(t, states[1].LightInstanceStates)

	// 编辑器规则不允许前缀与Node之间有其他字符
	m, err = metadata.Parse(readTestdata(t, "signals_v4.rrdata.xml"),
		metadata.WithComponentIndex(index), metadata.WithPattern(metadata.PatternEditor))
	require.NoError(t, err)
	states = m.Junctions[0].SignalPhases[0].Intervals[0].SignalStates
	assert.Equal(t, "", states[0].LightInstanceStates[0].ComponentName)
	assert.Equal(t, "YellowNode", states[0].LightInstanceStates[1].ComponentName)
}

func TestParseBadReferencesIsolated(t *testing.T) {
	doc := `<RoadRunnerMetadata Version="4">
  <SignalConfigurations>
    <Signal><ID>A</ID><Configuration><Name>On</Name><LightState><Name>Green</Name><State>true</State></LightState></Configuration></Signal>
  </SignalConfigurations>
  <Signalization>
    <Junction><ID>J</ID><SignalPhase><Interval><Time>1</Time>
      <Signal><ID>S1</ID><SignalAsset>missing</SignalAsset><ConfigurationIndex>0</ConfigurationIndex></Signal>
      <Signal><ID>S1</ID><SignalAsset>A</SignalAsset><ConfigurationIndex>7</ConfigurationIndex></Signal>
      <Signal><ID>S1</ID><SignalAsset>A</SignalAsset><ConfigurationIndex>-1</ConfigurationIndex></Signal>
      <Signal><ID>S1</ID><SignalAsset>A</SignalAsset><ConfigurationIndex>0</ConfigurationIndex></Signal>
    </Interval></SignalPhase></Junction>
  </Signalization>
</RoadRunnerMetadata>`
	index := map[string]*scene.Node{"S1": signalNode()}
	m, err := metadata.Parse([]byte(doc), metadata.WithComponentIndex(index))
	require.NoError(t, err)
	states := m.Junctions[0].SignalPhases[0].Intervals[0].SignalStates
	require.Len(t, states, 4)
	assert.Empty(t, states[0].LightInstanceStates)
	assert.Empty(t, states[1].LightInstanceStates)
	assert.Equal(t, 7, states[1].Configuration)
	assert.Empty(t, states[2].LightInstanceStates)
	require.Len(t, states[3].LightInstanceStates, 1)
	assert.Equal(t, "Green_2Node_0", states[3].LightInstanceStates[0].ComponentName)
	assert.True(t, states[3].LightInstanceStates[0].State)
}

func TestParseFragments(t *testing.T) {
	assets, err := metadata.ParseSignalAssets([]byte(`<SignalConfigurations><Signal><ID>A</ID></Signal></SignalConfigurations>`))
	require.NoError(t, err)
	assert.Contains(t, assets, "A")

	junctions, err := metadata.ParseSignalization([]byte(`<Signalization><Junction><ID>J</ID></Junction></Signalization>`))
	require.NoError(t, err)
	require.Len(t, junctions, 1)
	assert.Equal(t, "J", junctions[0].ID)

	_, err = metadata.ParseSignalization([]byte(`<Signalization>`))
	assert.ErrorIs(t, err, metadata.ErrMalformedMetadata)
}

func TestParseFile(t *testing.T) {
	m, err := metadata.ParseFile(filepath.Join("testdata", "signals_v2.rrdata.xml"))
	require.NoError(t, err)
	assert.Len(t, m.Junctions, 2)

	_, err = metadata.ParseFile(filepath.Join("testdata", "missing.rrdata.xml"))
	assert.Error(t, err)
}
