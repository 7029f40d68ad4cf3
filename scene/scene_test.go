package scene_test

import (
	"testing"

	"github.com/OpenHUTB/carla-0.9.14/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUUID = "0f8fad5b-d9cb-469f-a165-70867728950e"

func TestMatchUUID(t *testing.T) {
	cases := []struct {
		name  string
		match string
		ok    bool
	}{
		{"{" + testUUID + "}_Signal", "{" + testUUID + "}", true},
		{testUUID + "_Mesh", testUUID, true},
		{"0f8fad5bd9cb469fa16570867728950e", "0f8fad5bd9cb469fa16570867728950e", true},
		{"Signal_" + testUUID, "", false},
		{"RedNode_0", "", false},
	}
	for _, c := range cases {
		match, ok := scene.MatchUUID(c.name)
		assert.Equal(t, c.ok, ok, c.name)
		assert.Equal(t, c.match, match, c.name)
	}
}

func TestNormalizeUUID(t *testing.T) {
	assert.Equal(t, "{"+testUUID+"}", scene.NormalizeUUID(testUUID))
	assert.Equal(t, "{"+testUUID+"}", scene.NormalizeUUID("{"+testUUID+"}"))
	assert.Equal(t, "{"+testUUID+"}", scene.NormalizeUUID("("+testUUID+")"))
	id, ok := scene.ExtractSignalID(testUUID + " (1)")
	assert.True(t, ok)
	assert.Equal(t, "{"+testUUID+"}", id)
}

func TestComponentRefResolve(t *testing.T) {
	owner := scene.NewMemoryActor("signal")
	red := owner.AddComponent("RedNode_0")

	ref := scene.NewComponentRef(owner, "RedNode_0")
	assert.False(t, ref.Resolved())
	c, ok := ref.Resolve(nil)
	require.True(t, ok)
	assert.Equal(t, "RedNode_0", c.Name())
	assert.True(t, ref.Resolved())

	// 解析结果被缓存
	c.SetVisible(false)
	assert.False(t, red.Visible())
	assert.Equal(t, 1, red.Changes())

	// 空Owner使用兜底Actor
	legacy := scene.ComponentRef{Component: "RedNode_0"}
	_, ok = legacy.Resolve(owner)
	assert.True(t, ok)
	assert.Equal(t, owner, legacy.Owner())

	missing := scene.NewComponentRef(owner, "GreenNode_0")
	_, ok = missing.Resolve(nil)
	assert.False(t, ok)
}

func TestActorDescendants(t *testing.T) {
	root := scene.NewMemoryActor("root")
	a := root.Attach(scene.NewMemoryActor("a"))
	a.Attach(scene.NewMemoryActor("a1"))
	root.Attach(scene.NewMemoryActor("b"))

	labels := make([]string, 0)
	for _, d := range scene.Descendants(root) {
		labels = append(labels, d.Label())
	}
	assert.Equal(t, []string{"a", "a1", "b"}, labels)
	assert.Equal(t, root, a.Parent())
}

func TestFindByRole(t *testing.T) {
	root := scene.NewNode("SignalRoot")
	root.AddChild(scene.NodeInfo{Name: "Lamp_3"})
	root.AddChild(scene.NodeInfo{Name: "Lamp_7", Role: "Red"})
	found := scene.FindByRole(root, "Red")
	require.NotNil(t, found)
	assert.Equal(t, "Lamp_7", found.Value.Name)
	assert.Nil(t, scene.FindByRole(root, "Green"))
	assert.Equal(t, []string{"SignalRoot", "Lamp_3", "Lamp_7"}, scene.Names(root))
}
