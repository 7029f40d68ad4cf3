package container_test

import (
	"testing"

	"github.com/OpenHUTB/carla-0.9.14/utils/container"
	"github.com/stretchr/testify/assert"
)

func buildTree() *container.TreeNode[string] {
	// root
	// ├── a
	// │   ├── a1
	// │   └── a2
	// │       └── a2x
	// └── b
	//     └── b1
	root := container.NewTreeNode("root")
	a := root.AddChild("a")
	a.AddChild("a1")
	a.AddChild("a2").AddChild("a2x")
	root.AddChild("b").AddChild("b1")
	return root
}

func TestTreeWalkPreOrder(t *testing.T) {
	root := buildTree()
	visited := make([]string, 0)
	root.Walk(func(n *container.TreeNode[string]) bool {
		visited = append(visited, n.Value)
		return true
	})
	assert.Equal(t, []string{"root", "a", "a1", "a2", "a2x", "b", "b1"}, visited)
	assert.Equal(t, 7, root.Len())
}

func TestTreeWalkStop(t *testing.T) {
	root := buildTree()
	visited := make([]string, 0)
	root.Walk(func(n *container.TreeNode[string]) bool {
		visited = append(visited, n.Value)
		return n.Value != "a2"
	})
	assert.Equal(t, []string{"root", "a", "a1", "a2"}, visited)
}

func TestTreeFindDescendant(t *testing.T) {
	root := buildTree()
	// 自身不参与匹配
	assert.Nil(t, root.FindDescendant(func(n *container.TreeNode[string]) bool { return n.Value == "root" }))

	found := root.FindDescendant(func(n *container.TreeNode[string]) bool { return len(n.Value) == 2 })
	if assert.NotNil(t, found) {
		assert.Equal(t, "a1", found.Value)
		assert.Equal(t, "a", found.Parent().Value)
	}
	assert.Equal(t, []string{"a", "a1", "a2", "a2x", "b", "b1"}, valuesOf(root.Descendants()))
}

func TestTreeAttach(t *testing.T) {
	root := buildTree()
	b := root.Children()[1]
	a2 := root.FirstChild().Children()[1]
	b.Attach(a2)
	assert.Len(t, root.FirstChild().Children(), 1)
	assert.Equal(t, []string{"b1", "a2"}, valuesOf(b.Children()))
	assert.Equal(t, b, a2.Parent())
	assert.Nil(t, container.NewTreeNode(0).FirstChild())
}

func valuesOf(nodes []*container.TreeNode[string]) []string {
	res := make([]string, len(nodes))
	for i, n := range nodes {
		res[i] = n.Value
	}
	return res
}
