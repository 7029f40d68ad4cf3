package scene

import (
	"github.com/OpenHUTB/carla-0.9.14/utils/container"
)

// NodeInfo 组件模板节点信息（蓝图构造脚本中的一个节点）
type NodeInfo struct {
	Name string // 变量名，例如 Red_0Node_0
	Role string // 构造时登记的灯泡角色名，为空表示未登记
}

// Node 组件模板树节点
type Node = container.TreeNode[NodeInfo]

// NewNode 创建组件模板树根节点
func NewNode(name string) *Node {
	return container.NewTreeNode(NodeInfo{Name: name})
}

// NewRoleNode 创建带角色名的节点
func NewRoleNode(name, role string) *Node {
	return container.NewTreeNode(NodeInfo{Name: name, Role: role})
}

// FindByRole 先序查找第一个角色名完全相同的后代节点
func FindByRole(root *Node, role string) *Node {
	if root == nil || role == "" {
		return nil
	}
	return root.FindDescendant(func(n *Node) bool {
		return n.Value.Role == role
	})
}

// Names 先序返回所有节点名（含自身）
func Names(root *Node) []string {
	res := make([]string, 0)
	root.Walk(func(n *Node) bool {
		res = append(res, n.Value.Name)
		return true
	})
	return res
}
