package container

// TreeNode 泛型树节点
// 功能：表示森林中的一个节点，按插入顺序保存子节点
// 说明：遍历均为非递归实现（显式栈），避免深层场景树导致的栈增长
type TreeNode[T any] struct {
	Value T

	parent   *TreeNode[T]
	children []*TreeNode[T]
}

// NewTreeNode 创建树的根节点
func NewTreeNode[T any](value T) *TreeNode[T] {
	return &TreeNode[T]{Value: value}
}

// AddChild 在末尾追加一个子节点并返回该子节点
func (n *TreeNode[T]) AddChild(value T) *TreeNode[T] {
	child := &TreeNode[T]{Value: value, parent: n}
	n.children = append(n.children, child)
	return child
}

// Attach 将已有子树挂到当前节点下（会从原父节点上摘除）
func (n *TreeNode[T]) Attach(child *TreeNode[T]) {
	if child.parent != nil {
		child.parent.detach(child)
	}
	child.parent = n
	n.children = append(n.children, child)
}

func (n *TreeNode[T]) detach(child *TreeNode[T]) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			break
		}
	}
	child.parent = nil
}

// Parent 父节点，根节点返回nil
func (n *TreeNode[T]) Parent() *TreeNode[T] {
	return n.parent
}

// Children 子节点列表（按插入顺序）
func (n *TreeNode[T]) Children() []*TreeNode[T] {
	return n.children
}

// FirstChild 第一个子节点，不存在则返回nil
func (n *TreeNode[T]) FirstChild() *TreeNode[T] {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

// Walk 先序深度优先遍历（包含自身）
// 功能：按先序访问所有节点，f返回false时立即停止
// 算法说明：
// 1. 根节点入栈
// 2. 弹出栈顶并访问
// 3. 子节点逆序入栈，保证按枚举顺序访问
func (n *TreeNode[T]) Walk(f func(node *TreeNode[T]) bool) {
	stack := []*TreeNode[T]{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !f(cur) {
			return
		}
		for i := len(cur.children) - 1; i >= 0; i-- {
			stack = append(stack, cur.children[i])
		}
	}
}

// FindDescendant 先序查找第一个满足条件的后代节点（不含自身）
func (n *TreeNode[T]) FindDescendant(match func(node *TreeNode[T]) bool) *TreeNode[T] {
	var found *TreeNode[T]
	n.Walk(func(node *TreeNode[T]) bool {
		if node != n && match(node) {
			found = node
			return false
		}
		return true
	})
	return found
}

// Descendants 先序返回所有后代节点（不含自身）
func (n *TreeNode[T]) Descendants() []*TreeNode[T] {
	res := make([]*TreeNode[T], 0)
	n.Walk(func(node *TreeNode[T]) bool {
		if node != n {
			res = append(res, node)
		}
		return true
	})
	return res
}

// Len 子树中节点总数（含自身）
func (n *TreeNode[T]) Len() int {
	count := 0
	n.Walk(func(*TreeNode[T]) bool {
		count++
		return true
	})
	return count
}
