// 场景宿主抽象：信号灯运行时只通过这里的接口访问可见组件
package scene

import (
	"github.com/samber/lo"
)

const (
	// MeshComponentName 关卡路径下灯泡网格组件的名称
	MeshComponentName = "StaticMeshComponent"
)

// Component 可见组件
type Component interface {
	Name() string
	SetVisible(visible bool)
	Visible() bool
}

// Actor 场景中的对象，持有若干具名组件与挂接的子对象
type Actor interface {
	Label() string
	Component(name string) (Component, bool)
	Components() []Component
	Children() []Actor
}

// MemoryComponent 内存中的可见组件实现
type MemoryComponent struct {
	name    string
	visible bool
	// 可见性被修改的次数
	changes int
}

// NewMemoryComponent 创建组件，初始为可见
func NewMemoryComponent(name string) *MemoryComponent {
	return &MemoryComponent{name: name, visible: true}
}

func (c *MemoryComponent) Name() string {
	return c.name
}

func (c *MemoryComponent) SetVisible(visible bool) {
	c.visible = visible
	c.changes++
}

func (c *MemoryComponent) Visible() bool {
	return c.visible
}

// Changes 可见性被设置的次数
func (c *MemoryComponent) Changes() int {
	return c.changes
}

// MemoryActor 内存中的Actor实现
// 功能：无渲染环境下承载信号灯组件，供无头运行与测试使用
type MemoryActor struct {
	label      string
	components []*MemoryComponent
	byName     map[string]*MemoryComponent
	children   []*MemoryActor
	parent     *MemoryActor
}

// NewMemoryActor 创建Actor
func NewMemoryActor(label string) *MemoryActor {
	return &MemoryActor{
		label:      label,
		components: make([]*MemoryComponent, 0),
		byName:     make(map[string]*MemoryComponent),
		children:   make([]*MemoryActor, 0),
	}
}

func (a *MemoryActor) Label() string {
	return a.label
}

// AddComponent 添加具名组件，同名组件已存在时返回已有组件
func (a *MemoryActor) AddComponent(name string) *MemoryComponent {
	if c, ok := a.byName[name]; ok {
		return c
	}
	c := NewMemoryComponent(name)
	a.components = append(a.components, c)
	a.byName[name] = c
	return c
}

func (a *MemoryActor) Component(name string) (Component, bool) {
	c, ok := a.byName[name]
	if !ok {
		return nil, false
	}
	return c, true
}

// MemoryComponent 按名称获取具体类型的组件
func (a *MemoryActor) MemoryComponent(name string) (*MemoryComponent, bool) {
	c, ok := a.byName[name]
	return c, ok
}

func (a *MemoryActor) Components() []Component {
	return lo.Map(a.components, func(c *MemoryComponent, _ int) Component { return c })
}

// Attach 挂接子Actor
func (a *MemoryActor) Attach(child *MemoryActor) *MemoryActor {
	child.parent = a
	a.children = append(a.children, child)
	return child
}

func (a *MemoryActor) Children() []Actor {
	return lo.Map(a.children, func(c *MemoryActor, _ int) Actor { return c })
}

// Parent 父Actor，根返回nil
func (a *MemoryActor) Parent() *MemoryActor {
	return a.parent
}

// Descendants 先序返回所有挂接的后代Actor（不含自身）
// 算法说明：显式栈，子节点逆序入栈以保持枚举顺序
func Descendants(root Actor) []Actor {
	res := make([]Actor, 0)
	stack := []Actor{root}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur != root {
			res = append(res, cur)
		}
		children := cur.Children()
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
	return res
}
