package scene

// ComponentRef 对场景组件的弱引用
// 功能：记录组件名与所属Actor，首次使用时解析并缓存结果
// 说明：所属Actor为空时由调用方提供的兜底Actor代替
type ComponentRef struct {
	Component string // 组件名

	owner    Actor
	resolved Component
}

// NewComponentRef 创建组件引用
func NewComponentRef(owner Actor, component string) ComponentRef {
	return ComponentRef{Component: component, owner: owner}
}

// Owner 引用所属Actor
func (r *ComponentRef) Owner() Actor {
	return r.owner
}

// Resolved 是否已成功解析
func (r *ComponentRef) Resolved() bool {
	return r.resolved != nil
}

// Resolve 解析组件
// 功能：返回缓存的组件；未缓存时在所属Actor（为空则使用fallback）上按名称查找
// 参数：fallback-所属Actor为空时使用的Actor
// 返回：组件与是否成功
func (r *ComponentRef) Resolve(fallback Actor) (Component, bool) {
	if r.resolved != nil {
		return r.resolved, true
	}
	if r.owner == nil {
		r.owner = fallback
	}
	if r.owner == nil || r.Component == "" {
		return nil, false
	}
	c, ok := r.owner.Component(r.Component)
	if !ok {
		return nil, false
	}
	r.resolved = c
	return c, true
}
