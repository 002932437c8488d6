package world

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Node is a named grouping in the scene tree.
type Node struct {
	Name      string
	parent    *Node
	children  []*Node
	instances []*Instance
}

// Parent returns the parent node, or nil for the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the child nodes in creation order.
func (n *Node) Children() []*Node {
	return n.children
}

// Instances returns the instances parented directly under this node.
func (n *Node) Instances() []*Instance {
	return n.instances
}

// Instance is a live copy of a prefab in the scene.
// Rotation is recorded but boxes stay axis aligned.
type Instance struct {
	ID       int
	Prefab   *Prefab
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Parent   *Node
}

// Name returns the prefab name of the instance.
func (i *Instance) Name() string {
	return i.Prefab.Name
}

// Tag returns the prefab tag of the instance.
func (i *Instance) Tag() string {
	return i.Prefab.Tag
}

// Bounds returns the world box of the instance.
func (i *Instance) Bounds() AABB {
	return i.Prefab.Bounds(i.Position)
}

// Scene owns every node and instance of a level.
type Scene struct {
	root      *Node
	instances []*Instance
	nextID    int
}

// NewScene creates an empty scene with a root node.
func NewScene() *Scene {
	return &Scene{root: &Node{Name: "Root"}}
}

// Root returns the root node.
func (s *Scene) Root() *Node {
	return s.root
}

// NewNode creates a named node. A nil parent attaches it to the root.
func (s *Scene) NewNode(name string, parent *Node) *Node {
	if parent == nil {
		parent = s.root
	}
	n := &Node{Name: name, parent: parent}
	parent.children = append(parent.children, n)
	return n
}

// Instantiate places a copy of the prefab in the scene.
// A nil prefab instantiates nothing and returns nil.
func (s *Scene) Instantiate(p *Prefab, pos mgl64.Vec3, rot mgl64.Quat, parent *Node) *Instance {
	if p == nil {
		return nil
	}
	if parent == nil {
		parent = s.root
	}

	s.nextID++
	inst := &Instance{
		ID:       s.nextID,
		Prefab:   p,
		Position: pos,
		Rotation: rot,
		Parent:   parent,
	}
	parent.instances = append(parent.instances, inst)
	s.instances = append(s.instances, inst)
	return inst
}

// Instances returns every instance in spawn order.
func (s *Scene) Instances() []*Instance {
	return s.instances
}

// Tagged returns the instances whose prefab carries the tag.
func (s *Scene) Tagged(tag string) []*Instance {
	var out []*Instance
	for _, inst := range s.instances {
		if inst.Tag() == tag {
			out = append(out, inst)
		}
	}
	return out
}

// Len returns the number of instances.
func (s *Scene) Len() int {
	return len(s.instances)
}
