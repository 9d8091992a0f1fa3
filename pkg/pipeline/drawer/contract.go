package drawer

// Role classifies an element so that the diagram can colour it.
type Role string

const (
	RoleSource    Role = "source"
	RoleDecode    Role = "decode"
	RoleInference Role = "inference"
	RoleTransform Role = "transform"
	RoleSink      Role = "sink"
)

// Drawer is an interface that defines the methods for drawing a pipeline diagram.
type Drawer interface {
	// AddElement adds an element to the diagram.
	AddElement(name string, role Role) error
	// AddLink adds a link between parent and child elements.
	AddLink(parentName, childName string) error
	// Draw writes the diagram and returns the path of the written file.
	Draw() (string, error)
}
