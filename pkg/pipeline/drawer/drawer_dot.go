package drawer

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"text/template"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
	"gopkg.in/go-playground/colors.v1" //nolint
)

// DOTDrawer is a drawer that creates a DOT file with the pipeline graph.
type DOTDrawer struct {
	graph       graph.Graph[string, string]
	dotFileName string
}

// NewDOTDrawer creates a new DOT drawer.
func NewDOTDrawer(dotFileName string) *DOTDrawer {
	return &DOTDrawer{
		dotFileName: dotFileName,
		graph:       graph.New(graph.StringHash, graph.Directed()),
	}
}

var roleRGB = map[Role][3]uint8{
	RoleSource:    {0x8e, 0xc0, 0xe4},
	RoleDecode:    {0xb5, 0xe7, 0xa0},
	RoleInference: {0xf4, 0xa2, 0x61},
	RoleTransform: {0xe0, 0xe0, 0xe0},
	RoleSink:      {0xc3, 0xb1, 0xe1},
}

func roleColour(role Role) (string, error) {
	rgb, ok := roleRGB[role]
	if !ok {
		rgb = roleRGB[RoleTransform]
	}

	colour, err := colors.RGB(rgb[0], rgb[1], rgb[2])
	if err != nil {
		return "", errors.Wrap(err, "unable to get colour")
	}

	return colour.ToHEX().String(), nil
}

// AddElement adds an element to the pipeline graph.
func (d *DOTDrawer) AddElement(name string, role Role) error {
	fill, err := roleColour(role)
	if err != nil {
		return err
	}

	err = d.graph.AddVertex(name,
		graph.VertexAttribute("style", "filled"),
		graph.VertexAttribute("fillcolor", fill),
		graph.VertexAttribute("role", string(role)),
	)
	if err != nil {
		return errors.Wrapf(err, "unable to add vertex %s", name)
	}

	return nil
}

// AddLink adds a link between parent and child elements.
func (d *DOTDrawer) AddLink(parentName, childName string) error {
	err := d.graph.AddEdge(parentName, childName)
	if err != nil {
		return errors.Wrapf(err, "unable to add edge from %s to %s", parentName, childName)
	}

	return nil
}

// Draw creates a DOT file with the pipeline graph.
func (d *DOTDrawer) Draw() (string, error) {
	err := os.MkdirAll(filepath.Dir(d.dotFileName), 0o755)
	if err != nil {
		return "", errors.Wrapf(err, "unable to create directory for %s", d.dotFileName)
	}

	file, err := os.Create(d.dotFileName)
	if err != nil {
		return "", errors.Wrapf(err, "unable to create file %s", d.dotFileName)
	}

	err = d.writeDOT(file)
	if err != nil {
		_ = file.Close()

		return "", errors.Wrapf(err, "unable to write dot file %s", d.dotFileName)
	}

	err = file.Close()
	if err != nil {
		return "", errors.Wrapf(err, "unable to close dot file %s", d.dotFileName)
	}

	return d.dotFileName, nil
}

//nolint:lll //this is a template
var dotTemplate = template.Must(template.New("dot").Parse(`strict digraph {
	rankdir="LR";
	{{range .Nodes}}
		"{{.Name}}" [ {{range $k, $v := .Attributes}}{{$k}}="{{$v}}", {{end}} weight={{.Weight}} ];
	{{end}}
	{{range .Links}}
		"{{.Parent}}" -> "{{.Child}}" [ weight={{.Weight}} ];
	{{end}}
	}
`))

type dotNode struct {
	Attributes map[string]string
	Name       string
	Weight     int
}

type dotLink struct {
	Parent string
	Child  string
	Weight int
}

type dotGraph struct {
	Nodes []dotNode
	Links []dotLink
}

// writeDOT renders the graph with nodes and links sorted by name, so the same graph always gives the same file.
func (d *DOTDrawer) writeDOT(wrt io.Writer) error {
	adjacencyMap, err := d.graph.AdjacencyMap()
	if err != nil {
		return errors.Wrap(err, "unable to get adjacency map")
	}

	names := make([]string, 0, len(adjacencyMap))
	for name := range adjacencyMap {
		names = append(names, name)
	}

	sort.Strings(names)

	var desc dotGraph

	for _, name := range names {
		_, properties, err := d.graph.VertexWithProperties(name)
		if err != nil {
			return errors.Wrapf(err, "unable to get properties of %s", name)
		}

		desc.Nodes = append(desc.Nodes, dotNode{Name: name, Attributes: properties.Attributes, Weight: properties.Weight})

		children := make([]string, 0, len(adjacencyMap[name]))
		for child := range adjacencyMap[name] {
			children = append(children, child)
		}

		sort.Strings(children)

		for _, child := range children {
			desc.Links = append(desc.Links, dotLink{Parent: name, Child: child, Weight: adjacencyMap[name][child].Properties.Weight})
		}
	}

	err = dotTemplate.Execute(wrt, desc)
	if err != nil {
		return errors.Wrap(err, "unable to execute template")
	}

	return nil
}

var _ Drawer = (*DOTDrawer)(nil)
