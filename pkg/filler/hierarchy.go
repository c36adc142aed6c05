package filler

import (
	"fmt"
	"strings"

	"github.com/grovetools/wikigen/pkg/record"
)

const noPrefab = "No prefab structure defined"

// Node is one entry of a prefab hierarchy. A leaf carries a literal value;
// any other node carries component names and child nodes.
type Node struct {
	Name       string
	Leaf       bool
	Value      string
	Components []string
	Children   []Node
}

// BuildHierarchy converts a prefab_structure object into nodes, one per
// top-level key in source order. Objects become nodes and every other value
// becomes a leaf.
func BuildHierarchy(structure record.Value) []Node {
	fields := structure.Fields()
	nodes := make([]Node, 0, len(fields))
	for _, f := range fields {
		nodes = append(nodes, buildNode(f.Key, f.Value))
	}
	return nodes
}

func buildNode(name string, v record.Value) Node {
	if v.Kind() != record.Object {
		return Node{Name: name, Leaf: true, Value: v.Text()}
	}

	n := Node{Name: name}
	if components, ok := v.Get("components"); ok {
		for _, c := range components.List() {
			n.Components = append(n.Components, c.Text())
		}
	}
	if children, ok := v.Get("children"); ok {
		for _, child := range children.List() {
			if child.Kind() != record.Object {
				n.Children = append(n.Children, Node{Name: "Child", Leaf: true, Value: child.Text()})
				continue
			}
			n.Children = append(n.Children, buildNode(child.Lookup("name", "Child"), child))
		}
	}
	return n
}

// RenderHierarchy renders nodes as indented text, two spaces per level.
func RenderHierarchy(nodes []Node) string {
	var b strings.Builder
	for _, n := range nodes {
		renderNode(&b, n, 0)
	}
	return b.String()
}

func renderNode(b *strings.Builder, n Node, depth int) {
	indent := strings.Repeat("  ", depth)
	if n.Leaf {
		fmt.Fprintf(b, "%s%s: %s\n", indent, n.Name, n.Value)
		return
	}
	fmt.Fprintf(b, "%s%s/\n", indent, n.Name)
	for _, c := range n.Components {
		fmt.Fprintf(b, "%s  - %s\n", indent, c)
	}
	for _, child := range n.Children {
		renderNode(b, child, depth+1)
	}
}

func prefabHierarchy(tech record.Value) string {
	structure, ok := tech.Get("prefab_structure")
	if !ok || structure.Empty() {
		return noPrefab
	}
	if structure.Kind() != record.Object {
		return RenderHierarchy([]Node{{Name: "prefab_structure", Leaf: true, Value: structure.Text()}})
	}
	return RenderHierarchy(BuildHierarchy(structure))
}
