// Package flowchart turns an idea written in markdown into a node graph the
// frontend can render.
package flowchart

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	NodeTypeRoot  = "input"
	NodeTypeStep  = "default"
	NodeTypeChild = "output"

	stepX      = 250
	stepGapY   = 150
	childGapX  = 220
	childStart = stepX + childGapX
)

var (
	headingPattern  = regexp.MustCompile(`^#{1,6}\s+(.+)$`)
	bulletPattern   = regexp.MustCompile(`^(?:[-*+]|\d+[.)])\s+(.+)$`)
	emphasisPattern = regexp.MustCompile(`\*\*|__|` + "`")
)

type Node struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Type  string `json:"type"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
}

type Edge struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
}

type Flowchart struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Build lays out title as the root, each heading as a step below the previous
// one, and each bullet as a child to the right of its step. Bullets that
// appear before the first heading hang off the root.
func Build(title, markdown string) Flowchart {
	fc := Flowchart{Nodes: []Node{}, Edges: []Edge{}}

	root := Node{ID: "root", Label: clean(title), Type: NodeTypeRoot, X: stepX, Y: 0}
	if root.Label == "" {
		root.Label = "Idea"
	}
	fc.Nodes = append(fc.Nodes, root)

	parent := root.ID
	parentY := root.Y
	steps, children := 0, 0

	for _, line := range strings.Split(markdown, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if m := headingPattern.FindStringSubmatch(line); m != nil {
			steps++
			children = 0
			node := Node{
				ID:    fmt.Sprintf("step-%d", steps),
				Label: clean(m[1]),
				Type:  NodeTypeStep,
				X:     stepX,
				Y:     steps * stepGapY,
			}
			fc.Nodes = append(fc.Nodes, node)
			fc.Edges = append(fc.Edges, edge(parentStep(steps), node.ID))
			parent, parentY = node.ID, node.Y
			continue
		}

		if m := bulletPattern.FindStringSubmatch(line); m != nil {
			node := Node{
				ID:    fmt.Sprintf("%s-child-%d", parent, children+1),
				Label: clean(m[1]),
				Type:  NodeTypeChild,
				X:     childStart + children*childGapX,
				Y:     parentY,
			}
			children++
			fc.Nodes = append(fc.Nodes, node)
			fc.Edges = append(fc.Edges, edge(parent, node.ID))
		}
	}

	return fc
}

func parentStep(step int) string {
	if step == 1 {
		return "root"
	}
	return fmt.Sprintf("step-%d", step-1)
}

func edge(source, target string) Edge {
	return Edge{ID: fmt.Sprintf("e-%s-%s", source, target), Source: source, Target: target}
}

func clean(s string) string {
	return strings.TrimSpace(emphasisPattern.ReplaceAllString(s, ""))
}
