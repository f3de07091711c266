package btree

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/fatih/color"
)

var (
	levelColor = color.New(color.FgYellow)
	leafColor  = color.New(color.FgGreen)
	innerColor = color.New(color.FgCyan)
)

// Visualizer renders a tree level by level, one line per depth, nodes in key order.
type Visualizer[K cmp.Ordered, V any] struct {
	Tree *Tree[K, V]
}

func (v *Visualizer[K, V]) Visualize() string {
	var sb strings.Builder

	level := []*node[K, V]{v.Tree.root}
	for depth := 0; len(level) > 0; depth++ {
		sb.WriteString(levelColor.Sprintf("L%d:", depth))

		var next []*node[K, V]
		for _, n := range level {
			sb.WriteByte(' ')
			sb.WriteString(renderNode(n))
			next = append(next, n.children...)
		}
		sb.WriteByte('\n')
		level = next
	}
	return sb.String()
}

func renderNode[K cmp.Ordered, V any](n *node[K, V]) string {
	keys := make([]string, len(n.items))
	for i, it := range n.items {
		keys[i] = fmt.Sprint(it.key)
	}
	s := "[" + strings.Join(keys, " ") + "]"
	if n.isLeaf() {
		return leafColor.Sprint(s)
	}
	return innerColor.Sprint(s)
}
