package domain

// MindMapNode is one node of a topic mind map. The structure is a tree by
// construction: nodes are built fresh from parsed text, so no cycle can
// exist. The root node's name equals the requested topic.
type MindMapNode struct {
	Name     string        `json:"name"`
	Children []MindMapNode `json:"children,omitempty"`
}

// Depth returns the height of the tree rooted at n, counting n itself.
func (n *MindMapNode) Depth() int {
	max := 0
	for i := range n.Children {
		if d := n.Children[i].Depth(); d > max {
			max = d
		}
	}
	return max + 1
}

// NodeCount returns the total number of nodes in the tree rooted at n.
func (n *MindMapNode) NodeCount() int {
	count := 1
	for i := range n.Children {
		count += n.Children[i].NodeCount()
	}
	return count
}
