package counting

import "fmt"

// DefaultMaxLeaves caps the number of complete paths a DecisionTree expands.
const DefaultMaxLeaves = 64

// TreeNode is one choice in a decision tree.
type TreeNode struct {
	Label    string
	Children []*TreeNode
}

// DecisionTreeResult holds the expanded tree and its path counts.
type DecisionTreeResult struct {
	Depth int
	Root  *TreeNode
	// Paths lists the complete root-to-leaf label sequences that were
	// expanded, joined without separators.
	Paths []string
	// Total is P(n, depth), the number of paths in the full tree.
	Total     Count
	Truncated bool
	Message   string
}

// DecisionTree expands ordered choices without repetition from elements to
// the given depth. Depth is clamped to the number of elements and expansion
// stops after maxLeaves complete paths.
func DecisionTree(elements []string, depth, maxLeaves int) DecisionTreeResult {
	if len(elements) == 0 || depth <= 0 {
		return DecisionTreeResult{
			Total:   Of(0),
			Message: "A decision tree needs at least one element and a positive depth.",
		}
	}
	if maxLeaves <= 0 {
		maxLeaves = DefaultMaxLeaves
	}

	depth = min(depth, len(elements))
	res := DecisionTreeResult{
		Depth: depth,
		Root:  &TreeNode{Label: "start"},
		Total: Permutations(len(elements), depth),
	}

	used := make([]bool, len(elements))
	var expand func(node *TreeNode, level int, path string)
	expand = func(node *TreeNode, level int, path string) {
		if level == depth {
			res.Paths = append(res.Paths, path)
			return
		}
		for i, el := range elements {
			if used[i] {
				continue
			}
			if len(res.Paths) >= maxLeaves {
				res.Truncated = true
				return
			}
			child := &TreeNode{Label: el}
			node.Children = append(node.Children, child)
			used[i] = true
			expand(child, level+1, path+el)
			used[i] = false
		}
	}
	expand(res.Root, 0, "")

	res.Message = fmt.Sprintf("%d of %s paths expanded (depth %d)", len(res.Paths), res.Total, depth)
	return res
}
