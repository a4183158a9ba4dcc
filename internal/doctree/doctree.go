package doctree

// Heading tags recognized as section boundaries, in rank order.
var HeadingTags = []string{"h1", "h2", "h3", "h4"}

// Section is one heading and the content markup that followed it.
type Section struct {
	Type    string   `json:"type" yaml:"type"`       // Heading tag, h1..h4
	Title   string   `json:"title" yaml:"title"`     // Trimmed heading text
	Content []string `json:"content" yaml:"content"` // Outer HTML of p/ul/ol/table siblings
}

// Rank returns 1..4 for h1..h4, 0 otherwise.
func (s Section) Rank() int {
	return HeadingRank(s.Type)
}

// Node is a Section placed in a heading outline.
type Node struct {
	Type     string   `json:"type" yaml:"type"`
	Title    string   `json:"title" yaml:"title"`
	Content  []string `json:"content" yaml:"content"`
	Children []*Node  `json:"children,omitempty" yaml:"children,omitempty"`
}

// HeadingRank maps a tag name to its heading rank.
func HeadingRank(tag string) int {
	switch tag {
	case "h1":
		return 1
	case "h2":
		return 2
	case "h3":
		return 3
	case "h4":
		return 4
	}
	return 0
}

// Nest arranges flat sections into an outline by heading rank.
// A section becomes a child of the closest preceding section with a lower rank.
func Nest(sections []Section) []*Node {
	type stackEntry struct {
		node *Node
		rank int
	}
	root := &Node{}
	stack := []stackEntry{{node: root, rank: 0}}

	for _, s := range sections {
		rank := s.Rank()
		n := &Node{Type: s.Type, Title: s.Title, Content: s.Content}
		for len(stack) > 1 && stack[len(stack)-1].rank >= rank {
			stack = stack[:len(stack)-1]
		}
		parent := stack[len(stack)-1].node
		parent.Children = append(parent.Children, n)
		stack = append(stack, stackEntry{node: n, rank: rank})
	}
	return root.Children
}
