package exprtree

import (
	"fmt"
	"strings"
)

// Parse reads a tree from its String representation, e.g.
// "root(+(2, 0))" or "+(succ(1), 3)".
//
// If the outermost label is not "root", a root wrapper is
// added automatically.
func Parse(s string) (*Tree, error) {
	p := &parser{input: s}
	t := &Tree{}
	if _, err := p.parseNode(t); err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.input) {
		return nil, fmt.Errorf("parse expression: trailing data at offset %d", p.pos)
	}
	if t.Labels[0] != Root {
		wrapped := &Tree{
			Labels:   append([]Label{Root}, t.Labels...),
			Children: make([][]int, 0, t.Len()+1),
		}
		wrapped.Children = append(wrapped.Children, []int{1})
		for _, kids := range t.Children {
			shifted := make([]int, len(kids))
			for i, c := range kids {
				shifted[i] = c + 1
			}
			wrapped.Children = append(wrapped.Children, shifted)
		}
		t = wrapped
	}
	return t, nil
}

type parser struct {
	input string
	pos   int
}

// parseNode appends the node rooted at the current offset
// to t in preorder and returns its index.
func (p *parser) parseNode(t *Tree) (int, error) {
	p.skipSpace()
	name := p.readName()
	if name == "" {
		return 0, fmt.Errorf("parse expression: expected label at offset %d", p.pos)
	}
	label, ok := ParseLabel(name)
	if !ok {
		return 0, fmt.Errorf("parse expression: unknown label %q", name)
	}
	idx := t.Len()
	t.Labels = append(t.Labels, label)
	t.Children = append(t.Children, []int{})
	if !p.consume('(') {
		return idx, nil
	}
	for {
		child, err := p.parseNode(t)
		if err != nil {
			return 0, err
		}
		t.Children[idx] = append(t.Children[idx], child)
		p.skipSpace()
		if p.consume(',') {
			continue
		}
		if p.consume(')') {
			return idx, nil
		}
		return 0, fmt.Errorf("parse expression: expected ',' or ')' at offset %d", p.pos)
	}
}

func (p *parser) readName() string {
	start := p.pos
	for p.pos < len(p.input) && !strings.ContainsRune("(), \t", rune(p.input[p.pos])) {
		p.pos++
	}
	return p.input[start:p.pos]
}

func (p *parser) consume(b byte) bool {
	p.skipSpace()
	if p.pos < len(p.input) && p.input[p.pos] == b {
		p.pos++
		return true
	}
	return false
}

func (p *parser) skipSpace() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}
