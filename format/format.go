// Package format renders parsed syntax trees for tooling output.
package format

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/orvitpng/glas/gleam/parser"
)

// JSONEncoder writes a syntax tree as indented JSON.
type JSONEncoder struct {
	w io.Writer
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(root *parser.SyntaxNode) error {
	text, err := json.MarshalIndent(buildNodeData(root), "", "  ")
	if err != nil {
		return err
	}
	if _, err := e.w.Write(text); err != nil {
		return err
	}
	_, err = io.WriteString(e.w, "\n")
	return err
}

type jsonNode struct {
	Kind     string     `json:"kind"`
	Range    string     `json:"range"`
	Text     string     `json:"text,omitempty"`
	Children []jsonNode `json:"children,omitempty"`
}

func buildNodeData(n *parser.SyntaxNode) jsonNode {
	out := jsonNode{
		Kind:  n.Kind().String(),
		Range: n.Range().String(),
	}

	// Interleave child nodes and significant tokens in source order.
	nodes := n.Children()
	next := 0
	for _, tok := range n.Tokens() {
		for next < len(nodes) && nodes[next].Range().Start < tok.Range().Start {
			out.Children = append(out.Children, buildNodeData(nodes[next]))
			next++
		}
		if tok.Kind().IsTrivia() {
			continue
		}
		out.Children = append(out.Children, jsonNode{
			Kind:  tok.Kind().String(),
			Range: tok.Range().String(),
			Text:  tok.Text(),
		})
	}
	for next < len(nodes) {
		out.Children = append(out.Children, buildNodeData(nodes[next]))
		next++
	}
	return out
}

// TreeEncoder writes the indented debug rendering of a syntax tree.
type TreeEncoder struct {
	w io.Writer
}

func NewTreeEncoder(w io.Writer) *TreeEncoder {
	return &TreeEncoder{w: w}
}

func (e *TreeEncoder) Encode(root *parser.SyntaxNode) error {
	_, err := io.WriteString(e.w, root.String())
	return err
}

// TokenEncoder writes one lexed token per line.
type TokenEncoder struct {
	w io.Writer
}

func NewTokenEncoder(w io.Writer) *TokenEncoder {
	return &TokenEncoder{w: w}
}

func (e *TokenEncoder) Encode(tokens []parser.Token) error {
	var sb strings.Builder
	for _, tok := range tokens {
		sb.WriteString(tok.String())
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(e.w, sb.String())
	return err
}
