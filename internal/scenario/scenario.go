// Package scenario handles reading, hashing, and identifying evaluation suites.
package scenario

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dshills/ruleeval/internal/rules"
)

// Suite is a named list of evaluation cases loaded from YAML or JSON.
type Suite struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Cases       []Case `yaml:"cases" json:"cases"`

	FilePath string `yaml:"-" json:"-"`
	Hash     string `yaml:"-" json:"-"`
}

// Case is a single evaluator call. Exactly one input block matching Kind
// should be set; schema.Validate enforces that.
type Case struct {
	ID    string `yaml:"id,omitempty" json:"id,omitempty"`
	Label string `yaml:"label,omitempty" json:"label,omitempty"`
	Kind  Kind   `yaml:"kind" json:"kind"`

	Engagement *rules.Activity         `yaml:"engagement,omitempty" json:"engagement,omitempty"`
	Risk       *rules.FinancialProfile `yaml:"risk,omitempty" json:"risk,omitempty"`
	Access     *rules.AccessRequest    `yaml:"access,omitempty" json:"access,omitempty"`
	Lexical    *LexicalInput           `yaml:"lexical,omitempty" json:"lexical,omitempty"`
	Transform  *Triple                 `yaml:"transform,omitempty" json:"transform,omitempty"`

	// Expect is an int, a risk tier string or a bool depending on Kind.
	Expect any `yaml:"expect,omitempty" json:"expect,omitempty"`

	// Line is the 1-based line of the case in the source document.
	Line int `yaml:"-" json:"-"`
}

// LexicalInput is the text sample scored by the lexical evaluator.
type LexicalInput struct {
	Text string `yaml:"text" json:"text"`
}

// Triple is the input to the bounded transform.
type Triple struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
	Z int `yaml:"z" json:"z"`
}

// Input returns the input block that matches c.Kind, or nil.
func (c *Case) Input() any {
	switch c.Kind {
	case KindEngagement:
		if c.Engagement != nil {
			return c.Engagement
		}
	case KindRisk:
		if c.Risk != nil {
			return c.Risk
		}
	case KindAccess:
		if c.Access != nil {
			return c.Access
		}
	case KindLexical:
		if c.Lexical != nil {
			return c.Lexical
		}
	case KindTransform:
		if c.Transform != nil {
			return c.Transform
		}
	}
	return nil
}

// InputBlocks counts how many input blocks are set on c.
func (c *Case) InputBlocks() int {
	n := 0
	for _, set := range []bool{
		c.Engagement != nil, c.Risk != nil, c.Access != nil, c.Lexical != nil, c.Transform != nil,
	} {
		if set {
			n++
		}
	}
	return n
}

// Load reads a suite file and computes its SHA-256 hash.
func Load(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario.Load: %w", err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	s, err := Parse(name, data)
	if err != nil {
		return nil, fmt.Errorf("scenario.Load: %s: %w", path, err)
	}
	s.FilePath = path
	return s, nil
}

// Parse decodes a suite document. name is used when the document has none.
func Parse(name string, data []byte) (*Suite, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("scenario.Parse: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, fmt.Errorf("scenario.Parse: empty document")
	}

	var s Suite
	if err := doc.Content[0].Decode(&s); err != nil {
		return nil, fmt.Errorf("scenario.Parse: %w", err)
	}
	if s.Name == "" {
		s.Name = name
	}
	attachLines(doc.Content[0], s.Cases)

	h := sha256.Sum256(data)
	s.Hash = fmt.Sprintf("sha256:%x", h)
	return &s, nil
}

// attachLines copies source line numbers from the cases sequence node.
func attachLines(root *yaml.Node, cases []Case) {
	if root.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value != "cases" {
			continue
		}
		seq := root.Content[i+1]
		for j, item := range seq.Content {
			if j < len(cases) {
				cases[j].Line = item.Line
			}
		}
		return
	}
}

// InferCaseIDs assigns C-NNN IDs, numbered by position, to cases without one.
func InferCaseIDs(s *Suite) {
	for i := range s.Cases {
		if strings.TrimSpace(s.Cases[i].ID) == "" {
			s.Cases[i].ID = fmt.Sprintf("C-%03d", i+1)
		}
	}
}
