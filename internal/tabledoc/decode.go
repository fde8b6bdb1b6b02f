package tabledoc

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yndnr/tabsample/internal/core/domain"
	"github.com/yndnr/tabsample/pkg/table"
)

// Document is a container loaded from YAML.
type Document interface {
	table.Container
	table.Versioned
}

// LoadFile reads the YAML document at path.
func LoadFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open table document: %w", err)
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Decode reads the first YAML document from r.
func Decode(r io.Reader) (Document, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return table.NewMap(), nil
		}
		return nil, domain.ErrTableMalformed.WithCause(err)
	}

	node := resolve(&root)
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return table.NewMap(), nil
		}
		node = resolve(node.Content[0])
	}

	switch node.Kind {
	case yaml.SequenceNode:
		return decodeSequence(node)
	case yaml.MappingNode:
		return decodeMapping(node)
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return table.NewMap(), nil
		}
	}
	return nil, malformed(node, "top level must be a mapping or a sequence")
}

func decodeSequence(node *yaml.Node) (*table.Sequence, error) {
	seq := table.NewSequenceWithCapacity(len(node.Content))
	for _, item := range node.Content {
		v, err := decodeValue(item)
		if err != nil {
			return nil, err
		}
		seq.Append(v)
	}
	return seq, nil
}

func decodeMapping(node *yaml.Node) (*table.Map, error) {
	m := table.NewMapWithCapacity(len(node.Content) / 2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		kn, vn := resolve(node.Content[i]), node.Content[i+1]

		if kn.Kind != yaml.ScalarNode {
			return nil, malformed(kn, "keys must be scalars")
		}
		var raw any
		if err := kn.Decode(&raw); err != nil {
			return nil, domain.ErrTableMalformed.WithCause(err)
		}
		key, err := table.AnyKey(raw)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", kn.Line, err)
		}
		if m.Has(key) {
			return nil, malformed(kn, fmt.Sprintf("duplicate key %s", key))
		}

		v, err := decodeValue(vn)
		if err != nil {
			return nil, err
		}
		m.Set(key, v)
	}
	return m, nil
}

func decodeValue(node *yaml.Node) (any, error) {
	var v any
	if err := node.Decode(&v); err != nil {
		return nil, domain.ErrTableMalformed.WithCause(err)
	}
	return v, nil
}

func resolve(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

func malformed(node *yaml.Node, msg string) error {
	return domain.ErrTableMalformed.WithDetails(fmt.Sprintf("line %d: %s", node.Line, msg))
}
