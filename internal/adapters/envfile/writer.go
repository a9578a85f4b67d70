package envfile

import (
	"bytes"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"github.com/ShekharNarayanan/conda-portable/internal/core/domain"
)

// yamlIndent matches the two-space indent conda itself emits.
const yamlIndent = 2

// Writer implements ports.EnvironmentWriter with an atomic file replace.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write serializes doc to path. The document is written to a temporary file
// in the target directory and renamed into place, so a failed write never
// leaves a partial file behind.
func (w *Writer) Write(path string, doc *domain.EnvironmentDocument) error {
	data, err := marshalDocument(doc)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPortableWriteFailed.Error()), "path", path)
	}

	if err := writeAtomic(path, data); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPortableWriteFailed.Error()), "path", path)
	}

	return nil
}

// marshalDocument rebuilds the document's top-level mapping from its
// preserved field nodes, re-encoding only the dependencies slot.
func marshalDocument(doc *domain.EnvironmentDocument) ([]byte, error) {
	mapping := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for _, field := range doc.Fields {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: field.Key}

		valueNode := field.Value
		if valueNode == nil && field.Key == domain.DependenciesKey {
			valueNode = dependenciesNode(doc.Dependencies)
		}
		if valueNode == nil {
			valueNode = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
		}

		mapping.Content = append(mapping.Content, keyNode, valueNode)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(yamlIndent)
	if err := enc.Encode(mapping); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func dependenciesNode(deps []domain.Dependency) *yaml.Node {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}

	for _, dep := range deps {
		switch d := dep.(type) {
		case domain.PlainSpec:
			seq.Content = append(seq.Content, &yaml.Node{
				Kind:  yaml.ScalarNode,
				Tag:   "!!str",
				Value: string(d),
			})
		case domain.PipBlock:
			seq.Content = append(seq.Content, pipNode(d))
		case domain.RawEntry:
			seq.Content = append(seq.Content, d.Node)
		}
	}
	return seq
}

func pipNode(block domain.PipBlock) *yaml.Node {
	reqs := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, req := range block.Requirements {
		reqs.Content = append(reqs.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!str",
			Value: req,
		})
	}

	return &yaml.Node{
		Kind: yaml.MappingNode,
		Tag:  "!!map",
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: domain.PipKey},
			reqs,
		},
	}
}

// writeAtomic replaces path with data via a temp file in the same directory.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmpFile, err := os.CreateTemp(dir, "portable-*.yml")
	if err != nil {
		return zerr.Wrap(err, "failed to create temp file")
	}
	tmpName := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if _, err := os.Stat(tmpName); err == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return zerr.Wrap(err, "failed to write temp file")
	}

	if err := tmpFile.Close(); err != nil {
		return zerr.Wrap(err, "failed to close temp file")
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return zerr.Wrap(err, "failed to chmod temp file")
	}

	if err := os.Rename(tmpName, path); err != nil {
		return zerr.Wrap(err, "failed to rename temp file")
	}

	return nil
}
