// Package envfile reads and writes conda environment files.
//
// Documents are handled at the YAML node level rather than decoded into
// structs: fields the tool does not model are carried through a rewrite
// verbatim, and nothing is reordered or reformatted beyond the dependency
// entries the transform actually touches.
package envfile

import (
	"os"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"github.com/ShekharNarayanan/conda-portable/internal/core/domain"
	"github.com/ShekharNarayanan/conda-portable/internal/core/ports"
)

// Loader implements ports.EnvironmentLoader for YAML environment files.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads and parses the environment file at path. The document must be
// a YAML mapping with a dependencies list; everything else is optional.
func (l *Loader) Load(path string) (*domain.EnvironmentDocument, error) {
	// #nosec G304 -- path comes from the --env flag
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrEnvReadFailed.Error()), "path", path)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrEnvParseFailed.Error()), "path", path)
	}

	mapping := documentMapping(&root)
	if mapping == nil {
		return nil, zerr.With(domain.ErrEnvNotMapping, "path", path)
	}

	doc := &domain.EnvironmentDocument{}
	seenDependencies := false

	for i := 0; i+1 < len(mapping.Content); i += 2 {
		keyNode := mapping.Content[i]
		valueNode := mapping.Content[i+1]
		key := keyNode.Value

		if key == domain.DependenciesKey {
			if seenDependencies {
				l.logger.Warn("duplicate 'dependencies' field in environment file, keeping the first")
			} else {
				deps, err := parseDependencies(valueNode)
				if err != nil {
					return nil, zerr.With(err, "path", path)
				}
				doc.Dependencies = deps
				// Dependencies keep their position in the field order but
				// live in decoded form; the nil Value marks the slot.
				doc.Fields = append(doc.Fields, domain.Field{Key: key})
				seenDependencies = true
				continue
			}
		}

		switch key {
		case "name":
			doc.Name = valueNode.Value
		case "channels":
			// Decoded view only. The raw node is what gets written back,
			// so a malformed channels field still round-trips.
			if err := valueNode.Decode(&doc.Channels); err != nil {
				l.logger.Warn("'channels' is not a list of strings, leaving it untouched")
			}
		}

		doc.Fields = append(doc.Fields, domain.Field{Key: key, Value: valueNode})
	}

	if !seenDependencies {
		return nil, zerr.With(domain.ErrEnvMissingDependencies, "path", path)
	}

	return doc, nil
}

// documentMapping unwraps the document node down to its top-level mapping.
// Returns nil for empty documents and non-mapping roots.
func documentMapping(root *yaml.Node) *yaml.Node {
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil
	}
	node := root.Content[0]
	if node.Kind != yaml.MappingNode {
		return nil
	}
	return node
}

func parseDependencies(node *yaml.Node) ([]domain.Dependency, error) {
	if node.Kind != yaml.SequenceNode {
		// A bare "dependencies:" key decodes as an explicit null.
		if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
			return nil, nil
		}
		return nil, domain.ErrEnvBadDependencies
	}

	deps := make([]domain.Dependency, 0, len(node.Content))
	for _, item := range node.Content {
		deps = append(deps, classifyEntry(item))
	}
	return deps, nil
}

// classifyEntry models the two entry shapes the transform understands.
// Anything else, including non-string scalars, is preserved raw so the
// output reproduces it untouched.
func classifyEntry(item *yaml.Node) domain.Dependency {
	switch item.Kind {
	case yaml.ScalarNode:
		if item.Tag == "!!str" {
			return domain.PlainSpec(item.Value)
		}
	case yaml.MappingNode:
		if reqs, ok := pipRequirements(item); ok {
			return domain.PipBlock{Requirements: reqs}
		}
	}
	return domain.RawEntry{Node: item}
}

// pipRequirements matches a {pip: [string, ...]} mapping. Extra keys or
// non-string members disqualify the block from being modeled.
func pipRequirements(item *yaml.Node) ([]string, bool) {
	if len(item.Content) != 2 || item.Content[0].Value != domain.PipKey {
		return nil, false
	}

	value := item.Content[1]
	if value.Kind != yaml.SequenceNode {
		return nil, false
	}

	reqs := make([]string, 0, len(value.Content))
	for _, member := range value.Content {
		if member.Kind != yaml.ScalarNode || member.Tag != "!!str" {
			return nil, false
		}
		reqs = append(reqs, member.Value)
	}
	return reqs, true
}
