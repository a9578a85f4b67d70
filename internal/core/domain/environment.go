package domain

import "gopkg.in/yaml.v3"

const (
	// DependenciesKey is the top-level key holding the dependency list.
	DependenciesKey = "dependencies"

	// PipKey is the dependency mapping key holding pip requirement strings.
	PipKey = "pip"
)

// Field is one top-level entry of an environment document. Value holds the
// raw YAML node, so fields this tool does not understand survive a rewrite
// untouched. The dependencies field is the exception: its Value is nil and
// its content lives in EnvironmentDocument.Dependencies.
type Field struct {
	Key   string
	Value *yaml.Node
}

// EnvironmentDocument is a parsed conda environment file.
//
// Name and Channels are decoded views used for matching and display. Fields
// preserves every top-level entry in source order, so writing a document
// back out reproduces the parts of the input the transform never touched.
type EnvironmentDocument struct {
	Name         string
	Channels     []string
	Dependencies []Dependency
	Fields       []Field
}

// Dependency is one entry of the dependencies list.
type Dependency interface {
	dependency()
}

// PlainSpec is a conda match spec string such as "numpy=1.26.4=py312h0123_0".
type PlainSpec string

func (PlainSpec) dependency() {}

// Name returns the lowercased package name of the spec.
func (s PlainSpec) Name() string {
	return SpecName(string(s))
}

// PipBlock is the "pip:" mapping entry carrying pip requirement strings.
type PipBlock struct {
	Requirements []string
}

func (PipBlock) dependency() {}

// RawEntry is a dependencies entry this tool does not model, carried through
// a rewrite verbatim. The node must be treated as read-only.
type RawEntry struct {
	Node *yaml.Node
}

func (RawEntry) dependency() {}
