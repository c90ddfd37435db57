package ops

import (
	"fmt"

	"github.com/gomlx/opgraph"
	"github.com/gomlx/opgraph/internal/utils"
	"github.com/pkg/errors"
)

// Scope holds the graph where operations are created and the namespace used to name them.
//
// Scopes created with SubScope or WithName share the graph and the names already used with their parent.
// Like the graph, a Scope is not safe for concurrent use.
type Scope struct {
	graph     *opgraph.Graph
	namespace string

	// name given to every operation created with the scope, set by WithName.
	name string

	// names is shared by all scopes derived from the same root scope.
	names *nameRegistry
}

type nameRegistry struct {
	used      utils.Set[string]
	finalized bool
}

// NewScope creates a Scope for a new graph with the default op registry.
func NewScope() *Scope {
	return NewScopeWithGraph(opgraph.NewGraph())
}

// NewScopeWithGraph creates a Scope to add operations to the given graph.
// Names already used in the graph are not reused.
func NewScopeWithGraph(g *opgraph.Graph) *Scope {
	return &Scope{
		graph: g,
		names: &nameRegistry{used: utils.MakeSet[string]()},
	}
}

// Graph where the operations are created.
func (s *Scope) Graph() *opgraph.Graph {
	return s.graph
}

// Namespace of the scope, "" for the root scope.
func (s *Scope) Namespace() string {
	return s.namespace
}

// SubScope returns a new scope whose operations are named "<namespace>/<op name>".
// The namespace is normalized (see utils.NormalizeNodeName) and made unique: calling SubScope("layer")
// twice on the same scope yields the namespaces "layer" and "layer_1".
func (s *Scope) SubScope(namespace string) *Scope {
	namespace = utils.NormalizeNodeName(namespace)
	if namespace == "" {
		namespace = "scope"
	}
	if s.namespace != "" {
		namespace = s.namespace + "/" + namespace
	}
	return &Scope{
		graph:     s.graph,
		namespace: s.uniqueName(namespace),
		names:     s.names,
	}
}

// WithName returns a copy of the scope that gives name (within the scope's namespace) to the operations
// created with it. The name is used as is: if it is already taken, creating the operation fails, so the
// returned scope is meant for creating a single operation.
func (s *Scope) WithName(name string) *Scope {
	s2 := *s
	s2.name = name
	return &s2
}

// Finalize returns the graph after checking it (see opgraph.Graph.Build).
// After it is called, no more operations can be created with the scope or any of its sub-scopes.
func (s *Scope) Finalize() (*opgraph.Graph, error) {
	if s.names.finalized {
		return nil, errors.New("scope already finalized")
	}
	if _, err := s.graph.Build(); err != nil {
		return nil, err
	}
	s.names.finalized = true
	return s.graph, nil
}

// opName returns the name for a new operation of the given type.
// The name is not reserved: call reserveName once the operation is added to the graph.
func (s *Scope) opName(opType string) (string, error) {
	if s.names.finalized {
		return "", errors.Errorf("can't create %s operation: scope already finalized", opType)
	}
	if s.name != "" {
		name := s.name
		if s.namespace != "" {
			name = s.namespace + "/" + name
		}
		return name, nil
	}
	base := opType
	if s.namespace != "" {
		base = s.namespace + "/" + opType
	}
	return s.freeName(base), nil
}

// reserveName marks name as used in the scope and all scopes sharing its names.
func (s *Scope) reserveName(name string) {
	s.names.used.Insert(name)
}

// uniqueName returns freeName(base) and reserves it.
func (s *Scope) uniqueName(base string) string {
	name := s.freeName(base)
	s.reserveName(name)
	return name
}

// freeName returns base, or base suffixed with "_<n>" if base was already used in the scope or in the graph.
func (s *Scope) freeName(base string) string {
	name := base
	for ii := 1; s.names.used.Has(name) || s.graph.Operation(name) != nil; ii++ {
		name = fmt.Sprintf("%s_%d", base, ii)
	}
	return name
}
