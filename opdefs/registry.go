package opdefs

import (
	"context"
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// SchemaExtension is the file extension of schema files.
const SchemaExtension = ".hcl"

//go:embed schemas/*.hcl
var embeddedSchemas embed.FS

// Registry holds a set of operation definitions, indexed by name.
//
// A Registry is safe for concurrent reads, but registering new definitions concurrently with reads
// is not supported.
type Registry struct {
	defs   map[string]*OpDef
	parser *hclparse.Parser
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		defs:   make(map[string]*OpDef),
		parser: hclparse.NewParser(),
	}
}

var defaultRegistry = sync.OnceValues(func() (*Registry, error) {
	reg := New()
	if err := reg.LoadFS(context.Background(), embeddedSchemas, "schemas"); err != nil {
		return nil, errors.WithMessage(err, "failed to load embedded op schemas")
	}
	return reg, nil
})

// Default returns the registry with the operations defined by the schemas embedded in this package.
// It is loaded only once, and it should not be modified.
func Default() (*Registry, error) {
	return defaultRegistry()
}

// Register validates and adds the definition to the registry.
// It fails if an operation with the same name is already registered.
func (r *Registry) Register(def *OpDef) error {
	if err := def.Validate(); err != nil {
		return err
	}
	if _, found := r.defs[def.Name]; found {
		return errors.Errorf("op %q is already registered", def.Name)
	}
	r.defs[def.Name] = def
	return nil
}

// Lookup returns the definition of the operation, or nil if it is not registered.
func (r *Registry) Lookup(name string) *OpDef {
	return r.defs[name]
}

// Len returns the number of registered operations.
func (r *Registry) Len() int {
	return len(r.defs)
}

// Names returns the sorted names of the registered operations.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.defs))
	for name := range r.defs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// All returns all registered definitions, sorted by name.
func (r *Registry) All() []*OpDef {
	names := r.Names()
	defs := make([]*OpDef, len(names))
	for ii, name := range names {
		defs[ii] = r.defs[name]
	}
	return defs
}

// LoadSource parses the HCL source of a schema file and registers its operations.
// The filename is only used for error messages.
func (r *Registry) LoadSource(src []byte, filename string) error {
	defs, err := parseSchema(r.parser, src, filename)
	if err != nil {
		return err
	}
	for _, def := range defs {
		if err := r.Register(def); err != nil {
			return errors.WithMessagef(err, "in %s", filename)
		}
	}
	klog.V(2).Infof("opdefs: loaded %d ops from %s", len(defs), filename)
	return nil
}

// LoadFile reads a schema file and registers its operations.
func (r *Registry) LoadFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read schema file")
	}
	return r.LoadSource(src, path)
}

// LoadDir loads all schema files (with the SchemaExtension) found recursively under dir.
func (r *Registry) LoadDir(ctx context.Context, dir string) error {
	return r.LoadFS(ctx, os.DirFS(dir), ".")
}

// LoadFS loads all schema files (with the SchemaExtension) found recursively under root in fsys.
// Files are loaded in lexical order, and the loading stops at the first error or if the context is cancelled.
func (r *Registry) LoadFS(ctx context.Context, fsys fs.FS, root string) error {
	var paths []string
	err := fs.WalkDir(fsys, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), SchemaExtension) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return errors.Wrapf(err, "failed to list schema files in %q", root)
	}
	if len(paths) == 0 {
		klog.Warningf("opdefs: no %s schema files found in %q", SchemaExtension, root)
		return nil
	}
	numOps := r.Len()
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, "loading of op schemas interrupted")
		}
		src, err := fs.ReadFile(fsys, path)
		if err != nil {
			return errors.Wrapf(err, "failed to read schema file")
		}
		if err = r.LoadSource(src, filepath.ToSlash(path)); err != nil {
			return err
		}
	}
	klog.V(1).Infof("opdefs: loaded %d ops from %d schema files in %q", r.Len()-numOps, len(paths), root)
	return nil
}
