package descriptor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sfops/flowrec/internal/files/filesystem"
	"github.com/sfops/flowrec/pkg/flowrec"
)

// Deactivator ensures every flow named for deletion has a local
// deactivation descriptor with the inactive sentinel.
//
// Per flow the transition is:
//   - no local descriptor: write a minimal inactive one (the remote org
//     may never have been retrieved, so no prior record is assumed)
//   - existing descriptor: flip activeVersionNumber to the sentinel,
//     preserving all other fields
//
// Both paths are idempotent. Failures abort immediately with the flow
// name wrapped into the error.
type Deactivator struct {
	fs           filesystem.FileSystem
	logger       flowrec.Logger
	materializer flowrec.ArtifactMaterializer
	dir          string
}

// NewDeactivator creates a Deactivator writing descriptors under dir.
// Panics on nil dependencies: those are programmer errors that should
// fail loudly at startup, not surface as nil dereferences mid-run.
func NewDeactivator(fs filesystem.FileSystem, logger flowrec.Logger, dir string) *Deactivator {
	if fs == nil {
		panic("fs cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	if dir == "" {
		panic("dir cannot be empty")
	}
	return &Deactivator{fs: fs, logger: logger, dir: dir}
}

// WithMaterializer returns a new Deactivator that first asks the given
// collaborator to retrieve descriptors from the org before editing them.
// Retrieval failure is tolerated: the flow falls back to a minimal
// descriptor.
func (d *Deactivator) WithMaterializer(m flowrec.ArtifactMaterializer) *Deactivator {
	clone := *d
	clone.materializer = m
	return &clone
}

// Deactivate writes one descriptor per flow name. Running it twice on the
// same names yields the same final state.
func (d *Deactivator) Deactivate(ctx context.Context, names []string) error {
	if len(names) == 0 {
		return nil
	}

	if err := d.fs.MkdirAll(d.dir, 0755); err != nil {
		return fmt.Errorf("failed to create descriptor directory %s: %w", d.dir, err)
	}

	if d.materializer != nil {
		if err := d.materializer.Materialize(ctx, names); err != nil {
			d.logger.Warn("Descriptor retrieval failed, falling back to minimal descriptors: %v", err)
		}
	}

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := d.deactivateOne(name); err != nil {
			return err
		}
	}

	return nil
}

func (d *Deactivator) deactivateOne(name string) error {
	path := filepath.Join(d.dir, name+flowrec.DescriptorFileSuffix)

	data, err := d.fs.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		d.logger.Verbose("No descriptor for flow '%s', creating a minimal inactive one", name)
		return d.write(name, path, NewInactive())
	case err != nil:
		return fmt.Errorf("flow %q: failed to read descriptor %s: %w", name, path, err)
	}

	fd, err := Parse(data, name)
	if err != nil {
		return err
	}

	fd.Deactivate()
	d.logger.Verbose("Deactivating flow '%s' via %s", name, path)
	return d.write(name, path, fd)
}

func (d *Deactivator) write(name, path string, fd *FlowDefinition) error {
	data, err := fd.Serialize()
	if err != nil {
		return fmt.Errorf("flow %q: failed to serialize descriptor: %w", name, err)
	}
	if err := d.fs.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("flow %q: failed to write descriptor %s: %w", name, path, err)
	}
	return nil
}
