package restable

import (
	"fmt"

	"github.com/worldiety/option"
)

// MustCreatePackage is CreatePackage's panicking counterpart, grounded on api.go's option.Must(value, err)
// convenience boundary.
func (t *ResourceTable) MustCreatePackage(name string, id Maybe[uint8]) *ResourceTablePackage {
	return option.Must(t.CreatePackage(name, id))
}

// MustAddResource panics instead of returning an error, for callers (tests, prototypes) that already know the
// insertion cannot fail.
func (t *ResourceTable) MustAddResource(ctx Context, name ResourceName, resId Maybe[ResourceId], config ConfigDescription, product string, value Value) {
	if err := t.AddResource(ctx, name, resId, config, product, value); err != nil {
		panic(fmt.Errorf("restable: MustAddResource(%s): %w", name, err))
	}
}

// MustSetSymbolState panics instead of returning an error.
func (t *ResourceTable) MustSetSymbolState(ctx Context, name ResourceName, resId Maybe[ResourceId], status SymbolStatus) {
	if err := t.SetSymbolState(ctx, name, resId, status); err != nil {
		panic(fmt.Errorf("restable: MustSetSymbolState(%s): %w", name, err))
	}
}

// MustAddFileReference panics instead of returning an error.
func (t *ResourceTable) MustAddFileReference(ctx Context, name ResourceName, config ConfigDescription, src Source, path string, file Maybe[FileHandle]) {
	if err := t.AddFileReference(ctx, name, config, src, path, file); err != nil {
		panic(fmt.Errorf("restable: MustAddFileReference(%s): %w", name, err))
	}
}

// MustParseDimension is ParseDimension's panicking counterpart.
func MustParseDimension(text string) *BinaryPrimitive {
	return option.Must(ParseDimension(text))
}

// MustParseFraction is ParseFraction's panicking counterpart.
func MustParseFraction(text string) *BinaryPrimitive {
	return option.Must(ParseFraction(text))
}
