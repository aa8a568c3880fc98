// Package capability inspects Go packages for capability interfaces and the
// concrete types that satisfy them.
package capability

import "go/types"

// Interface is a named, non-generic interface with at least one method.
type Interface struct {
	Name    string
	PkgPath string
	PkgName string
	Methods []Method
	named   *types.Named
	iface   *types.Interface
}

// Type is a named concrete type.
type Type struct {
	Name    string
	PkgPath string
	PkgName string
	Methods []Method
	named   *types.Named
}

// Method is a method name plus its short signature, e.g. "GetBenefit(Benefit)".
type Method struct {
	Name      string
	Signature string
	params    []types.Type
}

// Relation records that Type satisfies Interface.
type Relation struct {
	Type       *Type
	Interface  *Interface
	ViaPointer bool // only *T satisfies the interface
}

// Catalog is the result of a Scan.
type Catalog struct {
	Interfaces []Interface
	Types      []Type
	Relations  []Relation
}

// ScanOptions controls what a Scan loads and keeps.
type ScanOptions struct {
	Patterns          []string // package patterns, default "./..."
	IncludeUnexported bool
}

func (i *Interface) Key() string { return i.PkgPath + "." + i.Name }
func (t *Type) Key() string { return t.PkgPath + "." + t.Name }

// Implementers returns the names of the types satisfying the interface called name.
func (c *Catalog) Implementers(name string) []string {
	var out []string
	for _, rel := range c.Relations {
		if rel.Interface.Name == name {
			out = append(out, rel.Type.Name)
		}
	}
	return out
}

// Implements reports whether typeName satisfies ifaceName.
func (c *Catalog) Implements(typeName, ifaceName string) bool {
	for _, rel := range c.Relations {
		if rel.Type.Name == typeName && rel.Interface.Name == ifaceName {
			return true
		}
	}
	return false
}
