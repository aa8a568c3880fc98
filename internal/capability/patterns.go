package capability

import (
	"go/types"
	"sort"
)

// DoubleDispatch describes a visitor-shaped pair of interfaces: Element has a
// method accepting Visitor, and Visitor has one method per concrete Element.
type DoubleDispatch struct {
	Element  string   // e.g. "Member"
	Visitor  string   // e.g. "Benefit"
	Accept   string   // Element method that takes the Visitor
	Variants []string // concrete Element types the Visitor handles directly
}

// DetectDoubleDispatch finds every Element/Visitor pair in cat.
func DetectDoubleDispatch(cat *Catalog) []DoubleDispatch {
	var out []DoubleDispatch
	for i := range cat.Interfaces {
		elem := &cat.Interfaces[i]
		for j := range cat.Interfaces {
			if i == j {
				continue
			}
			visitor := &cat.Interfaces[j]
			accept, ok := acceptMethod(elem, visitor)
			if !ok {
				continue
			}
			variants := visitedVariants(cat, elem, visitor)
			if len(variants) == 0 {
				continue
			}
			out = append(out, DoubleDispatch{
				Element:  elem.Name,
				Visitor:  visitor.Name,
				Accept:   accept,
				Variants: variants,
			})
		}
	}
	return out
}

// acceptMethod returns the first method of elem taking a visitor parameter.
func acceptMethod(elem, visitor *Interface) (string, bool) {
	for _, m := range elem.Methods {
		for _, p := range m.params {
			if types.Identical(p, visitor.named) {
				return m.Name, true
			}
		}
	}
	return "", false
}

// visitedVariants lists the implementers of elem that appear as a parameter
// of some visitor method.
func visitedVariants(cat *Catalog, elem, visitor *Interface) []string {
	seen := make(map[string]bool)
	for _, rel := range cat.Relations {
		if rel.Interface != elem {
			continue
		}
		for _, m := range visitor.Methods {
			for _, p := range m.params {
				if types.Identical(p, rel.Type.named) || types.Identical(p, types.NewPointer(rel.Type.named)) {
					seen[rel.Type.Name] = true
				}
			}
		}
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
