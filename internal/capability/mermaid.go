package capability

import (
	"fmt"
	"sort"
	"strings"
)

// DiagramOptions controls Mermaid output.
type DiagramOptions struct {
	MaxMethodsPerBox int // 0 means unlimited
}

func DefaultDiagramOptions() DiagramOptions {
	return DiagramOptions{MaxMethodsPerBox: 5}
}

// Mermaid renders cat as a classDiagram. Output is sorted so the same
// catalog always yields the same text. Types without any relation are left out.
func Mermaid(cat *Catalog, opts DiagramOptions) string {
	ifaces := make([]Interface, len(cat.Interfaces))
	copy(ifaces, cat.Interfaces)
	sort.Slice(ifaces, func(i, j int) bool { return nodeID(ifaces[i].PkgName, ifaces[i].Name) < nodeID(ifaces[j].PkgName, ifaces[j].Name) })

	related := make(map[string]bool)
	for _, rel := range cat.Relations {
		related[rel.Type.Key()] = true
	}
	var typs []Type
	for _, t := range cat.Types {
		if related[t.Key()] {
			typs = append(typs, t)
		}
	}
	sort.Slice(typs, func(i, j int) bool { return nodeID(typs[i].PkgName, typs[i].Name) < nodeID(typs[j].PkgName, typs[j].Name) })

	rels := make([]string, 0, len(cat.Relations))
	for _, rel := range cat.Relations {
		arrow := "--|>"
		if rel.ViaPointer {
			arrow = "..|>"
		}
		rels = append(rels, fmt.Sprintf("    %s %s %s",
			nodeID(rel.Type.PkgName, rel.Type.Name), arrow, nodeID(rel.Interface.PkgName, rel.Interface.Name)))
	}
	sort.Strings(rels)

	var b strings.Builder
	b.WriteString("classDiagram\n")
	if len(ifaces) == 0 && len(typs) == 0 {
		return b.String()
	}
	b.WriteString("    direction LR\n")
	for _, iface := range ifaces {
		fmt.Fprintf(&b, "    class %s {\n", nodeID(iface.PkgName, iface.Name))
		b.WriteString("        <<interface>>\n")
		writeMethods(&b, iface.Methods, opts.MaxMethodsPerBox)
		b.WriteString("    }\n")
	}
	for _, t := range typs {
		fmt.Fprintf(&b, "    class %s\n", nodeID(t.PkgName, t.Name))
	}
	for _, line := range rels {
		b.WriteString(line + "\n")
	}
	return b.String()
}

func writeMethods(b *strings.Builder, methods []Method, limit int) {
	n := len(methods)
	if limit > 0 && n > limit {
		n = limit
	}
	for _, m := range methods[:n] {
		fmt.Fprintf(b, "        +%s\n", sanitizeSignature(m.Signature))
	}
	if n < len(methods) {
		b.WriteString("        ...\n")
	}
}

// sanitizeSignature strips characters Mermaid treats as markup in class labels.
func sanitizeSignature(sig string) string {
	sig = strings.ReplaceAll(sig, "<-chan", "chan")
	sig = strings.ReplaceAll(sig, "interface{}", "any")
	return strings.ReplaceAll(sig, "{}", "")
}

func nodeID(pkgName, name string) string {
	return strings.NewReplacer("/", "_", ".", "_", "-", "_").Replace(pkgName + "_" + name)
}
