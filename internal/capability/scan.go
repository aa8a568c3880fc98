package capability

import (
	"context"
	"fmt"
	"go/types"
	"log/slog"
	"strings"
	"unicode"

	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/go/types/typeutil"
)

// Scan loads the packages under dir and matches every concrete type against
// every interface declared in those packages.
func Scan(ctx context.Context, dir string, opts ScanOptions, logger *slog.Logger) (*Catalog, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	patterns := opts.Patterns
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}

	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes | packages.NeedSyntax |
			packages.NeedTypesInfo | packages.NeedImports,
		Dir:     dir,
		Context: ctx,
	}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("loading packages: %w", err)
	}
	logger.Info("packages loaded", "dir", dir, "packages_count", len(pkgs))

	cat := &Catalog{}
	msets := &typeutil.MethodSetCache{}
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			logger.Warn("package load error", "package", pkg.PkgPath, "error", e.Msg)
		}
		if pkg.Types == nil {
			continue
		}
		collect(cat, pkg.Types, msets, opts, logger)
	}
	logger.Info("declarations collected", "interfaces", len(cat.Interfaces), "types", len(cat.Types))

	match(cat, logger)
	logger.Info("scan complete", "relations", len(cat.Relations))
	return cat, nil
}

func collect(cat *Catalog, pkg *types.Package, msets *typeutil.MethodSetCache, opts ScanOptions, logger *slog.Logger) {
	scope := pkg.Scope()
	for _, name := range scope.Names() {
		tn, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || tn.IsAlias() {
			continue
		}
		if !opts.IncludeUnexported && !isExported(tn.Name()) {
			continue
		}
		named, ok := tn.Type().(*types.Named)
		if !ok || named.TypeParams().Len() > 0 {
			// generic declarations can't be matched without instantiation
			continue
		}

		if iface, ok := named.Underlying().(*types.Interface); ok {
			if iface.NumMethods() == 0 {
				continue
			}
			cat.Interfaces = append(cat.Interfaces, Interface{
				Name:    tn.Name(),
				PkgPath: pkg.Path(),
				PkgName: pkg.Name(),
				Methods: interfaceMethods(iface),
				named:   named,
				iface:   iface,
			})
			logger.Debug("found interface", "name", tn.Name(), "package", pkg.Path(), "methods", iface.NumMethods())
			continue
		}

		cat.Types = append(cat.Types, Type{
			Name:    tn.Name(),
			PkgPath: pkg.Path(),
			PkgName: pkg.Name(),
			Methods: typeMethods(named, msets),
			named:   named,
		})
		logger.Debug("found type", "name", tn.Name(), "package", pkg.Path())
	}
}

func match(cat *Catalog, logger *slog.Logger) {
	for i := range cat.Types {
		t := &cat.Types[i]
		ptr := types.NewPointer(t.named)
		for j := range cat.Interfaces {
			iface := &cat.Interfaces[j]
			switch {
			case types.Implements(t.named, iface.iface):
				cat.Relations = append(cat.Relations, Relation{Type: t, Interface: iface})
			case types.Implements(ptr, iface.iface):
				cat.Relations = append(cat.Relations, Relation{Type: t, Interface: iface, ViaPointer: true})
			default:
				continue
			}
			logger.Debug("match found", "type", t.Name, "interface", iface.Name)
		}
	}
}

func interfaceMethods(iface *types.Interface) []Method {
	out := make([]Method, iface.NumMethods())
	for i := range iface.NumMethods() {
		out[i] = newMethod(iface.Method(i))
	}
	return out
}

// typeMethods lists the methods callable on a T or *T, promoted ones included.
func typeMethods(named *types.Named, msets *typeutil.MethodSetCache) []Method {
	sels := typeutil.IntuitiveMethodSet(named, msets)
	out := make([]Method, 0, len(sels))
	for _, sel := range sels {
		if fn, ok := sel.Obj().(*types.Func); ok {
			out = append(out, newMethod(fn))
		}
	}
	return out
}

func newMethod(fn *types.Func) Method {
	sig := fn.Type().(*types.Signature)
	m := Method{Name: fn.Name(), Signature: formatSignature(fn.Name(), sig)}
	for i := range sig.Params().Len() {
		m.params = append(m.params, sig.Params().At(i).Type())
	}
	return m
}

func formatSignature(name string, sig *types.Signature) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteString("(")
	for i := range sig.Params().Len() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(shortType(sig.Params().At(i).Type()))
	}
	b.WriteString(")")
	switch res := sig.Results(); res.Len() {
	case 0:
	case 1:
		b.WriteString(" " + shortType(res.At(0).Type()))
	default:
		parts := make([]string, res.Len())
		for i := range res.Len() {
			parts[i] = shortType(res.At(i).Type())
		}
		b.WriteString(" (" + strings.Join(parts, ", ") + ")")
	}
	return b.String()
}

// shortType drops package qualifiers: observe.Sink prints as Sink.
func shortType(t types.Type) string {
	return types.TypeString(t, func(*types.Package) string { return "" })
}

func isExported(name string) bool {
	return name != "" && unicode.IsUpper(rune(name[0]))
}
