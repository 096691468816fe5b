package parser

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"sort"
	"strconv"

	"golang.org/x/tools/go/packages"

	"github.com/cmmoran/reusablegen/internal/diag"
	"github.com/cmmoran/reusablegen/internal/model"
	rparser "github.com/cmmoran/reusablegen/pkg/parser"
)

type Options = rparser.Options

var ErrNoPackages = errors.New("no packages found")

// Parser holds state/results of a parse run.
type Parser struct {
	Opts  Options
	Types []*model.SourceType

	diag *diag.Sink
	seen map[string]int // qualified name → index in Types
}

func New(opts *Options, sink *diag.Sink) *Parser {
	opts.Normalize()
	if sink == nil {
		sink = diag.NewSink(nil)
	}
	return &Parser{
		Opts:  *opts,
		Types: make([]*model.SourceType, 0),
		diag:  sink,
		seen:  make(map[string]int),
	}
}

// Parse discovers source types from the schema file when one is configured,
// otherwise from the Go package in InDir.
func (p *Parser) Parse(ctx context.Context) error {
	if p.Opts.Schema != "" {
		return p.ParseSchemaFile(p.Opts.Schema)
	}
	return p.ParsePackage(ctx)
}

func (p *Parser) ParsePackage(ctx context.Context) error {
	pkgs, err := packages.Load(&packages.Config{
		Context: ctx,
		Mode:    packages.NeedName | packages.NeedFiles | packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo,
		Dir:     p.Opts.InDir,
		Fset:    token.NewFileSet(),
	}, ".")
	if err != nil {
		return fmt.Errorf("load package %s: %w", p.Opts.InDir, err)
	}
	if len(pkgs) == 0 {
		return fmt.Errorf("%w in %s", ErrNoPackages, p.Opts.InDir)
	}

	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			// A list error means there is nothing to read; type errors are
			// expected when the package already refers to companions that have
			// not been generated yet.
			if e.Kind == packages.ListError {
				return fmt.Errorf("load package %s: %w", p.Opts.InDir, e)
			}
			p.diag.Infof("type error in %s: %s", pkg.PkgPath, e.Msg)
		}
		p.CollectFiles(pkg.Name, pkg.PkgPath, pkg.Fset, pkg.Syntax, pkg.TypesInfo)
	}
	return nil
}

// CollectFiles walks the files of one package and records every selected
// struct. info may be nil, in which case kinds are resolved from the type
// identifiers alone.
func (p *Parser) CollectFiles(pkgName, pkgPath string, fset *token.FileSet, files []*ast.File, info *types.Info) {
	sorted := make([]*ast.File, len(files))
	copy(sorted, files)
	if fset != nil {
		sort.SliceStable(sorted, func(i, j int) bool {
			return fset.Position(sorted[i].Pos()).Filename < fset.Position(sorted[j].Pos()).Filename
		})
	}
	for _, file := range sorted {
		p.collectStructs(pkgName, pkgPath, file, info)
	}
}

func (p *Parser) collectStructs(pkgName, pkgPath string, file *ast.File, info *types.Info) {
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}

		for _, spec := range gen.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok || ts.Assign.IsValid() {
				continue
			}
			st, ok := ts.Type.(*ast.StructType)
			if !ok {
				continue
			}

			// a lone spec takes its doc from the GenDecl
			directive := rparser.HasGenerateDirective(commentLines(ts.Doc))
			if len(gen.Specs) == 1 {
				directive = directive || rparser.HasGenerateDirective(commentLines(gen.Doc))
			}

			marked := p.markedFields(st)
			if len(marked) == 0 && !directive {
				continue
			}

			if ts.TypeParams != nil && len(ts.TypeParams.List) > 0 {
				p.diag.Unsupportedf("type %s.%s has type parameters; generic types are not supported", pkgName, ts.Name.Name)
				continue
			}

			source := &model.SourceType{
				Package: pkgName,
				PkgPath: pkgPath,
				Name:    ts.Name.Name,
				Fields:  model.NewFieldSet(),
			}
			p.diag.Infof("Classname: %s", source.QualifiedName())

			for _, fld := range marked {
				p.addField(source, fld, info)
			}
			p.addType(source)
		}
	}
}

func (p *Parser) markedFields(st *ast.StructType) []*ast.Field {
	if st.Fields == nil {
		return nil
	}
	out := make([]*ast.Field, 0, len(st.Fields.List))
	for _, fld := range st.Fields.List {
		if fld.Tag == nil {
			continue
		}
		if rparser.IsMarked(tagValue(fld.Tag), p.Opts.TagKey) {
			out = append(out, fld)
		}
	}
	return out
}

func (p *Parser) addField(source *model.SourceType, fld *ast.Field, info *types.Info) {
	kind := p.resolveKind(fld.Type, info)
	typeString := types.ExprString(fld.Type)

	names := make([]string, 0, len(fld.Names))
	if len(fld.Names) == 0 {
		// Embedded field: the name comes from the type expression.
		names = append(names, embeddedFieldName(fld.Type))
	}
	for _, id := range fld.Names {
		names = append(names, id.Name)
	}

	for _, name := range names {
		switch name {
		case "":
			p.diag.Unsupportedf("Unhandled embedded field with type %s on %s: field name cannot be resolved", typeString, source.QualifiedName())
			continue
		case "_":
			p.diag.Infof("Skipping blank field of type %s on %s", typeString, source.QualifiedName())
			continue
		}
		p.diag.Infof("Element: %s, Type: %s", name, typeString)
		source.Fields.Add(model.TaggedField{
			Name:       name,
			Kind:       kind,
			TypeString: typeString,
		})
	}
}

func (p *Parser) resolveKind(expr ast.Expr, info *types.Info) model.Kind {
	if info != nil {
		if t := info.TypeOf(expr); t != nil && t != types.Typ[types.Invalid] {
			return model.KindOf(t)
		}
	}
	if id, ok := expr.(*ast.Ident); ok {
		return model.KindOfIdent(id.Name)
	}
	return model.KindUnsupported
}

// addType appends source, replacing an earlier type with the same qualified
// name.
func (p *Parser) addType(source *model.SourceType) {
	key := source.QualifiedName()
	if i, ok := p.seen[key]; ok {
		p.Types[i] = source
		return
	}
	p.seen[key] = len(p.Types)
	p.Types = append(p.Types, source)
}

// helpers
func embeddedFieldName(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.SelectorExpr:
		return t.Sel.Name
	case *ast.StarExpr:
		return embeddedFieldName(t.X)
	case *ast.IndexExpr:
		return embeddedFieldName(t.X)
	case *ast.IndexListExpr:
		return embeddedFieldName(t.X)
	}
	return ""
}

func tagValue(lit *ast.BasicLit) string {
	if lit == nil || len(lit.Value) < 2 {
		return ""
	}
	// struct tags are raw or interpreted string literals; both are quoted
	// by one character on each side
	v := lit.Value[1 : len(lit.Value)-1]
	if lit.Value[0] == '"' {
		if unq, err := strconv.Unquote(lit.Value); err == nil {
			v = unq
		}
	}
	return v
}

func commentLines(cg *ast.CommentGroup) []string {
	if cg == nil {
		return nil
	}
	out := make([]string, 0, len(cg.List))
	for _, c := range cg.List {
		out = append(out, c.Text)
	}
	return out
}
