// Package emitter renders companion types for source types with jennifer.
package emitter

import (
	"bytes"
	"fmt"

	"github.com/dave/jennifer/jen"
	"github.com/iancoleman/strcase"

	"github.com/cmmoran/reusablegen/internal/diag"
	"github.com/cmmoran/reusablegen/internal/model"
)

const (
	// Generator names the tool in the generated header.
	Generator = "reusablegen"

	wrappedField = "object"
	receiver     = "r"
	sourceParam  = "source"
)

// Emitter renders one file per source type. DefaultPackage is used for types
// without a namespace, since a Go file cannot omit its package clause.
type Emitter struct {
	DefaultPackage string
	FileSuffix     string

	diag *diag.Sink
}

func New(defaultPackage, fileSuffix string, sink *diag.Sink) *Emitter {
	if sink == nil {
		sink = diag.NewSink(nil)
	}
	return &Emitter{
		DefaultPackage: defaultPackage,
		FileSuffix:     fileSuffix,
		diag:           sink,
	}
}

// Emit renders the companion of source. The same source always renders to the
// same bytes.
func (e *Emitter) Emit(source *model.SourceType) (model.GeneratedUnit, error) {
	e.diag.Infof("Package: %s, simpleClassName: %s, reusableSimpleClassName: %s, reusableQualifiedClassName: %s",
		source.Package, source.Name, source.CompanionName(), source.CompanionQualifiedName())

	for _, f := range source.Fields.Unsupported() {
		e.diag.Unsupportedf("Unhandled type for field %s, with type %s", f.Name, f.TypeString)
	}

	f := e.File(source)
	buf := new(bytes.Buffer)
	if err := f.Render(buf); err != nil {
		return model.GeneratedUnit{}, fmt.Errorf("render %s: %w", source.CompanionQualifiedName(), err)
	}

	return model.GeneratedUnit{
		Source:   source,
		FileName: e.FileName(source),
		Content:  buf.Bytes(),
	}, nil
}

// File builds the jennifer file for source without rendering it.
func (e *Emitter) File(source *model.SourceType) *jen.File {
	pkg := source.Package
	if pkg == "" {
		pkg = e.DefaultPackage
	}

	var f *jen.File
	if source.PkgPath != "" {
		f = jen.NewFilePathName(source.PkgPath, pkg)
	} else {
		f = jen.NewFile(pkg)
	}
	f.HeaderComment(fmt.Sprintf("Code generated by %s. DO NOT EDIT.", Generator))

	companion := source.CompanionName()

	f.Commentf("%s wraps a %s so it can be cleared and refilled in place.", companion, source.Name)
	f.Type().Id(companion).Struct(
		jen.Id(wrappedField).Id(source.Name),
	)
	f.Line()

	f.Commentf("New%s returns a companion holding a zero %s.", companion, source.Name)
	f.Func().Id("New" + companion).Params().Op("*").Id(companion).Block(
		jen.Return(jen.Op("&").Id(companion).Values()),
	)
	f.Line()

	f.Comment("Build returns the live wrapped instance, not a copy.")
	f.Func().Params(recv(companion)).Id("Build").Params().Op("*").Id(source.Name).Block(
		jen.Return(jen.Op("&").Id(receiver).Dot(wrappedField)),
	)
	f.Line()

	f.Commentf("Clear resets every tracked field of the wrapped %s to its zero value.", source.Name)
	f.Func().Params(recv(companion)).Id("Clear").Params().BlockFunc(func(g *jen.Group) {
		for _, fld := range source.Fields.Supported() {
			lit, _ := fld.Kind.ZeroLiteral()
			// the literal is already Go source; Id renders it verbatim
			g.Id(receiver).Dot(wrappedField).Dot(fld.Name).Op("=").Id(lit)
		}
	})
	f.Line()

	f.Commentf("CopyFrom copies every tracked field from source's wrapped %s.", source.Name)
	f.Func().Params(recv(companion)).Id("CopyFrom").Params(
		jen.Id(sourceParam).Op("*").Id(companion),
	).BlockFunc(func(g *jen.Group) {
		for _, fld := range source.Fields.Supported() {
			g.Id(receiver).Dot(wrappedField).Dot(fld.Name).Op("=").Id(sourceParam).Dot(wrappedField).Dot(fld.Name)
		}
	})

	return f
}

// FileName is the snake-cased companion name plus the configured suffix,
// e.g. reusable_quote.gen.go.
func (e *Emitter) FileName(source *model.SourceType) string {
	return SnakeCase(source.CompanionName()) + e.FileSuffix
}

func recv(companion string) *jen.Statement {
	return jen.Id(receiver).Op("*").Id(companion)
}

// SnakeCase converts a Go identifier to lower snake case, keeping acronyms
// together: ReusableHTTPQuote → reusable_http_quote.
func SnakeCase(s string) string {
	return strcase.ToSnake(s)
}
