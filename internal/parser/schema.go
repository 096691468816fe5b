package parser

import (
	"fmt"
	"go/token"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cmmoran/reusablegen/internal/model"
)

// Schema is the declarative alternative to scanning Go source.
//
//	package: marketdata
//	types:
//	  - name: marketdata.Quote
//	    fields:
//	      - name: bidPrice
//	        kind: long
type Schema struct {
	Package string       `yaml:"package,omitempty" json:"package,omitempty"`
	Types   []SchemaType `yaml:"types" json:"types"`
}

type SchemaType struct {
	Name   string        `yaml:"name" json:"name"`
	Fields []SchemaField `yaml:"fields,omitempty" json:"fields,omitempty"`
}

type SchemaField struct {
	Name string `yaml:"name" json:"name"`
	Kind string `yaml:"kind" json:"kind"`
}

func (p *Parser) ParseSchemaFile(file string) error {
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("open schema: %w", err)
	}
	defer f.Close()

	return p.ParseSchema(f)
}

func (p *Parser) ParseSchema(r io.Reader) error {
	var s Schema
	if err := yaml.NewDecoder(r).Decode(&s); err != nil && err != io.EOF {
		return fmt.Errorf("unmarshal schema: %w", err)
	}

	for _, t := range s.Types {
		pkg, name := model.ParseQualifiedName(t.Name)
		if !token.IsIdentifier(name) {
			p.diag.Infof("Skipping schema type %q: not a Go identifier", t.Name)
			continue
		}
		if pkg == "" && !strings.Contains(t.Name, ".") {
			pkg, _ = model.ParseQualifiedName(s.Package + ".")
		}

		source := &model.SourceType{
			Package: pkg,
			Name:    name,
			Fields:  model.NewFieldSet(),
		}
		p.diag.Infof("Classname: %s", source.QualifiedName())

		for _, f := range t.Fields {
			if !token.IsIdentifier(f.Name) || f.Name == "_" {
				p.diag.Infof("Skipping field %q of kind %s on %s: not a Go identifier", f.Name, f.Kind, source.QualifiedName())
				continue
			}
			p.diag.Infof("Element: %s, Type: %s", f.Name, f.Kind)
			source.Fields.Add(model.TaggedField{
				Name:       f.Name,
				Kind:       model.ParseKind(f.Kind),
				TypeString: f.Kind,
			})
		}
		p.addType(source)
	}
	return nil
}
