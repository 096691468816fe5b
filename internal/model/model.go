package model

import (
	"go/token"
	"strings"
)

// CompanionPrefix is prepended to a source type's simple name to form the
// companion type's name.
const CompanionPrefix = "Reusable"

type TaggedField struct {
	Name       string // Go identifier on the source type
	Kind       Kind
	TypeString string // declared type as written, for diagnostics
}

// FieldSet maps field names to kinds and remembers declaration order.
// Adding a name twice keeps its first position and takes the last kind.
type FieldSet struct {
	fields []TaggedField
	index  map[string]int
}

func NewFieldSet(fields ...TaggedField) *FieldSet {
	fs := &FieldSet{index: make(map[string]int, len(fields))}
	for _, f := range fields {
		fs.Add(f)
	}
	return fs
}

// Add records f, overwriting any earlier field with the same name.
// It reports whether an earlier field was overwritten.
func (fs *FieldSet) Add(f TaggedField) bool {
	if fs.index == nil {
		fs.index = make(map[string]int)
	}
	if i, ok := fs.index[f.Name]; ok {
		fs.fields[i] = f
		return true
	}
	fs.index[f.Name] = len(fs.fields)
	fs.fields = append(fs.fields, f)
	return false
}

func (fs *FieldSet) Get(name string) (TaggedField, bool) {
	if fs == nil {
		return TaggedField{}, false
	}
	i, ok := fs.index[name]
	if !ok {
		return TaggedField{}, false
	}
	return fs.fields[i], true
}

func (fs *FieldSet) Len() int {
	if fs == nil {
		return 0
	}
	return len(fs.fields)
}

// Fields returns the fields in emission order. The slice is a copy.
func (fs *FieldSet) Fields() []TaggedField {
	if fs == nil {
		return nil
	}
	out := make([]TaggedField, len(fs.fields))
	copy(out, fs.fields)
	return out
}

// Supported returns the fields whose kind has a zero-value literal.
func (fs *FieldSet) Supported() []TaggedField {
	return fs.filter(func(f TaggedField) bool { return f.Kind.Supported() })
}

// Unsupported returns the fields that generated code must skip.
func (fs *FieldSet) Unsupported() []TaggedField {
	return fs.filter(func(f TaggedField) bool { return !f.Kind.Supported() })
}

func (fs *FieldSet) filter(keep func(TaggedField) bool) []TaggedField {
	if fs == nil {
		return nil
	}
	out := make([]TaggedField, 0, len(fs.fields))
	for _, f := range fs.fields {
		if keep(f) {
			out = append(out, f)
		}
	}
	return out
}

// SourceType is a data-holder type selected for companion generation.
type SourceType struct {
	Package string // namespace; empty means none
	PkgPath string // import path, when known
	Name    string // simple name
	Fields  *FieldSet
}

// ParseQualifiedName splits "pkg.Name" into namespace and simple name.
// A missing or malformed namespace yields an empty namespace.
func ParseQualifiedName(qualified string) (pkg, name string) {
	qualified = strings.TrimSpace(qualified)
	lastDot := strings.LastIndex(qualified, ".")
	if lastDot <= 0 {
		return "", strings.TrimPrefix(qualified, ".")
	}
	pkg, name = qualified[:lastDot], qualified[lastDot+1:]
	// import paths are allowed ("github.com/x/marketdata.Quote"); the package
	// name is the last path element
	if slash := strings.LastIndex(pkg, "/"); slash >= 0 {
		pkg = pkg[slash+1:]
	}
	// so are dotted namespaces ("com.acme.marketdata.Quote"); the last
	// segment names the package
	if dot := strings.LastIndex(pkg, "."); dot >= 0 {
		pkg = pkg[dot+1:]
	}
	if !token.IsIdentifier(pkg) {
		pkg = ""
	}
	return pkg, name
}

func (s *SourceType) QualifiedName() string {
	return qualify(s.Package, s.Name)
}

func (s *SourceType) CompanionName() string {
	return CompanionPrefix + s.Name
}

func (s *SourceType) CompanionQualifiedName() string {
	return qualify(s.Package, s.CompanionName())
}

func qualify(pkg, name string) string {
	if pkg == "" {
		return name
	}
	return pkg + "." + name
}

// GeneratedUnit is one rendered companion file.
type GeneratedUnit struct {
	Source   *SourceType
	FileName string
	Content  []byte
}
