package parser

import (
	"strings"

	"github.com/fatih/structtag"
)

// GenerateDirective in a struct's doc comment selects it even when none of
// its fields are marked.
const GenerateDirective = "//reusable:generate"

// IsMarked reports whether a raw struct tag (without backquotes) carries the
// marker key. `key:""`, `key:"true"` and any other value mark the field;
// `key:"-"` and `key:"false"` do not.
func IsMarked(rawTag, key string) bool {
	if rawTag == "" {
		return false
	}
	tags, err := structtag.Parse(rawTag)
	if err != nil {
		return false
	}
	tag, err := tags.Get(key)
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(tag.Name)) {
	case "-", "false":
		return false
	}
	return true
}

// HasGenerateDirective reports whether any comment line is the generate
// directive. Directive lines are dropped by ast.CommentGroup.Text, so the
// raw comment text is passed in.
func HasGenerateDirective(lines []string) bool {
	for _, l := range lines {
		if strings.TrimSpace(l) == GenerateDirective {
			return true
		}
	}
	return false
}
