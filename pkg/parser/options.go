package parser

import (
	"path/filepath"
	"strings"
)

const (
	DefaultTagKey     = "reusable"
	DefaultFileSuffix = ".gen.go"
)

// Options control discovery and emission.
//
// InDir          – Go package directory to scan for marked structs
// Schema         – YAML schema file; when set, InDir is not scanned
// OutDir         – output directory; defaults to InDir (or the schema's directory)
// TagKey         – struct tag key marking a field for inclusion
// DefaultPackage – package clause for types without a namespace
// FileSuffix     – appended to the snake-cased companion name
// Manifest       – manifest path; empty disables the manifest
// DryRun         – render without writing
type Options struct {
	InDir          string `json:"in_dir,omitempty" yaml:"in_dir,omitempty" toml:"in_dir,omitempty" mapstructure:"in_dir,omitempty"`
	Schema         string `json:"schema,omitempty" yaml:"schema,omitempty" toml:"schema,omitempty" mapstructure:"schema,omitempty"`
	OutDir         string `json:"out_dir,omitempty" yaml:"out_dir,omitempty" toml:"out_dir,omitempty" mapstructure:"out_dir,omitempty"`
	TagKey         string `json:"tag_key,omitempty" yaml:"tag_key,omitempty" toml:"tag_key,omitempty" mapstructure:"tag_key,omitempty"`
	DefaultPackage string `json:"default_package,omitempty" yaml:"default_package,omitempty" toml:"default_package,omitempty" mapstructure:"default_package,omitempty"`
	FileSuffix     string `json:"file_suffix,omitempty" yaml:"file_suffix,omitempty" toml:"file_suffix,omitempty" mapstructure:"file_suffix,omitempty"`
	Manifest       string `json:"manifest,omitempty" yaml:"manifest,omitempty" toml:"manifest,omitempty" mapstructure:"manifest,omitempty"`
	DryRun         bool   `json:"dry_run,omitempty" yaml:"dry_run,omitempty" toml:"dry_run,omitempty" mapstructure:"dry_run,omitempty"`
}

func NewOptions() *Options {
	return &Options{
		InDir:      ".",
		TagKey:     DefaultTagKey,
		FileSuffix: DefaultFileSuffix,
	}
}

// New builds Options from the defaults and opts, then normalizes them.
func New(opts ...Option) *Options {
	o := NewOptions()
	for _, fn := range opts {
		fn(o)
	}
	o.Normalize()
	return o
}

func (o *Options) Normalize() {
	if len(o.InDir) == 0 && len(o.Schema) == 0 {
		o.InDir = "."
	}
	if strings.Contains(o.InDir, ".") {
		o.InDir, _ = filepath.Abs(o.InDir)
	}
	if len(o.OutDir) == 0 {
		if len(o.Schema) > 0 {
			o.OutDir = filepath.Dir(o.Schema)
		} else {
			o.OutDir = o.InDir
		}
	}
	if strings.Contains(o.OutDir, ".") {
		o.OutDir, _ = filepath.Abs(o.OutDir)
	}
	o.TagKey = strings.TrimSpace(o.TagKey)
	if len(o.TagKey) == 0 {
		o.TagKey = DefaultTagKey
	}
	if len(o.FileSuffix) == 0 {
		o.FileSuffix = DefaultFileSuffix
	}
}

// functional option pattern ---------------------------------------------------

type Option func(*Options)

func WithInDir(d string) Option          { return func(o *Options) { o.InDir = d } }
func WithSchema(f string) Option         { return func(o *Options) { o.Schema = f } }
func WithOutDir(d string) Option         { return func(o *Options) { o.OutDir = d } }
func WithTagKey(k string) Option         { return func(o *Options) { o.TagKey = k } }
func WithDefaultPackage(p string) Option { return func(o *Options) { o.DefaultPackage = p } }
func WithFileSuffix(s string) Option     { return func(o *Options) { o.FileSuffix = s } }
func WithManifest(p string) Option       { return func(o *Options) { o.Manifest = p } }
func WithDryRun() Option                 { return func(o *Options) { o.DryRun = true } }
