package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ConfigError captures an invalid background, foreground, or output
// configuration. A ConfigError is fatal for the whole generation call.
type ConfigError struct {
	Field   string
	Message string
	Err     error
}

// NewConfigError constructs a ConfigError.
func NewConfigError(field, message string, err error) error {
	return &ConfigError{Field: field, Message: message, Err: err}
}

func (e *ConfigError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("config error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ConfigError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// AssetError represents a failure while rendering or compositing a single
// catalog spec. It is recoverable: the pipeline records it and continues
// with the remaining specs.
type AssetError struct {
	Name string
	Err  error
}

// NewAssetError constructs an AssetError for the named spec.
func NewAssetError(name string, err error) error {
	return &AssetError{Name: name, Err: err}
}

func (e *AssetError) Error() string {
	if e == nil {
		return ""
	}
	if e.Name != "" {
		return fmt.Sprintf("asset error [%s]: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("asset error: %v", e.Err)
}

// Unwrap exposes the underlying error.
func (e *AssetError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ArtifactError represents a failure while building an auxiliary artifact
// (icon pack, manifest, descriptor file). Artifacts share the per-item
// isolation contract of assets: the remaining artifacts still build.
type ArtifactError struct {
	Artifact string
	Err      error
}

// NewArtifactError constructs an ArtifactError.
func NewArtifactError(artifact string, err error) error {
	return &ArtifactError{Artifact: artifact, Err: err}
}

func (e *ArtifactError) Error() string {
	if e == nil {
		return ""
	}
	if e.Artifact != "" {
		return fmt.Sprintf("artifact error [%s]: %v", e.Artifact, e.Err)
	}
	return fmt.Sprintf("artifact error: %v", e.Err)
}

// Unwrap exposes the underlying error.
func (e *ArtifactError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// WriteError represents a disk write failure for a single output path.
type WriteError struct {
	Path string
	Err  error
}

// NewWriteError constructs a WriteError.
func NewWriteError(path string, err error) error {
	return &WriteError{Path: path, Err: err}
}

func (e *WriteError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("write error: %s: %v", e.Path, e.Err)
}

// Unwrap exposes the root error.
func (e *WriteError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
