// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/helixdoc

package helixdoc

import "errors"

var (
	// ErrMalformedType is returned when a type string is empty or has an empty union alternative.
	ErrMalformedType = errors.New("malformed type")
	// ErrDanglingInheritance is returned when a class lists a base class absent from the class table.
	ErrDanglingInheritance = errors.New("dangling inheritance")
	// ErrDuplicateClass is returned when a class name is added to the model twice.
	ErrDuplicateClass = errors.New("duplicate class")
	// ErrDuplicateEnum is returned when an enum name is added to the model twice.
	ErrDuplicateEnum = errors.New("duplicate enum")
	// ErrUnknownBackend is returned when requested output format is not registered.
	ErrUnknownBackend = errors.New("unknown backend")
	// ErrRenderClass is returned when one class block cannot be rendered.
	ErrRenderClass = errors.New("render class")
	// ErrRenderBackend is returned when a backend fails to produce its artifact.
	ErrRenderBackend = errors.New("render backend")
	// ErrExecuteMarkdownTemplate is returned when markdown template execution fails.
	ErrExecuteMarkdownTemplate = errors.New("execute markdown template")
	// ErrParseCustomTemplate is returned when a caller-supplied markdown template does not parse.
	ErrParseCustomTemplate = errors.New("parse custom template")
	// ErrParseBuiltinTemplate is returned when built-in template parsing fails.
	ErrParseBuiltinTemplate = errors.New("parse built-in template")
	// ErrReadSourceDir is returned when schema source directory traversal fails.
	ErrReadSourceDir = errors.New("read source dir")
	// ErrReadSourceFile is returned when one schema source file cannot be read.
	ErrReadSourceFile = errors.New("read source file")
	// ErrDecodeSource is returned when schema source decoding fails.
	ErrDecodeSource = errors.New("decode source")
	// ErrUnknownAuthority is returned by ParseAuthority for unrecognized authority names.
	ErrUnknownAuthority = errors.New("unknown authority")
)
