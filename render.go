// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/helixdoc

package helixdoc

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

const (
	// FormatLua is the registry key of the Lua annotation backend.
	FormatLua = "lua"
	// FormatMarkdown is the registry key of the markdown reference backend.
	FormatMarkdown = "md"
	// FormatSelene is the registry key of the selene standard library backend.
	FormatSelene = "yml"
)

// Backend renders the documentation model into one textual artifact.
//
// Backends are stateless after construction and safe for concurrent use.
type Backend interface {
	// OutputName is the suggested artifact file name.
	OutputName() string
	// Generate renders the whole model.
	Generate(docs *Docs) (string, error)
	// GenerateClass renders one self-contained class block.
	GenerateClass(classes ClassTable, cls *Class) (string, error)
	// GenerateEnum renders one enum block. An empty result means the block
	// could not be rendered.
	GenerateEnum(name string, values []EnumValue) string
}

// backendChecker is implemented by backends that can fail at construction.
type backendChecker interface {
	Err() error
}

// Artifact is one rendered backend output.
type Artifact struct {
	Format  string
	Name    string
	Content string
}

// BackendOptions carries per-backend options for NewBackend and GenerateAllWith.
type BackendOptions struct {
	Lua      LuaOptions
	Markdown MarkdownOptions
	Selene   SeleneOptions
}

// backendFactories builds each registered backend from options.
var backendFactories = map[string]func(BackendOptions) Backend{
	FormatLua:      func(opt BackendOptions) Backend { return NewLuaBackend(opt.Lua) },
	FormatMarkdown: func(opt BackendOptions) Backend { return NewMarkdownBackend(opt.Markdown) },
	FormatSelene:   func(opt BackendOptions) Backend { return NewSeleneBackend(opt.Selene) },
}

// registry is the fixed set of default backends selectable by key.
var registry = newRegistry(BackendOptions{})

func newRegistry(opt BackendOptions) map[string]Backend {
	out := make(map[string]Backend, len(backendFactories))
	for key, factory := range backendFactories {
		out[key] = factory(opt)
	}

	return out
}

// Formats returns all registered backend keys in sorted order.
func Formats() []string {
	keys := make([]string, 0, len(registry))
	for key := range registry {
		keys = append(keys, key)
	}

	sort.Strings(keys)
	return keys
}

// Lookup returns the registered backend for key.
func Lookup(format string) (Backend, error) {
	backend, ok := registry[normalizeFormat(format)]
	if !ok {
		return nil, fmt.Errorf("%w %q (known: %s)", ErrUnknownBackend, format, strings.Join(Formats(), ", "))
	}

	return backend, nil
}

// Render renders docs with the backend registered under format.
func Render(docs *Docs, format string) (Artifact, error) {
	backend, err := Lookup(format)
	if err != nil {
		return Artifact{}, err
	}

	return renderArtifact(normalizeFormat(format), backend, docs)
}

// NewBackend builds the backend registered under format with custom options.
func NewBackend(format string, opt BackendOptions) (Backend, error) {
	factory, ok := backendFactories[normalizeFormat(format)]
	if !ok {
		return nil, fmt.Errorf("%w %q (known: %s)", ErrUnknownBackend, format, strings.Join(Formats(), ", "))
	}

	backend := factory(opt)
	if checker, ok := backend.(backendChecker); ok {
		if err := checker.Err(); err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrRenderBackend, normalizeFormat(format), err)
		}
	}

	return backend, nil
}

// GenerateAll renders docs with each requested default backend concurrently.
// No formats means every registered backend. Artifacts follow the requested order.
func GenerateAll(ctx context.Context, docs *Docs, formats ...string) ([]Artifact, error) {
	return generate(ctx, docs, Lookup, formats)
}

// GenerateAllWith is like GenerateAll but builds backends from opt.
func GenerateAllWith(ctx context.Context, docs *Docs, opt BackendOptions, formats ...string) ([]Artifact, error) {
	return generate(ctx, docs, func(format string) (Backend, error) {
		return NewBackend(format, opt)
	}, formats)
}

func generate(ctx context.Context, docs *Docs, resolve func(string) (Backend, error), formats []string) ([]Artifact, error) {
	if len(formats) == 0 {
		formats = Formats()
	}

	backends := make([]Backend, len(formats))
	for i, format := range formats {
		backend, err := resolve(format)
		if err != nil {
			return nil, err
		}

		backends[i] = backend
	}

	artifacts := make([]Artifact, len(formats))
	group, groupCtx := errgroup.WithContext(ctx)
	for i := range backends {
		i := i
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			artifact, err := renderArtifact(normalizeFormat(formats[i]), backends[i], docs)
			if err != nil {
				return err
			}

			artifacts[i] = artifact
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return artifacts, nil
}

// renderArtifact runs one backend and wraps its failure with the format key.
func renderArtifact(format string, backend Backend, docs *Docs) (Artifact, error) {
	content, err := backend.Generate(docs)
	if err != nil {
		return Artifact{}, fmt.Errorf("%w %q: %w", ErrRenderBackend, format, err)
	}

	return Artifact{
		Format:  format,
		Name:    backend.OutputName(),
		Content: content,
	}, nil
}

// normalizeFormat normalizes registry keys.
func normalizeFormat(format string) string {
	return strings.ToLower(strings.TrimSpace(format))
}
