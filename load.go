// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/helixdoc

package helixdoc

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// enumTableStem is the base name of the enum table file at any level.
const enumTableStem = "Enums"

// sourceCategories maps top-level schema directories to the static class flag.
var sourceCategories = map[string]bool{
	"Classes":        false,
	"Structs":        false,
	"StaticClasses":  true,
	"UtilityClasses": true,
}

// LoadOptions configures schema directory ingestion.
type LoadOptions struct {
	// Logger receives per-file debug entries. Nil disables logging.
	Logger *zap.Logger
}

// LoadDir reads a local schema directory into a documentation model.
func LoadDir(root string, opt LoadOptions) (*Docs, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrReadSourceDir, root, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%w %q: not a directory", ErrReadSourceDir, root)
	}

	return LoadFS(os.DirFS(root), opt)
}

// LoadFS reads a schema tree from fsys in lexical path order.
//
// Files whose base name starts with "_" are skipped. Enums.{json,yml,yaml}
// holds the ordered enum table; class files live under Classes, Structs,
// StaticClasses and UtilityClasses.
func LoadFS(fsys fs.FS, opt LoadOptions) (*Docs, error) {
	logger := opt.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	docs := NewDocs()
	var classCount, enumCount int
	err := fs.WalkDir(fsys, ".", func(filePath string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return fmt.Errorf("%w %q: %w", ErrReadSourceDir, filePath, walkErr)
		}

		if entry.IsDir() || strings.HasPrefix(entry.Name(), "_") {
			return nil
		}

		ext := strings.ToLower(path.Ext(filePath))
		if !isSourceExt(ext) {
			return nil
		}

		stem := strings.TrimSuffix(entry.Name(), path.Ext(entry.Name()))
		if stem == enumTableStem {
			added, err := loadEnumTable(fsys, filePath, ext, docs)
			if err != nil {
				return err
			}

			enumCount += added
			logger.Debug("loaded enum table", zap.String("path", filePath), zap.Int("enums", added))
			return nil
		}

		category, _, _ := strings.Cut(filePath, "/")
		static, ok := sourceCategories[category]
		if !ok || category == filePath {
			logger.Debug("skipped file outside class categories", zap.String("path", filePath))
			return nil
		}

		cls, err := loadClass(fsys, filePath, ext)
		if err != nil {
			return err
		}

		if cls.Name == "" {
			cls.Name = stem
		}

		cls.StaticClass = static
		if err := docs.AddClass(cls); err != nil {
			return fmt.Errorf("%q: %w", filePath, err)
		}

		classCount++
		logger.Debug("loaded class",
			zap.String("path", filePath),
			zap.String("class", cls.Name),
			zap.Bool("static", static),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("schema loaded", zap.Int("classes", classCount), zap.Int("enums", enumCount))
	return docs, nil
}

// isSourceExt reports whether ext is a supported schema file extension.
func isSourceExt(ext string) bool {
	switch ext {
	case ".json", ".yml", ".yaml":
		return true
	default:
		return false
	}
}

// loadClass decodes one class file.
func loadClass(fsys fs.FS, filePath, ext string) (*Class, error) {
	data, err := fs.ReadFile(fsys, filePath)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrReadSourceFile, filePath, err)
	}

	cls := &Class{}
	if ext == ".json" {
		err = json.Unmarshal(data, cls)
	} else {
		err = yaml.Unmarshal(data, cls)
	}

	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrDecodeSource, filePath, err)
	}

	return cls, nil
}

// enumBlock is one enum entry of the enum table.
type enumBlock struct {
	Enums []EnumValue `json:"enums" yaml:"enums"`
}

// loadEnumTable decodes an enum table keeping declaration order of enum names.
func loadEnumTable(fsys fs.FS, filePath, ext string, docs *Docs) (int, error) {
	data, err := fs.ReadFile(fsys, filePath)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrReadSourceFile, filePath, err)
	}

	var enums []Enum
	if ext == ".json" {
		enums, err = decodeJSONEnumTable(data)
	} else {
		enums, err = decodeYAMLEnumTable(data)
	}

	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrDecodeSource, filePath, err)
	}

	for _, enum := range enums {
		if err := docs.AddEnum(enum.Name, enum.Values); err != nil {
			return 0, fmt.Errorf("%q: %w", filePath, err)
		}
	}

	return len(enums), nil
}

// decodeJSONEnumTable walks the top-level object with the token decoder so
// enum order follows the file.
func decodeJSONEnumTable(data []byte) ([]Enum, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	token, err := decoder.Token()
	if err != nil {
		return nil, err
	}

	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("enum table must be an object, got %v", token)
	}

	var out []Enum
	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return nil, err
		}

		name, ok := token.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected enum table key %v", token)
		}

		var raw json.RawMessage
		if err := decoder.Decode(&raw); err != nil {
			return nil, fmt.Errorf("enum %q: %w", name, err)
		}

		values, err := decodeJSONEnumValues(raw)
		if err != nil {
			return nil, fmt.Errorf("enum %q: %w", name, err)
		}

		out = append(out, Enum{Name: name, Values: values})
	}

	return out, nil
}

// decodeJSONEnumValues accepts {"enums": [...]} or a bare value list.
func decodeJSONEnumValues(raw json.RawMessage) ([]EnumValue, error) {
	if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 && trimmed[0] == '[' {
		var values []EnumValue
		err := json.Unmarshal(trimmed, &values)
		return values, err
	}

	var block enumBlock
	err := json.Unmarshal(raw, &block)
	return block.Enums, err
}

// decodeYAMLEnumTable walks the top-level mapping node in document order.
func decodeYAMLEnumTable(data []byte) ([]Enum, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	if len(doc.Content) == 0 {
		return nil, nil
	}

	table := doc.Content[0]
	if table.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("enum table must be a mapping at line %d", table.Line)
	}

	out := make([]Enum, 0, len(table.Content)/2)
	for i := 0; i+1 < len(table.Content); i += 2 {
		name := table.Content[i].Value
		body := table.Content[i+1]

		var values []EnumValue
		if body.Kind == yaml.SequenceNode {
			if err := body.Decode(&values); err != nil {
				return nil, fmt.Errorf("enum %q: %w", name, err)
			}
		} else {
			var block enumBlock
			if err := body.Decode(&block); err != nil {
				return nil, fmt.Errorf("enum %q: %w", name, err)
			}

			values = block.Enums
		}

		out = append(out, Enum{Name: name, Values: values})
	}

	return out, nil
}
