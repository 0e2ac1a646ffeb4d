package contracts

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"catalog-service/schemas"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	ContactRequestEvent = "ContactRequestEvent"
	CatalogFileDocument = "CatalogFileDocument"

	SchemaVersionV1 = "1.0.0"
)

// Каталоги схем и суффикс, который добавляется к имени схемы в ключе
var schemaRoots = map[string]string{
	"events":    "Event",
	"documents": "Document",
}

var (
	compiledSchemas map[string]*jsonschema.Schema
	compileErr      error
	compileOnce     sync.Once
)

// loadSchemas компилирует все схемы из schemas.SchemasFS один раз за время жизни процесса.
func loadSchemas() (map[string]*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiledSchemas, compileErr = compileAll(schemas.SchemasFS)
	})
	return compiledSchemas, compileErr
}

func compileAll(fsys fs.FS) (map[string]*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	var paths []string
	for root := range schemaRoots {
		err := fs.WalkDir(fsys, root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !strings.HasSuffix(path, ".json") {
				return nil
			}
			file, err := fsys.Open(path)
			if err != nil {
				return err
			}
			defer file.Close()
			// Сначала добавляем все ресурсы, чтобы схемы могли ссылаться друг на друга через $ref
			if err := compiler.AddResource(path, file); err != nil {
				return fmt.Errorf("failed to add schema resource %s: %w", path, err)
			}
			paths = append(paths, path)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("error walking schemas in %s: %w", root, err)
		}
	}

	result := make(map[string]*jsonschema.Schema, len(paths))
	for _, path := range paths {
		schema, err := compiler.Compile(path)
		if err != nil {
			return nil, fmt.Errorf("could not compile schema %s: %w", path, err)
		}
		key := generateKeyFromPath(path)
		if key == "" {
			return nil, fmt.Errorf("unexpected schema path layout: %s", path)
		}
		result[key] = schema
	}
	return result, nil
}

// generateKeyFromPath преобразует путь вида "events/contact-request/v1.json"
// в ключ вида "ContactRequestEvent/1.0.0".
func generateKeyFromPath(path string) string {
	parts := strings.Split(strings.TrimSuffix(path, ".json"), "/")
	if len(parts) != 3 {
		return ""
	}
	suffix, ok := schemaRoots[parts[0]]
	if !ok || !strings.HasPrefix(parts[2], "v") {
		return ""
	}

	caser := cases.Title(language.English)
	var name strings.Builder
	for _, p := range strings.Split(parts[1], "-") {
		name.WriteString(caser.String(p))
	}
	name.WriteString(suffix)

	version := strings.TrimPrefix(parts[2], "v") + ".0.0"
	return fmt.Sprintf("%s/%s", name.String(), version)
}

// Validate проверяет JSON-документ по схеме name/version.
func Validate(name, version string, body []byte) error {
	compiled, err := loadSchemas()
	if err != nil {
		return fmt.Errorf("schemas are not available: %w", err)
	}

	key := fmt.Sprintf("%s/%s", name, version)
	schema, ok := compiled[key]
	if !ok {
		return fmt.Errorf("schema '%s' version '%s' not found", name, version)
	}

	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return fmt.Errorf("message body is not a valid JSON: %w", err)
	}

	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("JSON schema validation failed: %w", err)
	}
	return nil
}
