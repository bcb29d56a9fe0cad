package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yumbiru/yumvalues/internal/domain"
	"github.com/yumbiru/yumvalues/internal/validation"
)

// Sentinel errors for catalog loading
var (
	ErrDuplicateItemID = errors.New("duplicate item id")
	ErrInvalidCatalog  = errors.New("invalid catalog")
)

// File is the on-disk catalog document
type File struct {
	Version     string        `json:"version" yaml:"version"`
	LastUpdated string        `json:"last_updated" yaml:"last_updated"`
	Items       []domain.Item `json:"items" yaml:"items"`
}

// Loader reads a catalog file and validates it
type Loader interface {
	Load(path string) (*Catalog, error)
	Validate(file *File) error
}

type fileLoader struct {
	schemaValidator validation.SchemaValidator
	schemaPath      string
}

// NewLoader creates a Loader validating against schemaPath (SchemaPath if empty)
func NewLoader(schemaPath string) Loader {
	if schemaPath == "" {
		schemaPath = SchemaPath
	}
	return &fileLoader{
		schemaValidator: validation.NewSchemaValidator(),
		schemaPath:      schemaPath,
	}
}

// Load reads, schema-checks, parses and validates a JSON or YAML catalog
func (l *fileLoader) Load(path string) (*Catalog, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf(ErrMsgReadCatalogFailed, err)
	}

	if err := l.schemaValidator.ValidateFile(path, l.schemaPath); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidCatalog, path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadCatalogFailed, err)
	}

	var file File
	if validation.IsYAML(path) {
		err = yaml.Unmarshal(data, &file)
	} else {
		err = json.Unmarshal(data, &file)
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgParseCatalogFailed, err)
	}

	if err := l.Validate(&file); err != nil {
		return nil, err
	}

	c := New(file.Items)
	c.version = file.Version
	c.lastUpdated = file.LastUpdated

	slog.Default().Info(LogMsgCatalogLoaded, "path", path, "items", c.Len(), "version", file.Version)
	return c, nil
}

// Validate checks ids are present and unique, names non-empty and values non-negative
func (l *fileLoader) Validate(file *File) error {
	if file == nil || len(file.Items) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidCatalog, ErrMsgNoItemsDefined)
	}

	seen := make(map[string]bool, len(file.Items))
	for i, item := range file.Items {
		if item.ID == "" {
			return fmt.Errorf("%w: "+ErrMsgEmptyID, ErrInvalidCatalog, i)
		}
		if seen[item.ID] {
			return fmt.Errorf("%w: '%s'", ErrDuplicateItemID, item.ID)
		}
		seen[item.ID] = true

		if item.Name == "" {
			return fmt.Errorf("%w: "+ErrMsgEmptyName, ErrInvalidCatalog, item.ID)
		}
		if item.NumericValue() < 0 {
			return fmt.Errorf("%w: "+ErrMsgNegativeValue, ErrInvalidCatalog, item.ID)
		}
		if !item.Rarity.IsKnown() {
			slog.Default().Warn(LogMsgUnknownRarity, "item", item.ID, "rarity", item.Rarity)
		}
	}
	return nil
}
