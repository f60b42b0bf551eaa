package schematic

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/mc-assistant/internal/domain"
	"github.com/bnema/mc-assistant/internal/ports"
	"gopkg.in/yaml.v3"
)

type manifest struct {
	Name       string `yaml:"name"`
	BlockCount *int   `yaml:"block_count"`
	Blocks     []any  `yaml:"blocks"`
}

// Loader resolves schematic paths under a root directory. YAML and JSON
// manifests are decoded for their block count; any other file is accepted
// as an opaque schematic.
type Loader struct {
	root string
}

var _ ports.SchematicLoader = (*Loader)(nil)

func NewLoader(root string) *Loader {
	return &Loader{root: filepath.Clean(root)}
}

func (l *Loader) Load(ctx context.Context, path string) (domain.Schematic, error) {
	if err := ctx.Err(); err != nil {
		return domain.Schematic{}, err
	}

	fullPath, err := l.resolve(path)
	if err != nil {
		return domain.Schematic{}, err
	}

	info, err := os.Stat(fullPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Schematic{}, fmt.Errorf("load %s: %w", path, domain.ErrSchematicNotFound)
		}
		return domain.Schematic{}, fmt.Errorf("stat schematic %s: %w", path, err)
	}
	if info.IsDir() {
		return domain.Schematic{}, fmt.Errorf("schematic %s is a directory", path)
	}

	schematic := domain.Schematic{
		Path: path,
		Name: strings.TrimSuffix(filepath.Base(fullPath), filepath.Ext(fullPath)),
	}

	switch strings.ToLower(filepath.Ext(fullPath)) {
	case ".yaml", ".yml", ".json":
		decoded, err := readManifest(fullPath)
		if err != nil {
			return domain.Schematic{}, fmt.Errorf("load %s: %w", path, err)
		}
		if decoded.Name != "" {
			schematic.Name = decoded.Name
		}
		switch {
		case decoded.BlockCount != nil:
			count := *decoded.BlockCount
			schematic.BlockCount = &count
		case decoded.Blocks != nil:
			count := len(decoded.Blocks)
			schematic.BlockCount = &count
		}
	}

	return schematic, nil
}

func (l *Loader) resolve(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", errors.New("schematic path is empty")
	}

	cleaned := filepath.Clean(trimmed)
	if filepath.IsAbs(cleaned) || cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) || cleaned == "." {
		return "", fmt.Errorf("invalid schematic path %q", path)
	}

	return filepath.Join(l.root, cleaned), nil
}

func readManifest(path string) (manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return manifest{}, fmt.Errorf("read manifest: %w", err)
	}

	var decoded manifest
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		return manifest{}, fmt.Errorf("decode manifest: %w", err)
	}
	if decoded.BlockCount != nil && *decoded.BlockCount < 0 {
		return manifest{}, fmt.Errorf("decode manifest: negative block_count %d", *decoded.BlockCount)
	}

	return decoded, nil
}
