package seed

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/mc-assistant/internal/domain"
	"github.com/bnema/mc-assistant/internal/ports"
)

// FileStatusProvider analyzes the SeedCrackerX log on every call.
type FileStatusProvider struct {
	path string
}

var _ ports.SeedStatusProvider = (*FileStatusProvider)(nil)

func NewFileStatusProvider(path string) *FileStatusProvider {
	if path != "" {
		path = filepath.Clean(path)
	}
	return &FileStatusProvider{path: path}
}

func (p *FileStatusProvider) Path() string {
	return p.path
}

func (p *FileStatusProvider) SeedStatus(ctx context.Context) (domain.SeedKnowledge, error) {
	if err := ctx.Err(); err != nil {
		return domain.SeedKnowledge{}, err
	}

	if p.path == "" {
		return domain.SeedKnowledge{
			Source:              Source,
			RequirementsMissing: []string{"SeedCrackerX log path is not configured"},
		}, nil
	}

	data, err := os.ReadFile(p.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.SeedKnowledge{
				Source:              Source,
				RequirementsMissing: []string{fmt.Sprintf("SeedCrackerX log does not exist: %s", p.path)},
			}, nil
		}
		return domain.SeedKnowledge{}, fmt.Errorf("read seedcracker log: %w", err)
	}

	return Analyze(string(data)), nil
}
