package locator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/bnema/mc-assistant/internal/domain"
	"github.com/bnema/mc-assistant/internal/ports"
)

const cubiomesSource = "cubiomes-cli"

type runFunc func(ctx context.Context, bin string, args ...string) (stdout string, stderr string, err error)

// Cubiomes shells out to a cubiomes-compatible CLI that understands
//
//	nearest-structure --seed S --structure NAME --x X --z Z --dimension D --version V --json
//	nearest-biome     --seed S --biome NAME     --x X --z Z --dimension D --version V --json
//
// and prints a JSON object with at least integer x and z keys.
type Cubiomes struct {
	bin     string
	version string
	run     runFunc
}

var _ ports.WorldLocator = (*Cubiomes)(nil)

func NewCubiomes(bin, minecraftVersion string) *Cubiomes {
	return &Cubiomes{bin: bin, version: minecraftVersion, run: runLocator}
}

func (c *Cubiomes) NearestStructure(ctx context.Context, query ports.LocateQuery) (*domain.StructureLocation, error) {
	return c.locate(ctx, "nearest-structure", "--structure", query)
}

func (c *Cubiomes) NearestBiome(ctx context.Context, query ports.LocateQuery) (*domain.BiomeLocation, error) {
	return c.locate(ctx, "nearest-biome", "--biome", query)
}

func (c *Cubiomes) locate(ctx context.Context, mode, targetFlag string, query ports.LocateQuery) (*domain.Location, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	args := []string{
		mode,
		"--seed", strconv.FormatInt(query.Seed, 10),
		targetFlag, query.Target,
		"--x", strconv.Itoa(query.X),
		"--z", strconv.Itoa(query.Z),
		"--dimension", query.Dimension,
		"--version", c.version,
		"--json",
	}

	stdout, stderr, err := c.run(ctx, c.bin, args...)
	if err != nil {
		if stderr != "" {
			return nil, fmt.Errorf("run %s %s: %w: %s", c.bin, mode, err, stderr)
		}
		return nil, fmt.Errorf("run %s %s: %w", c.bin, mode, err)
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal([]byte(stdout), &payload); err != nil {
		return nil, fmt.Errorf("decode %s output: %w", mode, err)
	}

	rawX, okX := payload["x"]
	rawZ, okZ := payload["z"]
	if !okX || !okZ {
		return nil, nil
	}

	x, err := decodeCoordinate(rawX)
	if err != nil {
		return nil, fmt.Errorf("decode %s x: %w", mode, err)
	}
	z, err := decodeCoordinate(rawZ)
	if err != nil {
		return nil, fmt.Errorf("decode %s z: %w", mode, err)
	}

	return &domain.Location{
		Name:           query.Target,
		Dimension:      query.Dimension,
		X:              x,
		Z:              z,
		DistanceBlocks: distance(query.X, query.Z, x, z),
		Source:         cubiomesSource,
		Details:        map[string]string{"version": c.version, "raw": strings.TrimSpace(stdout)},
	}, nil
}

func decodeCoordinate(raw json.RawMessage) (int, error) {
	var value float64
	if err := json.Unmarshal(raw, &value); err != nil {
		var text string
		if textErr := json.Unmarshal(raw, &text); textErr != nil {
			return 0, err
		}
		return strconv.Atoi(strings.TrimSpace(text))
	}
	return int(value), nil
}

func runLocator(ctx context.Context, bin string, args ...string) (string, string, error) {
	path, err := exec.LookPath(bin)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", "", fmt.Errorf("%w: %s not found", domain.ErrLocatorUnavailable, bin)
		}
		return "", "", fmt.Errorf("locate %s: %w", bin, err)
	}

	cmd := exec.CommandContext(ctx, path, args...)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	return stdout.String(), strings.TrimSpace(stderr.String()), err
}
