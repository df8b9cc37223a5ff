// Package export walks the part registry, builds every requested family and
// writes one mesh file per solid. Each run is identified by a UUID and
// summarized in a manifest alongside the mesh files. A failed build or
// export aborts the run.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spurline/railparts/pkg/kernel"
	"github.com/spurline/railparts/pkg/part"
)

// DefaultCells is the marching-cubes resolution used when none is configured.
const DefaultCells = 300

// Options controls one export run.
type Options struct {
	OutDir   string
	Cells    int      // marching-cubes cells along the longest axis
	Formats  []string // "stl" and/or "3mf"
	Families []string // empty means every registered family
	Logger   *zap.Logger
}

// Record summarizes one exported solid in the run manifest.
type Record struct {
	Family    string     `json:"family"`
	Solid     string     `json:"solid"`
	Triangles int        `json:"triangles"`
	BoundsMin [3]float64 `json:"bounds_min"`
	BoundsMax [3]float64 `json:"bounds_max"`
	Files     []string   `json:"files"`
}

// Manifest is the machine-readable summary of one run.
type Manifest struct {
	RunID     string    `json:"run_id"`
	StartedAt time.Time `json:"started_at"`
	Elapsed   string    `json:"elapsed"`
	Cells     int       `json:"cells"`
	Records   []Record  `json:"records"`
}

// Run builds and exports the requested families from the registry.
func Run(k kernel.Kernel, reg *part.Registry, opts Options) (*Manifest, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	cells := opts.Cells
	if cells <= 0 {
		cells = DefaultCells
	}
	formats := opts.Formats
	if len(formats) == 0 {
		formats = []string{"stl"}
	}
	for _, f := range formats {
		if f != "stl" && f != "3mf" {
			return nil, fmt.Errorf("unsupported export format %q", f)
		}
	}

	families := opts.Families
	if len(families) == 0 {
		families = reg.List()
	}

	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	m := &Manifest{
		RunID:     uuid.NewString(),
		StartedAt: time.Now().UTC(),
		Cells:     cells,
	}
	logger.Info("export run started",
		zap.String("run_id", m.RunID),
		zap.Strings("families", families),
		zap.Strings("formats", formats),
		zap.Int("cells", cells))

	seen := make(map[string]string) // solid name -> family
	for _, name := range families {
		family, err := reg.Get(name)
		if err != nil {
			return nil, err
		}
		solids, err := family.BuildAll(k)
		if err != nil {
			return nil, fmt.Errorf("build family %s: %w", name, err)
		}
		for _, s := range solids {
			if prev, dup := seen[s.Name]; dup {
				return nil, fmt.Errorf("solid name %q produced by both %s and %s", s.Name, prev, name)
			}
			seen[s.Name] = name

			rec, err := exportSolid(k, s, name, opts.OutDir, formats, cells)
			if err != nil {
				return nil, err
			}
			logger.Info("solid exported",
				zap.String("run_id", m.RunID),
				zap.String("family", name),
				zap.String("solid", s.Name),
				zap.Int("triangles", rec.Triangles),
				zap.Strings("files", rec.Files))
			m.Records = append(m.Records, rec)
		}
	}

	m.Elapsed = time.Since(m.StartedAt).String()
	if err := writeManifest(m, opts.OutDir); err != nil {
		return nil, err
	}
	logger.Info("export run finished",
		zap.String("run_id", m.RunID),
		zap.Int("solids", len(m.Records)),
		zap.String("elapsed", m.Elapsed))
	return m, nil
}

// exportSolid writes one solid in every requested format.
func exportSolid(k kernel.Kernel, s part.Solid, family, outDir string, formats []string, cells int) (Record, error) {
	min, max := s.Body.BoundingBox()
	rec := Record{
		Family:    family,
		Solid:     s.Name,
		BoundsMin: min,
		BoundsMax: max,
	}

	mesh, err := k.ToMesh(s.Body)
	if err != nil {
		return rec, fmt.Errorf("mesh %s: %w", s.Name, err)
	}
	mesh.SolidName = s.Name
	rec.Triangles = mesh.TriangleCount()

	for _, f := range formats {
		path := filepath.Join(outDir, s.Name+"."+f)
		switch f {
		case "stl":
			err = k.ExportSTL(s.Body, path, cells)
		case "3mf":
			err = k.Export3MF(s.Body, path, cells)
		}
		if err != nil {
			return rec, fmt.Errorf("export %s: %w", path, err)
		}
		rec.Files = append(rec.Files, path)
	}
	return rec, nil
}

// writeManifest writes the run summary next to the mesh files.
func writeManifest(m *Manifest, outDir string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	path := filepath.Join(outDir, "manifest.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}
