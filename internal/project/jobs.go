package project

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/piwi3910/LightLine/internal/model"
)

// JobExtension is the file extension used for saved jobs.
const JobExtension = ".lightline"

// WithJobExtension appends JobExtension unless path already has it.
func WithJobExtension(path string) string {
	if strings.EqualFold(filepath.Ext(path), JobExtension) {
		return path
	}
	return path + JobExtension
}

// SaveJob writes a job to path as indented JSON and stamps UpdatedAt.
// It creates parent directories if they do not exist.
func SaveJob(path string, job model.Job) error {
	job.UpdatedAt = time.Now().UTC()
	normalizeJob(&job)

	data, err := json.MarshalIndent(job, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create job directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write job file: %w", err)
	}
	return nil
}

// LoadJob reads a job saved with SaveJob. Paths with fewer than two points
// are dropped so a loaded job can always be restored into a recorder.
func LoadJob(path string) (model.Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Job{}, fmt.Errorf("failed to read job file: %w", err)
	}
	var job model.Job
	if err := json.Unmarshal(data, &job); err != nil {
		return model.Job{}, fmt.Errorf("failed to parse job file: %w", err)
	}
	normalizeJob(&job)
	return job, nil
}

// normalizeJob replaces nil slices and fills settings missing from older files.
// Side names are canonicalized; paths for an unknown side are dropped.
func normalizeJob(job *model.Job) {
	paths := make([]model.Path, 0, len(job.Paths))
	for _, p := range job.Paths {
		if len(p.Points) < 2 {
			continue
		}
		side, ok := model.ParseSide(string(p.Side))
		if !ok {
			log.Printf("[project] dropping path %s with unknown side %q", p.ID, p.Side)
			continue
		}
		p.Side = side
		paths = append(paths, p)
	}
	job.Paths = paths

	if job.Fixtures == nil {
		job.Fixtures = []model.Fixture{}
	}
	if job.DrawingMode == "" {
		job.DrawingMode = model.DrawingStraight
	}
	if job.Scale.Source == "" {
		job.Scale.Source = model.ScaleFromMap
	}
	if job.Lights.SpacingInches <= 0 {
		job.Lights.SpacingInches = model.DefaultLightSettings().SpacingInches
	}
}
