package batch

import (
	"encoding/json"
	"os"
)

// ManifestEntry represents one bake in the output manifest.
type ManifestEntry struct {
	Name     string  `json:"name"`
	Image    string  `json:"image"`
	AvgDepth float32 `json:"avg_depth"`
}

// WriteManifest writes manifest.json for the successful bakes. AvgDepth
// is the distance field's average wavefront depth, kept so downstream
// passes can tune against island thickness without re-baking.
func WriteManifest(path string, results []Result) error {
	entries := make([]ManifestEntry, 0, len(results))
	for _, r := range results {
		if !r.Success {
			continue
		}
		entries = append(entries, ManifestEntry{
			Name:     r.Name,
			Image:    r.Image,
			AvgDepth: r.AvgDepth,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
