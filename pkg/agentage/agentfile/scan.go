package agentfile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/agentage/agentage/pkg/agentage/config"
)

var agentExtensions = map[string]bool{
	".md":   true,
	".yaml": true,
	".yml":  true,
}

// Scan parses every agent file directly under dir. A missing directory
// means no agents; unparsable files become warnings, never a failure, so a
// single bad file cannot break listing.
func Scan(dir, scope string) ([]*File, []error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil
	}
	var files []*File
	var warnings []error
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if !agentExtensions[ext] {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			warnings = append(warnings, fmt.Errorf("%s: %w", path, err))
			continue
		}
		file, err := Parse(path, data)
		if err != nil {
			warnings = append(warnings, fmt.Errorf("%s: %w", path, err))
			continue
		}
		if file.Manifest.Name == "" {
			file.Manifest.Name = strings.TrimSuffix(entry.Name(), ext)
		}
		file.Scope = scope
		files = append(files, file)
	}
	sort.Slice(files, func(i, j int) bool {
		return files[i].Manifest.Name < files[j].Manifest.Name
	})
	return files, warnings
}

// ScanAll lists project agents followed by global ones.
func ScanAll() ([]*File, []error) {
	project, projectWarnings := Scan(config.ProjectAgentsDir(), ScopeProject)
	global, globalWarnings := Scan(config.GlobalAgentsDir(), ScopeGlobal)
	return append(project, global...), append(projectWarnings, globalWarnings...)
}

// Resolve locates an agent by name, searching the project directory before
// the global one. An argument naming an existing file is parsed directly
// instead, so commands accept either form.
func Resolve(ref string) (*File, error) {
	if info, err := os.Stat(ref); err == nil && !info.IsDir() {
		return loadFile(ref)
	}
	files, _ := ScanAll()
	for _, file := range files {
		if file.Manifest.Name == ref {
			return file, nil
		}
	}
	return nil, fmt.Errorf("agent not found: %s", ref)
}

func loadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	file, err := Parse(path, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if file.Manifest.Name == "" {
		base := filepath.Base(path)
		file.Manifest.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return file, nil
}
