package agentfile

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/agentage/agentage/pkg/agentage/api"
)

const (
	ScopeProject = "project"
	ScopeGlobal  = "global"
)

// File is one local agent definition. Instructions is the free-form
// markdown body following the frontmatter; empty for plain YAML manifests.
type File struct {
	Path         string            `json:"path" yaml:"path"`
	Scope        string            `json:"scope,omitempty" yaml:"scope,omitempty"`
	Manifest     api.AgentManifest `json:"manifest" yaml:"manifest"`
	Instructions string            `json:"-" yaml:"-"`
}

// Description prefers the manifest description and falls back to the first
// paragraph of the instructions.
func (f *File) Description() string {
	if f.Manifest.Description != "" {
		return f.Manifest.Description
	}
	return DeriveDescription(f.Instructions)
}

// Parse decodes an agent definition. Markdown files must start with a
// frontmatter fence; .yaml/.yml files are treated as a bare manifest.
func Parse(path string, data []byte) (*File, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var manifest api.AgentManifest
		if err := yaml.Unmarshal(data, &manifest); err != nil {
			return nil, fmt.Errorf("failed to parse manifest: %w", err)
		}
		return &File{Path: path, Manifest: manifest}, nil
	case ".md":
		frontmatter, body, err := splitFrontmatter(string(data))
		if err != nil {
			return nil, err
		}
		var manifest api.AgentManifest
		if err := yaml.Unmarshal([]byte(frontmatter), &manifest); err != nil {
			return nil, fmt.Errorf("failed to parse frontmatter: %w", err)
		}
		return &File{Path: path, Manifest: manifest, Instructions: body}, nil
	default:
		return nil, fmt.Errorf("unsupported agent file extension: %s", filepath.Ext(path))
	}
}

// Encode renders a File in markdown-with-frontmatter form.
func Encode(f *File) ([]byte, error) {
	frontmatter, err := yaml.Marshal(f.Manifest)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal manifest: %w", err)
	}
	var b strings.Builder
	b.WriteString("---\n")
	b.Write(frontmatter)
	b.WriteString("---\n")
	if body := strings.TrimLeft(f.Instructions, "\n"); body != "" {
		b.WriteString("\n")
		b.WriteString(body)
		if !strings.HasSuffix(body, "\n") {
			b.WriteString("\n")
		}
	}
	return []byte(b.String()), nil
}

func splitFrontmatter(content string) (string, string, error) {
	first, rest, found := strings.Cut(content, "\n")
	if !found || strings.TrimRight(first, "\r") != "---" {
		return "", "", errors.New("missing frontmatter block")
	}
	var fences []string
	remaining := rest
	for {
		line, next, found := strings.Cut(remaining, "\n")
		if strings.TrimRight(line, "\r") == "---" {
			return strings.Join(fences, "\n"), next, nil
		}
		fences = append(fences, line)
		if !found {
			return "", "", errors.New("unterminated frontmatter block")
		}
		remaining = next
	}
}
