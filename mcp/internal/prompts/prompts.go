// Package prompts holds the analyst prompt templates served by the MCP server.
package prompts

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"text/template"
)

// Version is incremented whenever templates change incompatibly.
const Version = "v1"

//go:embed templates/*.md
var templateFS embed.FS

// Prompt is one parsed template.
type Prompt struct {
	Name        string
	Description string
	Arguments   []string
	body        *template.Template
}

// Render fills the template. Missing arguments render as empty strings.
func (p *Prompt) Render(args map[string]string) (string, error) {
	data := make(map[string]string, len(p.Arguments))
	for _, a := range p.Arguments {
		data[a] = strings.TrimSpace(args[a])
	}
	var buf bytes.Buffer
	if err := p.body.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render prompt %s: %w", p.Name, err)
	}
	return strings.TrimSpace(buf.String()), nil
}

// List returns every embedded prompt sorted by name.
func List() ([]*Prompt, error) {
	entries, err := fs.ReadDir(templateFS, "templates")
	if err != nil {
		return nil, err
	}
	out := make([]*Prompt, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".md" {
			continue
		}
		p, err := Load(strings.TrimSuffix(e.Name(), ".md"))
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Load parses the named template. It fails if the template is missing or
// its front matter is malformed.
func Load(name string) (*Prompt, error) {
	if name == "" {
		return nil, fmt.Errorf("prompt name cannot be empty")
	}
	b, err := fs.ReadFile(templateFS, path.Join("templates", name+".md"))
	if err != nil {
		return nil, fmt.Errorf("unknown prompt %q: %w", name, err)
	}
	meta, body, err := splitFrontMatter(string(b))
	if err != nil {
		return nil, fmt.Errorf("prompt %s: %w", name, err)
	}
	tmpl, err := template.New(name).Option("missingkey=zero").Parse(body)
	if err != nil {
		return nil, fmt.Errorf("prompt %s: %w", name, err)
	}
	p := &Prompt{Name: name, Description: meta["description"], body: tmpl}
	for _, a := range strings.Split(meta["arguments"], ",") {
		if a = strings.TrimSpace(a); a != "" {
			p.Arguments = append(p.Arguments, a)
		}
	}
	return p, nil
}

// splitFrontMatter parses a leading "---" block of key: value lines.
func splitFrontMatter(s string) (map[string]string, string, error) {
	const fence = "---\n"
	if !strings.HasPrefix(s, fence) {
		return nil, "", fmt.Errorf("missing front matter")
	}
	rest := s[len(fence):]
	end := strings.Index(rest, "\n"+fence)
	if end < 0 {
		return nil, "", fmt.Errorf("unterminated front matter")
	}
	meta := map[string]string{}
	for _, line := range strings.Split(rest[:end], "\n") {
		k, v, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		meta[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return meta, rest[end+len(fence)+1:], nil
}
