package corpus

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/docsearch/internal/core/domain"
	"github.com/custodia-labs/docsearch/internal/logger"
)

var (
	frontmatterPattern = regexp.MustCompile(`(?s)\A---\s*\n(.*?)\n---\s*\n`)
	headingPattern     = regexp.MustCompile(`(?m)^(#{1,6})\s+(.+)$`)
)

// frontmatter is the YAML metadata block at the top of a Markdown file.
// List-valued fields accept either a YAML sequence or a single scalar,
// matching the tolerance of the JSON record schema.
type frontmatter struct {
	Title       string            `yaml:"title"`
	Description string            `yaml:"description"`
	Summary     string            `yaml:"summary"`
	Keywords    stringList        `yaml:"keywords"`
	Tags        stringList        `yaml:"tags"`
	Topics      stringList        `yaml:"topics"`
	Categories  stringList        `yaml:"categories"`
	Audience    stringList        `yaml:"audience"`
	Personas    stringList        `yaml:"personas"`
	ContentType string            `yaml:"content_type"`
	Difficulty  string            `yaml:"difficulty"`
	Modality    string            `yaml:"modality"`
	Section     string            `yaml:"section"`
	Author      string            `yaml:"author"`
	Facets      map[string]string `yaml:"facets"`
}

// stringList mirrors domain.StringList for YAML: a scalar splits into
// items, a sequence is taken as-is.
type stringList []string

func (l *stringList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*l = stringList(domain.SplitListString(node.Value))
		return nil
	}
	var items []string
	if err := node.Decode(&items); err != nil {
		return err
	}
	*l = stringList(items)
	return nil
}

// LoadDir walks a directory of Markdown files and builds a record map.
// Each file becomes one record whose ID is the slash-separated relative
// path without the .md extension. Files that cannot be read are skipped
// with a warning rather than failing the whole load.
func LoadDir(dir string) (map[string]domain.DocumentRecord, error) {
	corpus := make(map[string]domain.DocumentRecord)

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(strings.ToLower(d.Name()), ".md") {
			return nil
		}

		data, readErr := os.ReadFile(path)
		if readErr != nil {
			logger.Warn("Skipping %s: %v", path, readErr)
			return nil
		}

		rel, relErr := filepath.Rel(dir, path)
		if relErr != nil {
			rel = d.Name()
		}
		id := strings.TrimSuffix(filepath.ToSlash(rel), filepath.Ext(rel))

		rec, parseErr := parseMarkdown(id, string(data))
		if parseErr != nil {
			logger.Warn("Skipping %s: %v", path, parseErr)
			return nil
		}
		corpus[rec.ID] = rec
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk corpus dir %s: %w", dir, err)
	}

	logger.Info("Loaded %d records from %s", len(corpus), dir)
	return corpus, nil
}

// parseMarkdown converts a single Markdown file into a document record.
func parseMarkdown(id, raw string) (domain.DocumentRecord, error) {
	var fm frontmatter
	body := raw
	if m := frontmatterPattern.FindStringSubmatch(raw); m != nil {
		if err := yaml.Unmarshal([]byte(m[1]), &fm); err != nil {
			return domain.DocumentRecord{}, fmt.Errorf("parse frontmatter: %w", err)
		}
		body = raw[len(m[0]):]
	}

	headings := extractHeadings(body)

	title := fm.Title
	if title == "" {
		title = fallbackTitle(headings, id)
	}

	description := fm.Description
	if description == "" {
		description = fm.Summary
	}

	topics := fm.Topics
	if len(topics) == 0 {
		topics = fm.Categories
	}
	audience := fm.Audience
	if len(audience) == 0 {
		audience = fm.Personas
	}

	var facets map[string]domain.StringList
	if len(fm.Facets) > 0 {
		facets = make(map[string]domain.StringList, len(fm.Facets))
		for key, val := range fm.Facets {
			facets[key] = domain.StringList(domain.SplitListString(val))
		}
	}

	return domain.DocumentRecord{
		ID:          id,
		Title:       title,
		Description: description,
		Body:        stripMarkdown(body),
		Headings:    headings,
		Keywords:    domain.StringList(fm.Keywords),
		Tags:        domain.StringList(fm.Tags),
		Topics:      domain.StringList(topics),
		Audience:    domain.StringList(audience),
		ContentType: fm.ContentType,
		Difficulty:  fm.Difficulty,
		Facets:      facets,
		Modality:    fm.Modality,
		Section:     fm.Section,
		Author:      fm.Author,
	}, nil
}

// extractHeadings collects ATX headings with their levels, in document order.
func extractHeadings(body string) []domain.Heading {
	matches := headingPattern.FindAllStringSubmatch(body, -1)
	if len(matches) == 0 {
		return nil
	}
	headings := make([]domain.Heading, 0, len(matches))
	for _, m := range matches {
		text := strings.TrimSpace(m[2])
		if text == "" {
			continue
		}
		headings = append(headings, domain.Heading{
			Text:  text,
			Level: len(m[1]),
		})
	}
	return headings
}

// fallbackTitle derives a title from the first H1 heading, or failing
// that from the last path segment of the record ID.
func fallbackTitle(headings []domain.Heading, id string) string {
	for _, h := range headings {
		if h.Level == 1 {
			return h.Text
		}
	}
	name := id
	if idx := strings.LastIndex(id, "/"); idx >= 0 {
		name = id[idx+1:]
	}
	name = strings.ReplaceAll(name, "_", " ")
	name = strings.ReplaceAll(name, "-", " ")
	return name
}

var (
	codeBlockPattern    = regexp.MustCompile("(?s)```[^`]*```")
	inlineCodePattern   = regexp.MustCompile("`[^`]+`")
	imagePattern        = regexp.MustCompile(`!\[[^\]]*\]\([^)]+\)`)
	linkPattern         = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	headingMarkPattern  = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	blockquotePattern   = regexp.MustCompile(`(?m)^>\s*`)
	hrPattern           = regexp.MustCompile(`(?m)^[-*_]{3,}\s*$`)
	listMarkerPattern   = regexp.MustCompile(`(?m)^\s*[-*+]\s+`)
	numberedListPattern = regexp.MustCompile(`(?m)^\s*\d+\.\s+`)
	multiNewlinePattern = regexp.MustCompile(`\n{3,}`)
)

// stripMarkdown removes common markdown formatting so the body indexes
// as plain text. Simplified, handles the common cases.
func stripMarkdown(content string) string {
	content = codeBlockPattern.ReplaceAllString(content, "")
	content = inlineCodePattern.ReplaceAllString(content, "")
	content = imagePattern.ReplaceAllString(content, "")
	content = linkPattern.ReplaceAllString(content, "$1")
	content = headingMarkPattern.ReplaceAllString(content, "")

	content = strings.ReplaceAll(content, "**", "")
	content = strings.ReplaceAll(content, "__", "")
	content = strings.ReplaceAll(content, "*", "")
	content = strings.ReplaceAll(content, "_", " ")

	content = blockquotePattern.ReplaceAllString(content, "")
	content = hrPattern.ReplaceAllString(content, "")
	content = listMarkerPattern.ReplaceAllString(content, "")
	content = numberedListPattern.ReplaceAllString(content, "")
	content = multiNewlinePattern.ReplaceAllString(content, "\n\n")

	return strings.TrimSpace(content)
}

// Load dispatches on the source path: a directory loads as a Markdown
// tree, a file loads as a JSON export.
func Load(path string) (map[string]domain.DocumentRecord, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat corpus %s: %w", path, err)
	}
	if info.IsDir() {
		return LoadDir(path)
	}
	return LoadFile(path)
}
