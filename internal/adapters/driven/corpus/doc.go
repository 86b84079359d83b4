// Package corpus loads document records from local sources: a JSON
// export produced by the documentation build, or a directory of Markdown
// files with YAML frontmatter. It also provides a filesystem watcher so
// long-running surfaces can rebuild the index when the source material
// changes.
package corpus
