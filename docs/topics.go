// Package docs holds the user documentation, one markdown topic per file.
package docs

import (
	"embed"
	"io/fs"
	"slices"
	"strings"

	"github.com/etnz/assetexpl"
)

//go:embed *.md
var docs embed.FS

// Topic returns the content of a documentation topic. "*" returns every topic.
func Topic(name string) (string, error) {
	if name == "*" {
		return Topics(name)
	}
	content, err := docs.ReadFile(name + ".md")
	if err != nil {
		return "", &assetexpl.NotFoundError{Kind: "topic", Value: name}
	}
	return string(content), nil
}

// Topics returns the content of several topics concatenated together. "*"
// expands to every topic.
func Topics(names ...string) (string, error) {
	var b strings.Builder
	for _, name := range names {
		expanded := []string{name}
		if name == "*" {
			all, err := All()
			if err != nil {
				return "", err
			}
			expanded = all
		}
		for _, n := range expanded {
			content, err := Topic(n)
			if err != nil {
				return "", err
			}
			b.WriteString(content)
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}

// All returns the names of every topic but the readme, sorted.
func All() ([]string, error) {
	files, err := fs.Glob(docs, "*.md")
	if err != nil {
		return nil, err
	}
	var topics []string
	for _, f := range files {
		if name := strings.TrimSuffix(f, ".md"); name != "readme" {
			topics = append(topics, name)
		}
	}
	slices.Sort(topics)
	return topics, nil
}
