package mcp

import (
	"errors"
	"strings"

	"github.com/gorewood/md2ms/internal/export"
	"github.com/gorewood/md2ms/internal/manuscript"
)

var (
	errPathRequired      = errors.New("path is required")
	errOutputDirRequired = errors.New("output_dir is required: no default output directory is configured")
)

// requirePath trims path and rejects a blank one.
func requirePath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", errPathRequired
	}
	return path, nil
}

// toFileRefs converts written variants to FileRef slice.
func toFileRefs(written []export.Written) []FileRef {
	result := make([]FileRef, 0, len(written))
	for _, w := range written {
		result = append(result, FileRef{
			Path:      w.Path,
			Font:      w.Variant.Font,
			Anonymous: w.Variant.Anonymous,
			Classic:   w.Variant.Classic,
		})
	}
	return result
}

// toFragments converts outline entries to Fragment slice.
func toFragments(entries []manuscript.OutlineEntry) []Fragment {
	result := make([]Fragment, 0, len(entries))
	for _, entry := range entries {
		result = append(result, Fragment{
			Path:       entry.Path,
			Heading:    entry.Heading,
			Paragraphs: entry.Paragraphs,
			Words:      entry.Words,
			Missing:    entry.Missing,
		})
	}
	return result
}

// toIssueRefs converts check issues to IssueRef slice and counts errors.
func toIssueRefs(issues []manuscript.Issue) ([]IssueRef, int) {
	result := make([]IssueRef, 0, len(issues))
	errs := 0
	for _, issue := range issues {
		if issue.Severity == manuscript.SeverityError {
			errs++
		}
		result = append(result, IssueRef{
			Code:     string(issue.Code),
			Severity: string(issue.Severity),
			Path:     issue.Path,
			Message:  issue.Message,
		})
	}
	return result, errs
}
