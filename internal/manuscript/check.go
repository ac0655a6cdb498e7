package manuscript

import (
	"errors"
	"fmt"
	"strings"
)

// Severity classifies a check issue.
type Severity string

// Issue severities.
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// IssueCode identifies the rule that produced an issue.
type IssueCode string

// Issue codes reported by Check.
const (
	IssueNoRoot           IssueCode = "no_root"
	IssueMissingInclude   IssueCode = "missing_include"
	IssueNestedManifest   IssueCode = "nested_manifest"
	IssueDuplicateInclude IssueCode = "duplicate_include"
	IssueOrphanFragment   IssueCode = "orphan_fragment"
	IssueEmptyFragment    IssueCode = "empty_fragment"
	IssueInvalidMetadata  IssueCode = "invalid_metadata"
	IssueMissingTitle     IssueCode = "missing_title"
	IssueMissingAuthor    IssueCode = "missing_author"
)

// Issue is one finding about a manuscript tree.
type Issue struct {
	Code     IssueCode `json:"code"`
	Severity Severity  `json:"severity"`
	Path     string    `json:"path,omitempty"`
	Message  string    `json:"message"`
}

// HasErrors reports whether any issue is an error.
func HasErrors(issues []Issue) bool {
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Check inspects a corpus without assembling it and reports every problem it
// finds, rather than stopping at the first one like Assemble.
func Check(corpus Corpus) []Issue {
	var issues []Issue

	key, root, err := ResolveRoot(corpus)
	if err != nil {
		return append(issues, Issue{
			Code:     IssueNoRoot,
			Severity: SeverityError,
			Message:  err.Error(),
		})
	}

	for _, path := range corpus.Keys() {
		if err := corpus[path].Metadata.Validate(); err != nil {
			issues = append(issues, Issue{
				Code:     IssueInvalidMetadata,
				Severity: SeverityError,
				Path:     path,
				Message:  err.Error(),
			})
		}
	}

	if strings.TrimSpace(value(root.Metadata.Title)) == "" {
		issues = append(issues, warning(IssueMissingTitle, key, "manuscript has no title; the file name will be used"))
	}
	if strings.TrimSpace(value(root.Metadata.Author)) == "" {
		issues = append(issues, warning(IssueMissingAuthor, key, "manuscript has no author"))
	}

	if !root.Metadata.HasManifest() {
		return issues
	}

	referenced := map[string]bool{key: true, MetadataFile: true}
	seen := map[string]bool{}
	for _, include := range root.Metadata.Include {
		doc, ok := corpus.Lookup(include)
		if !ok {
			issues = append(issues, Issue{
				Code:     IssueMissingInclude,
				Severity: SeverityError,
				Path:     include,
				Message:  (&FileNotFoundError{Path: include}).Error(),
			})
			continue
		}

		resolved := normalizeInclude(include)
		if seen[resolved] {
			issues = append(issues, warning(IssueDuplicateInclude, include, "included more than once"))
		}
		seen[resolved] = true
		referenced[resolved] = true

		if doc.Metadata.HasManifest() {
			issues = append(issues, Issue{
				Code:     IssueNestedManifest,
				Severity: SeverityError,
				Path:     include,
				Message:  (&NestedManifestError{Path: include}).Error(),
			})
		} else if doc.Metadata.Heading == nil && len(ContentBlocks(doc.Content)) == 0 {
			issues = append(issues, warning(IssueEmptyFragment, include, "fragment has no content and no heading"))
		}
	}

	for _, path := range corpus.Keys() {
		if !referenced[path] {
			issues = append(issues, warning(IssueOrphanFragment, path, "not referenced by the manifest"))
		}
	}

	return issues
}

func warning(code IssueCode, path, message string) Issue {
	return Issue{Code: code, Severity: SeverityWarning, Path: path, Message: message}
}

// CheckError summarizes error-level issues as a single error, or nil.
func CheckError(issues []Issue) error {
	var errs []error
	for _, issue := range issues {
		switch {
		case issue.Severity != SeverityError:
		case issue.Path == "":
			errs = append(errs, errors.New(issue.Message))
		default:
			errs = append(errs, fmt.Errorf("%s: %s", issue.Path, issue.Message))
		}
	}
	return errors.Join(errs...)
}
