package manuscript

import "testing"

func codes(issues []Issue) map[IssueCode][]string {
	out := map[IssueCode][]string{}
	for _, issue := range issues {
		out[issue.Code] = append(out[issue.Code], issue.Path)
	}
	return out
}

func TestCheck(t *testing.T) {
	corpus := Corpus{
		"metadata.md": ParseDocument("---\ntitle: Tide\ninclude:\n  - a.md\n  - ghost.md\n  - ./a.md\n  - part.md\n  - empty.md\n---\n"),
		"a.md":        ParseDocument("Scene A."),
		"part.md":     ParseDocument("---\ninclude: [a.md]\n---\n"),
		"empty.md":    ParseDocument(""),
		"unused.md":   ParseDocument("Cut scene."),
	}

	issues := Check(corpus)
	got := codes(issues)

	expect := map[IssueCode]string{
		IssueMissingInclude:   "ghost.md",
		IssueDuplicateInclude: "./a.md",
		IssueNestedManifest:   "part.md",
		IssueEmptyFragment:    "empty.md",
		IssueOrphanFragment:   "unused.md",
		IssueMissingAuthor:    "metadata.md",
	}
	for code, path := range expect {
		paths := got[code]
		if len(paths) != 1 || paths[0] != path {
			t.Errorf("%s paths = %v, want [%s]", code, paths, path)
		}
	}
	if _, ok := got[IssueMissingTitle]; ok {
		t.Error("title is present, no missing_title issue expected")
	}
	if !HasErrors(issues) {
		t.Error("HasErrors() = false, want true")
	}
	if err := CheckError(issues); err == nil {
		t.Error("CheckError() = nil, want error")
	}
}

func TestCheck_Clean(t *testing.T) {
	corpus := Corpus{
		"metadata.md": ParseDocument("---\ntitle: Tide\nauthor: A. Person\ninclude: [a.md, b.md]\n---\n"),
		"a.md":        ParseDocument("Scene A."),
		"b.md":        ParseDocument("---\nheading: Two\n---\n"),
	}

	issues := Check(corpus)
	if len(issues) != 0 {
		t.Errorf("Check() = %+v, want no issues", issues)
	}
	if err := CheckError(issues); err != nil {
		t.Errorf("CheckError() = %v, want nil", err)
	}
}

func TestCheck_NoRoot(t *testing.T) {
	issues := Check(Corpus{"a.md": ParseDocument("A."), "b.md": ParseDocument("B.")})

	if len(issues) != 1 || issues[0].Code != IssueNoRoot {
		t.Fatalf("Check() = %+v, want one no_root issue", issues)
	}
	if !HasErrors(issues) {
		t.Error("no_root should be an error")
	}
}

func TestCheck_StandaloneWarnsOnly(t *testing.T) {
	issues := Check(Corpus{"story.md": ParseDocument("Alone.")})

	if HasErrors(issues) {
		t.Errorf("standalone document should not produce errors: %+v", issues)
	}
	got := codes(issues)
	if len(got[IssueMissingTitle]) != 1 || len(got[IssueMissingAuthor]) != 1 {
		t.Errorf("issues = %+v, want missing title and author warnings", issues)
	}
}
