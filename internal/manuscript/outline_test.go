package manuscript

import (
	"reflect"
	"testing"
)

func TestOutline(t *testing.T) {
	corpus := Corpus{
		"metadata.md": ParseDocument("---\ninclude: [one.md, ./two.md, gone.md]\n---\n"),
		"one.md":      ParseDocument("First line here.\n#\nSecond."),
		"two.md":      ParseDocument("---\nheading: Part Two\n---\nThe end."),
	}

	got := Outline(corpus, MetadataFile, corpus[MetadataFile])
	want := []OutlineEntry{
		{Path: "one.md", Paragraphs: 2, Words: 4},
		{Path: "./two.md", Heading: "Part Two", Paragraphs: 1, Words: 2},
		{Path: "gone.md", Missing: true},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Outline() = %+v\nwant %+v", got, want)
	}
}

func TestOutline_Standalone(t *testing.T) {
	doc := ParseDocument("One paragraph.\n\nAnother one.")

	got := Outline(Corpus{"story.md": doc}, "story.md", doc)
	want := []OutlineEntry{{Path: "story.md", Paragraphs: 2, Words: 4}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Outline() = %+v, want %+v", got, want)
	}
}
