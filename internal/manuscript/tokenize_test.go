package manuscript

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []Run
	}{
		{
			name: "emphasis and strikethrough",
			line: "Hello *world* and ~~gone~~.",
			want: []Run{
				{Text: "Hello "},
				{Text: "world", Italic: true},
				{Text: " and "},
				{Text: "gone", Strikethrough: true},
				{Text: "."},
			},
		},
		{
			name: "plain line is one run",
			line: "Nothing special happens here.",
			want: []Run{{Text: "Nothing special happens here."}},
		},
		{
			name: "leading strong flushes an empty run",
			line: "**Stop** right there.",
			want: []Run{
				{Text: ""},
				{Text: "Stop", Bold: true},
				{Text: " right there."},
			},
		},
		{
			name: "underscore emphasis",
			line: "An _example_ line",
			want: []Run{
				{Text: "An "},
				{Text: "example", Italic: true},
				{Text: " line"},
			},
		},
		{
			name: "code spans are dropped",
			line: "use `code` here",
			want: []Run{{Text: "use  here"}},
		},
		{
			name: "escaped asterisk is literal",
			line: "Five \\* three",
			want: []Run{{Text: "Five * three"}},
		},
		{
			name: "escaped underscores are literal",
			line: "a \\_snake\\_ name",
			want: []Run{{Text: "a _snake_ name"}},
		},
		{
			name: "entity references are decoded",
			line: "Tom &amp; Jerry &#169; 1940",
			want: []Run{{Text: "Tom & Jerry \u00a9 1940"}},
		},
		{
			name: "escape inside emphasis",
			line: "*two \\* stars*",
			want: []Run{
				{Text: ""},
				{Text: "two * stars", Italic: true},
				{Text: ""},
			},
		},
		{
			name: "empty line yields nothing",
			line: "",
			want: nil,
		},
		{
			name: "blank line yields nothing",
			line: "   ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.line)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) =\n  %+v\nwant\n  %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestTokenize_RunCount(t *testing.T) {
	runs := Tokenize("Hello world, this is a ~~complicated~~ *very simple* _example_.")
	if len(runs) != 7 {
		t.Fatalf("got %d runs, want 7: %+v", len(runs), runs)
	}
}

func TestTokenize_AtMostOneStyle(t *testing.T) {
	lines := []string{
		"***both at once***",
		"**bold with *italic* inside**",
		"~~struck **and bold**~~ then *plain*",
		"Hello *world* and ~~gone~~.",
	}

	for _, line := range lines {
		for _, run := range Tokenize(line) {
			styles := 0
			for _, on := range []bool{run.Bold, run.Italic, run.Strikethrough} {
				if on {
					styles++
				}
			}
			if styles > 1 {
				t.Errorf("Tokenize(%q): run %+v has %d styles", line, run, styles)
			}
		}
	}
}

func TestReduceEvents(t *testing.T) {
	tests := []struct {
		name   string
		events []Event
		want   []Run
	}{
		{
			name:   "no events",
			events: nil,
			want:   nil,
		},
		{
			name: "adjacent text merges into one run",
			events: []Event{
				{Kind: EventStart},
				{Kind: EventText, Text: "one "},
				{Kind: EventText, Text: "two"},
				{Kind: EventEnd},
			},
			want: []Run{{Text: "one two"}},
		},
		{
			name: "style start flushes even when empty",
			events: []Event{
				{Kind: EventStart, Style: StyleBold},
				{Kind: EventText, Text: "loud"},
				{Kind: EventEnd, Style: StyleBold},
			},
			want: []Run{{Text: ""}, {Text: "loud", Bold: true}},
		},
		{
			name: "unstyled start is a no-op",
			events: []Event{
				{Kind: EventText, Text: "a"},
				{Kind: EventStart},
				{Kind: EventText, Text: "b"},
				{Kind: EventEnd},
			},
			want: []Run{{Text: "ab"}},
		},
		{
			name: "nested styles do not compose",
			events: []Event{
				{Kind: EventStart, Style: StyleItalic},
				{Kind: EventStart, Style: StyleStrikethrough},
				{Kind: EventText, Text: "x"},
				{Kind: EventEnd, Style: StyleStrikethrough},
				{Kind: EventEnd, Style: StyleItalic},
			},
			want: []Run{
				{Text: ""},
				{Text: "", Italic: true},
				{Text: "x", Strikethrough: true},
				{Text: ""},
			},
		},
		{
			name: "trailing text without an end is dropped",
			events: []Event{
				{Kind: EventText, Text: "dangling"},
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReduceEvents(tt.events)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ReduceEvents() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLineEvents_HeadingMarkupIsDropped(t *testing.T) {
	runs := Tokenize("## Part Two")
	if len(runs) != 1 || runs[0].Text != "Part Two" {
		t.Errorf("Tokenize(heading) = %+v, want one run %q", runs, "Part Two")
	}
}
