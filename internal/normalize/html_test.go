package normalize

import "testing"

func TestHTMLToTextCollapse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tags stripped",
			input:    "<p>Great day at <b>Hudson Mills</b>.</p>",
			expected: "Great day at Hudson Mills.",
		},
		{
			name:     "entities unescaped",
			input:    "Runners &amp; coaches",
			expected: "Runners & coaches",
		},
		{
			name:     "whitespace collapsed",
			input:    "<div>First  line\n\nSecond   line</div>",
			expected: "First line Second line",
		},
		{
			name:     "plain text untouched",
			input:    "  already plain  ",
			expected: "already plain",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTMLToText(tt.input, ModeCollapse); got != tt.expected {
				t.Errorf("HTMLToText(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestHTMLToTextKeepBreaks(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "br becomes newline",
			input:    "First line<br>Second line",
			expected: "First line\nSecond line",
		},
		{
			name:     "self-closing br",
			input:    "First<br/>Second",
			expected: "First\nSecond",
		},
		{
			name:     "other tags dropped without breaks",
			input:    "<p>One</p><p>Two</p>",
			expected: "OneTwo",
		},
		{
			name:     "trimmed",
			input:    "  <b>hello</b>  ",
			expected: "hello",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTMLToText(tt.input, ModeKeepBreaks); got != tt.expected {
				t.Errorf("HTMLToText(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
