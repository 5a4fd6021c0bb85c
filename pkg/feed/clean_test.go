package feed

import "testing"

func TestCleanText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text unchanged",
			input: "PM announces policy",
			want:  "PM announces policy",
		},
		{
			name:  "strips CDATA wrapper keeping content",
			input: "PM announces policy<![CDATA[ X ]]>",
			want:  "PM announces policy X",
		},
		{
			name:  "strips markup and decodes entities",
			input: "<p>Details &amp; more...</p>",
			want:  "Details & more...",
		},
		{
			name:  "decodes common entities",
			input: "a&nbsp;b &lt;c&gt; &quot;d&quot;",
			want:  "a b <c> \"d\"",
		},
		{
			name:  "collapses whitespace",
			input: "  a \n\t b   c  ",
			want:  "a b c",
		},
		{
			name:  "tags become word separators",
			input: "<p>first</p><p>second</p>",
			want:  "first second",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanText(tt.input)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStripCDATA(t *testing.T) {
	got := StripCDATA("<![CDATA[hello]]>")
	if got != "hello" {
		t.Errorf("got %q, want %q", got, "hello")
	}
}
