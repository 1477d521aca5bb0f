package render

import "testing"

func TestEscapeHTML(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{`<script>alert("xss")</script>`, "&lt;script&gt;alert(&quot;xss&quot;)&lt;/script&gt;"},
		{"Tom & Jerry's", "Tom &amp; Jerry&#039;s"},
		{"&lt;", "&amp;lt;"},
		{"plain text", "plain text"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := EscapeHTML(tc.in); got != tc.want {
			t.Fatalf("EscapeHTML(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
