package task

import "testing"

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Buy milk", "Buy milk"},
		{"empty", "", ""},
		{"tag", "<b>bold</b>", "&lt;b&gt;bold&lt;/b&gt;"},
		{"ampersand", "salt & pepper", "salt &amp; pepper"},
		{"quotes", `say "hi" it's`, "say &quot;hi&quot; it&#39;s"},
		{"backtick", "run `make`", "run &#96;make&#96;"},
		{"existing entity is escaped again", "&lt;", "&amp;lt;"},
		{"unicode passes through", "café ☕", "café ☕"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.in); got != tt.want {
				t.Fatalf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
