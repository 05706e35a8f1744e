package url

import "testing"

func TestLooksLikeURL(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"github.com", true},
		{"github.com/bnema/vomnibar", true},
		{"https://example.com", true},
		{"HTTP://EXAMPLE.COM", true},
		{"about:blank", true},
		{"javascript:alert(1)", true},
		{"localhost", true},
		{"localhost:8080/api", true},
		{"192.168.1.1", true},
		{"hello world", false},
		{"golang", false},
		{"v1.2", false},
		{"trailing.", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := LooksLikeURL(tt.input); got != tt.want {
				t.Errorf("LooksLikeURL(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"example.com", "https://example.com"},
		{"http://example.com", "http://example.com"},
		{"  example.com  ", "https://example.com"},
		{"search terms", "search terms"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Normalize(tt.input); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestHasJavascriptProtocol(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"javascript:void(0)", true},
		{"JavaScript:alert(1)", true},
		{"  javascript:x", true},
		{"https://javascript.info", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := HasJavascriptProtocol(tt.input); got != tt.want {
			t.Errorf("HasJavascriptProtocol(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
