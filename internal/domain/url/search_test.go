package url

import (
	"context"
	"testing"
)

func TestCreateSearchURL(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		template string
		want     string
	}{
		{
			name:     "single term",
			query:    "golang",
			template: "https://www.google.com/search?q=%s",
			want:     "https://www.google.com/search?q=golang",
		},
		{
			name:     "multiple terms joined with plus",
			query:    "rust  async await",
			template: "https://duckduckgo.com/?q=%s",
			want:     "https://duckduckgo.com/?q=rust+async+await",
		},
		{
			name:     "terms are escaped",
			query:    "c++ & go",
			template: "https://example.com/?q=%s",
			want:     "https://example.com/?q=c%2B%2B+%26+go",
		},
		{
			name:     "raw placeholder",
			query:    "Go_(language)",
			template: "https://en.wikipedia.org/wiki/%S",
			want:     "https://en.wikipedia.org/wiki/Go_(language)",
		},
		{
			name:     "template without placeholder gets query appended",
			query:    "cats",
			template: "https://example.com/search/",
			want:     "https://example.com/search/cats",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CreateSearchURL(tt.query, tt.template); got != tt.want {
				t.Errorf("CreateSearchURL(%q, %q) = %q, want %q", tt.query, tt.template, got, tt.want)
			}
		})
	}
}

func TestClassifier_IsURL(t *testing.T) {
	c := Classifier{}
	if !c.IsURL(context.Background(), "example.com") {
		t.Errorf("expected example.com to classify as URL")
	}
	if c.IsURL(context.Background(), "what is go") {
		t.Errorf("expected plain query to classify as search")
	}
}
