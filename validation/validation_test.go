package validation

import (
	"testing"
)

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"watch URL", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", false},
		{"short URL", "https://youtu.be/dQw4w9WgXcQ", false},
		{"mobile URL", "https://m.youtube.com/watch?v=dQw4w9WgXcQ", false},
		{"bare video ID", "dQw4w9WgXcQ", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"wrong scheme", "ftp://youtube.com/watch?v=dQw4w9WgXcQ", true},
		{"non-youtube host", "https://vimeo.com/12345", true},
		{"garbage", "not a url at all", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
		})
	}
}

func TestValidateMode(t *testing.T) {
	for _, mode := range []string{"", "short", "normal", "detailed"} {
		if err := ValidateMode(mode); err != nil {
			t.Errorf("ValidateMode(%q) returned unexpected error: %v", mode, err)
		}
	}

	if err := ValidateMode("verbose"); err == nil {
		t.Error("ValidateMode(\"verbose\") expected error, got nil")
	}
}
