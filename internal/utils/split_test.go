package utils

import "testing"

func TestSplitStringIntoCommandAndArguments(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		cmd     string
		key     string
		value   string
		wantErr bool
	}{
		{"bare command", "count", "count", "", "", false},
		{"command with key", "get foo", "get", "foo", "", false},
		{"command with key and value", "insert foo bar", "insert", "foo", "bar", false},
		{"quoted value with spaces", `insert city "new york"`, "insert", "city", "new york", false},
		{"single quoted value", "insert greeting 'hello there'", "insert", "greeting", "hello there", false},
		{"empty line", "", "", "", "", true},
		{"too many arguments", "insert a b c", "", "", "", true},
		{"unterminated quote", `insert foo "bar`, "", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, key, value, err := SplitStringIntoCommandAndArguments(tt.line)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got cmd=%q key=%q value=%q", cmd, key, value)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cmd != tt.cmd || key != tt.key || value != tt.value {
				t.Fatalf("got (%q, %q, %q), want (%q, %q, %q)", cmd, key, value, tt.cmd, tt.key, tt.value)
			}
		})
	}
}
