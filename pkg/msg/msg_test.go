package msg

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetMessage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messages.yml")
	content := `
weather:
  error:
    city-not-found: "City {0} not found"
  info:
    payload: "payload {0} unit {1}"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write messages: %v", err)
	}
	if err := Load(path); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	tests := []struct {
		name string
		key  string
		args []interface{}
		want string
	}{
		{"primitive arg", "weather.error.city-not-found", []interface{}{"Atlantis"}, "City Atlantis not found"},
		{"struct arg is json", "weather.info.payload", []interface{}{map[string]int{"a": 1}, "celsius"}, `payload {"a":1} unit celsius`},
		{"missing key", "weather.error.nope", nil, "Message not found: weather.error.nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetMessage(tt.key, tt.args...); got != tt.want {
				t.Errorf("GetMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
