//go:build linux || darwin

package split

import (
	"reflect"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{
			name:  "simple command",
			input: "tool -v input.txt",
			want:  []string{"tool", "-v", "input.txt"},
		},
		{
			name:  "quoted argument",
			input: `tool "two words"`,
			want:  []string{"tool", "two words"},
		},
		{
			name:  "single quotes",
			input: `tool 'two words'`,
			want:  []string{"tool", "two words"},
		},
		{
			name:  "escaped quote",
			input: `tool \"x\"`,
			want:  []string{"tool", `"x"`},
		},
		{
			name:  "multiple spaces",
			input: "tool   a    b",
			want:  []string{"tool", "a", "b"},
		},
		{
			name:  "empty string",
			input: "",
			want:  []string{},
		},
		{
			name:  "only spaces",
			input: "   ",
			want:  []string{},
		},
		{
			name:    "unterminated quote",
			input:   `tool "open`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Split(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("Split() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split() = %v, want %v", got, tt.want)
			}
		})
	}
}
