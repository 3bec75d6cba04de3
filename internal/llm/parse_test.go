package llm

import "testing"

func TestFirstJSONObject(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{
			name: "bare object",
			in:   `{"orderNumber":"A-1"}`,
			want: `{"orderNumber":"A-1"}`,
		},
		{
			name: "object wrapped in prose",
			in:   "Here is the result:\n```json\n{\"orderNumber\":\"A-1\"}\n```\nDone.",
			want: `{"orderNumber":"A-1"}`,
		},
		{
			name: "nested braces",
			in:   `prefix {"a":{"b":"c"},"d":"e"} suffix`,
			want: `{"a":{"b":"c"},"d":"e"}`,
		},
		{
			name: "braces inside strings",
			in:   `{"notes":"value with } and { inside"}`,
			want: `{"notes":"value with } and { inside"}`,
		},
		{
			name: "escaped quotes inside strings",
			in:   `{"notes":"he said \"hi\" {"}`,
			want: `{"notes":"he said \"hi\" {"}`,
		},
		{
			name:    "no object at all",
			in:      "the model refused to answer",
			wantErr: true,
		},
		{
			name:    "unterminated object",
			in:      `{"orderNumber":"A-1"`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FirstJSONObject(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
