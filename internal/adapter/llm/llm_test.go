package llm

import (
	"errors"
	"testing"
)

func TestExtractJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain", input: `{"phrases":[]}`, want: `{"phrases":[]}`},
		{name: "code fence", input: "```json\n{\"phrases\":[]}\n```", want: `{"phrases":[]}`},
		{name: "prose around", input: `Here you go: {"a":{"b":1}} Enjoy!`, want: `{"a":{"b":1}}`},
		{name: "no braces", input: "sorry, I cannot help", wantErr: true},
		{name: "reversed", input: "} nope {", wantErr: true},
		{name: "two objects", input: `{"a":1} and {"b":2}`, wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ExtractJSON(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrNoJSON) {
					t.Fatalf("err = %v, want ErrNoJSON", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractJSON: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestStatusError(t *testing.T) {
	t.Parallel()

	inner := errors.New("overloaded")
	err := error(&StatusError{Provider: "anthropic", Code: 529, Err: inner})

	if !errors.Is(err, inner) {
		t.Error("StatusError should unwrap to its cause")
	}
	var hs interface{ HTTPStatus() int }
	if !errors.As(err, &hs) || hs.HTTPStatus() != 529 {
		t.Errorf("HTTPStatus not exposed: %v", err)
	}
	if err.Error() != "anthropic: status 529: overloaded" {
		t.Errorf("Error() = %q", err.Error())
	}
}
