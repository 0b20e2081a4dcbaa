package formfield_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tomasbasham/formfield"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("read failed")
}

func TestDecoder(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input   string
		want    *formfield.Map
		wantErr bool
	}{
		"valid query string": {
			input: "name=john&pronouns[]=he&pronouns[]=him",
			want:  mapOf("name", "john", "pronouns", listOf("he", "him")),
		},
		"malformed escapes are kept": {
			input: "%%%&a=%zz",
			want:  mapOf("%%%", "", "a", "%zz"),
		},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := formfield.NewDecoder(strings.NewReader(tt.input)).Decode()
			if (err != nil) != tt.wantErr {
				t.Fatalf("expected error: %v, got: %v", tt.wantErr, err)
			}
			if !tt.wantErr {
				if diff := cmp.Diff(tt.want, got, NodeComparer); diff != "" {
					t.Errorf("(-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestDecoder_ReadError(t *testing.T) {
	t.Parallel()

	if _, err := formfield.NewDecoder(failingReader{}).Decode(); err == nil {
		t.Error("expected error")
	}
}

func TestEncoder(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input   interface{}
		want    string
		wantErr bool
	}{
		"map": {
			input: mapOf("name", "john", "pronouns", listOf("he", "him")),
			want:  "name=john&pronouns%5B%5D=he&pronouns%5B%5D=him",
		},
		"struct": {
			input: &Person{Name: "john", Age: 20, Pronouns: []string{"he", "him"}},
			want:  "name=john&age=20&pronouns%5B%5D=he&pronouns%5B%5D=him",
		},
		"go map": {
			input: map[string]interface{}{"b": "2", "a": []int{1}},
			want:  "a%5B%5D=1&b=2",
		},
		"nil": {
			input:   nil,
			wantErr: true,
		},
		"scalar": {
			input:   "name=john",
			wantErr: true,
		},
		"invalid target": {
			input:   map[int]interface{}{},
			wantErr: true,
		},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var b bytes.Buffer
			err := formfield.NewEncoder(&b).Encode(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("expected error: %v, got: %v", tt.wantErr, err)
			}
			if diff := cmp.Diff(tt.want, b.String()); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}
