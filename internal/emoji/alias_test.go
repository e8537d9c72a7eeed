package emoji

import (
	"errors"
	"fmt"
	"testing"
)

func TestResolveFinalName(t *testing.T) {
	list := map[string]string{
		"a":       "alias:b",
		"b":       "alias:c",
		"c":       "http://x/img.png",
		"direct":  "https://emoji.slack-edge.com/T1/direct/abc.gif",
		"dangle":  "alias:missing",
		"loop-a":  "alias:loop-b",
		"loop-b":  "alias:loop-a",
		"self":    "alias:self",
		"empty":   "",
		"to-loop": "alias:loop-a",
	}

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
		cyclic  bool
	}{
		{name: "direct url", input: "direct", want: "direct"},
		{name: "alias chain stops at last non-alias name", input: "a", want: "c"},
		{name: "middle of chain", input: "b", want: "c"},
		{name: "terminal", input: "c", want: "c"},
		{name: "missing name", input: "ghost", wantErr: true},
		{name: "empty value", input: "empty", wantErr: true},
		{name: "alias to missing", input: "dangle", wantErr: true},
		{name: "two-name cycle", input: "loop-a", wantErr: true, cyclic: true},
		{name: "self alias", input: "self", wantErr: true, cyclic: true},
		{name: "alias into cycle", input: "to-loop", wantErr: true, cyclic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveFinalName(tt.input, list)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				if !errors.Is(err, ErrUnresolvableReference) {
					t.Errorf("error: got %v, want ErrUnresolvableReference", err)
				}
				var cycleErr *CyclicAliasError
				if tt.cyclic != errors.As(err, &cycleErr) {
					t.Errorf("cyclic: got %v, want %v (err %v)", !tt.cyclic, tt.cyclic, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("final name: got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveFinalName_DepthCap(t *testing.T) {
	list := make(map[string]string)
	for i := 0; i < MaxAliasDepth+5; i++ {
		list[fmt.Sprintf("e%d", i)] = fmt.Sprintf("alias:e%d", i+1)
	}
	list[fmt.Sprintf("e%d", MaxAliasDepth+5)] = "http://x/end.png"

	_, err := ResolveFinalName("e0", list)
	var cycleErr *CyclicAliasError
	if !errors.As(err, &cycleErr) {
		t.Fatalf("error: got %v, want *CyclicAliasError", err)
	}
	if cycleErr.Name != "e0" {
		t.Errorf("Name: got %q, want %q", cycleErr.Name, "e0")
	}
	if len(cycleErr.Chain) != MaxAliasDepth+1 {
		t.Errorf("Chain length: got %d, want %d", len(cycleErr.Chain), MaxAliasDepth+1)
	}

	// A chain just inside the cap still resolves.
	short := map[string]string{}
	for i := 0; i < MaxAliasDepth-1; i++ {
		short[fmt.Sprintf("e%d", i)] = fmt.Sprintf("alias:e%d", i+1)
	}
	short[fmt.Sprintf("e%d", MaxAliasDepth-1)] = "http://x/end.png"
	got, err := ResolveFinalName("e0", short)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := fmt.Sprintf("e%d", MaxAliasDepth-1); got != want {
		t.Errorf("final name: got %q, want %q", got, want)
	}
}
