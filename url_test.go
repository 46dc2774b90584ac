package pagemeta_test

import (
	"testing"

	"github.com/fwojciec/pagemeta"
	"github.com/stretchr/testify/assert"
)

func TestResolveURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		base      string
		candidate string
		want      string
	}{
		{
			name:      "absolute candidate passes through unchanged",
			base:      "https://example.com",
			candidate: "https://other.com/x",
			want:      "https://other.com/x",
		},
		{
			name:      "relative path resolves against base",
			base:      "https://example.com",
			candidate: "/page",
			want:      "https://example.com/page",
		},
		{
			name:      "parent segment normalizes",
			base:      "https://example.com/a/",
			candidate: "../b",
			want:      "https://example.com/b",
		},
		{
			name:      "missing base leaves candidate unresolved",
			base:      "",
			candidate: "/page",
			want:      "/page",
		},
		{
			name:      "relative base leaves candidate unresolved",
			base:      "/relative/path",
			candidate: "/page",
			want:      "/page",
		},
		{
			name:      "unparseable base leaves candidate unresolved",
			base:      "http://example.com/\x00",
			candidate: "/page",
			want:      "/page",
		},
		{
			name:      "query and fragment survive resolution",
			base:      "https://example.com/dir/",
			candidate: "page?q=1#frag",
			want:      "https://example.com/dir/page?q=1#frag",
		},
		{
			name:      "empty candidate stays empty",
			base:      "https://example.com",
			candidate: "",
			want:      "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, pagemeta.ResolveURL(tt.base, tt.candidate))
		})
	}
}
