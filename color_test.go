package svgicon

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExtractClasses(t *testing.T) {
	c := NewConverter(StrictSquare)
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "mappedAnyCase",
			src:  `<path fill="#AFCF5A" d="M0,0"/>`,
			want: []string{"text-base-primary"},
		},
		{
			name: "unmappedPassthrough",
			src:  `<path fill="#123456" d="M0,0"/>`,
			want: []string{"#123456"},
		},
		{
			name: "dedupe",
			src:  `<path fill="#afcf5a"/><circle fill="#AFCF5A"/>`,
			want: []string{"text-base-primary"},
		},
		{
			name: "namedColour",
			src:  `<path stroke="white" fill="none"/>`,
			want: []string{"text-white"},
		},
		{
			name: "namedColourSingleQuoted",
			src:  `<path stroke='white' fill='none'/>`,
			want: []string{"text-white"},
		},
		{
			name: "mixed",
			src:  `<path fill="#afcf5a"/><path fill="#ABCDEF"/>`,
			want: []string{"text-base-primary", "#abcdef"},
		},
		{
			name: "none",
			src:  `<path d="M0,0 L1,1"/>`,
			want: nil,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := c.ExtractClasses([]byte(test.src))
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("classes mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
