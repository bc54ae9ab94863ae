package utilcss

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "single block",
			in:   ".a {\n  color: red;\n  padding: 4px 8px;\n}\n",
			want: ".a{color:red;padding:4px 8px}",
		},
		{
			name: "descendant combinator kept",
			in:   ".dark .dark\\:c\\(white\\) {\n  color: white;\n}\n",
			want: ".dark .dark\\:c\\(white\\){color:white}",
		},
		{
			name: "pseudo class in selector",
			in:   ".hover\\:c\\(red\\):hover {\n  color: red;\n}\n",
			want: ".hover\\:c\\(red\\):hover{color:red}",
		},
		{
			name: "media query",
			in:   "@media (min-width: 768px) {\n  .a {\n    color: red;\n  }\n}\n",
			want: "@media (min-width:768px){.a{color:red}}",
		},
		{
			name: "value commas and slashes kept",
			in:   ".s {\n  box-shadow: 0 1px 2px rgb(0 0 0 / 0.1), 0 2px 4px black;\n}\n",
			want: ".s{box-shadow:0 1px 2px rgb(0 0 0 / 0.1), 0 2px 4px black}",
		},
		{
			name: "important",
			in:   ".a {\n  color: red !important;\n}\n",
			want: ".a{color:red !important}",
		},
		{
			name: "hex escape keeps its terminating space",
			in:   ".\\31 0 {\n  color: red;\n}\n",
			want: ".\\31 0{color:red}",
		},
		{
			name: "comments dropped",
			in:   "/* tokens */\n:root {\n  --font-md: 16px;\n}\n",
			want: ":root{--font-md:16px}",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Minify(tt.in))
		})
	}
}

func TestMinifyIdempotent(t *testing.T) {
	css := New().Generate([]string{"hbox(pack+gap-lg)", "lg:hover:bg(blue-500)", "shadow(md)"}, WithMinify(false)).CSS
	once := Minify(css)
	assert.Equal(t, once, Minify(once))
}
