package metrics

import "testing"

func TestCountLogicalLines(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   int
	}{
		{
			name:   "empty source",
			source: "",
			want:   0,
		},
		{
			name:   "single declaration",
			source: "const a = 1;",
			want:   1,
		},
		{
			name:   "two statements on one physical line",
			source: "f(); g();",
			want:   2,
		},
		{
			name:   "multi line if counts once plus body",
			source: "if (x) {\n\tf();\n}",
			want:   2,
		},
		{
			name:   "function declaration plus return",
			source: "function f() {\n\treturn 1;\n}",
			want:   2,
		},
		{
			name:   "class declaration",
			source: "class A {}",
			want:   1,
		},
		{
			name:   "await counts as executable",
			source: "async function f() { await g(); }",
			want:   3,
		},
		{
			name:   "comments and blanks ignored",
			source: "// header\n\nconst a = 1;\n/* block */\n",
			want:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := parseSource(t, tt.source)
			if got := CountLogicalLines(root); got != tt.want {
				t.Errorf("CountLogicalLines = %d, want %d", got, tt.want)
			}
		})
	}
}
