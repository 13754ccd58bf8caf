package naming

import "testing"

func TestBuildFileName(t *testing.T) {
	tests := []struct {
		name string
		ctx  Context
		want string
	}{
		{
			name: "all components",
			ctx: Context{
				ProjectShort: "prj",
				ItemShort:    "010",
				StepShort:    "comp",
				Resource:     "matte",
				Extension:    ".exr",
				Version:      7,
				StateShort:   "rev",
			},
			want: "prj_s_010_comp_matte_v007_rev.exr",
		},
		{
			name: "minimal",
			ctx: Context{
				ProjectShort: "prj",
				ItemShort:    "010",
				StepShort:    "comp",
				Extension:    "mov",
			},
			want: "prj_s_010_comp.mov",
		},
		{
			name: "no item skips marker",
			ctx: Context{
				ProjectShort: "prj",
				StepShort:    "edit",
				Extension:    ".mp4",
			},
			want: "prj_edit.mp4",
		},
		{
			name: "version above three digits widens",
			ctx: Context{
				ProjectShort: "prj",
				ItemShort:    "010",
				StepShort:    "comp",
				Extension:    ".exr",
				Version:      1234,
			},
			want: "prj_s_010_comp_v1234.exr",
		},
		{
			name: "components are sanitized",
			ctx: Context{
				ProjectShort: "Prj 01",
				ItemShort:    "séq/010",
				StepShort:    "comp",
				Extension:    ".exr",
			},
			want: "Prj-01_s_seq-010_comp.exr",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := BuildFileName(tc.ctx); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestBuildFileNameIdempotent(t *testing.T) {
	ctx := Context{
		ProjectShort: "prj",
		ItemShort:    "040",
		StepShort:    "light",
		Extension:    ".exr",
		Version:      12,
	}
	first := BuildFileName(ctx)
	second := BuildFileName(ctx)
	if first != second {
		t.Fatalf("identical contexts diverged: %q vs %q", first, second)
	}
}

func TestPaddingWidth(t *testing.T) {
	tests := []struct {
		name  string
		r     FrameRange
		want  int
		label string
	}{
		{name: "standard shot", r: FrameRange{Start: 1001, FrameCount: 100}, want: 4},
		{name: "long shot widens", r: FrameRange{Start: 1001, FrameCount: 99000}, want: 6},
		{name: "frame 100000 needs six", r: FrameRange{Start: 99999, FrameCount: 2}, want: 6},
		{name: "short range floors at four", r: FrameRange{Start: 1, FrameCount: 10}, want: 4},
		{name: "zero count defaults", r: FrameRange{Start: 1001, FrameCount: 0}, want: 4},
		{name: "negative count defaults", r: FrameRange{Start: 1001, FrameCount: -5}, want: 4},
		{name: "negative start uses magnitude", r: FrameRange{Start: -20000, FrameCount: 10}, want: 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := PaddingWidth(tc.r); got != tc.want {
				t.Fatalf("got %d, want %d", got, tc.want)
			}
		})
	}
}

func TestPaddingWidthMonotonic(t *testing.T) {
	prev := 0
	for count := 1; count < 2_000_000; count *= 4 {
		width := PaddingWidth(FrameRange{Start: 1001, FrameCount: count})
		if width < prev {
			t.Fatalf("width shrank from %d to %d at count %d", prev, width, count)
		}
		if width < 4 {
			t.Fatalf("width %d below floor at count %d", width, count)
		}
		prev = width
	}
}

func TestSanitizeComponent(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plate", "plate"},
		{"  spaced out  ", "spaced-out"},
		{"séquence", "sequence"},
		{"a/b\\c", "a-b-c"},
		{"shot.010", "shot-010"},
		{"___", ""},
		{"", ""},
	}

	for _, tc := range tests {
		if got := SanitizeComponent(tc.in); got != tc.want {
			t.Fatalf("SanitizeComponent(%q): got %q, want %q", tc.in, got, tc.want)
		}
	}
}
