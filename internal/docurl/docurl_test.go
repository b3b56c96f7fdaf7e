package docurl

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			"direct serving host",
			"https://lh3.googleusercontent.com/d/ID123",
			"https://drive.google.com/file/d/ID123/view",
		},
		{
			"view link unchanged",
			"https://drive.google.com/file/d/ID123/view",
			"https://drive.google.com/file/d/ID123/view",
		},
		{
			"preview rewritten to view",
			"https://drive.google.com/file/d/ID123/preview",
			"https://drive.google.com/file/d/ID123/view",
		},
		{
			"export download form",
			"https://drive.google.com/uc?export=download&id=ID456",
			"https://drive.google.com/file/d/ID456/view",
		},
		{
			"id segment with trailing path",
			"https://drive.google.com/file/d/ID789/edit",
			"https://drive.google.com/file/d/ID789/view",
		},
		{
			"open with id parameter",
			"https://drive.google.com/open?id=ID999",
			"https://drive.google.com/file/d/ID999/view",
		},
		{
			"non-drive link passes through",
			"https://github.com/x/y",
			"https://github.com/x/y",
		},
		{
			"live demo link passes through",
			"https://demo.example.com/app?id=5",
			"https://demo.example.com/app?id=5",
		},
		{
			"empty",
			"",
			"",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.in); got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	in := "https://drive.google.com/file/d/ID123/preview"
	once := Normalize(in)
	twice := Normalize(once)
	if once != twice {
		t.Errorf("normalization should be stable: %q vs %q", once, twice)
	}
}
