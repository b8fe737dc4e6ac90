package metadata

import "testing"

func TestCleanAuthor(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "plain name capitalized",
			raw:  "jane austen",
			want: "Jane Austen",
		},
		{
			name: "by prefix removed",
			raw:  "by John Smith",
			want: "John Smith",
		},
		{
			name: "written by prefix removed",
			raw:  "Written by George Orwell",
			want: "George Orwell",
		},
		{
			name: "last comma first reordered",
			raw:  "Austen, Jane",
			want: "Jane Austen",
		},
		{
			name: "multiple comma parts keeps first",
			raw:  "John Smith, Bob Jones, Carol White",
			want: "John Smith",
		},
		{
			name: "et al suffix removed",
			raw:  "Jane Doe et al.",
			want: "Jane Doe",
		},
		{
			name: "and others suffix removed",
			raw:  "john doe and others",
			want: "John Doe",
		},
		{
			name: "copyright and publisher noise removed",
			raw:  "copyright © 2020 Acme Publishing",
			want: "Acme",
		},
		{
			name: "domain removed leaving nothing",
			raw:  "www.freebooks.com",
			want: "",
		},
		{
			name: "email removed leaving nothing",
			raw:  "john@example.com",
			want: "",
		},
		{
			name: "mc surname",
			raw:  "ronald mcdonald",
			want: "Ronald McDonald",
		},
		{
			name: "mac surname",
			raw:  "douglas macarthur",
			want: "Douglas MacArthur",
		},
		{
			name: "short mac word stays plain",
			raw:  "lonnie mack",
			want: "Lonnie Mack",
		},
		{
			name: "apostrophe surname",
			raw:  "conan o'brien",
			want: "Conan O'Brien",
		},
		{
			name: "generational suffix",
			raw:  "martin luther king jr.",
			want: "Martin Luther King Jr.",
		},
		{
			name: "roman numeral suffix",
			raw:  "henry ford ii",
			want: "Henry Ford II",
		},
		{
			name: "particle surname",
			raw:  "vincent van gogh",
			want: "Vincent Van Gogh",
		},
		{
			name: "digits only yields empty",
			raw:  "12345",
			want: "",
		},
		{
			name: "empty input",
			raw:  "",
			want: "",
		},
		{
			name: "too short yields empty",
			raw:  "x",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanAuthor(tt.raw)
			if got != tt.want {
				t.Errorf("CleanAuthor(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
