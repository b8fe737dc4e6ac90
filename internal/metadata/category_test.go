package metadata

import "testing"

func TestInferCategory(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		creator string
		want    Category
	}{
		{
			name: "empty text is personal",
			text: "",
			want: CategoryPersonal,
		},
		{
			name: "thesis is research",
			text: "A Doctoral Thesis on Marine Biology",
			want: CategoryResearch,
		},
		{
			name: "conference proceedings are research",
			text: "Proceedings of the 12th Annual Symposium",
			want: CategoryResearch,
		},
		{
			name: "bibliography is research",
			text: "includes a full bibliography",
			want: CategoryResearch,
		},
		{
			name: "references section is research",
			text: "see the references at the end of each chapter",
			want: CategoryResearch,
		},
		{
			name: "textbook is educational",
			text: "Introductory Physics Textbook",
			want: CategoryEducational,
		},
		{
			name: "bare university mention is educational",
			text: "notes from a university seminar",
			want: CategoryEducational,
		},
		{
			name:    "academic producer is educational",
			text:    "collected lab notes",
			creator: "MIT Institute Press",
			want:    CategoryEducational,
		},
		{
			name:    "edu producer is educational",
			text:    "an untitled compilation",
			creator: "scanner@cs.stanford.edu",
			want:    CategoryEducational,
		},
		{
			name: "kdp marker is self-published",
			text: "published via kindle direct publishing",
			want: CategorySelfPublished,
		},
		{
			name: "memoir of a personal journey is self-published",
			text: "a heartfelt memoir of my personal journey",
			want: CategorySelfPublished,
		},
		{
			name: "family story is self-published",
			text: "our family immigration story",
			want: CategorySelfPublished,
		},
		{
			name: "gutenberg marker is public domain",
			text: "Pride and Prejudice, Project Gutenberg edition",
			want: CategoryPublicDomain,
		},
		{
			name: "creative commons is public domain",
			text: "released under creative commons",
			want: CategoryPublicDomain,
		},
		{
			name: "old year with classic qualifier is public domain",
			text: "a classic volume from 1850",
			want: CategoryPublicDomain,
		},
		{
			name: "old year alone is not public domain",
			text: "a volume from 1850",
			want: CategoryPersonal,
		},
		{
			name: "classic qualifier with modern year is not public domain",
			text: "a modern classic from 1995",
			want: CategoryPersonal,
		},
		{
			name: "research beats educational",
			text: "a peer-reviewed textbook study",
			want: CategoryResearch,
		},
		{
			name: "educational beats self-published",
			text: "a college workbook from createspace",
			want: CategoryEducational,
		},
		{
			name: "self-published beats public domain",
			text: "independently published classic from 1890",
			want: CategorySelfPublished,
		},
		{
			name: "manual falls back to educational",
			text: "chainsaw owner's manual",
			want: CategoryEducational,
		},
		{
			name: "tutorial falls back to educational",
			text: "a woodworking tutorial",
			want: CategoryEducational,
		},
		{
			name: "novel falls back to self-published",
			text: "a debut novel",
			want: CategorySelfPublished,
		},
		{
			name: "no signals fall back to personal",
			text: "my vacation photo album",
			want: CategoryPersonal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InferCategory(tt.text, tt.creator)
			if got != tt.want {
				t.Errorf("InferCategory(%q, %q) = %q, want %q", tt.text, tt.creator, got, tt.want)
			}
		})
	}
}

func TestCategoryValid(t *testing.T) {
	for _, c := range Categories {
		if !c.Valid() {
			t.Errorf("Category(%q).Valid() = false, want true", c)
		}
	}
	if Category("bogus").Valid() {
		t.Error(`Category("bogus").Valid() = true, want false`)
	}
}
