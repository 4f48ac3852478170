package naming

import (
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		isFile       bool
		fallbackYear string
		want         string
	}{
		{
			name:   "full release name",
			input:  "Movie.Title.2019.1080p.BluRay.x264-GROUP.mkv",
			isFile: true,
			want:   "Movie Title (2019).mkv",
		},
		{
			name:   "already canonical file",
			input:  "Movie Title (2019).mkv",
			isFile: true,
			want:   "Movie Title (2019).mkv",
		},
		{
			name:  "already canonical directory",
			input: "Movie Title (2019)",
			want:  "Movie Title (2019)",
		},
		{
			name:  "ampersand then canonical short-circuit",
			input: "Fast & Furious (2001)",
			want:  "Fast and Furious (2001)",
		},
		{
			name:  "directory with no year anywhere",
			input: "Random Folder",
			want:  "Random Folder",
		},
		{
			name:         "directory year borrowed from child",
			input:        "Some Movie",
			fallbackYear: "2005",
			want:         "Some Movie (2005)",
		},
		{
			name:   "yts style brackets",
			input:  "Another.Movie.2021.1080p.WEBRip.x265.10bit.AAC5.1-[YTS.MX].mp4",
			isFile: true,
			want:   "Another Movie (2021).mp4",
		},
		{
			name:  "underscores and hyphens as separators",
			input: "Some_Movie_Name-2010-720p",
			want:  "Some Movie Name (2010)",
		},
		{
			name:   "codec markers without year",
			input:  "Concert.x264.HEVC.mkv",
			isFile: true,
			want:   "Concert.mkv",
		},
		{
			name:   "no dot in filename",
			input:  "README",
			isFile: true,
			want:   "README",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(tt.input, tt.isFile, tt.fallbackYear)
			if got != tt.want {
				t.Errorf("Format(%q, %v, %q) = %q, want %q",
					tt.input, tt.isFile, tt.fallbackYear, got, tt.want)
			}
		})
	}
}

func TestFormat_Idempotent(t *testing.T) {
	inputs := []struct {
		name   string
		isFile bool
	}{
		{"Movie.Title.2019.1080p.BluRay.x264-GROUP.mkv", true},
		{"Fast & Furious (2001)", false},
		{"Random Folder", false},
		{"Another.Movie.2021.1080p.WEBRip.x265.mp4", true},
	}

	for _, in := range inputs {
		once := Format(in.name, in.isFile, "")
		twice := Format(once, in.isFile, "")
		if once != twice {
			t.Errorf("Format not idempotent for %q: first %q, second %q", in.name, once, twice)
		}
	}
}

func TestFormat_ReplacesAmpersand(t *testing.T) {
	got := Format("Tango & Cash 1989", false, "")
	if strings.Contains(got, "&") {
		t.Errorf("output still contains ampersand: %q", got)
	}
	if !strings.Contains(got, "and") {
		t.Errorf("output should contain the word and: %q", got)
	}
}

func TestFormat_StripsReleaseTags(t *testing.T) {
	got := Format("Film.Name.2020.[1080p].[WEBRip].[YTS.MX].x265.HEVC.mkv", true, "")
	lower := strings.ToLower(got)
	for _, tag := range []string{"1080p", "webrip", "yts", "x265", "hevc"} {
		if strings.Contains(lower, tag) {
			t.Errorf("output %q still contains release tag %q", got, tag)
		}
	}
}

func TestFormat_ExtensionPreserved(t *testing.T) {
	tests := []struct {
		input string
		ext   string
	}{
		{"Movie.Title.2019.1080p.mkv", ".mkv"},
		{"Movie.Title.2019.MKV", ".MKV"},
		{"Show.2018.Mp4", ".Mp4"},
	}

	for _, tt := range tests {
		got := Format(tt.input, true, "")
		if !strings.HasSuffix(got, tt.ext) {
			t.Errorf("Format(%q) = %q, extension %q not preserved exactly", tt.input, got, tt.ext)
		}
	}
}

// A four-digit number that is part of the title is read as the year and
// everything after it is dropped. Known heuristic risk, kept on purpose.
func TestFormat_TitleWithNonYearNumber(t *testing.T) {
	got := Format("2001.A.Space.Odyssey.1968.mkv", true, "")
	want := "(2001).mkv"
	if got != want {
		t.Errorf("Format() = %q, want %q (documented year-heuristic mis-parse)", got, want)
	}
}

func TestFindYear(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Movie.2019.1080p.mkv", "2019"},
		{"no digits here", ""},
		{"12345", "1234"},
		{"abc 99 def", ""},
	}

	for _, tt := range tests {
		if got := FindYear(tt.input); got != tt.want {
			t.Errorf("FindYear(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestIsCanonical(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"Movie Title (2019)", true},
		{"Movie Title 2019", false},
		{"Movie.Title.(2019)", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsCanonical(tt.input); got != tt.want {
			t.Errorf("IsCanonical(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
