package ui

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/javiermolinar/reelview/internal/browse"
	"github.com/javiermolinar/reelview/internal/movie"
)

func TestParseIDs(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []int64
		wantErr bool
	}{
		{name: "empty", input: "", want: nil},
		{name: "single", input: "7", want: []int64{7}},
		{name: "list", input: "1,7", want: []int64{1, 7}},
		{name: "spaces and blanks", input: " 1 , ,18 ", want: []int64{1, 18}},
		{name: "not a number", input: "1,x", wantErr: true},
		{name: "zero", input: "0", wantErr: true},
		{name: "negative", input: "-3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseIDs(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidID) {
					t.Fatalf("err = %v, want ErrInvalidID", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseIDs(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTitleWidth(t *testing.T) {
	tests := []struct {
		termW int
		want  int
	}{
		{termW: 20, want: minTitleWidth},
		{termW: 60, want: 60 - lineOverhead},
		{termW: 200, want: maxTitleWidth},
	}
	for _, tt := range tests {
		if got := TitleWidth(tt.termW); got != tt.want {
			t.Errorf("TitleWidth(%d) = %d, want %d", tt.termW, got, tt.want)
		}
	}
}

func TestFormatMovieLine(t *testing.T) {
	DisableColor()
	t.Cleanup(EnableColor)

	m, _ := movie.FindByID(movie.Catalog(), 5)

	line := FormatMovieLine(m, true, 12)
	for _, want := range []string{"♥ #5", "A Murder In…", "Mar 14, 2025", "[Thriller]"} {
		if !strings.Contains(line, want) {
			t.Errorf("line %q missing %q", line, want)
		}
	}

	short := FormatMovieLine(movie.Movie{ID: 9, Title: "Be Happy", Date: "2025-02-16", Genre: movie.GenreComedy}, false, 12)
	if !strings.Contains(short, "♡ #9    Be Happy      Feb 16, 2025") {
		t.Errorf("short line not padded: %q", short)
	}
}

func TestFooterLine(t *testing.T) {
	s := browse.New(movie.Catalog())
	if got := FooterLine(s); got != "Page 1 of 2" {
		t.Errorf("FooterLine = %q, want Page 1 of 2", got)
	}

	s.ToggleFavorite(3)
	s.SetMode(movie.ModeWatchlist)
	if got := FooterLine(s); got != "Watchlist: 1 movie(s)" {
		t.Errorf("FooterLine = %q, want watchlist count", got)
	}
}

func TestRenderTable(t *testing.T) {
	s := browse.New(movie.Catalog())
	s.ToggleFavorite(1)
	out := RenderTable(s)

	lines := strings.Split(out, "\n")
	// top border, header, separator, 9 rows, bottom border
	if len(lines) != 13 {
		t.Fatalf("lines = %d, want 13:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[3], "The Gorge") || !strings.Contains(lines[3], "♥") {
		t.Errorf("first row = %q, want The Gorge marked as favorite", lines[3])
	}
}
