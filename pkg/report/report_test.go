package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRecorder(t *testing.T) {
	r := NewRecorder()
	if r.Len() != 0 {
		t.Fatal("fresh recorder not empty")
	}

	r.Add(100, 0.4, 0.3)
	r.Add(200, 0.55, 0.25)

	if r.Len() != 2 {
		t.Fatalf("expected 2 points, got %d", r.Len())
	}
	points := r.Points()
	if points[1].Game != 200 || points[1].WinRate != 0.55 {
		t.Fatalf("unexpected point %+v", points[1])
	}
}

func TestRenderHTML(t *testing.T) {
	r := NewRecorder()
	for i := 1; i <= 10; i++ {
		r.Add(i*100, float64(i)/10, 0.3)
	}

	path := filepath.Join(t.TempDir(), "training.html")
	if err := r.RenderHTML(path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "win rate") {
		t.Fatal("chart output missing the win-rate series")
	}
}

func TestRenderHTMLReportsWriteFailure(t *testing.T) {
	r := NewRecorder()
	r.Add(100, 0.5, 0.3)

	// A directory path cannot be created as a file
	if err := r.RenderHTML(t.TempDir()); err == nil {
		t.Fatal("expected an error for an unwritable chart path")
	}
}
