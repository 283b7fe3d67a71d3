package view_test

import (
	"bytes"
	"context"
	"errors"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	testctx "github.com/opst/extlite/internal/testutils/context"
	"github.com/opst/extlite/pkg/view"
)

func TestRenderer(t *testing.T) {
	fsys := fstest.MapFS{
		"views/_layout.html": {Data: []byte(
			`{{define "header"}}<h1>{{.Controller}}</h1>{{end}}`,
		)},
		"views/notes/index.html": {Data: []byte(
			`{{template "header" .}}<ul>{{range .notes}}<li>{{.}}</li>{{end}}</ul>`,
		)},
		"views/notes/detail.html": {Data: []byte(`<p>{{upper .title}}</p>`)},
		"views/notes/broken.html": {Data: []byte(`{{if}}`)},
	}

	t.Run("it renders a template with shared parts", func(t *testing.T) {
		testee := view.New(fsys)
		buf := new(bytes.Buffer)
		err := testee.Render(buf, "views/notes/index.html", map[string]any{
			"Controller": "notes",
			"notes":      []string{"a", "<b>"},
		}, nil)
		if err != nil {
			t.Fatal(err)
		}
		if want := "<h1>notes</h1><ul><li>a</li><li>&lt;b&gt;</li></ul>"; buf.String() != want {
			t.Errorf("got %q, want %q", buf.String(), want)
		}
	})

	t.Run("it renders with functions", func(t *testing.T) {
		testee := view.New(fsys, view.WithFuncs(template.FuncMap{"upper": strings.ToUpper}))
		buf := new(bytes.Buffer)
		if err := testee.Render(buf, "/views/notes/detail.html", map[string]any{"title": "hi"}, nil); err != nil {
			t.Fatal(err)
		}
		if want := "<p>HI</p>"; buf.String() != want {
			t.Errorf("got %q, want %q", buf.String(), want)
		}
	})

	t.Run("when the template is missing, it returns ErrViewMissing", func(t *testing.T) {
		testee := view.New(fsys)
		err := testee.Render(new(bytes.Buffer), "views/notes/list.html", nil, nil)
		if !errors.Is(err, view.ErrViewMissing) {
			t.Errorf("unexpected error: %v", err)
		}
		if !strings.Contains(err.Error(), "views/notes/list.html") {
			t.Errorf("error should tell the path: %v", err)
		}
	})

	t.Run("when the template is broken, it returns error", func(t *testing.T) {
		testee := view.New(fsys)
		err := testee.Render(new(bytes.Buffer), "views/notes/broken.html", nil, nil)
		if err == nil || errors.Is(err, view.ErrViewMissing) {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("it caches templates until invalidated", func(t *testing.T) {
		fsys := fstest.MapFS{"v/a.html": {Data: []byte("old")}}
		testee := view.New(fsys)

		render := func() string {
			buf := new(bytes.Buffer)
			if err := testee.Render(buf, "v/a.html", nil, nil); err != nil {
				t.Fatal(err)
			}
			return buf.String()
		}

		if got := render(); got != "old" {
			t.Fatalf("got %q", got)
		}
		fsys["v/a.html"] = &fstest.MapFile{Data: []byte("new")}
		if got := render(); got != "old" {
			t.Errorf("not cached: %q", got)
		}
		testee.Invalidate()
		if got := render(); got != "new" {
			t.Errorf("not invalidated: %q", got)
		}
	})
}

func TestRenderer_Watch(t *testing.T) {
	t.Run("when a template is modified, it renders the new one", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.Mkdir(filepath.Join(dir, "notes"), 0o755); err != nil {
			t.Fatal(err)
		}
		file := filepath.Join(dir, "notes", "index.html")
		if err := os.WriteFile(file, []byte("old"), 0o644); err != nil {
			t.Fatal(err)
		}

		ctx := testctx.WithTest(context.Background(), t)

		testee := view.New(os.DirFS(dir))
		if err := testee.Watch(ctx, dir); err != nil {
			t.Fatal(err)
		}

		render := func() string {
			buf := new(bytes.Buffer)
			if err := testee.Render(buf, "notes/index.html", nil, nil); err != nil {
				t.Fatal(err)
			}
			return buf.String()
		}
		if got := render(); got != "old" {
			t.Fatalf("got %q", got)
		}

		if err := os.WriteFile(file, []byte("new"), 0o644); err != nil {
			t.Fatal(err)
		}
		deadline := time.Now().Add(10 * time.Second)
		for render() != "new" {
			if time.Now().After(deadline) {
				t.Fatal("template is not reloaded")
			}
			time.Sleep(50 * time.Millisecond)
		}
	})
}
