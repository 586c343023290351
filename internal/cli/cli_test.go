package cli

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/handiism/art-exposure/internal/config"
	"github.com/handiism/art-exposure/internal/desktop"
	"github.com/handiism/art-exposure/internal/exposure"
	"github.com/spf13/afero"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSettings_Precedence(t *testing.T) {
	path := writeConfig(t, `
query = "Hokusai"
max_tries = 5
border_width = 40
output_dir = "/from/config"
`)

	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, load loader)
	}{
		{
			name: "config over defaults",
			args: []string{"--config", path},
			check: func(t *testing.T, load loader) {
				s := mustLoad(t, load)
				if s.Query != "Hokusai" || s.MaxTries != 5 || s.BorderWidth != 40 {
					t.Errorf("got query=%q tries=%d border=%d", s.Query, s.MaxTries, s.BorderWidth)
				}
				if !s.SetWallpaper {
					t.Error("SetWallpaper should keep its default")
				}
			},
		},
		{
			name: "flags over config",
			args: []string{"--config", path, "-q", "Monet", "--max-tries", "9", "-o", "/from/flag"},
			check: func(t *testing.T, load loader) {
				s := mustLoad(t, load)
				if s.Query != "Monet" || s.MaxTries != 9 || s.OutputDir != "/from/flag" {
					t.Errorf("got query=%q tries=%d output=%q", s.Query, s.MaxTries, s.OutputDir)
				}
				if s.BorderWidth != 40 {
					t.Errorf("BorderWidth = %d, want 40 from config", s.BorderWidth)
				}
			},
		},
		{
			name: "font implies caption",
			args: []string{"--config", path, "--font", "Georgia.ttf"},
			check: func(t *testing.T, load loader) {
				s := mustLoad(t, load)
				if !s.Caption || s.Font != "Georgia.ttf" {
					t.Errorf("got caption=%t font=%q", s.Caption, s.Font)
				}
			},
		},
		{
			name: "no wallpaper",
			args: []string{"--config", path, "--no-wallpaper"},
			check: func(t *testing.T, load loader) {
				if mustLoad(t, load).SetWallpaper {
					t.Error("SetWallpaper = true, want false")
				}
			},
		},
		{
			name: "invalid flag value",
			args: []string{"--config", path, "--border", "-1"},
			check: func(t *testing.T, load loader) {
				if _, err := load(); err == nil {
					t.Error("expected validation error")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(&bytes.Buffer{}, &bytes.Buffer{})
			root := c.RootCommand()
			if err := root.ParseFlags(tt.args); err != nil {
				t.Fatalf("ParseFlags() error = %v", err)
			}
			tt.check(t, func() (*config.Settings, error) {
				return c.loadSettings(root, &c.flags)
			})
		})
	}
}

type loader func() (*config.Settings, error)

func mustLoad(t *testing.T, load loader) *config.Settings {
	t.Helper()
	s, err := load()
	if err != nil {
		t.Fatalf("loadSettings() error = %v", err)
	}
	return s
}

func TestRootCommand_RejectsArguments(t *testing.T) {
	c := New(&bytes.Buffer{}, &bytes.Buffer{})
	root := c.RootCommand()
	root.SetArgs([]string{"Impressionism"})

	if err := root.ExecuteContext(context.Background()); err == nil {
		t.Error("expected error for positional argument")
	}
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	c := New(&out, &bytes.Buffer{})
	root := c.RootCommand()
	root.SetArgs([]string{"version"})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.HasPrefix(out.String(), "art-exposure ") {
		t.Errorf("output = %q", out.String())
	}
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")

	run := func(args ...string) error {
		c := New(&bytes.Buffer{}, &bytes.Buffer{})
		root := c.RootCommand()
		root.SetArgs(append([]string{"config", "init", "--config", path}, args...))
		return root.Execute()
	}

	if err := run(); err != nil {
		t.Fatalf("config init error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if !strings.Contains(string(data), `query = "Impressionism"`) {
		t.Errorf("config file missing default query:\n%s", data)
	}

	if err := run(); err == nil {
		t.Error("second init should refuse to overwrite")
	}
	if err := run("--force"); err != nil {
		t.Errorf("init --force error = %v", err)
	}
}

type recordingSetter struct {
	paths []string
}

func (s *recordingSetter) Set(_ context.Context, path string) error {
	s.paths = append(s.paths, path)
	return nil
}

func TestRootCommand_Run(t *testing.T) {
	var imgBuf bytes.Buffer
	if err := png.Encode(&imgBuf, image.NewNRGBA(image.Rect(0, 0, 8, 4))); err != nil {
		t.Fatal(err)
	}

	mux := http.NewServeMux()
	var srv *httptest.Server
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		if q := r.URL.Query().Get("q"); q != "Irises" {
			t.Errorf("q = %q, want Irises", q)
		}
		fmt.Fprint(w, `{"total":1,"objectIDs":[436528]}`)
	})
	mux.HandleFunc("/objects/436528", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"objectID":436528,"title":"Irises","artistDisplayName":"Vincent van Gogh","primaryImage":"%s/img.png","objectDate":"1890"}`, srv.URL)
	})
	mux.HandleFunc("/img.png", func(w http.ResponseWriter, r *http.Request) {
		w.Write(imgBuf.Bytes())
	})
	srv = httptest.NewServer(mux)
	defer srv.Close()

	path := writeConfig(t, fmt.Sprintf("api_base_url = %q\n", srv.URL))
	fs := afero.NewMemMapFs()
	setter := &recordingSetter{}

	var out, logs bytes.Buffer
	c := New(&out, &logs,
		exposure.WithFs(fs),
		exposure.WithDisplay(desktop.StaticDisplay(100)),
		exposure.WithSetter(setter),
	)
	root := c.RootCommand()
	root.SetArgs([]string{"--config", path, "-q", "Irises", "-o", "/out", "--border", "5", "-v"})

	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Execute() error = %v\nlogs:\n%s", err, logs.String())
	}

	want := "/out/Vincent_van_Gogh_-_Irises.png"
	if exists, _ := afero.Exists(fs, want); !exists {
		t.Errorf("%s not written", want)
	}
	if len(setter.paths) != 1 || setter.paths[0] != want {
		t.Errorf("setter paths = %v", setter.paths)
	}
	if !strings.Contains(out.String(), "Irises") || !strings.Contains(out.String(), "210x110") {
		t.Errorf("summary missing details:\n%s", out.String())
	}
	if c.logger.GetLevel() != log.DebugLevel {
		t.Error("--verbose did not enable debug logging")
	}
}
