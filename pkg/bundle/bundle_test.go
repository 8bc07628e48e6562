package bundle_test

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/silaspuma/rogen/pkg/bundle"
	"github.com/silaspuma/rogen/pkg/model"
)

func readEntry(t *testing.T, r *zip.Reader, name string) string {
	t.Helper()

	f, err := r.Open(name)
	gt.NoError(t, err)
	defer f.Close()

	data, err := io.ReadAll(f)
	gt.NoError(t, err)
	return string(data)
}

func TestBuild(t *testing.T) {
	id := model.NewGameID()
	script := "-- Game Configuration\nlocal config = {}\nprint(\"hello\")"

	data, err := bundle.Build(script, id)
	gt.NoError(t, err)

	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	gt.NoError(t, err)

	// Fixed two-entry layout.
	gt.V(t, len(r.File)).Equal(2)
	gt.V(t, r.File[0].Name).Equal(bundle.ScriptEntry)
	gt.V(t, r.File[1].Name).Equal(bundle.ReadmeEntry)

	gt.V(t, readEntry(t, r, bundle.ScriptEntry)).Equal(script)
	gt.S(t, readEntry(t, r, bundle.ReadmeEntry)).Contains(string(id))
	gt.S(t, readEntry(t, r, bundle.ReadmeEntry)).Contains("Roblox Studio")
}

func TestFileName(t *testing.T) {
	gt.V(t, bundle.FileName(model.GameID("abc"))).Equal("game_abc.zip")
}

func TestPlaceholder(t *testing.T) {
	id := model.GameID("xyz")
	gt.S(t, bundle.Placeholder(id)).Contains("xyz")
}
