// Package bundle packages a generated script into a downloadable zip
// archive. Every bundle has the same two-entry layout: the script file and
// a README with install steps referencing the game ID.
package bundle

import (
	"archive/zip"
	"bytes"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/silaspuma/rogen/pkg/model"
)

const (
	ScriptEntry = "game_main.lua"
	ReadmeEntry = "README.md"
)

const readmeFormat = `# Roblox Game Files

Game ID: %s

## Installation

1. Extract this ZIP file
2. Open Roblox Studio
3. Create a new place
4. Insert a new Script in Workspace
5. Copy the contents of game_main.lua into the script
6. Save and test
`

// FileName is the deterministic archive name for a game ID.
func FileName(id model.GameID) string {
	return fmt.Sprintf("game_%s.zip", id)
}

// Build creates the archive. Deterministic for identical inputs apart
// from the zip entry timestamps.
func Build(script string, id model.GameID) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := zip.NewWriter(buf)

	entries := []struct {
		name string
		body string
	}{
		{ScriptEntry, script},
		{ReadmeEntry, fmt.Sprintf(readmeFormat, id)},
	}

	for _, e := range entries {
		f, err := w.Create(e.name)
		if err != nil {
			return nil, goerr.Wrap(model.ErrPackaging, "failed to create archive entry",
				goerr.V("entry", e.name), goerr.V("game_id", id))
		}
		if _, err := f.Write([]byte(e.body)); err != nil {
			return nil, goerr.Wrap(model.ErrPackaging, "failed to write archive entry",
				goerr.V("entry", e.name), goerr.V("game_id", id))
		}
	}

	if err := w.Close(); err != nil {
		return nil, goerr.Wrap(model.ErrPackaging, "failed to finalize archive", goerr.V("game_id", id))
	}

	return buf.Bytes(), nil
}

// Placeholder is the script body served when a game is not in the local
// cache. The real script lives in the stored bundle; this keeps the
// download path total.
func Placeholder(id model.GameID) string {
	return fmt.Sprintf("-- Generated Roblox Game\n-- Download and extract this file\n-- Copy the Lua code into Roblox Studio\n-- Game ID: %s\n", id)
}
