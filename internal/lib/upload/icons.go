package upload

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// itemIcons are the images referenced by the seeded items table.
//
//go:embed items/*.svg
var itemIcons embed.FS

// ItemIcons lists the bundled item icon filenames.
func ItemIcons() ([]string, error) {
	entries, err := fs.ReadDir(itemIcons, "items")
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}

// installItemIcons writes every bundled icon missing from the upload
// directory. Existing files are left alone.
func (s *Storage) installItemIcons() error {
	names, err := ItemIcons()
	if err != nil {
		return fmt.Errorf("failed to list item icons: %w", err)
	}

	installed := 0
	for _, name := range names {
		data, err := itemIcons.ReadFile(path.Join("items", name))
		if err != nil {
			return fmt.Errorf("failed to read item icon %s: %w", name, err)
		}

		f, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to create item icon %s: %w", name, err)
		}

		_, writeErr := f.Write(data)
		if err := errors.Join(writeErr, f.Close()); err != nil {
			return fmt.Errorf("failed to write item icon %s: %w", name, err)
		}
		installed++
	}

	if installed > 0 {
		s.logger.Info().Int("count", installed).Str("dir", s.dir).Msg("installed item icons")
	}

	return nil
}
