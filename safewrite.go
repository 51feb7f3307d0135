package fractals

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/scottkirkwood/fractals/logging"
)

// SafeWrite noisily saves to a tmp file in dir and then moves it into place
func (s Seed) SafeWrite(surf Surface, dir, prefix, ext string) (string, error) {
	fname := filepath.Join(dir, s.GetFilename(prefix, ext))
	if err := SafeWrite(surf, fname); err != nil {
		return "", err
	}
	return fname, nil
}

// SafeWrite writes surf to fname, logging the outcome
func SafeWrite(surf Surface, fname string) error {
	log := logging.Logger()
	if err := safeWrite(surf, fname); err != nil {
		log.Error("Problem saving", "file", fname, "error", err)
		return err
	}
	log.Info("Saved", "file", fname)
	return nil
}

// safeWrite writes to a temp file then renames atomically
func safeWrite(surf Surface, fname string) error {
	dir := filepath.Dir(fname)
	if err := MaybeCreateDir(dir); err != nil {
		return err
	}

	// the temp file lives next to fname so the rename stays on one drive
	tmpfile, err := os.CreateTemp(dir, "fractals.*"+Ext(fname))
	if err != nil {
		return err
	}
	tmpName := tmpfile.Name()
	tmpfile.Close()

	if err := surf.WriteFile(tmpName); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, fname); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Chmod(fname, 0664)
}

// MaybeCreateDir creates dir and its parents when missing
func MaybeCreateDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0775); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	return nil
}
