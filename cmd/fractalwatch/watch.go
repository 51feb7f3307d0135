package main

import (
	"hash/crc64"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/scottkirkwood/fractals/logging"
)

// watch remembers file checksums so saves without changes are skipped
type watch struct {
	r *renderer

	mu      sync.Mutex
	fileCrc map[string]uint64
	images  []string
}

func newWatch(r *renderer) *watch {
	return &watch{r: r, fileCrc: make(map[string]uint64)}
}

func (w *watch) loop(watcher *fsnotify.Watcher, images chan string) {
	log := logging.Logger()
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if fname, ok := w.handle(event.Name); ok && images != nil {
				offer(images, fname)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Error("watch error", "error", err)
		}
	}
}

// offer replaces any image the window has not picked up yet
func offer(images chan string, fname string) {
	for {
		select {
		case images <- fname:
			return
		default:
		}
		select {
		case <-images:
		default:
		}
	}
}

// handle renders fname if it is a changed fractal file. It returns the
// written image.
func (w *watch) handle(fname string) (string, bool) {
	log := logging.Logger()
	if !isFractalFile(fname) || !w.fileChanged(fname) {
		return "", false
	}
	out, err := w.r.renderFile(fname)
	if err != nil {
		log.Warn("not rendered", "file", fname, "error", err)
		return "", false
	}
	w.mu.Lock()
	w.images = append(w.images, out)
	w.mu.Unlock()
	return out, true
}

// renderAll renders the fractal files already in folder, in name order
func (w *watch) renderAll(folder string) {
	files, err := filepath.Glob(filepath.Join(folder, "*.json"))
	if err != nil {
		return
	}
	sort.Strings(files)
	for _, f := range files {
		w.handle(f)
	}
}

// rendered returns the images written so far
func (w *watch) rendered() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string(nil), w.images...)
}

var onlyDigitsRx = regexp.MustCompile(`^\d+$`)

// isFractalFile skips vim's numbered temp files and anything not json
func isFractalFile(fname string) bool {
	base := filepath.Base(fname)
	if onlyDigitsRx.MatchString(base) {
		return false
	}
	return strings.EqualFold(filepath.Ext(base), ".json")
}

func (w *watch) fileChanged(fname string) bool {
	newChecksum, ok := fileChecksum(fname)
	if !ok {
		return false
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if checksum, seen := w.fileCrc[fname]; seen && checksum == newChecksum {
		logging.Logger().Debug("File unchanged", "file", fname)
		return false
	}
	w.fileCrc[fname] = newChecksum
	return true
}

func fileChecksum(fname string) (uint64, bool) {
	bytes, err := os.ReadFile(fname)
	if err != nil {
		logging.Logger().Warn("Readfile error", "file", fname, "error", err)
		return 0, false
	}
	h := crc64.New(crc64.MakeTable(crc64.ECMA))
	h.Write(bytes)
	return h.Sum64(), true
}
