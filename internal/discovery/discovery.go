package discovery

import (
	"log/slog"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/text/unicode/norm"

	"rewav/internal/logging"
)

// Extensions is the fixed allow-list of source formats, matched
// case-sensitively against the file name suffix.
var Extensions = []string{"aif", "aiff", "mp3", "flac", "ogg", "aac", "m4a", "wma"}

// Record describes one discovered candidate file. Records are immutable;
// the delete phase reuses Path after conversion has finished.
type Record struct {
	// Path is the matched file path as returned by the glob.
	Path string
	// Directory is the parent of Path; converted output lands here.
	Directory string
	// Stem is the file name without its extension, NFC-normalized so the
	// output name is stable across platforms.
	Stem string
}

// OutputPath returns the destination the conversion task writes to.
func (r Record) OutputPath() string {
	return filepath.Join(r.Directory, r.Stem+".wav")
}

// Discover recursively matches files under root against the extension
// allow-list. A pattern that fails to enumerate drops only that extension's
// contribution; the result is always usable.
func Discover(root string, logger *slog.Logger) []Record {
	log := logging.NewComponentLogger(logger, "discovery")

	var records []Record
	for _, ext := range Extensions {
		pattern := filepath.Join(root, "**", "*."+ext)
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			log.Warn("skipping extension, pattern failed",
				logging.String("extension", ext),
				logging.Error(err))
			continue
		}
		for _, match := range matches {
			if !utf8.ValidString(match) {
				log.Debug("skipping file with unrepresentable name")
				continue
			}
			base := filepath.Base(match)
			stem := strings.TrimSuffix(base, "."+ext)
			records = append(records, Record{
				Path:      match,
				Directory: filepath.Dir(match),
				Stem:      norm.NFC.String(stem),
			})
		}
	}
	return records
}
