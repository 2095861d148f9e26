// Command svg-migrator converts the SVG icon assets into normalized
// 0–24 path data, emitting one JSON record per icon on stdout.
// Diagnostics and errors go to stderr.
package main

import (
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	svgicon "github.com/idkidk000/placecal-svg-migrator"
)

const defaultIconDir = "app/assets/images/icons"

var (
	source = flag.String("in", defaultIconDir, "SVG file or directory to convert (directories are non-recursive)")
	mode   = flag.String("mode", "strict", "viewBox policy: strict or center")
	debug  = flag.Bool("debug", false, "emit per-file scaling diagnostics")
)

// renames maps on-disk file names to the icon identifier the frontend
// uses, for files whose names drifted from the semantic name.
var renames = map[string]string{
	"mag-glass.svg":     "search",
	"cal-check.svg":     "calendar",
	"soc-facebook.svg":  "facebook",
	"soc-instagram.svg": "instagram",
	"place-marker.svg":  "location",
}

// skipped lists files excluded from conversion until they are manually
// reworked; the value records why. Checked before any parsing happens.
var skipped = map[string]string{
	"partnership-badge.svg": "non-square viewBox, needs manual rework",
	"hero-artwork.svg":      "embedded stylesheet, needs manual cleanup",
	"sparkle.svg":           "exponent-formatted coordinates, convert by hand",
}

func main() {
	flag.Parse()
	if flag.NArg() > 0 {
		*source = flag.Arg(0)
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	var m svgicon.Mode
	switch *mode {
	case "strict":
		m = svgicon.StrictSquare
	case "center":
		m = svgicon.Centering
	default:
		logger.Fatal().Str("mode", *mode).Msg("mode must be strict or center")
	}

	conv := svgicon.NewConverter(m)
	conv.Log = logger

	files, err := listFiles(*source)
	if err != nil {
		logger.Fatal().Err(err).Str("path", *source).Msg("cannot read source")
	}
	if len(files) == 0 {
		logger.Fatal().Str("path", *source).Msg("no svg files found")
	}

	enc := json.NewEncoder(os.Stdout)
	for _, path := range files {
		base := filepath.Base(path)
		if reason, ok := skipped[base]; ok {
			logger.Warn().Str("file", path).Str("reason", reason).Msg("skipping")
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Fatal().Err(err).Str("file", path).Msg("read failed")
		}
		res, err := conv.Convert(iconNameFor(base), data)
		if err != nil {
			// One bad file halts the run; the skip list is the only
			// sanctioned way to omit known-bad inputs.
			logger.Fatal().Err(err).Str("file", path).Msg("conversion failed")
		}
		if err := enc.Encode(res); err != nil {
			logger.Fatal().Err(err).Str("file", path).Msg("encode failed")
		}
	}
}

// iconNameFor resolves the semantic icon identifier for a file name.
func iconNameFor(base string) string {
	if name, ok := renames[base]; ok {
		return name
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// listFiles resolves the source argument to a sorted list of SVG files.
// A directory contributes only its immediate .svg files (any letter case).
func listFiles(src string) ([]string, error) {
	fi, err := os.Stat(src)
	if err != nil {
		return nil, err
	}
	if !fi.IsDir() {
		return []string{src}, nil
	}
	entries, err := os.ReadDir(src)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".svg") {
			files = append(files, filepath.Join(src, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}
