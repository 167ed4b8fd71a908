package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/tailscale/hujson"
)

// ErrNotFound is returned by Load when an extension has neither manifest.
var ErrNotFound = errors.New("manifest not found")

// ParseError reports a manifest file that exists but could not be read or
// decoded into an ExtensionManifest.
type ParseError struct {
	Path   string
	Format Format
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing manifest %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// fallbackOrder lists the manifest formats in the order Load tries them.
var fallbackOrder = []Format{FormatTOML, FormatJSON}

// Load locates and parses the manifest of the extension rooted at dir. The
// first format whose file exists wins; later formats are not consulted even
// if the winning file fails to parse.
func Load(dir string) (*ExtensionManifest, Format, error) {
	for _, format := range fallbackOrder {
		path := filepath.Join(dir, format.FileName())

		data, err := readFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, format, &ParseError{Path: path, Format: format, Err: err}
		}

		m, err := Parse(data, format)
		if err != nil {
			return nil, format, &ParseError{Path: path, Format: format, Err: err}
		}
		return m, format, nil
	}

	return nil, FormatTOML, fmt.Errorf("%w in %s (tried %s, %s)", ErrNotFound, dir, TOMLFileName, JSONFileName)
}

// Parse decodes manifest data in the given format. The document is checked
// against the format's schema before it is decoded into the typed struct.
func Parse(data []byte, format Format) (*ExtensionManifest, error) {
	data, err := normalize(data, format)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := decode(data, format, &raw); err != nil {
		return nil, err
	}

	result, err := Validate(raw, format)
	if err != nil {
		return nil, err
	}
	if err := result.Err(); err != nil {
		return nil, err
	}

	if format == FormatJSON {
		legacy, err := parseTyped[legacyManifest](data, format)
		if err != nil {
			return nil, err
		}
		return legacy.upgrade(), nil
	}
	return parseTyped[ExtensionManifest](data, format)
}

// parseTyped decodes data into a typed manifest struct.
func parseTyped[T any](data []byte, format Format) (*T, error) {
	var m T
	if err := decode(data, format, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// normalize turns the permissive legacy JSON (comments, trailing commas)
// into standard JSON. TOML is returned unchanged.
func normalize(data []byte, format Format) ([]byte, error) {
	if format != FormatJSON {
		return data, nil
	}
	std, err := hujson.Standardize(append([]byte(nil), data...))
	if err != nil {
		return nil, err
	}
	return std, nil
}

func decode(data []byte, format Format, v any) error {
	switch format {
	case FormatTOML:
		_, err := toml.Decode(string(data), v)
		return err
	case FormatJSON:
		return json.Unmarshal(data, v)
	default:
		return fmt.Errorf("unknown manifest format %d", int(format))
	}
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
