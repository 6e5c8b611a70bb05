// Package export writes colormaps to palette files for design tools.
package export

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrInvalidFileName is returned when a file name has the wrong extension
var ErrInvalidFileName = errors.New("invalid file name")

func checkExt(fileName string, exts ...string) error {
	for _, ext := range exts {
		if strings.HasSuffix(fileName, ext) && len(fileName) > len(ext) {
			return nil
		}
	}
	return fmt.Errorf("%w %q: must end with %s", ErrInvalidFileName, fileName, strings.Join(exts, " or "))
}

func target(folder, fileName string) string {
	return filepath.Join(folder, fileName)
}
