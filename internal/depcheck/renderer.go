package depcheck

import (
	"errors"
	"fmt"
	"os/exec"
)

// DefaultRendererBinary is the WeasyPrint executable the report engine shells
// out to for PDF export.
const DefaultRendererBinary = "weasyprint"

// RendererLocator reports whether the PDF renderer is installed at all.
type RendererLocator func() error

// LookPathRenderer locates the renderer executable on PATH.
func LookPathRenderer(binary string) RendererLocator {
	if binary == "" {
		binary = DefaultRendererBinary
	}
	return func() error {
		if _, err := exec.LookPath(binary); err != nil {
			if errors.Is(err, exec.ErrNotFound) {
				return ErrRendererNotFound
			}
			return fmt.Errorf("locate %s: %w", binary, err)
		}
		return nil
	}
}
