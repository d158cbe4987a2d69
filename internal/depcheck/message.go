package depcheck

import (
	"strings"

	"github.com/SnowS2471/BettaFish/internal/platform"
)

const (
	successMessage = "✓ Pango dependency check passed; PDF export is available"

	rendererMissingMessage = "⚠ WeasyPrint is not installed\n" +
		"Fix: pip install weasyprint"

	docsPointer = "║  📖 Full guide: README.md, section \"PDF export dependencies\"  ║\n"
)

const (
	boxTop    = "╔════════════════════════════════════════════════════════════════╗\n"
	boxBlank  = "║                                                                ║\n"
	boxBottom = "╚════════════════════════════════════════════════════════════════╝"
)

// remediationMessage renders the boxed, platform-specific fix for a missing
// native text-layout stack. The recipe blocks are documentation fixtures.
func remediationMessage(k platform.Kind) string {
	var b strings.Builder
	b.WriteString(boxTop)
	b.WriteString("║  ⚠️  PDF export dependency missing                             ║\n")
	b.WriteString(boxBlank)
	b.WriteString("║  📄 PDF export will be unavailable (other features still work) ║\n")
	b.WriteString(boxBlank)
	b.WriteString(k.Instructions())
	b.WriteString(boxBlank)
	b.WriteString(docsPointer)
	b.WriteString(boxBottom)
	return b.String()
}
