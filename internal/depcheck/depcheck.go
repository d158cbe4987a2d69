// Package depcheck probes the native text-layout stack WeasyPrint needs for
// PDF export and turns every failure into a human-readable remediation
// message. Nothing here is fatal: the probe always returns a Result, and
// startup code uses the boolean to gate the PDF-export feature flag.
package depcheck

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"

	"github.com/SnowS2471/BettaFish/internal/logging"
	"github.com/SnowS2471/BettaFish/internal/platform"
)

// pangoVersionSymbol is called after a successful load to force real symbol
// resolution instead of just confirming the file exists.
const pangoVersionSymbol = "pango_version"

// nativeNameFragments identify a missing text-layout component in the OS
// loader's error text. Heuristic: separates "library missing" from load
// failures with some other cause; loader wording varies across platforms.
var nativeNameFragments = []string{"gobject", "pango", "gdk"}

// Result is the outcome of one probe.
type Result struct {
	Available bool   `json:"available"`
	Message   string `json:"message"`
}

// Checker runs the dependency probe. Loader and Renderer are injectable so
// tests can simulate each failure kind without touching the host.
type Checker struct {
	Loader   NativeLoader
	Renderer RendererLocator
	Platform platform.Kind
}

// NewChecker wires the host loader and renderer lookup for the current
// platform. rendererBinary may be empty to use the default.
func NewChecker(rendererBinary string) *Checker {
	return &Checker{
		Loader:   NewNativeLoader(),
		Renderer: LookPathRenderer(rendererBinary),
		Platform: platform.Detect(),
	}
}

// CheckPangoAvailable runs the one-shot probe: locate the renderer, load the
// Pango library, call pango_version. Every failure is classified into one of
// four kinds and rendered as a message; nothing propagates.
func (c *Checker) CheckPangoAvailable() Result {
	if err := c.probe(); err != nil {
		return Result{Available: false, Message: c.failureMessage(err)}
	}
	return Result{Available: true, Message: successMessage}
}

func (c *Checker) probe() error {
	if err := c.Renderer(); err != nil {
		return err
	}
	h, err := c.Loader.Load(c.Platform.TextLayoutLibrary())
	if err != nil {
		return err
	}
	defer h.Close()

	version, err := h.VersionFunc(pangoVersionSymbol)
	if err != nil {
		return err
	}
	if v := version(); v <= 0 {
		return fmt.Errorf("%s returned %d", pangoVersionSymbol, v)
	}
	return nil
}

func (c *Checker) failureMessage(err error) string {
	var le *LoadError
	switch {
	case errors.Is(err, ErrRendererNotFound):
		return rendererMissingMessage
	case errors.As(err, &le):
		if matchesNativeFragment(le.Err.Error()) {
			return remediationMessage(c.Platform)
		}
		return "⚠ PDF dependency failed to load: " + le.Error()
	default:
		return "⚠ PDF dependency check failed: " + err.Error()
	}
}

func matchesNativeFragment(msg string) bool {
	msg = strings.ToLower(msg)
	for _, frag := range nativeNameFragments {
		if strings.Contains(msg, frag) {
			return true
		}
	}
	return false
}

// LibraryStatus is the per-component detail reported by Scan.
type LibraryStatus struct {
	Name   string `json:"name"`
	Loaded bool   `json:"loaded"`
	Error  string `json:"error,omitempty"`
}

// Scan tries to load every native component the renderer links against and
// aggregates the failures. Detail only; availability classification stays
// with CheckPangoAvailable.
func (c *Checker) Scan() ([]LibraryStatus, error) {
	var errs error
	libs := c.Platform.NativeLibraries()
	statuses := make([]LibraryStatus, 0, len(libs))
	for _, name := range libs {
		st := LibraryStatus{Name: name, Loaded: true}
		if h, err := c.Loader.Load(name); err != nil {
			st.Loaded = false
			st.Error = err.Error()
			errs = multierr.Append(errs, err)
		} else {
			_ = h.Close()
		}
		statuses = append(statuses, st)
	}
	return statuses, errs
}

// LogDependencyStatus probes once and records the outcome: one success record
// when available, otherwise one warning plus two info records. The returned
// boolean is the probe's Available flag, unchanged.
func (c *Checker) LogDependencyStatus(log logging.StatusLogger) bool {
	res := c.CheckPangoAvailable()
	if res.Available {
		log.Success(res.Message)
		return true
	}
	log.Warning(res.Message)
	log.Info("PDF export needs the Pango library; every other feature keeps working")
	log.Info("Install steps: README.md in the repository root")
	return false
}
