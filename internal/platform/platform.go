package platform

import "runtime"

// Kind identifies the host OS family for remediation purposes.
type Kind int

const (
	Other Kind = iota
	Darwin
	Linux
	Windows
)

// Detect resolves the host platform once from runtime.GOOS.
func Detect() Kind { return FromGOOS(runtime.GOOS) }

func FromGOOS(goos string) Kind {
	switch goos {
	case "darwin":
		return Darwin
	case "linux":
		return Linux
	case "windows":
		return Windows
	default:
		return Other
	}
}

func (k Kind) String() string {
	switch k {
	case Darwin:
		return "darwin"
	case Linux:
		return "linux"
	case Windows:
		return "windows"
	default:
		return "other"
	}
}

// TextLayoutLibrary returns the file name of the Pango shared library on this
// platform. Pango is the component the probe exercises with a real call.
func (k Kind) TextLayoutLibrary() string {
	return k.NativeLibraries()[0]
}

// NativeLibraries lists the native components WeasyPrint links against, Pango
// first. Platforms without their own naming convention fall back to the Linux
// names so the scan still produces a useful error.
func (k Kind) NativeLibraries() []string {
	switch k {
	case Darwin:
		return []string{"libpango-1.0.0.dylib", "libgobject-2.0.0.dylib", "libgdk_pixbuf-2.0.0.dylib"}
	case Windows:
		return []string{"libpango-1.0-0.dll", "libgobject-2.0-0.dll", "libgdk_pixbuf-2.0-0.dll"}
	default:
		return []string{"libpango-1.0.so.0", "libgobject-2.0.so.0", "libgdk_pixbuf-2.0.so.0"}
	}
}

// The recipe blocks are quoted by the project README; keep the command lines
// verbatim.
var instructions = map[Kind]string{
	Darwin: "║  🍎 macOS fix:                                                 ║\n" +
		"║                                                                ║\n" +
		"║  1. Install the system libraries:                              ║\n" +
		"║     brew install pango gdk-pixbuf libffi                       ║\n" +
		"║                                                                ║\n" +
		"║  2. Point the loader at them (important!):                     ║\n" +
		"║     export DYLD_LIBRARY_PATH=/opt/homebrew/lib:$DYLD_LIBRARY_PATH ║\n" +
		"║                                                                ║\n" +
		"║  3. Make it permanent (recommended):                           ║\n" +
		"║     echo 'export DYLD_LIBRARY_PATH=/opt/homebrew/lib:$DYLD_LIBRARY_PATH' >> ~/.zshrc ║\n" +
		"║     source ~/.zshrc                                            ║\n",
	Linux: "║  🐧 Linux fix:                                                 ║\n" +
		"║                                                                ║\n" +
		"║  Ubuntu/Debian:                                                ║\n" +
		"║    sudo apt-get install libpango-1.0-0 libpangoft2-1.0-0 \\    ║\n" +
		"║                         libgdk-pixbuf2.0-0 libffi-dev libcairo2 ║\n" +
		"║                                                                ║\n" +
		"║  CentOS/RHEL:                                                  ║\n" +
		"║    sudo yum install pango gdk-pixbuf2 libffi-devel cairo       ║\n",
	Windows: "║  🪟 Windows fix:                                               ║\n" +
		"║                                                                ║\n" +
		"║  Download and install the GTK3 runtime:                        ║\n" +
		"║  https://github.com/tschoonj/GTK-for-Windows-Runtime-Environment-Installer/releases ║\n",
	Other: "║  See README.md for install steps on your system                ║\n",
}

// Instructions returns the fixed install recipe block for this platform.
func (k Kind) Instructions() string {
	if s, ok := instructions[k]; ok {
		return s
	}
	return instructions[Other]
}
