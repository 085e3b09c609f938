package consts

import "os"

const (
	// ModeDir is the standard file mode for creating directories
	ModeDir = os.FileMode(0o755)

	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)

	// DefaultConfigFile is the config file sqltidy looks for by default
	DefaultConfigFile = ".sqltidy.yaml"

	// DefaultLineLength is the maximum rendered line length used when no
	// config file or flag overrides it
	DefaultLineLength = 88
)
