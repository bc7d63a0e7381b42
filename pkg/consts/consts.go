package consts

import "os"

const (
	// ModeDir is the standard file mode for creating directories
	ModeDir = os.FileMode(0o755)

	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)

	// ConfigFile is the name of the project configuration file
	ConfigFile = "sqlfluent.yaml"

	// ConfigEnv is the environment variable overriding the configuration file path
	ConfigEnv = "SQLFLUENT_CONFIG"

	// DefaultDialect is the dialect used when the configuration does not specify one
	DefaultDialect = "standard"

	// DefaultIndentSize is the number of spaces per nesting level in multi-line output
	DefaultIndentSize = 2

	// DefaultPlansDir is the directory searched for statement plans
	DefaultPlansDir = "plans"

	// PlanExt is the file extension of statement plan files
	PlanExt = ".yaml"

	// SQLExt is the file extension used when rendered plans are written to disk
	SQLExt = ".sql"
)
