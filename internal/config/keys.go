package config

// Configuration key constants to prevent typos and enable autocomplete
const (
	// Project configuration
	KeyProjectName  = "PROJECT_NAME"
	KeyManifestFile = "MANIFEST_FILE" // Empty means the compiled-in list
	KeyTargetDir    = "TARGET_DIR"

	// Permissions for created entries (octal)
	KeyDirPerms  = "DIR_PERMS"
	KeyFilePerms = "FILE_PERMS"
)

// EnvPrefix is prepended to keys when reading environment overrides,
// e.g. SCAFFOLDER_PROJECT_NAME
const EnvPrefix = "SCAFFOLDER"

// DefaultFileName is the settings file looked up in the working directory
const DefaultFileName = ".scaffolder.conf"

// Default values for configuration keys
var Defaults = map[string]string{
	KeyProjectName:  "ml_project",
	KeyManifestFile: "",
	KeyTargetDir:    ".",
	KeyDirPerms:     "0755",
	KeyFilePerms:    "0644",
}
