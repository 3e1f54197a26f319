package config

// GetSampleConfig returns a sample configuration file
func GetSampleConfig() string {
	return `# oab-utils configuration

# Log what each command does to stderr
verbose = false

# Record every ownership and permission change
audit {
  file        = "/var/log/oab-utils/audit.log"  # Leave unset to disable auditing
  max_size    = 10                              # Maximum size in MB before rotation
  max_backups = 3                               # Number of rotated files to keep
  max_age     = "30d"                           # How long to keep rotated files
  compress    = true                            # Compress rotated files with gzip
}
`
}
