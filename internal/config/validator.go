package config

import (
	"fmt"
	"strings"
)

// Validate checks values that would make the service fail later in a less obvious way
func (c *Config) Validate() error {
	var problems []string

	if c.Port <= 0 || c.Port > 65535 {
		problems = append(problems, fmt.Sprintf("PORT out of range: %d", c.Port))
	}
	if c.DBHost == "" {
		problems = append(problems, "DB_HOST is empty")
	}
	if c.DBName == "" {
		problems = append(problems, "DB_NAME is empty")
	}
	if c.DBMaxConns <= 0 {
		problems = append(problems, fmt.Sprintf("DB_MAX_CONNS must be positive, got %d", c.DBMaxConns))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// Warnings returns non-critical issues, like running outside dev with default credentials
func (c *Config) Warnings() []string {
	var warnings []string

	if c.IsDevelopment() {
		return warnings
	}

	if c.DBPassword == DefaultDBPassword {
		warnings = append(warnings, "DB_PASSWORD is using the default value - please use a secure password")
	}
	if c.DBUser == DefaultDBUser {
		warnings = append(warnings, "DB_USER is using the default superuser - consider a dedicated role")
	}

	return warnings
}
