package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/passport/pkg/tmpl"
)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// ValidateDeep performs comprehensive validation of the configuration including
// file accessibility and report template syntax. The configPath argument
// specifies the config file location to validate (empty string skips config file check).
// This calls Validate() first for basic structural validation, then adds I/O checks.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		c.validateFileAccess(configPath),
		c.validateReportTemplate(configPath),
	)
}

// Warnings returns non-fatal configuration issues.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	if c.Watch() && c.Storage.Backend != BackendJSONFile {
		warnings = append(warnings, ValidationWarning{
			Category: "TUI",
			Item:     "watch_storage",
			Message:  fmt.Sprintf("only the jsonfile backend reports changes; ignored for %s", c.Storage.Backend),
		})
	}

	if c.Storage.Backend == BackendMemory {
		warnings = append(warnings, ValidationWarning{
			Category: "Storage",
			Item:     "backend",
			Message:  "memory backend discards all data on exit",
		})
	}

	if c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		warnings = append(warnings, ValidationWarning{
			Category: "Database",
			Item:     "max_idle_conns",
			Message:  "exceeds max_open_conns and will be capped",
		})
	}

	return warnings
}

// validateFileAccess checks config file and data directory.
func (c *Config) validateFileAccess(configPath string) error {
	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("data_dir", c.DataDir, isDirectoryOrNotExist),
	)
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

// isDirectoryOrNotExist validates that a path is a directory or doesn't exist.
func isDirectoryOrNotExist(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil // will be created
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("exists but is not a directory")
	}
	return nil
}

// ReportTemplatePath resolves report.template relative to the config file.
func (c *Config) ReportTemplatePath(configPath string) string {
	path := c.Report.Template
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(filepath.Dir(configPath), path)
}

func (c *Config) validateReportTemplate(configPath string) error {
	path := c.ReportTemplatePath(configPath)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return criterio.NewFieldErrors("report.template", fmt.Errorf("cannot read: %w", err))
	}

	if err := tmpl.Validate(string(data)); err != nil {
		return criterio.NewFieldErrors("report.template", fmt.Errorf("template error: %w", err))
	}
	return nil
}
