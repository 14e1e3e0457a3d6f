package doctor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Path is a location passport reads or writes.
type Path struct {
	Label string
	Path  string
	Dir   bool // expect a directory rather than a file
}

// PathsCheck verifies that passport's directories and files are usable.
// Missing paths are warnings because they are created on first write.
type PathsCheck struct {
	paths []Path
}

// NewPathsCheck creates a new paths check.
func NewPathsCheck(paths ...Path) *PathsCheck {
	return &PathsCheck{paths: paths}
}

func (c *PathsCheck) Name() string {
	return "Paths"
}

func (c *PathsCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	for _, p := range c.paths {
		label := fmt.Sprintf("%s (%s)", p.Label, p.Path)

		info, err := os.Stat(p.Path)
		switch {
		case os.IsNotExist(err):
			result.Items = append(result.Items, CheckItem{
				Label:  label,
				Status: StatusWarn,
				Detail: "does not exist yet",
			})
		case err != nil:
			result.Items = append(result.Items, CheckItem{
				Label:  label,
				Status: StatusFail,
				Detail: fmt.Sprintf("inaccessible: %v", err),
			})
		case p.Dir && !info.IsDir():
			result.Items = append(result.Items, CheckItem{
				Label:  label,
				Status: StatusFail,
				Detail: "path is not a directory",
			})
		case !p.Dir && info.IsDir():
			result.Items = append(result.Items, CheckItem{
				Label:  label,
				Status: StatusFail,
				Detail: "path is a directory",
			})
		case p.Dir && !writable(p.Path):
			result.Items = append(result.Items, CheckItem{
				Label:  label,
				Status: StatusFail,
				Detail: "directory is not writable",
			})
		default:
			result.Items = append(result.Items, CheckItem{
				Label:  label,
				Status: StatusPass,
			})
		}
	}

	return result
}

func writable(dir string) bool {
	f, err := os.CreateTemp(dir, ".passport-doctor-*")
	if err != nil {
		return false
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(filepath.Clean(name))
	return true
}
