package pathcheck

import (
	"fmt"
	"io"
	"os"

	"github.com/shinji-kodama/pyfmt/internal/model"
)

// invalidPathPrefix is the text written before each rejected path.
const invalidPathPrefix = "The path is not a file or a directory: "

// IsFileOrDir reports whether path exists as a regular file or a directory.
//
// os.Stat (not Lstat) is used so a symlink is judged by its target.
// Any stat error, including permission errors on a parent directory,
// counts as "does not exist".
func IsFileOrDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular() || info.IsDir()
}

// Check returns the paths that are neither a file nor a directory,
// preserving input order. Duplicated invalid paths are returned once
// per occurrence.
func Check(paths []string) []string {
	var invalid []string
	for _, p := range paths {
		if !IsFileOrDir(p) {
			invalid = append(invalid, p)
		}
	}
	return invalid
}

// Report writes one line per invalid path to w.
// A write failure is returned as-is; it is never silently dropped.
func Report(w io.Writer, invalid []string) error {
	for _, p := range invalid {
		if _, err := fmt.Fprintln(w, invalidPathPrefix+p); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks every path and reports the invalid ones to w.
//
// It returns nil when all paths are valid. Otherwise it returns a
// *model.CLIError with ExitInvalidPath and Reported set, since the
// user-visible output has already been written. If the report itself
// cannot be written, a general error wrapping the write failure is
// returned instead.
func Validate(w io.Writer, paths model.PathList) error {
	invalid := Check(paths)
	if len(invalid) == 0 {
		return nil
	}

	if err := Report(w, invalid); err != nil {
		return model.WrapCLIError(model.ExitGeneralError,
			"failed to report invalid paths", err)
	}

	return model.NewReportedError(model.ExitInvalidPath,
		fmt.Sprintf("%d invalid path(s)", len(invalid)))
}
