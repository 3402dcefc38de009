package main

import (
	"fmt"
	"os"

	"github.com/utkarsh5026/grit/cmd/ui"
	"github.com/utkarsh5026/grit/pkg/common/err"
	"github.com/utkarsh5026/grit/pkg/common/logger"
)

var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
	CommitSHA = "unknown"
)

func main() {
	if e := newRootCmd().Execute(); e != nil {
		logger.Debug("command failed", errorAttrs(e)...)
		fmt.Fprintln(os.Stderr, ui.ErrorMessage("error: "+e.Error()))
		os.Exit(1)
	}
}

// errorAttrs returns the package, op and code of the first grit error in
// e's chain as slog key-value pairs. Errors from outside grit yield none.
func errorAttrs(e error) []any {
	code := err.GetCode(e)
	if code == "" {
		return nil
	}
	return []any{"package", err.GetPackage(e), "op", err.GetOp(e), "code", code}
}
