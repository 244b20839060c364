package action

import (
	"fmt"
	"os"

	"github.com/hookgate/hookgate/internal/config"
	"github.com/hookgate/hookgate/internal/gateevent"
	"github.com/hookgate/hookgate/internal/interpolate"
)

// InjectContext reads the interpolated target file and returns its
// contents as a context patch for the caller to prepend downstream.
func InjectContext(rule config.Rule, event gateevent.Event) Result {
	path := interpolate.Path(rule.Target, event)
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{Passed: false, Message: fmt.Sprintf("reading %s: %v", path, err)}
	}
	return Result{Passed: true, ContextPatch: string(data)}
}
