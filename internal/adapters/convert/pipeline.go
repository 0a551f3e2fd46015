// Package convert provides the module post-processor adapter. The pipeline
// shells out to a user-configured command for every newly resolved module,
// so declaration files can be rewritten or converted before the compilation
// consumes them.
package convert

import (
	"os"
	"os/exec"
	"strings"

	"go.skein.dev/skein/internal/core/domain"
	"go.skein.dev/skein/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ModuleProcessor = (*Pipeline)(nil)

// Pipeline implements ports.ModuleProcessor using os/exec. Each resolved
// target is handed to the command at most once per pipeline lifetime; the
// resolution layer re-surfaces the same target for every containing file
// that imports it, so the outcome (original or replacement path) is memoized
// and repeat hits get the same answer the first caller got.
//
// Processing never vetoes a resolution: when the command fails, the failure
// is logged and the original resolution is returned unchanged.
type Pipeline struct {
	command []string
	logger  ports.Logger
	done    map[string]string
}

// NewPipeline creates a Pipeline running the given command. The command
// receives the requested name and the resolved path in SKEIN_MODULE_NAME and
// SKEIN_MODULE_PATH.
func NewPipeline(command []string, logger ports.Logger) *Pipeline {
	return &Pipeline{
		command: command,
		logger:  logger,
		done:    make(map[string]string),
	}
}

// Process runs the pipeline command for the resolved target.
func (p *Pipeline) Process(requestedName string, res *domain.ResolvedModule) *domain.ResolvedModule {
	if len(p.command) == 0 || res == nil {
		return res
	}
	if final, ok := p.done[res.Path]; ok {
		if final == res.Path {
			return res
		}
		return &domain.ResolvedModule{Path: final, External: res.External}
	}
	p.done[res.Path] = res.Path

	cmd := exec.Command(p.command[0], p.command[1:]...) //nolint:gosec // user provided command
	cmd.Env = append(os.Environ(),
		"SKEIN_MODULE_NAME="+requestedName,
		"SKEIN_MODULE_PATH="+res.Path,
	)

	out, err := cmd.CombinedOutput()
	if err != nil {
		p.logger.Error(zerr.With(zerr.With(
			zerr.Wrap(err, "module processor failed"), "module", requestedName), "path", res.Path))
		return res
	}

	// A command that prints exactly one line names a replacement path;
	// anything else means the target was rewritten in place.
	if replacement := replacementPath(out); replacement != "" {
		p.done[res.Path] = replacement
		return &domain.ResolvedModule{Path: replacement, External: res.External}
	}
	return res
}

func replacementPath(out []byte) string {
	trimmed := strings.TrimSpace(string(out))
	if trimmed == "" || strings.ContainsAny(trimmed, "\n ") {
		return ""
	}
	return trimmed
}
