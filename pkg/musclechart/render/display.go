package render

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/ukaji3/musclechart-go/pkg/musclechart/models"
)

// ErrNoViewer indicates no viewer command is known for this platform.
var ErrNoViewer = errors.New("no viewer available")

// DisplayOptions configures Display.
type DisplayOptions struct {
	// Output is the file to write. Empty means a new temporary file.
	Output string
	// Viewer is the command used to open the file, split on spaces.
	// Empty selects the platform default.
	Viewer string
	// NoView skips launching the viewer.
	NoView bool
}

// Display renders spec to a file and opens it in a viewer, blocking until
// the viewer process exits (see viewerCommand for the platform defaults). It returns the path of the written file.
func Display(ctx context.Context, r Renderer, spec *models.ChartSpec, opts DisplayOptions) (string, error) {
	path, err := writeChart(r, spec, opts.Output)
	if err != nil {
		return "", err
	}
	slog.Debug("chart written", "path", path, "format", r.Format())

	if opts.NoView {
		return path, nil
	}

	cmd, err := viewerCommand(ctx, opts.Viewer, path)
	if err != nil {
		return path, err
	}
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr

	slog.Debug("launching viewer", "command", cmd.String())
	if err := cmd.Run(); err != nil {
		return path, fmt.Errorf("viewer %q: %w", cmd.Path, err)
	}
	return path, nil
}

func writeChart(r Renderer, spec *models.ChartSpec, output string) (string, error) {
	if output == "" {
		f, err := os.CreateTemp("", "musclechart-*."+r.Format())
		if err != nil {
			return "", err
		}
		if err := renderTo(f, r, spec); err != nil {
			os.Remove(f.Name())
			return "", err
		}
		return f.Name(), nil
	}

	// Render next to output and rename, so a failed render leaves any
	// existing file at output untouched.
	f, err := os.CreateTemp(filepath.Dir(output), "."+filepath.Base(output)+".*")
	if err != nil {
		return "", err
	}
	mode := fs.FileMode(0o644)
	if info, err := os.Stat(output); err == nil {
		mode = info.Mode().Perm()
	}
	if err := f.Chmod(mode); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	if err := renderTo(f, r, spec); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	if err := os.Rename(f.Name(), output); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return output, nil
}

// renderTo renders spec into f and closes it.
func renderTo(f *os.File, r Renderer, spec *models.ChartSpec) error {
	if err := r.Render(f, spec); err != nil {
		f.Close()
		return fmt.Errorf("render %s: %w", r.Format(), err)
	}
	return f.Close()
}

// viewerCommand builds the command that opens path. The darwin and windows
// defaults wait for the viewer to close. The Linux default, xdg-open,
// usually returns as soon as it has handed the file off, so Display only
// blocks there when a blocking viewer such as "eog" or "feh" is configured.
func viewerCommand(ctx context.Context, viewer, path string) (*exec.Cmd, error) {
	var argv []string
	if v := strings.Fields(viewer); len(v) > 0 {
		argv = v
	} else {
		switch runtime.GOOS {
		case "darwin":
			argv = []string{"open", "-W"}
		case "windows":
			argv = []string{"cmd", "/c", "start", "/wait", ""}
		default:
			argv = []string{"xdg-open"}
		}
	}

	bin, err := exec.LookPath(argv[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNoViewer, argv[0], err)
	}
	args := append(argv[1:], path)
	return exec.CommandContext(ctx, bin, args...), nil
}
