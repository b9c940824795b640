package doctor

import (
	"context"
	"errors"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/samber/lo"

	errUtils "github.com/mlstack/gcpdoctor/errors"
	"github.com/mlstack/gcpdoctor/pkg/command"
	"github.com/mlstack/gcpdoctor/pkg/config"
	"github.com/mlstack/gcpdoctor/pkg/dvc"
	"github.com/mlstack/gcpdoctor/pkg/gcp"
	log "github.com/mlstack/gcpdoctor/pkg/logger"
	"github.com/mlstack/gcpdoctor/pkg/mlflow"
	"github.com/mlstack/gcpdoctor/pkg/ui"
)

// Check names.
const (
	CheckAuth   = "auth"
	CheckDVC    = "dvc"
	CheckMLflow = "mlflow"
)

// Doctor runs the status checks. Each check prints its own status lines and reports
// success as a bool; no error escapes a check.
type Doctor struct {
	cfg     *config.Config
	out     *ui.Printer
	runner  command.Runner
	prober  gcp.Prober
	repoDir string

	dvc    *dvc.Client
	mlflow *mlflow.Client

	// setenv exports the credentials path for child processes.
	setenv func(path string) error
}

// Option configures a Doctor.
type Option func(*Doctor)

// WithPrinter sets where status lines go. Defaults to stdout.
func WithPrinter(p *ui.Printer) Option {
	return func(d *Doctor) {
		d.out = p
	}
}

// WithRunner sets the runner used for dvc and python.
func WithRunner(r command.Runner) Option {
	return func(d *Doctor) {
		d.runner = r
	}
}

// WithProber sets the API probe used by the auth check.
func WithProber(p gcp.Prober) Option {
	return func(d *Doctor) {
		d.prober = p
	}
}

// WithRepoDir sets the DVC repository root. Defaults to the working directory.
func WithRepoDir(dir string) Option {
	return func(d *Doctor) {
		d.repoDir = dir
	}
}

// New creates a Doctor for cfg.
func New(cfg *config.Config, opts ...Option) *Doctor {
	d := &Doctor{
		cfg:     cfg,
		repoDir: ".",
		setenv:  gcp.SetCredentialsEnv,
	}
	for _, opt := range opts {
		opt(d)
	}

	if d.out == nil {
		d.out = ui.NewPrinter(os.Stdout)
	}
	if d.runner == nil {
		d.runner = command.NewExecRunner(d.repoDir)
	}
	if d.prober == nil {
		d.prober = gcp.NewStorageProber(cfg.ProbeBucket())
	}
	d.dvc = dvc.NewClient(d.runner, cfg.DVCBinary)
	d.mlflow = mlflow.NewClient(d.runner, cfg.PythonBinary)

	return d
}

// Result is the outcome of one check.
type Result struct {
	Name string
	OK   bool
}

// Report collects check results in the order they ran.
type Report struct {
	Results []Result
}

// Add records a result and returns ok so calls can be chained into conditions.
func (r *Report) Add(name string, ok bool) bool {
	r.Results = append(r.Results, Result{Name: name, OK: ok})
	return ok
}

// OK reports whether at least one check ran and every check passed.
func (r Report) OK() bool {
	return len(r.Results) > 0 && lo.EveryBy(r.Results, func(res Result) bool { return res.OK })
}

// Failed returns the names of the checks that did not pass.
func (r Report) Failed() []string {
	return lo.FilterMap(r.Results, func(res Result, _ int) (string, bool) {
		return res.Name, !res.OK
	})
}

// fail prints msg as an error line followed by any hints carried by err.
func (d *Doctor) fail(msg string, err error) {
	d.out.Error(msg)
	for _, hint := range errUtils.Hints(err) {
		d.out.Hint(hint)
	}
	if err != nil {
		log.Debug("Check failed", "error", err)
	}
}

// isTimeout reports whether err came from a deadline rather than a failure.
func isTimeout(err error) bool {
	return errors.Is(err, errUtils.ErrCommandTimeout) || errors.Is(err, context.DeadlineExceeded)
}

// sentence upper-cases the first letter of an error message for display.
func sentence(err error) string {
	msg := err.Error()
	r, size := utf8.DecodeRuneInString(msg)
	if r == utf8.RuneError {
		return msg
	}
	return string(unicode.ToUpper(r)) + msg[size:]
}

// detail strips a sentinel's own message from the front of err so it can follow a label
// that already says the same thing.
func detail(err error, sentinel error) string {
	return strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
}
