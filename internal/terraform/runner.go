// Package terraform drives the Terraform CLI for one working directory.
// It wraps hashicorp/terraform-exec behind a small interface the drivers
// can mock, and types plan/state JSON with hashicorp/terraform-json.
package terraform

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"

	apperrors "github.com/catherinevee/terraform-gcp-sub000/internal/errors"
	"github.com/catherinevee/terraform-gcp-sub000/internal/logger"

	"github.com/hashicorp/terraform-exec/tfexec"
	tfjson "github.com/hashicorp/terraform-json"
)

// PlanOptions configures a plan run.
type PlanOptions struct {
	// Out is the plan file path, relative to the working directory.
	Out string
	// Targets restricts the plan to the given resource addresses.
	Targets []string
	// Destroy computes a destroy plan.
	Destroy bool
	// VarFiles are additional -var-file arguments.
	VarFiles []string
}

// Runner is the subset of Terraform operations the drivers need.
// terraform's own stdout streams to the operator during init/plan/apply;
// parsed commands (show, state pull, output) stay silent.
type Runner interface {
	// WorkingDir reports the directory terraform operates on.
	WorkingDir() string
	// Init runs terraform init on the working directory.
	Init(ctx context.Context) error
	// Validate runs terraform validate and returns its diagnostics.
	Validate(ctx context.Context) (*tfjson.ValidateOutput, error)
	// Plan computes a plan. Returns true when the plan contains changes.
	Plan(ctx context.Context, opts PlanOptions) (bool, error)
	// ShowPlan parses a saved plan file.
	ShowPlan(ctx context.Context, planFile string) (*tfjson.Plan, error)
	// Apply applies a saved plan file (destroy plans included).
	Apply(ctx context.Context, planFile string) error
	// State returns the current state with all tracked resources.
	State(ctx context.Context) (*tfjson.State, error)
	// RawState pulls the raw state document, suitable for backups.
	RawState(ctx context.Context) (string, error)
	// Output returns the root module outputs.
	Output(ctx context.Context) (map[string]tfexec.OutputMeta, error)
}

// CLI runs the real terraform binary.
type CLI struct {
	tf  *tfexec.Terraform
	log *slog.Logger
}

var _ Runner = (*CLI)(nil)

// NewCLI locates the terraform binary and binds it to workDir.
func NewCLI(workDir, binary string, log *slog.Logger) (*CLI, error) {
	if _, err := os.Stat(workDir); err != nil {
		return nil, apperrors.NewConfigError(
			fmt.Sprintf("terraform working directory %s does not exist", workDir), err)
	}

	execPath, err := exec.LookPath(binary)
	if err != nil {
		return nil, apperrors.NewConfigError(
			fmt.Sprintf("terraform binary %q not found in PATH", binary), err)
	}

	tf, err := tfexec.NewTerraform(workDir, execPath)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to initialize terraform executor", err)
	}

	// Stream terraform's own UI to the operator, like running it by hand.
	tf.SetStdout(os.Stdout)
	tf.SetStderr(os.Stderr)

	return &CLI{tf: tf, log: log}, nil
}

// WorkingDir returns the bound working directory.
func (c *CLI) WorkingDir() string {
	return c.tf.WorkingDir()
}

// Init runs terraform init without provider upgrades.
func (c *CLI) Init(ctx context.Context) error {
	c.log.Debug("running terraform init", "dir", c.tf.WorkingDir())
	if err := c.tf.Init(ctx, tfexec.Upgrade(false)); err != nil {
		return apperrors.NewTerraformError("init", err)
	}
	return nil
}

// Validate runs terraform validate.
func (c *CLI) Validate(ctx context.Context) (*tfjson.ValidateOutput, error) {
	c.log.Debug("running terraform validate", "dir", c.tf.WorkingDir())
	out, err := c.tf.Validate(ctx)
	if err != nil {
		return nil, apperrors.NewTerraformError("validate", err)
	}
	return out, nil
}

// Plan computes a plan, optionally targeted, saved, or in destroy mode.
func (c *CLI) Plan(ctx context.Context, opts PlanOptions) (bool, error) {
	args := make([]tfexec.PlanOption, 0, len(opts.Targets)+len(opts.VarFiles)+2)
	if opts.Out != "" {
		args = append(args, tfexec.Out(opts.Out))
	}
	if opts.Destroy {
		args = append(args, tfexec.Destroy(true))
	}
	for _, target := range opts.Targets {
		args = append(args, tfexec.Target(target))
	}
	for _, vf := range opts.VarFiles {
		args = append(args, tfexec.VarFile(vf))
	}

	logArgs := []any{"dir", c.tf.WorkingDir(), "destroy", opts.Destroy, "targets", len(opts.Targets)}
	logArgs = append(logArgs, logger.GetDeadlineInfo(ctx)...)
	c.log.Debug("running terraform plan", logArgs...)
	changes, err := c.tf.Plan(ctx, args...)
	if err != nil {
		step := "plan"
		if opts.Destroy {
			step = "destroy plan"
		}
		return false, apperrors.NewTerraformError(step, err)
	}
	return changes, nil
}

// ShowPlan parses a saved plan file into its JSON representation.
func (c *CLI) ShowPlan(ctx context.Context, planFile string) (*tfjson.Plan, error) {
	plan, err := c.tf.ShowPlanFile(ctx, planFile)
	if err != nil {
		return nil, apperrors.NewTerraformError("show", err)
	}
	return plan, nil
}

// Apply applies a saved plan file. Destroy plans are applied the same way.
func (c *CLI) Apply(ctx context.Context, planFile string) error {
	logArgs := []any{"dir", c.tf.WorkingDir(), "plan", planFile}
	logArgs = append(logArgs, logger.GetDeadlineInfo(ctx)...)
	c.log.Debug("running terraform apply", logArgs...)
	if err := c.tf.Apply(ctx, tfexec.DirOrPlan(planFile)); err != nil {
		return apperrors.NewTerraformError("apply", err)
	}
	return nil
}

// State returns the parsed current state.
func (c *CLI) State(ctx context.Context) (*tfjson.State, error) {
	state, err := c.tf.Show(ctx)
	if err != nil {
		return nil, apperrors.NewTerraformError("show", err)
	}
	return state, nil
}

// RawState pulls the raw remote state document.
func (c *CLI) RawState(ctx context.Context) (string, error) {
	raw, err := c.tf.StatePull(ctx)
	if err != nil {
		return "", apperrors.NewTerraformError("state pull", err)
	}
	return raw, nil
}

// Output returns the root module outputs.
func (c *CLI) Output(ctx context.Context) (map[string]tfexec.OutputMeta, error) {
	out, err := c.tf.Output(ctx)
	if err != nil {
		return nil, apperrors.NewTerraformError("output", err)
	}
	return out, nil
}
