package cli

import (
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/richezza/rmv/internal/app"
	rmvcli "github.com/richezza/rmv/internal/cli"
	"github.com/richezza/rmv/internal/config"
	"github.com/richezza/rmv/internal/logging"
	"github.com/richezza/rmv/internal/storage"
	"github.com/richezza/rmv/internal/testutil"
)

// SetupCLITest returns an App over a fresh in-memory medium together with the
// medium, so tests can inspect raw stored values
func SetupCLITest(t *testing.T) (*app.App, *storage.Memory) {
	t.Helper()

	cfg := config.Default()
	cfg.Storage.Driver = config.DriverMemory

	mem := storage.NewMemory()
	a, err := app.New(context.Background(), cfg, app.WithMedium(mem), app.WithLogger(logging.Discard()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	return a, mem
}

// ExecuteCLICommand executes a CLI command with a test app instance.
// The app travels in the command context, where the CLI package picks it up
// instead of opening the configured storage.
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()
	require.NotNil(t, testApp, "SetupCLITest must be called first")

	ctx := rmvcli.WithApp(context.Background(), testApp)

	// cobra falls back to os.Args when args is nil
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetContext(ctx)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	var executeErr error
	output := testutil.CaptureOutput(t, func() {
		executeErr = cmd.ExecuteContext(ctx)
	})

	return output, executeErr
}
