package data

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/richezza/rmv/internal/cli"
	"github.com/richezza/rmv/internal/cli/handler"
	"github.com/richezza/rmv/internal/cli/styles"
	"github.com/richezza/rmv/internal/models"
	"github.com/richezza/rmv/internal/user"
)

// LoginCmd returns the login command
func LoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store the signed-in user",
		Long: `Store the signed-in user. Unset fields come from the operating system account.

Examples:
  rmv login
  rmv login --name="Ana Reyes" --email=ana@example.com --role=manager
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(handler.Func(runLogin)),
	}

	cmd.Flags().String("name", "", "Display name")
	cmd.Flags().String("email", "", "Email address")
	cmd.Flags().String("role", string(models.RoleAdmin), "Role (admin, manager, employee)")
	cmd.Flags().String("department", "", "Department")
	cli.AddOutputFlags(cmd)

	return cmd
}

// LogoutCmd returns the logout command
func LogoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Clear the signed-in user",
		Args:  cobra.NoArgs,
		RunE: handler.Command(handler.Func(func(ctx context.Context, c *cli.CLI, _ *handler.Arguments) (any, error) {
			c.App.Store.Session.Logout(ctx)
			return logoutResult{SignedOut: true}, nil
		})),
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

// WhoamiCmd returns the whoami command
func WhoamiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: handler.Command(handler.Func(func(ctx context.Context, c *cli.CLI, _ *handler.Arguments) (any, error) {
			u, ok := c.App.Store.Session.CurrentUser(ctx)
			if !ok {
				return sessionResult{}, nil
			}
			return sessionResult{SignedIn: true, User: &u}, nil
		})),
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

type sessionResult struct {
	SignedIn bool         `json:"signedIn"`
	User     *models.User `json:"user,omitempty"`
}

func (r sessionResult) QuietLine() string {
	if r.User == nil {
		return ""
	}
	return r.User.ID
}

func (r sessionResult) Human() string {
	if !r.SignedIn {
		return styles.Warning("Not signed in")
	}
	u := r.User
	msg := styles.Success(fmt.Sprintf("%s (%s)", u.Name, u.Role))
	if u.Email != "" {
		msg += styles.Subtitle("  Email: " + u.Email)
	}
	if u.Department != "" {
		msg += styles.Subtitle("  Department: " + u.Department)
	}
	return msg
}

type logoutResult struct {
	SignedOut bool `json:"signedOut"`
}

func (logoutResult) Human() string {
	return styles.Success("Signed out")
}

func runLogin(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	role := models.Role(args.String("role"))
	if !role.Valid() {
		return nil, cli.Exitf(cli.ExitValidation, "invalid role %q (must be: admin, manager, employee)", role)
	}

	u := user.FromSystem(role)
	if name := args.String("name"); name != "" {
		u.Name = name
	}
	u.Email = args.String("email")
	u.Department = args.String("department")

	c.App.Store.Session.SetCurrentUser(ctx, u)
	return sessionResult{SignedIn: true, User: &u}, nil
}
