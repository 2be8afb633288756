package user

import (
	"os"
	"os/user"
	"strings"

	"github.com/richezza/rmv/internal/models"
)

// GetCurrentUsername returns the current system username.
// It tries user.Current(), then the USER environment variable, and finally
// "unknown" so the result is never empty.
func GetCurrentUsername() string {
	currentUser, err := user.Current()
	if err != nil || currentUser.Username == "" {
		if username := os.Getenv("USER"); username != "" {
			return username
		}
		return "unknown"
	}
	return currentUser.Username
}

// FromSystem builds the session user for whoever runs the process. The
// display name falls back to the username when the OS has none.
func FromSystem(role models.Role) models.User {
	username := GetCurrentUsername()
	name := username
	if u, err := user.Current(); err == nil {
		// GECOS may carry extra comma separated fields
		if full, _, _ := strings.Cut(u.Name, ","); strings.TrimSpace(full) != "" {
			name = strings.TrimSpace(full)
		}
	}

	return models.User{
		ID:   username,
		Name: name,
		Role: role,
	}
}
