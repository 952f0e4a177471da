package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrBackupOrdersCommandIsNotConstructed = errors.New(
	"BackupOrdersCommand must be created via NewBackupOrdersCommand constructor",
)

// BackupOrdersCommand represents a request to export every order to the
// configured backup destination.
type BackupOrdersCommand struct {
	guard guard.ConstructorGuard
}

func NewBackupOrdersCommand() BackupOrdersCommand {
	return BackupOrdersCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c BackupOrdersCommand) Validate() error {
	return c.guard.Validate(ErrBackupOrdersCommandIsNotConstructed)
}
