package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trebuchet-org/clarity-cli/internal/cli/render"
	"github.com/trebuchet-org/clarity-cli/internal/domain"
)

// handleError decides how a use case error ends the command. Cancellation is
// silent and unmet preconditions are warnings; both exit successfully.
func handleError(cmd *cobra.Command, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrCancelled):
		return nil
	case domain.IsPrecondition(err):
		fmt.Fprintln(cmd.ErrOrStderr(), render.FormatWarning(err.Error()))
		return nil
	default:
		return err
	}
}
