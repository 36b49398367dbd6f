package prompting

import (
	"fmt"

	"github.com/zunairkalyar/chamkili-ai-blog-writer-2/internal/types"
)

// MissingParameterError indicates a required parameter for an intent was absent.
type MissingParameterError struct {
	Intent types.Intent
	Param  string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("missing required parameter %q for intent %s", e.Param, e.Intent)
}
