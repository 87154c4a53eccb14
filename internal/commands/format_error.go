package commands

import (
	"fmt"
	"strings"

	apierrors "github.com/diogo/geminirepl/internal/errors"
)

// formatErrorMessage formats an error with additional context from
// structured errors. The credential never appears in the output.
func formatErrorMessage(err error, context string) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(errorStyle.Render(fmt.Sprintf("✗ %s: %v", context, err)))

	status := apierrors.GetHTTPStatus(err)
	if status > 0 {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("\n  HTTP Status: %d", status)))
	}

	switch {
	case apierrors.IsAuthError(err):
		sb.WriteString(dimStyle.Render("\n  Hint: Check that GEMINI_API_KEY holds a valid key"))
	case status == 429:
		sb.WriteString(dimStyle.Render("\n  Hint: You've hit the usage limit. Try again later or use a different model"))
	case apierrors.IsNetworkError(err):
		sb.WriteString(dimStyle.Render("\n  Hint: Check your internet connection and try again"))
	case apierrors.IsParseError(err):
		sb.WriteString(dimStyle.Render("\n  Hint: The API returned an unexpected response shape"))
	}

	return sb.String()
}
