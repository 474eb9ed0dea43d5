package errors_test

import (
	"fmt"
	"net/http"

	"github.com/agentstation/shipyard/pkg/errors"
)

// Example demonstrates basic error creation and checking.
func Example() {
	err := errors.NewNotFoundError("ship", "zephyr")

	if errors.IsNotFound(err) {
		fmt.Println("Ship not found")
	}

	// Output: Ship not found
}

// Example_remoteError demonstrates classifying GitHub failures.
func Example_remoteError() {
	err := errors.NewRemoteError("github", http.StatusForbidden,
		"https://api.github.com/repos/org/repo", "API rate limit exceeded")

	switch {
	case errors.IsRateLimited(err):
		fmt.Println("Rate limited - wait before refreshing")
	case errors.IsNotFound(err):
		fmt.Println("Repository missing")
	default:
		fmt.Println("Try again later")
	}

	// Output: Rate limited - wait before refreshing
}

// Example_wrapping shows how context is layered onto a remote failure.
func Example_wrapping() {
	remote := errors.NewRemoteError("github", http.StatusNotFound, "", "Not Found")
	err := errors.WrapResource("list", "repository", "org/repo", remote)

	fmt.Println(err)
	fmt.Println(errors.IsNotFound(err))

	// Output:
	// failed to list repository org/repo: API error from github (status 404): Not Found
	// true
}
