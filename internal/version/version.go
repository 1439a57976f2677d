package version

import "fmt"

var (
	Version   = "25.2.0"
	GitCommit = "unknown"
)

// Tool is the identifier sent in the "tool" field of every request.
const Tool = "go"

func String() string {
	return fmt.Sprintf("v%s", Version)
}

// UserAgent is sent with every HTTP request to the server.
func UserAgent() string {
	return fmt.Sprintf("cloudofficeprint-go/%s (%s)", String(), GitCommit)
}

// Identification returns the static fields that open every request payload.
func Identification() map[string]any {
	return map[string]any{
		"tool":           Tool,
		"go_sdk_version": Version,
	}
}
