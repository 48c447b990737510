package fetch

// UnknownErrorMessage is shown when a failure carries no usable description.
const UnknownErrorMessage = "An unknown error occurred"

// Message returns the human-readable text for err.
func Message(err error) string {
	if err == nil {
		return ""
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return UnknownErrorMessage
}
