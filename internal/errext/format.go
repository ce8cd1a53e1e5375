package errext

import "errors"

// Format renders err's message and any structured fields attached to it
// (currently just a hint, if present) the way a CLI wants to log a
// terminal failure: a short message plus a field map a structured
// logger can attach as key=value pairs.
func Format(err error) (string, map[string]interface{}) {
	if err == nil {
		return "", nil
	}

	fields := make(map[string]interface{})
	var hinted HasHint
	if errors.As(err, &hinted) {
		fields["hint"] = hinted.Hint()
	}
	if len(fields) == 0 {
		fields = nil
	}
	return err.Error(), fields
}
