package build

import "errors"

// Sentinel domain errors classifying high-level pipeline failures.
// They are always wrapped with contextual information at the call site.
var (
	ErrSource = errors.New("i18ndocs: source error")
	ErrRender = errors.New("i18ndocs: render error")
)
