package hostname

// Error is a hostname grammar error.
type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

const (
	// ErrEmptyLabel is returned when a label is empty, i.e. the input is
	// empty or contains consecutive, leading or trailing dots. The wrapped
	// message carries the index of the offending label.
	ErrEmptyLabel Error = "empty dns label"
	// ErrLongLabel is returned when a label is longer than [MaxLabelLen].
	ErrLongLabel Error = "dns label is too long"
	// ErrInitialDash is returned when a label starts with '-'.
	ErrInitialDash Error = "dns label starts with a dash"
	// ErrInvalidChar is returned when a character outside [A-Za-z0-9-]
	// is met. The wrapped message carries the byte and its offset.
	ErrInvalidChar Error = "invalid character in dns label"
	// ErrLongHostname is returned when the encoded hostname length,
	// the sum of (label length + 1) over all labels, exceeds [MaxHostnameLen].
	ErrLongHostname Error = "hostname is too long"
)
