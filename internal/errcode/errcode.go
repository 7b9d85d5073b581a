package errcode

// Error code convention for messages pushed to clients:
// - 0: no error
// - 4xxx: recoverable business conditions
// - 5xxx: system errors
const (
	OK          = 0
	SystemError = 5000
)
