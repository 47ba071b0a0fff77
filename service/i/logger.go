package i

// Logger writes levelled messages for one component.
type Logger interface {
	Info(msg string)
	Warning(msg string)
	Error(msg string)
}
