package message

// Tags of messages msgkit knows how to build itself.
const (
	TagFormat  = "format"
	TagGoError = "go_error"
)

// Format builds a format/N message: the template followed by its arguments.
func Format(format string, args ...any) Message {
	fields := make([]any, 0, len(args)+1)
	fields = append(fields, format)
	fields = append(fields, args...)
	return Message{tag: TagFormat, fields: fields}
}

// FromError wraps err as a go_error/1 message.
func FromError(err error) Message {
	return New(TagGoError, err)
}
