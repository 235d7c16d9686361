package display

import "strings"

// DefaultErrorMessage is shown when neither the error nor the request
// carries a message.
const DefaultErrorMessage = "Could not load this value, try later 😓"

// MessageError is an error with a display message distinct from Error().
type MessageError interface {
	error
	Message() string
}

// ShortMessageError is an error with a short display message, used when the
// main message is empty.
type ShortMessageError interface {
	error
	ShortMessage() string
}

// ResolveErrorMessage picks the message for the error indicator: the error's
// own message, then its short message, then fallback, then
// DefaultErrorMessage. Blank candidates are skipped.
func ResolveErrorMessage(err error, fallback string) string {
	if err != nil {
		if msg := errorMessage(err); msg != "" {
			return msg
		}
		if msg := shortMessage(err); msg != "" {
			return msg
		}
	}
	if strings.TrimSpace(fallback) != "" {
		return fallback
	}
	return DefaultErrorMessage
}

// errorMessage never panics, even for typed nil errors whose methods
// dereference their receiver.
func errorMessage(err error) (msg string) {
	defer func() {
		if recover() != nil {
			msg = ""
		}
	}()
	if me, ok := err.(MessageError); ok {
		msg = me.Message()
	} else {
		msg = err.Error()
	}
	if strings.TrimSpace(msg) == "" {
		return ""
	}
	return msg
}

func shortMessage(err error) (msg string) {
	defer func() {
		if recover() != nil {
			msg = ""
		}
	}()
	se, ok := err.(ShortMessageError)
	if !ok || strings.TrimSpace(se.ShortMessage()) == "" {
		return ""
	}
	return se.ShortMessage()
}
