package contact

import "ZencrowWebsite/pkg/flash"

type OutcomeKind int

const (
	OutcomeSent OutcomeKind = iota
	OutcomeValidationFailed
	OutcomeConfigMissing
	OutcomePlaceholderCredentials
	OutcomeTransportError
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSent:
		return "sent"
	case OutcomeValidationFailed:
		return "validation_failed"
	case OutcomeConfigMissing:
		return "config_missing"
	case OutcomePlaceholderCredentials:
		return "placeholder_credentials"
	case OutcomeTransportError:
		return "transport_error"
	default:
		return "unknown"
	}
}

// Outcome is the result of one submission attempt. Detail is set for
// OutcomeTransportError, FieldErrors for OutcomeValidationFailed.
type Outcome struct {
	Kind        OutcomeKind
	Detail      string
	FieldErrors map[string]string
}

func Sent() Outcome { return Outcome{Kind: OutcomeSent} }

func ValidationFailed(fields map[string]string) Outcome {
	return Outcome{Kind: OutcomeValidationFailed, FieldErrors: fields}
}

func ConfigMissing() Outcome { return Outcome{Kind: OutcomeConfigMissing} }

func PlaceholderCredentials() Outcome { return Outcome{Kind: OutcomePlaceholderCredentials} }

func TransportError(detail string) Outcome {
	return Outcome{Kind: OutcomeTransportError, Detail: detail}
}

// UserMessage picks the status message shown to the visitor.
func (o Outcome) UserMessage() (category string, text string) {
	switch o.Kind {
	case OutcomeSent:
		return flash.CategorySuccess, "Your message has been sent successfully! We will get back to you soon."
	case OutcomeValidationFailed:
		return flash.CategoryError, "Please correct the errors in the form and try again."
	case OutcomeConfigMissing:
		return flash.CategoryError, "Email configuration is not set up. Please contact the administrator."
	case OutcomePlaceholderCredentials:
		return flash.CategoryError, "Please configure your email credentials in the .env file."
	case OutcomeTransportError:
		return flash.CategoryError, "Email Error: " + o.Detail
	default:
		return flash.CategoryError, "Something went wrong. Please try again later."
	}
}
