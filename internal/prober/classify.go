package prober

import (
	"context"
	"errors"
	"net"
	"os"
	"strings"

	"emailfinder/pkg/domain"
)

// Classify maps the reply to RCPT TO onto a probe response.
//
//   - 250 and 251 accept the recipient
//   - 550, 551 and 553 reject it, unless the enhanced status code is a policy
//     one (5.7.x), which says nothing about the mailbox
//   - any other 5xx with an addressing status (5.1.x) rejects it
//   - 252, 4xx and any other reply are inconclusive
func Classify(code int, message string) domain.SMTPResponse {
	status := strings.TrimSpace(message)

	switch {
	case code == 250, code == 251:
		return domain.SMTPAccepted
	case code == 550, code == 551, code == 553:
		if strings.HasPrefix(status, "5.7.") {
			return domain.SMTPUnknown
		}

		return domain.SMTPRejected
	case code >= 500 && code < 600 && strings.HasPrefix(status, "5.1."):
		return domain.SMTPRejected
	default:
		return domain.SMTPUnknown
	}
}

// classifyErr maps a dialogue failure onto TIMEOUT or CONNECTION_ERROR.
func classifyErr(err error) domain.SMTPResponse {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return domain.SMTPTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return domain.SMTPTimeout
	}

	return domain.SMTPConnectionError
}
