package client

import (
	"regexp"
	"strconv"
	"strings"
)

// The SDK surfaces non-2xx responses as plain errors formatted "HTTP <code>: <body>"
// and exposes no error types usable with errors.As, so classification probes the
// message the same way it probes transport errors.
var httpStatusRe = regexp.MustCompile(`HTTP (\d{3})`)

// httpStatus extracts the HTTP status code embedded in an SDK error message.
// Returns 0 when the error carries no status, i.e. the request never got a
// response and failed in transport.
func httpStatus(err error) int {
	if err == nil {
		return 0
	}
	m := httpStatusRe.FindStringSubmatch(err.Error())
	if m == nil {
		return 0
	}
	code, _ := strconv.Atoi(m[1])
	return code
}

// isNotFoundError checks if error indicates the resource is unknown to the service.
func isNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	return httpStatus(err) == 404 || strings.Contains(err.Error(), "not found")
}

// isRejectionError checks if error indicates the node validated the request and
// refused it, as opposed to failing to answer at all.
func isRejectionError(err error) bool {
	if err == nil {
		return false
	}
	status := httpStatus(err)
	return status >= 400 && status < 500
}

// rejectionReason strips the HTTP framing from a node rejection so the caller
// sees the node's own message.
func rejectionReason(err error) string {
	msg := err.Error()
	if loc := httpStatusRe.FindStringIndex(msg); loc != nil {
		msg = strings.TrimSpace(strings.TrimPrefix(msg[loc[1]:], ":"))
	}
	if msg == "" {
		return err.Error()
	}
	return msg
}
