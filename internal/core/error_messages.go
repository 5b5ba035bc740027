// Package core error codes reference.
//
// This file maps technical errors to user-friendly messages with codes for
// support reference. When users encounter errors, they can quote the code
// for faster diagnosis.
//
// # Applicant Errors (APP001-APP099)
//
//	APP001 - Duplicate email: an applicant with this email already exists
//	         Action: Use a different email or update the existing applicant
//	         Patterns: "duplicate email"
//
//	APP002 - Not found: the referenced applicant no longer exists
//	         Action: Refresh the applicant list
//	         Patterns: "applicant not found"
//
// # Validation Errors (VAL001-VAL099)
//
//	VAL001 - Required field: name and email are required
//	         Action: Fill in both name and email before saving
//	         Patterns: "required field"
//
//	VAL002 - Invalid status: value is not a known pipeline status
//	         Action: Use one of New, Screening, Interview, Offer, Hired, Rejected
//	         Patterns: "invalid status"
//
// # File Errors (FILE001-FILE099)
//
//	FILE001 - File too large: upload exceeds the size limit
//	          Action: Split the file into smaller chunks
//	          Patterns: "file too large", "request body too large"
//
//	FILE002 - Invalid CSV: file is not a valid CSV
//	          Action: Ensure the file is comma-separated with a header row
//	          Patterns: "invalid csv"
//
//	FILE003 - No usable rows: no valid applicant data found in the file
//	          Action: Check that rows have at least a name and an email
//	          Patterns: "no valid applicant data"
//
//	FILE004 - No file: no file was selected
//	          Action: Choose a CSV file to upload
//	          Patterns: "no file provided"
package core

import (
	"fmt"
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

// errorPattern defines a pattern to match and its corresponding user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

// errorPatterns maps technical error patterns (case-insensitive) to user
// messages. Matching uses strings.Contains and the first hit wins, so more
// specific patterns come before general ones.
var errorPatterns = []errorPattern{
	{
		pattern: "duplicate email",
		msg: UserMessage{
			Message: "An applicant with this email already exists",
			Action:  "Use a different email or update the existing applicant",
			Code:    "APP001",
		},
	},
	{
		pattern: "applicant not found",
		msg: UserMessage{
			Message: "The referenced applicant no longer exists",
			Action:  "Refresh the applicant list",
			Code:    "APP002",
		},
	},
	{
		pattern: "required field",
		msg: UserMessage{
			Message: "Name and email are required",
			Action:  "Fill in both name and email before saving",
			Code:    "VAL001",
		},
	},
	{
		pattern: "invalid status",
		msg: UserMessage{
			Message: "That is not a known pipeline status",
			Action:  "Use one of: New, Screening, Interview, Offer, Hired, Rejected",
			Code:    "VAL002",
		},
	},
	{
		pattern: "file too large",
		msg: UserMessage{
			Message: "The uploaded file exceeds the size limit",
			Action:  "Split the file into smaller chunks",
			Code:    "FILE001",
		},
	},
	{
		pattern: "request body too large",
		msg: UserMessage{
			Message: "The uploaded file exceeds the size limit",
			Action:  "Split the file into smaller chunks",
			Code:    "FILE001",
		},
	},
	{
		pattern: "invalid csv",
		msg: UserMessage{
			Message: "The file is not a valid CSV",
			Action:  "Ensure the file is comma-separated with a header row",
			Code:    "FILE002",
		},
	},
	{
		pattern: "no valid applicant data",
		msg: UserMessage{
			Message: "No valid applicant data found in the file",
			Action:  "Check that rows have at least a name and an email",
			Code:    "FILE003",
		},
	},
	{
		pattern: "no file provided",
		msg: UserMessage{
			Message: "No file was selected",
			Action:  "Choose a CSV file to upload",
			Code:    "FILE004",
		},
	},
}

// MapError converts a technical error into a user-friendly message with a
// support code. Unrecognized errors map to a generic ERR000 message; the
// technical detail belongs in the server log, not the response.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{Message: "Operation completed", Code: "OK"}
	}

	errStr := strings.ToLower(err.Error())
	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return UserMessage{
		Message: "An unexpected error occurred",
		Action:  fmt.Sprintf("Please try again; quote code ERR000 to support (%s)", truncate(err.Error(), 80)),
		Code:    "ERR000",
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
