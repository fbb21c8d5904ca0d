package gitlab

import "errors"

// GitLab-specific errors.
var (
	ErrMalformedURL      = errors.New("URL does not match GitLab URL pattern")
	ErrRequestFailed     = errors.New("GitLab API request failed")
	ErrGroupNotFound     = errors.New("group not found")
	ErrProjectNotFound   = errors.New("project not found")
	ErrMilestoneNotFound = errors.New("milestone not found")
	ErrIssueNotFound     = errors.New("issue not found")
	ErrUnauthorized      = errors.New("unauthorized access to GitLab API")
)
