package custom_errors

import "errors"

var (
	ErrPostNotFound      = errors.New("post not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrMediaNotFound     = errors.New("media not found")
	ErrPostMediaNotFound = errors.New("post media association not found")

	ErrInvalidMediaType     = errors.New("media must be an image")
	ErrDuplicateMedia       = errors.New("duplicate media in collection")
	ErrCoverAlreadyExists   = errors.New("post already has a cover")
	ErrMediaAlreadyAttached = errors.New("media already attached to post")

	ErrForbidden      = errors.New("access denied")
	ErrPostValidation = errors.New("post validation failed")
	ErrInvalidInput   = errors.New("invalid input")

	ErrDatabaseQuery        = errors.New("database query error")
	ErrDatabaseScan         = errors.New("database scan error")
	ErrNoUpdateRows         = errors.New("no rows to update")
	ErrExternalServiceError = errors.New("external service error")
	ErrCacheMiss            = errors.New("cache miss")
)
