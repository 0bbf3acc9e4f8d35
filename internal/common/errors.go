package common

import "errors"

// Business logic errors
var (
	// General errors
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")

	// User errors
	ErrUserNotFound = errors.New("user not found")

	// Group errors
	ErrGroupNotFound     = errors.New("group not found")
	ErrGroupNameTooShort = errors.New("group name too short")
	ErrGroupNameTooLong  = errors.New("group name too long")
	ErrNoJoinedGroups    = errors.New("user has not joined any group")

	// Content errors
	ErrContentNotFound   = errors.New("content not found")
	ErrContentNotMatched = errors.New("content does not belong to user")
	ErrImageNotFound     = errors.New("content image not found")
	ErrImageUpload       = errors.New("image upload failed")

	// Comment errors
	ErrCommentNotFound   = errors.New("comment not found")
	ErrCommentNotMatched = errors.New("comment does not belong to user")

	// Notification errors
	ErrNotificationNotFound = errors.New("notification not found")
)
