package services

import "errors"

// User errors
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrUsernameTaken   = errors.New("username or its slug already exists")
	ErrInvalidUsername = errors.New("username must contain at least one letter or digit")
	ErrNoTasksForUser  = errors.New("no tasks found for this user")
)

// Task errors
var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrTitleRequired = errors.New("title is required")
	ErrTaskSlugTaken = errors.New("a task with the same slug already exists")
)
