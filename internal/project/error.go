package project

import "errors"

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrInvalidStatus   = errors.New("invalid project status")

	ErrFailedGetProject    = errors.New("failed to get project")
	ErrFailedUpdateProject = errors.New("failed to update project")
)
