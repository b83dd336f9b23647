package catalog

import "errors"

var (
	ErrRepositoryRequired = errors.New("catalog: repository is required")
	ErrSlugMissing        = errors.New("catalog: page slug could not be determined")
	ErrPageNotFound       = errors.New("catalog: page not found")
)
