package report2docx

import "errors"

// Sentinel errors for library operations.
var (
	ErrRender  = errors.New("document rendering failed")
	ErrPreview = errors.New("preview rendering failed")

	// Option validation errors.
	ErrInvalidTitle      = errors.New("invalid title")
	ErrInvalidFont       = errors.New("invalid font")
	ErrInvalidFontSize   = errors.New("invalid font size")
	ErrInvalidTableWidth = errors.New("invalid table width")
	ErrInvalidLanguage   = errors.New("invalid language tag")
	ErrInvalidFileName   = errors.New("invalid file name settings")
)
