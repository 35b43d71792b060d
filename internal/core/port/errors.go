package port

import "errors"

var (
	ErrCampaignNotFound    = errors.New("campaign not found")
	ErrInvalidCampaign     = errors.New("invalid campaign")
	ErrInvalidInput        = errors.New("invalid input")
	ErrActorRequired       = errors.New("actor required")
	ErrDocumentExists      = errors.New("document already exists")
	ErrImageEditorDisabled = errors.New("image editor disabled")
	ErrFileTooLarge        = errors.New("file too large")
)
