package domain

import (
	"path/filepath"
	"strings"
	"time"
)

// DocumentType groups attachments by the icon and viewer they need.
type DocumentType string

const (
	DocumentPDF   DocumentType = "PDF"
	DocumentWord  DocumentType = "Word"
	DocumentImage DocumentType = "Image"
	DocumentOther DocumentType = "Other"
)

// Document is the metadata of a file attached to a campaign. The file
// content itself lives outside this service.
type Document struct {
	ID           string       `json:"id"`
	CampaignID   string       `json:"campaign_id"`
	CampaignName string       `json:"campaign_name"`
	Name         string       `json:"name"`
	Type         DocumentType `json:"type"`
	URL          string       `json:"url,omitempty"`
	UploadedAt   time.Time    `json:"uploaded_at"`
}

// DocumentTypeFromName infers the document type from the file extension.
func DocumentTypeFromName(name string) DocumentType {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return DocumentPDF
	case ".doc", ".docx", ".odt", ".rtf":
		return DocumentWord
	case ".png", ".jpg", ".jpeg", ".gif", ".webp", ".svg":
		return DocumentImage
	default:
		return DocumentOther
	}
}
