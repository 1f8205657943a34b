package domain

// UploadFile is a file selected for upload. Only the name survives on the
// resulting audit record.
type UploadFile struct {
	Name        string
	ContentType string
	Content     []byte
}

// DocumentMetadata holds the optional metadata returned by the extraction
// endpoint. Empty strings mean the field was absent.
type DocumentMetadata struct {
	ID          string
	Title       string
	Text        string
	CreatedBy   string
	ClientID    string
	Source      string
	Attachments []string
}

// ExtractedDocument is one document descriptor returned by the extraction endpoint.
type ExtractedDocument struct {
	Title    string
	Text     string
	Metadata DocumentMetadata
}
