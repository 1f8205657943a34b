package domain

// MaxFiles is the largest number of files a single intake accepts.
const MaxFiles = 4

// Intake messages surfaced to the dashboard.
const (
	MsgTooManyFiles         = "You can upload at most 4 files."
	MsgExtracting           = "Uploading files and extracting content..."
	MsgExtractionSucceeded  = "Documents processed successfully."
	MsgExtractionFailedNote = "An error occurred while processing the files."
)

// Progress values of the simulated upload indicator.
const (
	ProgressStart = 10
	ProgressStep  = 7
	ProgressCap   = 90
	ProgressDone  = 100
)

// IntakeStatus is a snapshot of the document intake component.
type IntakeStatus struct {
	SelectedFiles []string
	Busy          bool
	Progress      int
	Message       string
	Error         string
}
