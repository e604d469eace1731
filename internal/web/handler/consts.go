package handler

const (
	// APIRootPath is the base path of the JSON resource API.
	APIRootPath = "/api"

	// ErrNilACDFatalLogMsg is used if app or cfg or db var pointer is nil.
	ErrNilACDFatalLogMsg = "app, cfg or db is nil"
)
