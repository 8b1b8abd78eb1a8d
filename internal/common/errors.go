package common

type ErrorCode string
type ErrorMessage string

const (
	ErrCodeConfigLoadFailed ErrorCode = "CONFIG_LOAD_FAILED"
	ErrCodeInvalidLogLevel  ErrorCode = "INVALID_LOG_LEVEL"
	ErrCodeDataLoadFailed   ErrorCode = "DATA_LOAD_FAILED"
	ErrCodeRecordParse      ErrorCode = "RECORD_PARSE_FAILED"
	ErrCodeRecordOrder      ErrorCode = "RECORD_OUT_OF_ORDER"
	ErrCodeStateLoadFailed  ErrorCode = "STATE_LOAD_FAILED"
	ErrCodeStateSaveFailed  ErrorCode = "STATE_SAVE_FAILED"
	ErrCodeInvalidView      ErrorCode = "INVALID_VIEW"
	ErrCodeWindowFailed     ErrorCode = "WINDOW_FAILED"
	ErrCodeFontLoadFailed   ErrorCode = "FONT_LOAD_FAILED"
	ErrCodeExportFailed     ErrorCode = "EXPORT_FAILED"
)

const (
	ErrMsgConfigLoadFailed ErrorMessage = "Failed to load configuration"
	ErrMsgInvalidLogLevel  ErrorMessage = "Invalid log level, use: debug, info, warn, error"
	ErrMsgDataLoadFailed   ErrorMessage = "Failed to load coin data"
	ErrMsgRecordParse      ErrorMessage = "Malformed record skipped"
	ErrMsgRecordOrder      ErrorMessage = "Records were not in date order and have been sorted"
	ErrMsgStateLoadFailed  ErrorMessage = "Failed to load view state"
	ErrMsgStateSaveFailed  ErrorMessage = "Failed to save view state"
	ErrMsgInvalidView      ErrorMessage = "Saved or requested view is not valid for the dataset"
	ErrMsgWindowFailed     ErrorMessage = "Window loop terminated with an error"
	ErrMsgFontLoadFailed   ErrorMessage = "Failed to load font"
	ErrMsgExportFailed     ErrorMessage = "Failed to export chart"
)

func (e ErrorCode) String() string {
	return string(e)
}

func (m ErrorMessage) String() string {
	return string(m)
}
