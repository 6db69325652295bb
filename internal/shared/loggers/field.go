package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"

	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldQueryID   = "query_id"
	FieldQueryKind = "query_kind"
	FieldSource    = "source"
	FieldFrom      = "from"
	FieldTo        = "to"
	FieldTopN      = "top_n"
)
