package handler

// successResponse wraps created resources: {"success": true, "data": ..., "message": ...}.
type successResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Message string `json:"message,omitempty"`
}

// errorResponse documents the error envelope rendered by the HTTP error handler.
type errorResponse struct {
	Success bool           `json:"success"`
	Error   string         `json:"error"`
	Code    string         `json:"code"`
	Details map[string]any `json:"details,omitempty"`
}
