package video

// Result reports the outcome of an extraction. Validation failures surface
// as errors before a Result exists; extraction failures are embedded in the
// Result so callers always get the elapsed time and destination.
type Result struct {
	Success        bool    `json:"success"`
	Method         string  `json:"method"`
	Message        string  `json:"message"`
	DestPath       string  `json:"destpath,omitempty"`
	ElapsedSeconds float64 `json:"elapsed_seconds"`
}
