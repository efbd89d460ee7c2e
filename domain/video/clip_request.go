package video

// ClipRequest describes a subclip extraction from a video file. Clips are
// always written as mp4.
type ClipRequest struct {
	CommonOptions

	Width      int     `json:"width,omitempty"`
	Height     int     `json:"height,omitempty"`
	Resize     float64 `json:"resize"`
	Rotate     int     `json:"rotate"`
	Speed      float64 `json:"speed"`
	Bounce     bool    `json:"bounce"`
	Reverse    bool    `json:"reverse"`
	Monochrome bool    `json:"monochrome"`
	Volume     float64 `json:"volume"`
	Normalize  bool    `json:"normalize"`

	// OutputWidth and OutputHeight are computed by Prepare from the video
	// dimensions, the requested dimensions and the resize factor.
	OutputWidth  int `json:"output_width"`
	OutputHeight int `json:"output_height"`

	// SourceHasAudio is recorded by Prepare so the extractor knows whether
	// audio filters apply.
	SourceHasAudio bool `json:"source_has_audio"`
}

// NewClipRequest returns a ClipRequest with defaults filled in.
func NewClipRequest() *ClipRequest {
	return &ClipRequest{
		Resize: 1.0,
		Speed:  1.0,
		Volume: 1.0,
	}
}

// Validate checks the request fields that can be validated without video
// metadata. A negative volume is clamped to zero (muted).
func (r *ClipRequest) Validate() error {
	if err := r.validateCommon(); err != nil {
		return err
	}
	if err := validateDims(r.Width, r.Height); err != nil {
		return err
	}
	if err := validatePositive("resize", r.Resize); err != nil {
		return err
	}
	if err := ValidateRotate(r.Rotate); err != nil {
		return err
	}
	if err := validatePositive("speed", r.Speed); err != nil {
		return err
	}
	if r.Volume < 0 {
		r.Volume = 0
	}
	return nil
}

// Prepare fills the request defaults that depend on the video metadata,
// resolves the output dimensions and computes the extraction range.
func (r *ClipRequest) Prepare(meta *Metadata) error {
	if r.Filename == "" {
		r.Filename = meta.Stem()
	}
	r.OutputWidth, r.OutputHeight = outputDims(meta, r.Width, r.Height, r.Resize)
	r.SourceHasAudio = meta.HasAudio
	return r.prepareCommon(meta)
}

// OutputFilename returns the clip filename the extraction writes.
func (r *ClipRequest) OutputFilename() string {
	return r.Filename + ".mp4"
}
