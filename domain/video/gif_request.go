package video

// GifRequest describes a GIF extraction from a video file.
type GifRequest struct {
	CommonOptions

	Width      int     `json:"width,omitempty"`
	Height     int     `json:"height,omitempty"`
	Resize     float64 `json:"resize"`
	Rotate     int     `json:"rotate"`
	Speed      float64 `json:"speed"`
	Bounce     bool    `json:"bounce"`
	Reverse    bool    `json:"reverse"`
	Monochrome bool    `json:"monochrome"`

	// OutputWidth and OutputHeight are computed by Prepare from the video
	// dimensions, the requested dimensions and the resize factor.
	OutputWidth  int `json:"output_width"`
	OutputHeight int `json:"output_height"`
}

// NewGifRequest returns a GifRequest with defaults filled in.
func NewGifRequest() *GifRequest {
	return &GifRequest{
		Resize: 1.0,
		Speed:  1.0,
	}
}

// Validate checks the request fields that can be validated without video
// metadata.
func (r *GifRequest) Validate() error {
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
	return nil
}

// Prepare fills the request defaults that depend on the video metadata,
// resolves the output dimensions and computes the extraction range.
func (r *GifRequest) Prepare(meta *Metadata) error {
	if r.Filename == "" {
		r.Filename = meta.Stem()
	}
	r.OutputWidth, r.OutputHeight = outputDims(meta, r.Width, r.Height, r.Resize)
	return r.prepareCommon(meta)
}

// OutputFilename returns the GIF filename the extraction writes.
func (r *GifRequest) OutputFilename() string {
	return r.Filename + ".gif"
}
