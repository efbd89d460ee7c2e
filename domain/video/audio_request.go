package video

// AudioRequest describes an audio extraction from a video file.
type AudioRequest struct {
	CommonOptions

	AudioFormat string  `json:"audio_format"`
	Speed       float64 `json:"speed"`
	Bounce      bool    `json:"bounce"`
	Reverse     bool    `json:"reverse"`
	Volume      float64 `json:"volume"`
	Normalize   bool    `json:"normalize"`
}

// NewAudioRequest returns an AudioRequest with defaults filled in.
func NewAudioRequest() *AudioRequest {
	return &AudioRequest{
		AudioFormat: "mp3",
		Speed:       1.0,
		Volume:      1.0,
	}
}

// Validate checks the request fields that can be validated without video
// metadata. A negative volume is clamped to zero (muted).
func (r *AudioRequest) Validate() error {
	if err := r.validateCommon(); err != nil {
		return err
	}

	format, err := ValidateAudioFormat(r.AudioFormat)
	if err != nil {
		return err
	}
	r.AudioFormat = format

	if err := validatePositive("speed", r.Speed); err != nil {
		return err
	}
	if r.Volume < 0 {
		r.Volume = 0
	}

	return nil
}

// Prepare fills the request defaults that depend on the video metadata and
// computes the extraction range. It fails with ErrNoAudio when the video has
// no audio track.
func (r *AudioRequest) Prepare(meta *Metadata) error {
	if !meta.HasAudio {
		return ErrNoAudio
	}
	if r.Filename == "" {
		r.Filename = meta.Stem()
	}
	return r.prepareCommon(meta)
}

// OutputFilename returns the audio filename the extraction writes.
func (r *AudioRequest) OutputFilename() string {
	return r.Filename + "." + r.AudioFormat
}
