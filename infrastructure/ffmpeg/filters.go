package ffmpeg

import (
	"fmt"
	"strings"
)

// audioCodecs maps each supported audio format to the encoder ffmpeg uses
// for it.
var audioCodecs = map[string]string{
	"m4a": "aac",
	"mp3": "libmp3lame",
	"ogg": "libvorbis",
	"wav": "pcm_s16le",
}

// atempoChain decomposes a speed factor into a chain of atempo filters.
// ffmpeg only accepts atempo values between 0.5 and 2.0, so factors outside
// that range are built from repeated halvings or doublings.
func atempoChain(speed float64) []string {
	if speed == 1.0 {
		return nil
	}

	var chain []string
	for speed > 2.0 {
		chain = append(chain, "atempo=2.0")
		speed /= 2.0
	}
	for speed < 0.5 {
		chain = append(chain, "atempo=0.5")
		speed /= 0.5
	}
	return append(chain, fmt.Sprintf("atempo=%g", speed))
}

// audioFilterChain builds the audio filters in order: reverse, speed,
// normalize, volume. Bounced extractions pass reverse=false and hand the
// flag to bounceAudioGraph instead.
func audioFilterChain(speed, volume float64, reverse, normalize bool) []string {
	var filters []string
	if reverse {
		filters = append(filters, "areverse")
	}
	filters = append(filters, atempoChain(speed)...)
	if normalize {
		filters = append(filters, "loudnorm")
	}
	if volume != 1.0 {
		filters = append(filters, fmt.Sprintf("volume=%g", volume))
	}
	return filters
}

// videoFilterChain builds the video filters in order: frame rate, scale,
// rotate, monochrome, reverse, speed. Bounced extractions pass
// reverse=false and hand the flag to bounceVideoGraph instead.
func videoFilterChain(fps float64, width, height, rotate int, monochrome bool, speed float64, reverse bool) []string {
	var filters []string
	if fps > 0 {
		filters = append(filters, fmt.Sprintf("fps=%g", fps))
	}
	filters = append(filters, fmt.Sprintf("scale=%d:%d", width, height))
	switch rotate {
	case 90:
		filters = append(filters, "transpose=1")
	case 180:
		filters = append(filters, "transpose=1", "transpose=1")
	case 270:
		filters = append(filters, "transpose=2")
	}
	if monochrome {
		filters = append(filters, "hue=s=0")
	}
	if reverse {
		filters = append(filters, "reverse")
	}
	if speed != 1.0 {
		filters = append(filters, fmt.Sprintf("setpts=PTS/%g", speed))
	}
	return filters
}

// bounceAudioGraph builds a filter_complex graph that plays the audio
// forward then backward, feeding the result through the given chain. With
// reverse the stream is reversed before the split, so the output plays
// backward then forward; reversing after the concat would cancel out. The
// returned label names the graph output for -map.
func bounceAudioGraph(chain []string, reverse bool) (graph, label string) {
	input := "[0:a]"
	if reverse {
		input += "areverse,"
	}
	graph = input + "asplit[afwd][atmp];[atmp]areverse[arev];[afwd][arev]concat=n=2:v=0:a=1[abounced]"
	if len(chain) == 0 {
		return graph, "[abounced]"
	}
	return graph + ";[abounced]" + strings.Join(chain, ",") + "[aout]", "[aout]"
}

// bounceVideoGraph builds a filter_complex graph that plays the video
// forward then backward, feeding the result through the given chain. With
// reverse the stream is reversed before the split, so the output plays
// backward then forward; reversing after the concat would cancel out. The
// returned label names the graph output for -map.
func bounceVideoGraph(chain []string, reverse bool) (graph, label string) {
	input := "[0:v]"
	if reverse {
		input += "reverse,"
	}
	graph = input + "split[vfwd][vtmp];[vtmp]reverse[vrev];[vfwd][vrev]concat=n=2:v=1:a=0[vbounced]"
	if len(chain) == 0 {
		return graph, "[vbounced]"
	}
	return graph + ";[vbounced]" + strings.Join(chain, ",") + "[vout]", "[vout]"
}
