// Command hoaencode pans a mono WAV file into an ambisonic B-format WAV.
//
// Usage:
//
//	hoaencode [flags] input.wav output.wav
//
// The output carries (degree+1)^2 ACN-ordered, N3D-normalized channels at
// the input sample rate. The source direction is given in degrees; with
// -source-radius and -speaker-radius set, near-field modeling filters each
// degree for the source distance.
//
// Examples:
//
//	hoaencode -degree 3 -az 90 in.wav out.wav
//	hoaencode -degree 1 -az -45 -el 30 in.wav out.wav
//	hoaencode -degree 4 -source-radius 1.5 -speaker-radius 2.5 in.wav out.wav
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-hoa/encode"
	"github.com/cwbudde/algo-hoa/sh"
)

const chunkFrames = 4096

func main() {
	log.SetFlags(0)
	log.SetPrefix("hoaencode: ")
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	degree := flag.Int("degree", 1, "ambisonic degree (0..), output has (degree+1)^2 channels")
	azDeg := flag.Float64("az", 0, "source azimuth in degrees, counterclockwise from front")
	elDeg := flag.Float64("el", 0, "source elevation in degrees, up from the horizon")
	rSource := flag.Float64("source-radius", 0, "source distance in meters (0 disables near-field modeling)")
	rSpeaker := flag.Float64("speaker-radius", 0, "playback speaker distance in meters (required with -source-radius)")
	gain := flag.Float64("gain", 1, "linear input gain")
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] input.wav output.wav\n\nFlags:\n", os.Args[0])
		flag.PrintDefaults()
		return errors.New("expected input and output file")
	}
	inPath, outPath := args[0], args[1]

	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	dec := wav.NewDecoder(in)
	if !dec.IsValidFile() {
		return fmt.Errorf("%s: not a valid WAV file", inPath)
	}
	format := dec.Format()
	bitDepth := int(dec.BitDepth)
	if format.NumChannels != 1 {
		return fmt.Errorf("%s: expected mono input, got %d channels", inPath, format.NumChannels)
	}

	var opts []encode.EncoderOption
	if *rSource > 0 || *rSpeaker > 0 {
		if *rSource <= 0 || *rSpeaker <= 0 {
			return errors.New("-source-radius and -speaker-radius must both be set")
		}
		opts = append(opts, encode.WithNearField(*rSource, *rSpeaker))
	}
	enc, err := encode.NewEncoder(*degree, float64(format.SampleRate), opts...)
	if err != nil {
		return err
	}
	enc.SetDirection(sh.Direction{
		Azimuth:   *azDeg * math.Pi / 180,
		Elevation: *elDeg * math.Pi / 180,
	})

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	channels := enc.Channels()
	wavEnc := wav.NewEncoder(out, format.SampleRate, bitDepth, channels, 1)

	maxVal := float64(int(1)<<(bitDepth-1)) - 1
	inBuf := &audio.IntBuffer{
		Data:   make([]int, chunkFrames),
		Format: format,
	}
	outBuf := &audio.IntBuffer{
		Data: make([]int, chunkFrames*channels),
		Format: &audio.Format{
			NumChannels: channels,
			SampleRate:  format.SampleRate,
		},
	}
	frame := make([]float64, channels)

	var total int64
	for {
		n, err := dec.PCMBuffer(inBuf)
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read %s: %w", inPath, err)
		}
		if n == 0 {
			break
		}
		for i := 0; i < n; i++ {
			x := float64(inBuf.Data[i]) / maxVal * *gain
			enc.ProcessSample(frame, x)
			for ch, v := range frame {
				outBuf.Data[i*channels+ch] = quantize(v, maxVal)
			}
		}
		outBuf.Data = outBuf.Data[:n*channels]
		if err := wavEnc.Write(outBuf); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}
		outBuf.Data = outBuf.Data[:cap(outBuf.Data)]
		total += int64(n)
	}

	if err := wavEnc.Close(); err != nil {
		return fmt.Errorf("finalize %s: %w", outPath, err)
	}
	log.Printf("encoded %d samples to %d channels (degree %d)", total, channels, *degree)
	return nil
}

// quantize clamps a float sample to [-1, 1] and scales it to integer PCM.
func quantize(v, maxVal float64) int {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	return int(math.Round(v * maxVal))
}
