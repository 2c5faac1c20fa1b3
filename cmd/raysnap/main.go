package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"raysphere/internal/config"
	"raysphere/snapshot"
	"raysphere/tracer"
)

func main() {
	var (
		outPath    = flag.String("out", "", "Output file (.png, .webp or .tga).")
		configPath = flag.String("config", "", "Path to a JSON config file.")
		frame      = flag.Uint64("frame", 0, "Render the frame after N clock ticks.")
		at         = flag.Float64("time", -1, "Render at this animation time instead of -frame.")
		width      = flag.Int("width", 0, "Frame width (default from config).")
		height     = flag.Int("height", 0, "Frame height (default from config).")
		root       = flag.String("root", "", "Near-root formula: legacy|standard.")
		workers    = flag.Int("workers", 0, "Render goroutines (default NumCPU).")
		scale      = flag.Int("scale", 1, "Integer upscale factor.")
		thumb      = flag.Uint("thumb", 0, "Also write a thumbnail of this width.")
		upload     = flag.Bool("upload", false, "Upload the encoded frame to S3 (S3_* environment).")
		envPath    = flag.String("env", ".env", "Optional .env file with S3 settings.")
	)
	flag.Parse()

	if *outPath == "" {
		fatalf("usage: raysnap -out frame.png [-frame N | -time T] [-config cfg.json] [-scale 2] [-thumb 160] [-upload]")
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fatalf("%v", err)
		}
	}
	cfg.Resolve(config.Flags{Width: *width, Height: *height, Root: *root, Workers: *workers})
	scene, err := cfg.Scene()
	if err != nil {
		fatalf("%v", err)
	}

	t := clockTime(*frame, *at)
	r := &tracer.Renderer{Scene: scene, Width: cfg.Width, Height: cfg.Height, Workers: cfg.Workers}
	buf := r.NewFrame()
	if err := r.Render(buf, t); err != nil {
		fatalf("render: %v", err)
	}

	res, err := snapshot.Write(*outPath, buf, cfg.Width, cfg.Height, snapshot.Options{Scale: *scale, Thumb: *thumb})
	if err != nil {
		fatalf("write: %v", err)
	}
	fmt.Printf("raysnap: t=%.2f root=%s wrote %s (%d bytes)\n", t, scene.Root, res.Path, res.Bytes)

	if !*upload {
		return
	}
	_ = godotenv.Load(*envPath)
	u, err := snapshot.NewS3Uploader(snapshot.S3Config{
		AccessKey: os.Getenv("S3_ACCESS_KEY"),
		SecretKey: os.Getenv("S3_SECRET_KEY"),
		Endpoint:  os.Getenv("S3_ENDPOINT"),
		Region:    getEnv("S3_REGION", "us-east-1"),
		Bucket:    os.Getenv("S3_BUCKET"),
		Prefix:    os.Getenv("S3_PREFIX"),
	})
	if err != nil {
		fatalf("upload: %v", err)
	}
	for _, p := range []string{res.Path, res.ThumbPath} {
		if p == "" {
			continue
		}
		data, err := os.ReadFile(p)
		if err != nil {
			fatalf("upload: %v", err)
		}
		key, err := u.Upload(context.Background(), filepath.Base(p), data, res.Format)
		if err != nil {
			fatalf("%v", err)
		}
		fmt.Printf("raysnap: uploaded %s (%d bytes)\n", key, len(data))
	}
}

// clockTime is the animation time after frame ticks, unless at >= 0.
func clockTime(frame uint64, at float64) float32 {
	if at >= 0 {
		return float32(at)
	}
	var c tracer.Clock
	for c.Frames < frame {
		c.Advance()
	}
	return c.Time
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}
