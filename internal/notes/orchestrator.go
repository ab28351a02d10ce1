// Package notes turns uploaded meeting recordings into a transcript, a summary
// and a list of action items.
package notes

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"labquest-backend/internal/ai"
	"labquest-backend/internal/metrics"
)

type Options struct {
	Mode   ai.Mode
	Length ai.Length
}

type Upload struct {
	Filename string
	Body     io.Reader
}

type Result struct {
	Filename      string   `json:"filename"`
	Transcription string   `json:"transcription"`
	Summary       string   `json:"summary"`
	ActionItems   []string `json:"action_items"`
}

type Orchestrator struct {
	engine  Engine
	tempDir string
}

// New returns an Orchestrator that stages uploads under tempDir
// (os.TempDir() when empty) and hands them to engine.
func New(engine Engine, tempDir string) *Orchestrator {
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	return &Orchestrator{engine: engine, tempDir: tempDir}
}

// Process stages the upload in a temp file owned by this call, runs the engine
// and removes the file again on every path.
func (o *Orchestrator) Process(ctx context.Context, up Upload, opts Options) (res Result, err error) {
	start := time.Now()
	defer func() { metrics.RecordUpload(string(opts.Mode), err, time.Since(start)) }()

	path, err := o.stage(up)
	if err != nil {
		return Result{}, err
	}
	defer os.Remove(path)

	n, err := o.engine.Run(ctx, path, opts)
	if err != nil {
		return Result{}, err
	}

	items := n.ActionItems
	if items == nil {
		items = []string{}
	}

	return Result{
		Filename:      up.Filename,
		Transcription: n.Transcription,
		Summary:       n.Summary,
		ActionItems:   items,
	}, nil
}

// stage copies the payload to <tempDir>/<uuid><ext>. The extension is kept so
// the provider can detect the audio format.
func (o *Orchestrator) stage(up Upload) (string, error) {
	path := filepath.Join(o.tempDir, uuid.NewString()+audioExt(up.Filename))

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}

	if _, err := io.Copy(f, up.Body); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("store upload: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("store upload: %w", err)
	}

	return path, nil
}

func audioExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	if len(ext) < 2 || len(ext) > 6 || strings.ContainsAny(ext, `/\ `) {
		return ""
	}
	return ext
}
