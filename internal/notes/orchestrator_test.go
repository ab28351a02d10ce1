package notes

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labquest-backend/internal/ai"
)

type fakeProvider struct {
	mu sync.Mutex

	transcript    string
	transcribeErr error
	completion    string
	completeErr   error

	seenPaths        []string
	seenAudio        []string
	seenInstructions []string
	existedDuringRun bool
}

func (p *fakeProvider) Transcribe(_ context.Context, path string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.seenPaths = append(p.seenPaths, path)
	data, err := os.ReadFile(path)
	p.existedDuringRun = err == nil
	p.seenAudio = append(p.seenAudio, string(data))

	if p.transcribeErr != nil {
		return "", p.transcribeErr
	}
	return p.transcript, nil
}

func (p *fakeProvider) CompleteJSON(_ context.Context, instruction, _ string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.seenInstructions = append(p.seenInstructions, instruction)
	if p.completeErr != nil {
		return "", p.completeErr
	}
	return p.completion, nil
}

func dirEntries(t *testing.T, dir string) []os.DirEntry {
	t.Helper()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	return entries
}

func summaryOpts() Options {
	return Options{Mode: ai.ModeSummary, Length: ai.LengthStandard}
}

func TestProcessLiveSuccess(t *testing.T) {
	dir := t.TempDir()
	p := &fakeProvider{
		transcript: "we will order the new GPU next week",
		completion: `{"summary":"GPU order planned","action_items":["Order GPU"]}`,
	}
	o := New(NewLiveEngine(p), dir)

	res, err := o.Process(context.Background(), Upload{Filename: "weekly.mp3", Body: strings.NewReader("mp3-bytes")}, summaryOpts())
	require.NoError(t, err)

	assert.Equal(t, Result{
		Filename:      "weekly.mp3",
		Transcription: "we will order the new GPU next week",
		Summary:       "GPU order planned",
		ActionItems:   []string{"Order GPU"},
	}, res)

	require.Len(t, p.seenPaths, 1)
	assert.True(t, p.existedDuringRun)
	assert.Equal(t, "mp3-bytes", p.seenAudio[0])
	assert.Equal(t, dir, filepath.Dir(p.seenPaths[0]))
	assert.Equal(t, ".mp3", filepath.Ext(p.seenPaths[0]))
	assert.NotContains(t, filepath.Base(p.seenPaths[0]), "weekly")

	assert.Empty(t, dirEntries(t, dir), "temp file must be removed after success")
}

func TestProcessRemovesTempFileOnFailure(t *testing.T) {
	tests := []struct {
		name     string
		provider *fakeProvider
		wantErr  string
	}{
		{
			name:     "transcription failure",
			provider: &fakeProvider{transcribeErr: errors.New("transcribe: provider returned 500: boom")},
			wantErr:  "provider returned 500",
		},
		{
			name:     "completion failure",
			provider: &fakeProvider{transcript: "t", completeErr: errors.New("complete: timeout")},
			wantErr:  "timeout",
		},
		{
			name:     "malformed completion",
			provider: &fakeProvider{transcript: "t", completion: "not json at all"},
			wantErr:  "parse summary response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			o := New(NewLiveEngine(tt.provider), dir)

			_, err := o.Process(context.Background(), Upload{Filename: "a.wav", Body: strings.NewReader("x")}, summaryOpts())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Empty(t, dirEntries(t, dir))
		})
	}
}

func TestProcessDemoMode(t *testing.T) {
	dir := t.TempDir()
	o := New(DemoEngine{}, dir)

	for _, opts := range []Options{summaryOpts(), {Mode: ai.ModeProofread, Length: ai.LengthStandard}} {
		res, err := o.Process(context.Background(), Upload{Filename: "memo.m4a", Body: strings.NewReader("audio")}, opts)
		require.NoError(t, err)
		assert.Equal(t, Result{
			Filename:      "memo.m4a",
			Transcription: DemoTranscription,
			Summary:       DemoSummary,
			ActionItems:   []string{DemoActionItem},
		}, res)
	}

	assert.Empty(t, dirEntries(t, dir))
}

func TestProcessPassesModeToInstruction(t *testing.T) {
	p := &fakeProvider{transcript: "t", completion: `{"summary":"s"}`}
	o := New(NewLiveEngine(p), t.TempDir())

	res, err := o.Process(context.Background(), Upload{Filename: "a.wav", Body: strings.NewReader("x")}, Options{Mode: ai.ModeProofread, Length: ai.LengthShort})
	require.NoError(t, err)
	assert.NotNil(t, res.ActionItems)
	assert.Empty(t, res.ActionItems)

	_, err = o.Process(context.Background(), Upload{Filename: "a.wav", Body: strings.NewReader("x")}, Options{Mode: ai.ModeSummary, Length: ai.LengthLong})
	require.NoError(t, err)

	require.Len(t, p.seenInstructions, 2)
	assert.Equal(t, ai.BuildInstruction(ai.ModeProofread, ai.LengthShort), p.seenInstructions[0])
	assert.Equal(t, ai.BuildInstruction(ai.ModeSummary, ai.LengthLong), p.seenInstructions[1])
}

func TestProcessProofreadKeepsLength(t *testing.T) {
	transcript := strings.Repeat("the sample was measured at room temperature and um the results look stable ", 20)
	corrected := strings.ReplaceAll(transcript, " um", "")
	p := &fakeProvider{
		transcript: transcript,
		completion: `{"summary":"` + corrected + `","action_items":[]}`,
	}
	o := New(NewLiveEngine(p), t.TempDir())

	res, err := o.Process(context.Background(), Upload{Filename: "a.wav", Body: strings.NewReader("x")}, Options{Mode: ai.ModeProofread})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(res.Summary)*2, len(res.Transcription))
}

func TestConcurrentUploadsWithSameName(t *testing.T) {
	dir := t.TempDir()
	p := &fakeProvider{transcript: "t", completion: `{"summary":"s","action_items":[]}`}
	o := New(NewLiveEngine(p), dir)

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			body := strings.NewReader(strings.Repeat("x", i+1))
			_, err := o.Process(context.Background(), Upload{Filename: "same.wav", Body: body}, summaryOpts())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	seen := map[string]bool{}
	for _, path := range p.seenPaths {
		assert.False(t, seen[path], "temp path reused: %s", path)
		seen[path] = true
	}
	assert.Len(t, seen, 8)
	assert.Empty(t, dirEntries(t, dir))
}

func TestProcessTempDirMissing(t *testing.T) {
	o := New(DemoEngine{}, filepath.Join(t.TempDir(), "does-not-exist"))

	_, err := o.Process(context.Background(), Upload{Filename: "a.wav", Body: strings.NewReader("x")}, summaryOpts())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create temp file")
}

func TestAudioExt(t *testing.T) {
	assert.Equal(t, ".mp3", audioExt("meeting.MP3"))
	assert.Equal(t, ".m4a", audioExt("../../etc/x.m4a"))
	assert.Equal(t, "", audioExt("noext"))
	assert.Equal(t, "", audioExt("weird.extension-too-long"))
}
