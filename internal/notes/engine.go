package notes

import (
	"context"

	"labquest-backend/internal/ai"
)

// Provider is the outbound speech-to-text and completion API. *ai.Client implements it.
type Provider interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
	CompleteJSON(ctx context.Context, instruction, input string) (string, error)
}

// Engine turns a stored audio file into notes. LiveEngine calls a provider,
// DemoEngine never leaves the process.
type Engine interface {
	Run(ctx context.Context, audioPath string, opts Options) (Notes, error)
}

type Notes struct {
	Transcription string
	Summary       string
	ActionItems   []string
}

type LiveEngine struct {
	provider Provider
}

func NewLiveEngine(p Provider) *LiveEngine {
	return &LiveEngine{provider: p}
}

func (e *LiveEngine) Run(ctx context.Context, audioPath string, opts Options) (Notes, error) {
	transcript, err := e.provider.Transcribe(ctx, audioPath)
	if err != nil {
		return Notes{}, err
	}

	content, err := e.provider.CompleteJSON(ctx, ai.BuildInstruction(opts.Mode, opts.Length), transcript)
	if err != nil {
		return Notes{}, err
	}

	parsed, err := ai.ParseSummary(content)
	if err != nil {
		return Notes{}, err
	}

	return Notes{
		Transcription: transcript,
		Summary:       parsed.Summary,
		ActionItems:   parsed.ActionItems,
	}, nil
}

const (
	DemoTranscription = "(demo) This is a placeholder transcript. Set OPENAI_API_KEY to transcribe real recordings."
	DemoSummary       = "(demo) No provider credential is configured, so no real summary was produced."
	DemoActionItem    = "(demo) Configure the provider credential"
)

// DemoEngine returns a fixed payload without contacting any provider.
type DemoEngine struct{}

func (DemoEngine) Run(context.Context, string, Options) (Notes, error) {
	return Notes{
		Transcription: DemoTranscription,
		Summary:       DemoSummary,
		ActionItems:   []string{DemoActionItem},
	}, nil
}
