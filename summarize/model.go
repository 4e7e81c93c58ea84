package summarize

import (
	"context"

	"yt-study/errors"
)

// Params bound the generated summary length for one model call.
type Params struct {
	MinTokens int
	MaxTokens int
}

// Model is the text-in/text-out summarization capability. Implementations
// must be safe for concurrent use; the production one calls a hosted model,
// tests substitute their own.
type Model interface {
	Summarize(ctx context.Context, text string, params Params) (string, error)
}

// Mode selects the output-length bounds.
type Mode string

const (
	ModeShort    Mode = "short"
	ModeNormal   Mode = "normal"
	ModeDetailed Mode = "detailed"
)

// Length bounds per mode, carried over from the reference model settings.
var modeParams = map[Mode]Params{
	ModeShort:    {MinTokens: 20, MaxTokens: 80},
	ModeNormal:   {MinTokens: 40, MaxTokens: 150},
	ModeDetailed: {MinTokens: 70, MaxTokens: 220},
}

// ParseMode maps the user-facing selector to a Mode. Empty selects normal.
func ParseMode(s string) (Mode, error) {
	const op = "summarize.ParseMode"

	switch s {
	case "":
		return ModeNormal, nil
	case string(ModeShort), string(ModeNormal), string(ModeDetailed):
		return Mode(s), nil
	default:
		return "", errors.InvalidInput(op, nil, "Mode must be one of short, normal, detailed")
	}
}

func (m Mode) Params() Params {
	if p, ok := modeParams[m]; ok {
		return p
	}
	return modeParams[ModeNormal]
}
