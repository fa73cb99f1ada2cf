package domain

import (
	"context"
	"errors"
)

type IPAToTextRequest struct {
	IPA string `json:"ipa"`
}

type IPAToTextResponse struct {
	Text       string   `json:"text"`
	Confidence *float64 `json:"confidence,omitempty"`
}

var ErrTranscriberNotConfigured = errors.New("transcriber is not configured")

// Transcriber predicts the most likely spelling for a string of IPA
// phonemes.
type Transcriber interface {
	IPAToText(ctx context.Context, ipa string) (IPAToTextResponse, error)
}
