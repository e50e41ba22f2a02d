package usecase

import (
	"errors"
	"fmt"

	"career-guide/internal/domain/resume"
	"career-guide/internal/payload"
)

type ResumeUsecase interface {
	ScoreProfile(p resume.Profile) resume.ATSReport
	ScoreRaw(raw []byte) (resume.Profile, resume.ATSReport, error)
}

type Resume struct{}

func NewResumeUsecase() *Resume {
	return &Resume{}
}

func (u *Resume) ScoreProfile(p resume.Profile) resume.ATSReport {
	return resume.EvaluateATS(p)
}

// ScoreRaw decodes a resume-parser payload before scoring it. Rejected
// payloads wrap ErrInvalidPayload and keep the *payload.ValidationError in
// the chain when there is one.
func (u *Resume) ScoreRaw(raw []byte) (resume.Profile, resume.ATSReport, error) {
	p, err := payload.DecodeResumeProfile(raw)
	if err != nil {
		return resume.Profile{}, resume.ATSReport{}, wrapPayloadError(err)
	}
	return p, resume.EvaluateATS(p), nil
}

func wrapPayloadError(err error) error {
	var ve *payload.ValidationError
	if errors.As(err, &ve) || errors.Is(err, payload.ErrMalformed) {
		return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	return ErrInternal
}

var _ ResumeUsecase = (*Resume)(nil)
