package generativeAI

import (
	"context"
	"errors"
	"net"
	"net/http"
	"regexp"

	"github.com/sashabaranov/go-openai"
	"google.golang.org/genai"

	"github.com/FACorreiaa/ecowise-api/internal/types"
)

var (
	modelNotFoundRe = regexp.MustCompile(`(?i)not found|supported for generateContent`)
	quotaExceededRe = regexp.MustCompile(`(?i)quota exceeded`)
	timeoutRe       = regexp.MustCompile(`(?i)timeout`)
)

const statusResourceExhausted = "RESOURCE_EXHAUSTED"

// ClassifyError turns a provider error into a *types.UpstreamError.
// Configuration errors pass through unchanged.
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, types.ErrConfiguration) {
		return err
	}
	var upstream *types.UpstreamError
	if errors.As(err, &upstream) {
		return err
	}

	status, message, httpCode := describe(err)
	return &types.UpstreamError{
		Kind:    classify(err, status, message, httpCode),
		Status:  status,
		Message: message,
		Err:     err,
	}
}

func classify(err error, status, message string, httpCode int) types.UpstreamKind {
	switch {
	case modelNotFoundRe.MatchString(message) || httpCode == http.StatusNotFound:
		return types.ModelNotFound
	case status == statusResourceExhausted || quotaExceededRe.MatchString(message) || httpCode == http.StatusTooManyRequests:
		return types.QuotaExhausted
	case isTimeout(err) || timeoutRe.MatchString(message):
		return types.Timeout
	}
	return types.GenerationFailed
}

// describe extracts the provider status, message and HTTP code from err.
func describe(err error) (status, message string, httpCode int) {
	var geminiErr genai.APIError
	if errors.As(err, &geminiErr) {
		return geminiErr.Status, geminiErr.Message, geminiErr.Code
	}
	var geminiErrPtr *genai.APIError
	if errors.As(err, &geminiErrPtr) && geminiErrPtr != nil {
		return geminiErrPtr.Status, geminiErrPtr.Message, geminiErrPtr.Code
	}
	var openaiErr *openai.APIError
	if errors.As(err, &openaiErr) {
		return openaiErr.Type, openaiErr.Message, openaiErr.HTTPStatusCode
	}
	var requestErr *openai.RequestError
	if errors.As(err, &requestErr) {
		return "", requestErr.Error(), requestErr.HTTPStatusCode
	}
	return "", err.Error(), 0
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
