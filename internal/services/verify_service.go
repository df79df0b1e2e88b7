package services

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"

	"modelhub/internal/models"
	"modelhub/internal/repositories"
)

const (
	probeTimeout    = 10 * time.Second
	listModelsTries = 2 // one attempt plus one retry
)

// vendorClient is the slice of the OpenAI-compatible surface the probes
// need. *openai.Client satisfies it.
type vendorClient interface {
	ListModels(ctx context.Context) (openai.ModelsList, error)
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// VerifyService checks a credential against a provider's endpoint with a
// live probe. Advisory only: it never touches stored state, and probe
// failures come back as a typed result, not an error.
type VerifyService interface {
	Verify(ctx context.Context, providerID uuid.UUID, credential, baseURLOverride, probeModel string) (*models.VerificationResult, error)
}

type verifyService struct {
	store     *repositories.Store
	timeout   time.Duration
	newClient func(credential, baseURL string) vendorClient
}

func NewVerifyService(store *repositories.Store) VerifyService {
	return &verifyService{
		store:     store,
		timeout:   probeTimeout,
		newClient: newOpenAIClient,
	}
}

// Most vendors speak the OpenAI wire protocol, so one client shape covers
// them; the endpoint decides who is actually answering.
func newOpenAIClient(credential, baseURL string) vendorClient {
	cfg := openai.DefaultConfig(credential)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	cfg.HTTPClient = &http.Client{Timeout: probeTimeout}
	return openai.NewClientWithConfig(cfg)
}

// Verify runs the two-probe protocol: a cheap capability listing first, then
// a single 1-token generation. A definitive auth rejection on the generation
// probe short-circuits; anything else combines both causes for diagnostics.
func (s *verifyService) Verify(ctx context.Context, providerID uuid.UUID, credential, baseURLOverride, probeModel string) (*models.VerificationResult, error) {
	provider, err := s.store.Providers.GetByID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, fmt.Errorf("provider %s: %w", providerID, ErrNotFound)
	}

	endpoint := strings.TrimSpace(baseURLOverride)
	if endpoint == "" {
		endpoint = provider.DefaultBaseURL
	}
	client := s.newClient(credential, endpoint)

	var listErr error
	for attempt := 0; attempt < listModelsTries; attempt++ {
		listErr = s.probeListModels(ctx, client)
		if listErr == nil {
			return &models.VerificationResult{
				Valid:   true,
				Message: "credential verified",
				Method:  models.VerifyMethodListModels,
			}, nil
		}
		// Retrying a probe that already burned its full timeout budget
		// buys nothing; only transient failures get the second attempt.
		if isTimeout(listErr) || ctx.Err() != nil {
			break
		}
	}

	chatErr := s.probeChatCompletion(ctx, client, probeModel)
	if chatErr == nil {
		return &models.VerificationResult{
			Valid:   true,
			Message: "credential verified",
			Method:  models.VerifyMethodChatCompletion,
		}, nil
	}

	if isAuthRejection(chatErr) {
		return &models.VerificationResult{
			Valid:   false,
			Message: fmt.Sprintf("verification failed: invalid credential (%v)", chatErr),
		}, nil
	}

	return &models.VerificationResult{
		Valid: false,
		Message: fmt.Sprintf(
			"verification failed: could not reach service or credential invalid. list models: %v; completion: %v",
			listErr, chatErr),
	}, nil
}

func (s *verifyService) probeListModels(ctx context.Context, client vendorClient) error {
	probeCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	_, err := client.ListModels(probeCtx)
	return err
}

func (s *verifyService) probeChatCompletion(ctx context.Context, client vendorClient, probeModel string) error {
	probeCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	_, err := client.CreateChatCompletion(probeCtx, openai.ChatCompletionRequest{
		Model: probeModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: "Hi"},
		},
		MaxTokens: 1,
	})
	return err
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// isAuthRejection recognizes a definitive credential rejection, as opposed
// to timeouts, unreachable endpoints, or malformed responses.
func isAuthRejection(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusUnauthorized {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "401") ||
		strings.Contains(msg, "unauthorized") ||
		strings.Contains(msg, "invalid api key")
}
