package suggest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/alexferreiraaf/osmaster/internal/domain/entities"
	"github.com/alexferreiraaf/osmaster/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

type suggestRequest struct {
	Service     string `json:"service"`
	ClientCity  string `json:"clientCity"`
	ClientState string `json:"clientState"`
}

type suggestResponse struct {
	SuggestedTechnician string `json:"suggestedTechnician"`
	Reason              string `json:"reason"`
}

// HTTPSuggester calls the technician suggestion helper over HTTP.
// Server errors and transport failures are retried.
type HTTPSuggester struct {
	client *resty.Client
	url    string
	logger *zap.Logger
}

var _ interfaces.ITechnicianSuggester = (*HTTPSuggester)(nil)

func NewHTTPSuggester(url, apiKey string, timeout time.Duration, logger *zap.Logger) *HTTPSuggester {
	if logger == nil {
		logger = zap.NewNop()
	}
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(3).
		SetRetryWaitTime(200 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= http.StatusInternalServerError
		}).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if apiKey != "" {
		client.SetAuthToken(apiKey)
	}
	return &HTTPSuggester{client: client, url: url, logger: logger.Named("suggest")}
}

func (s *HTTPSuggester) Suggest(ctx context.Context, service, city, state string) (entities.Suggestion, error) {
	var out suggestResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(suggestRequest{Service: service, ClientCity: city, ClientState: state}).
		SetResult(&out).
		Post(s.url)
	if err != nil {
		return entities.Suggestion{}, fmt.Errorf("call suggestion helper: %w", err)
	}
	if resp.IsError() {
		s.logger.Warn("suggestion helper returned error",
			zap.Int("status_code", resp.StatusCode()),
			zap.String("body", truncate(resp.String(), 256)),
		)
		return entities.Suggestion{}, fmt.Errorf("suggestion helper: status %d", resp.StatusCode())
	}

	name := strings.TrimSpace(out.SuggestedTechnician)
	if name == "" {
		return entities.Suggestion{}, errors.New("suggestion helper returned no technician")
	}
	return entities.Suggestion{Name: name, Reason: strings.TrimSpace(out.Reason)}, nil
}

// truncate keeps at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
