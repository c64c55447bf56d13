package recommendations

import (
	"coach-service/internal/app/contracts"
	"coach-service/internal/app/models"
	"coach-service/internal/pkg/constvars"
	"coach-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/goccy/go-json"
)

type recommendationCoachClient struct {
	BaseUrl string
}

func NewRecommendationCoachClient(baseUrl string) contracts.RecommendationCoachClient {
	return &recommendationCoachClient{
		BaseUrl: baseUrl,
	}
}

func (c *recommendationCoachClient) ExecuteRecommendation(ctx context.Context, recommendationID string) ([]models.Card, error) {
	return c.fetchCards(ctx, c.BaseUrl+"/recommendations/execute", recommendationID)
}

func (c *recommendationCoachClient) GetCachedRecommendation(ctx context.Context, recommendationID string) ([]models.Card, error) {
	return c.fetchCards(ctx, c.BaseUrl+"/recommendations/getCached", recommendationID)
}

func (c *recommendationCoachClient) fetchCards(ctx context.Context, endpoint, recommendationID string) ([]models.Card, error) {
	form := url.Values{}
	form.Set("id", recommendationID)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationForm)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		statusErr := fmt.Errorf("status %d from %s", resp.StatusCode, endpoint)
		return nil, exceptions.ErrCoachGetResource(statusErr, constvars.ResourceRecommendation)
	}

	var cards []models.Card
	err = json.NewDecoder(resp.Body).Decode(&cards)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceRecommendation)
	}

	return cards, nil
}
