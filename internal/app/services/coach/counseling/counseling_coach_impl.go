package counseling

import (
	"coach-service/internal/app/contracts"
	"coach-service/internal/pkg/constvars"
	"coach-service/internal/pkg/dto/requests"
	"coach-service/internal/pkg/exceptions"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
)

type counselingCoachClient struct {
	BaseUrl string
}

func NewCounselingCoachClient(baseUrl string) contracts.CounselingCoachClient {
	return &counselingCoachClient{
		BaseUrl: baseUrl,
	}
}

func (c *counselingCoachClient) RegisterCounselingReceived(ctx context.Context, request *requests.CoachCounselingReceived) (int, error) {
	form := url.Values{}
	form.Set("extCounselingId", request.ExtCounselingID)
	form.Set("referenceSystem", request.ReferenceSystem)
	form.Set("referenceCode", request.ReferenceCode)
	form.Set("counselingText", request.CounselingText)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl+"/counseling/create", strings.NewReader(form.Encode()))
	if err != nil {
		return 0, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationForm)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return 0, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	_, err = io.Copy(io.Discard, resp.Body)
	if err != nil {
		return 0, exceptions.ErrDecodeResponse(err, constvars.ResourceCounseling)
	}

	return resp.StatusCode, nil
}
