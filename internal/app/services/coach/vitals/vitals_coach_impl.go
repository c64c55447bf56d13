package vitals

import (
	"coach-service/internal/app/contracts"
	"coach-service/internal/app/models"
	"coach-service/internal/pkg/constvars"
	"coach-service/internal/pkg/dto/requests"
	"coach-service/internal/pkg/exceptions"
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

type vitalsCoachClient struct {
	BaseUrl string
}

func NewVitalsCoachClient(baseUrl string) contracts.VitalsCoachClient {
	return &vitalsCoachClient{
		BaseUrl: baseUrl,
	}
}

func (c *vitalsCoachClient) CreateVitals(ctx context.Context, request *requests.CoachCreateVitals) (int, *models.VitalsRow, error) {
	form := url.Values{}
	form.Set("systolic1", request.Systolic1)
	form.Set("diastolic1", request.Diastolic1)
	if request.Pulse1 != "" {
		form.Set("pulse1", request.Pulse1)
	}
	if request.Systolic2 != "" {
		form.Set("systolic2", request.Systolic2)
	}
	if request.Diastolic2 != "" {
		form.Set("diastolic2", request.Diastolic2)
	}
	if request.Pulse2 != "" {
		form.Set("pulse2", request.Pulse2)
	}
	form.Set("readingDateTS", strconv.FormatInt(request.ReadingDateTS, 10))
	form.Set("followedInstructions", strconv.FormatBool(request.FollowedInstructions))

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl+"/vitals/create", strings.NewReader(form.Encode()))
	if err != nil {
		return 0, nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationForm)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return resp.StatusCode, nil, nil
	}

	row := new(models.VitalsRow)
	err = json.NewDecoder(resp.Body).Decode(row)
	if err != nil {
		return resp.StatusCode, nil, exceptions.ErrDecodeResponse(err, constvars.ResourceVitals)
	}

	return resp.StatusCode, row, nil
}
