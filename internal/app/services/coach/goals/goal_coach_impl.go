package goals

import (
	"coach-service/internal/app/contracts"
	"coach-service/internal/pkg/constvars"
	"coach-service/internal/pkg/dto/requests"
	"coach-service/internal/pkg/dto/responses"
	"coach-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

type goalCoachClient struct {
	BaseUrl string
}

func NewGoalCoachClient(baseUrl string) contracts.GoalCoachClient {
	return &goalCoachClient{
		BaseUrl: baseUrl,
	}
}

func (c *goalCoachClient) CreateGoal(ctx context.Context, request *requests.CoachCreateGoal) (int, error) {
	form := url.Values{}
	form.Set("extGoalId", request.ExtGoalID)
	form.Set("referenceSystem", request.ReferenceSystem)
	form.Set("referenceCode", request.ReferenceCode)
	form.Set("goalText", request.GoalText)
	form.Set("targetDateTS", strconv.FormatInt(request.TargetDateTS, 10))
	return c.postForm(ctx, c.BaseUrl+"/goals/create", form)
}

func (c *goalCoachClient) CreateBPGoal(ctx context.Context, request *requests.CoachCreateBPGoal) (int, error) {
	form := url.Values{}
	form.Set("extGoalId", request.ExtGoalID)
	form.Set("referenceSystem", request.ReferenceSystem)
	form.Set("referenceCode", request.ReferenceCode)
	form.Set("systolicTarget", request.SystolicTarget)
	form.Set("diastolicTarget", request.DiastolicTarget)
	form.Set("targetDateTS", strconv.FormatInt(request.TargetDateTS, 10))
	return c.postForm(ctx, c.BaseUrl+"/goals/createbp", form)
}

func (c *goalCoachClient) UpdateGoal(ctx context.Context, request *requests.CoachUpdateGoal) (int, error) {
	form := url.Values{}
	form.Set("extGoalId", request.ExtGoalID)
	form.Set("achievementStatus", request.AchievementStatus)
	return c.postForm(ctx, c.BaseUrl+"/goals/update", form)
}

func (c *goalCoachClient) ListRecordedGoals(ctx context.Context) ([]responses.RecordedGoal, error) {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.BaseUrl+"/goals/list", nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		statusErr := fmt.Errorf("status %d from %s", resp.StatusCode, c.BaseUrl+"/goals/list")
		return nil, exceptions.ErrCoachGetResource(statusErr, constvars.ResourceGoal)
	}

	var goals []responses.RecordedGoal
	err = json.NewDecoder(resp.Body).Decode(&goals)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceGoal)
	}

	return goals, nil
}

// postForm returns the backend's status code verbatim; a non-200 status is
// the caller's outcome to act on, not an error.
func (c *goalCoachClient) postForm(ctx context.Context, endpoint string, form url.Values) (int, error) {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, endpoint, strings.NewReader(form.Encode()))
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
		return 0, exceptions.ErrDecodeResponse(err, constvars.ResourceGoal)
	}

	return resp.StatusCode, nil
}
