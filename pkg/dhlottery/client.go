package dhlottery

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
)

// DefaultBaseURL is the public draw lookup endpoint
const DefaultBaseURL = "https://www.dhlottery.co.kr/common.do"

// ReturnValueFail is the status flag the endpoint uses for a round that does not exist (yet)
const ReturnValueFail = "fail"

var (
	// ErrNetwork is returned when the lookup could not be reached or answered with a non-2xx status
	ErrNetwork = errors.New("dhlottery: network error")
	// ErrMalformedResponse is returned when the response body is not the expected JSON
	ErrMalformedResponse = errors.New("dhlottery: malformed response")
)

// Client represents a draw lookup client
type Client struct {
	BaseURL string
	client  *http.Client
}

// DrawResponse mirrors the lookup payload. Number fields are pointers so a missing
// field can be told apart from a zero.
type DrawResponse struct {
	ReturnValue    string `json:"returnValue"`
	DrawNo         *int   `json:"drwNo"`
	DrawDate       string `json:"drwNoDate"`
	No1            *int   `json:"drwtNo1"`
	No2            *int   `json:"drwtNo2"`
	No3            *int   `json:"drwtNo3"`
	No4            *int   `json:"drwtNo4"`
	No5            *int   `json:"drwtNo5"`
	No6            *int   `json:"drwtNo6"`
	BonusNo        *int   `json:"bnusNo"`
	FirstWinAmount int64  `json:"firstWinamnt"`
	FirstWinners   int    `json:"firstPrzwnerCo"`
	TotalSales     int64  `json:"totSellamnt"`
}

// Failed reports whether the endpoint flagged the round as nonexistent
func (r *DrawResponse) Failed() bool {
	return r.ReturnValue == ReturnValueFail
}

// WinningNumbers returns the six main numbers in draw order, or an error naming the first missing field
func (r *DrawResponse) WinningNumbers() ([6]int, error) {
	var out [6]int
	fields := [6]*int{r.No1, r.No2, r.No3, r.No4, r.No5, r.No6}
	for i, f := range fields {
		if f == nil {
			return out, fmt.Errorf("%w: missing field drwtNo%d", ErrMalformedResponse, i+1)
		}
		out[i] = *f
	}
	return out, nil
}

// Bonus returns the bonus number
func (r *DrawResponse) Bonus() (int, error) {
	if r.BonusNo == nil {
		return 0, fmt.Errorf("%w: missing field bnusNo", ErrMalformedResponse)
	}
	return *r.BonusNo, nil
}

// NewClient creates a new lookup client. A zero timeout falls back to 10 seconds.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		BaseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// GetDraw queries one round. A "fail" flag is not an error here; callers check Failed().
func (c *Client) GetDraw(ctx context.Context, round int) (*DrawResponse, error) {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", c.BaseURL, err)
	}
	q := u.Query()
	q.Set("method", "getLottoNumber")
	q.Set("drwNo", strconv.Itoa(round))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: round %d: %v", ErrNetwork, round, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: round %d: unexpected status %d", ErrNetwork, round, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: round %d: reading body: %v", ErrNetwork, round, err)
	}

	var draw DrawResponse
	if err := json.Unmarshal(body, &draw); err != nil {
		return nil, fmt.Errorf("%w: round %d: %v", ErrMalformedResponse, round, err)
	}
	if draw.ReturnValue == "" {
		return nil, fmt.Errorf("%w: round %d: missing field returnValue", ErrMalformedResponse, round)
	}

	return &draw, nil
}
