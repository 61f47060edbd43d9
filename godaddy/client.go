package godaddy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/1f349/zinnia/creds"
	"github.com/rcrowley/go-metrics"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const DefaultBaseUrl = "https://api.godaddy.com"

// unknownDomainCode is returned by the records endpoint when the domain is
// not registered or has no zone file attached.
const unknownDomainCode = "UNKNOWN_DOMAIN"

const recordPageSize = 500

var (
	ErrAuth           = errors.New("godaddy: credentials rejected")
	ErrDomainNotFound = errors.New("godaddy: domain not registered or has no zone file")
	ErrTransport      = errors.New("godaddy: transport failure")
)

// APIError is any registrar response outside the mapped error set.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e APIError) Error() string {
	return fmt.Sprintf("godaddy: api error (status %d) %s: %s", e.StatusCode, e.Code, e.Message)
}

type apiFault struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Client is a read-only client for the GoDaddy developer API.
//
// See https://developer.godaddy.com/doc/endpoint/domains
type Client struct {
	baseUrl string
	auth    creds.KeyPair
	client  *http.Client
}

func NewClient(baseUrl string, auth creds.KeyPair) *Client {
	if baseUrl == "" {
		baseUrl = DefaultBaseUrl
	}
	return &Client{
		baseUrl: strings.TrimSuffix(baseUrl, "/"),
		auth:    auth,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Domains lists the domains registered to the API key.
func (c *Client) Domains(ctx context.Context) ([]Domain, error) {
	body, status, err := c.get(ctx, "/v1/domains", nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, statusError(status, body)
	}
	var domains []Domain
	if err := json.Unmarshal(body, &domains); err != nil {
		return nil, fmt.Errorf("godaddy: invalid domains response: %w", err)
	}
	return domains, nil
}

// Records fetches every DNS entry for the domain, walking the paginated
// endpoint until a short page. The full set is resolved before returning.
func (c *Client) Records(ctx context.Context, domain string) ([]Record, error) {
	pageCounter := metrics.GetOrRegisterCounter("godaddy.records.pages", metrics.DefaultRegistry)
	recordCounter := metrics.GetOrRegisterCounter("godaddy.records.fetched", metrics.DefaultRegistry)

	var records []Record
	for offset := 0; ; offset += recordPageSize {
		q := url.Values{}
		q.Set("limit", strconv.Itoa(recordPageSize))
		q.Set("offset", strconv.Itoa(offset))
		body, status, err := c.get(ctx, "/v1/domains/"+url.PathEscape(domain)+"/records", q)
		if err != nil {
			return nil, err
		}
		if status != http.StatusOK {
			return nil, statusError(status, body)
		}
		page, err := decodeRecordPage(body)
		if err != nil {
			return nil, err
		}
		pageCounter.Inc(1)
		recordCounter.Inc(int64(len(page)))
		records = append(records, page...)
		if len(page) < recordPageSize {
			return records, nil
		}
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, int, error) {
	u := c.baseUrl + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Authorization", "sso-key "+c.auth.Key+":"+c.auth.Secret)
	req.Header.Set("Accept", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	return body, resp.StatusCode, nil
}

// decodeRecordPage handles the registrar quirk of answering some missing
// zones with a 200 fault object instead of a record array.
func decodeRecordPage(body []byte) ([]Record, error) {
	var page []Record
	if err := json.Unmarshal(body, &page); err == nil {
		return page, nil
	}
	var fault apiFault
	if err := json.Unmarshal(body, &fault); err != nil || fault.Code == "" {
		return nil, fmt.Errorf("godaddy: invalid records response: %s", clipBody(body))
	}
	if fault.Code == unknownDomainCode {
		return nil, fmt.Errorf("%w: %s", ErrDomainNotFound, fault.Message)
	}
	return nil, APIError{StatusCode: http.StatusOK, Code: fault.Code, Message: fault.Message}
}

func statusError(status int, body []byte) error {
	var fault apiFault
	_ = json.Unmarshal(body, &fault)
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return fmt.Errorf("%w (status %d): %s", ErrAuth, status, fault.Message)
	case status == http.StatusNotFound || fault.Code == unknownDomainCode:
		return fmt.Errorf("%w: %s", ErrDomainNotFound, fault.Message)
	default:
		return APIError{StatusCode: status, Code: fault.Code, Message: fault.Message}
	}
}

func clipBody(body []byte) string {
	const n = 200
	if len(body) > n {
		return string(body[:n]) + "..."
	}
	return string(body)
}
