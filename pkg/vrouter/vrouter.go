package vrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/opencontrail/vrouter-ctl/pkg/logging"
	"github.com/opencontrail/vrouter-ctl/pkg/types"
)

const (
	portPath = "/port"

	// agent placeholders for attributes vrouter-ctl does not carry
	unspecifiedIPv4 = "0.0.0.0"
	unspecifiedIPv6 = "::"
	nilUUID         = "00000000-0000-0000-0000-000000000000"
	invalidVlanID   = 65535

	maxErrorBody = 4096
)

// agent port type codes
var portTypes = map[types.PortType]int{
	types.NovaVMPort:    0,
	types.NameSpacePort: 1,
}

// PortAdder registers ports with the vrouter agent
type PortAdder interface {
	AddPort(ctx context.Context, port *types.Port) error
}

// APIError is returned when the agent answers a request with a non 2xx status
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("vrouter agent returned %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("vrouter agent returned %d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Message)
}

// Client talks to the port API of the local vrouter agent
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a client for the agent listening at baseURL. A zero timeout never expires.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type portRequest struct {
	ID          string `json:"id"`
	InstanceID  string `json:"instance-id"`
	DisplayName string `json:"display-name"`
	VMName      string `json:"vm-name"`
	SystemName  string `json:"system-name"`
	MacAddress  string `json:"mac-address"`
	IPAddress   string `json:"ip-address"`
	IP6Address  string `json:"ip6-address"`
	VnID        string `json:"vn-id"`
	VMProjectID string `json:"vm-project-id"`
	Type        int    `json:"type"`
	RxVlanID    int    `json:"rx-vlan-id"`
	TxVlanID    int    `json:"tx-vlan-id"`
}

func newPortRequest(port *types.Port) (*portRequest, error) {
	code, ok := portTypes[port.Type]
	if !ok {
		return nil, errors.Errorf("unsupported port type %q", port.Type)
	}
	return &portRequest{
		ID:          port.VMIID,
		InstanceID:  port.VMID,
		DisplayName: port.DisplayName,
		SystemName:  port.InterfaceName,
		MacAddress:  port.MacAddress,
		IPAddress:   unspecifiedIPv4,
		IP6Address:  unspecifiedIPv6,
		VnID:        nilUUID,
		VMProjectID: nilUUID,
		Type:        code,
		RxVlanID:    invalidVlanID,
		TxVlanID:    invalidVlanID,
	}, nil
}

// AddPort registers port with the agent. It sends a single request and does not retry.
func (c *Client) AddPort(ctx context.Context, port *types.Port) error {
	req, err := newPortRequest(port)
	if err != nil {
		return err
	}

	body, err := json.Marshal(req)
	if err != nil {
		return errors.Wrap(err, "failed to encode port request")
	}

	url := c.baseURL + portPath
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return errors.Wrapf(err, "failed to build request for %s", url)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	logging.Debug("Sending port add request",
		"func", "AddPort",
		"url", url,
		"body", string(body))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return errors.Wrapf(err, "failed to reach vrouter agent at %s", c.baseURL)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(msg))}
	}

	return nil
}
