package playback

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"airwave/internal/logger"
	"airwave/internal/ports"
)

// ErrAuthRejected marks a credential rejection by the player's HTTP
// interface. It is wrapped with remediation guidance.
var ErrAuthRejected = errors.New("authentication rejected")

const httpRequestTimeout = 5 * time.Second

// HTTPController drives VLC through its web status endpoint. Each operation
// issues one GET to /requests/status.json with command/input parameters and
// basic auth (VLC expects an empty username).
type HTTPController struct {
	session
	client   *http.Client
	baseURL  string
	password string
}

func NewHTTPController(baseURL, password string) *HTTPController {
	return &HTTPController{
		client:   &http.Client{Timeout: httpRequestTimeout},
		baseURL:  strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		password: password,
	}
}

func (c *HTTPController) send(command string, extra url.Values) error {
	params := url.Values{}
	params.Set("command", command)
	for key, values := range extra {
		for _, v := range values {
			params.Add(key, v)
		}
	}

	req, err := http.NewRequest(http.MethodGet, c.baseURL+"/requests/status.json?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build vlc http request: %w", err)
	}
	req.SetBasicAuth("", c.password)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("vlc http request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w by vlc http interface (status %d): check the password and start vlc with --extraintf http --http-password <pass>",
			ErrAuthRejected, resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("vlc http command %q returned status %d", command, resp.StatusCode)
	}
	return nil
}

func (c *HTTPController) Play(streamURL string) error {
	if err := c.send("in_play", url.Values{"input": {streamURL}}); err != nil {
		return err
	}
	c.state = ports.StatePlaying
	return nil
}

func (c *HTTPController) SetVolume(percent int) error {
	if err := validVolume(percent); err != nil {
		return err
	}
	return c.send("volume", url.Values{"val": {strconv.Itoa(vlcVolume(percent))}})
}

func (c *HTTPController) Stop() error {
	if err := c.guardStop(); err != nil {
		return err
	}
	if err := c.send("pl_stop", nil); err != nil {
		return err
	}
	c.state = ports.StateStopped
	return nil
}

func (c *HTTPController) Pause() error {
	if err := c.guardPause(); err != nil {
		return err
	}
	if err := c.send("pl_pause", nil); err != nil {
		return err
	}
	c.state = ports.StatePaused
	return nil
}

func (c *HTTPController) Resume() error {
	if err := c.guardResume(); err != nil {
		return err
	}
	if err := c.send("pl_forceresume", nil); err != nil {
		return err
	}
	c.state = ports.StatePlaying
	return nil
}

// Shutdown stops any active stream best-effort. There is no connection to
// release, so it never fails and may be called repeatedly.
func (c *HTTPController) Shutdown() error {
	if c.state != ports.StateStopped {
		if err := c.send("pl_stop", nil); err != nil {
			logger.Log.Warn().Err(err).Msg("stop during http controller shutdown failed")
		}
	}
	c.state = ports.StateStopped
	return nil
}
