package playback

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"airwave/internal/logger"
	"airwave/internal/ports"
)

const rcDialTimeout = 2 * time.Second

// RCController drives VLC's remote-control TCP interface. A fresh
// connection is opened per command and one newline-terminated verb is
// written, matching how the rc interface is normally scripted.
type RCController struct {
	session
	addr string
}

func NewRCController(host string, port int) *RCController {
	return &RCController{addr: net.JoinHostPort(host, strconv.Itoa(port))}
}

func (c *RCController) send(command string) error {
	conn, err := net.DialTimeout("tcp", c.addr, rcDialTimeout)
	if err != nil {
		return fmt.Errorf("cannot reach vlc rc interface at %s: %w (start vlc with: vlc --extraintf rc --rc-host %s)",
			c.addr, err, c.addr)
	}
	defer conn.Close()

	if _, err := fmt.Fprintf(conn, "%s\n", command); err != nil {
		return fmt.Errorf("failed sending %q to vlc rc interface: %w", command, err)
	}
	return nil
}

func (c *RCController) Play(streamURL string) error {
	if c.state != ports.StateStopped {
		if err := c.send("clear"); err != nil {
			return err
		}
	}
	if err := c.send("add " + streamURL); err != nil {
		return err
	}
	c.state = ports.StatePlaying
	return nil
}

func (c *RCController) SetVolume(percent int) error {
	if err := validVolume(percent); err != nil {
		return err
	}
	return c.send("volume " + strconv.Itoa(vlcVolume(percent)))
}

func (c *RCController) Stop() error {
	if err := c.guardStop(); err != nil {
		return err
	}
	if err := c.send("stop"); err != nil {
		return err
	}
	c.state = ports.StateStopped
	return nil
}

func (c *RCController) Pause() error {
	if err := c.guardPause(); err != nil {
		return err
	}
	if err := c.send("pause"); err != nil {
		return err
	}
	c.state = ports.StatePaused
	return nil
}

func (c *RCController) Resume() error {
	if err := c.guardResume(); err != nil {
		return err
	}
	if err := c.send("pause"); err != nil {
		return err
	}
	c.state = ports.StatePlaying
	return nil
}

// Shutdown stops any active stream best-effort; the remote player instance
// is not ours to terminate.
func (c *RCController) Shutdown() error {
	if c.state != ports.StateStopped {
		if err := c.send("stop"); err != nil {
			logger.Log.Warn().Err(err).Msg("stop during rc controller shutdown failed")
		}
	}
	c.state = ports.StateStopped
	return nil
}
