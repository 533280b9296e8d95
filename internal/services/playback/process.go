package playback

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"
	"unicode"

	"airwave/internal/logger"
	"airwave/internal/ports"
)

const (
	defaultProgram = "cvlc"
	shutdownWait   = 500 * time.Millisecond
)

// ProcessController owns a single local VLC child process, spawned lazily on
// the first play and reused for every later command. Control verbs are
// written to the rc interface over the process stdin pipe.
type ProcessController struct {
	session
	program string
	cmd     *exec.Cmd
	stdin   io.WriteCloser
	exited  chan struct{}
}

func NewProcessController(program string) *ProcessController {
	if program == "" {
		program = defaultProgram
	}
	return &ProcessController{program: program}
}

func (c *ProcessController) running() bool {
	if c.cmd == nil {
		return false
	}
	select {
	case <-c.exited:
		return false
	default:
		return true
	}
}

func (c *ProcessController) spawnIfNeeded() error {
	if c.running() {
		return nil
	}
	c.cmd, c.stdin = nil, nil

	cmd := exec.Command(c.program, "--intf", "rc", "--rc-fake-tty", "--no-video", "--quiet")
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("failed to open command channel to %s: %w", c.program, err)
	}
	if err := cmd.Start(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return fmt.Errorf("failed to start player: %q not found on PATH; install VLC (e.g. apt install vlc)", c.program)
		}
		return fmt.Errorf("failed to start player process %q: %w", c.program, err)
	}
	logger.Log.Info().Str("program", c.program).Int("pid", cmd.Process.Pid).Msg("player process started")

	exited := make(chan struct{})
	go func() {
		_ = cmd.Wait()
		close(exited)
	}()

	c.cmd, c.stdin, c.exited = cmd, stdin, exited
	return nil
}

func (c *ProcessController) send(command string) error {
	if !c.running() {
		return fmt.Errorf("player process is not running; use /play to start playback")
	}
	if _, err := io.WriteString(c.stdin, command+"\n"); err != nil {
		return fmt.Errorf("failed writing %q to player; it may have exited unexpectedly: %w", command, err)
	}
	return nil
}

// validateStreamURL rejects URLs that could smuggle extra verbs onto the
// control channel.
func validateStreamURL(streamURL string) error {
	if strings.TrimSpace(streamURL) != streamURL || strings.ContainsFunc(streamURL, unicode.IsControl) {
		return fmt.Errorf("invalid stream URL characters detected; remove control characters and leading/trailing whitespace")
	}
	return nil
}

func (c *ProcessController) Play(streamURL string) error {
	if err := validateStreamURL(streamURL); err != nil {
		return err
	}
	if err := c.spawnIfNeeded(); err != nil {
		return err
	}
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

func (c *ProcessController) SetVolume(percent int) error {
	if err := validVolume(percent); err != nil {
		return err
	}
	return c.send("volume " + strconv.Itoa(vlcVolume(percent)))
}

func (c *ProcessController) Stop() error {
	if err := c.guardStop(); err != nil {
		return err
	}
	if err := c.send("stop"); err != nil {
		return err
	}
	c.state = ports.StateStopped
	return nil
}

func (c *ProcessController) Pause() error {
	if err := c.guardPause(); err != nil {
		return err
	}
	if err := c.send("pause"); err != nil {
		return err
	}
	c.state = ports.StatePaused
	return nil
}

func (c *ProcessController) Resume() error {
	if err := c.guardResume(); err != nil {
		return err
	}
	if err := c.send("pause"); err != nil {
		return err
	}
	c.state = ports.StatePlaying
	return nil
}

// Shutdown asks the player to quit, waits up to shutdownWait for the process
// to exit, and force-terminates it if the deadline elapses. Idempotent: with
// no process running it only resets state.
func (c *ProcessController) Shutdown() error {
	if c.cmd == nil {
		c.state = ports.StateStopped
		return nil
	}

	if err := c.send("quit"); err != nil {
		logger.Log.Debug().Err(err).Msg("quit command not delivered during shutdown")
	}

	select {
	case <-c.exited:
	case <-time.After(shutdownWait):
		logger.Log.Warn().Int("pid", c.cmd.Process.Pid).Msg("player ignored quit, force-terminating")
		if err := c.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
			return fmt.Errorf("failed to force-terminate player process: %w", err)
		}
		<-c.exited
	}

	c.cmd, c.stdin = nil, nil
	c.state = ports.StateStopped
	return nil
}
